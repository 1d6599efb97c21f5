// dto.go
package dto

import "storefront-service/internal/model"

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// OAuthRequest carries the identity asserted by an OAuth provider callback.
type OAuthRequest struct {
	Provider   string `json:"provider" binding:"required"`
	ProviderID string `json:"providerId" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Name       string `json:"name"`
}

// UpdateOrderStatusRequest is a partial update. Pointer fields distinguish
// "absent" from "present but empty": a non-nil pointer always overwrites,
// even when it points at the empty string.
type UpdateOrderStatusRequest struct {
	Status         *string `json:"status"`
	TrackingNumber *string `json:"trackingNumber"`
	TrackingURL    *string `json:"trackingUrl"`
	StatusNote     *string `json:"statusNote"`
}

type PayOrderRequest struct {
	PaymentResult PaymentResultDTO `json:"paymentResult" binding:"required"`
}

type PaymentResultDTO struct {
	ID           string `json:"id" binding:"required"`
	Status       string `json:"status"`
	EmailAddress string `json:"email_address"`
}

type CheckoutRequest struct {
	ShippingAddress model.Address `json:"shippingAddress"`
}

type CartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Slug        string `json:"slug" binding:"required"`
	Description string `json:"description"`
	CategoryID  string `json:"categoryId"`
	PriceCents  int64  `json:"priceCents" binding:"required,min=0"`
	Stock       int    `json:"stock" binding:"min=0"`
	Image       string `json:"image"`
}

type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type WishlistItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

type SettingsRequest struct {
	StoreName        string `json:"storeName" binding:"required"`
	Currency         string `json:"currency" binding:"required"`
	ShippingFeeCents int64  `json:"shippingFeeCents" binding:"min=0"`
	TaxRateBps       int64  `json:"taxRateBps" binding:"min=0"`
	SupportEmail     string `json:"supportEmail"`
}
