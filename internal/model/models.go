// models.go
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Well-known order statuses. The update endpoint accepts arbitrary strings;
// only these trigger derived-field side effects.
const (
	StatusPending    = "Pending"
	StatusProcessing = "Processing"
	StatusShipped    = "Shipped"
	StatusDelivered  = "Delivered"
)

type Order struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Number         string             `bson:"number" json:"number"`
	UserID         primitive.ObjectID `bson:"user_id" json:"userId"`
	Items          []OrderItem        `bson:"items" json:"items"`
	TotalCents     int64              `bson:"total_cents" json:"totalCents"`
	Status         string             `bson:"status" json:"status"`
	StatusNote     string             `bson:"status_note" json:"statusNote"`
	IsPaid         bool               `bson:"is_paid" json:"isPaid"`
	PaidAt         *time.Time         `bson:"paid_at,omitempty" json:"paidAt,omitempty"`
	IsShipped      bool               `bson:"is_shipped" json:"isShipped"`
	ShippedAt      *time.Time         `bson:"shipped_at,omitempty" json:"shippedAt,omitempty"`
	TrackingNumber string             `bson:"tracking_number" json:"trackingNumber"`
	TrackingURL    string             `bson:"tracking_url" json:"trackingUrl"`
	IsDelivered    bool               `bson:"is_delivered" json:"isDelivered"`
	DeliveredAt    *time.Time         `bson:"delivered_at,omitempty" json:"deliveredAt,omitempty"`
	PaymentResult  PaymentResult      `bson:"payment_result" json:"paymentResult"`
	ShippingAddr   Address            `bson:"shipping_address" json:"shippingAddress"`
	CreatedAt      time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updatedAt"`
}

type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Name      string             `bson:"name" json:"name"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	UnitCents int64              `bson:"unit_cents" json:"unitCents"`
}

// PaymentResult is copied verbatim from the gateway confirmation payload.
type PaymentResult struct {
	ID           string `bson:"id" json:"id"`
	Status       string `bson:"status" json:"status"`
	EmailAddress string `bson:"email_address" json:"email_address"`
}

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`
	IsAdmin      bool               `bson:"is_admin" json:"isAdmin"`
	Provider     string             `bson:"provider,omitempty" json:"provider,omitempty"`
	ProviderID   string             `bson:"provider_id,omitempty" json:"providerId,omitempty"`
	Address      *Address           `bson:"address,omitempty" json:"address,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

type Address struct {
	Street     string `bson:"street" json:"street"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postal_code" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Slug        string             `bson:"slug" json:"slug"`
	Description string             `bson:"description" json:"description"`
	CategoryID  primitive.ObjectID `bson:"category_id,omitempty" json:"categoryId,omitempty"`
	PriceCents  int64              `bson:"price_cents" json:"priceCents"`
	Stock       int                `bson:"stock" json:"stock"`
	Image       string             `bson:"image" json:"image"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

type Category struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name string             `bson:"name" json:"name"`
	Slug string             `bson:"slug" json:"slug"`
}

type Cart struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Items     []CartItem         `bson:"items" json:"items"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updatedAt"`
}

type CartItem struct {
	ProductID primitive.ObjectID `bson:"product_id" json:"productId"`
	Quantity  int                `bson:"quantity" json:"quantity"`
}

type Wishlist struct {
	ID         primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID   `bson:"user_id" json:"userId"`
	ProductIDs []primitive.ObjectID `bson:"product_ids" json:"productIds"`
}

// Settings is a singleton document edited from the admin console.
type Settings struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	StoreName        string             `bson:"store_name" json:"storeName"`
	Currency         string             `bson:"currency" json:"currency"`
	ShippingFeeCents int64              `bson:"shipping_fee_cents" json:"shippingFeeCents"`
	TaxRateBps       int64              `bson:"tax_rate_bps" json:"taxRateBps"`
	SupportEmail     string             `bson:"support_email" json:"supportEmail"`
	UpdatedAt        time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Principal is the identity resolved for a single request. Never persisted.
type Principal struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}
