package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-service/internal/dto"
	"storefront-service/internal/model"
)

// Interfaces implemented by the mongo repositories.
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	Save(ctx context.Context, o *model.Order) error
	FindByID(ctx context.Context, id string) (*model.Order, error)
	FindAll(ctx context.Context) ([]*model.Order, error)
	FindByStatus(ctx context.Context, status string) ([]*model.Order, error)
	FindByUserID(ctx context.Context, userID primitive.ObjectID) ([]*model.Order, error)
}

type CartRepository interface {
	Save(ctx context.Context, cart *model.Cart) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Cart, error)
	DeleteByUserID(ctx context.Context, userID primitive.ObjectID) error
}

type SettingsRepository interface {
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, s *model.Settings) error
}

// OrderEventPublisher announces placed orders to the message broker.
type OrderEventPublisher interface {
	OrderPlaced(ctx context.Context, o *model.Order) error
}

type OrderService struct {
	orders    OrderRepository
	products  ProductRepository
	carts     CartRepository
	settings  SettingsRepository
	publisher OrderEventPublisher

	// now is replaceable in tests.
	now func() time.Time
}

func NewOrderService(orders OrderRepository, products ProductRepository, carts CartRepository, settings SettingsRepository, publisher OrderEventPublisher) *OrderService {
	return &OrderService{
		orders:    orders,
		products:  products,
		carts:     carts,
		settings:  settings,
		publisher: publisher,
		now:       time.Now,
	}
}

// ApplyStatusUpdate patches an order's status and keeps the derived payment,
// shipment and delivery fields in sync. Status strings outside the well-known
// set are stored verbatim with no side effects. A nil field means "leave
// untouched"; a non-nil field overwrites even when empty.
func (s *OrderService) ApplyStatusUpdate(ctx context.Context, orderID string, req dto.UpdateOrderStatusRequest) (*model.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	if req.Status != nil {
		o.Status = *req.Status
		switch *req.Status {
		case model.StatusProcessing:
			o.IsPaid = true
			// paidAt is written once and kept on repeated calls
			if o.PaidAt == nil {
				t := now
				o.PaidAt = &t
			}
		case model.StatusShipped:
			o.IsShipped = true
			t := now
			o.ShippedAt = &t
		case model.StatusDelivered:
			o.IsDelivered = true
			t := now
			o.DeliveredAt = &t
		}
	}

	if req.TrackingNumber != nil {
		o.TrackingNumber = *req.TrackingNumber
	}
	if req.TrackingURL != nil {
		o.TrackingURL = *req.TrackingURL
	}
	if req.StatusNote != nil {
		o.StatusNote = *req.StatusNote
	}

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// ApplyPayment records a payment confirmation submitted by the caller. Only
// the order's owner or an admin may confirm.
func (s *OrderService) ApplyPayment(ctx context.Context, orderID string, caller *model.Principal, pr dto.PaymentResultDTO) (*model.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin && o.UserID.Hex() != caller.ID {
		return nil, ErrForbidden
	}
	return s.markPaid(ctx, o, pr)
}

// MarkPaid is the backend path used by the payment-confirmed consumer; the
// broker message carries no caller identity.
func (s *OrderService) MarkPaid(ctx context.Context, orderID string, pr dto.PaymentResultDTO) (*model.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.markPaid(ctx, o, pr)
}

func (s *OrderService) markPaid(ctx context.Context, o *model.Order, pr dto.PaymentResultDTO) (*model.Order, error) {
	t := s.now().UTC()
	o.IsPaid = true
	o.PaidAt = &t
	o.PaymentResult = model.PaymentResult{
		ID:           pr.ID,
		Status:       pr.Status,
		EmailAddress: pr.EmailAddress,
	}
	o.Status = model.StatusProcessing

	if err := s.orders.Save(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Checkout turns the caller's cart into a pending order, decrementing stock
// and pricing the total from the current product prices plus the configured
// shipping fee and tax rate.
func (s *OrderService) Checkout(ctx context.Context, caller *model.Principal, req dto.CheckoutRequest) (*model.Order, error) {
	userID, err := primitive.ObjectIDFromHex(caller.ID)
	if err != nil {
		return nil, ErrForbidden
	}

	cart, err := s.carts.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrEmptyCart
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	subtotal := decimal.Zero
	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		p, err := s.products.FindByID(ctx, it.ProductID.Hex())
		if err != nil {
			return nil, err
		}
		if p.Stock < it.Quantity {
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, p.Name)
		}

		items = append(items, model.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  it.Quantity,
			UnitCents: p.PriceCents,
		})
		line := decimal.NewFromInt(p.PriceCents).Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)

		// No cross-document transaction: stock writes are last-write-wins,
		// same as the rest of the store.
		p.Stock -= it.Quantity
		if err := s.products.Save(ctx, p); err != nil {
			return nil, err
		}
	}

	shippingFee, taxRateBps := s.pricingConfig(ctx)
	tax := subtotal.Mul(decimal.NewFromInt(taxRateBps)).Div(decimal.NewFromInt(10000)).Round(0)
	total := subtotal.Add(tax).Add(decimal.NewFromInt(shippingFee))

	order := &model.Order{
		Number:       "ORD-" + uuid.NewString(),
		UserID:       userID,
		Items:        items,
		TotalCents:   total.IntPart(),
		Status:       model.StatusPending,
		ShippingAddr: req.ShippingAddress,
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.carts.DeleteByUserID(ctx, userID); err != nil {
		log.Printf("clearing cart for user %s: %v", caller.ID, err)
	}

	if s.publisher != nil {
		if err := s.publisher.OrderPlaced(ctx, order); err != nil {
			log.Printf("publishing order placed event for %s: %v", order.Number, err)
		}
	}

	return order, nil
}

func (s *OrderService) pricingConfig(ctx context.Context) (shippingFeeCents, taxRateBps int64) {
	st, err := s.settings.Get(ctx)
	if err != nil {
		return 0, 0
	}
	return st.ShippingFeeCents, st.TaxRateBps
}

// GetForCaller loads an order the caller is allowed to see.
func (s *OrderService) GetForCaller(ctx context.Context, orderID string, caller *model.Principal) (*model.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin && o.UserID.Hex() != caller.ID {
		return nil, ErrForbidden
	}
	return o, nil
}

func (s *OrderService) GetMine(ctx context.Context, caller *model.Principal) ([]*model.Order, error) {
	userID, err := primitive.ObjectIDFromHex(caller.ID)
	if err != nil {
		return nil, ErrForbidden
	}
	return s.orders.FindByUserID(ctx, userID)
}

func (s *OrderService) GetAll(ctx context.Context) ([]*model.Order, error) {
	return s.orders.FindAll(ctx)
}

func (s *OrderService) GetByStatus(ctx context.Context, status string) ([]*model.Order, error) {
	return s.orders.FindByStatus(ctx, status)
}
