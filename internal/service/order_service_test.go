package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-service/internal/dto"
	"storefront-service/internal/model"
	"storefront-service/internal/repository"
)

func strPtr(s string) *string { return &s }

func newOrderFixture(t *testing.T) (*OrderService, *fakeOrderRepo, *fakeProductRepo, *fakeCartRepo, *fakePublisher, *time.Time) {
	t.Helper()
	orders := newFakeOrderRepo()
	products := newFakeProductRepo()
	carts := newFakeCartRepo()
	publisher := &fakePublisher{}
	svc := NewOrderService(orders, products, carts, &fakeSettingsRepo{}, publisher)

	clock := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }
	return svc, orders, products, carts, publisher, &clock
}

func seedOrder(t *testing.T, orders *fakeOrderRepo, o *model.Order) *model.Order {
	t.Helper()
	require.NoError(t, orders.Create(context.Background(), o))
	return o
}

func TestApplyStatusUpdate_ProcessingIsIdempotentOnPaidAt(t *testing.T) {
	svc, orders, _, _, _, clock := newOrderFixture(t)
	o := seedOrder(t, orders, &model.Order{Status: model.StatusPending})

	first, err := svc.ApplyStatusUpdate(context.Background(), o.ID.Hex(), dto.UpdateOrderStatusRequest{
		Status: strPtr(model.StatusProcessing),
	})
	require.NoError(t, err)
	require.NotNil(t, first.PaidAt)
	assert.True(t, first.IsPaid)

	*clock = clock.Add(time.Hour)

	second, err := svc.ApplyStatusUpdate(context.Background(), o.ID.Hex(), dto.UpdateOrderStatusRequest{
		Status: strPtr(model.StatusProcessing),
	})
	require.NoError(t, err)
	assert.Equal(t, *first.PaidAt, *second.PaidAt, "paidAt must keep its first value")
}

func TestApplyStatusUpdate_ShippedOverwritesShippedAt(t *testing.T) {
	svc, orders, _, _, _, clock := newOrderFixture(t)
	o := seedOrder(t, orders, &model.Order{Status: model.StatusProcessing})

	first, err := svc.ApplyStatusUpdate(context.Background(), o.ID.Hex(), dto.UpdateOrderStatusRequest{
		Status: strPtr(model.StatusShipped),
	})
	require.NoError(t, err)
	require.NotNil(t, first.ShippedAt)

	*clock = clock.Add(time.Hour)

	second, err := svc.ApplyStatusUpdate(context.Background(), o.ID.Hex(), dto.UpdateOrderStatusRequest{
		Status: strPtr(model.StatusShipped),
	})
	require.NoError(t, err)
	assert.NotEqual(t, *first.ShippedAt, *second.ShippedAt, "shippedAt is rewritten on every call")
	assert.True(t, second.IsShipped)
}

func TestApplyStatusUpdate_DeliveredLeavesPaymentUntouched(t *testing.T) {
	svc, orders, _, _, _, _ := newOrderFixture(t)
	o := seedOrder(t, orders, &model.Order{Status: model.StatusProcessing, IsPaid: false})

	updated, err := svc.ApplyStatusUpdate(context.Background(), o.ID.Hex(), dto.UpdateOrderStatusRequest{
		Status: strPtr(model.StatusDelivered),
	})
	require.NoError(t, err)

	assert.Equal(t, model.StatusDelivered, updated.Status)
	assert.True(t, updated.IsDelivered)
	require.NotNil(t, updated.DeliveredAt)
	assert.False(t, updated.IsPaid, "delivery does not imply payment")
	assert.Nil(t, updated.PaidAt)
}

func TestApplyStatusUpdate_UnknownStatusStoredVerbatim(t *testing.T) {
	svc, orders, _, _, _, _ := newOrderFixture(t)
	o := seedOrder(t, orders, &model.Order{Status: model.StatusPending})

	updated, err := svc.ApplyStatusUpdate(context.Background(), o.ID.Hex(), dto.UpdateOrderStatusRequest{
		Status: strPtr("Awaiting Pigeon"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Awaiting Pigeon", updated.Status)
	assert.False(t, updated.IsPaid)
	assert.False(t, updated.IsShipped)
	assert.False(t, updated.IsDelivered)
}

func TestApplyStatusUpdate_EmptyStringOverwritesWhenPresent(t *testing.T) {
	svc, orders, _, _, _, _ := newOrderFixture(t)
	o := seedOrder(t, orders, &model.Order{
		Status:         model.StatusShipped,
		TrackingNumber: "TRK-1",
		TrackingURL:    "https://track.example/TRK-1",
		StatusNote:     "left warehouse",
	})

	updated, err := svc.ApplyStatusUpdate(context.Background(), o.ID.Hex(), dto.UpdateOrderStatusRequest{
		TrackingNumber: strPtr(""),
		StatusNote:     strPtr("carrier lost the label"),
	})
	require.NoError(t, err)

	assert.Empty(t, updated.TrackingNumber, "present-but-empty clears the field")
	assert.Equal(t, "https://track.example/TRK-1", updated.TrackingURL, "absent field is untouched")
	assert.Equal(t, "carrier lost the label", updated.StatusNote)
}

func TestApplyStatusUpdate_UnknownOrder(t *testing.T) {
	svc, _, _, _, _, _ := newOrderFixture(t)

	_, err := svc.ApplyStatusUpdate(context.Background(), primitive.NewObjectID().Hex(), dto.UpdateOrderStatusRequest{
		Status: strPtr(model.StatusShipped),
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestApplyPayment_OwnershipEnforced(t *testing.T) {
	svc, orders, _, _, _, _ := newOrderFixture(t)
	owner := primitive.NewObjectID()
	o := seedOrder(t, orders, &model.Order{UserID: owner, Status: model.StatusPending})

	pr := dto.PaymentResultDTO{ID: "PAY-9", Status: "COMPLETED", EmailAddress: "buyer@example.com"}

	_, err := svc.ApplyPayment(context.Background(), o.ID.Hex(),
		&model.Principal{ID: primitive.NewObjectID().Hex()}, pr)
	assert.ErrorIs(t, err, ErrForbidden, "a stranger cannot confirm payment")

	updated, err := svc.ApplyPayment(context.Background(), o.ID.Hex(),
		&model.Principal{ID: owner.Hex()}, pr)
	require.NoError(t, err)
	assert.True(t, updated.IsPaid)
	require.NotNil(t, updated.PaidAt)
	assert.Equal(t, model.StatusProcessing, updated.Status)
	assert.Equal(t, "PAY-9", updated.PaymentResult.ID)
	assert.Equal(t, "COMPLETED", updated.PaymentResult.Status)
	assert.Equal(t, "buyer@example.com", updated.PaymentResult.EmailAddress)
}

func TestApplyPayment_AdminMayConfirmAnyOrder(t *testing.T) {
	svc, orders, _, _, _, _ := newOrderFixture(t)
	o := seedOrder(t, orders, &model.Order{UserID: primitive.NewObjectID(), Status: model.StatusPending})

	updated, err := svc.ApplyPayment(context.Background(), o.ID.Hex(),
		&model.Principal{ID: primitive.NewObjectID().Hex(), IsAdmin: true},
		dto.PaymentResultDTO{ID: "PAY-1"})
	require.NoError(t, err)
	assert.True(t, updated.IsPaid)
}

func TestCheckout(t *testing.T) {
	svc, orders, products, carts, publisher, _ := newOrderFixture(t)
	svc.settings = &fakeSettingsRepo{settings: &model.Settings{
		ShippingFeeCents: 500,
		TaxRateBps:       1000, // 10%
	}}

	p := &model.Product{Name: "Mug", PriceCents: 1250, Stock: 10}
	require.NoError(t, products.Create(context.Background(), p))

	userID := primitive.NewObjectID()
	require.NoError(t, carts.Save(context.Background(), &model.Cart{
		UserID: userID,
		Items:  []model.CartItem{{ProductID: p.ID, Quantity: 2}},
	}))

	caller := &model.Principal{ID: userID.Hex()}
	order, err := svc.Checkout(context.Background(), caller, dto.CheckoutRequest{})
	require.NoError(t, err)

	// 2 * 1250 = 2500 subtotal, +250 tax, +500 shipping
	assert.EqualValues(t, 3250, order.TotalCents)
	assert.Equal(t, model.StatusPending, order.Status)
	assert.False(t, order.IsPaid)
	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.EqualValues(t, 1250, order.Items[0].UnitCents)
	assert.Contains(t, order.Number, "ORD-")

	stocked, err := products.FindByID(context.Background(), p.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, 8, stocked.Stock, "stock decremented at checkout")

	_, err = carts.FindByUserID(context.Background(), userID)
	assert.ErrorIs(t, err, repository.ErrNotFound, "cart cleared after checkout")

	require.Len(t, publisher.placed, 1)
	assert.Equal(t, order.ID, publisher.placed[0].ID)

	saved, err := orders.FindByID(context.Background(), order.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, order.Number, saved.Number)
}

func TestCheckout_InsufficientStock(t *testing.T) {
	svc, _, products, carts, _, _ := newOrderFixture(t)

	p := &model.Product{Name: "Mug", PriceCents: 1250, Stock: 1}
	require.NoError(t, products.Create(context.Background(), p))

	userID := primitive.NewObjectID()
	require.NoError(t, carts.Save(context.Background(), &model.Cart{
		UserID: userID,
		Items:  []model.CartItem{{ProductID: p.ID, Quantity: 5}},
	}))

	_, err := svc.Checkout(context.Background(), &model.Principal{ID: userID.Hex()}, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestCheckout_EmptyCart(t *testing.T) {
	svc, _, _, _, _, _ := newOrderFixture(t)

	_, err := svc.Checkout(context.Background(), &model.Principal{ID: primitive.NewObjectID().Hex()}, dto.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestGetForCaller(t *testing.T) {
	svc, orders, _, _, _, _ := newOrderFixture(t)
	owner := primitive.NewObjectID()
	o := seedOrder(t, orders, &model.Order{UserID: owner})

	_, err := svc.GetForCaller(context.Background(), o.ID.Hex(), &model.Principal{ID: primitive.NewObjectID().Hex()})
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := svc.GetForCaller(context.Background(), o.ID.Hex(), &model.Principal{ID: owner.Hex()})
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)

	got, err = svc.GetForCaller(context.Background(), o.ID.Hex(), &model.Principal{IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)
}

func TestMarkPaid_GatewayPath(t *testing.T) {
	svc, orders, _, _, _, _ := newOrderFixture(t)
	o := seedOrder(t, orders, &model.Order{UserID: primitive.NewObjectID(), Status: model.StatusPending})

	updated, err := svc.MarkPaid(context.Background(), o.ID.Hex(), dto.PaymentResultDTO{ID: "PAY-7", Status: "COMPLETED"})
	require.NoError(t, err)
	assert.True(t, updated.IsPaid)
	assert.Equal(t, model.StatusProcessing, updated.Status)
}
