package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-service/internal/dto"
	"storefront-service/internal/model"
	"storefront-service/internal/repository"
)

type CartService struct {
	carts    CartRepository
	products ProductRepository
}

func NewCartService(carts CartRepository, products ProductRepository) *CartService {
	return &CartService{carts: carts, products: products}
}

// Get returns the caller's cart, or an empty one when nothing was saved yet.
func (s *CartService) Get(ctx context.Context, caller *model.Principal) (*model.Cart, error) {
	userID, err := primitive.ObjectIDFromHex(caller.ID)
	if err != nil {
		return nil, ErrForbidden
	}
	cart, err := s.carts.FindByUserID(ctx, userID)
	if err == repository.ErrNotFound {
		return &model.Cart{UserID: userID, Items: []model.CartItem{}}, nil
	}
	return cart, err
}

// AddItem merges the quantity into an existing line or appends a new one.
func (s *CartService) AddItem(ctx context.Context, caller *model.Principal, req dto.CartItemRequest) (*model.Cart, error) {
	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	if _, err := s.products.FindByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	cart, err := s.Get(ctx, caller)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			cart.Items[i].Quantity += req.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, model.CartItem{ProductID: productID, Quantity: req.Quantity})
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateItem sets an exact quantity; zero or less removes the line.
func (s *CartService) UpdateItem(ctx context.Context, caller *model.Principal, productID string, quantity int) (*model.Cart, error) {
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	cart, err := s.Get(ctx, caller)
	if err != nil {
		return nil, err
	}

	found := false
	items := cart.Items[:0]
	for _, it := range cart.Items {
		if it.ProductID == pid {
			found = true
			if quantity > 0 {
				it.Quantity = quantity
				items = append(items, it)
			}
			continue
		}
		items = append(items, it)
	}
	if !found {
		return nil, repository.ErrNotFound
	}
	cart.Items = items

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, caller *model.Principal, productID string) (*model.Cart, error) {
	return s.UpdateItem(ctx, caller, productID, 0)
}

func (s *CartService) Clear(ctx context.Context, caller *model.Principal) error {
	userID, err := primitive.ObjectIDFromHex(caller.ID)
	if err != nil {
		return ErrForbidden
	}
	return s.carts.DeleteByUserID(ctx, userID)
}
