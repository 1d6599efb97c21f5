package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-service/internal/model"
	"storefront-service/internal/repository"
)

type WishlistRepository interface {
	Save(ctx context.Context, w *model.Wishlist) error
	FindByUserID(ctx context.Context, userID primitive.ObjectID) (*model.Wishlist, error)
}

type WishlistService struct {
	wishlists WishlistRepository
	products  ProductRepository
}

func NewWishlistService(wishlists WishlistRepository, products ProductRepository) *WishlistService {
	return &WishlistService{wishlists: wishlists, products: products}
}

func (s *WishlistService) Get(ctx context.Context, caller *model.Principal) (*model.Wishlist, error) {
	userID, err := primitive.ObjectIDFromHex(caller.ID)
	if err != nil {
		return nil, ErrForbidden
	}
	w, err := s.wishlists.FindByUserID(ctx, userID)
	if err == repository.ErrNotFound {
		return &model.Wishlist{UserID: userID, ProductIDs: []primitive.ObjectID{}}, nil
	}
	return w, err
}

func (s *WishlistService) Add(ctx context.Context, caller *model.Principal, productID string) (*model.Wishlist, error) {
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	w, err := s.Get(ctx, caller)
	if err != nil {
		return nil, err
	}

	for _, id := range w.ProductIDs {
		if id == pid {
			return w, nil
		}
	}
	w.ProductIDs = append(w.ProductIDs, pid)

	if err := s.wishlists.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *WishlistService) Remove(ctx context.Context, caller *model.Principal, productID string) (*model.Wishlist, error) {
	pid, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, repository.ErrNotFound
	}

	w, err := s.Get(ctx, caller)
	if err != nil {
		return nil, err
	}

	ids := w.ProductIDs[:0]
	for _, id := range w.ProductIDs {
		if id != pid {
			ids = append(ids, id)
		}
	}
	w.ProductIDs = ids

	if err := s.wishlists.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}
