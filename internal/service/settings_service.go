package service

import (
	"context"

	"storefront-service/internal/cache"
	"storefront-service/internal/dto"
	"storefront-service/internal/model"
	"storefront-service/internal/repository"
)

const cacheKeySettings = "settings"

type SettingsService struct {
	repo  SettingsRepository
	cache *cache.Cache
}

func NewSettingsService(repo SettingsRepository, c *cache.Cache) *SettingsService {
	return &SettingsService{repo: repo, cache: c}
}

// Get returns the store settings, falling back to defaults before the admin
// saves them for the first time.
func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	if v, ok := s.cache.Get(cacheKeySettings); ok {
		return v.(*model.Settings), nil
	}

	st, err := s.repo.Get(ctx)
	if err == repository.ErrNotFound {
		st = &model.Settings{StoreName: "Storefront", Currency: "USD"}
	} else if err != nil {
		return nil, err
	}

	s.cache.Set(cacheKeySettings, st)
	return st, nil
}

func (s *SettingsService) Update(ctx context.Context, req dto.SettingsRequest) (*model.Settings, error) {
	st := &model.Settings{
		StoreName:        req.StoreName,
		Currency:         req.Currency,
		ShippingFeeCents: req.ShippingFeeCents,
		TaxRateBps:       req.TaxRateBps,
		SupportEmail:     req.SupportEmail,
	}
	if err := s.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	s.cache.Delete(cacheKeySettings)
	return st, nil
}
