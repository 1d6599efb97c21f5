package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront-service/internal/cache"
	"storefront-service/internal/dto"
	"storefront-service/internal/model"
	"storefront-service/internal/repository"
)

type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	Save(ctx context.Context, p *model.Product) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context) ([]*model.Product, error)
	FindByCategory(ctx context.Context, categoryID primitive.ObjectID) ([]*model.Product, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, cat *model.Category) error
	Save(ctx context.Context, cat *model.Category) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*model.Category, error)
	FindAll(ctx context.Context) ([]*model.Category, error)
}

const (
	cacheKeyProducts   = "products:all"
	cacheKeyCategories = "categories:all"
)

func cacheKeyProduct(id string) string { return "product:" + id }

// CatalogService serves product and category reads through an injected
// bounded cache; writes invalidate the affected keys.
type CatalogService struct {
	products   ProductRepository
	categories CategoryRepository
	cache      *cache.Cache
}

func NewCatalogService(products ProductRepository, categories CategoryRepository, c *cache.Cache) *CatalogService {
	return &CatalogService{products: products, categories: categories, cache: c}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]*model.Product, error) {
	if v, ok := s.cache.Get(cacheKeyProducts); ok {
		return v.([]*model.Product), nil
	}
	out, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyProducts, out)
	return out, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if v, ok := s.cache.Get(cacheKeyProduct(id)); ok {
		return v.(*model.Product), nil
	}
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyProduct(id), p)
	return p, nil
}

func (s *CatalogService) ListProductsByCategory(ctx context.Context, categoryID string) ([]*model.Product, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return nil, repository.ErrNotFound
	}
	return s.products.FindByCategory(ctx, oid)
}

func (s *CatalogService) CreateProduct(ctx context.Context, req dto.ProductRequest) (*model.Product, error) {
	p, err := s.productFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Delete(cacheKeyProducts)
	return p, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id string, req dto.ProductRequest) (*model.Product, error) {
	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p, err := s.productFromRequest(req)
	if err != nil {
		return nil, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt

	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	s.cache.Delete(cacheKeyProducts)
	s.cache.Delete(cacheKeyProduct(id))
	return p, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id string) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(cacheKeyProducts)
	s.cache.Delete(cacheKeyProduct(id))
	return nil
}

func (s *CatalogService) productFromRequest(req dto.ProductRequest) (*model.Product, error) {
	p := &model.Product{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Stock:       req.Stock,
		Image:       req.Image,
	}
	if req.CategoryID != "" {
		oid, err := primitive.ObjectIDFromHex(req.CategoryID)
		if err != nil {
			return nil, repository.ErrNotFound
		}
		p.CategoryID = oid
	}
	return p, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*model.Category, error) {
	if v, ok := s.cache.Get(cacheKeyCategories); ok {
		return v.([]*model.Category), nil
	}
	out, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(cacheKeyCategories, out)
	return out, nil
}

func (s *CatalogService) CreateCategory(ctx context.Context, req dto.CategoryRequest) (*model.Category, error) {
	cat := &model.Category{Name: req.Name, Slug: req.Slug}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	s.cache.Delete(cacheKeyCategories)
	return cat, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id string, req dto.CategoryRequest) (*model.Category, error) {
	cat, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	cat.Name = req.Name
	cat.Slug = req.Slug
	if err := s.categories.Save(ctx, cat); err != nil {
		return nil, err
	}
	s.cache.Delete(cacheKeyCategories)
	return cat, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(cacheKeyCategories)
	return nil
}
