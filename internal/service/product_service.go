package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"storefront-be/internal/cache"
	"storefront-be/internal/entities"
	"storefront-be/internal/models"
	"storefront-be/internal/repository"
)

const productListCacheKey = "products:all"

// ProductService defines the interface for product catalog business logic
type ProductService interface {
	List(ctx context.Context) ([]*entities.Product, error)
	Get(ctx context.Context, id int64) (*entities.Product, error)
	Create(ctx context.Context, req *models.CreateProductRequest) (*entities.Product, error)
	Update(ctx context.Context, id int64, req *models.UpdateProductRequest) (*entities.Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	repo     repository.ProductRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

// NewProductService creates a new product service. cacheClient may be nil.
func NewProductService(repo repository.ProductRepository, cacheClient cache.Cache, cacheTTL time.Duration) ProductService {
	svc := &productService{
		repo:     repo,
		cacheTTL: cacheTTL,
	}
	// Only set cache if provided (allows graceful degradation)
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

func productCacheKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}

// List returns all products, served from cache when possible
func (s *productService) List(ctx context.Context) ([]*entities.Product, error) {
	var cached []*entities.Product
	if s.readCache(ctx, productListCacheKey, &cached) {
		return cached, nil
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, productListCacheKey, products)
	return products, nil
}

// Get returns a single product, served from cache when possible
func (s *productService) Get(ctx context.Context, id int64) (*entities.Product, error) {
	var cached entities.Product
	if s.readCache(ctx, productCacheKey(id), &cached) {
		return &cached, nil
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, productCacheKey(id), product)
	return product, nil
}

// Create inserts a new product
func (s *productService) Create(ctx context.Context, req *models.CreateProductRequest) (*entities.Product, error) {
	product, err := s.repo.Create(ctx, &entities.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, productListCacheKey)
	return product, nil
}

// Update applies a partial update to a product
func (s *productService) Update(ctx context.Context, id int64, req *models.UpdateProductRequest) (*entities.Product, error) {
	product, err := s.repo.Update(ctx, id, repository.ProductChanges{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		ImageURL:    req.ImageURL,
		IsFeatured:  req.IsFeatured,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, productCacheKey(id), productListCacheKey)
	return product, nil
}

// Delete removes a product
func (s *productService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, productCacheKey(id), productListCacheKey)
	return nil
}

// readCache reports whether dest was filled from cache
func (s *productService) readCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}

	err := s.cache.GetJSON(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		log.Printf("Warning: failed to read %s from cache: %v", key, err)
	}
	return false
}

func (s *productService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetJSON(ctx, key, value, s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache %s: %v", key, err)
	}
}

func (s *productService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Printf("Warning: failed to invalidate %v: %v", keys, err)
	}
}
