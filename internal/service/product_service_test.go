package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storefront-be/internal/apperrors"
	"storefront-be/internal/cache"
	"storefront-be/internal/entities"
	"storefront-be/internal/models"
	"storefront-be/internal/repository"
	"storefront-be/internal/repository/mocks"
)

func newProductRepo(t *testing.T) *mocks.MockProductRepository {
	t.Helper()
	return mocks.NewMockProductRepository(gomock.NewController(t))
}

func newTestCache(t *testing.T) (cache.Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisCache(context.Background(), mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func sampleProduct(id int64) *entities.Product {
	return &entities.Product{
		ID:          id,
		Title:       "Notebook",
		Description: "A powerful notebook for work",
		Price:       4500,
		ImageURL:    "/images/notebook.png",
		IsFeatured:  true,
	}
}

func TestProductService_WithoutCache(t *testing.T) {
	repo := newProductRepo(t)
	svc := NewProductService(repo, nil, time.Minute)
	ctx := context.Background()

	repo.EXPECT().List(gomock.Any()).Return([]*entities.Product{sampleProduct(1)}, nil).Times(2)
	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(sampleProduct(1), nil).Times(2)

	for i := 0; i < 2; i++ {
		products, err := svc.List(ctx)
		require.NoError(t, err)
		assert.Len(t, products, 1)

		product, err := svc.Get(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Notebook", product.Title)
	}
}

func TestProductService_Get_NotFound(t *testing.T) {
	repo := newProductRepo(t)
	svc := NewProductService(repo, nil, time.Minute)

	repo.EXPECT().FindByID(gomock.Any(), int64(99999)).Return(nil, apperrors.ErrNotFound)

	_, err := svc.Get(context.Background(), 99999)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductService_Create(t *testing.T) {
	repo := newProductRepo(t)
	svc := NewProductService(repo, nil, time.Minute)

	repo.EXPECT().
		Create(gomock.Any(), &entities.Product{
			Title:       "Keyboard",
			Description: "Mechanical RGB keyboard",
			Price:       350.5,
			ImageURL:    "/images/keyboard.png",
		}).
		Return(&entities.Product{ID: 7, Title: "Keyboard"}, nil)

	created, err := svc.Create(context.Background(), &models.CreateProductRequest{
		Title:       "Keyboard",
		Description: "Mechanical RGB keyboard",
		Price:       350.5,
		ImageURL:    "/images/keyboard.png",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
}

func TestProductService_Update_PassesOnlyProvidedFields(t *testing.T) {
	repo := newProductRepo(t)
	svc := NewProductService(repo, nil, time.Minute)
	title := "New title"

	repo.EXPECT().
		Update(gomock.Any(), int64(3), repository.ProductChanges{Title: &title}).
		Return(sampleProduct(3), nil)

	_, err := svc.Update(context.Background(), 3, &models.UpdateProductRequest{Title: &title})
	require.NoError(t, err)
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := newProductRepo(t)
	svc := NewProductService(repo, nil, time.Minute)

	repo.EXPECT().Update(gomock.Any(), int64(404), gomock.Any()).Return(nil, apperrors.ErrNotFound)

	_, err := svc.Update(context.Background(), 404, &models.UpdateProductRequest{})
	require.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductService_Delete_Errors(t *testing.T) {
	repo := newProductRepo(t)
	svc := NewProductService(repo, nil, time.Minute)

	repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(apperrors.ErrNotFound)
	repo.EXPECT().Delete(gomock.Any(), int64(2)).Return(errors.New("db down"))

	require.ErrorIs(t, svc.Delete(context.Background(), 1), apperrors.ErrNotFound)
	err := svc.Delete(context.Background(), 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}

func TestProductService_CachesReads(t *testing.T) {
	repo := newProductRepo(t)
	c, mr := newTestCache(t)
	svc := NewProductService(repo, c, time.Minute)
	ctx := context.Background()

	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(sampleProduct(1), nil).Times(1)
	repo.EXPECT().List(gomock.Any()).Return([]*entities.Product{sampleProduct(1)}, nil).Times(1)

	first, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	second, err := svc.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, first.Title, second.Title)
	assert.True(t, mr.Exists("product:1"))

	_, err = svc.List(ctx)
	require.NoError(t, err)
	listed, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)
	assert.True(t, mr.Exists(productListCacheKey))
}

func TestProductService_WritesInvalidateCache(t *testing.T) {
	repo := newProductRepo(t)
	c, mr := newTestCache(t)
	svc := NewProductService(repo, c, time.Minute)
	ctx := context.Background()

	require.NoError(t, mr.Set("product:1", `{"id":1}`))
	require.NoError(t, mr.Set(productListCacheKey, `[]`))

	repo.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).Return(sampleProduct(1), nil)
	_, err := svc.Update(ctx, 1, &models.UpdateProductRequest{})
	require.NoError(t, err)
	assert.False(t, mr.Exists("product:1"))
	assert.False(t, mr.Exists(productListCacheKey))

	require.NoError(t, mr.Set("product:1", `{"id":1}`))
	require.NoError(t, mr.Set(productListCacheKey, `[]`))

	repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
	require.NoError(t, svc.Delete(ctx, 1))
	assert.False(t, mr.Exists("product:1"))
	assert.False(t, mr.Exists(productListCacheKey))

	require.NoError(t, mr.Set(productListCacheKey, `[]`))

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(sampleProduct(2), nil)
	_, err = svc.Create(ctx, &models.CreateProductRequest{})
	require.NoError(t, err)
	assert.False(t, mr.Exists(productListCacheKey))
}

func TestProductService_CacheFailureFallsBackToStore(t *testing.T) {
	repo := newProductRepo(t)
	c, mr := newTestCache(t)
	svc := NewProductService(repo, c, time.Minute)
	mr.Close()

	repo.EXPECT().FindByID(gomock.Any(), int64(1)).Return(sampleProduct(1), nil)

	product, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), product.ID)
}
