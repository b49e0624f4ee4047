package services

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hardware-store/models"
	"hardware-store/repositories"
)

func newCatalog() *ProductService {
	repo := repositories.NewMemoryProductRepository(repositories.SeedProducts(), repositories.SeedCategories())
	return NewProductService(repo, nil)
}

func TestProductList(t *testing.T) {
	ctx := context.Background()
	svc := newCatalog()

	all, err := svc.List(ctx, models.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, len(repositories.SeedProducts()), all.Total)

	tools, err := svc.List(ctx, models.ProductFilter{Category: "herramientas eléctricas"})
	require.NoError(t, err)
	for _, p := range tools.Products {
		assert.Equal(t, "Herramientas Eléctricas", p.Category)
	}
	assert.NotZero(t, tools.Total)

	search, err := svc.List(ctx, models.ProductFilter{Search: "mar001"})
	require.NoError(t, err)
	require.Len(t, search.Products, 1)
	assert.Equal(t, "1", search.Products[0].ID)
}

func TestProductCRUD(t *testing.T) {
	ctx := context.Background()
	svc := newCatalog()

	created, err := svc.Create(ctx, models.CreateProductRequest{
		Name: "Nivel Láser", Code: "NIV001", Price: 64000, Stock: 5, Category: "Herramientas",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, []string{}, created.Images)

	price := int64(59000)
	updated, err := svc.Update(ctx, created.ID, models.UpdateProductRequest{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, price, updated.Price)
	assert.Equal(t, "Nivel Láser", updated.Name)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrProductNotFound)

	_, err = svc.Update(ctx, created.ID, models.UpdateProductRequest{})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCategoriesCountProducts(t *testing.T) {
	list, err := newCatalog().Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, len(repositories.SeedCategories()), list.Total)

	total := 0
	for _, c := range list.Categories {
		total += c.ProductCount
	}
	assert.Equal(t, len(repositories.SeedProducts()), total)
}

func TestStats(t *testing.T) {
	ctx := context.Background()
	products := repositories.NewMemoryProductRepository(repositories.SeedProducts(), nil)
	users := repositories.NewMemoryUserRepository()
	orders := repositories.NewMemoryOrderRepository()

	require.NoError(t, NewAuthService(users, testSecret, 0, false).SeedUsers(ctx))
	require.NoError(t, orders.Create(ctx, &models.Order{ID: "a", Total: 1000, Status: models.OrderDelivered}))
	require.NoError(t, orders.Create(ctx, &models.Order{ID: "b", Total: 500, Status: models.OrderPending}))

	stats, err := NewStatsService(products, users, orders).Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(repositories.SeedProducts()), stats.TotalProducts)
	assert.Equal(t, 2, stats.TotalUsers)
	assert.Equal(t, 2, stats.TotalOrders)
	assert.Equal(t, int64(1000), stats.Revenue)
}

func TestListCacheKey(t *testing.T) {
	assert.Equal(t, "products_list__false_", listCacheKey(models.ProductFilter{}))
	assert.Equal(t,
		listCacheKey(models.ProductFilter{Category: "pinturas", Search: "latex"}),
		listCacheKey(models.ProductFilter{Category: "Pinturas", Search: "LATEX"}))
	assert.NotEqual(t,
		listCacheKey(models.ProductFilter{Featured: true}),
		listCacheKey(models.ProductFilter{}))
}

func TestProductListFallsBackWhenCacheIsDown(t *testing.T) {
	ctx := context.Background()
	cache := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = cache.Close() })

	repo := repositories.NewMemoryProductRepository(repositories.SeedProducts(), repositories.SeedCategories())
	svc := NewProductService(repo, cache)

	before, err := svc.List(ctx, models.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, len(repositories.SeedProducts()), before.Total)

	created, err := svc.Create(ctx, models.CreateProductRequest{
		Name: "Cinta Métrica", Code: "CIN001", Price: 9000, Stock: 3, Category: "Herramientas",
	})
	require.NoError(t, err)

	after, err := svc.List(ctx, models.ProductFilter{})
	require.NoError(t, err)
	assert.Equal(t, before.Total+1, after.Total)

	require.NoError(t, svc.Delete(ctx, created.ID))
	after, err = svc.List(ctx, models.ProductFilter{Search: "cin001"})
	require.NoError(t, err)
	assert.Empty(t, after.Products)
}
