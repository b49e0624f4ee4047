package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"hardware-store/models"
	"hardware-store/repositories"
)

var ErrProductNotFound = errors.New("product not found")

const (
	productListCachePrefix = "products_list_"
	productListCacheTTL    = 5 * time.Minute
)

type ProductService struct {
	repo  repositories.ProductRepository
	cache *redis.Client
}

// NewProductService caches listings in Redis when cache is non-nil.
func NewProductService(repo repositories.ProductRepository, cache *redis.Client) *ProductService {
	return &ProductService{repo: repo, cache: cache}
}

func listCacheKey(f models.ProductFilter) string {
	return fmt.Sprintf("%s%s_%s_%s", productListCachePrefix,
		strings.ToLower(f.Category), strconv.FormatBool(f.Featured), strings.ToLower(f.Search))
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) (*models.ProductList, error) {
	key := listCacheKey(filter)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			var list models.ProductList
			if json.Unmarshal([]byte(cached), &list) == nil {
				return &list, nil
			}
		}
	}

	products, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	list := &models.ProductList{Products: products, Total: len(products)}

	if s.cache != nil {
		if data, err := json.Marshal(list); err == nil {
			if err := s.cache.Set(ctx, key, data, productListCacheTTL).Err(); err != nil {
				log.Printf("[Cache] failed to cache %s: %v", key, err)
			}
		}
	}
	return list, nil
}

func (s *ProductService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}

	iter := s.cache.Scan(ctx, 0, productListCachePrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		s.cache.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Printf("[Cache] failed to invalidate product lists: %v", err)
	}
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	return product, err
}

func (s *ProductService) Categories(ctx context.Context) (*models.CategoryList, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return &models.CategoryList{Categories: categories, Total: len(categories)}, nil
}

func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	images := req.Images
	if images == nil {
		images = []string{}
	}

	product := &models.Product{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Images:      images,
		Featured:    req.Featured,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

func (s *ProductService) Update(ctx context.Context, id string, req models.UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Code != nil {
		product.Code = *req.Code
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}

	if err := s.repo.Update(ctx, product); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	s.invalidate(ctx)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repositories.ErrNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}
