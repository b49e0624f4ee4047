package services

import (
	"context"
	"fmt"

	"hardware-store/models"
	"hardware-store/repositories"
)

type StatsService struct {
	products repositories.ProductRepository
	users    repositories.UserRepository
	orders   repositories.OrderRepository
}

func NewStatsService(products repositories.ProductRepository, users repositories.UserRepository, orders repositories.OrderRepository) *StatsService {
	return &StatsService{products: products, users: users, orders: orders}
}

func (s *StatsService) Stats(ctx context.Context) (*models.AdminStats, error) {
	var (
		stats models.AdminStats
		err   error
	)

	if stats.TotalProducts, err = s.products.Count(ctx); err != nil {
		return nil, fmt.Errorf("count products: %w", err)
	}
	if stats.TotalUsers, err = s.users.Count(ctx); err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	if stats.TotalOrders, err = s.orders.Count(ctx); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	if stats.Revenue, err = s.orders.Revenue(ctx); err != nil {
		return nil, fmt.Errorf("sum revenue: %w", err)
	}
	return &stats, nil
}
