package services

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/domain"
	"restaurant/internal/domain/models"
	"restaurant/internal/repositories"
	"restaurant/internal/utils"
)

// AdminService backs the dashboard aggregates.
type AdminService struct {
	OrderRepo repositories.OrderRepository
	UserRepo  repositories.UserRepository
	Now       func() time.Time
}

func (s AdminService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s AdminService) Stats(ctx context.Context, rng *domain.DateRange) (models.AdminStats, error) {
	return s.OrderRepo.Stats(ctx, rng)
}

func (s AdminService) Analytics(ctx context.Context, rng *domain.DateRange) (models.Analytics, error) {
	var out models.Analytics
	var err error

	if out.Daily, err = s.OrderRepo.DailyRevenue(ctx, rng); err != nil {
		return out, fmt.Errorf("daily revenue: %w", err)
	}
	if out.TopItems, err = s.OrderRepo.TopItems(ctx, rng, 10); err != nil {
		return out, fmt.Errorf("top items: %w", err)
	}
	return out, nil
}

func (s AdminService) CustomerAnalytics(ctx context.Context) (models.CustomerAnalytics, error) {
	var out models.CustomerAnalytics

	total, recent, err := s.UserRepo.Counts(ctx, s.now().AddDate(0, 0, -30))
	if err != nil {
		return out, fmt.Errorf("customer counts: %w", err)
	}
	out.TotalCustomers = total
	out.NewCustomers = recent

	if out.TopCustomers, err = s.OrderRepo.TopCustomers(ctx, 10); err != nil {
		return out, fmt.Errorf("top customers: %w", err)
	}
	return out, nil
}
