package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/farmops/farm-api/internal/core/ports"
)

// DashboardService aggregates overview statistics for the manager dashboard.
type DashboardService struct {
	animals   ports.AnimalRepository
	employees ports.EmployeeRepository
	milk      ports.MilkRepository
	orders    ports.OrderRepository
	log       zerolog.Logger
}

func NewDashboardService(
	animals ports.AnimalRepository,
	employees ports.EmployeeRepository,
	milk ports.MilkRepository,
	orders ports.OrderRepository,
	log zerolog.Logger,
) *DashboardService {
	return &DashboardService{
		animals:   animals,
		employees: employees,
		milk:      milk,
		orders:    orders,
		log:       log,
	}
}

// Stats gathers counts and aggregates across the record collections. A
// failure in any one source fails the whole call; partial dashboards would be
// worse than an error.
func (s *DashboardService) Stats(ctx context.Context) (*ports.DashboardStats, error) {
	totalAnimals, err := s.animals.Count(ctx)
	if err != nil {
		return nil, err
	}

	totalEmployees, err := s.employees.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	todayMilk, err := s.milk.TotalForDay(ctx, today)
	if err != nil {
		return nil, err
	}

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthlyRevenue, err := s.orders.RevenueSince(ctx, startOfMonth)
	if err != nil {
		return nil, err
	}

	return &ports.DashboardStats{
		TotalAnimals:      totalAnimals,
		TotalEmployees:    totalEmployees,
		TodayMilkQuantity: todayMilk,
		MonthlyRevenue:    monthlyRevenue,
	}, nil
}
