package ports

import "context"

// DashboardStats is the aggregated overview shown on the manager dashboard.
type DashboardStats struct {
	TotalAnimals      int64   `json:"total_animals"`
	TotalEmployees    int64   `json:"total_employees"`
	TodayMilkQuantity float64 `json:"today_milk_production"`
	MonthlyRevenue    float64 `json:"monthly_revenue"`
}

// DashboardService aggregates statistics across the record collections.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}
