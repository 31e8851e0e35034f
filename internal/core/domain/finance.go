package domain

import "time"

// FinanceRecord captures revenue and expense totals for a single day.
type FinanceRecord struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Date         time.Time `json:"date" bson:"date"`
	TotalRevenue float64   `json:"total_revenue" bson:"total_revenue"`
	TotalExpense float64   `json:"total_expense" bson:"total_expense"`
	RecordedBy   string    `json:"recorded_by" bson:"recorded_by"`
	RecordedAt   time.Time `json:"recorded_at" bson:"recorded_at"`
}

// FinanceMonthStats is one row of the per-month finance aggregation.
type FinanceMonthStats struct {
	Month        string  `json:"month" bson:"_id"`
	TotalRevenue float64 `json:"total_revenue" bson:"total_revenue"`
	TotalExpense float64 `json:"total_expense" bson:"total_expense"`
	Count        int     `json:"count" bson:"count"`
}
