package domain

import "time"

// Sale is a point-of-sale record entered by an employee.
type Sale struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	SaleID         string    `json:"sale_id" bson:"sale_id"`
	SaleDate       time.Time `json:"sale_date" bson:"sale_date"`
	CustomerName   string    `json:"customer_name" bson:"customer_name"`
	ProductID      string    `json:"product_id" bson:"product_id"`
	TotalCost      float64   `json:"total_cost" bson:"total_cost"`
	RecordedBy     string    `json:"recorded_by" bson:"recorded_by"`
	RecordedByName string    `json:"recorded_by_name,omitempty" bson:"recorded_by_name,omitempty"`
	RecordedAt     time.Time `json:"recorded_at" bson:"recorded_at"`
}

// SalesDayStats is one row of the per-day sales aggregation.
type SalesDayStats struct {
	Date         string   `json:"date" bson:"_id"`
	TotalSales   float64  `json:"total_sales" bson:"total_sales"`
	Count        int      `json:"count" bson:"count"`
	ProductsSold []string `json:"products_sold" bson:"products_sold"`
}
