package domain

import "time"

// Product is a sellable farm product listed in the catalog.
type Product struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	ProductID      string    `json:"product_id" bson:"product_id"`
	Name           string    `json:"name" bson:"name"`
	PricePerUnit   float64   `json:"price_per_unit" bson:"price_per_unit"`
	Availability   string    `json:"availability" bson:"availability"`
	ProductionDate time.Time `json:"production_date" bson:"production_date"`
	ExpirationDate time.Time `json:"expiration_date" bson:"expiration_date"`
	CreatedBy      string    `json:"created_by" bson:"created_by"`
	CreatedByName  string    `json:"created_by_name,omitempty" bson:"created_by_name,omitempty"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
