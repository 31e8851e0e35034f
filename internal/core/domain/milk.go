package domain

import "time"

// MilkQuality grades a production record.
type MilkQuality string

const (
	QualityExcellent MilkQuality = "Excellent"
	QualityGood      MilkQuality = "Good"
	QualityAverage   MilkQuality = "Average"
	QualityPoor      MilkQuality = "Poor"
)

// Valid reports whether q is a known quality grade.
func (q MilkQuality) Valid() bool {
	switch q {
	case QualityExcellent, QualityGood, QualityAverage, QualityPoor:
		return true
	}
	return false
}

// Score maps a quality grade onto the 1..4 scale used by the stats pipeline.
func (q MilkQuality) Score() int {
	switch q {
	case QualityExcellent:
		return 4
	case QualityGood:
		return 3
	case QualityAverage:
		return 2
	case QualityPoor:
		return 1
	}
	return 0
}

// Quantity bounds for a single milking, in kilograms.
const (
	MinMilkQuantityKg = 0.1
	MaxMilkQuantityKg = 50
)

// MilkRecord is a single day's production entry for one animal.
type MilkRecord struct {
	ID             string      `json:"id" bson:"_id,omitempty"`
	ProductionDate time.Time   `json:"production_date" bson:"production_date"`
	AnimalID       string      `json:"animal_id" bson:"animal_id"`
	Quantity       float64     `json:"quantity" bson:"quantity"`
	Quality        MilkQuality `json:"quality" bson:"quality"`
	RecordedBy     string      `json:"recorded_by" bson:"recorded_by"`
	RecordedByName string      `json:"recorded_by_name,omitempty" bson:"recorded_by_name,omitempty"`
	CreatedAt      time.Time   `json:"created_at" bson:"created_at"`
}

// MilkDayStats is one row of the per-day production aggregation.
type MilkDayStats struct {
	Date          string  `json:"date" bson:"_id"`
	TotalQuantity float64 `json:"total_quantity" bson:"total_quantity"`
	Count         int     `json:"count" bson:"count"`
	AvgQuality    float64 `json:"avg_quality" bson:"avg_quality"`
	QualityRating string  `json:"quality_rating" bson:"quality_rating"`
}
