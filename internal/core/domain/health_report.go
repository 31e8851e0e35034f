package domain

import "time"

// HealthReport records a treatment administered to an animal.
type HealthReport struct {
	ID            string    `json:"id" bson:"_id,omitempty"`
	AnimalID      string    `json:"animal_id" bson:"animal_id"`
	AnimalName    string    `json:"animal_name" bson:"animal_name"`
	Date          time.Time `json:"date" bson:"date"`
	Treatment     string    `json:"treatment" bson:"treatment"`
	Cost          float64   `json:"cost" bson:"cost"`
	TreatedBy     string    `json:"treated_by" bson:"treated_by"`
	TreatedByName string    `json:"treated_by_name,omitempty" bson:"treated_by_name,omitempty"`
	RecordedAt    time.Time `json:"recorded_at" bson:"recorded_at"`
}
