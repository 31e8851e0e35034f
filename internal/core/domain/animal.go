package domain

import "time"

// Animal is a livestock record identified by a farm-assigned tag id.
type Animal struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	AnimalID     string    `json:"animal_id" bson:"animal_id"`
	Name         string    `json:"name" bson:"name"`
	Weight       float64   `json:"weight" bson:"weight"`
	Gender       string    `json:"gender" bson:"gender"`
	Type         string    `json:"type" bson:"type"`
	Age          string    `json:"age" bson:"age"`
	RegisteredAt time.Time `json:"registered_at" bson:"registered_at"`
}
