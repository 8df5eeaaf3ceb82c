package models

import "time"

type Venue struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Location     string    `json:"location" db:"location"`
	County       string    `json:"county" db:"county"`
	Constituency *string   `json:"constituency,omitempty" db:"constituency"`
	PitchCount   int       `json:"pitch_count" db:"pitch_count"`
	Latitude     *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64  `json:"longitude,omitempty" db:"longitude"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
