package models

import "time"

type Team struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	County       string    `json:"county" db:"county"`
	Constituency *string   `json:"constituency,omitempty" db:"constituency"`
	OrgID        *string   `json:"org_id,omitempty" db:"org_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
