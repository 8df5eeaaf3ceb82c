package models

// TimeSlot is a kickoff time of day offered on every playable day of the
// tournament window. StartTime uses the 24h "15:04" layout.
type TimeSlot struct {
	ID        string `json:"id" db:"id"`
	StartTime string `json:"start_time" db:"start_time"`
	Label     string `json:"label" db:"label"`
}
