package models

import "time"

// Production defines a film/TV production based on the 'productions' table
type Production struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Year      int       `json:"year" db:"year"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
