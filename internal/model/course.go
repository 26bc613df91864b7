package model

import "time"

// Course represents a teaching unit owned by exactly one user.
// EstimatedTime and MaterialsNeeded are optional and stored as NULL when absent.
type Course struct {
	ID              int64     `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	EstimatedTime   *string   `db:"estimated_time" json:"estimatedTime"`
	MaterialsNeeded *string   `db:"materials_needed" json:"materialsNeeded"`
	UserID          int64     `db:"user_id" json:"userId"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}
