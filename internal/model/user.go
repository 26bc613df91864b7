package model

import "time"

// User represents a registered account. Password always holds a bcrypt hash,
// never plaintext, and is excluded from JSON serialization.
type User struct {
	ID           int64     `db:"id" json:"id"`
	FirstName    string    `db:"first_name" json:"firstName"`
	LastName     string    `db:"last_name" json:"lastName"`
	EmailAddress string    `db:"email_address" json:"emailAddress"`
	Password     string    `db:"password" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}
