package models

import "time"

type Portfolio struct {
	ID          string     `db:"id"`
	UserID      string     `db:"user_id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	Deleted     bool       `db:"deleted"`
	DeletedAt   *time.Time `db:"deleted_at"`
}
