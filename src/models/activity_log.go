package models

import "time"

// ActivityLog records a successful mutation for auditing. Writing it is
// fire-and-forget: a failed insert never fails the mutation it describes.
type ActivityLog struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Action     string    `db:"action"`
	EntityType string    `db:"entity_type"`
	EntityID   string    `db:"entity_id"`
	Detail     string    `db:"detail"`
	CreatedAt  time.Time `db:"created_at"`
}
