package repositories

import (
	"context"

	"tracker/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ActivityLogRepository interface {
	Create(ctx context.Context, entry *models.ActivityLog) error
	GetRecentByUserID(ctx context.Context, userID string, limit int) ([]models.ActivityLog, error)
}

type activityLogRepo struct {
	db *pgxpool.Pool
}

func NewActivityLogRepository(db *pgxpool.Pool) ActivityLogRepository {
	return &activityLogRepo{db: db}
}

func (r *activityLogRepo) Create(ctx context.Context, entry *models.ActivityLog) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO activity_logs (id, user_id, action, entity_type, entity_id, detail)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at`,
		entry.ID, entry.UserID, entry.Action, entry.EntityType, entry.EntityID, entry.Detail,
	).Scan(&entry.CreatedAt)
}

func (r *activityLogRepo) GetRecentByUserID(ctx context.Context, userID string, limit int) ([]models.ActivityLog, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, action, entity_type, entity_id, detail, created_at
		FROM activity_logs
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.ActivityLog
	for rows.Next() {
		var e models.ActivityLog
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.EntityType, &e.EntityID, &e.Detail, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
