package repositories

import (
	"context"
	"time"

	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PortfolioRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.Portfolio, error)
	Create(ctx context.Context, p *models.Portfolio, tx pgx.Tx) error
	SoftDelete(ctx context.Context, id string) error
}

type portfolioRepo struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) PortfolioRepository {
	return &portfolioRepo{db: db}
}

func (r *portfolioRepo) GetByUserID(ctx context.Context, userID string) ([]models.Portfolio, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, name, description, created_at, deleted, deleted_at
		FROM portfolios
		WHERE user_id = $1 AND deleted = FALSE
		ORDER BY created_at`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var portfolios []models.Portfolio
	for rows.Next() {
		var p models.Portfolio
		if err := rows.Scan(&p.ID, &p.UserID, &p.Name, &p.Description, &p.CreatedAt, &p.Deleted, &p.DeletedAt); err != nil {
			return nil, err
		}
		portfolios = append(portfolios, p)
	}
	return portfolios, rows.Err()
}

func (r *portfolioRepo) Create(ctx context.Context, p *models.Portfolio, tx pgx.Tx) error {
	query := `
		INSERT INTO portfolios (id, user_id, name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at`

	var err error
	if tx == nil {
		tx, err = r.db.Begin(ctx)
		if err != nil {
			return err
		}
		defer func() {
			if err != nil {
				_ = tx.Rollback(ctx)
			}
		}()

		err = tx.QueryRow(ctx, query, p.ID, p.UserID, p.Name, p.Description).Scan(&p.CreatedAt)
		if err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	return tx.QueryRow(ctx, query, p.ID, p.UserID, p.Name, p.Description).Scan(&p.CreatedAt)
}

func (r *portfolioRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE portfolios SET deleted = TRUE, deleted_at = $2 WHERE id = $1`,
		id, time.Now())
	return err
}
