package repositories

import (
	"context"
	"time"

	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HoldingRepository interface {
	GetByUserID(ctx context.Context, userID string) ([]models.Holding, error)
	GetByID(ctx context.Context, id string) (*models.Holding, error)
	Create(ctx context.Context, h *models.Holding, tx pgx.Tx) error
	Update(ctx context.Context, h *models.Holding, tx pgx.Tx) error
	SoftDelete(ctx context.Context, id string) error
	// AppendTransaction serializes ledger appends per holding: it locks the
	// holding row, reads the full ledger, calls apply to revalidate and
	// recompute the cached projection against that snapshot, then inserts the
	// entry and writes the holding back, all in one database transaction. An
	// apply error rolls everything back.
	AppendTransaction(ctx context.Context, holdingID string, t *models.Transaction, apply func(h *models.Holding, ledger []models.Transaction) error) (*models.Holding, error)
}

type holdingRepo struct {
	db *pgxpool.Pool
}

func NewHoldingRepository(db *pgxpool.Pool) HoldingRepository {
	return &holdingRepo{db: db}
}

const holdingColumns = `id, user_id, portfolio_id, name, category, initial_amount, current_value,
	quantity, average_price_per_unit, purchase_date, status, notes, created_at, updated_at, deleted, deleted_at`

func scanHolding(row pgx.Row) (*models.Holding, error) {
	var h models.Holding
	var category, status string
	if err := row.Scan(&h.ID, &h.UserID, &h.PortfolioID, &h.Name, &category, &h.InitialAmount,
		&h.CurrentValue, &h.Quantity, &h.AveragePricePerUnit, &h.PurchaseDate, &status,
		&h.Notes, &h.CreatedAt, &h.UpdatedAt, &h.Deleted, &h.DeletedAt); err != nil {
		return nil, err
	}
	h.Category, _ = models.ParseCategory(category)
	h.Status, _ = models.ParseHoldingStatus(status)
	return &h, nil
}

func (r *holdingRepo) GetByUserID(ctx context.Context, userID string) ([]models.Holding, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+holdingColumns+`
		FROM holdings
		WHERE user_id = $1 AND deleted = FALSE
		ORDER BY purchase_date, id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var holdings []models.Holding
	for rows.Next() {
		h, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, *h)
	}
	return holdings, rows.Err()
}

func (r *holdingRepo) GetByID(ctx context.Context, id string) (*models.Holding, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+holdingColumns+`
		FROM holdings
		WHERE id = $1 AND deleted = FALSE`,
		id)
	return scanHolding(row)
}

func (r *holdingRepo) Create(ctx context.Context, h *models.Holding, tx pgx.Tx) error {
	query := `
		INSERT INTO holdings (id, user_id, portfolio_id, name, category, initial_amount, current_value,
			quantity, average_price_per_unit, purchase_date, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at`

	args := []interface{}{
		h.ID, h.UserID, h.PortfolioID, h.Name, h.Category.String(), h.InitialAmount,
		h.CurrentValue, h.Quantity, h.AveragePricePerUnit, h.PurchaseDate,
		h.Status.String(), h.Notes,
	}

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

		err = tx.QueryRow(ctx, query, args...).Scan(&h.CreatedAt, &h.UpdatedAt)
		if err != nil {
			return err
		}
		return tx.Commit(ctx)
	}

	return tx.QueryRow(ctx, query, args...).Scan(&h.CreatedAt, &h.UpdatedAt)
}

func (r *holdingRepo) Update(ctx context.Context, h *models.Holding, tx pgx.Tx) error {
	query := `
		UPDATE holdings
		SET name = $2, category = $3, status = $4, notes = $5, current_value = $6,
			quantity = $7, average_price_per_unit = $8, updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE`

	args := []interface{}{
		h.ID, h.Name, h.Category.String(), h.Status.String(), h.Notes,
		h.CurrentValue, h.Quantity, h.AveragePricePerUnit,
	}

	var err error
	if tx == nil {
		_, err = r.db.Exec(ctx, query, args...)
		return err
	}
	_, err = tx.Exec(ctx, query, args...)
	return err
}

func (r *holdingRepo) SoftDelete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE holdings SET deleted = TRUE, deleted_at = $2, updated_at = $2 WHERE id = $1`,
		id, time.Now())
	return err
}

func (r *holdingRepo) AppendTransaction(ctx context.Context, holdingID string, t *models.Transaction, apply func(h *models.Holding, ledger []models.Transaction) error) (*models.Holding, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	// FOR UPDATE serializes concurrent appends to the same holding; each
	// apply sees the ledger including every previously committed entry.
	h, err := scanHolding(tx.QueryRow(ctx,
		`SELECT `+holdingColumns+`
		FROM holdings
		WHERE id = $1 AND deleted = FALSE
		FOR UPDATE`,
		holdingID))
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx,
		`SELECT id, holding_id, transaction_type, quantity, price_per_unit, amount, transaction_date, notes, created_at
		FROM transactions
		WHERE holding_id = $1
		ORDER BY transaction_date, id`,
		holdingID)
	if err != nil {
		return nil, err
	}
	ledger, err := scanTransactions(rows)
	rows.Close()
	if err != nil {
		return nil, err
	}

	if err = apply(h, ledger); err != nil {
		return nil, err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO transactions (id, holding_id, transaction_type, quantity, price_per_unit, amount, transaction_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at`,
		t.ID, t.HoldingID, t.Type.String(), t.Quantity, t.PricePerUnit, t.Amount, t.Date, t.Notes,
	).Scan(&t.CreatedAt)
	if err != nil {
		return nil, err
	}

	_, err = tx.Exec(ctx,
		`UPDATE holdings
		SET current_value = $2, quantity = $3, average_price_per_unit = $4, updated_at = NOW()
		WHERE id = $1 AND deleted = FALSE`,
		h.ID, h.CurrentValue, h.Quantity, h.AveragePricePerUnit)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return h, nil
}
