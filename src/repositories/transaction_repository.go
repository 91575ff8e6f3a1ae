package repositories

import (
	"context"

	"tracker/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository interface {
	GetByHoldingID(ctx context.Context, holdingID string) ([]models.Transaction, error)
	GetByUserID(ctx context.Context, userID string) (map[string][]models.Transaction, error)
}

type transactionRepo struct {
	db *pgxpool.Pool
}

func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &transactionRepo{db: db}
}

func scanTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		var txType string
		if err := rows.Scan(&t.ID, &t.HoldingID, &txType, &t.Quantity, &t.PricePerUnit,
			&t.Amount, &t.Date, &t.Notes, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Type, _ = models.ParseTransactionType(txType)
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

func (r *transactionRepo) GetByHoldingID(ctx context.Context, holdingID string) ([]models.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, holding_id, transaction_type, quantity, price_per_unit, amount, transaction_date, notes, created_at
		FROM transactions
		WHERE holding_id = $1
		ORDER BY transaction_date, id`,
		holdingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTransactions(rows)
}

// GetByUserID returns the full ledger of every holding the user owns, keyed by
// holding id. Reporting queries use this bulk variant to avoid one round trip
// per holding.
func (r *transactionRepo) GetByUserID(ctx context.Context, userID string) (map[string][]models.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT t.id, t.holding_id, t.transaction_type, t.quantity, t.price_per_unit, t.amount, t.transaction_date, t.notes, t.created_at
		FROM transactions t
		JOIN holdings h ON h.id = t.holding_id
		WHERE h.user_id = $1 AND h.deleted = FALSE
		ORDER BY t.transaction_date, t.id`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions, err := scanTransactions(rows)
	if err != nil {
		return nil, err
	}

	byHolding := make(map[string][]models.Transaction)
	for _, t := range transactions {
		byHolding[t.HoldingID] = append(byHolding[t.HoldingID], t)
	}
	return byHolding, nil
}
