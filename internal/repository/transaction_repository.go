package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/ndewijer/Portfolio-Tracker-Backend/internal/model"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// TransactionRepository provides data access methods for the transaction
// table of one portfolio store.
type TransactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new TransactionRepository bound to the
// provided store handle.
func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

// InsertTransaction persists a new transaction record. The surrogate row id
// is written back into the record on success.
//
// Returns apperrors.ErrDuplicateTransactionID when the externally visible
// transaction_id already exists in the store.
func (r *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	db, err := r.store.DB()
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO "transaction" (transaction_id, date, ticker, amount, price)
		VALUES (?, ?, ?, ?, ?)
	`, t.TransactionID, FormatTime(t.Date), t.Ticker, t.Amount, t.Price)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateTransactionID, t.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted row id: %w", err)
	}
	t.ID = id

	return nil
}

// GetAllTransactions retrieves all transactions in the store in insertion
// order.
func (r *TransactionRepository) GetAllTransactions() ([]model.Transaction, error) {
	db, err := r.store.DB()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT id, transaction_id, date, ticker, amount, price, created_at
		FROM "transaction"
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		var dateStr, createdAtStr string
		var t model.Transaction

		err := rows.Scan(
			&t.ID,
			&t.TransactionID,
			&dateStr,
			&t.Ticker,
			&t.Amount,
			&t.Price,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction table results: %w", err)
		}

		t.Date, err = ParseTime(dateStr)
		if err != nil || t.Date.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		t.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil || t.CreatedAt.IsZero() {
			return nil, fmt.Errorf("failed to parse date: %w", err)
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by its externally visible
// transaction_id. Returns apperrors.ErrTransactionNotFound when no record
// matches.
func (r *TransactionRepository) GetTransaction(transactionID string) (model.Transaction, error) {
	db, err := r.store.DB()
	if err != nil {
		return model.Transaction{}, err
	}

	var t model.Transaction
	var dateStr, createdAtStr string

	err = db.QueryRow(`
		SELECT id, transaction_id, date, ticker, amount, price, created_at
		FROM "transaction"
		WHERE transaction_id = ?
	`, transactionID).Scan(
		&t.ID,
		&t.TransactionID,
		&dateStr,
		&t.Ticker,
		&t.Amount,
		&t.Price,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Transaction{}, fmt.Errorf("%w: %s", apperrors.ErrTransactionNotFound, transactionID)
	}
	if err != nil {
		return model.Transaction{}, fmt.Errorf("failed to scan transaction table results: %w", err)
	}

	t.Date, err = ParseTime(dateStr)
	if err != nil || t.Date.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil || t.CreatedAt.IsZero() {
		return model.Transaction{}, fmt.Errorf("failed to parse date: %w", err)
	}

	return t, nil
}

// DeleteTransaction removes the transaction with the given transaction_id.
// Returns whether a record was found and removed; deleting a missing id
// reports false, not an error.
func (r *TransactionRepository) DeleteTransaction(transactionID string) (bool, error) {
	db, err := r.store.DB()
	if err != nil {
		return false, err
	}

	result, err := db.Exec(`DELETE FROM "transaction" WHERE transaction_id = ?`, transactionID)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return affected > 0, nil
}
