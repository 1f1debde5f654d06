package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateTransactionParams represents parameters for recording a transaction
type CreateTransactionParams struct {
	OwnerID         uuid.UUID
	Type            string
	Category        string
	Amount          MoneyAmount
	Description     string
	Status          string
	PaymentMethod   string
	TransactionDate time.Time
	DueDate         *time.Time
	InvoiceNumber   *string
	ReferenceID     *string
	CampaignID      *uuid.UUID
	ArtistID        *uuid.UUID
	Tags            StringArray
}

// ListTransactionsParams filters the transaction ledger listing
type ListTransactionsParams struct {
	OwnerID    uuid.UUID
	CampaignID *uuid.UUID
	Type       *string
	Category   *string
	Status     *string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

// CategoryTotal is a per-category sum used by financial reports
type CategoryTotal struct {
	Category string  `db:"category" json:"category"`
	Total    float64 `db:"total" json:"total"`
}

// MonthlyTotal is a per-month income and expense pair for revenue charts
type MonthlyTotal struct {
	Month    time.Time `db:"month" json:"month"`
	Income   float64   `db:"income" json:"income"`
	Expenses float64   `db:"expenses" json:"expenses"`
}

const transactionColumns = `
id, type, category, amount, description, status, payment_method, transaction_date,
due_date, invoice_number, reference_id, campaign_id, artist_id, tags, owner_id,
created_at, updated_at`

const sqlCreateTransaction = `
INSERT INTO transactions (type, category, amount, description, status, payment_method, transaction_date, due_date, invoice_number, reference_id, campaign_id, artist_id, tags, owner_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + transactionColumns

// CreateTransaction records a new financial transaction
func (s *Store) CreateTransaction(ctx context.Context, params CreateTransactionParams) (Transaction, error) {
	var txn Transaction
	err := s.db.GetContext(ctx, &txn, sqlCreateTransaction,
		params.Type,
		params.Category,
		params.Amount,
		params.Description,
		params.Status,
		params.PaymentMethod,
		params.TransactionDate,
		params.DueDate,
		params.InvoiceNumber,
		params.ReferenceID,
		params.CampaignID,
		params.ArtistID,
		params.Tags,
		params.OwnerID)
	if err != nil {
		s.logger.Error(ctx, "failed to create transaction", err)
		return Transaction{}, fmt.Errorf("failed to create transaction: %w", err)
	}
	return txn, nil
}

const sqlGetTransactionByID = `
SELECT ` + transactionColumns + `
FROM transactions
WHERE id = $1 AND owner_id = $2`

// GetTransactionByID retrieves an owner's transaction by ID
func (s *Store) GetTransactionByID(ctx context.Context, transactionID, ownerID uuid.UUID) (Transaction, error) {
	var txn Transaction
	err := s.db.GetContext(ctx, &txn, sqlGetTransactionByID, transactionID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Transaction{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get transaction by id", err)
		return Transaction{}, fmt.Errorf("failed to get transaction by id: %w", err)
	}
	return txn, nil
}

const sqlListTransactions = `
SELECT ` + transactionColumns + `
FROM transactions
WHERE owner_id = $1
  AND ($2::uuid IS NULL OR campaign_id = $2)
  AND ($3::text IS NULL OR type = $3)
  AND ($4::text IS NULL OR category = $4)
  AND ($5::text IS NULL OR status = $5)
  AND ($6::timestamptz IS NULL OR transaction_date >= $6)
  AND ($7::timestamptz IS NULL OR transaction_date <= $7)
ORDER BY transaction_date DESC
LIMIT $8 OFFSET $9`

const sqlCountTransactions = `
SELECT COUNT(*)
FROM transactions
WHERE owner_id = $1
  AND ($2::uuid IS NULL OR campaign_id = $2)
  AND ($3::text IS NULL OR type = $3)
  AND ($4::text IS NULL OR category = $4)
  AND ($5::text IS NULL OR status = $5)
  AND ($6::timestamptz IS NULL OR transaction_date >= $6)
  AND ($7::timestamptz IS NULL OR transaction_date <= $7)`

// ListTransactions retrieves an owner's transactions with filters and pagination
func (s *Store) ListTransactions(ctx context.Context, params ListTransactionsParams) ([]Transaction, int, error) {
	offset := (params.Page - 1) * params.Limit
	txns := []Transaction{}
	err := s.db.SelectContext(ctx, &txns, sqlListTransactions,
		params.OwnerID,
		params.CampaignID,
		params.Type,
		params.Category,
		params.Status,
		params.From,
		params.To,
		params.Limit,
		offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list transactions", err)
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	var total int
	err = s.db.GetContext(ctx, &total, sqlCountTransactions,
		params.OwnerID,
		params.CampaignID,
		params.Type,
		params.Category,
		params.Status,
		params.From,
		params.To)
	if err != nil {
		s.logger.Error(ctx, "failed to count transactions", err)
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	return txns, total, nil
}

const sqlUpdateTransaction = `
UPDATE transactions
SET type = $3,
    category = $4,
    amount = $5,
    description = $6,
    status = $7,
    payment_method = $8,
    transaction_date = $9,
    due_date = $10,
    invoice_number = $11,
    reference_id = $12,
    campaign_id = $13,
    artist_id = $14,
    tags = $15,
    updated_at = NOW()
WHERE id = $1 AND owner_id = $2
RETURNING ` + transactionColumns

// UpdateTransaction persists the full transaction row
func (s *Store) UpdateTransaction(ctx context.Context, txn Transaction) (Transaction, error) {
	var updated Transaction
	err := s.db.GetContext(ctx, &updated, sqlUpdateTransaction,
		txn.ID,
		txn.OwnerID,
		txn.Type,
		txn.Category,
		txn.Amount,
		txn.Description,
		txn.Status,
		txn.PaymentMethod,
		txn.TransactionDate,
		txn.DueDate,
		txn.InvoiceNumber,
		txn.ReferenceID,
		txn.CampaignID,
		txn.ArtistID,
		txn.Tags)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Transaction{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update transaction", err)
		return Transaction{}, fmt.Errorf("failed to update transaction: %w", err)
	}
	return updated, nil
}

const sqlDeleteTransaction = `
DELETE FROM transactions
WHERE id = $1 AND owner_id = $2`

// DeleteTransaction removes an owner's transaction
func (s *Store) DeleteTransaction(ctx context.Context, transactionID, ownerID uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, sqlDeleteTransaction, transactionID, ownerID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete transaction", err)
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlSumTransactionsByType = `
SELECT COALESCE(SUM((amount->>'amount')::numeric), 0)
FROM transactions
WHERE owner_id = $1
  AND type = $2
  AND status = $3
  AND ($4::timestamptz IS NULL OR transaction_date >= $4)
  AND ($5::timestamptz IS NULL OR transaction_date <= $5)`

// SumTransactionsByType totals completed amounts of a type over a window
func (s *Store) SumTransactionsByType(ctx context.Context, ownerID uuid.UUID, txnType string, from, to *time.Time) (float64, error) {
	var total float64
	err := s.db.GetContext(ctx, &total, sqlSumTransactionsByType,
		ownerID, txnType, TransactionStatusCompleted, from, to)
	if err != nil {
		s.logger.Error(ctx, "failed to sum transactions", err)
		return 0, fmt.Errorf("failed to sum transactions: %w", err)
	}
	return total, nil
}

const sqlSumTransactionsByCategory = `
SELECT category, COALESCE(SUM((amount->>'amount')::numeric), 0) AS total
FROM transactions
WHERE owner_id = $1
  AND type = $2
  AND status = $3
  AND ($4::timestamptz IS NULL OR transaction_date >= $4)
  AND ($5::timestamptz IS NULL OR transaction_date <= $5)
GROUP BY category
ORDER BY total DESC`

// SumTransactionsByCategory breaks down completed amounts of a type per category
func (s *Store) SumTransactionsByCategory(ctx context.Context, ownerID uuid.UUID, txnType string, from, to *time.Time) ([]CategoryTotal, error) {
	totals := []CategoryTotal{}
	err := s.db.SelectContext(ctx, &totals, sqlSumTransactionsByCategory,
		ownerID, txnType, TransactionStatusCompleted, from, to)
	if err != nil {
		s.logger.Error(ctx, "failed to sum transactions by category", err)
		return nil, fmt.Errorf("failed to sum transactions by category: %w", err)
	}
	return totals, nil
}

const sqlSumTransactionsByMonth = `
SELECT date_trunc('month', transaction_date) AS month,
       COALESCE(SUM((amount->>'amount')::numeric) FILTER (WHERE type = 'income'), 0) AS income,
       COALESCE(SUM((amount->>'amount')::numeric) FILTER (WHERE type = 'expense'), 0) AS expenses
FROM transactions
WHERE owner_id = $1
  AND status = $2
  AND ($3::timestamptz IS NULL OR transaction_date >= $3)
  AND ($4::timestamptz IS NULL OR transaction_date <= $4)
GROUP BY month
ORDER BY month ASC`

// SumTransactionsByMonth buckets completed income and expenses per month
func (s *Store) SumTransactionsByMonth(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]MonthlyTotal, error) {
	totals := []MonthlyTotal{}
	err := s.db.SelectContext(ctx, &totals, sqlSumTransactionsByMonth,
		ownerID, TransactionStatusCompleted, from, to)
	if err != nil {
		s.logger.Error(ctx, "failed to sum transactions by month", err)
		return nil, fmt.Errorf("failed to sum transactions by month: %w", err)
	}
	return totals, nil
}
