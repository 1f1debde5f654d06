package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
)

// FinanceStore defines the database operations required by FinanceProcessor
type FinanceStore interface {
	CreateTransaction(ctx context.Context, params store.CreateTransactionParams) (store.Transaction, error)
	GetTransactionByID(ctx context.Context, transactionID, ownerID uuid.UUID) (store.Transaction, error)
	ListTransactions(ctx context.Context, params store.ListTransactionsParams) ([]store.Transaction, int, error)
	UpdateTransaction(ctx context.Context, txn store.Transaction) (store.Transaction, error)
	DeleteTransaction(ctx context.Context, transactionID, ownerID uuid.UUID) error
	SumTransactionsByType(ctx context.Context, ownerID uuid.UUID, txnType string, from, to *time.Time) (float64, error)
	SumTransactionsByCategory(ctx context.Context, ownerID uuid.UUID, txnType string, from, to *time.Time) ([]store.CategoryTotal, error)
	SumTransactionsByMonth(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]store.MonthlyTotal, error)
}

var (
	ErrTransactionNotFound      = errors.New("transaction not found")
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidCurrency          = errors.New("invalid currency code")
	ErrInvalidDateRange         = errors.New("invalid date range")
	ErrTransactionNotPayable    = errors.New("transaction is not payable")
)

type FinanceProcessor struct {
	store  FinanceStore
	logger *observability.Logger
}

// New builds a FinanceProcessor. The Stripe key is set process-wide; an
// empty key leaves payment intent creation failing at the provider.
func New(store FinanceStore, stripeKey string, logger *observability.Logger) FinanceProcessor {
	stripe.Key = stripeKey
	return FinanceProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateTransactionParams represents parameters for recording a transaction
type CreateTransactionParams struct {
	Type            string
	Category        string
	Amount          store.MoneyAmount
	Description     string
	Status          string
	PaymentMethod   string
	TransactionDate *time.Time
	DueDate         *time.Time
	InvoiceNumber   *string
	ReferenceID     *string
	CampaignID      *uuid.UUID
	ArtistID        *uuid.UUID
	Tags            []string
}

// UpdateTransactionParams carries the fields of a partial transaction
// update. Nil fields keep their stored values.
type UpdateTransactionParams struct {
	Type            *string
	Category        *string
	Amount          *store.MoneyAmount
	Description     *string
	Status          *string
	PaymentMethod   *string
	TransactionDate *time.Time
	DueDate         *time.Time
	InvoiceNumber   *string
	ReferenceID     *string
	CampaignID      *uuid.UUID
	ArtistID        *uuid.UUID
	Tags            []string
}

// ListTransactionsParams filters and pages the transaction ledger
type ListTransactionsParams struct {
	CampaignID *uuid.UUID
	Type       *string
	Category   *string
	Status     *string
	From       *time.Time
	To         *time.Time
	Page       int
	Limit      int
}

// ListTransactionsResult is one page of transactions
type ListTransactionsResult struct {
	Transactions []store.Transaction
	Pagination   store.Pagination
}

// CreateTransaction validates and records a ledger entry. Status defaults
// to completed and the transaction date to now.
func (p *FinanceProcessor) CreateTransaction(ctx context.Context, ownerID uuid.UUID, params CreateTransactionParams) (store.Transaction, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "transaction_type", Value: params.Type})

	if !store.IsValidTransactionType(params.Type) {
		return store.Transaction{}, ErrInvalidTransactionType
	}
	status := params.Status
	if status == "" {
		status = store.TransactionStatusCompleted
	} else if !store.IsValidTransactionStatus(status) {
		return store.Transaction{}, ErrInvalidTransactionStatus
	}
	if !store.IsValidCurrency(params.Amount.Currency) {
		return store.Transaction{}, ErrInvalidCurrency
	}
	transactionDate := time.Now()
	if params.TransactionDate != nil {
		transactionDate = *params.TransactionDate
	}

	txn, err := p.store.CreateTransaction(ctx, store.CreateTransactionParams{
		OwnerID:         ownerID,
		Type:            params.Type,
		Category:        params.Category,
		Amount:          params.Amount,
		Description:     params.Description,
		Status:          status,
		PaymentMethod:   params.PaymentMethod,
		TransactionDate: transactionDate,
		DueDate:         params.DueDate,
		InvoiceNumber:   params.InvoiceNumber,
		ReferenceID:     params.ReferenceID,
		CampaignID:      params.CampaignID,
		ArtistID:        params.ArtistID,
		Tags:            store.StringArray(params.Tags),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create transaction", err)
		return store.Transaction{}, err
	}

	p.logger.Info(ctx, "transaction recorded")
	return txn, nil
}

// GetTransaction retrieves one of the owner's transactions by ID
func (p *FinanceProcessor) GetTransaction(ctx context.Context, transactionID, ownerID uuid.UUID) (store.Transaction, error) {
	txn, err := p.store.GetTransactionByID(ctx, transactionID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Transaction{}, ErrTransactionNotFound
		}
		p.logger.Error(ctx, "failed to get transaction", err)
		return store.Transaction{}, err
	}
	return txn, nil
}

// ListTransactions retrieves one page of the owner's ledger
func (p *FinanceProcessor) ListTransactions(ctx context.Context, ownerID uuid.UUID, params ListTransactionsParams) (ListTransactionsResult, error) {
	if params.Type != nil && !store.IsValidTransactionType(*params.Type) {
		return ListTransactionsResult{}, ErrInvalidTransactionType
	}
	if params.Status != nil && !store.IsValidTransactionStatus(*params.Status) {
		return ListTransactionsResult{}, ErrInvalidTransactionStatus
	}
	if params.From != nil && params.To != nil && params.To.Before(*params.From) {
		return ListTransactionsResult{}, ErrInvalidDateRange
	}
	page, limit := store.NormalizePage(params.Page, params.Limit)

	transactions, total, err := p.store.ListTransactions(ctx, store.ListTransactionsParams{
		OwnerID:    ownerID,
		CampaignID: params.CampaignID,
		Type:       params.Type,
		Category:   params.Category,
		Status:     params.Status,
		From:       params.From,
		To:         params.To,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list transactions", err)
		return ListTransactionsResult{}, err
	}

	return ListTransactionsResult{
		Transactions: transactions,
		Pagination:   store.NewPagination(total, page, limit),
	}, nil
}

// UpdateTransaction applies a partial update to a transaction
func (p *FinanceProcessor) UpdateTransaction(ctx context.Context, transactionID, ownerID uuid.UUID, params UpdateTransactionParams) (store.Transaction, error) {
	txn, err := p.GetTransaction(ctx, transactionID, ownerID)
	if err != nil {
		return store.Transaction{}, err
	}

	if params.Type != nil {
		if !store.IsValidTransactionType(*params.Type) {
			return store.Transaction{}, ErrInvalidTransactionType
		}
		txn.Type = *params.Type
	}
	if params.Status != nil {
		if !store.IsValidTransactionStatus(*params.Status) {
			return store.Transaction{}, ErrInvalidTransactionStatus
		}
		txn.Status = *params.Status
	}
	if params.Amount != nil {
		if !store.IsValidCurrency(params.Amount.Currency) {
			return store.Transaction{}, ErrInvalidCurrency
		}
		txn.Amount = *params.Amount
	}
	if params.Category != nil {
		txn.Category = *params.Category
	}
	if params.Description != nil {
		txn.Description = *params.Description
	}
	if params.PaymentMethod != nil {
		txn.PaymentMethod = *params.PaymentMethod
	}
	if params.TransactionDate != nil {
		txn.TransactionDate = *params.TransactionDate
	}
	if params.DueDate != nil {
		txn.DueDate = params.DueDate
	}
	if params.InvoiceNumber != nil {
		txn.InvoiceNumber = params.InvoiceNumber
	}
	if params.ReferenceID != nil {
		txn.ReferenceID = params.ReferenceID
	}
	if params.CampaignID != nil {
		txn.CampaignID = params.CampaignID
	}
	if params.ArtistID != nil {
		txn.ArtistID = params.ArtistID
	}
	if params.Tags != nil {
		txn.Tags = store.StringArray(params.Tags)
	}

	updated, err := p.store.UpdateTransaction(ctx, txn)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Transaction{}, ErrTransactionNotFound
		}
		p.logger.Error(ctx, "failed to update transaction", err)
		return store.Transaction{}, err
	}

	p.logger.Info(ctx, "transaction updated")
	return updated, nil
}

// DeleteTransaction removes one of the owner's transactions
func (p *FinanceProcessor) DeleteTransaction(ctx context.Context, transactionID, ownerID uuid.UUID) error {
	err := p.store.DeleteTransaction(ctx, transactionID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTransactionNotFound
		}
		p.logger.Error(ctx, "failed to delete transaction", err)
		return err
	}
	p.logger.Info(ctx, "transaction deleted")
	return nil
}
