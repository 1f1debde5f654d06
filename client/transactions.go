package client

import (
	"context"
	"fmt"
	"net/http"

	financeHandler "soundreach-server/internal/finance/handler"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// Transactions is the state container for finance transactions.
type Transactions struct {
	resource[store.Transaction]
}

type transactionEnvelope struct {
	Transaction store.Transaction `json:"transaction"`
}

// Fetch loads a page of transactions, replacing the container's items.
func (s *Transactions) Fetch(ctx context.Context, page, limit int) {
	s.begin()
	var envelope listEnvelope[store.Transaction]
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("%s?page=%d&limit=%d", s.basePath, page, limit), nil, &envelope)
	s.finishFetch(envelope.Data, envelope.Pagination, err)
}

// Create records a transaction and merges it in on success.
func (s *Transactions) Create(ctx context.Context, params financeHandler.CreateTransactionRequest) (store.Transaction, error) {
	s.begin()
	var envelope transactionEnvelope
	err := s.client.do(ctx, http.MethodPost, s.basePath, params, &envelope)
	if err := s.finishMutation(err); err != nil {
		return store.Transaction{}, err
	}
	s.upsert(envelope.Transaction)
	return envelope.Transaction, nil
}

// Update applies a partial update and merges the result by ID.
func (s *Transactions) Update(ctx context.Context, id uuid.UUID, params financeHandler.UpdateTransactionRequest) (store.Transaction, error) {
	s.begin()
	var envelope transactionEnvelope
	err := s.client.do(ctx, http.MethodPatch, s.basePath+"/"+id.String(), params, &envelope)
	if err := s.finishMutation(err); err != nil {
		return store.Transaction{}, err
	}
	s.upsert(envelope.Transaction)
	return envelope.Transaction, nil
}

// Delete removes a transaction from the server and the container.
func (s *Transactions) Delete(ctx context.Context, id uuid.UUID) error {
	s.begin()
	err := s.client.do(ctx, http.MethodDelete, s.basePath+"/"+id.String(), nil, nil)
	if err := s.finishMutation(err); err != nil {
		return err
	}
	s.remove(id)
	return nil
}
