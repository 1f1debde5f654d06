package processor

import (
	"context"
	"errors"
	"math"
	"strings"

	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/paymentintent"
)

// PaymentIntentParams describes the charge to prepare with the payment
// provider
type PaymentIntentParams struct {
	Amount      store.MoneyAmount
	Description string
	CampaignID  *uuid.UUID
}

// PaymentIntentResult carries what the frontend needs to confirm a payment
type PaymentIntentResult struct {
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// CreatePaymentIntent prepares a charge with Stripe and returns its client
// secret. Amounts are converted to the currency's minor unit.
func (p *FinanceProcessor) CreatePaymentIntent(ctx context.Context, ownerID uuid.UUID, params PaymentIntentParams) (PaymentIntentResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "currency", Value: params.Amount.Currency})

	if !store.IsValidCurrency(params.Amount.Currency) {
		return PaymentIntentResult{}, ErrInvalidCurrency
	}

	minorUnits := toMinorUnits(params.Amount)
	intentParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minorUnits),
		Currency: stripe.String(strings.ToLower(params.Amount.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if params.Description != "" {
		intentParams.Description = stripe.String(params.Description)
	}
	intentParams.AddMetadata("owner_id", ownerID.String())
	if params.CampaignID != nil {
		intentParams.AddMetadata("campaign_id", params.CampaignID.String())
	}

	pi, err := paymentintent.New(intentParams)
	if err != nil {
		p.logger.Error(ctx, "failed to create payment intent", err)
		return PaymentIntentResult{}, err
	}

	p.logger.Info(ctx, "payment intent created",
		observability.Field{Key: "payment_intent_id", Value: pi.ID})
	return PaymentIntentResult{
		ClientSecret: pi.ClientSecret,
		Amount:       minorUnits,
		Currency:     params.Amount.Currency,
	}, nil
}

// CreateTransactionPaymentIntent prepares a Stripe charge for a recorded
// transaction and stores the intent ID as the transaction's reference.
// Only pending income transactions can be paid.
func (p *FinanceProcessor) CreateTransactionPaymentIntent(ctx context.Context, transactionID, ownerID uuid.UUID) (PaymentIntentResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "transaction_id", Value: transactionID.String()})

	txn, err := p.store.GetTransactionByID(ctx, transactionID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PaymentIntentResult{}, ErrTransactionNotFound
		}
		p.logger.Error(ctx, "failed to load transaction", err)
		return PaymentIntentResult{}, err
	}
	if txn.Type != store.TransactionTypeIncome || txn.Status != store.TransactionStatusPending {
		return PaymentIntentResult{}, ErrTransactionNotPayable
	}

	minorUnits := toMinorUnits(txn.Amount)
	intentParams := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(minorUnits),
		Currency: stripe.String(strings.ToLower(txn.Amount.Currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	if txn.Description != "" {
		intentParams.Description = stripe.String(txn.Description)
	}
	intentParams.AddMetadata("owner_id", ownerID.String())
	intentParams.AddMetadata("transaction_id", transactionID.String())
	if txn.CampaignID != nil {
		intentParams.AddMetadata("campaign_id", txn.CampaignID.String())
	}

	pi, err := paymentintent.New(intentParams)
	if err != nil {
		p.logger.Error(ctx, "failed to create payment intent", err)
		return PaymentIntentResult{}, err
	}

	txn.ReferenceID = &pi.ID
	if _, err := p.store.UpdateTransaction(ctx, txn); err != nil {
		p.logger.Error(ctx, "failed to store payment intent reference", err)
		return PaymentIntentResult{}, err
	}

	p.logger.Info(ctx, "payment intent created for transaction",
		observability.Field{Key: "payment_intent_id", Value: pi.ID})
	return PaymentIntentResult{
		ClientSecret: pi.ClientSecret,
		Amount:       minorUnits,
		Currency:     txn.Amount.Currency,
	}, nil
}

// toMinorUnits converts a money amount to the currency's smallest unit.
// JPY has no minor unit.
func toMinorUnits(amount store.MoneyAmount) int64 {
	if amount.Currency == "JPY" {
		return int64(math.Round(amount.Amount))
	}
	return int64(math.Round(amount.Amount * 100))
}
