package handler

import (
	"net/http"
	"time"

	"soundreach-server/internal/apierrors"
	authHandler "soundreach-server/internal/auth/handler"
	"soundreach-server/internal/finance/processor"
	"soundreach-server/internal/httputil"
	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.FinanceProcessor
	logger    *observability.Logger
}

func New(processor processor.FinanceProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// MoneyAmountRequest represents a money value in HTTP requests
type MoneyAmountRequest struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency" binding:"required,oneof=USD EUR GBP CAD AUD JPY"`
}

// CreateTransactionRequest represents the HTTP request for recording a
// transaction
type CreateTransactionRequest struct {
	Type            string             `json:"type" binding:"required,oneof=income expense transfer"`
	Category        string             `json:"category" binding:"required,min=1,max=100"`
	Amount          MoneyAmountRequest `json:"amount" binding:"required"`
	Description     string             `json:"description" binding:"required,min=1,max=1000"`
	Status          string             `json:"status" binding:"omitempty,oneof=pending completed failed cancelled refunded"`
	PaymentMethod   string             `json:"paymentMethod" binding:"omitempty,max=100"`
	TransactionDate *time.Time         `json:"transactionDate,omitempty"`
	DueDate         *time.Time         `json:"dueDate,omitempty"`
	InvoiceNumber   *string            `json:"invoiceNumber,omitempty" binding:"omitempty,max=100"`
	ReferenceID     *string            `json:"referenceId,omitempty" binding:"omitempty,max=255"`
	CampaignID      *string            `json:"campaignId,omitempty" binding:"omitempty,uuid"`
	ArtistID        *string            `json:"artistId,omitempty" binding:"omitempty,uuid"`
	Tags            []string           `json:"tags"`
}

// UpdateTransactionRequest represents a partial transaction update
type UpdateTransactionRequest struct {
	Type            *string             `json:"type,omitempty" binding:"omitempty,oneof=income expense transfer"`
	Category        *string             `json:"category,omitempty" binding:"omitempty,min=1,max=100"`
	Amount          *MoneyAmountRequest `json:"amount,omitempty"`
	Description     *string             `json:"description,omitempty" binding:"omitempty,min=1,max=1000"`
	Status          *string             `json:"status,omitempty" binding:"omitempty,oneof=pending completed failed cancelled refunded"`
	PaymentMethod   *string             `json:"paymentMethod,omitempty" binding:"omitempty,max=100"`
	TransactionDate *time.Time          `json:"transactionDate,omitempty"`
	DueDate         *time.Time          `json:"dueDate,omitempty"`
	InvoiceNumber   *string             `json:"invoiceNumber,omitempty" binding:"omitempty,max=100"`
	ReferenceID     *string             `json:"referenceId,omitempty" binding:"omitempty,max=255"`
	CampaignID      *string             `json:"campaignId,omitempty" binding:"omitempty,uuid"`
	ArtistID        *string             `json:"artistId,omitempty" binding:"omitempty,uuid"`
	Tags            []string            `json:"tags,omitempty"`
}

// CreatePaymentIntentRequest represents the HTTP request for preparing a
// payment with the provider
type CreatePaymentIntentRequest struct {
	Amount      MoneyAmountRequest `json:"amount" binding:"required"`
	Description string             `json:"description" binding:"omitempty,max=500"`
	CampaignID  *string            `json:"campaignId,omitempty" binding:"omitempty,uuid"`
}

// HandleCreateTransaction records a new ledger entry
func (h *Handler) HandleCreateTransaction(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaignID, err := parseOptionalUUID(req.CampaignID)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID"))
		return
	}
	artistID, err := parseOptionalUUID(req.ArtistID)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid artist ID"))
		return
	}

	txn, err := h.processor.CreateTransaction(ctx, ownerID, processor.CreateTransactionParams{
		Type:            req.Type,
		Category:        req.Category,
		Amount:          store.MoneyAmount{Amount: req.Amount.Amount, Currency: req.Amount.Currency},
		Description:     req.Description,
		Status:          req.Status,
		PaymentMethod:   req.PaymentMethod,
		TransactionDate: req.TransactionDate,
		DueDate:         req.DueDate,
		InvoiceNumber:   req.InvoiceNumber,
		ReferenceID:     req.ReferenceID,
		CampaignID:      campaignID,
		ArtistID:        artistID,
		Tags:            req.Tags,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": txn})
}

// HandleListTransactions lists the owner's ledger with optional filters
func (h *Handler) HandleListTransactions(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	from, to, err := parseDateRangeQuery(c)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid date filter, use RFC 3339"))
		return
	}

	var campaignID *uuid.UUID
	if raw := c.Query("campaignId"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID"))
			return
		}
		campaignID = &parsed
	}

	page, limit := httputil.ParsePageQuery(c)
	result, err := h.processor.ListTransactions(ctx, ownerID, processor.ListTransactionsParams{
		CampaignID: campaignID,
		Type:       httputil.OptionalQuery(c, "type"),
		Category:   httputil.OptionalQuery(c, "category"),
		Status:     httputil.OptionalQuery(c, "status"),
		From:       from,
		To:         to,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	httputil.RespondWithList(c, result.Transactions, result.Pagination)
}

// HandleGetTransaction retrieves one transaction by ID
func (h *Handler) HandleGetTransaction(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid transaction ID"))
		return
	}

	txn, err := h.processor.GetTransaction(ctx, transactionID, ownerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": txn})
}

// HandleUpdateTransaction applies a partial update to a transaction
func (h *Handler) HandleUpdateTransaction(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid transaction ID"))
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaignID, err := parseOptionalUUID(req.CampaignID)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID"))
		return
	}
	artistID, err := parseOptionalUUID(req.ArtistID)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid artist ID"))
		return
	}

	params := processor.UpdateTransactionParams{
		Type:            req.Type,
		Category:        req.Category,
		Description:     req.Description,
		Status:          req.Status,
		PaymentMethod:   req.PaymentMethod,
		TransactionDate: req.TransactionDate,
		DueDate:         req.DueDate,
		InvoiceNumber:   req.InvoiceNumber,
		ReferenceID:     req.ReferenceID,
		CampaignID:      campaignID,
		ArtistID:        artistID,
		Tags:            req.Tags,
	}
	if req.Amount != nil {
		params.Amount = &store.MoneyAmount{Amount: req.Amount.Amount, Currency: req.Amount.Currency}
	}

	txn, err := h.processor.UpdateTransaction(ctx, transactionID, ownerID, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": txn})
}

// HandleDeleteTransaction removes a transaction
func (h *Handler) HandleDeleteTransaction(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid transaction ID"))
		return
	}

	if err := h.processor.DeleteTransaction(ctx, transactionID, ownerID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted"})
}

// HandleGetProfitAndLoss returns the owner's P&L report
func (h *Handler) HandleGetProfitAndLoss(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	from, to, err := parseDateRangeQuery(c)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid date filter, use RFC 3339"))
		return
	}

	report, err := h.processor.GetProfitAndLoss(ctx, ownerID, from, to)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// HandleGetExpenseBreakdown returns the owner's expense totals by category
func (h *Handler) HandleGetExpenseBreakdown(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	from, to, err := parseDateRangeQuery(c)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid date filter, use RFC 3339"))
		return
	}

	breakdown, err := h.processor.GetExpenseBreakdown(ctx, ownerID, from, to)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breakdown": breakdown})
}

// HandleGetRevenueOverview returns the owner's monthly revenue series
func (h *Handler) HandleGetRevenueOverview(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	from, to, err := parseDateRangeQuery(c)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid date filter, use RFC 3339"))
		return
	}

	overview, err := h.processor.GetRevenueOverview(ctx, ownerID, from, to)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"overview": overview})
}

// HandleCreatePaymentIntent prepares a payment with the provider
func (h *Handler) HandleCreatePaymentIntent(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	var req CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaignID, err := parseOptionalUUID(req.CampaignID)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID"))
		return
	}

	result, err := h.processor.CreatePaymentIntent(ctx, ownerID, processor.PaymentIntentParams{
		Amount:      store.MoneyAmount{Amount: req.Amount.Amount, Currency: req.Amount.Currency},
		Description: req.Description,
		CampaignID:  campaignID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleCreateTransactionPaymentIntent prepares a payment for a pending
// income transaction
func (h *Handler) HandleCreateTransactionPaymentIntent(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid transaction ID"))
		return
	}

	result, err := h.processor.CreateTransactionPaymentIntent(ctx, transactionID, ownerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func parseOptionalUUID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// parseDateRangeQuery reads optional from/to query params in RFC 3339 form
func parseDateRangeQuery(c *gin.Context) (*time.Time, *time.Time, error) {
	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, err
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return nil, nil, err
		}
		to = &parsed
	}
	return from, to, nil
}
