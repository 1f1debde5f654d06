package handler

import (
	"net/http"
	"time"

	"soundreach-server/internal/apierrors"
	authHandler "soundreach-server/internal/auth/handler"
	"soundreach-server/internal/campaign/processor"
	"soundreach-server/internal/httputil"
	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// TargetCriteriaRequest represents campaign targeting in HTTP requests
type TargetCriteriaRequest struct {
	Genres       []string        `json:"genres"`
	Platforms    []string        `json:"platforms" binding:"omitempty,dive,oneof=soundcloud spotify youtube instagram tiktok twitter"`
	MinFollowers *int            `json:"minFollowers,omitempty" binding:"omitempty,gte=0"`
	MaxFollowers *int            `json:"maxFollowers,omitempty" binding:"omitempty,gte=0"`
	Locations    []string        `json:"locations"`
	AgeRange     *store.AgeRange `json:"ageRange,omitempty"`
	Keywords     []string        `json:"keywords"`
}

// CreateCampaignRequest represents the HTTP request for creating a campaign
type CreateCampaignRequest struct {
	Name           string                 `json:"name" binding:"required,min=1,max=255"`
	Description    *string                `json:"description,omitempty"`
	Type           string                 `json:"type" binding:"required,oneof=promotion discovery outreach collaboration"`
	StartDate      time.Time              `json:"startDate" binding:"required"`
	EndDate        *time.Time             `json:"endDate,omitempty"`
	Budget         *float64               `json:"budget,omitempty" binding:"omitempty,gt=0"`
	TargetCriteria *TargetCriteriaRequest `json:"targetCriteria,omitempty"`
	Tags           []string               `json:"tags"`
}

// UpdateCampaignRequest represents the HTTP request for a partial campaign update
type UpdateCampaignRequest struct {
	Name           *string                `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description    *string                `json:"description,omitempty"`
	Status         *string                `json:"status,omitempty" binding:"omitempty,oneof=draft active paused completed cancelled"`
	Type           *string                `json:"type,omitempty" binding:"omitempty,oneof=promotion discovery outreach collaboration"`
	StartDate      *time.Time             `json:"startDate,omitempty"`
	EndDate        *time.Time             `json:"endDate,omitempty"`
	Budget         *float64               `json:"budget,omitempty" binding:"omitempty,gt=0"`
	TargetCriteria *TargetCriteriaRequest `json:"targetCriteria,omitempty"`
	Tags           []string               `json:"tags,omitempty"`
}

// UpdateMetricsRequest represents the HTTP request for replacing campaign metrics
type UpdateMetricsRequest struct {
	TotalReach         float64 `json:"totalReach" binding:"gte=0"`
	TotalPlays         float64 `json:"totalPlays" binding:"gte=0"`
	TotalLikes         float64 `json:"totalLikes" binding:"gte=0"`
	TotalShares        float64 `json:"totalShares" binding:"gte=0"`
	TotalComments      float64 `json:"totalComments" binding:"gte=0"`
	ConversionRate     float64 `json:"conversionRate" binding:"gte=0"`
	EngagementRate     float64 `json:"engagementRate" binding:"gte=0"`
	CostPerAcquisition float64 `json:"costPerAcquisition" binding:"gte=0"`
	ReturnOnInvestment float64 `json:"returnOnInvestment"`
}

// HandleCreateCampaign creates a new campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, ownerID, processor.CreateCampaignParams{
		Name:           req.Name,
		Description:    req.Description,
		Type:           req.Type,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Budget:         req.Budget,
		TargetCriteria: convertTargetCriteria(req.TargetCriteria),
		Tags:           req.Tags,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"campaign": campaign})
}

// HandleListCampaigns lists the owner's campaigns with optional filters
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	page, limit := httputil.ParsePageQuery(c)
	status := httputil.OptionalQuery(c, "status")
	campaignType := httputil.OptionalQuery(c, "type")

	result, err := h.processor.ListCampaigns(ctx, ownerID, status, campaignType, page, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	httputil.RespondWithList(c, result.Campaigns, result.Pagination)
}

// HandleGetCampaign retrieves one campaign by ID
func (h *Handler) HandleGetCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID"))
		return
	}

	campaign, err := h.processor.GetCampaign(ctx, campaignID, ownerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

// HandleUpdateCampaign applies a partial update to a campaign
func (h *Handler) HandleUpdateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID"))
		return
	}

	var req UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.UpdateCampaignParams{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Type:        req.Type,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
		Tags:        req.Tags,
	}
	if req.TargetCriteria != nil {
		criteria := convertTargetCriteria(req.TargetCriteria)
		params.TargetCriteria = &criteria
	}

	campaign, err := h.processor.UpdateCampaign(ctx, campaignID, ownerID, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

// HandleUpdateMetrics replaces a campaign's metrics snapshot
func (h *Handler) HandleUpdateMetrics(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID"))
		return
	}

	var req UpdateMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	campaign, err := h.processor.UpdateCampaignMetrics(ctx, campaignID, ownerID, store.CampaignMetrics{
		TotalReach:         req.TotalReach,
		TotalPlays:         req.TotalPlays,
		TotalLikes:         req.TotalLikes,
		TotalShares:        req.TotalShares,
		TotalComments:      req.TotalComments,
		ConversionRate:     req.ConversionRate,
		EngagementRate:     req.EngagementRate,
		CostPerAcquisition: req.CostPerAcquisition,
		ReturnOnInvestment: req.ReturnOnInvestment,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

// HandleDeleteCampaign removes a campaign
func (h *Handler) HandleDeleteCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	campaignID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid campaign ID"))
		return
	}

	if err := h.processor.DeleteCampaign(ctx, campaignID, ownerID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted"})
}

func convertTargetCriteria(req *TargetCriteriaRequest) store.TargetCriteria {
	if req == nil {
		return store.TargetCriteria{}
	}
	return store.TargetCriteria{
		Genres:       req.Genres,
		Platforms:    req.Platforms,
		MinFollowers: req.MinFollowers,
		MaxFollowers: req.MaxFollowers,
		Locations:    req.Locations,
		AgeRange:     req.AgeRange,
		Keywords:     req.Keywords,
	}
}

