package handler

import (
	"net/http"
	"strconv"
	"time"

	"soundreach-server/internal/analytics/processor"
	"soundreach-server/internal/apierrors"
	authHandler "soundreach-server/internal/auth/handler"
	"soundreach-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AnalyticsProcessor
	logger    *observability.Logger
}

func New(processor processor.AnalyticsProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleGetDashboard returns the owner's top-level analytics summary
func (h *Handler) HandleGetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	summary, err := h.processor.GetDashboardSummary(ctx, ownerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// HandleGetCampaignMetrics returns the stored metrics of one campaign
func (h *Handler) HandleGetCampaignMetrics(c *gin.Context) {
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

	metrics, err := h.processor.GetCampaignMetrics(ctx, campaignID, ownerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

// HandleGetOutreachStats returns the owner's cross-campaign email funnel
func (h *Handler) HandleGetOutreachStats(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	stats, err := h.processor.GetOutreachStats(ctx, ownerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": stats})
}

// HandleGetArtistPerformance lists the largest-audience artists
func (h *Handler) HandleGetArtistPerformance(c *gin.Context) {
	ctx := c.Request.Context()

	if _, ok := authHandler.CurrentUserID(c); !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}

	performance, err := h.processor.GetArtistPerformance(ctx, limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, performance)
}

// HandleGetRevenueOverview returns the owner's monthly revenue series
func (h *Handler) HandleGetRevenueOverview(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	var from, to *time.Time
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid date filter, use RFC 3339"))
			return
		}
		from = &parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid date filter, use RFC 3339"))
			return
		}
		to = &parsed
	}

	overview, err := h.processor.GetRevenueOverview(ctx, ownerID, from, to)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"overview": overview})
}
