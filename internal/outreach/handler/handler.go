package handler

import (
	"net/http"
	"time"

	"soundreach-server/internal/apierrors"
	authHandler "soundreach-server/internal/auth/handler"
	"soundreach-server/internal/httputil"
	"soundreach-server/internal/outreach/processor"
	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.OutreachProcessor
	logger    *observability.Logger
}

func New(processor processor.OutreachProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateTemplateRequest represents the HTTP request for creating a template
type CreateTemplateRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=255"`
	Subject   string `json:"subject" binding:"required,min=1,max=500"`
	Body      string `json:"body" binding:"required"`
	Type      string `json:"type" binding:"required,oneof=initial_outreach follow_up collaboration_proposal thank_you rejection_response"`
	IsDefault bool   `json:"isDefault"`
}

// UpdateTemplateRequest represents a partial template update
type UpdateTemplateRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Subject   *string `json:"subject,omitempty" binding:"omitempty,min=1,max=500"`
	Body      *string `json:"body,omitempty"`
	Type      *string `json:"type,omitempty" binding:"omitempty,oneof=initial_outreach follow_up collaboration_proposal thank_you rejection_response"`
	IsDefault *bool   `json:"isDefault,omitempty"`
}

// GenerateTemplateRequest drives an AI template draft
type GenerateTemplateRequest struct {
	Type         string `json:"type" binding:"required,oneof=initial_outreach follow_up collaboration_proposal thank_you rejection_response"`
	Genre        string `json:"genre" binding:"required,min=1,max=100"`
	SenderName   string `json:"senderName" binding:"required,min=1,max=255"`
	CampaignGoal string `json:"campaignGoal" binding:"required,min=1,max=500"`
	Tone         string `json:"tone" binding:"omitempty,max=100"`
}

// SendingScheduleRequest represents a sending schedule in HTTP requests
type SendingScheduleRequest struct {
	Timezone           string `json:"timezone" binding:"required"`
	DaysOfWeek         []int  `json:"daysOfWeek" binding:"required,min=1,dive,gte=0,lte=6"`
	StartTime          string `json:"startTime" binding:"required"`
	EndTime            string `json:"endTime" binding:"required"`
	MaxEmailsPerDay    int    `json:"maxEmailsPerDay" binding:"required,gte=1"`
	DelayBetweenEmails int    `json:"delayBetweenEmails" binding:"required,gte=1"`
}

// CreateOutreachCampaignRequest represents the HTTP request for creating an
// outreach campaign
type CreateOutreachCampaignRequest struct {
	Name               string                 `json:"name" binding:"required,min=1,max=255"`
	Description        *string                `json:"description,omitempty"`
	TemplateID         string                 `json:"templateId" binding:"required,uuid"`
	TargetArtistIDs    []string               `json:"targetArtistIds" binding:"omitempty,dive,uuid"`
	ScheduledStartDate *time.Time             `json:"scheduledStartDate,omitempty"`
	ScheduledEndDate   *time.Time             `json:"scheduledEndDate,omitempty"`
	SendingSchedule    SendingScheduleRequest `json:"sendingSchedule" binding:"required"`
	Tags               []string               `json:"tags"`
}

// UpdateOutreachCampaignRequest represents a partial outreach campaign update
type UpdateOutreachCampaignRequest struct {
	Name               *string                 `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description        *string                 `json:"description,omitempty"`
	Status             *string                 `json:"status,omitempty" binding:"omitempty,oneof=draft active paused completed cancelled"`
	TemplateID         *string                 `json:"templateId,omitempty" binding:"omitempty,uuid"`
	TargetArtistIDs    []string                `json:"targetArtistIds,omitempty" binding:"omitempty,dive,uuid"`
	ScheduledStartDate *time.Time              `json:"scheduledStartDate,omitempty"`
	ScheduledEndDate   *time.Time              `json:"scheduledEndDate,omitempty"`
	SendingSchedule    *SendingScheduleRequest `json:"sendingSchedule,omitempty"`
	Tags               []string                `json:"tags,omitempty"`
}

// SendCampaignRequest optionally narrows a launch to a subset of the
// campaign's target artists
type SendCampaignRequest struct {
	ArtistIDs []string `json:"artistIds" binding:"omitempty,dive,uuid"`
}

// HandleCreateTemplate creates a new email template
func (h *Handler) HandleCreateTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	template, err := h.processor.CreateTemplate(ctx, ownerID, processor.CreateTemplateParams{
		Name:      req.Name,
		Subject:   req.Subject,
		Body:      req.Body,
		Type:      req.Type,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"template": template})
}

// HandleListTemplates lists the owner's templates
func (h *Handler) HandleListTemplates(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	templates, err := h.processor.ListTemplates(ctx, ownerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"templates": templates})
}

// HandleGetTemplate retrieves one template by ID
func (h *Handler) HandleGetTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid template ID"))
		return
	}

	template, err := h.processor.GetTemplate(ctx, templateID, ownerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": template})
}

// HandleUpdateTemplate applies a partial update to a template
func (h *Handler) HandleUpdateTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid template ID"))
		return
	}

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	template, err := h.processor.UpdateTemplate(ctx, templateID, ownerID, processor.UpdateTemplateParams{
		Name:      req.Name,
		Subject:   req.Subject,
		Body:      req.Body,
		Type:      req.Type,
		IsDefault: req.IsDefault,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"template": template})
}

// HandleDeleteTemplate removes a template
func (h *Handler) HandleDeleteTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid template ID"))
		return
	}

	if err := h.processor.DeleteTemplate(ctx, templateID, ownerID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template deleted"})
}

// HandleGenerateTemplate drafts a template with the AI service
func (h *Handler) HandleGenerateTemplate(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	var req GenerateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	template, err := h.processor.GenerateTemplate(ctx, ownerID, processor.GenerateTemplateParams{
		Type:         req.Type,
		Genre:        req.Genre,
		SenderName:   req.SenderName,
		CampaignGoal: req.CampaignGoal,
		Tone:         req.Tone,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"template": template})
}

// HandleCreateCampaign creates a new outreach campaign
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	var req CreateOutreachCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	templateID, err := uuid.Parse(req.TemplateID)
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid template ID"))
		return
	}

	campaign, err := h.processor.CreateCampaign(ctx, ownerID, processor.CreateCampaignParams{
		Name:               req.Name,
		Description:        req.Description,
		TemplateID:         templateID,
		TargetArtistIDs:    req.TargetArtistIDs,
		ScheduledStartDate: req.ScheduledStartDate,
		ScheduledEndDate:   req.ScheduledEndDate,
		SendingSchedule:    convertSchedule(req.SendingSchedule),
		Tags:               req.Tags,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"campaign": campaign})
}

// HandleListCampaigns lists the owner's outreach campaigns
func (h *Handler) HandleListCampaigns(c *gin.Context) {
	ctx := c.Request.Context()

	ownerID, ok := authHandler.CurrentUserID(c)
	if !ok {
		apierrors.RespondWithError(c, apierrors.Unauthorized("Not authenticated"))
		return
	}

	page, limit := httputil.ParsePageQuery(c)
	result, err := h.processor.ListCampaigns(ctx, ownerID, processor.ListCampaignsParams{
		Status: httputil.OptionalQuery(c, "status"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	httputil.RespondWithList(c, result.Campaigns, result.Pagination)
}

// HandleGetCampaign retrieves one outreach campaign by ID
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

// HandleUpdateCampaign applies a partial update to an outreach campaign
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

	var req UpdateOutreachCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	params := processor.UpdateCampaignParams{
		Name:               req.Name,
		Description:        req.Description,
		Status:             req.Status,
		TargetArtistIDs:    req.TargetArtistIDs,
		ScheduledStartDate: req.ScheduledStartDate,
		ScheduledEndDate:   req.ScheduledEndDate,
		Tags:               req.Tags,
	}
	if req.TemplateID != nil {
		templateID, err := uuid.Parse(*req.TemplateID)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid template ID"))
			return
		}
		params.TemplateID = &templateID
	}
	if req.SendingSchedule != nil {
		schedule := convertSchedule(*req.SendingSchedule)
		params.SendingSchedule = &schedule
	}

	campaign, err := h.processor.UpdateCampaign(ctx, campaignID, ownerID, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"campaign": campaign})
}

// HandleDeleteCampaign removes an outreach campaign
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

// HandleSendCampaign queues the campaign's emails for dispatch
func (h *Handler) HandleSendCampaign(c *gin.Context) {
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

	var req SendCampaignRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.RespondWithValidationError(c, err)
			return
		}
	}
	onlyArtists := make([]uuid.UUID, 0, len(req.ArtistIDs))
	for _, raw := range req.ArtistIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "Invalid artist ID"))
			return
		}
		onlyArtists = append(onlyArtists, id)
	}

	result, err := h.processor.SendCampaign(ctx, campaignID, ownerID, onlyArtists)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetCampaignMetrics returns the outreach funnel for one campaign
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

	metrics, err := h.processor.CampaignMetrics(ctx, campaignID, ownerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"metrics": metrics})
}

// HandleListEmailRecords lists every email record of one campaign
func (h *Handler) HandleListEmailRecords(c *gin.Context) {
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

	records, err := h.processor.ListEmailRecords(ctx, campaignID, ownerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

func convertSchedule(req SendingScheduleRequest) store.SendingSchedule {
	return store.SendingSchedule{
		Timezone:           req.Timezone,
		DaysOfWeek:         req.DaysOfWeek,
		StartTime:          req.StartTime,
		EndTime:            req.EndTime,
		MaxEmailsPerDay:    req.MaxEmailsPerDay,
		DelayBetweenEmails: req.DelayBetweenEmails,
	}
}
