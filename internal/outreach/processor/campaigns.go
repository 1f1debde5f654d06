package processor

import (
	"context"
	"errors"
	"time"

	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// CreateCampaignParams represents parameters for creating an outreach campaign
type CreateCampaignParams struct {
	Name               string
	Description        *string
	TemplateID         uuid.UUID
	TargetArtistIDs    []string
	ScheduledStartDate *time.Time
	ScheduledEndDate   *time.Time
	SendingSchedule    store.SendingSchedule
	Tags               []string
}

// UpdateCampaignParams carries the fields of a partial outreach campaign
// update. Nil fields keep their stored values.
type UpdateCampaignParams struct {
	Name               *string
	Description        *string
	Status             *string
	TemplateID         *uuid.UUID
	TargetArtistIDs    []string
	ScheduledStartDate *time.Time
	ScheduledEndDate   *time.Time
	SendingSchedule    *store.SendingSchedule
	Tags               []string
}

// ListCampaignsParams filters and pages the outreach campaign list
type ListCampaignsParams struct {
	Status *string
	Page   int
	Limit  int
}

// ListCampaignsResult is one page of outreach campaigns
type ListCampaignsResult struct {
	Campaigns  []store.OutreachCampaign
	Pagination store.Pagination
}

// CreateCampaign validates the schedule and template and stores a new
// outreach campaign in draft status
func (p *OutreachProcessor) CreateCampaign(ctx context.Context, ownerID uuid.UUID, params CreateCampaignParams) (store.OutreachCampaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "template_id", Value: params.TemplateID.String()})

	if err := validateSchedule(params.SendingSchedule); err != nil {
		return store.OutreachCampaign{}, err
	}
	if _, err := p.GetTemplate(ctx, params.TemplateID, ownerID); err != nil {
		return store.OutreachCampaign{}, err
	}

	campaign, err := p.store.CreateOutreachCampaign(ctx, store.CreateOutreachCampaignParams{
		Name:               params.Name,
		Description:        params.Description,
		TemplateID:         params.TemplateID,
		TargetArtistIDs:    params.TargetArtistIDs,
		ScheduledStartDate: params.ScheduledStartDate,
		ScheduledEndDate:   params.ScheduledEndDate,
		SendingSchedule:    params.SendingSchedule,
		Tags:               params.Tags,
		OwnerID:            ownerID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create outreach campaign", err)
		return store.OutreachCampaign{}, err
	}

	p.logger.Info(ctx, "outreach campaign created")
	return campaign, nil
}

// GetCampaign retrieves an owner's outreach campaign by ID
func (p *OutreachProcessor) GetCampaign(ctx context.Context, campaignID, ownerID uuid.UUID) (store.OutreachCampaign, error) {
	campaign, err := p.store.GetOutreachCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.OutreachCampaign{}, ErrOutreachCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get outreach campaign", err)
		return store.OutreachCampaign{}, err
	}
	if campaign.OwnerID != ownerID {
		return store.OutreachCampaign{}, ErrOutreachCampaignNotFound
	}
	return campaign, nil
}

// ListCampaigns retrieves one page of an owner's outreach campaigns
func (p *OutreachProcessor) ListCampaigns(ctx context.Context, ownerID uuid.UUID, params ListCampaignsParams) (ListCampaignsResult, error) {
	if params.Status != nil && !store.IsValidCampaignStatus(*params.Status) {
		return ListCampaignsResult{}, ErrInvalidCampaignStatus
	}
	page, limit := store.NormalizePage(params.Page, params.Limit)

	campaigns, total, err := p.store.ListOutreachCampaigns(ctx, store.ListOutreachCampaignsParams{
		OwnerID: ownerID,
		Status:  params.Status,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list outreach campaigns", err)
		return ListCampaignsResult{}, err
	}

	return ListCampaignsResult{
		Campaigns:  campaigns,
		Pagination: store.NewPagination(total, page, limit),
	}, nil
}

// UpdateCampaign applies a partial update to an owner's outreach campaign
func (p *OutreachProcessor) UpdateCampaign(ctx context.Context, campaignID, ownerID uuid.UUID, params UpdateCampaignParams) (store.OutreachCampaign, error) {
	campaign, err := p.GetCampaign(ctx, campaignID, ownerID)
	if err != nil {
		return store.OutreachCampaign{}, err
	}

	if params.Status != nil {
		if !store.IsValidCampaignStatus(*params.Status) {
			return store.OutreachCampaign{}, ErrInvalidCampaignStatus
		}
		campaign.Status = *params.Status
	}
	if params.TemplateID != nil {
		if _, err := p.GetTemplate(ctx, *params.TemplateID, ownerID); err != nil {
			return store.OutreachCampaign{}, err
		}
		campaign.TemplateID = *params.TemplateID
	}
	if params.Name != nil {
		campaign.Name = *params.Name
	}
	if params.Description != nil {
		campaign.Description = params.Description
	}
	if params.TargetArtistIDs != nil {
		campaign.TargetArtistIDs = store.StringArray(params.TargetArtistIDs)
	}
	if params.ScheduledStartDate != nil {
		campaign.ScheduledStartDate = params.ScheduledStartDate
	}
	if params.ScheduledEndDate != nil {
		campaign.ScheduledEndDate = params.ScheduledEndDate
	}
	if params.SendingSchedule != nil {
		campaign.SendingSchedule = *params.SendingSchedule
	}
	if params.Tags != nil {
		campaign.Tags = store.StringArray(params.Tags)
	}

	if err := validateSchedule(campaign.SendingSchedule); err != nil {
		return store.OutreachCampaign{}, err
	}

	updated, err := p.store.UpdateOutreachCampaign(ctx, campaign)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.OutreachCampaign{}, ErrOutreachCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update outreach campaign", err)
		return store.OutreachCampaign{}, err
	}

	p.logger.Info(ctx, "outreach campaign updated")
	return updated, nil
}

// DeleteCampaign removes an owner's outreach campaign
func (p *OutreachProcessor) DeleteCampaign(ctx context.Context, campaignID, ownerID uuid.UUID) error {
	err := p.store.DeleteOutreachCampaign(ctx, campaignID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOutreachCampaignNotFound
		}
		p.logger.Error(ctx, "failed to delete outreach campaign", err)
		return err
	}
	p.logger.Info(ctx, "outreach campaign deleted")
	return nil
}
