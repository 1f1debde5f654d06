package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"time"

	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	CreateCampaign(ctx context.Context, params store.CreateCampaignParams) (store.Campaign, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	ListCampaigns(ctx context.Context, params store.ListCampaignsParams) ([]store.Campaign, int, error)
	UpdateCampaign(ctx context.Context, campaign store.Campaign) (store.Campaign, error)
	UpdateCampaignMetrics(ctx context.Context, campaignID uuid.UUID, metrics store.CampaignMetrics) (store.Campaign, error)
	DeleteCampaign(ctx context.Context, campaignID, ownerID uuid.UUID) error
}

var (
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrInvalidCampaignStatus = errors.New("invalid campaign status")
	ErrInvalidCampaignType   = errors.New("invalid campaign type")
	ErrInvalidDateRange      = errors.New("end date must be after start date")
)

type CampaignProcessor struct {
	store  CampaignStore
	logger *observability.Logger
}

func New(store CampaignStore, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name           string
	Description    *string
	Type           string
	StartDate      time.Time
	EndDate        *time.Time
	Budget         *float64
	TargetCriteria store.TargetCriteria
	Tags           []string
}

// UpdateCampaignParams carries the fields of a partial campaign update.
// Nil fields keep their stored values.
type UpdateCampaignParams struct {
	Name           *string
	Description    *string
	Status         *string
	Type           *string
	StartDate      *time.Time
	EndDate        *time.Time
	Budget         *float64
	TargetCriteria *store.TargetCriteria
	Tags           []string
}

// ListCampaignsResult bundles a campaign page with its pagination block
type ListCampaignsResult struct {
	Campaigns  []store.Campaign
	Pagination store.Pagination
}

// CreateCampaign creates a new draft campaign for the owner
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, ownerID uuid.UUID, params CreateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "owner_id", Value: ownerID.String()},
		observability.Field{Key: "campaign_type", Value: params.Type},
	)

	if !store.IsValidCampaignType(params.Type) {
		return store.Campaign{}, ErrInvalidCampaignType
	}
	if params.EndDate != nil && !params.EndDate.After(params.StartDate) {
		return store.Campaign{}, ErrInvalidDateRange
	}

	campaign, err := p.store.CreateCampaign(ctx, store.CreateCampaignParams{
		Name:           params.Name,
		Description:    params.Description,
		Type:           params.Type,
		StartDate:      params.StartDate,
		EndDate:        params.EndDate,
		Budget:         params.Budget,
		TargetCriteria: params.TargetCriteria,
		Tags:           params.Tags,
		OwnerID:        ownerID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign created")
	return campaign, nil
}

// GetCampaign retrieves an owner's campaign by ID.
// Campaigns belonging to other owners surface as not found.
func (p *CampaignProcessor) GetCampaign(ctx context.Context, campaignID, ownerID uuid.UUID) (store.Campaign, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.Campaign{}, err
	}
	if campaign.OwnerID != ownerID {
		return store.Campaign{}, ErrCampaignNotFound
	}
	return campaign, nil
}

// ListCampaigns retrieves a filtered page of the owner's campaigns
func (p *CampaignProcessor) ListCampaigns(ctx context.Context, ownerID uuid.UUID, status, campaignType *string, page, limit int) (ListCampaignsResult, error) {
	if status != nil && !store.IsValidCampaignStatus(*status) {
		return ListCampaignsResult{}, ErrInvalidCampaignStatus
	}
	if campaignType != nil && !store.IsValidCampaignType(*campaignType) {
		return ListCampaignsResult{}, ErrInvalidCampaignType
	}

	page, limit = store.NormalizePage(page, limit)

	campaigns, total, err := p.store.ListCampaigns(ctx, store.ListCampaignsParams{
		OwnerID: ownerID,
		Status:  status,
		Type:    campaignType,
		Page:    page,
		Limit:   limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return ListCampaignsResult{}, err
	}

	return ListCampaignsResult{
		Campaigns:  campaigns,
		Pagination: store.NewPagination(total, page, limit),
	}, nil
}

// UpdateCampaign applies a partial update to an owner's campaign
func (p *CampaignProcessor) UpdateCampaign(ctx context.Context, campaignID, ownerID uuid.UUID, params UpdateCampaignParams) (store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	campaign, err := p.GetCampaign(ctx, campaignID, ownerID)
	if err != nil {
		return store.Campaign{}, err
	}

	if params.Status != nil {
		if !store.IsValidCampaignStatus(*params.Status) {
			return store.Campaign{}, ErrInvalidCampaignStatus
		}
		campaign.Status = *params.Status
	}
	if params.Type != nil {
		if !store.IsValidCampaignType(*params.Type) {
			return store.Campaign{}, ErrInvalidCampaignType
		}
		campaign.Type = *params.Type
	}
	if params.Name != nil {
		campaign.Name = *params.Name
	}
	if params.Description != nil {
		campaign.Description = params.Description
	}
	if params.StartDate != nil {
		campaign.StartDate = *params.StartDate
	}
	if params.EndDate != nil {
		campaign.EndDate = params.EndDate
	}
	if params.Budget != nil {
		campaign.Budget = params.Budget
	}
	if params.TargetCriteria != nil {
		campaign.TargetCriteria = *params.TargetCriteria
	}
	if params.Tags != nil {
		campaign.Tags = params.Tags
	}

	if campaign.EndDate != nil && !campaign.EndDate.After(campaign.StartDate) {
		return store.Campaign{}, ErrInvalidDateRange
	}

	updated, err := p.store.UpdateCampaign(ctx, campaign)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign updated")
	return updated, nil
}

// UpdateCampaignMetrics replaces an owner's campaign metrics snapshot
func (p *CampaignProcessor) UpdateCampaignMetrics(ctx context.Context, campaignID, ownerID uuid.UUID, metrics store.CampaignMetrics) (store.Campaign, error) {
	if _, err := p.GetCampaign(ctx, campaignID, ownerID); err != nil {
		return store.Campaign{}, err
	}

	updated, err := p.store.UpdateCampaignMetrics(ctx, campaignID, metrics)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Campaign{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to update campaign metrics", err)
		return store.Campaign{}, err
	}
	return updated, nil
}

// DeleteCampaign removes an owner's campaign
func (p *CampaignProcessor) DeleteCampaign(ctx context.Context, campaignID, ownerID uuid.UUID) error {
	err := p.store.DeleteCampaign(ctx, campaignID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to delete campaign", err)
		return err
	}
	p.logger.Info(ctx, "campaign deleted")
	return nil
}
