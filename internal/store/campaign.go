package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateCampaignParams represents parameters for creating a campaign
type CreateCampaignParams struct {
	Name           string
	Description    *string
	Type           string
	StartDate      time.Time
	EndDate        *time.Time
	Budget         *float64
	TargetCriteria TargetCriteria
	Tags           []string
	OwnerID        uuid.UUID
}

// ListCampaignsParams filters and pages the campaign list
type ListCampaignsParams struct {
	OwnerID uuid.UUID
	Status  *string
	Type    *string
	Page    int
	Limit   int
}

const campaignColumns = `
id, name, description, type, status, start_date, end_date, budget,
target_criteria, metrics, tags, owner_id, created_at, updated_at`

const sqlCreateCampaign = `
INSERT INTO campaigns (name, description, type, status, start_date, end_date, budget, target_criteria, metrics, tags, owner_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + campaignColumns

// CreateCampaign inserts a new campaign in draft status
func (s *Store) CreateCampaign(ctx context.Context, params CreateCampaignParams) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateCampaign,
		params.Name,
		params.Description,
		params.Type,
		CampaignStatusDraft,
		params.StartDate,
		params.EndDate,
		params.Budget,
		params.TargetCriteria,
		CampaignMetrics{},
		StringArray(params.Tags),
		params.OwnerID)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1`

// GetCampaignByID retrieves a campaign by ID
func (s *Store) GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.db.GetContext(ctx, &campaign, sqlGetCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign by id", err)
		return Campaign{}, fmt.Errorf("failed to get campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlListCampaigns = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE owner_id = $1
  AND ($2::text IS NULL OR status = $2)
  AND ($3::text IS NULL OR type = $3)
ORDER BY created_at DESC
LIMIT $4 OFFSET $5`

const sqlCountCampaigns = `
SELECT COUNT(*)
FROM campaigns
WHERE owner_id = $1
  AND ($2::text IS NULL OR status = $2)
  AND ($3::text IS NULL OR type = $3)`

// ListCampaigns retrieves one page of an owner's campaigns plus the total count
func (s *Store) ListCampaigns(ctx context.Context, params ListCampaignsParams) ([]Campaign, int, error) {
	page, limit := NormalizePage(params.Page, params.Limit)
	offset := (page - 1) * limit

	campaigns := []Campaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaigns,
		params.OwnerID, params.Status, params.Type, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, 0, fmt.Errorf("failed to list campaigns: %w", err)
	}

	var total int
	err = s.db.GetContext(ctx, &total, sqlCountCampaigns, params.OwnerID, params.Status, params.Type)
	if err != nil {
		s.logger.Error(ctx, "failed to count campaigns", err)
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return campaigns, total, nil
}

const sqlUpdateCampaign = `
UPDATE campaigns
SET name = $3, description = $4, type = $5, status = $6, start_date = $7, end_date = $8,
    budget = $9, target_criteria = $10, tags = $11, updated_at = NOW()
WHERE id = $1 AND owner_id = $2
RETURNING ` + campaignColumns

// UpdateCampaign writes the full campaign row. Partial-update merging happens
// in the processor, which read the row first.
func (s *Store) UpdateCampaign(ctx context.Context, campaign Campaign) (Campaign, error) {
	var updated Campaign
	err := s.db.GetContext(ctx, &updated, sqlUpdateCampaign,
		campaign.ID,
		campaign.OwnerID,
		campaign.Name,
		campaign.Description,
		campaign.Type,
		campaign.Status,
		campaign.StartDate,
		campaign.EndDate,
		campaign.Budget,
		campaign.TargetCriteria,
		campaign.Tags)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign", err)
		return Campaign{}, fmt.Errorf("failed to update campaign: %w", err)
	}
	return updated, nil
}

const sqlUpdateCampaignMetrics = `
UPDATE campaigns
SET metrics = $2, updated_at = NOW()
WHERE id = $1
RETURNING ` + campaignColumns

// UpdateCampaignMetrics replaces a campaign's aggregate metrics
func (s *Store) UpdateCampaignMetrics(ctx context.Context, campaignID uuid.UUID, metrics CampaignMetrics) (Campaign, error) {
	var updated Campaign
	err := s.db.GetContext(ctx, &updated, sqlUpdateCampaignMetrics, campaignID, metrics)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update campaign metrics", err)
		return Campaign{}, fmt.Errorf("failed to update campaign metrics: %w", err)
	}
	return updated, nil
}

const sqlDeleteCampaign = `
DELETE FROM campaigns WHERE id = $1 AND owner_id = $2`

// DeleteCampaign removes a campaign owned by the given user
func (s *Store) DeleteCampaign(ctx context.Context, campaignID, ownerID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteCampaign, campaignID, ownerID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete campaign", err)
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
