package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateOutreachCampaignParams represents parameters for creating an
// outreach campaign
type CreateOutreachCampaignParams struct {
	Name               string
	Description        *string
	TemplateID         uuid.UUID
	TargetArtistIDs    []string
	ScheduledStartDate *time.Time
	ScheduledEndDate   *time.Time
	SendingSchedule    SendingSchedule
	Tags               []string
	OwnerID            uuid.UUID
}

// ListOutreachCampaignsParams filters and pages the outreach campaign list
type ListOutreachCampaignsParams struct {
	OwnerID uuid.UUID
	Status  *string
	Page    int
	Limit   int
}

const outreachCampaignColumns = `
id, name, description, status, template_id, target_artist_ids,
scheduled_start_date, scheduled_end_date, sending_schedule, tags, owner_id,
created_at, updated_at`

const sqlCreateOutreachCampaign = `
INSERT INTO outreach_campaigns (name, description, status, template_id, target_artist_ids, scheduled_start_date, scheduled_end_date, sending_schedule, tags, owner_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + outreachCampaignColumns

// CreateOutreachCampaign inserts a new outreach campaign in draft status
func (s *Store) CreateOutreachCampaign(ctx context.Context, params CreateOutreachCampaignParams) (OutreachCampaign, error) {
	var campaign OutreachCampaign
	err := s.db.GetContext(ctx, &campaign, sqlCreateOutreachCampaign,
		params.Name,
		params.Description,
		OutreachStatusDraft,
		params.TemplateID,
		StringArray(params.TargetArtistIDs),
		params.ScheduledStartDate,
		params.ScheduledEndDate,
		params.SendingSchedule,
		StringArray(params.Tags),
		params.OwnerID)
	if err != nil {
		s.logger.Error(ctx, "failed to create outreach campaign", err)
		return OutreachCampaign{}, fmt.Errorf("failed to create outreach campaign: %w", err)
	}
	return campaign, nil
}

const sqlGetOutreachCampaignByID = `
SELECT ` + outreachCampaignColumns + `
FROM outreach_campaigns
WHERE id = $1`

// GetOutreachCampaignByID retrieves an outreach campaign by ID
func (s *Store) GetOutreachCampaignByID(ctx context.Context, campaignID uuid.UUID) (OutreachCampaign, error) {
	var campaign OutreachCampaign
	err := s.db.GetContext(ctx, &campaign, sqlGetOutreachCampaignByID, campaignID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OutreachCampaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get outreach campaign by id", err)
		return OutreachCampaign{}, fmt.Errorf("failed to get outreach campaign by id: %w", err)
	}
	return campaign, nil
}

const sqlListOutreachCampaigns = `
SELECT ` + outreachCampaignColumns + `
FROM outreach_campaigns
WHERE owner_id = $1
  AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4`

const sqlCountOutreachCampaigns = `
SELECT COUNT(*)
FROM outreach_campaigns
WHERE owner_id = $1
  AND ($2::text IS NULL OR status = $2)`

// ListOutreachCampaigns retrieves one page of an owner's outreach campaigns
// plus the total count
func (s *Store) ListOutreachCampaigns(ctx context.Context, params ListOutreachCampaignsParams) ([]OutreachCampaign, int, error) {
	page, limit := NormalizePage(params.Page, params.Limit)
	offset := (page - 1) * limit

	campaigns := []OutreachCampaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListOutreachCampaigns,
		params.OwnerID, params.Status, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list outreach campaigns", err)
		return nil, 0, fmt.Errorf("failed to list outreach campaigns: %w", err)
	}

	var total int
	err = s.db.GetContext(ctx, &total, sqlCountOutreachCampaigns, params.OwnerID, params.Status)
	if err != nil {
		s.logger.Error(ctx, "failed to count outreach campaigns", err)
		return nil, 0, fmt.Errorf("failed to count outreach campaigns: %w", err)
	}
	return campaigns, total, nil
}

const sqlListActiveOutreachCampaigns = `
SELECT ` + outreachCampaignColumns + `
FROM outreach_campaigns
WHERE status = $1`

// ListActiveOutreachCampaigns retrieves every active outreach campaign,
// across owners, for the dispatcher
func (s *Store) ListActiveOutreachCampaigns(ctx context.Context) ([]OutreachCampaign, error) {
	campaigns := []OutreachCampaign{}
	err := s.db.SelectContext(ctx, &campaigns, sqlListActiveOutreachCampaigns, OutreachStatusActive)
	if err != nil {
		s.logger.Error(ctx, "failed to list active outreach campaigns", err)
		return nil, fmt.Errorf("failed to list active outreach campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlUpdateOutreachCampaign = `
UPDATE outreach_campaigns
SET name = $3, description = $4, status = $5, template_id = $6, target_artist_ids = $7,
    scheduled_start_date = $8, scheduled_end_date = $9, sending_schedule = $10,
    tags = $11, updated_at = NOW()
WHERE id = $1 AND owner_id = $2
RETURNING ` + outreachCampaignColumns

// UpdateOutreachCampaign writes the full outreach campaign row
func (s *Store) UpdateOutreachCampaign(ctx context.Context, campaign OutreachCampaign) (OutreachCampaign, error) {
	var updated OutreachCampaign
	err := s.db.GetContext(ctx, &updated, sqlUpdateOutreachCampaign,
		campaign.ID,
		campaign.OwnerID,
		campaign.Name,
		campaign.Description,
		campaign.Status,
		campaign.TemplateID,
		campaign.TargetArtistIDs,
		campaign.ScheduledStartDate,
		campaign.ScheduledEndDate,
		campaign.SendingSchedule,
		campaign.Tags)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OutreachCampaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update outreach campaign", err)
		return OutreachCampaign{}, fmt.Errorf("failed to update outreach campaign: %w", err)
	}
	return updated, nil
}

const sqlDeleteOutreachCampaign = `
DELETE FROM outreach_campaigns WHERE id = $1 AND owner_id = $2`

// DeleteOutreachCampaign removes an outreach campaign owned by the given user
func (s *Store) DeleteOutreachCampaign(ctx context.Context, campaignID, ownerID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteOutreachCampaign, campaignID, ownerID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete outreach campaign", err)
		return fmt.Errorf("failed to delete outreach campaign: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete outreach campaign: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
