package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// StatusCount is a per-status campaign tally
type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}

// ArtistTally summarizes the artist pool for the dashboard
type ArtistTally struct {
	Total     int `db:"total" json:"total"`
	Active    int `db:"active" json:"active"`
	Verified  int `db:"verified" json:"verified"`
	Contacted int `db:"contacted" json:"contacted"`
}

const sqlCountCampaignsByStatus = `
SELECT status, COUNT(*) AS count
FROM campaigns
WHERE owner_id = $1
GROUP BY status`

// CountCampaignsByStatus tallies an owner's campaigns per status
func (s *Store) CountCampaignsByStatus(ctx context.Context, ownerID uuid.UUID) ([]StatusCount, error) {
	counts := []StatusCount{}
	err := s.db.SelectContext(ctx, &counts, sqlCountCampaignsByStatus, ownerID)
	if err != nil {
		s.logger.Error(ctx, "failed to count campaigns by status", err)
		return nil, fmt.Errorf("failed to count campaigns by status: %w", err)
	}
	return counts, nil
}

const sqlGetArtistTally = `
SELECT
    COUNT(*) AS total,
    COUNT(*) FILTER (WHERE is_active) AS active,
    COUNT(*) FILTER (WHERE verification_status = 'verified') AS verified,
    COUNT(*) FILTER (WHERE last_contacted_at IS NOT NULL) AS contacted
FROM artists`

// GetArtistTally summarizes the shared artist pool
func (s *Store) GetArtistTally(ctx context.Context) (ArtistTally, error) {
	var tally ArtistTally
	err := s.db.GetContext(ctx, &tally, sqlGetArtistTally)
	if err != nil {
		s.logger.Error(ctx, "failed to get artist tally", err)
		return ArtistTally{}, fmt.Errorf("failed to get artist tally: %w", err)
	}
	return tally, nil
}

const sqlGetOwnerOutreachCounts = `
SELECT
    COUNT(*) AS total,
    COUNT(*) FILTER (WHERE r.sent_at IS NOT NULL) AS sent,
    COUNT(*) FILTER (WHERE r.delivered_at IS NOT NULL) AS delivered,
    COUNT(*) FILTER (WHERE r.opened_at IS NOT NULL) AS opened,
    COUNT(*) FILTER (WHERE r.clicked_at IS NOT NULL) AS clicked,
    COUNT(*) FILTER (WHERE r.replied_at IS NOT NULL) AS replied,
    COUNT(*) FILTER (WHERE r.status = 'bounced') AS bounced,
    COUNT(*) FILTER (WHERE r.status = 'failed') AS failed
FROM email_records r
JOIN outreach_campaigns c ON c.id = r.outreach_campaign_id
WHERE c.owner_id = $1`

// GetOwnerOutreachCounts aggregates email totals across an owner's campaigns
func (s *Store) GetOwnerOutreachCounts(ctx context.Context, ownerID uuid.UUID) (OutreachCounts, error) {
	var counts OutreachCounts
	err := s.db.GetContext(ctx, &counts, sqlGetOwnerOutreachCounts, ownerID)
	if err != nil {
		s.logger.Error(ctx, "failed to get owner outreach counts", err)
		return OutreachCounts{}, fmt.Errorf("failed to get owner outreach counts: %w", err)
	}
	return counts, nil
}

const sqlListTopArtists = `
SELECT ` + artistColumns + `
FROM artists
WHERE is_active
ORDER BY (metrics->>'totalFollowers')::numeric DESC NULLS LAST
LIMIT $1`

// ListTopArtists retrieves the most followed active artists
func (s *Store) ListTopArtists(ctx context.Context, limit int) ([]Artist, error) {
	artists := []Artist{}
	err := s.db.SelectContext(ctx, &artists, sqlListTopArtists, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list top artists", err)
		return nil, fmt.Errorf("failed to list top artists: %w", err)
	}
	return artists, nil
}
