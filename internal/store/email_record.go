package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateEmailRecordParams represents parameters for creating an email record
type CreateEmailRecordParams struct {
	OutreachCampaignID uuid.UUID
	ArtistID           uuid.UUID
	TemplateID         uuid.UUID
	RecipientEmail     string
	RecipientName      string
	Subject            string
	Body               string
	Status             string
	ScheduledFor       *time.Time
	SentBy             uuid.UUID
}

// OutreachCounts aggregates a campaign's per-status email totals
type OutreachCounts struct {
	Total     int `db:"total"`
	Sent      int `db:"sent"`
	Delivered int `db:"delivered"`
	Opened    int `db:"opened"`
	Clicked   int `db:"clicked"`
	Replied   int `db:"replied"`
	Bounced   int `db:"bounced"`
	Failed    int `db:"failed"`
}

const emailRecordColumns = `
id, outreach_campaign_id, artist_id, template_id, recipient_email, recipient_name,
subject, body, status, sent_at, delivered_at, opened_at, clicked_at, replied_at,
bounced_at, open_count, click_count, scheduled_for, sent_by, provider_message_id,
notes, created_at, updated_at`

const sqlCreateEmailRecord = `
INSERT INTO email_records (outreach_campaign_id, artist_id, template_id, recipient_email, recipient_name, subject, body, status, scheduled_for, sent_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + emailRecordColumns

// CreateEmailRecord inserts a new per-recipient email record
func (s *Store) CreateEmailRecord(ctx context.Context, params CreateEmailRecordParams) (EmailRecord, error) {
	var record EmailRecord
	err := s.db.GetContext(ctx, &record, sqlCreateEmailRecord,
		params.OutreachCampaignID,
		params.ArtistID,
		params.TemplateID,
		params.RecipientEmail,
		params.RecipientName,
		params.Subject,
		params.Body,
		params.Status,
		params.ScheduledFor,
		params.SentBy)
	if err != nil {
		s.logger.Error(ctx, "failed to create email record", err)
		return EmailRecord{}, fmt.Errorf("failed to create email record: %w", err)
	}
	return record, nil
}

const sqlGetEmailRecordByID = `
SELECT ` + emailRecordColumns + `
FROM email_records
WHERE id = $1`

// GetEmailRecordByID retrieves an email record by ID
func (s *Store) GetEmailRecordByID(ctx context.Context, recordID uuid.UUID) (EmailRecord, error) {
	var record EmailRecord
	err := s.db.GetContext(ctx, &record, sqlGetEmailRecordByID, recordID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailRecord{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get email record by id", err)
		return EmailRecord{}, fmt.Errorf("failed to get email record by id: %w", err)
	}
	return record, nil
}

const sqlListEmailRecordsByCampaign = `
SELECT ` + emailRecordColumns + `
FROM email_records
WHERE outreach_campaign_id = $1
ORDER BY created_at DESC`

// ListEmailRecordsByCampaign retrieves every email record of a campaign
func (s *Store) ListEmailRecordsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]EmailRecord, error) {
	records := []EmailRecord{}
	err := s.db.SelectContext(ctx, &records, sqlListEmailRecordsByCampaign, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to list email records", err)
		return nil, fmt.Errorf("failed to list email records: %w", err)
	}
	return records, nil
}

const sqlListDueEmailRecords = `
SELECT ` + emailRecordColumns + `
FROM email_records
WHERE outreach_campaign_id = $1
  AND status = $2
  AND (scheduled_for IS NULL OR scheduled_for <= $3)
ORDER BY created_at ASC
LIMIT $4`

// ListDueEmailRecords retrieves scheduled records ready to send for a campaign
func (s *Store) ListDueEmailRecords(ctx context.Context, campaignID uuid.UUID, before time.Time, limit int) ([]EmailRecord, error) {
	records := []EmailRecord{}
	err := s.db.SelectContext(ctx, &records, sqlListDueEmailRecords,
		campaignID, EmailStatusScheduled, before, limit)
	if err != nil {
		s.logger.Error(ctx, "failed to list due email records", err)
		return nil, fmt.Errorf("failed to list due email records: %w", err)
	}
	return records, nil
}

const sqlCountEmailsSentSince = `
SELECT COUNT(*)
FROM email_records
WHERE outreach_campaign_id = $1
  AND sent_at IS NOT NULL
  AND sent_at >= $2`

// CountEmailsSentSince counts a campaign's emails sent at or after the cutoff
func (s *Store) CountEmailsSentSince(ctx context.Context, campaignID uuid.UUID, since time.Time) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountEmailsSentSince, campaignID, since)
	if err != nil {
		s.logger.Error(ctx, "failed to count sent emails", err)
		return 0, fmt.Errorf("failed to count sent emails: %w", err)
	}
	return count, nil
}

const sqlGetLastSentAt = `
SELECT MAX(sent_at)
FROM email_records
WHERE outreach_campaign_id = $1`

// GetLastSentAt returns when the campaign last sent an email, or nil
func (s *Store) GetLastSentAt(ctx context.Context, campaignID uuid.UUID) (*time.Time, error) {
	var last sql.NullTime
	err := s.db.GetContext(ctx, &last, sqlGetLastSentAt, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to get last sent time", err)
		return nil, fmt.Errorf("failed to get last sent time: %w", err)
	}
	if !last.Valid {
		return nil, nil
	}
	return &last.Time, nil
}

const sqlMarkEmailRecordSent = `
UPDATE email_records
SET status = $2, sent_at = NOW(), provider_message_id = $3, updated_at = NOW()
WHERE id = $1
RETURNING ` + emailRecordColumns

// MarkEmailRecordSent advances a record to sent with its provider message ID
func (s *Store) MarkEmailRecordSent(ctx context.Context, recordID uuid.UUID, providerMessageID string) (EmailRecord, error) {
	var record EmailRecord
	err := s.db.GetContext(ctx, &record, sqlMarkEmailRecordSent, recordID, EmailStatusSent, providerMessageID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailRecord{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to mark email record sent", err)
		return EmailRecord{}, fmt.Errorf("failed to mark email record sent: %w", err)
	}
	return record, nil
}

const sqlMarkEmailRecordFailed = `
UPDATE email_records
SET status = $2, notes = $3, updated_at = NOW()
WHERE id = $1
RETURNING ` + emailRecordColumns

// MarkEmailRecordFailed advances a record to failed with the delivery error
func (s *Store) MarkEmailRecordFailed(ctx context.Context, recordID uuid.UUID, reason string) (EmailRecord, error) {
	var record EmailRecord
	err := s.db.GetContext(ctx, &record, sqlMarkEmailRecordFailed, recordID, EmailStatusFailed, reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailRecord{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to mark email record failed", err)
		return EmailRecord{}, fmt.Errorf("failed to mark email record failed: %w", err)
	}
	return record, nil
}

const sqlGetOutreachCounts = `
SELECT
    COUNT(*) AS total,
    COUNT(*) FILTER (WHERE sent_at IS NOT NULL) AS sent,
    COUNT(*) FILTER (WHERE delivered_at IS NOT NULL) AS delivered,
    COUNT(*) FILTER (WHERE opened_at IS NOT NULL) AS opened,
    COUNT(*) FILTER (WHERE clicked_at IS NOT NULL) AS clicked,
    COUNT(*) FILTER (WHERE replied_at IS NOT NULL) AS replied,
    COUNT(*) FILTER (WHERE status = 'bounced') AS bounced,
    COUNT(*) FILTER (WHERE status = 'failed') AS failed
FROM email_records
WHERE outreach_campaign_id = $1`

// GetOutreachCounts aggregates a campaign's email totals by lifecycle stage
func (s *Store) GetOutreachCounts(ctx context.Context, campaignID uuid.UUID) (OutreachCounts, error) {
	var counts OutreachCounts
	err := s.db.GetContext(ctx, &counts, sqlGetOutreachCounts, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to get outreach counts", err)
		return OutreachCounts{}, fmt.Errorf("failed to get outreach counts: %w", err)
	}
	return counts, nil
}
