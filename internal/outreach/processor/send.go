package processor

import (
	"context"
	"errors"
	"fmt"

	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// SendResult summarizes a campaign launch
type SendResult struct {
	QueuedCount int                 `json:"queuedCount"`
	Records     []store.EmailRecord `json:"records"`
}

// SendCampaign queues one rendered email per target artist. The campaign
// must be active and every target artist must have a reachable email
// address; nothing is queued when any target fails resolution. A non-empty
// onlyArtists narrows the launch to those of the campaign's targets.
func (p *OutreachProcessor) SendCampaign(ctx context.Context, campaignID, ownerID uuid.UUID, onlyArtists []uuid.UUID) (SendResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "outreach_campaign_id", Value: campaignID.String()})

	campaign, err := p.GetCampaign(ctx, campaignID, ownerID)
	if err != nil {
		return SendResult{}, err
	}
	if campaign.Status != store.OutreachStatusActive {
		return SendResult{}, ErrCampaignNotActive
	}
	if len(campaign.TargetArtistIDs) == 0 {
		return SendResult{}, ErrNoTargetArtists
	}

	template, err := p.GetTemplate(ctx, campaign.TemplateID, ownerID)
	if err != nil {
		return SendResult{}, err
	}

	type target struct {
		artist store.Artist
		email  string
	}

	subset := make(map[uuid.UUID]bool, len(onlyArtists))
	for _, id := range onlyArtists {
		subset[id] = true
	}

	targets := make([]target, 0, len(campaign.TargetArtistIDs))
	for _, rawID := range campaign.TargetArtistIDs {
		artistID, err := uuid.Parse(rawID)
		if err != nil {
			return SendResult{}, fmt.Errorf("invalid target artist id %q: %w", rawID, err)
		}
		if len(subset) > 0 && !subset[artistID] {
			continue
		}
		artist, err := p.store.GetArtistByID(ctx, artistID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				p.logger.Warn(ctx, "target artist no longer exists",
					observability.Field{Key: "artist_id", Value: rawID})
				continue
			}
			p.logger.Error(ctx, "failed to load target artist", err)
			return SendResult{}, err
		}
		email, ok := resolveContactEmail(artist.ContactInfo)
		if !ok {
			return SendResult{}, ErrMissingContactEmail
		}
		targets = append(targets, target{artist: artist, email: email})
	}
	if len(targets) == 0 {
		return SendResult{}, ErrNoTargetArtists
	}

	records := make([]store.EmailRecord, 0, len(targets))
	for _, t := range targets {
		values := templateValues(t.artist)
		record, err := p.store.CreateEmailRecord(ctx, store.CreateEmailRecordParams{
			OutreachCampaignID: campaign.ID,
			ArtistID:           t.artist.ID,
			TemplateID:         template.ID,
			RecipientEmail:     t.email,
			RecipientName:      artistDisplayName(t.artist),
			Subject:            RenderTemplate(template.Subject, values),
			Body:               RenderTemplate(template.Body, values),
			Status:             store.EmailStatusScheduled,
			SentBy:             ownerID,
		})
		if err != nil {
			p.logger.Error(ctx, "failed to create email record", err)
			return SendResult{}, err
		}
		if err := p.store.StampArtistContacted(ctx, t.artist.ID); err != nil {
			p.logger.Error(ctx, "failed to stamp artist contacted", err)
		}
		records = append(records, record)
	}

	p.logger.Info(ctx, "outreach campaign emails queued",
		observability.Field{Key: "queued_count", Value: len(records)})
	return SendResult{QueuedCount: len(records), Records: records}, nil
}

// resolveContactEmail picks the best available address for an artist,
// preferring direct email over management and booking contacts.
func resolveContactEmail(info store.ContactInfo) (string, bool) {
	for _, candidate := range []*string{info.Email, info.ManagementEmail, info.BookingEmail} {
		if candidate != nil && *candidate != "" {
			return *candidate, true
		}
	}
	return "", false
}

func artistDisplayName(artist store.Artist) string {
	if artist.DisplayName != nil && *artist.DisplayName != "" {
		return *artist.DisplayName
	}
	return artist.Name
}

// templateValues builds the substitution map for a target artist
func templateValues(artist store.Artist) map[string]string {
	name := artistDisplayName(artist)
	values := map[string]string{
		"artistName": name,
		"name":       name,
	}
	if len(artist.Genres) > 0 {
		values["genre"] = artist.Genres[0]
	}
	if artist.Location != nil {
		values["location"] = *artist.Location
	}
	return values
}
