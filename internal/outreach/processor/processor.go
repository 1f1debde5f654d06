package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// OutreachStore defines the database operations required by OutreachProcessor
type OutreachStore interface {
	CreateEmailTemplate(ctx context.Context, params store.CreateEmailTemplateParams) (store.EmailTemplate, error)
	GetEmailTemplateByID(ctx context.Context, templateID uuid.UUID) (store.EmailTemplate, error)
	ListEmailTemplates(ctx context.Context, ownerID uuid.UUID) ([]store.EmailTemplate, error)
	UpdateEmailTemplate(ctx context.Context, template store.EmailTemplate) (store.EmailTemplate, error)
	DeleteEmailTemplate(ctx context.Context, templateID, ownerID uuid.UUID) error

	CreateOutreachCampaign(ctx context.Context, params store.CreateOutreachCampaignParams) (store.OutreachCampaign, error)
	GetOutreachCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.OutreachCampaign, error)
	ListOutreachCampaigns(ctx context.Context, params store.ListOutreachCampaignsParams) ([]store.OutreachCampaign, int, error)
	UpdateOutreachCampaign(ctx context.Context, campaign store.OutreachCampaign) (store.OutreachCampaign, error)
	DeleteOutreachCampaign(ctx context.Context, campaignID, ownerID uuid.UUID) error

	GetArtistByID(ctx context.Context, artistID uuid.UUID) (store.Artist, error)
	StampArtistContacted(ctx context.Context, artistID uuid.UUID) error

	CreateEmailRecord(ctx context.Context, params store.CreateEmailRecordParams) (store.EmailRecord, error)
	ListEmailRecordsByCampaign(ctx context.Context, campaignID uuid.UUID) ([]store.EmailRecord, error)
	GetOutreachCounts(ctx context.Context, campaignID uuid.UUID) (store.OutreachCounts, error)
}

// TextGenerator produces email drafts from prompts
type TextGenerator interface {
	GenerateText(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

var (
	ErrTemplateNotFound         = errors.New("email template not found")
	ErrOutreachCampaignNotFound = errors.New("outreach campaign not found")
	ErrInvalidTemplateType      = errors.New("invalid template type")
	ErrInvalidSchedule          = errors.New("invalid sending schedule")
	ErrInvalidCampaignStatus    = errors.New("invalid outreach campaign status")
	ErrCampaignNotActive        = errors.New("outreach campaign is not active")
	ErrNoTargetArtists          = errors.New("outreach campaign has no target artists")
	ErrMissingContactEmail      = errors.New("artist has no contact email")
	ErrAIUnavailable            = errors.New("ai service is not configured")
)

type OutreachProcessor struct {
	store     OutreachStore
	generator TextGenerator
	logger    *observability.Logger
}

// New builds an OutreachProcessor. The generator may be nil when no AI
// key is configured; template generation then returns ErrAIUnavailable.
func New(store OutreachStore, generator TextGenerator, logger *observability.Logger) OutreachProcessor {
	return OutreachProcessor{
		store:     store,
		generator: generator,
		logger:    logger,
	}
}

// OutreachMetrics summarizes a campaign's funnel with derived rates
type OutreachMetrics struct {
	TotalEmails    int     `json:"totalEmails"`
	EmailsSent     int     `json:"emailsSent"`
	EmailsOpened   int     `json:"emailsOpened"`
	EmailsClicked  int     `json:"emailsClicked"`
	EmailsReplied  int     `json:"emailsReplied"`
	EmailsBounced  int     `json:"emailsBounced"`
	EmailsFailed   int     `json:"emailsFailed"`
	OpenRate       float64 `json:"openRate"`
	ClickRate      float64 `json:"clickRate"`
	ResponseRate   float64 `json:"responseRate"`
	DeliveredCount int     `json:"deliveredCount"`
}

// CampaignMetrics computes the outreach funnel for one campaign.
// Rates are fractions of sent emails, zero when nothing was sent.
func (p *OutreachProcessor) CampaignMetrics(ctx context.Context, campaignID, ownerID uuid.UUID) (OutreachMetrics, error) {
	if _, err := p.GetCampaign(ctx, campaignID, ownerID); err != nil {
		return OutreachMetrics{}, err
	}

	counts, err := p.store.GetOutreachCounts(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to get outreach counts", err)
		return OutreachMetrics{}, err
	}

	metrics := OutreachMetrics{
		TotalEmails:    counts.Total,
		EmailsSent:     counts.Sent,
		EmailsOpened:   counts.Opened,
		EmailsClicked:  counts.Clicked,
		EmailsReplied:  counts.Replied,
		EmailsBounced:  counts.Bounced,
		EmailsFailed:   counts.Failed,
		DeliveredCount: counts.Delivered,
	}
	if counts.Sent > 0 {
		metrics.OpenRate = float64(counts.Opened) / float64(counts.Sent)
		metrics.ClickRate = float64(counts.Clicked) / float64(counts.Sent)
		metrics.ResponseRate = float64(counts.Replied) / float64(counts.Sent)
	}
	return metrics, nil
}

// ListEmailRecords retrieves every email record of an owner's campaign
func (p *OutreachProcessor) ListEmailRecords(ctx context.Context, campaignID, ownerID uuid.UUID) ([]store.EmailRecord, error) {
	if _, err := p.GetCampaign(ctx, campaignID, ownerID); err != nil {
		return nil, err
	}
	records, err := p.store.ListEmailRecordsByCampaign(ctx, campaignID)
	if err != nil {
		p.logger.Error(ctx, "failed to list email records", err)
		return nil, err
	}
	return records, nil
}
