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

// AnalyticsStore defines the database operations required by
// AnalyticsProcessor
type AnalyticsStore interface {
	CountCampaignsByStatus(ctx context.Context, ownerID uuid.UUID) ([]store.StatusCount, error)
	GetArtistTally(ctx context.Context) (store.ArtistTally, error)
	GetOwnerOutreachCounts(ctx context.Context, ownerID uuid.UUID) (store.OutreachCounts, error)
	ListTopArtists(ctx context.Context, limit int) ([]store.Artist, error)
	GetCampaignByID(ctx context.Context, campaignID uuid.UUID) (store.Campaign, error)
	SumTransactionsByType(ctx context.Context, ownerID uuid.UUID, txnType string, from, to *time.Time) (float64, error)
	SumTransactionsByMonth(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]store.MonthlyTotal, error)
}

var ErrCampaignNotFound = errors.New("campaign not found")

type AnalyticsProcessor struct {
	store  AnalyticsStore
	logger *observability.Logger
}

func New(store AnalyticsStore, logger *observability.Logger) AnalyticsProcessor {
	return AnalyticsProcessor{
		store:  store,
		logger: logger,
	}
}

// DashboardSummary is the owner's top-level analytics view
type DashboardSummary struct {
	CampaignsByStatus []store.StatusCount  `json:"campaignsByStatus"`
	TotalCampaigns    int                  `json:"totalCampaigns"`
	Artists           store.ArtistTally    `json:"artists"`
	Outreach          store.OutreachCounts `json:"outreach"`
	TotalRevenue      float64              `json:"totalRevenue"`
	TotalExpenses     float64              `json:"totalExpenses"`
	NetProfit         float64              `json:"netProfit"`
}

// OutreachStats is the owner's cross-campaign email funnel
type OutreachStats struct {
	Counts       store.OutreachCounts `json:"counts"`
	OpenRate     float64              `json:"openRate"`
	ClickRate    float64              `json:"clickRate"`
	ResponseRate float64              `json:"responseRate"`
}

// ArtistPerformance ranks shared-pool artists by audience size
type ArtistPerformance struct {
	Artists []store.Artist `json:"artists"`
}

// RevenueOverview is the owner's month-by-month money series
type RevenueOverview struct {
	Months []store.MonthlyTotal `json:"months"`
}

// GetDashboardSummary composes campaign, artist, outreach, and revenue
// aggregates into one view
func (p *AnalyticsProcessor) GetDashboardSummary(ctx context.Context, ownerID uuid.UUID) (DashboardSummary, error) {
	campaignsByStatus, err := p.store.CountCampaignsByStatus(ctx, ownerID)
	if err != nil {
		p.logger.Error(ctx, "failed to count campaigns by status", err)
		return DashboardSummary{}, err
	}
	totalCampaigns := 0
	for _, bucket := range campaignsByStatus {
		totalCampaigns += bucket.Count
	}

	artists, err := p.store.GetArtistTally(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get artist tally", err)
		return DashboardSummary{}, err
	}

	outreach, err := p.store.GetOwnerOutreachCounts(ctx, ownerID)
	if err != nil {
		p.logger.Error(ctx, "failed to get outreach counts", err)
		return DashboardSummary{}, err
	}

	revenue, err := p.store.SumTransactionsByType(ctx, ownerID, store.TransactionTypeIncome, nil, nil)
	if err != nil {
		p.logger.Error(ctx, "failed to sum revenue", err)
		return DashboardSummary{}, err
	}
	expenses, err := p.store.SumTransactionsByType(ctx, ownerID, store.TransactionTypeExpense, nil, nil)
	if err != nil {
		p.logger.Error(ctx, "failed to sum expenses", err)
		return DashboardSummary{}, err
	}

	return DashboardSummary{
		CampaignsByStatus: campaignsByStatus,
		TotalCampaigns:    totalCampaigns,
		Artists:           artists,
		Outreach:          outreach,
		TotalRevenue:      revenue,
		TotalExpenses:     expenses,
		NetProfit:         revenue - expenses,
	}, nil
}

// GetCampaignMetrics returns the stored metrics of one owned campaign
func (p *AnalyticsProcessor) GetCampaignMetrics(ctx context.Context, campaignID, ownerID uuid.UUID) (store.CampaignMetrics, error) {
	campaign, err := p.store.GetCampaignByID(ctx, campaignID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CampaignMetrics{}, ErrCampaignNotFound
		}
		p.logger.Error(ctx, "failed to get campaign", err)
		return store.CampaignMetrics{}, err
	}
	if campaign.OwnerID != ownerID {
		return store.CampaignMetrics{}, ErrCampaignNotFound
	}
	return campaign.Metrics, nil
}

// GetOutreachStats computes the owner's cross-campaign email funnel.
// Rates are fractions of sent emails, zero when nothing was sent.
func (p *AnalyticsProcessor) GetOutreachStats(ctx context.Context, ownerID uuid.UUID) (OutreachStats, error) {
	counts, err := p.store.GetOwnerOutreachCounts(ctx, ownerID)
	if err != nil {
		p.logger.Error(ctx, "failed to get outreach counts", err)
		return OutreachStats{}, err
	}

	stats := OutreachStats{Counts: counts}
	if counts.Sent > 0 {
		stats.OpenRate = float64(counts.Opened) / float64(counts.Sent)
		stats.ClickRate = float64(counts.Clicked) / float64(counts.Sent)
		stats.ResponseRate = float64(counts.Replied) / float64(counts.Sent)
	}
	return stats, nil
}

// GetArtistPerformance lists the largest-audience artists in the pool.
// Limit defaults to 10 and caps at 100.
func (p *AnalyticsProcessor) GetArtistPerformance(ctx context.Context, limit int) (ArtistPerformance, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	artists, err := p.store.ListTopArtists(ctx, limit)
	if err != nil {
		p.logger.Error(ctx, "failed to list top artists", err)
		return ArtistPerformance{}, err
	}
	return ArtistPerformance{Artists: artists}, nil
}

// GetRevenueOverview returns the owner's monthly income and expense series
func (p *AnalyticsProcessor) GetRevenueOverview(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) (RevenueOverview, error) {
	months, err := p.store.SumTransactionsByMonth(ctx, ownerID, from, to)
	if err != nil {
		p.logger.Error(ctx, "failed to sum transactions by month", err)
		return RevenueOverview{}, err
	}
	return RevenueOverview{Months: months}, nil
}
