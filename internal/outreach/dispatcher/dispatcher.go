package dispatcher

//go:generate go run go.uber.org/mock/mockgen@latest -source=dispatcher.go -destination=mocks_test.go -package=dispatcher

import (
	"context"
	"time"

	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// Cap on records pulled per campaign per tick when no inter-email delay
// is configured.
const maxBatchSize = 25

// DispatcherStore defines the database operations required by the dispatcher
type DispatcherStore interface {
	ListActiveOutreachCampaigns(ctx context.Context) ([]store.OutreachCampaign, error)
	ListDueEmailRecords(ctx context.Context, campaignID uuid.UUID, before time.Time, limit int) ([]store.EmailRecord, error)
	CountEmailsSentSince(ctx context.Context, campaignID uuid.UUID, since time.Time) (int, error)
	GetLastSentAt(ctx context.Context, campaignID uuid.UUID) (*time.Time, error)
	MarkEmailRecordSent(ctx context.Context, recordID uuid.UUID, providerMessageID string) (store.EmailRecord, error)
	MarkEmailRecordFailed(ctx context.Context, recordID uuid.UUID, reason string) (store.EmailRecord, error)
}

// MailSender delivers a single email and returns the provider message ID
type MailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
}

// Dispatcher drains scheduled email records for active outreach campaigns,
// honoring each campaign's sending schedule.
type Dispatcher struct {
	store        DispatcherStore
	mailer       MailSender
	logger       *observability.Logger
	tickInterval time.Duration
	now          func() time.Time
}

// New builds a Dispatcher ticking at the given interval
func New(store DispatcherStore, mailer MailSender, tickInterval time.Duration, logger *observability.Logger) *Dispatcher {
	if tickInterval <= 0 {
		tickInterval = 30 * time.Second
	}
	return &Dispatcher{
		store:        store,
		mailer:       mailer,
		logger:       logger,
		tickInterval: tickInterval,
		now:          time.Now,
	}
}

// Run ticks until the context is cancelled
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info(ctx, "outreach dispatcher started",
		observability.Field{Key: "tick_interval", Value: d.tickInterval.String()})

	ticker := time.NewTicker(d.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			d.logger.Info(ctx, "outreach dispatcher stopped")
			return
		case <-ticker.C:
			d.RunOnce(ctx)
		}
	}
}

// RunOnce processes every active campaign a single time
func (d *Dispatcher) RunOnce(ctx context.Context) {
	campaigns, err := d.store.ListActiveOutreachCampaigns(ctx)
	if err != nil {
		d.logger.Error(ctx, "failed to list active outreach campaigns", err)
		return
	}

	now := d.now()
	for _, campaign := range campaigns {
		d.processCampaign(ctx, campaign, now)
	}
}

func (d *Dispatcher) processCampaign(ctx context.Context, campaign store.OutreachCampaign, now time.Time) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "outreach_campaign_id", Value: campaign.ID.String()})
	schedule := campaign.SendingSchedule

	location, err := time.LoadLocation(schedule.Timezone)
	if err != nil {
		d.logger.Warn(ctx, "campaign has unknown timezone",
			observability.Field{Key: "timezone", Value: schedule.Timezone})
		return
	}
	localNow := now.In(location)

	if !withinWindow(schedule, localNow) {
		return
	}

	midnight := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, location)
	sentToday, err := d.store.CountEmailsSentSince(ctx, campaign.ID, midnight)
	if err != nil {
		d.logger.Error(ctx, "failed to count emails sent today", err)
		return
	}
	if sentToday >= schedule.MaxEmailsPerDay {
		return
	}

	delay := time.Duration(schedule.DelayBetweenEmails) * time.Minute
	if delay > 0 {
		lastSent, err := d.store.GetLastSentAt(ctx, campaign.ID)
		if err != nil {
			d.logger.Error(ctx, "failed to get last sent time", err)
			return
		}
		if lastSent != nil && now.Sub(*lastSent) < delay {
			return
		}
	}

	batch := schedule.MaxEmailsPerDay - sentToday
	if delay > 0 {
		// With a delay configured only one email goes out per tick.
		batch = 1
	}
	if batch > maxBatchSize {
		batch = maxBatchSize
	}

	records, err := d.store.ListDueEmailRecords(ctx, campaign.ID, now, batch)
	if err != nil {
		d.logger.Error(ctx, "failed to list due email records", err)
		return
	}

	for _, record := range records {
		d.deliver(ctx, record)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, record store.EmailRecord) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "email_record_id", Value: record.ID.String()})

	messageID, err := d.mailer.SendEmail(ctx, record.RecipientEmail, record.Subject, record.Body)
	if err != nil {
		d.logger.Error(ctx, "failed to send outreach email", err)
		if _, markErr := d.store.MarkEmailRecordFailed(ctx, record.ID, err.Error()); markErr != nil {
			d.logger.Error(ctx, "failed to mark email record failed", markErr)
		}
		return
	}

	if _, err := d.store.MarkEmailRecordSent(ctx, record.ID, messageID); err != nil {
		d.logger.Error(ctx, "failed to mark email record sent", err)
		return
	}
	d.logger.Info(ctx, "outreach email sent")
}

// withinWindow reports whether the local time falls on an allowed day and
// inside the schedule's sending hours.
func withinWindow(schedule store.SendingSchedule, localNow time.Time) bool {
	dayAllowed := false
	for _, day := range schedule.DaysOfWeek {
		if int(localNow.Weekday()) == day {
			dayAllowed = true
			break
		}
	}
	if !dayAllowed {
		return false
	}

	start, err := time.Parse("15:04", schedule.StartTime)
	if err != nil {
		return false
	}
	end, err := time.Parse("15:04", schedule.EndTime)
	if err != nil {
		return false
	}

	minuteOfDay := localNow.Hour()*60 + localNow.Minute()
	startMinute := start.Hour()*60 + start.Minute()
	endMinute := end.Hour()*60 + end.Minute()
	return minuteOfDay >= startMinute && minuteOfDay < endMinute
}
