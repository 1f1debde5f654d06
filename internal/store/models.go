package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// jsonbValue marshals a typed struct into a JSONB column value
func jsonbValue(v interface{}) (driver.Value, error) {
	return json.Marshal(v)
}

// jsonbScan unmarshals a JSONB column value into a typed struct
func jsonbScan(dst interface{}, value interface{}) error {
	if value == nil {
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("incompatible type for JSONB column: %T", value)
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		return nil
	}
	return json.Unmarshal(bytes, dst)
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	if len(a) == 0 {
		return "{}", nil
	}
	return "{" + strings.Join(a, ",") + "}", nil
}

// Scan implements the sql.Scanner interface for StringArray
func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}

	var str string
	switch v := value.(type) {
	case []byte:
		str = string(v)
	case string:
		str = v
	default:
		return errors.New("unsupported type for StringArray")
	}

	str = strings.Trim(str, "{}")
	if str == "" {
		*a = []string{}
		return nil
	}
	*a = strings.Split(str, ",")
	return nil
}

// User is a dashboard account holder
type User struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Email         string     `db:"email" json:"email"`
	PasswordHash  string     `db:"password_hash" json:"-"`
	FirstName     string     `db:"first_name" json:"firstName"`
	LastName      string     `db:"last_name" json:"lastName"`
	Role          string     `db:"role" json:"role"`
	EmailVerified bool       `db:"email_verified" json:"isEmailVerified"`
	LastLoginAt   *time.Time `db:"last_login_at" json:"lastLoginAt,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updatedAt"`
}

// AgeRange bounds the audience age in campaign targeting
type AgeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// TargetCriteria describes who a campaign is aimed at
type TargetCriteria struct {
	Genres       []string  `json:"genres"`
	Platforms    []string  `json:"platforms"`
	MinFollowers *int      `json:"minFollowers,omitempty"`
	MaxFollowers *int      `json:"maxFollowers,omitempty"`
	Locations    []string  `json:"locations"`
	AgeRange     *AgeRange `json:"ageRange,omitempty"`
	Keywords     []string  `json:"keywords"`
}

func (t TargetCriteria) Value() (driver.Value, error) { return jsonbValue(t) }
func (t *TargetCriteria) Scan(value interface{}) error { return jsonbScan(t, value) }

// CampaignMetrics aggregates campaign performance numbers, all default zero
type CampaignMetrics struct {
	TotalReach         float64 `json:"totalReach"`
	TotalPlays         float64 `json:"totalPlays"`
	TotalLikes         float64 `json:"totalLikes"`
	TotalShares        float64 `json:"totalShares"`
	TotalComments      float64 `json:"totalComments"`
	ConversionRate     float64 `json:"conversionRate"`
	EngagementRate     float64 `json:"engagementRate"`
	CostPerAcquisition float64 `json:"costPerAcquisition"`
	ReturnOnInvestment float64 `json:"returnOnInvestment"`
}

func (m CampaignMetrics) Value() (driver.Value, error) { return jsonbValue(m) }
func (m *CampaignMetrics) Scan(value interface{}) error { return jsonbScan(m, value) }

// Campaign is a music promotion campaign owned by a dashboard user
type Campaign struct {
	ID             uuid.UUID       `db:"id" json:"id"`
	Name           string          `db:"name" json:"name"`
	Description    *string         `db:"description" json:"description,omitempty"`
	Type           string          `db:"type" json:"type"`
	Status         string          `db:"status" json:"status"`
	StartDate      time.Time       `db:"start_date" json:"startDate"`
	EndDate        *time.Time      `db:"end_date" json:"endDate,omitempty"`
	Budget         *float64        `db:"budget" json:"budget,omitempty"`
	TargetCriteria TargetCriteria  `db:"target_criteria" json:"targetCriteria"`
	Metrics        CampaignMetrics `db:"metrics" json:"metrics"`
	Tags           StringArray     `db:"tags" json:"tags"`
	OwnerID        uuid.UUID       `db:"owner_id" json:"ownerId"`
	CreatedAt      time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updatedAt"`
}

// SocialProfile is one platform presence of an artist
type SocialProfile struct {
	Platform       string    `json:"platform"`
	Username       string    `json:"username"`
	URL            string    `json:"url"`
	FollowersCount int       `json:"followersCount"`
	IsVerified     bool      `json:"isVerified"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

// SocialProfiles is the JSONB list of an artist's platform presences
type SocialProfiles []SocialProfile

func (p SocialProfiles) Value() (driver.Value, error) { return jsonbValue(p) }
func (p *SocialProfiles) Scan(value interface{}) error { return jsonbScan(p, value) }

// ContactInfo holds the ways to reach an artist
type ContactInfo struct {
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Website         *string `json:"website,omitempty"`
	ManagementEmail *string `json:"managementEmail,omitempty"`
	BookingEmail    *string `json:"bookingEmail,omitempty"`
}

func (c ContactInfo) Value() (driver.Value, error) { return jsonbValue(c) }
func (c *ContactInfo) Scan(value interface{}) error { return jsonbScan(c, value) }

// ArtistMetrics aggregates an artist's audience numbers
type ArtistMetrics struct {
	TotalFollowers    int       `json:"totalFollowers"`
	TotalPlays        int       `json:"totalPlays"`
	TotalLikes        int       `json:"totalLikes"`
	TotalTracks       int       `json:"totalTracks"`
	AverageEngagement float64   `json:"averageEngagement"`
	MonthlyListeners  int       `json:"monthlyListeners"`
	GrowthRate        float64   `json:"growthRate"`
	LastMetricsUpdate time.Time `json:"lastMetricsUpdate"`
}

func (m ArtistMetrics) Value() (driver.Value, error) { return jsonbValue(m) }
func (m *ArtistMetrics) Scan(value interface{}) error { return jsonbScan(m, value) }

// Artist is a musician tracked for outreach and campaign targeting
type Artist struct {
	ID                 uuid.UUID      `db:"id" json:"id"`
	Name               string         `db:"name" json:"name"`
	DisplayName        *string        `db:"display_name" json:"displayName,omitempty"`
	Bio                *string        `db:"bio" json:"bio,omitempty"`
	Genres             StringArray    `db:"genres" json:"genres"`
	Location           *string        `db:"location" json:"location,omitempty"`
	VerificationStatus string         `db:"verification_status" json:"verificationStatus"`
	SocialProfiles     SocialProfiles `db:"social_profiles" json:"socialProfiles"`
	ContactInfo        ContactInfo    `db:"contact_info" json:"contactInfo"`
	Metrics            ArtistMetrics  `db:"metrics" json:"metrics"`
	Tags               StringArray    `db:"tags" json:"tags"`
	IsActive           bool           `db:"is_active" json:"isActive"`
	DiscoveredAt       time.Time      `db:"discovered_at" json:"discoveredAt"`
	LastContactedAt    *time.Time     `db:"last_contacted_at" json:"lastContactedAt,omitempty"`
	CreatedAt          time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time      `db:"updated_at" json:"updatedAt"`
}

// EmailTemplate is a reusable outreach email body with {{variable}} slots
type EmailTemplate struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	Name      string      `db:"name" json:"name"`
	Subject   string      `db:"subject" json:"subject"`
	Body      string      `db:"body" json:"body"`
	Type      string      `db:"type" json:"type"`
	Variables StringArray `db:"variables" json:"variables"`
	IsDefault bool        `db:"is_default" json:"isDefault"`
	OwnerID   uuid.UUID   `db:"owner_id" json:"ownerId"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time   `db:"updated_at" json:"updatedAt"`
}

// SendingSchedule constrains when an outreach campaign may deliver emails
type SendingSchedule struct {
	Timezone           string `json:"timezone"`
	DaysOfWeek         []int  `json:"daysOfWeek"` // 0 = Sunday
	StartTime          string `json:"startTime"`  // HH:MM
	EndTime            string `json:"endTime"`    // HH:MM
	MaxEmailsPerDay    int    `json:"maxEmailsPerDay"`
	DelayBetweenEmails int    `json:"delayBetweenEmails"` // minutes
}

func (s SendingSchedule) Value() (driver.Value, error) { return jsonbValue(s) }
func (s *SendingSchedule) Scan(value interface{}) error { return jsonbScan(s, value) }

// OutreachCampaign groups email records sent to a set of target artists
type OutreachCampaign struct {
	ID                 uuid.UUID       `db:"id" json:"id"`
	Name               string          `db:"name" json:"name"`
	Description        *string         `db:"description" json:"description,omitempty"`
	Status             string          `db:"status" json:"status"`
	TemplateID         uuid.UUID       `db:"template_id" json:"templateId"`
	TargetArtistIDs    StringArray     `db:"target_artist_ids" json:"targetArtistIds"`
	ScheduledStartDate *time.Time      `db:"scheduled_start_date" json:"scheduledStartDate,omitempty"`
	ScheduledEndDate   *time.Time      `db:"scheduled_end_date" json:"scheduledEndDate,omitempty"`
	SendingSchedule    SendingSchedule `db:"sending_schedule" json:"sendingSchedule"`
	Tags               StringArray     `db:"tags" json:"tags"`
	OwnerID            uuid.UUID       `db:"owner_id" json:"ownerId"`
	CreatedAt          time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time       `db:"updated_at" json:"updatedAt"`
}

// EmailRecord tracks one recipient's lifecycle within an outreach campaign
type EmailRecord struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	OutreachCampaignID uuid.UUID  `db:"outreach_campaign_id" json:"outreachCampaignId"`
	ArtistID           uuid.UUID  `db:"artist_id" json:"artistId"`
	TemplateID         uuid.UUID  `db:"template_id" json:"templateId"`
	RecipientEmail     string     `db:"recipient_email" json:"recipientEmail"`
	RecipientName      string     `db:"recipient_name" json:"recipientName"`
	Subject            string     `db:"subject" json:"subject"`
	Body               string     `db:"body" json:"body"`
	Status             string     `db:"status" json:"status"`
	SentAt             *time.Time `db:"sent_at" json:"sentAt,omitempty"`
	DeliveredAt        *time.Time `db:"delivered_at" json:"deliveredAt,omitempty"`
	OpenedAt           *time.Time `db:"opened_at" json:"openedAt,omitempty"`
	ClickedAt          *time.Time `db:"clicked_at" json:"clickedAt,omitempty"`
	RepliedAt          *time.Time `db:"replied_at" json:"repliedAt,omitempty"`
	BouncedAt          *time.Time `db:"bounced_at" json:"bouncedAt,omitempty"`
	OpenCount          int        `db:"open_count" json:"openCount"`
	ClickCount         int        `db:"click_count" json:"clickCount"`
	ScheduledFor       *time.Time `db:"scheduled_for" json:"scheduledFor,omitempty"`
	SentBy             uuid.UUID  `db:"sent_by" json:"sentBy"`
	ProviderMessageID  *string    `db:"provider_message_id" json:"-"`
	Notes              *string    `db:"notes" json:"notes,omitempty"`
	CreatedAt          time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updatedAt"`
}

// MoneyAmount is a value with its currency and optional display string
type MoneyAmount struct {
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	DisplayAmount *string `json:"displayAmount,omitempty"`
}

func (m MoneyAmount) Value() (driver.Value, error) { return jsonbValue(m) }
func (m *MoneyAmount) Scan(value interface{}) error { return jsonbScan(m, value) }

// Transaction is a finance ledger entry linked to campaigns and artists
type Transaction struct {
	ID              uuid.UUID   `db:"id" json:"id"`
	Type            string      `db:"type" json:"type"`
	Category        string      `db:"category" json:"category"`
	Amount          MoneyAmount `db:"amount" json:"amount"`
	Description     string      `db:"description" json:"description"`
	Status          string      `db:"status" json:"status"`
	PaymentMethod   string      `db:"payment_method" json:"paymentMethod"`
	TransactionDate time.Time   `db:"transaction_date" json:"transactionDate"`
	DueDate         *time.Time  `db:"due_date" json:"dueDate,omitempty"`
	InvoiceNumber   *string     `db:"invoice_number" json:"invoiceNumber,omitempty"`
	ReferenceID     *string     `db:"reference_id" json:"referenceId,omitempty"`
	CampaignID      *uuid.UUID  `db:"campaign_id" json:"campaignId,omitempty"`
	ArtistID        *uuid.UUID  `db:"artist_id" json:"artistId,omitempty"`
	Tags            StringArray `db:"tags" json:"tags"`
	OwnerID         uuid.UUID   `db:"owner_id" json:"ownerId"`
	CreatedAt       time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time   `db:"updated_at" json:"updatedAt"`
}
