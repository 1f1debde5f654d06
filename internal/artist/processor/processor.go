package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"

	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// ArtistStore defines the database operations required by ArtistProcessor
type ArtistStore interface {
	CreateArtist(ctx context.Context, params store.CreateArtistParams) (store.Artist, error)
	GetArtistByID(ctx context.Context, artistID uuid.UUID) (store.Artist, error)
	ListArtists(ctx context.Context, params store.ListArtistsParams) ([]store.Artist, int, error)
	SearchArtists(ctx context.Context, params store.SearchArtistsParams) ([]store.Artist, error)
	UpdateArtist(ctx context.Context, artist store.Artist) (store.Artist, error)
	DeleteArtist(ctx context.Context, artistID uuid.UUID) error
}

var (
	ErrArtistNotFound            = errors.New("artist not found")
	ErrInvalidVerificationStatus = errors.New("invalid verification status")
)

type ArtistProcessor struct {
	store  ArtistStore
	logger *observability.Logger
}

func New(store ArtistStore, logger *observability.Logger) ArtistProcessor {
	return ArtistProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateArtistParams represents parameters for adding an artist to the pool
type CreateArtistParams struct {
	Name           string
	DisplayName    *string
	Bio            *string
	Genres         []string
	Location       *string
	SocialProfiles store.SocialProfiles
	ContactInfo    store.ContactInfo
	Tags           []string
}

// UpdateArtistParams carries the fields of a partial artist update.
// Nil fields keep their stored values.
type UpdateArtistParams struct {
	Name               *string
	DisplayName        *string
	Bio                *string
	Genres             []string
	Location           *string
	VerificationStatus *string
	SocialProfiles     *store.SocialProfiles
	ContactInfo        *store.ContactInfo
	Metrics            *store.ArtistMetrics
	Tags               []string
	IsActive           *bool
}

// DiscoverArtistsParams filters the discovery search over the known pool
type DiscoverArtistsParams struct {
	Query        *string
	Genres       []string
	Platforms    []string
	MinFollowers *int
	MaxFollowers *int
	Location     *string
	Limit        int
}

// ListArtistsResult bundles an artist page with its pagination block
type ListArtistsResult struct {
	Artists    []store.Artist
	Pagination store.Pagination
}

// CreateArtist adds a new artist to the shared pool
func (p *ArtistProcessor) CreateArtist(ctx context.Context, params CreateArtistParams) (store.Artist, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "artist_name", Value: params.Name})

	artist, err := p.store.CreateArtist(ctx, store.CreateArtistParams{
		Name:           params.Name,
		DisplayName:    params.DisplayName,
		Bio:            params.Bio,
		Genres:         params.Genres,
		Location:       params.Location,
		SocialProfiles: params.SocialProfiles,
		ContactInfo:    params.ContactInfo,
		Tags:           params.Tags,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create artist", err)
		return store.Artist{}, err
	}

	p.logger.Info(ctx, "artist created")
	return artist, nil
}

// GetArtist retrieves an artist by ID
func (p *ArtistProcessor) GetArtist(ctx context.Context, artistID uuid.UUID) (store.Artist, error) {
	artist, err := p.store.GetArtistByID(ctx, artistID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Artist{}, ErrArtistNotFound
		}
		p.logger.Error(ctx, "failed to get artist", err)
		return store.Artist{}, err
	}
	return artist, nil
}

// ListArtists retrieves a filtered page of the artist pool
func (p *ArtistProcessor) ListArtists(ctx context.Context, genre, verificationStatus, query *string, activeOnly bool, page, limit int) (ListArtistsResult, error) {
	if verificationStatus != nil && !store.IsValidVerificationStatus(*verificationStatus) {
		return ListArtistsResult{}, ErrInvalidVerificationStatus
	}

	page, limit = store.NormalizePage(page, limit)

	artists, total, err := p.store.ListArtists(ctx, store.ListArtistsParams{
		Genre:              genre,
		VerificationStatus: verificationStatus,
		ActiveOnly:         activeOnly,
		Query:              query,
		Page:               page,
		Limit:              limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list artists", err)
		return ListArtistsResult{}, err
	}

	return ListArtistsResult{
		Artists:    artists,
		Pagination: store.NewPagination(total, page, limit),
	}, nil
}

// DiscoverArtists searches the known pool for artists matching the criteria.
// Platform and follower filters are applied over the stored profiles, so the
// store query over-fetches and the final cut happens here.
func (p *ArtistProcessor) DiscoverArtists(ctx context.Context, params DiscoverArtistsParams) ([]store.Artist, error) {
	limit := params.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	candidates, err := p.store.SearchArtists(ctx, store.SearchArtistsParams{
		Query:        params.Query,
		Genres:       params.Genres,
		Platforms:    params.Platforms,
		MinFollowers: params.MinFollowers,
		MaxFollowers: params.MaxFollowers,
		Location:     params.Location,
		Limit:        limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to search artists", err)
		return nil, err
	}

	matched := make([]store.Artist, 0, limit)
	for _, artist := range candidates {
		if !matchesPlatforms(artist, params.Platforms) {
			continue
		}
		if params.MinFollowers != nil && artist.Metrics.TotalFollowers < *params.MinFollowers {
			continue
		}
		if params.MaxFollowers != nil && artist.Metrics.TotalFollowers > *params.MaxFollowers {
			continue
		}
		matched = append(matched, artist)
		if len(matched) == limit {
			break
		}
	}
	return matched, nil
}

// UpdateArtist applies a partial update to an artist
func (p *ArtistProcessor) UpdateArtist(ctx context.Context, artistID uuid.UUID, params UpdateArtistParams) (store.Artist, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "artist_id", Value: artistID.String()})

	artist, err := p.GetArtist(ctx, artistID)
	if err != nil {
		return store.Artist{}, err
	}

	if params.VerificationStatus != nil {
		if !store.IsValidVerificationStatus(*params.VerificationStatus) {
			return store.Artist{}, ErrInvalidVerificationStatus
		}
		artist.VerificationStatus = *params.VerificationStatus
	}
	if params.Name != nil {
		artist.Name = *params.Name
	}
	if params.DisplayName != nil {
		artist.DisplayName = params.DisplayName
	}
	if params.Bio != nil {
		artist.Bio = params.Bio
	}
	if params.Genres != nil {
		artist.Genres = params.Genres
	}
	if params.Location != nil {
		artist.Location = params.Location
	}
	if params.SocialProfiles != nil {
		artist.SocialProfiles = *params.SocialProfiles
	}
	if params.ContactInfo != nil {
		artist.ContactInfo = *params.ContactInfo
	}
	if params.Metrics != nil {
		artist.Metrics = *params.Metrics
	}
	if params.Tags != nil {
		artist.Tags = params.Tags
	}
	if params.IsActive != nil {
		artist.IsActive = *params.IsActive
	}

	updated, err := p.store.UpdateArtist(ctx, artist)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Artist{}, ErrArtistNotFound
		}
		p.logger.Error(ctx, "failed to update artist", err)
		return store.Artist{}, err
	}

	p.logger.Info(ctx, "artist updated")
	return updated, nil
}

// DeleteArtist removes an artist from the pool
func (p *ArtistProcessor) DeleteArtist(ctx context.Context, artistID uuid.UUID) error {
	err := p.store.DeleteArtist(ctx, artistID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrArtistNotFound
		}
		p.logger.Error(ctx, "failed to delete artist", err)
		return err
	}
	p.logger.Info(ctx, "artist deleted")
	return nil
}

func matchesPlatforms(artist store.Artist, platforms []string) bool {
	if len(platforms) == 0 {
		return true
	}
	for _, wanted := range platforms {
		for _, profile := range artist.SocialProfiles {
			if profile.Platform == wanted {
				return true
			}
		}
	}
	return false
}
