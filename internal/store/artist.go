package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateArtistParams represents parameters for creating an artist
type CreateArtistParams struct {
	Name           string
	DisplayName    *string
	Bio            *string
	Genres         []string
	Location       *string
	SocialProfiles SocialProfiles
	ContactInfo    ContactInfo
	Tags           []string
}

// ListArtistsParams filters and pages the artist list
type ListArtistsParams struct {
	Genre              *string
	VerificationStatus *string
	ActiveOnly         bool
	Query              *string
	Page               int
	Limit              int
}

// SearchArtistsParams backs the discovery search over known artists
type SearchArtistsParams struct {
	Query        *string
	Genres       []string
	Platforms    []string
	MinFollowers *int
	MaxFollowers *int
	Location     *string
	Limit        int
}

const artistColumns = `
id, name, display_name, bio, genres, location, verification_status,
social_profiles, contact_info, metrics, tags, is_active, discovered_at,
last_contacted_at, created_at, updated_at`

const sqlCreateArtist = `
INSERT INTO artists (name, display_name, bio, genres, location, verification_status, social_profiles, contact_info, metrics, tags, is_active, discovered_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE, NOW())
RETURNING ` + artistColumns

// CreateArtist inserts a new unverified artist
func (s *Store) CreateArtist(ctx context.Context, params CreateArtistParams) (Artist, error) {
	var artist Artist
	err := s.db.GetContext(ctx, &artist, sqlCreateArtist,
		params.Name,
		params.DisplayName,
		params.Bio,
		StringArray(params.Genres),
		params.Location,
		VerificationStatusUnverified,
		params.SocialProfiles,
		params.ContactInfo,
		ArtistMetrics{},
		StringArray(params.Tags))
	if err != nil {
		s.logger.Error(ctx, "failed to create artist", err)
		return Artist{}, fmt.Errorf("failed to create artist: %w", err)
	}
	return artist, nil
}

const sqlGetArtistByID = `
SELECT ` + artistColumns + `
FROM artists
WHERE id = $1`

// GetArtistByID retrieves an artist by ID
func (s *Store) GetArtistByID(ctx context.Context, artistID uuid.UUID) (Artist, error) {
	var artist Artist
	err := s.db.GetContext(ctx, &artist, sqlGetArtistByID, artistID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artist{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get artist by id", err)
		return Artist{}, fmt.Errorf("failed to get artist by id: %w", err)
	}
	return artist, nil
}

const sqlListArtists = `
SELECT ` + artistColumns + `
FROM artists
WHERE ($1::text IS NULL OR $1 = ANY(genres))
  AND ($2::text IS NULL OR verification_status = $2)
  AND (NOT $3 OR is_active)
  AND ($4::text IS NULL OR name ILIKE '%' || $4 || '%' OR display_name ILIKE '%' || $4 || '%')
ORDER BY discovered_at DESC
LIMIT $5 OFFSET $6`

const sqlCountArtists = `
SELECT COUNT(*)
FROM artists
WHERE ($1::text IS NULL OR $1 = ANY(genres))
  AND ($2::text IS NULL OR verification_status = $2)
  AND (NOT $3 OR is_active)
  AND ($4::text IS NULL OR name ILIKE '%' || $4 || '%' OR display_name ILIKE '%' || $4 || '%')`

// ListArtists retrieves one page of artists plus the total count
func (s *Store) ListArtists(ctx context.Context, params ListArtistsParams) ([]Artist, int, error) {
	page, limit := NormalizePage(params.Page, params.Limit)
	offset := (page - 1) * limit

	artists := []Artist{}
	err := s.db.SelectContext(ctx, &artists, sqlListArtists,
		params.Genre, params.VerificationStatus, params.ActiveOnly, params.Query, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list artists", err)
		return nil, 0, fmt.Errorf("failed to list artists: %w", err)
	}

	var total int
	err = s.db.GetContext(ctx, &total, sqlCountArtists,
		params.Genre, params.VerificationStatus, params.ActiveOnly, params.Query)
	if err != nil {
		s.logger.Error(ctx, "failed to count artists", err)
		return nil, 0, fmt.Errorf("failed to count artists: %w", err)
	}
	return artists, total, nil
}

const sqlSearchArtists = `
SELECT ` + artistColumns + `
FROM artists
WHERE is_active
  AND ($1::text IS NULL OR name ILIKE '%' || $1 || '%' OR display_name ILIKE '%' || $1 || '%' OR bio ILIKE '%' || $1 || '%')
  AND (cardinality($2::text[]) = 0 OR genres && $2)
  AND ($3::text IS NULL OR location ILIKE '%' || $3 || '%')
ORDER BY (metrics->>'totalFollowers')::numeric DESC NULLS LAST
LIMIT $4`

// SearchArtists runs the discovery search over already-known artists.
// Platform and follower-range filtering over the JSONB profiles happens in
// the processor, so the limit here is widened to leave room for it.
func (s *Store) SearchArtists(ctx context.Context, params SearchArtistsParams) ([]Artist, error) {
	limit := params.Limit
	if limit < 1 {
		limit = 20
	}
	genres := params.Genres
	if genres == nil {
		genres = []string{}
	}

	artists := []Artist{}
	err := s.db.SelectContext(ctx, &artists, sqlSearchArtists,
		params.Query, StringArray(genres), params.Location, limit*4)
	if err != nil {
		s.logger.Error(ctx, "failed to search artists", err)
		return nil, fmt.Errorf("failed to search artists: %w", err)
	}
	return artists, nil
}

const sqlUpdateArtist = `
UPDATE artists
SET name = $2, display_name = $3, bio = $4, genres = $5, location = $6,
    verification_status = $7, social_profiles = $8, contact_info = $9,
    tags = $10, is_active = $11, updated_at = NOW()
WHERE id = $1
RETURNING ` + artistColumns

// UpdateArtist writes the full artist row
func (s *Store) UpdateArtist(ctx context.Context, artist Artist) (Artist, error) {
	var updated Artist
	err := s.db.GetContext(ctx, &updated, sqlUpdateArtist,
		artist.ID,
		artist.Name,
		artist.DisplayName,
		artist.Bio,
		artist.Genres,
		artist.Location,
		artist.VerificationStatus,
		artist.SocialProfiles,
		artist.ContactInfo,
		artist.Tags,
		artist.IsActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Artist{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update artist", err)
		return Artist{}, fmt.Errorf("failed to update artist: %w", err)
	}
	return updated, nil
}

const sqlStampArtistContacted = `
UPDATE artists SET last_contacted_at = NOW(), updated_at = NOW() WHERE id = $1`

// StampArtistContacted records that outreach was sent to the artist
func (s *Store) StampArtistContacted(ctx context.Context, artistID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, sqlStampArtistContacted, artistID)
	if err != nil {
		s.logger.Error(ctx, "failed to stamp artist contacted", err)
		return fmt.Errorf("failed to stamp artist contacted: %w", err)
	}
	return nil
}

const sqlDeleteArtist = `
DELETE FROM artists WHERE id = $1`

// DeleteArtist removes an artist
func (s *Store) DeleteArtist(ctx context.Context, artistID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteArtist, artistID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete artist", err)
		return fmt.Errorf("failed to delete artist: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete artist: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
