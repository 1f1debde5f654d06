package client

import (
	"context"
	"fmt"
	"net/http"

	artistHandler "soundreach-server/internal/artist/handler"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// Artists is the state container for the artist pool.
type Artists struct {
	resource[store.Artist]
}

type artistEnvelope struct {
	Artist store.Artist `json:"artist"`
}

type artistMatchesEnvelope struct {
	Artists []store.Artist `json:"artists"`
}

// Fetch loads a page of artists, replacing the container's items.
func (s *Artists) Fetch(ctx context.Context, page, limit int) {
	s.begin()
	var envelope listEnvelope[store.Artist]
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("%s?page=%d&limit=%d", s.basePath, page, limit), nil, &envelope)
	s.finishFetch(envelope.Data, envelope.Pagination, err)
}

// Discover runs a discovery search and replaces the container's items
// with the matches.
func (s *Artists) Discover(ctx context.Context, params artistHandler.DiscoverArtistsRequest) {
	s.begin()
	var envelope artistMatchesEnvelope
	err := s.client.do(ctx, http.MethodPost, s.basePath+"/discover", params, &envelope)
	s.finishFetch(envelope.Artists, store.Pagination{}, err)
}

// Create adds an artist and merges it into the container on success.
func (s *Artists) Create(ctx context.Context, params artistHandler.CreateArtistRequest) (store.Artist, error) {
	s.begin()
	var envelope artistEnvelope
	err := s.client.do(ctx, http.MethodPost, s.basePath, params, &envelope)
	if err := s.finishMutation(err); err != nil {
		return store.Artist{}, err
	}
	s.upsert(envelope.Artist)
	return envelope.Artist, nil
}

// Update applies a partial update and merges the result by ID.
func (s *Artists) Update(ctx context.Context, id uuid.UUID, params artistHandler.UpdateArtistRequest) (store.Artist, error) {
	s.begin()
	var envelope artistEnvelope
	err := s.client.do(ctx, http.MethodPatch, s.basePath+"/"+id.String(), params, &envelope)
	if err := s.finishMutation(err); err != nil {
		return store.Artist{}, err
	}
	s.upsert(envelope.Artist)
	return envelope.Artist, nil
}

// Delete removes an artist from the server and the container.
func (s *Artists) Delete(ctx context.Context, id uuid.UUID) error {
	s.begin()
	err := s.client.do(ctx, http.MethodDelete, s.basePath+"/"+id.String(), nil, nil)
	if err := s.finishMutation(err); err != nil {
		return err
	}
	s.remove(id)
	return nil
}
