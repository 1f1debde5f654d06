package client

import (
	"context"
	"fmt"
	"net/http"

	campaignHandler "soundreach-server/internal/campaign/handler"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// Campaigns is the state container for marketing campaigns.
type Campaigns struct {
	resource[store.Campaign]
}

type campaignEnvelope struct {
	Campaign store.Campaign `json:"campaign"`
}

// Fetch loads a page of campaigns, replacing the container's items.
func (s *Campaigns) Fetch(ctx context.Context, page, limit int) {
	s.begin()
	var envelope listEnvelope[store.Campaign]
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("%s?page=%d&limit=%d", s.basePath, page, limit), nil, &envelope)
	s.finishFetch(envelope.Data, envelope.Pagination, err)
}

// Create adds a campaign and merges it into the container on success.
func (s *Campaigns) Create(ctx context.Context, params campaignHandler.CreateCampaignRequest) (store.Campaign, error) {
	s.begin()
	var envelope campaignEnvelope
	err := s.client.do(ctx, http.MethodPost, s.basePath, params, &envelope)
	if err := s.finishMutation(err); err != nil {
		return store.Campaign{}, err
	}
	s.upsert(envelope.Campaign)
	return envelope.Campaign, nil
}

// Update applies a partial update and merges the result by ID.
func (s *Campaigns) Update(ctx context.Context, id uuid.UUID, params campaignHandler.UpdateCampaignRequest) (store.Campaign, error) {
	s.begin()
	var envelope campaignEnvelope
	err := s.client.do(ctx, http.MethodPatch, s.basePath+"/"+id.String(), params, &envelope)
	if err := s.finishMutation(err); err != nil {
		return store.Campaign{}, err
	}
	s.upsert(envelope.Campaign)
	return envelope.Campaign, nil
}

// UpdateMetrics replaces a campaign's metrics and merges the result.
func (s *Campaigns) UpdateMetrics(ctx context.Context, id uuid.UUID, params campaignHandler.UpdateMetricsRequest) (store.Campaign, error) {
	s.begin()
	var envelope campaignEnvelope
	err := s.client.do(ctx, http.MethodPut, s.basePath+"/"+id.String()+"/metrics", params, &envelope)
	if err := s.finishMutation(err); err != nil {
		return store.Campaign{}, err
	}
	s.upsert(envelope.Campaign)
	return envelope.Campaign, nil
}

// Delete removes a campaign from the server and the container.
func (s *Campaigns) Delete(ctx context.Context, id uuid.UUID) error {
	s.begin()
	err := s.client.do(ctx, http.MethodDelete, s.basePath+"/"+id.String(), nil, nil)
	if err := s.finishMutation(err); err != nil {
		return err
	}
	s.remove(id)
	return nil
}
