package client

import (
	"context"
	"fmt"
	"net/http"

	outreachHandler "soundreach-server/internal/outreach/handler"
	outreachProcessor "soundreach-server/internal/outreach/processor"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

// OutreachCampaigns is the state container for outreach campaigns.
type OutreachCampaigns struct {
	resource[store.OutreachCampaign]
}

type outreachCampaignEnvelope struct {
	Campaign store.OutreachCampaign `json:"campaign"`
}

// Fetch loads a page of outreach campaigns, replacing the container's items.
func (s *OutreachCampaigns) Fetch(ctx context.Context, page, limit int) {
	s.begin()
	var envelope listEnvelope[store.OutreachCampaign]
	err := s.client.do(ctx, http.MethodGet, fmt.Sprintf("%s?page=%d&limit=%d", s.basePath, page, limit), nil, &envelope)
	s.finishFetch(envelope.Data, envelope.Pagination, err)
}

// Create adds an outreach campaign and merges it in on success.
func (s *OutreachCampaigns) Create(ctx context.Context, params outreachHandler.CreateOutreachCampaignRequest) (store.OutreachCampaign, error) {
	s.begin()
	var envelope outreachCampaignEnvelope
	err := s.client.do(ctx, http.MethodPost, s.basePath, params, &envelope)
	if err := s.finishMutation(err); err != nil {
		return store.OutreachCampaign{}, err
	}
	s.upsert(envelope.Campaign)
	return envelope.Campaign, nil
}

// Update applies a partial update and merges the result by ID.
func (s *OutreachCampaigns) Update(ctx context.Context, id uuid.UUID, params outreachHandler.UpdateOutreachCampaignRequest) (store.OutreachCampaign, error) {
	s.begin()
	var envelope outreachCampaignEnvelope
	err := s.client.do(ctx, http.MethodPatch, s.basePath+"/"+id.String(), params, &envelope)
	if err := s.finishMutation(err); err != nil {
		return store.OutreachCampaign{}, err
	}
	s.upsert(envelope.Campaign)
	return envelope.Campaign, nil
}

// Send queues the campaign's emails and returns the scheduling result.
func (s *OutreachCampaigns) Send(ctx context.Context, id uuid.UUID) (outreachProcessor.SendResult, error) {
	s.begin()
	var result outreachProcessor.SendResult
	err := s.client.do(ctx, http.MethodPost, s.basePath+"/"+id.String()+"/send", nil, &result)
	if err := s.finishMutation(err); err != nil {
		return outreachProcessor.SendResult{}, err
	}
	return result, nil
}

// Delete removes an outreach campaign from the server and the container.
func (s *OutreachCampaigns) Delete(ctx context.Context, id uuid.UUID) error {
	s.begin()
	err := s.client.do(ctx, http.MethodDelete, s.basePath+"/"+id.String(), nil, nil)
	if err := s.finishMutation(err); err != nil {
		return err
	}
	s.remove(id)
	return nil
}
