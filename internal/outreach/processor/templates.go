package processor

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sort"

	"soundreach-server/internal/observability"
	"soundreach-server/internal/store"

	"github.com/google/uuid"
)

var variablePattern = regexp.MustCompile(`\{\{\s*([a-zA-Z][a-zA-Z0-9_]*)\s*\}\}`)

// CreateTemplateParams represents parameters for creating an email template
type CreateTemplateParams struct {
	Name      string
	Subject   string
	Body      string
	Type      string
	IsDefault bool
}

// UpdateTemplateParams carries the fields of a partial template update.
// Nil fields keep their stored values.
type UpdateTemplateParams struct {
	Name      *string
	Subject   *string
	Body      *string
	Type      *string
	IsDefault *bool
}

// GenerateTemplateParams drives the AI draft of a new template
type GenerateTemplateParams struct {
	Type         string
	Genre        string
	SenderName   string
	CampaignGoal string
	Tone         string
}

// CreateTemplate stores a template, extracting its {{variable}} names
func (p *OutreachProcessor) CreateTemplate(ctx context.Context, ownerID uuid.UUID, params CreateTemplateParams) (store.EmailTemplate, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "template_type", Value: params.Type})

	if !store.IsValidTemplateType(params.Type) {
		return store.EmailTemplate{}, ErrInvalidTemplateType
	}

	template, err := p.store.CreateEmailTemplate(ctx, store.CreateEmailTemplateParams{
		Name:      params.Name,
		Subject:   params.Subject,
		Body:      params.Body,
		Type:      params.Type,
		Variables: ExtractVariables(params.Subject, params.Body),
		IsDefault: params.IsDefault,
		OwnerID:   ownerID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create email template", err)
		return store.EmailTemplate{}, err
	}

	p.logger.Info(ctx, "email template created")
	return template, nil
}

// GetTemplate retrieves an owner's template by ID
func (p *OutreachProcessor) GetTemplate(ctx context.Context, templateID, ownerID uuid.UUID) (store.EmailTemplate, error) {
	template, err := p.store.GetEmailTemplateByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.EmailTemplate{}, ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to get email template", err)
		return store.EmailTemplate{}, err
	}
	if template.OwnerID != ownerID {
		return store.EmailTemplate{}, ErrTemplateNotFound
	}
	return template, nil
}

// ListTemplates retrieves every template of an owner
func (p *OutreachProcessor) ListTemplates(ctx context.Context, ownerID uuid.UUID) ([]store.EmailTemplate, error) {
	templates, err := p.store.ListEmailTemplates(ctx, ownerID)
	if err != nil {
		p.logger.Error(ctx, "failed to list email templates", err)
		return nil, err
	}
	return templates, nil
}

// UpdateTemplate applies a partial update, re-extracting variables
func (p *OutreachProcessor) UpdateTemplate(ctx context.Context, templateID, ownerID uuid.UUID, params UpdateTemplateParams) (store.EmailTemplate, error) {
	template, err := p.GetTemplate(ctx, templateID, ownerID)
	if err != nil {
		return store.EmailTemplate{}, err
	}

	if params.Type != nil {
		if !store.IsValidTemplateType(*params.Type) {
			return store.EmailTemplate{}, ErrInvalidTemplateType
		}
		template.Type = *params.Type
	}
	if params.Name != nil {
		template.Name = *params.Name
	}
	if params.Subject != nil {
		template.Subject = *params.Subject
	}
	if params.Body != nil {
		template.Body = *params.Body
	}
	if params.IsDefault != nil {
		template.IsDefault = *params.IsDefault
	}
	template.Variables = ExtractVariables(template.Subject, template.Body)

	updated, err := p.store.UpdateEmailTemplate(ctx, template)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.EmailTemplate{}, ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to update email template", err)
		return store.EmailTemplate{}, err
	}

	p.logger.Info(ctx, "email template updated")
	return updated, nil
}

// DeleteTemplate removes an owner's template
func (p *OutreachProcessor) DeleteTemplate(ctx context.Context, templateID, ownerID uuid.UUID) error {
	err := p.store.DeleteEmailTemplate(ctx, templateID, ownerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTemplateNotFound
		}
		p.logger.Error(ctx, "failed to delete email template", err)
		return err
	}
	p.logger.Info(ctx, "email template deleted")
	return nil
}

// GenerateTemplate drafts a new template with the AI service and stores it
func (p *OutreachProcessor) GenerateTemplate(ctx context.Context, ownerID uuid.UUID, params GenerateTemplateParams) (store.EmailTemplate, error) {
	if p.generator == nil {
		return store.EmailTemplate{}, ErrAIUnavailable
	}
	if !store.IsValidTemplateType(params.Type) {
		return store.EmailTemplate{}, ErrInvalidTemplateType
	}

	systemPrompt := "You write concise, personable outreach emails from music campaign managers to artists. " +
		"Use {{artistName}} for the recipient and {{senderName}} for the sender. " +
		"Reply with the subject on the first line prefixed 'Subject: ', then a blank line, then the HTML body."

	tone := params.Tone
	if tone == "" {
		tone = "friendly and professional"
	}
	userPrompt := fmt.Sprintf(
		"Write a %s email to a %s artist. Sender: %s. Goal: %s. Tone: %s.",
		params.Type, params.Genre, params.SenderName, params.CampaignGoal, tone,
	)

	draft, err := p.generator.GenerateText(ctx, systemPrompt, userPrompt)
	if err != nil {
		p.logger.Error(ctx, "failed to generate template draft", err)
		return store.EmailTemplate{}, err
	}

	subject, body := splitDraft(draft)
	return p.CreateTemplate(ctx, ownerID, CreateTemplateParams{
		Name:    fmt.Sprintf("Generated %s draft", params.Type),
		Subject: subject,
		Body:    body,
		Type:    params.Type,
	})
}

// ExtractVariables returns the sorted distinct {{variable}} names used in
// the subject and body.
func ExtractVariables(subject, body string) []string {
	seen := map[string]bool{}
	for _, text := range []string{subject, body} {
		for _, match := range variablePattern.FindAllStringSubmatch(text, -1) {
			seen[match[1]] = true
		}
	}
	variables := make([]string, 0, len(seen))
	for name := range seen {
		variables = append(variables, name)
	}
	sort.Strings(variables)
	return variables
}
