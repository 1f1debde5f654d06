package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateEmailTemplateParams represents parameters for creating a template
type CreateEmailTemplateParams struct {
	Name      string
	Subject   string
	Body      string
	Type      string
	Variables []string
	IsDefault bool
	OwnerID   uuid.UUID
}

const emailTemplateColumns = `
id, name, subject, body, type, variables, is_default, owner_id, created_at, updated_at`

const sqlCreateEmailTemplate = `
INSERT INTO email_templates (name, subject, body, type, variables, is_default, owner_id)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + emailTemplateColumns

// CreateEmailTemplate inserts a new outreach email template
func (s *Store) CreateEmailTemplate(ctx context.Context, params CreateEmailTemplateParams) (EmailTemplate, error) {
	var template EmailTemplate
	err := s.db.GetContext(ctx, &template, sqlCreateEmailTemplate,
		params.Name,
		params.Subject,
		params.Body,
		params.Type,
		StringArray(params.Variables),
		params.IsDefault,
		params.OwnerID)
	if err != nil {
		s.logger.Error(ctx, "failed to create email template", err)
		return EmailTemplate{}, fmt.Errorf("failed to create email template: %w", err)
	}
	return template, nil
}

const sqlGetEmailTemplateByID = `
SELECT ` + emailTemplateColumns + `
FROM email_templates
WHERE id = $1`

// GetEmailTemplateByID retrieves a template by ID
func (s *Store) GetEmailTemplateByID(ctx context.Context, templateID uuid.UUID) (EmailTemplate, error) {
	var template EmailTemplate
	err := s.db.GetContext(ctx, &template, sqlGetEmailTemplateByID, templateID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailTemplate{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get email template by id", err)
		return EmailTemplate{}, fmt.Errorf("failed to get email template by id: %w", err)
	}
	return template, nil
}

const sqlListEmailTemplates = `
SELECT ` + emailTemplateColumns + `
FROM email_templates
WHERE owner_id = $1
ORDER BY created_at DESC`

// ListEmailTemplates retrieves all of an owner's templates
func (s *Store) ListEmailTemplates(ctx context.Context, ownerID uuid.UUID) ([]EmailTemplate, error) {
	templates := []EmailTemplate{}
	err := s.db.SelectContext(ctx, &templates, sqlListEmailTemplates, ownerID)
	if err != nil {
		s.logger.Error(ctx, "failed to list email templates", err)
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	return templates, nil
}

const sqlUpdateEmailTemplate = `
UPDATE email_templates
SET name = $3, subject = $4, body = $5, type = $6, variables = $7, is_default = $8, updated_at = NOW()
WHERE id = $1 AND owner_id = $2
RETURNING ` + emailTemplateColumns

// UpdateEmailTemplate writes the full template row
func (s *Store) UpdateEmailTemplate(ctx context.Context, template EmailTemplate) (EmailTemplate, error) {
	var updated EmailTemplate
	err := s.db.GetContext(ctx, &updated, sqlUpdateEmailTemplate,
		template.ID,
		template.OwnerID,
		template.Name,
		template.Subject,
		template.Body,
		template.Type,
		template.Variables,
		template.IsDefault)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return EmailTemplate{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update email template", err)
		return EmailTemplate{}, fmt.Errorf("failed to update email template: %w", err)
	}
	return updated, nil
}

const sqlDeleteEmailTemplate = `
DELETE FROM email_templates WHERE id = $1 AND owner_id = $2`

// DeleteEmailTemplate removes a template owned by the given user
func (s *Store) DeleteEmailTemplate(ctx context.Context, templateID, ownerID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteEmailTemplate, templateID, ownerID)
	if err != nil {
		s.logger.Error(ctx, "failed to delete email template", err)
		return fmt.Errorf("failed to delete email template: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete email template: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
