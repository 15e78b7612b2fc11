// Package repository persists the email template library.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"audit_funnel_backend/internal/templates/domain"
)

// Repo implements the Repository interface with PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new template repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

const templateColumns = `
	id, title, category, sub_category, subject_line, subject_variations, email_body,
	personalization_tips, industry_focus, open_rate, reply_rate, pipeline_generated,
	use_case, best_practices, success_story, created_at, updated_at`

// GetAll returns every template in the library.
func (r *Repo) GetAll(ctx context.Context) ([]domain.Template, error) {
	query := `SELECT` + templateColumns + ` FROM email_templates ORDER BY category, title`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()

	return scanTemplates(rows)
}

// GetByCategory returns the templates in one category.
func (r *Repo) GetByCategory(ctx context.Context, category string) ([]domain.Template, error) {
	query := `SELECT` + templateColumns + ` FROM email_templates WHERE category = $1 ORDER BY title`

	rows, err := r.pool.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("list templates by category: %w", err)
	}
	defer rows.Close()

	return scanTemplates(rows)
}

// SeedDefaults inserts the built-in library when the table is empty.
// Idempotent; called once at startup.
func (r *Repo) SeedDefaults(ctx context.Context) error {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM email_templates`).Scan(&count); err != nil {
		return fmt.Errorf("count templates: %w", err)
	}
	if count > 0 {
		return nil
	}

	query := `
		INSERT INTO email_templates (
			id, title, category, sub_category, subject_line, subject_variations, email_body,
			personalization_tips, industry_focus, open_rate, reply_rate, pipeline_generated,
			use_case, best_practices, success_story, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`

	now := time.Now().UTC()
	for _, tmpl := range seedTemplates() {
		variations, err := json.Marshal(tmpl.SubjectVariations)
		if err != nil {
			return fmt.Errorf("marshal subject variations: %w", err)
		}
		_, err = r.pool.Exec(ctx, query,
			uuid.New(), tmpl.Title, tmpl.Category, tmpl.SubCategory, tmpl.SubjectLine, variations,
			tmpl.EmailBody, tmpl.PersonalizationTips, tmpl.IndustryFocus, tmpl.OpenRate, tmpl.ReplyRate,
			tmpl.PipelineGenerated, tmpl.UseCase, tmpl.BestPractices, tmpl.SuccessStory, now, now,
		)
		if err != nil {
			return fmt.Errorf("seed template %q: %w", tmpl.Title, err)
		}
	}
	return nil
}

func scanTemplates(rows pgx.Rows) ([]domain.Template, error) {
	var templates []domain.Template
	for rows.Next() {
		var tmpl domain.Template
		var variations []byte
		err := rows.Scan(
			&tmpl.ID, &tmpl.Title, &tmpl.Category, &tmpl.SubCategory, &tmpl.SubjectLine, &variations,
			&tmpl.EmailBody, &tmpl.PersonalizationTips, &tmpl.IndustryFocus, &tmpl.OpenRate, &tmpl.ReplyRate,
			&tmpl.PipelineGenerated, &tmpl.UseCase, &tmpl.BestPractices, &tmpl.SuccessStory,
			&tmpl.CreatedAt, &tmpl.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		if variations != nil {
			if err := json.Unmarshal(variations, &tmpl.SubjectVariations); err != nil {
				return nil, fmt.Errorf("unmarshal subject variations: %w", err)
			}
		}
		templates = append(templates, tmpl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate templates: %w", err)
	}
	return templates, nil
}
