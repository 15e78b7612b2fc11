package repository

import (
	"context"

	"audit_funnel_backend/internal/templates/domain"
)

// Repository defines read access to the email template library.
// The library ships seeded; there is no public write path.
type Repository interface {
	GetAll(ctx context.Context) ([]domain.Template, error)
	GetByCategory(ctx context.Context, category string) ([]domain.Template, error)
}
