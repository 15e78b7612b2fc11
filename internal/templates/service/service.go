// Package service contains the template library read operations.
package service

import (
	"context"

	"audit_funnel_backend/internal/templates/domain"
	"audit_funnel_backend/internal/templates/repository"
	"audit_funnel_backend/platform/logger"
)

// Service exposes the template library to the HTTP layer.
type Service struct {
	repo repository.Repository
	log  *logger.Logger
}

// New creates a new template service.
func New(repo repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// GetAll returns the full template library.
func (s *Service) GetAll(ctx context.Context) ([]domain.Template, error) {
	return s.repo.GetAll(ctx)
}

// GetByCategory returns the templates in one category. Unknown
// categories yield an empty list, not an error.
func (s *Service) GetByCategory(ctx context.Context, category string) ([]domain.Template, error) {
	return s.repo.GetByCategory(ctx, category)
}
