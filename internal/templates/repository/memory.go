package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"audit_funnel_backend/internal/templates/domain"
)

// MemoryRepo is an in-process Repository pre-loaded with the built-in
// library. Used when no database is configured.
type MemoryRepo struct {
	mu        sync.RWMutex
	templates []domain.Template
}

// NewMemory creates an in-memory template repository seeded with the
// built-in library.
func NewMemory() *MemoryRepo {
	now := time.Now().UTC()
	seeded := seedTemplates()
	for i := range seeded {
		seeded[i].ID = uuid.New()
		seeded[i].CreatedAt = now
		seeded[i].UpdatedAt = now
	}
	return &MemoryRepo{templates: seeded}
}

var _ Repository = (*MemoryRepo)(nil)

func (m *MemoryRepo) GetAll(_ context.Context) ([]domain.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Template, len(m.templates))
	copy(out, m.templates)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Title < out[j].Title
	})
	return out, nil
}

func (m *MemoryRepo) GetByCategory(_ context.Context, category string) ([]domain.Template, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []domain.Template
	for _, tmpl := range m.templates {
		if tmpl.Category == category {
			out = append(out, tmpl)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}
