package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"audit_funnel_backend/internal/audit/domain"
	"audit_funnel_backend/platform/apperr"
)

// MemoryRepo is an in-process Repository used when no database is
// configured. Suitable for demos and local development; contents are
// lost on restart.
type MemoryRepo struct {
	mu          sync.RWMutex
	submissions map[uuid.UUID]domain.Submission
	reports     map[uuid.UUID]domain.Report // keyed by submission ID
}

// NewMemory creates an empty in-memory audit repository.
func NewMemory() *MemoryRepo {
	return &MemoryRepo{
		submissions: make(map[uuid.UUID]domain.Submission),
		reports:     make(map[uuid.UUID]domain.Report),
	}
}

var _ Repository = (*MemoryRepo)(nil)

func (m *MemoryRepo) CreateSubmission(_ context.Context, sub *domain.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.submissions[sub.ID] = *sub
	return nil
}

func (m *MemoryRepo) GetSubmission(_ context.Context, id uuid.UUID) (*domain.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sub, ok := m.submissions[id]
	if !ok {
		return nil, apperr.NotFound(submissionNotFoundMessage)
	}
	copied := sub
	return &copied, nil
}

func (m *MemoryRepo) CreateReport(_ context.Context, report *domain.Report) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports[report.SubmissionID] = *report
	return nil
}

func (m *MemoryRepo) GetReportBySubmissionID(_ context.Context, submissionID uuid.UUID) (*domain.Report, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	report, ok := m.reports[submissionID]
	if !ok {
		return nil, apperr.NotFound(reportNotFoundMessage)
	}
	copied := report
	return &copied, nil
}
