package repository

import (
	"context"

	"audit_funnel_backend/internal/audit/domain"

	"github.com/google/uuid"
)

// SubmissionStore provides persistence for intake submissions.
type SubmissionStore interface {
	CreateSubmission(ctx context.Context, sub *domain.Submission) error
	GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error)
}

// ReportStore provides persistence for generated reports.
type ReportStore interface {
	CreateReport(ctx context.Context, report *domain.Report) error
	GetReportBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*domain.Report, error)
}

// Repository combines all audit persistence operations. The engine never
// depends on which implementation backs it; the composition root picks
// the database-backed store or the in-process one.
type Repository interface {
	SubmissionStore
	ReportStore
}
