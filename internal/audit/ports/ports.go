// Package ports declares the external collaborator interfaces the audit
// module depends on. Implementations live in their own packages.
package ports

import (
	"context"

	"audit_funnel_backend/internal/audit/domain"
)

// PageInspector collects structural signals from submitted landing pages.
// Implementations process at most the first few URLs and represent failed
// fetches as degraded signal records rather than errors; a nil or empty
// result is a first-class outcome.
type PageInspector interface {
	Inspect(ctx context.Context, urls []string) []domain.WebsiteSignal
}

// ReportRenderer turns a submission and its report into a PDF byte stream.
type ReportRenderer interface {
	RenderPDF(ctx context.Context, sub *domain.Submission, report *domain.Report) ([]byte, error)
}

// ReportArchiver stores rendered report documents for later retrieval.
type ReportArchiver interface {
	ArchiveReportPDF(ctx context.Context, objectName string, pdf []byte) error
}
