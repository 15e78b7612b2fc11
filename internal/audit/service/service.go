// Package service implements the audit use cases: accepting intake
// submissions, running the scoring pipeline and serving the results.
package service

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"

	"audit_funnel_backend/internal/audit/domain"
	"audit_funnel_backend/internal/audit/engine"
	"audit_funnel_backend/internal/audit/ports"
	"audit_funnel_backend/internal/audit/repository"
	"audit_funnel_backend/internal/events"
	"audit_funnel_backend/platform/apperr"
	"audit_funnel_backend/platform/logger"
)

// Percentage fields are stored as DECIMAL(5,2); anything outside this
// range would overflow the column.
const (
	decimalFieldMin = -999.99
	decimalFieldMax = 999.99
)

// Service coordinates the audit pipeline.
type Service struct {
	repo      repository.Repository
	inspector ports.PageInspector
	renderer  ports.ReportRenderer
	archiver  ports.ReportArchiver
	bus       events.Bus
	log       *logger.Logger
}

// New creates the audit service. The inspector, renderer and archiver are
// optional; absent collaborators disable the corresponding feature
// without affecting scoring.
func New(repo repository.Repository, inspector ports.PageInspector, renderer ports.ReportRenderer, archiver ports.ReportArchiver, bus events.Bus, log *logger.Logger) *Service {
	return &Service{
		repo:      repo,
		inspector: inspector,
		renderer:  renderer,
		archiver:  archiver,
		bus:       bus,
		log:       log,
	}
}

// SubmitResult is returned after a successful intake.
type SubmitResult struct {
	SubmissionID uuid.UUID
	ReportID     uuid.UUID
	OverallScore int
}

// Submit persists the intake record, runs the optional website
// inspection and the scoring engine, and stores the resulting report.
// Inspection failures degrade to empty signals and never fail the
// submission.
func (s *Service) Submit(ctx context.Context, sub *domain.Submission) (*SubmitResult, error) {
	clampDecimalFields(sub)
	sub.Normalize()
	sub.ID = uuid.New()
	sub.CreatedAt = time.Now().UTC()

	if err := s.repo.CreateSubmission(ctx, sub); err != nil {
		s.log.DatabaseError("create audit submission", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to store audit submission", err)
	}

	var signals []domain.WebsiteSignal
	if sub.EnableWebsiteAudit && len(sub.LandingPageURLs) > 0 && s.inspector != nil {
		signals = s.inspector.Inspect(ctx, sub.LandingPageURLs)
	}

	report := engine.Generate(sub, signals)
	report.ID = uuid.New()
	report.SubmissionID = sub.ID
	report.CreatedAt = time.Now().UTC()

	if err := s.repo.CreateReport(ctx, &report); err != nil {
		s.log.DatabaseError("create audit report", err)
		return nil, apperr.Wrap(apperr.KindInternal, "failed to store audit report", err)
	}

	s.log.ReportGenerated(sub.ID.String(), report.OverallScore, len(report.Recommendations), len(signals))

	s.bus.Publish(ctx, events.ReportGenerated{
		BaseEvent:       events.NewBaseEvent(),
		SubmissionID:    sub.ID,
		ReportID:        report.ID,
		CompanyName:     sub.CompanyName,
		Email:           sub.Email,
		OverallScore:    report.OverallScore,
		EfficiencyScore: report.CurrentEfficiencyScore,
		PagesAudited:    len(signals),
	})

	return &SubmitResult{
		SubmissionID: sub.ID,
		ReportID:     report.ID,
		OverallScore: report.OverallScore,
	}, nil
}

// GetReport returns a submission together with its generated report.
func (s *Service) GetReport(ctx context.Context, submissionID uuid.UUID) (*domain.Submission, *domain.Report, error) {
	sub, err := s.repo.GetSubmission(ctx, submissionID)
	if err != nil {
		return nil, nil, err
	}
	report, err := s.repo.GetReportBySubmissionID(ctx, submissionID)
	if err != nil {
		return nil, nil, err
	}
	return sub, report, nil
}

// RenderReportPDF renders the report as a PDF document and returns the
// bytes with a download filename. The rendered document is archived on a
// best-effort basis; archive failures are logged, not surfaced.
func (s *Service) RenderReportPDF(ctx context.Context, submissionID uuid.UUID) ([]byte, string, error) {
	if s.renderer == nil {
		return nil, "", apperr.Unavailable("PDF rendering is not configured")
	}

	sub, report, err := s.GetReport(ctx, submissionID)
	if err != nil {
		return nil, "", err
	}

	pdf, err := s.renderer.RenderPDF(ctx, sub, report)
	if err != nil {
		return nil, "", apperr.Wrap(apperr.KindInternal, "failed to render PDF report", err)
	}

	filename := pdfFilename(sub.CompanyName, time.Now().UTC())
	if s.archiver != nil {
		if archiveErr := s.archiver.ArchiveReportPDF(ctx, filename, pdf); archiveErr != nil {
			s.log.Error("report PDF archive failed", "submission_id", submissionID.String(), "error", archiveErr)
		}
	}

	return pdf, filename, nil
}

var filenameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

func pdfFilename(companyName string, now time.Time) string {
	return fmt.Sprintf("Lead_Gen_Audit_%s_%s.pdf",
		filenameSanitizer.ReplaceAllString(companyName, "_"),
		now.Format("2006-01-02"))
}

func clampDecimalFields(sub *domain.Submission) {
	clamp := func(v *float64) {
		if v == nil {
			return
		}
		if *v < decimalFieldMin {
			*v = decimalFieldMin
		}
		if *v > decimalFieldMax {
			*v = decimalFieldMax
		}
	}
	clamp(sub.LeadToCustomerRate)
	clamp(sub.CurrentWebsiteConversionRate)

	if sub.ClosingRate != nil && *sub.ClosingRate != "" {
		rate := sub.ClosingRatePct()
		if rate < decimalFieldMin {
			clamped := fmt.Sprintf("%.2f", decimalFieldMin)
			sub.ClosingRate = &clamped
		} else if rate > decimalFieldMax {
			clamped := fmt.Sprintf("%.2f", decimalFieldMax)
			sub.ClosingRate = &clamped
		}
	}
}
