package service

import (
	"context"
	"testing"
	"time"

	"audit_funnel_backend/internal/audit/domain"
	"audit_funnel_backend/internal/audit/repository"
	"audit_funnel_backend/internal/events"
	"audit_funnel_backend/platform/apperr"
	"audit_funnel_backend/platform/logger"

	"github.com/google/uuid"
)

type stubInspector struct {
	signals []domain.WebsiteSignal
	gotURLs []string
	invoked bool
}

func (s *stubInspector) Inspect(_ context.Context, urls []string) []domain.WebsiteSignal {
	s.invoked = true
	s.gotURLs = urls
	return s.signals
}

func newTestService(inspector *stubInspector) (*Service, *repository.MemoryRepo) {
	repo := repository.NewMemory()
	log := logger.New("development")
	bus := events.NewInMemoryBus(log)
	svc := New(repo, inspector, nil, nil, bus, log)
	return svc, repo
}

func validSubmission() *domain.Submission {
	return &domain.Submission{
		CompanyName:    "Acme Corp",
		ContactName:    "Jane Doe",
		Email:          "jane@acme.test",
		Industry:       "SaaS",
		CompanySize:    "11-50",
		CurrentRevenue: "10k-50k",
		TargetRevenue:  "100k-500k",
	}
}

func TestSubmitStoresSubmissionAndReport(t *testing.T) {
	svc, repo := newTestService(&stubInspector{})

	result, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if result.SubmissionID == uuid.Nil || result.ReportID == uuid.Nil {
		t.Fatalf("Submit returned zero IDs: %+v", result)
	}

	sub, report, err := svc.GetReport(context.Background(), result.SubmissionID)
	if err != nil {
		t.Fatalf("GetReport returned error: %v", err)
	}
	if sub.CompanyName != "Acme Corp" {
		t.Errorf("stored company name = %q", sub.CompanyName)
	}
	if report.SubmissionID != result.SubmissionID {
		t.Errorf("report submission ID = %v, want %v", report.SubmissionID, result.SubmissionID)
	}
	if report.OverallScore != result.OverallScore {
		t.Errorf("result score = %d, report score = %d", result.OverallScore, report.OverallScore)
	}

	_ = repo
}

func TestSubmitSkipsInspectionWhenDisabled(t *testing.T) {
	inspector := &stubInspector{}
	svc, _ := newTestService(inspector)

	sub := validSubmission()
	sub.LandingPageURLs = []string{"https://acme.test"}
	// EnableWebsiteAudit stays false.

	if _, err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if inspector.invoked {
		t.Error("inspector ran although the website audit was not enabled")
	}
}

func TestSubmitInspectsWhenEnabled(t *testing.T) {
	inspector := &stubInspector{
		signals: []domain.WebsiteSignal{{URL: "https://acme.test", ConversionScore: 70}},
	}
	svc, _ := newTestService(inspector)

	sub := validSubmission()
	sub.EnableWebsiteAudit = true
	sub.LandingPageURLs = []string{"https://acme.test"}

	result, err := svc.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !inspector.invoked {
		t.Fatal("inspector was not invoked")
	}

	_, report, err := svc.GetReport(context.Background(), result.SubmissionID)
	if err != nil {
		t.Fatalf("GetReport returned error: %v", err)
	}
	if len(report.WebsiteAuditResults) != 1 {
		t.Errorf("stored %d website audit results, want 1", len(report.WebsiteAuditResults))
	}
}

func TestSubmitClampsDecimalFields(t *testing.T) {
	svc, _ := newTestService(&stubInspector{})

	sub := validSubmission()
	sub.LeadToCustomerRate = floatPtr(12345.6)
	sub.CurrentWebsiteConversionRate = floatPtr(-12345.6)
	sub.ClosingRate = strPtr("99999")

	result, err := svc.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	stored, _, err := svc.GetReport(context.Background(), result.SubmissionID)
	if err != nil {
		t.Fatalf("GetReport returned error: %v", err)
	}
	if got := *stored.LeadToCustomerRate; got != 999.99 {
		t.Errorf("lead-to-customer rate = %v, want clamp 999.99", got)
	}
	if got := *stored.CurrentWebsiteConversionRate; got != -999.99 {
		t.Errorf("website conversion rate = %v, want clamp -999.99", got)
	}
	if got := stored.ClosingRatePct(); got != 999.99 {
		t.Errorf("closing rate = %v, want clamp 999.99", got)
	}
}

func TestGetReportUnknownSubmission(t *testing.T) {
	svc, _ := newTestService(&stubInspector{})

	_, _, err := svc.GetReport(context.Background(), uuid.New())
	if !apperr.Is(err, apperr.KindNotFound) {
		t.Errorf("GetReport error = %v, want not found", err)
	}
}

func TestRenderReportPDFWithoutRenderer(t *testing.T) {
	svc, _ := newTestService(&stubInspector{})

	result, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	_, _, err = svc.RenderReportPDF(context.Background(), result.SubmissionID)
	if !apperr.Is(err, apperr.KindUnavailable) {
		t.Errorf("RenderReportPDF error = %v, want unavailable", err)
	}
}

func TestPDFFilenameSanitized(t *testing.T) {
	sub := validSubmission()
	sub.CompanyName = "Acme & Söhne GmbH"

	svc, _ := newTestService(&stubInspector{})
	result, err := svc.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	_ = result

	got := pdfFilename(sub.CompanyName, mustTime(t))
	want := "Lead_Gen_Audit_Acme___S_hne_GmbH_2026-01-15.pdf"
	if got != want {
		t.Errorf("pdfFilename = %q, want %q", got, want)
	}
}

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func mustTime(t *testing.T) time.Time {
	t.Helper()
	return time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)
}
