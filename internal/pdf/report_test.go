package pdf

import (
	"strings"
	"testing"
	"time"

	"audit_funnel_backend/internal/audit/domain"
	"audit_funnel_backend/internal/audit/engine"
)

func TestGroupThousands(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"150", "150"},
		{"1500", "1,500"},
		{"24000", "24,000"},
		{"1234567", "1,234,567"},
		{"-24000", "-24,000"},
	}
	for _, tc := range cases {
		if got := groupThousands(tc.in); got != tc.want {
			t.Errorf("groupThousands(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatMetric(t *testing.T) {
	if got := formatMetric(0, "$%s", true); got != "N/A" {
		t.Errorf("zero metric = %q, want N/A", got)
	}
	if got := formatMetric(24000, "$%s", true); got != "$24,000" {
		t.Errorf("money metric = %q", got)
	}
	if got := formatMetric(150, "+%s%%", false); got != "+150%" {
		t.Errorf("percent metric = %q", got)
	}
}

func TestRenderHTMLFromGeneratedReport(t *testing.T) {
	website := "https://acme.test"
	sub := domain.Submission{
		CompanyName: "Acme & Söhne GmbH",
		ContactName: "Jo Test",
		Email:       "jo@acme.test",
		Industry:    "SaaS",
		CompanySize: "11-50",
		Website:     &website,
	}
	sub.Normalize()

	report := engine.Generate(&sub, nil)
	renderer := NewRenderer(NewGotenbergClient("http://gotenberg:3000", "", ""))

	html, err := renderer.renderHTML(&sub, &report, time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("renderHTML: %v", err)
	}
	out := string(html)

	for _, want := range []string{
		"Lead Generation Audit Report",
		"Generated on January 15, 2026",
		"Acme &amp; Söhne GmbH",
		"Overall Lead Generation Score",
		"90-Day Implementation Plan",
		"Phase 1",
		"Phase 3",
		"About This Report",
		"<strong>Industry:</strong> SaaS",
		"<strong>Website:</strong> https://acme.test",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}

	// Company name must be escaped, never raw.
	if strings.Contains(out, "Acme & Söhne") {
		t.Error("company name rendered unescaped")
	}

	if report.EstimatedROI > 0 && !strings.Contains(out, "Estimated ROI (12 months)") {
		t.Error("ROI metric card missing")
	}
	for _, rec := range report.Recommendations {
		if !strings.Contains(out, rec.Title) {
			t.Errorf("recommendation %q missing from report", rec.Title)
		}
	}
}

func TestRenderHTMLEmptySections(t *testing.T) {
	sub := domain.Submission{CompanyName: "Bare Co"}
	sub.Normalize()
	report := domain.Report{OverallScore: 42}

	renderer := NewRenderer(NewGotenbergClient("http://gotenberg:3000", "", ""))
	html, err := renderer.renderHTML(&sub, &report, time.Now())
	if err != nil {
		t.Fatalf("renderHTML: %v", err)
	}
	out := string(html)

	if !strings.Contains(out, "No recommendations available.") {
		t.Error("empty recommendations fallback missing")
	}
	if !strings.Contains(out, "No implementation plan available.") {
		t.Error("empty plan fallback missing")
	}
	if !strings.Contains(out, ">N/A<") {
		t.Error("zero projections should render as N/A")
	}
	if !strings.Contains(out, "<strong>Website:</strong>") {
		t.Error("about section should render even without a website")
	}
}
