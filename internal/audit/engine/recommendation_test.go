package engine

import (
	"testing"

	"audit_funnel_backend/internal/audit/domain"
)

func titles(recs []domain.Recommendation) []string {
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Title
	}
	return out
}

func containsTitle(recs []domain.Recommendation, title string) bool {
	for _, r := range recs {
		if r.Title == title {
			return true
		}
	}
	return false
}

func TestRecommendCapsAndStratification(t *testing.T) {
	// A submission with every gap plus failing website signals fires far
	// more rules than the selection allows.
	sub := minimalSubmission()
	signals := []domain.WebsiteSignal{
		{ConversionScore: 10, PageLoadTimeMs: 6000, SEOScore: 20, CTACount: 0},
	}

	recs := Recommend(sub, signals)
	if len(recs) > 8 {
		t.Fatalf("got %d recommendations, want <= 8", len(recs))
	}

	counts := map[domain.Priority]int{}
	lastBand := 0
	bandOrder := map[domain.Priority]int{domain.PriorityHigh: 1, domain.PriorityMedium: 2, domain.PriorityLow: 3}
	for _, r := range recs {
		counts[r.Priority]++
		if bandOrder[r.Priority] < lastBand {
			t.Errorf("priority bands out of order: %v", titles(recs))
		}
		lastBand = bandOrder[r.Priority]
	}

	if counts[domain.PriorityHigh] > 3 || counts[domain.PriorityMedium] > 3 || counts[domain.PriorityLow] > 2 {
		t.Errorf("band caps exceeded: high=%d medium=%d low=%d",
			counts[domain.PriorityHigh], counts[domain.PriorityMedium], counts[domain.PriorityLow])
	}
}

func TestRecommendInfrastructureGapsLeadTheList(t *testing.T) {
	recs := Recommend(minimalSubmission(), nil)
	if len(recs) < 2 {
		t.Fatalf("got %d recommendations, want at least 2", len(recs))
	}
	if recs[0].Title != "Implement Multi-Touch Email Sequences" {
		t.Errorf("first recommendation = %q, want email sequences", recs[0].Title)
	}
	if recs[1].Title != "Deploy CRM System" {
		t.Errorf("second recommendation = %q, want CRM", recs[1].Title)
	}
}

func TestRecommendMatureBusinessSkipsInfrastructure(t *testing.T) {
	recs := Recommend(matureSubmission(), nil)
	for _, title := range []string{"Implement Multi-Touch Email Sequences", "Deploy CRM System"} {
		if containsTitle(recs, title) {
			t.Errorf("mature submission should not receive %q", title)
		}
	}
}

func TestRecommendConversionBoundary(t *testing.T) {
	// A mature submission fires none of the earlier high-priority rules,
	// so the conversion rule is visible in the capped selection.
	sub := matureSubmission()
	cleanPage := domain.WebsiteSignal{PageLoadTimeMs: 900, SEOScore: 90, CTACount: 3, HasContactForm: true, MobileResponsive: true}

	// Average of 55 sits above the critical threshold of 50.
	atBoundary := []domain.WebsiteSignal{cleanPage, cleanPage}
	atBoundary[0].ConversionScore = 20
	atBoundary[1].ConversionScore = 90
	if recs := Recommend(sub, atBoundary); containsTitle(recs, "Critical Website Conversion Optimization") {
		t.Errorf("average 55 should not fire the critical conversion rule")
	}

	// Average of 30 is below it.
	critical := []domain.WebsiteSignal{cleanPage, cleanPage}
	critical[0].ConversionScore = 20
	critical[1].ConversionScore = 40
	recs := Recommend(sub, critical)
	if !containsTitle(recs, "Critical Website Conversion Optimization") {
		t.Fatalf("average 30 should fire the critical conversion rule, got %v", titles(recs))
	}
	for _, r := range recs {
		if r.Title == "Critical Website Conversion Optimization" {
			if want := "Your landing pages scored 30/100 for conversion optimization. This requires immediate attention to capture more leads from your traffic."; r.Description != want {
				t.Errorf("description = %q, want %q", r.Description, want)
			}
		}
	}
}

func TestRecommendSelfReportedFallback(t *testing.T) {
	// Audit enabled but no signals collected: the self-reported rate
	// drives a single fallback website recommendation. The mature
	// submission keeps the medium band open for it.
	sub := matureSubmission()
	sub.EnableWebsiteAudit = true
	sub.CurrentWebsiteConversionRate = floatPtr(1.5)

	recs := Recommend(sub, nil)
	if !containsTitle(recs, "Optimize Website Conversion Rate") {
		t.Errorf("expected self-reported fallback recommendation, got %v", titles(recs))
	}

	// A healthy self-reported rate suppresses it.
	sub.CurrentWebsiteConversionRate = floatPtr(4.0)
	recs = Recommend(sub, nil)
	if containsTitle(recs, "Optimize Website Conversion Rate") {
		t.Errorf("fallback should not fire for a healthy conversion rate")
	}

	// And so do collected signals, even poor ones.
	sub.CurrentWebsiteConversionRate = floatPtr(1.5)
	recs = Recommend(sub, []domain.WebsiteSignal{{ConversionScore: 10}})
	if containsTitle(recs, "Optimize Website Conversion Rate") {
		t.Errorf("fallback should not fire when signals were collected")
	}
}

func TestRecommendNoDuplicates(t *testing.T) {
	recs := Recommend(minimalSubmission(), []domain.WebsiteSignal{{ConversionScore: 10}})
	seen := map[string]bool{}
	for _, r := range recs {
		if seen[r.Title] {
			t.Errorf("duplicate recommendation %q", r.Title)
		}
		seen[r.Title] = true
	}
}
