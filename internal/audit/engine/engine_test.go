package engine

import (
	"math"
	"reflect"
	"testing"

	"audit_funnel_backend/internal/audit/domain"
)

func TestGenerateDeterminism(t *testing.T) {
	sub := matureSubmission()
	signals := []domain.WebsiteSignal{
		{URL: "https://acme.test", ConversionScore: 65, SEOScore: 80, CTACount: 2, HasContactForm: true},
	}

	first := Generate(sub, signals)
	second := Generate(sub, signals)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Generate calls produced different reports")
	}
}

func TestGenerateOverallIsRoundedMean(t *testing.T) {
	subs := []*domain.Submission{minimalSubmission(), matureSubmission(), noGapSubmission()}
	for _, sub := range subs {
		report := Generate(sub, nil)
		want := int(math.Round(float64(report.CurrentEfficiencyScore+report.PotentialImprovementScore) / 2))
		if report.OverallScore != want {
			t.Errorf("overall = %d, want %d (eff=%d opp=%d)",
				report.OverallScore, want, report.CurrentEfficiencyScore, report.PotentialImprovementScore)
		}
	}
}

// A submission carrying nothing but the required identity fields must
// still produce a fully populated report.
func TestGenerateDefaultSafety(t *testing.T) {
	report := Generate(minimalSubmission(), nil)

	if report.CurrentEfficiencyScore < 10 || report.CurrentEfficiencyScore > 100 {
		t.Errorf("efficiency = %d, want within [10,100]", report.CurrentEfficiencyScore)
	}
	if report.PotentialImprovementScore < 0 || report.PotentialImprovementScore > 100 {
		t.Errorf("opportunity = %d, want within [0,100]", report.PotentialImprovementScore)
	}
	if report.EstimatedROI < 150 {
		t.Errorf("ROI = %d, want >= 150", report.EstimatedROI)
	}
	switch report.ProjectedAppointmentIncrease {
	case 100, 150, 200, 300:
	default:
		t.Errorf("appointment increase = %d, want one of 100/150/200/300", report.ProjectedAppointmentIncrease)
	}
	if report.ProjectedRevenueIncrease < 0 {
		t.Errorf("revenue increase = %d, want >= 0", report.ProjectedRevenueIncrease)
	}
	if report.Recommendations == nil {
		t.Error("recommendations must never be nil")
	}
	if len(report.ImplementationPlan) != 3 {
		t.Errorf("plan has %d phases, want 3", len(report.ImplementationPlan))
	}
	if len(report.BenchmarkData) != 10 {
		t.Errorf("benchmark table has %d rows, want 10", len(report.BenchmarkData))
	}
	if report.WebsiteAuditResults != nil {
		t.Error("website audit results should be absent without signals")
	}
}

// Opting into the website audit without any resolvable URLs must score
// identically to not opting in at all.
func TestGenerateEmptySignalEquivalence(t *testing.T) {
	optedOut := minimalSubmission()

	optedIn := minimalSubmission()
	optedIn.EnableWebsiteAudit = true

	a := Generate(optedOut, nil)
	b := Generate(optedIn, nil)

	if a.CurrentEfficiencyScore != b.CurrentEfficiencyScore ||
		a.PotentialImprovementScore != b.PotentialImprovementScore {
		t.Errorf("scores differ: (%d,%d) vs (%d,%d)",
			a.CurrentEfficiencyScore, a.PotentialImprovementScore,
			b.CurrentEfficiencyScore, b.PotentialImprovementScore)
	}
	if !reflect.DeepEqual(titles(a.Recommendations), titles(b.Recommendations)) {
		t.Errorf("recommendations differ: %v vs %v", titles(a.Recommendations), titles(b.Recommendations))
	}
}

func TestGenerateImmatureBusinessScenario(t *testing.T) {
	sub := minimalSubmission()
	sub.CurrentAppointmentsPerMonth = intPtr(5)
	sub.AverageDealSize = intPtr(5000)
	sub.ClosingRate = strPtr("10")

	report := Generate(sub, nil)

	if report.CurrentEfficiencyScore < 10 || report.CurrentEfficiencyScore > 40 {
		t.Errorf("efficiency = %d, want within [10,40] for an immature business", report.CurrentEfficiencyScore)
	}
	if len(report.Recommendations) < 2 ||
		report.Recommendations[0].Title != "Implement Multi-Touch Email Sequences" ||
		report.Recommendations[1].Title != "Deploy CRM System" {
		t.Errorf("expected sequences and CRM as the leading recommendations, got %v", titles(report.Recommendations))
	}
}

func TestGenerateMatureBusinessScenario(t *testing.T) {
	report := Generate(matureSubmission(), nil)

	if report.CurrentEfficiencyScore < 70 {
		t.Errorf("efficiency = %d, want >= 70 for a mature business", report.CurrentEfficiencyScore)
	}
	if report.ProjectedAppointmentIncrease != 100 {
		t.Errorf("appointment increase = %d, want 100", report.ProjectedAppointmentIncrease)
	}
	for _, title := range []string{"Implement Multi-Touch Email Sequences", "Deploy CRM System"} {
		if containsTitle(report.Recommendations, title) {
			t.Errorf("mature business should not be told to %q", title)
		}
	}
}
