package engine

import (
	"math"

	"audit_funnel_backend/internal/audit/domain"
)

// Generate runs the full scoring pipeline for one submission and its
// collected website signals. The result carries every derived section of
// the report; identity fields and timestamps are the caller's concern.
//
// Generate is total: any structurally valid submission produces a
// complete result, with documented defaults standing in for unanswered
// optional fields.
func Generate(sub *domain.Submission, signals []domain.WebsiteSignal) domain.Report {
	efficiency := EfficiencyScore(sub, signals)
	opportunity := OpportunityScore(sub, signals)
	overall := int(math.Round(float64(efficiency+opportunity) / 2))

	recommendations := Recommend(sub, signals)

	report := domain.Report{
		OverallScore:                 overall,
		CurrentEfficiencyScore:       efficiency,
		PotentialImprovementScore:    opportunity,
		EstimatedROI:                 EstimatedROI(sub),
		ProjectedAppointmentIncrease: AppointmentIncrease(sub),
		ProjectedRevenueIncrease:     RevenueIncrease(sub),
		Recommendations:              recommendations,
		ImplementationPlan:           BuildPlan(recommendations),
		BenchmarkData:                Benchmarks(sub),
	}
	if len(signals) > 0 {
		report.WebsiteAuditResults = signals
	}
	if report.Recommendations == nil {
		report.Recommendations = []domain.Recommendation{}
	}
	return report
}
