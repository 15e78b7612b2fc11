package engine

import (
	"strings"

	"audit_funnel_backend/internal/audit/domain"
)

// OpportunityScore rates the improvement headroom of the business on a
// 0 to 100 scale. Gaps in tooling, process or clarity translate into
// opportunity. All catalog contributions are non-negative, so the lower
// clamp can never fire; it stays in place as a guard.
func OpportunityScore(sub *domain.Submission, signals []domain.WebsiteSignal) int {
	score := 20

	// Process and tool gaps (35 points max)
	if !sub.HasEmailSequences {
		score += 18
	}
	if !sub.HasCRM {
		score += 12
	}
	if !sub.HasQualificationProcess() {
		score += 5
	}

	// Performance gaps (25 points max)
	if sub.Appointments() < 15 {
		score += 15
	}
	if sub.LeadToCustomerRateOrZero() < 10 {
		score += 5
	}
	if sub.TrafficOrZero() < 2000 {
		score += 5
	}

	// Target audience clarity gaps (15 points max)
	switch clarity := sub.TargetingClaritySum(); {
	case clarity < 3:
		score += 15
	case clarity < 6:
		score += 8
	}

	// Content and competitive positioning gaps (10 points max)
	if len(sub.CurrentValueProps) < 2 {
		score += 5
	}
	if len(sub.CompetitiveAdvantages) < 2 {
		score += 5
	}

	// Analytics and tracking gaps (10 points max)
	if len(sub.AnalyticsSetup) < 2 {
		score += 5
	}
	if !sub.HasAttributionModel() {
		score += 5
	}

	// Company size growth opportunity (10 points max)
	switch sub.CompanySize {
	case "1-10":
		score += 10
	case "11-50", "51-200":
		score += 8
	case "200+":
		score += 5
	}

	// Revenue growth ambition (15 points max). Simple substring checks on
	// the bucket labels, first match wins.
	switch {
	case strings.Contains(sub.CurrentRevenue, "0-10k") && strings.Contains(sub.TargetRevenue, "500k"):
		score += 15
	case strings.Contains(sub.CurrentRevenue, "50k") && strings.Contains(sub.TargetRevenue, "1m"):
		score += 12
	case strings.Contains(sub.TargetRevenue, "5m") || strings.Contains(sub.TargetRevenue, "10m"):
		score += 10
	}

	// Website optimization opportunities (10 points max)
	if stats := aggregateSignals(signals); stats.count > 0 {
		switch {
		case stats.avgConversionScore < 60:
			score += 10
		case stats.avgConversionScore < 80:
			score += 6
		}
		if stats.hasSlowPages || stats.hasPoorSEO || stats.hasWeakCTAs {
			score += 5
		}
	}

	return clamp(score, 0, 100)
}
