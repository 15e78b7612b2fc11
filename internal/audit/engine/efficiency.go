package engine

import (
	"strconv"

	"audit_funnel_backend/internal/audit/domain"
)

// EfficiencyScore rates the current lead generation maturity of the
// business on a 10 to 100 scale. It starts from a base of 30 and applies
// independent, commutative adjustments per practice area, each bounded to
// a stated maximum contribution.
func EfficiencyScore(sub *domain.Submission, signals []domain.WebsiteSignal) int {
	score := 30

	// Email and outbound efficiency (25 points max). Only scored when
	// both volume and appointment figures were answered and non-zero.
	if sub.CurrentEmailVolume != nil && *sub.CurrentEmailVolume > 0 &&
		sub.CurrentAppointmentsPerMonth != nil && *sub.CurrentAppointmentsPerMonth > 0 {
		appointmentRate := float64(*sub.CurrentAppointmentsPerMonth) / float64(*sub.CurrentEmailVolume) * 100
		switch {
		case appointmentRate > 5:
			score += 15
		case appointmentRate > 3:
			score += 12
		case appointmentRate > 2:
			score += 8
		case appointmentRate > 1:
			score += 4
		default:
			score -= 5
		}
	}

	// Lead gen method sophistication
	switch methods := len(sub.CurrentLeadGenMethods); {
	case methods > 3:
		score += 10
	case methods > 1:
		score += 5
	case methods == 0:
		score -= 10
	}

	// Sales process maturity (20 points max)
	if sub.HasCRM {
		score += 8
	}
	if sub.HasEmailSequences {
		score += 8
	}
	if sub.HasQualificationProcess() {
		score += 4
	}

	// Performance metrics (15 points max). An unanswered or unparseable
	// closing rate contributes nothing; the default-rate fallback in
	// ClosingRatePct belongs to the projections, not to this scorer.
	if sub.ClosingRate != nil && *sub.ClosingRate != "" {
		if rate, err := strconv.ParseFloat(*sub.ClosingRate, 64); err == nil {
			switch {
			case rate > 25:
				score += 15
			case rate > 15:
				score += 12
			case rate > 10:
				score += 8
			case rate > 5:
				score += 5
			}
		}
	}

	// Technical sophistication (15 points max)
	switch analytics := len(sub.AnalyticsSetup); {
	case analytics > 3:
		score += 8
	case analytics > 1:
		score += 5
	case analytics == 0:
		score -= 5
	}
	switch salesTools := len(sub.SalesEnablementTools); {
	case salesTools > 2:
		score += 7
	case salesTools > 0:
		score += 4
	}

	// Content and market positioning (10 points max)
	switch valueProps := len(sub.CurrentValueProps); {
	case valueProps > 2:
		score += 5
	case valueProps > 0:
		score += 3
	}
	switch advantages := len(sub.CompetitiveAdvantages); {
	case advantages > 1:
		score += 5
	case advantages > 0:
		score += 2
	}

	// Target audience clarity (10 points max)
	industries := len(sub.TargetIndustries)
	sizes := len(sub.TargetCompanySizes)
	roles := len(sub.TargetDecisionMakers)
	switch {
	case industries > 0 && sizes > 0 && roles > 0:
		score += 10
	case industries+sizes+roles > 3:
		score += 6
	case industries+sizes+roles > 1:
		score += 3
	}

	// Website and digital presence (10 points max)
	if sub.TrafficOrZero() > 1000 {
		score += 3
	}
	if sub.LeadToCustomerRateOrZero() > 5 {
		score += 2
	}
	if stats := aggregateSignals(signals); stats.count > 0 {
		switch {
		case stats.avgConversionScore > 80:
			score += 5
		case stats.avgConversionScore > 60:
			score += 3
		case stats.avgConversionScore > 40:
			score += 1
		}
	}

	return clamp(score, 10, 100)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
