// Package engine computes audit scores, financial projections,
// recommendations, the implementation roadmap and benchmark comparisons
// from a single intake submission. Every function here is pure and
// deterministic; all reference tables are read-only package data.
package engine

import "audit_funnel_backend/internal/audit/domain"

// signalStats aggregates the per-page website signals into the handful of
// figures the scorers and the rule catalog look at.
type signalStats struct {
	count              int
	avgConversionScore float64
	hasSlowPages       bool
	hasPoorSEO         bool
	hasWeakCTAs        bool
	lacksContactForms  bool
	notMobileOptimized bool
}

const (
	slowPageThresholdMs = 3000
	poorSEOThreshold    = 75
	weakCTAThreshold    = 2
)

func aggregateSignals(signals []domain.WebsiteSignal) signalStats {
	stats := signalStats{count: len(signals)}
	if len(signals) == 0 {
		return stats
	}

	sum := 0
	for _, sig := range signals {
		sum += sig.ConversionScore
		if sig.PageLoadTimeMs > slowPageThresholdMs {
			stats.hasSlowPages = true
		}
		if sig.SEOScore < poorSEOThreshold {
			stats.hasPoorSEO = true
		}
		if sig.CTACount < weakCTAThreshold {
			stats.hasWeakCTAs = true
		}
		if !sig.HasContactForm {
			stats.lacksContactForms = true
		}
		if !sig.MobileResponsive {
			stats.notMobileOptimized = true
		}
	}
	stats.avgConversionScore = float64(sum) / float64(len(signals))
	return stats
}
