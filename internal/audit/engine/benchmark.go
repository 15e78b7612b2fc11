package engine

import (
	"math"
	"strings"

	"audit_funnel_backend/internal/audit/domain"
)

// industryProfile holds the classification flags derived from the free
// text industry field. The B2B flag is computed for parity with the
// classification rules but the reference tables currently only split on
// the SaaS axis.
type industryProfile struct {
	isSaaS bool
	isB2B  bool
}

func classifyIndustry(industry string) industryProfile {
	lower := strings.ToLower(industry)
	return industryProfile{
		isSaaS: strings.Contains(lower, "saas") || strings.Contains(lower, "software"),
		isB2B:  strings.Contains(lower, "b2b") || strings.Contains(lower, "technology"),
	}
}

// sizeMultiplier scales volume-type reference values by company size.
// Rate-type metrics use fixed constants regardless of size.
func sizeMultiplier(companySize string) float64 {
	switch companySize {
	case "1-10":
		return 0.8
	case "11-50":
		return 1.0
	case "51-200":
		return 1.3
	default:
		return 1.5
	}
}

// pick returns a or b depending on the SaaS classification.
func (p industryProfile) pick(saasValue, otherValue float64) float64 {
	if p.isSaaS {
		return saasValue
	}
	return otherValue
}

// Benchmarks builds the comparison table of the submitter's metrics
// against industry-average and top-performer reference values.
func Benchmarks(sub *domain.Submission) []domain.Benchmark {
	profile := classifyIndustry(sub.Industry)
	mult := sizeMultiplier(sub.CompanySize)

	emailToAppointmentRate := 2.5
	if sub.CurrentEmailVolume != nil && *sub.CurrentEmailVolume > 0 {
		rate := float64(sub.AppointmentsOrDefault()) / float64(*sub.CurrentEmailVolume) * 100
		emailToAppointmentRate = math.Round(rate*10) / 10
	}

	salesCycleDays := 45.0
	if sub.SalesCycleLength != nil {
		switch *sub.SalesCycleLength {
		case "1-3 months":
			salesCycleDays = 60
		case "3-6 months":
			salesCycleDays = 120
		case "6+ months":
			salesCycleDays = 180
		}
	}

	leadToCustomerRate := 8.0
	if sub.LeadToCustomerRate != nil {
		leadToCustomerRate = *sub.LeadToCustomerRate
	}
	traffic := 1000.0
	if sub.WebsiteTrafficPerMonth != nil {
		traffic = float64(*sub.WebsiteTrafficPerMonth)
	}
	cac := 1500.0
	if sub.CurrentCAC != nil {
		cac = float64(*sub.CurrentCAC)
	}

	return []domain.Benchmark{
		{
			Metric:          "Monthly Appointments",
			CurrentValue:    float64(sub.AppointmentsOrDefault()),
			IndustryAverage: math.Round(profile.pick(15, 10) * mult),
			TopPerformers:   math.Round(profile.pick(30, 22) * mult),
		},
		{
			Metric:          "Email-to-Appointment Rate (%)",
			CurrentValue:    emailToAppointmentRate,
			IndustryAverage: profile.pick(3.8, 3.2),
			TopPerformers:   profile.pick(9.5, 8.0),
		},
		{
			Metric:          "Average Deal Size ($)",
			CurrentValue:    float64(sub.DealSizeOrDefault()),
			IndustryAverage: math.Round(profile.pick(12000, 7500) * mult),
			TopPerformers:   math.Round(profile.pick(25000, 15000) * mult),
		},
		{
			Metric:          "Sales Cycle (Days)",
			CurrentValue:    salesCycleDays,
			IndustryAverage: profile.pick(52, 42),
			TopPerformers:   profile.pick(35, 28),
		},
		{
			Metric:          "Closing Rate (%)",
			CurrentValue:    sub.ClosingRatePct(),
			IndustryAverage: profile.pick(18.5, 15.5),
			TopPerformers:   profile.pick(32.0, 28.0),
		},
		{
			Metric:          "Lead-to-Customer Rate (%)",
			CurrentValue:    leadToCustomerRate,
			IndustryAverage: profile.pick(12.0, 9.5),
			TopPerformers:   profile.pick(22.0, 18.0),
		},
		{
			Metric:          "Website Traffic (Monthly)",
			CurrentValue:    traffic,
			IndustryAverage: math.Round(profile.pick(5000, 3500) * mult),
			TopPerformers:   math.Round(profile.pick(15000, 10000) * mult),
		},
		{
			Metric:          "Customer Acquisition Cost ($)",
			CurrentValue:    cac,
			IndustryAverage: math.Round(profile.pick(1800, 1200) * mult),
			TopPerformers:   math.Round(profile.pick(900, 600) * mult),
		},
		{
			Metric:          "Marketing Tools Used",
			CurrentValue:    float64(len(sub.CurrentTools) + len(sub.AnalyticsSetup)),
			IndustryAverage: profile.pick(6, 4),
			TopPerformers:   profile.pick(12, 8),
		},
		{
			Metric:          "Target Audience Clarity Score",
			CurrentValue:    float64(sub.TargetingClaritySum()),
			IndustryAverage: 5,
			TopPerformers:   9,
		},
	}
}
