package engine

import (
	"math"

	"audit_funnel_backend/internal/audit/domain"
)

// monthlyInvestment is the assumed cost of the lead generation service
// used as the denominator of the ROI projection.
const monthlyInvestment = 3000.0

// EstimatedROI projects the return on investment percentage assuming a
// conservative tripling of appointment volume (capped at 30/month) and a
// 1.5x closing rate improvement (capped at 40%). The result is floored
// at 150.
func EstimatedROI(sub *domain.Submission) int {
	averageDeal := float64(sub.DealSizeOrDefault())
	currentAppointments := float64(sub.AppointmentsOrDefault())
	closingRate := sub.ClosingRatePct() / 100

	currentRevenue := currentAppointments * averageDeal * closingRate

	projectedAppointments := math.Min(currentAppointments*3, 30)
	projectedRevenue := projectedAppointments * averageDeal * math.Min(closingRate*1.5, 0.4)

	additionalRevenue := projectedRevenue - currentRevenue
	roi := (additionalRevenue - monthlyInvestment) / monthlyInvestment * 100

	return int(math.Round(math.Max(roi, 150)))
}

// AppointmentIncrease projects the percentage growth in monthly
// appointments. Fixed buckets by current volume, deliberately simpler
// than the revenue model above.
func AppointmentIncrease(sub *domain.Submission) int {
	current := sub.AppointmentsOrDefault()
	switch {
	case current < 5:
		return 300
	case current < 10:
		return 200
	case current < 20:
		return 150
	default:
		return 100
	}
}

// RevenueIncrease projects the additional monthly revenue in dollars
// implied by the appointment increase at the current closing rate.
func RevenueIncrease(sub *domain.Submission) int {
	averageDeal := float64(sub.DealSizeOrDefault())
	currentAppointments := float64(sub.AppointmentsOrDefault())
	closingRate := sub.ClosingRatePct() / 100
	increase := float64(AppointmentIncrease(sub)) / 100

	additionalAppointments := currentAppointments * increase
	return int(math.Round(additionalAppointments * averageDeal * closingRate))
}
