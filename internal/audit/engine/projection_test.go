package engine

import (
	"testing"

	"audit_funnel_backend/internal/audit/domain"
)

func TestEstimatedROIFloor(t *testing.T) {
	// A business already at the projection caps gains little extra
	// revenue, so the computed ROI lands below the floor.
	sub := minimalSubmission()
	sub.CurrentAppointmentsPerMonth = intPtr(30)
	sub.AverageDealSize = intPtr(1000)
	sub.ClosingRate = strPtr("40")

	if got := EstimatedROI(sub); got != 150 {
		t.Errorf("EstimatedROI = %d, want floor 150", got)
	}
}

func TestEstimatedROIComputed(t *testing.T) {
	// appointments 5, deal 5000, closing 10%.
	// current = 5*5000*0.1 = 2500
	// projected = min(15,30)*5000*min(0.15,0.4) = 15*5000*0.15 = 11250
	// roi = ((11250-2500) - 3000) / 3000 * 100 = 191.66 -> 192
	sub := minimalSubmission()
	sub.CurrentAppointmentsPerMonth = intPtr(5)
	sub.AverageDealSize = intPtr(5000)
	sub.ClosingRate = strPtr("10")

	if got := EstimatedROI(sub); got != 192 {
		t.Errorf("EstimatedROI = %d, want 192", got)
	}
}

func TestEstimatedROIDefaults(t *testing.T) {
	// Absent financials fall back to deal 5000, appointments 5, rate 10%,
	// matching the explicit case above.
	if got := EstimatedROI(minimalSubmission()); got != 192 {
		t.Errorf("EstimatedROI with defaults = %d, want 192", got)
	}
}

func TestAppointmentIncreaseTiers(t *testing.T) {
	cases := []struct {
		name         string
		appointments *int
		want         int
	}{
		{"very low volume", intPtr(4), 300},
		{"low volume", intPtr(5), 200},
		{"just under medium", intPtr(9), 200},
		{"medium volume", intPtr(15), 150},
		{"high volume", intPtr(25), 100},
		{"unanswered defaults to 5", nil, 200},
		{"zero treated as unanswered", intPtr(0), 200},
	}

	for _, tc := range cases {
		sub := minimalSubmission()
		sub.CurrentAppointmentsPerMonth = tc.appointments
		if got := AppointmentIncrease(sub); got != tc.want {
			t.Errorf("%s: AppointmentIncrease = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestRevenueIncrease(t *testing.T) {
	// appointments 10, deal 8000, closing 20%, increase tier 150%:
	// 10 * 1.5 * 8000 * 0.2 = 24000
	sub := minimalSubmission()
	sub.CurrentAppointmentsPerMonth = intPtr(10)
	sub.AverageDealSize = intPtr(8000)
	sub.ClosingRate = strPtr("20")

	if got := RevenueIncrease(sub); got != 24000 {
		t.Errorf("RevenueIncrease = %d, want 24000", got)
	}
}

func TestRevenueIncreaseNonNegative(t *testing.T) {
	subs := []*domain.Submission{minimalSubmission(), matureSubmission()}
	for _, sub := range subs {
		if got := RevenueIncrease(sub); got < 0 {
			t.Errorf("RevenueIncrease = %d, want >= 0", got)
		}
	}
}
