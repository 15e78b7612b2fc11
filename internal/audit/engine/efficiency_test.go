package engine

import (
	"testing"

	"audit_funnel_backend/internal/audit/domain"
)

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }

func minimalSubmission() *domain.Submission {
	sub := &domain.Submission{
		CompanyName:    "Acme Corp",
		ContactName:    "Jane Doe",
		Email:          "jane@acme.test",
		Industry:       "Consulting",
		CompanySize:    "11-50",
		CurrentRevenue: "10k-50k",
		TargetRevenue:  "100k-500k",
	}
	sub.Normalize()
	return sub
}

// matureSubmission answers every practice-area question positively.
func matureSubmission() *domain.Submission {
	sub := minimalSubmission()
	sub.CurrentEmailVolume = intPtr(100)
	sub.CurrentAppointmentsPerMonth = intPtr(25)
	sub.CurrentLeadGenMethods = []string{"cold email", "ads", "seo", "referrals"}
	sub.HasCRM = true
	sub.HasEmailSequences = true
	sub.SalesQualificationProcess = strPtr("BANT qualification on every inbound call")
	sub.ClosingRate = strPtr("30")
	sub.AnalyticsSetup = []string{"GA4", "Mixpanel", "Amplitude", "Segment"}
	sub.SalesEnablementTools = []string{"Gong", "Outreach", "PandaDoc"}
	sub.CurrentValueProps = []string{"speed", "price", "quality"}
	sub.CompetitiveAdvantages = []string{"niche focus", "guarantee"}
	sub.TargetIndustries = []string{"saas", "fintech", "ecommerce"}
	sub.TargetCompanySizes = []string{"11-50", "51-200", "201-1000"}
	sub.TargetDecisionMakers = []string{"CEO", "CMO", "VP Sales"}
	sub.WebsiteTrafficPerMonth = intPtr(5000)
	sub.LeadToCustomerRate = floatPtr(12)
	return sub
}

func TestEfficiencyScoreBounds(t *testing.T) {
	cases := []struct {
		name string
		sub  *domain.Submission
	}{
		{"minimal", minimalSubmission()},
		{"mature", matureSubmission()},
	}
	for _, tc := range cases {
		got := EfficiencyScore(tc.sub, nil)
		if got < 10 || got > 100 {
			t.Errorf("%s: EfficiencyScore = %d, want within [10,100]", tc.name, got)
		}
	}
}

func TestEfficiencyScoreLowerClamp(t *testing.T) {
	// Every penalty firing at once: bad appointment rate, zero lead gen
	// methods, zero analytics. 30 - 5 - 10 - 5 = 10, the floor.
	sub := minimalSubmission()
	sub.CurrentEmailVolume = intPtr(1000)
	sub.CurrentAppointmentsPerMonth = intPtr(1)

	if got := EfficiencyScore(sub, nil); got != 10 {
		t.Errorf("EfficiencyScore = %d, want floor 10", got)
	}
}

func TestEfficiencyScoreEmailTiers(t *testing.T) {
	cases := []struct {
		name         string
		volume       int
		appointments int
		wantDelta    int
	}{
		{"above 5 percent", 100, 6, 15},
		{"above 3 percent", 100, 4, 12},
		{"above 2 percent", 100, 3, 8},
		{"above 1 percent", 100, 2, 4},
		{"at or below 1 percent", 100, 1, -5},
	}

	base := minimalSubmission()
	baseScore := EfficiencyScore(base, nil)

	for _, tc := range cases {
		sub := minimalSubmission()
		sub.CurrentEmailVolume = intPtr(tc.volume)
		sub.CurrentAppointmentsPerMonth = intPtr(tc.appointments)

		got := EfficiencyScore(sub, nil)
		if got != baseScore+tc.wantDelta {
			t.Errorf("%s: score = %d, want %d", tc.name, got, baseScore+tc.wantDelta)
		}
	}
}

func TestEfficiencyScoreSkipsEmailTierWhenUnanswered(t *testing.T) {
	withVolumeOnly := minimalSubmission()
	withVolumeOnly.CurrentEmailVolume = intPtr(100)

	if got, want := EfficiencyScore(withVolumeOnly, nil), EfficiencyScore(minimalSubmission(), nil); got != want {
		t.Errorf("volume without appointments: score = %d, want %d (no contribution)", got, want)
	}
}

func TestEfficiencyScoreClosingRateTiers(t *testing.T) {
	cases := []struct {
		rate      string
		wantDelta int
	}{
		{"30", 15},
		{"20", 12},
		{"12", 8},
		{"7", 5},
		{"3", 0},
		{"not-a-number", 0},
		{"", 0},
	}

	baseScore := EfficiencyScore(minimalSubmission(), nil)
	for _, tc := range cases {
		sub := minimalSubmission()
		sub.ClosingRate = strPtr(tc.rate)
		if got := EfficiencyScore(sub, nil); got != baseScore+tc.wantDelta {
			t.Errorf("closing rate %q: score = %d, want %d", tc.rate, got, baseScore+tc.wantDelta)
		}
	}
}

func TestEfficiencyScoreSignalBonus(t *testing.T) {
	cases := []struct {
		name      string
		scores    []int
		wantDelta int
	}{
		{"excellent pages", []int{85, 90}, 5},
		{"good pages", []int{65, 70}, 3},
		{"mediocre pages", []int{45, 50}, 1},
		{"poor pages", []int{10, 20}, 0},
		{"no signals", nil, 0},
	}

	baseScore := EfficiencyScore(minimalSubmission(), nil)
	for _, tc := range cases {
		var signals []domain.WebsiteSignal
		for _, s := range tc.scores {
			signals = append(signals, domain.WebsiteSignal{ConversionScore: s})
		}
		if got := EfficiencyScore(minimalSubmission(), signals); got != baseScore+tc.wantDelta {
			t.Errorf("%s: score = %d, want %d", tc.name, got, baseScore+tc.wantDelta)
		}
	}
}
