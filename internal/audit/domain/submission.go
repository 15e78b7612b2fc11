// Package domain contains the core audit types and business rules.
package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Submission is the normalized business-intake record driving an audit.
// It is immutable once created; scoring never mutates it.
//
// Optional scalar fields are pointers so that "not answered" is
// distinguishable from a zero answer. List fields are normalized to
// empty slices so scoring can treat omitted and empty identically.
type Submission struct {
	ID          uuid.UUID `json:"id"`
	CompanyName string    `json:"companyName"`
	ContactName string    `json:"contactName"`
	Email       string    `json:"email"`
	Website     *string   `json:"website,omitempty"`
	Industry    string    `json:"industry"`
	CompanySize string    `json:"companySize"`

	CurrentRevenue string `json:"currentRevenue"`
	TargetRevenue  string `json:"targetRevenue"`

	// Lead-gen practice
	CurrentLeadGenMethods       []string `json:"currentLeadGenMethods"`
	MonthlyLeadGenSpend         *string  `json:"monthlyLeadGenSpend,omitempty"`
	CurrentAppointmentsPerMonth *int     `json:"currentAppointmentsPerMonth,omitempty"`
	AverageDealSize             *int     `json:"averageDealSize,omitempty"`
	SalesCycleLength            *string  `json:"salesCycleLength,omitempty"`
	ClosingRate                 *string  `json:"closingRate,omitempty"`
	BiggestChallenges           []string `json:"biggestChallenges"`
	CurrentTools                []string `json:"currentTools"`
	HasEmailSequences           bool     `json:"hasEmailSequences"`
	HasCRM                      bool     `json:"hasCRM"`
	CurrentEmailVolume          *int     `json:"currentEmailVolume,omitempty"`

	// Target audience
	TargetCompanySizes   []string `json:"targetCompanySizes"`
	TargetDecisionMakers []string `json:"targetDecisionMakers"`
	TargetIndustries     []string `json:"targetIndustries"`
	GeographicFocus      []string `json:"geographicFocus"`
	IdealCustomerProfile *string  `json:"idealCustomerProfile,omitempty"`

	// Conversion metrics
	WebsiteTrafficPerMonth *int               `json:"websiteTrafficPerMonth,omitempty"`
	LeadToCustomerRate     *float64           `json:"leadToCustomerRate,omitempty"`
	CurrentCAC             *int               `json:"currentCAC,omitempty"`
	CostPerLeadByChannel   map[string]float64 `json:"costPerLeadByChannel,omitempty"`
	ConversionRateByStage  map[string]float64 `json:"conversionRateByStage,omitempty"`

	// Content and messaging
	CurrentValueProps         []string `json:"currentValueProps"`
	ContentProductionVolume   *string  `json:"contentProductionVolume,omitempty"`
	ContentThemes             []string `json:"contentThemes"`
	MessagingTestingFrequency *string  `json:"messagingTestingFrequency,omitempty"`
	PrimaryContentFormats     []string `json:"primaryContentFormats"`

	// Competitive intelligence
	MainCompetitors             []string `json:"mainCompetitors"`
	CompetitiveAdvantages       []string `json:"competitiveAdvantages"`
	MarketDifferentiators       []string `json:"marketDifferentiators"`
	CompetitorAnalysisFrequency *string  `json:"competitorAnalysisFrequency,omitempty"`

	// Technical maturity
	MarketingAutomationPlatform *string  `json:"marketingAutomationPlatform,omitempty"`
	AnalyticsSetup              []string `json:"analyticsSetup"`
	ABTestingFrequency          *string  `json:"abTestingFrequency,omitempty"`
	LeadScoringSystem           bool     `json:"leadScoringSystem"`
	AttributionModelUsed        *string  `json:"attributionModelUsed,omitempty"`

	// Sales process
	SalesTeamSize             *int     `json:"salesTeamSize,omitempty"`
	SalesQualificationProcess *string  `json:"salesQualificationProcess,omitempty"`
	FollowUpCadence           *string  `json:"followUpCadence,omitempty"`
	WinLossTracking           bool     `json:"winLossTracking"`
	SalesEnablementTools      []string `json:"salesEnablementTools"`

	// Historical performance
	PreviousSuccessfulCampaigns *string  `json:"previousSuccessfulCampaigns,omitempty"`
	BiggestFailuresLessons      *string  `json:"biggestFailuresLessons,omitempty"`
	SeasonalTrends              *string  `json:"seasonalTrends,omitempty"`
	GrowthBottlenecks           []string `json:"growthBottlenecks"`

	// Website audit opt-in
	EnableWebsiteAudit           bool     `json:"enableWebsiteAudit"`
	LandingPageURLs              []string `json:"landingPageUrls"`
	ConversionGoals              []string `json:"conversionGoals"`
	CurrentWebsiteConversionRate *float64 `json:"currentWebsiteConversionRate,omitempty"`
	MobileOptimizationScore      *int     `json:"mobileOptimizationScore,omitempty"`
	PagespeedConcerns            bool     `json:"pagespeedConcerns"`

	CreatedAt time.Time `json:"createdAt"`
}

// Defaults applied when optional financial fields are absent.
const (
	DefaultDealSize     = 5000
	DefaultAppointments = 5
	DefaultClosingRate  = 10.0
)

// Normalize replaces nil list and map fields with empty values so that
// omitted and empty inputs are indistinguishable downstream.
func (s *Submission) Normalize() {
	lists := []*[]string{
		&s.CurrentLeadGenMethods, &s.BiggestChallenges, &s.CurrentTools,
		&s.TargetCompanySizes, &s.TargetDecisionMakers, &s.TargetIndustries,
		&s.GeographicFocus, &s.CurrentValueProps, &s.ContentThemes,
		&s.PrimaryContentFormats, &s.MainCompetitors, &s.CompetitiveAdvantages,
		&s.MarketDifferentiators, &s.AnalyticsSetup, &s.SalesEnablementTools,
		&s.GrowthBottlenecks, &s.LandingPageURLs, &s.ConversionGoals,
	}
	for _, l := range lists {
		if *l == nil {
			*l = []string{}
		}
	}
	if s.CostPerLeadByChannel == nil {
		s.CostPerLeadByChannel = map[string]float64{}
	}
	if s.ConversionRateByStage == nil {
		s.ConversionRateByStage = map[string]float64{}
	}
}

// AppointmentsOrDefault returns the monthly appointment count, falling back
// to the conservative default for absent or zero answers.
func (s *Submission) AppointmentsOrDefault() int {
	if s.CurrentAppointmentsPerMonth != nil && *s.CurrentAppointmentsPerMonth != 0 {
		return *s.CurrentAppointmentsPerMonth
	}
	return DefaultAppointments
}

// Appointments returns the monthly appointment count, treating an absent
// answer as zero. Gap heuristics use this form.
func (s *Submission) Appointments() int {
	if s.CurrentAppointmentsPerMonth != nil {
		return *s.CurrentAppointmentsPerMonth
	}
	return 0
}

// DealSizeOrDefault returns the average deal size, falling back to the
// default when absent or not a positive answer.
func (s *Submission) DealSizeOrDefault() int {
	if s.AverageDealSize != nil && *s.AverageDealSize != 0 {
		return *s.AverageDealSize
	}
	return DefaultDealSize
}

// ClosingRatePct parses the self-reported closing rate percentage.
// Absent or unparseable answers fall back to the default rate so the
// projections never see a NaN.
func (s *Submission) ClosingRatePct() float64 {
	if s.ClosingRate == nil || *s.ClosingRate == "" {
		return DefaultClosingRate
	}
	rate, err := strconv.ParseFloat(*s.ClosingRate, 64)
	if err != nil {
		return DefaultClosingRate
	}
	return rate
}

// TargetingClaritySum is the combined size of the three targeting lists.
// Several heuristics use it as a proxy for how well-defined the ideal
// customer profile is.
func (s *Submission) TargetingClaritySum() int {
	return len(s.TargetIndustries) + len(s.TargetCompanySizes) + len(s.TargetDecisionMakers)
}

// TrafficOrZero returns the monthly website traffic, treating absent as zero.
func (s *Submission) TrafficOrZero() int {
	if s.WebsiteTrafficPerMonth != nil {
		return *s.WebsiteTrafficPerMonth
	}
	return 0
}

// LeadToCustomerRateOrZero returns the lead-to-customer rate, treating
// absent as zero.
func (s *Submission) LeadToCustomerRateOrZero() float64 {
	if s.LeadToCustomerRate != nil {
		return *s.LeadToCustomerRate
	}
	return 0
}

// HasQualificationProcess reports whether a sales qualification process
// was described.
func (s *Submission) HasQualificationProcess() bool {
	return s.SalesQualificationProcess != nil && *s.SalesQualificationProcess != ""
}

// HasAttributionModel reports whether an attribution model is in use.
func (s *Submission) HasAttributionModel() bool {
	return s.AttributionModelUsed != nil && *s.AttributionModelUsed != ""
}
