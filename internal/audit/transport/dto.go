package transport

import (
	"github.com/google/uuid"

	"audit_funnel_backend/internal/audit/domain"
)

// SubmitAuditRequest is the intake form payload. Required fields mirror
// what the form wizard enforces client-side; everything else is optional
// and defaults to empty.
type SubmitAuditRequest struct {
	CompanyName string  `json:"companyName" validate:"required,min=1,max=200"`
	ContactName string  `json:"contactName" validate:"required,min=1,max=200"`
	Email       string  `json:"email" validate:"required,email"`
	Website     *string `json:"website,omitempty" validate:"omitempty,url"`
	Industry    string  `json:"industry" validate:"required,min=1,max=100"`
	CompanySize string  `json:"companySize" validate:"required,min=1,max=20"`

	CurrentRevenue string `json:"currentRevenue" validate:"required,min=1,max=50"`
	TargetRevenue  string `json:"targetRevenue" validate:"required,min=1,max=50"`

	CurrentLeadGenMethods       []string `json:"currentLeadGenMethods,omitempty"`
	MonthlyLeadGenSpend         *string  `json:"monthlyLeadGenSpend,omitempty"`
	CurrentAppointmentsPerMonth *int     `json:"currentAppointmentsPerMonth,omitempty"`
	AverageDealSize             *int     `json:"averageDealSize,omitempty"`
	SalesCycleLength            *string  `json:"salesCycleLength,omitempty"`
	ClosingRate                 *string  `json:"closingRate,omitempty"`
	BiggestChallenges           []string `json:"biggestChallenges,omitempty"`
	CurrentTools                []string `json:"currentTools,omitempty"`
	HasEmailSequences           bool     `json:"hasEmailSequences"`
	HasCRM                      bool     `json:"hasCRM"`
	CurrentEmailVolume          *int     `json:"currentEmailVolume,omitempty"`

	TargetCompanySizes   []string `json:"targetCompanySizes,omitempty"`
	TargetDecisionMakers []string `json:"targetDecisionMakers,omitempty"`
	TargetIndustries     []string `json:"targetIndustries,omitempty"`
	GeographicFocus      []string `json:"geographicFocus,omitempty"`
	IdealCustomerProfile *string  `json:"idealCustomerProfile,omitempty"`

	WebsiteTrafficPerMonth *int               `json:"websiteTrafficPerMonth,omitempty"`
	LeadToCustomerRate     *float64           `json:"leadToCustomerRate,omitempty"`
	CurrentCAC             *int               `json:"currentCAC,omitempty"`
	CostPerLeadByChannel   map[string]float64 `json:"costPerLeadByChannel,omitempty"`
	ConversionRateByStage  map[string]float64 `json:"conversionRateByStage,omitempty"`

	CurrentValueProps         []string `json:"currentValueProps,omitempty"`
	ContentProductionVolume   *string  `json:"contentProductionVolume,omitempty"`
	ContentThemes             []string `json:"contentThemes,omitempty"`
	MessagingTestingFrequency *string  `json:"messagingTestingFrequency,omitempty"`
	PrimaryContentFormats     []string `json:"primaryContentFormats,omitempty"`

	MainCompetitors             []string `json:"mainCompetitors,omitempty"`
	CompetitiveAdvantages       []string `json:"competitiveAdvantages,omitempty"`
	MarketDifferentiators       []string `json:"marketDifferentiators,omitempty"`
	CompetitorAnalysisFrequency *string  `json:"competitorAnalysisFrequency,omitempty"`

	MarketingAutomationPlatform *string  `json:"marketingAutomationPlatform,omitempty"`
	AnalyticsSetup              []string `json:"analyticsSetup,omitempty"`
	ABTestingFrequency          *string  `json:"abTestingFrequency,omitempty"`
	LeadScoringSystem           bool     `json:"leadScoringSystem"`
	AttributionModelUsed        *string  `json:"attributionModelUsed,omitempty"`

	SalesTeamSize             *int     `json:"salesTeamSize,omitempty"`
	SalesQualificationProcess *string  `json:"salesQualificationProcess,omitempty"`
	FollowUpCadence           *string  `json:"followUpCadence,omitempty"`
	WinLossTracking           bool     `json:"winLossTracking"`
	SalesEnablementTools      []string `json:"salesEnablementTools,omitempty"`

	PreviousSuccessfulCampaigns *string  `json:"previousSuccessfulCampaigns,omitempty"`
	BiggestFailuresLessons      *string  `json:"biggestFailuresLessons,omitempty"`
	SeasonalTrends              *string  `json:"seasonalTrends,omitempty"`
	GrowthBottlenecks           []string `json:"growthBottlenecks,omitempty"`

	EnableWebsiteAudit           bool     `json:"enableWebsiteAudit"`
	LandingPageURLs              []string `json:"landingPageUrls,omitempty" validate:"omitempty,dive,url"`
	ConversionGoals              []string `json:"conversionGoals,omitempty"`
	CurrentWebsiteConversionRate *float64 `json:"currentWebsiteConversionRate,omitempty"`
	MobileOptimizationScore      *int     `json:"mobileOptimizationScore,omitempty" validate:"omitempty,min=1,max=10"`
	PagespeedConcerns            bool     `json:"pagespeedConcerns"`
}

// ToDomain maps the request onto a new submission record.
func (r *SubmitAuditRequest) ToDomain() *domain.Submission {
	return &domain.Submission{
		CompanyName:                 r.CompanyName,
		ContactName:                 r.ContactName,
		Email:                       r.Email,
		Website:                     r.Website,
		Industry:                    r.Industry,
		CompanySize:                 r.CompanySize,
		CurrentRevenue:              r.CurrentRevenue,
		TargetRevenue:               r.TargetRevenue,
		CurrentLeadGenMethods:       r.CurrentLeadGenMethods,
		MonthlyLeadGenSpend:         r.MonthlyLeadGenSpend,
		CurrentAppointmentsPerMonth: r.CurrentAppointmentsPerMonth,
		AverageDealSize:             r.AverageDealSize,
		SalesCycleLength:            r.SalesCycleLength,
		ClosingRate:                 r.ClosingRate,
		BiggestChallenges:           r.BiggestChallenges,
		CurrentTools:                r.CurrentTools,
		HasEmailSequences:           r.HasEmailSequences,
		HasCRM:                      r.HasCRM,
		CurrentEmailVolume:          r.CurrentEmailVolume,
		TargetCompanySizes:          r.TargetCompanySizes,
		TargetDecisionMakers:        r.TargetDecisionMakers,
		TargetIndustries:            r.TargetIndustries,
		GeographicFocus:             r.GeographicFocus,
		IdealCustomerProfile:        r.IdealCustomerProfile,
		WebsiteTrafficPerMonth:      r.WebsiteTrafficPerMonth,
		LeadToCustomerRate:          r.LeadToCustomerRate,
		CurrentCAC:                  r.CurrentCAC,
		CostPerLeadByChannel:        r.CostPerLeadByChannel,
		ConversionRateByStage:       r.ConversionRateByStage,
		CurrentValueProps:           r.CurrentValueProps,
		ContentProductionVolume:     r.ContentProductionVolume,
		ContentThemes:               r.ContentThemes,
		MessagingTestingFrequency:   r.MessagingTestingFrequency,
		PrimaryContentFormats:       r.PrimaryContentFormats,
		MainCompetitors:             r.MainCompetitors,
		CompetitiveAdvantages:       r.CompetitiveAdvantages,
		MarketDifferentiators:       r.MarketDifferentiators,
		CompetitorAnalysisFrequency: r.CompetitorAnalysisFrequency,
		MarketingAutomationPlatform: r.MarketingAutomationPlatform,
		AnalyticsSetup:              r.AnalyticsSetup,
		ABTestingFrequency:          r.ABTestingFrequency,
		LeadScoringSystem:           r.LeadScoringSystem,
		AttributionModelUsed:        r.AttributionModelUsed,
		SalesTeamSize:               r.SalesTeamSize,
		SalesQualificationProcess:   r.SalesQualificationProcess,
		FollowUpCadence:             r.FollowUpCadence,
		WinLossTracking:             r.WinLossTracking,
		SalesEnablementTools:        r.SalesEnablementTools,
		PreviousSuccessfulCampaigns: r.PreviousSuccessfulCampaigns,
		BiggestFailuresLessons:      r.BiggestFailuresLessons,
		SeasonalTrends:              r.SeasonalTrends,
		GrowthBottlenecks:           r.GrowthBottlenecks,
		EnableWebsiteAudit:          r.EnableWebsiteAudit,
		LandingPageURLs:             r.LandingPageURLs,
		ConversionGoals:             r.ConversionGoals,

		CurrentWebsiteConversionRate: r.CurrentWebsiteConversionRate,
		MobileOptimizationScore:      r.MobileOptimizationScore,
		PagespeedConcerns:            r.PagespeedConcerns,
	}
}

// SubmitAuditResponse acknowledges a stored submission.
type SubmitAuditResponse struct {
	Success      bool      `json:"success"`
	SubmissionID uuid.UUID `json:"submissionId"`
	Message      string    `json:"message"`
}

// ReportResponse bundles a submission with its generated report.
type ReportResponse struct {
	Success    bool               `json:"success"`
	Submission *domain.Submission `json:"submission"`
	Report     *domain.Report     `json:"report"`
}
