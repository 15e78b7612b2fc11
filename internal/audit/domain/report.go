package domain

import (
	"time"

	"github.com/google/uuid"
)

// Priority bands for recommendations. The band caps how many
// recommendations of that kind make it into a report.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// CTAQuality classifies the call-to-action strength of an audited page.
type CTAQuality string

const (
	CTAQualityPoor      CTAQuality = "poor"
	CTAQualityGood      CTAQuality = "good"
	CTAQualityExcellent CTAQuality = "excellent"
)

// WebsiteSignal is the structural analysis of one audited landing page.
// A failed fetch is represented as a signal with zeroed metrics and a
// single advisory recommendation, never by omission of the record.
type WebsiteSignal struct {
	URL              string     `json:"url"`
	PageLoadTimeMs   int        `json:"pageLoadTime"`
	MobileResponsive bool       `json:"mobileResponsive"`
	HasContactForm   bool       `json:"hasContactForm"`
	CTACount         int        `json:"ctaCount"`
	CTAQuality       CTAQuality `json:"ctaQuality"`
	HasPhoneNumber   bool       `json:"hasPhoneNumber"`
	HasEmailAddress  bool       `json:"hasEmailAddress"`
	ContentLength    int        `json:"contentLength"`
	HasValueProp     bool       `json:"hasValueProp"`
	SEOScore         int        `json:"seoScore"`
	Recommendations  []string   `json:"recommendations"`
	ConversionScore  int        `json:"conversionScore"`
}

// Recommendation is one prioritized improvement drawn from the rule catalog.
type Recommendation struct {
	Priority        Priority `json:"priority"`
	Category        string   `json:"category"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	TimeToImplement string   `json:"timeToImplement"`
	EstimatedImpact string   `json:"estimatedImpact"`
	Tools           []string `json:"tools"`
}

// PlanPhase is one phase of the 90-day implementation roadmap.
type PlanPhase struct {
	Phase           int      `json:"phase"`
	Title           string   `json:"title"`
	Duration        string   `json:"duration"`
	Tasks           []string `json:"tasks"`
	ExpectedResults string   `json:"expectedResults"`
}

// Benchmark compares one of the submitter's metrics against industry
// reference values.
type Benchmark struct {
	Metric          string  `json:"metric"`
	CurrentValue    float64 `json:"currentValue"`
	IndustryAverage float64 `json:"industryAverage"`
	TopPerformers   float64 `json:"topPerformers"`
}

// Report is the derived scoring and recommendation bundle for one
// Submission. Immutable once created; one-to-one with its submission.
type Report struct {
	ID                           uuid.UUID        `json:"id"`
	SubmissionID                 uuid.UUID        `json:"submissionId"`
	OverallScore                 int              `json:"overallScore"`
	CurrentEfficiencyScore       int              `json:"currentEfficiencyScore"`
	PotentialImprovementScore    int              `json:"potentialImprovementScore"`
	EstimatedROI                 int              `json:"estimatedROI"`
	ProjectedAppointmentIncrease int              `json:"projectedAppointmentIncrease"`
	ProjectedRevenueIncrease     int              `json:"projectedRevenueIncrease"`
	Recommendations              []Recommendation `json:"recommendations"`
	ImplementationPlan           []PlanPhase      `json:"implementationPlan"`
	BenchmarkData                []Benchmark      `json:"benchmarkData"`
	WebsiteAuditResults          []WebsiteSignal  `json:"websiteAuditResults,omitempty"`
	CreatedAt                    time.Time        `json:"createdAt"`
}
