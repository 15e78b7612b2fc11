// Package events provides domain event definitions for decoupled,
// event-driven communication between modules.
// Infrastructure (Bus, Handler) is in platform/events.
package events

import (
	"audit_funnel_backend/platform/events"

	"github.com/google/uuid"
)

// Re-export platform types for convenience
type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

// Re-export platform functions
var NewBaseEvent = events.NewBaseEvent

// =============================================================================
// Audit Domain Events
// =============================================================================

// ReportGenerated is published after a submission has been scored and its
// report persisted.
type ReportGenerated struct {
	BaseEvent
	SubmissionID    uuid.UUID `json:"submissionId"`
	ReportID        uuid.UUID `json:"reportId"`
	CompanyName     string    `json:"companyName"`
	Email           string    `json:"email"`
	OverallScore    int       `json:"overallScore"`
	EfficiencyScore int       `json:"efficiencyScore"`
	PagesAudited    int       `json:"pagesAudited"`
}

func (e ReportGenerated) EventName() string { return "audit.report.generated" }

// =============================================================================
// Applications Domain Events
// =============================================================================

// ApplicationSubmitted is published when a prospect completes the
// qualification form at the bottom of the funnel.
type ApplicationSubmitted struct {
	BaseEvent
	CompanyName    string `json:"companyName"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Website        string `json:"website"`
	CurrentRevenue string `json:"currentRevenue"`
	DesiredRevenue string `json:"desiredRevenue"`
	AgreesToPay    bool   `json:"agreesToPay"`
}

func (e ApplicationSubmitted) EventName() string { return "applications.application.submitted" }
