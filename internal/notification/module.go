// Package notification provides event handlers for operator alerts in
// response to domain events. Domain modules publish events; this module
// decides who hears about them and over which channel.
package notification

import (
	"context"
	"fmt"

	"audit_funnel_backend/internal/events"
	"audit_funnel_backend/platform/logger"
)

// SMSSender sends text messages to an operator phone number.
type SMSSender interface {
	SendMessage(ctx context.Context, to string, body string) error
}

// Module listens for funnel events and notifies the operator.
type Module struct {
	sms       SMSSender
	recipient string
	log       *logger.Logger
}

// NewModule creates the notification module. sms may be nil when Twilio
// is not configured; events are then logged and dropped.
func NewModule(sms SMSSender, recipient string, log *logger.Logger) *Module {
	return &Module{
		sms:       sms,
		recipient: recipient,
		log:       log,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string { return "notification" }

// RegisterHandlers subscribes to all relevant domain events on the event bus.
func (m *Module) RegisterHandlers(bus events.Bus) {
	bus.Subscribe(events.ApplicationSubmitted{}.EventName(), m)
	bus.Subscribe(events.ReportGenerated{}.EventName(), m)

	m.log.Info("notification module registered event handlers")
}

// Handle routes events to the appropriate handler method.
func (m *Module) Handle(ctx context.Context, event events.Event) error {
	switch e := event.(type) {
	case events.ApplicationSubmitted:
		return m.handleApplicationSubmitted(ctx, e)
	case events.ReportGenerated:
		return m.handleReportGenerated(ctx, e)
	default:
		return nil
	}
}

func (m *Module) handleApplicationSubmitted(ctx context.Context, e events.ApplicationSubmitted) error {
	if m.sms == nil {
		m.log.Info("twilio not configured, skipping sms notification", "company", e.CompanyName)
		return nil
	}

	if err := m.sms.SendMessage(ctx, m.recipient, applicationSMS(e)); err != nil {
		// An unreachable SMS provider must never surface to the prospect.
		m.log.Error("sms sending failed (continuing anyway)", "error", err, "company", e.CompanyName)
		return nil
	}

	m.log.Info("sms notification sent", "company", e.CompanyName)
	return nil
}

func (m *Module) handleReportGenerated(_ context.Context, e events.ReportGenerated) error {
	m.log.Info("audit report ready",
		"submission_id", e.SubmissionID.String(),
		"company", e.CompanyName,
		"overall_score", e.OverallScore,
	)
	return nil
}

// applicationSMS renders the operator alert for a new application.
func applicationSMS(e events.ApplicationSubmitted) string {
	agreed := "NO"
	if e.AgreesToPay {
		agreed = "YES"
	}
	return fmt.Sprintf(`🚀 NEW APPLICATION:
%s
%s (%s)
Current: %s
Target: %s
Website: %s
Agreed to $2K after 10 appointments: %s`,
		e.CompanyName, e.Name, e.Email, e.CurrentRevenue, e.DesiredRevenue, e.Website, agreed)
}

// Compile-time check that Module implements events.Handler
var _ events.Handler = (*Module)(nil)
