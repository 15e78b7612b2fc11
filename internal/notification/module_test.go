package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"audit_funnel_backend/internal/events"
	"audit_funnel_backend/platform/logger"
)

type stubSender struct {
	to     []string
	bodies []string
	err    error
}

func (s *stubSender) SendMessage(_ context.Context, to string, body string) error {
	s.to = append(s.to, to)
	s.bodies = append(s.bodies, body)
	return s.err
}

func testApplication() events.ApplicationSubmitted {
	return events.ApplicationSubmitted{
		BaseEvent:      events.NewBaseEvent(),
		CompanyName:    "Acme GmbH",
		Name:           "Jo Test",
		Email:          "jo@acme.test",
		Website:        "https://acme.test",
		CurrentRevenue: "50k/month",
		DesiredRevenue: "120k/month",
		AgreesToPay:    true,
	}
}

func TestApplicationSubmittedSendsSMS(t *testing.T) {
	sender := &stubSender{}
	mod := NewModule(sender, "+15550001111", logger.New("development"))

	bus := events.NewInMemoryBus(logger.New("development"))
	mod.RegisterHandlers(bus)

	if err := bus.PublishSync(context.Background(), testApplication()); err != nil {
		t.Fatalf("PublishSync: %v", err)
	}

	if len(sender.bodies) != 1 {
		t.Fatalf("got %d messages, want 1", len(sender.bodies))
	}
	if sender.to[0] != "+15550001111" {
		t.Errorf("recipient = %q", sender.to[0])
	}

	body := sender.bodies[0]
	for _, want := range []string{
		"NEW APPLICATION:",
		"Acme GmbH",
		"Jo Test (jo@acme.test)",
		"Current: 50k/month",
		"Target: 120k/month",
		"Website: https://acme.test",
		"Agreed to $2K after 10 appointments: YES",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("sms body missing %q:\n%s", want, body)
		}
	}
}

func TestApplicationSMSDeclined(t *testing.T) {
	app := testApplication()
	app.AgreesToPay = false

	if body := applicationSMS(app); !strings.Contains(body, "Agreed to $2K after 10 appointments: NO") {
		t.Errorf("declined application should render NO:\n%s", body)
	}
}

func TestSenderFailureIsAbsorbed(t *testing.T) {
	sender := &stubSender{err: errors.New("twilio unreachable")}
	mod := NewModule(sender, "+15550001111", logger.New("development"))

	if err := mod.Handle(context.Background(), testApplication()); err != nil {
		t.Errorf("sender failure must not propagate, got %v", err)
	}
}

func TestNilSenderSkips(t *testing.T) {
	mod := NewModule(nil, "", logger.New("development"))

	if err := mod.Handle(context.Background(), testApplication()); err != nil {
		t.Errorf("nil sender should skip, got %v", err)
	}
}

func TestReportGeneratedDoesNotSMS(t *testing.T) {
	sender := &stubSender{}
	mod := NewModule(sender, "+15550001111", logger.New("development"))

	err := mod.Handle(context.Background(), events.ReportGenerated{
		BaseEvent:    events.NewBaseEvent(),
		SubmissionID: uuid.New(),
		ReportID:     uuid.New(),
		CompanyName:  "Acme GmbH",
		OverallScore: 61,
	})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(sender.bodies) != 0 {
		t.Errorf("report event should not send sms, got %d", len(sender.bodies))
	}
}
