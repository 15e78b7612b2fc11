// Package service contains the application intake logic. Applications
// are not persisted; they are logged and forwarded to the notification
// pipeline via the event bus.
package service

import (
	"context"

	"audit_funnel_backend/internal/events"
	"audit_funnel_backend/platform/logger"
)

// Application is one completed qualification form.
type Application struct {
	CompanyName    string
	Name           string
	Email          string
	Website        string
	CurrentRevenue string
	DesiredRevenue string
	AgreesToPay    bool
}

// Service accepts qualification form submissions.
type Service struct {
	bus events.Bus
	log *logger.Logger
}

// New creates a new applications service.
func New(bus events.Bus, log *logger.Logger) *Service {
	return &Service{bus: bus, log: log}
}

// Submit records an application and publishes ApplicationSubmitted.
func (s *Service) Submit(ctx context.Context, app Application) error {
	s.log.ApplicationReceived(app.CompanyName, app.Name, app.Email)

	s.bus.Publish(ctx, events.ApplicationSubmitted{
		BaseEvent:      events.NewBaseEvent(),
		CompanyName:    app.CompanyName,
		Name:           app.Name,
		Email:          app.Email,
		Website:        app.Website,
		CurrentRevenue: app.CurrentRevenue,
		DesiredRevenue: app.DesiredRevenue,
		AgreesToPay:    app.AgreesToPay,
	})
	return nil
}
