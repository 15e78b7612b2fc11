// Package applications provides the qualification form bounded context:
// the final conversion step of the funnel, where a prospect applies for
// the guaranteed-appointments engagement.
package applications

import (
	"audit_funnel_backend/internal/applications/handler"
	"audit_funnel_backend/internal/applications/service"
	"audit_funnel_backend/internal/events"
	apphttp "audit_funnel_backend/internal/http"
	"audit_funnel_backend/platform/logger"
	"audit_funnel_backend/platform/validator"
)

// Module is the applications module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the applications module. smsEnabled
// reflects whether the operator SMS notification pipeline is configured.
func NewModule(bus events.Bus, val *validator.Validator, log *logger.Logger, smsEnabled bool) *Module {
	svc := service.New(bus, log)
	return &Module{handler: handler.New(svc, val, smsEnabled)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "applications"
}

// RegisterRoutes mounts application routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Public form endpoint, rate limited per IP like the audit intake.
	ctx.Public.POST("/applications", m.handler.Submit)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
