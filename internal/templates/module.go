// Package templates provides the cold-email template library bounded
// context: a curated, seeded set of outreach templates served read-only.
package templates

import (
	apphttp "audit_funnel_backend/internal/http"
	"audit_funnel_backend/internal/templates/handler"
	"audit_funnel_backend/internal/templates/repository"
	"audit_funnel_backend/internal/templates/service"
	"audit_funnel_backend/platform/logger"
)

// Module is the template library module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates and initializes the templates module.
func NewModule(repo repository.Repository, log *logger.Logger) *Module {
	svc := service.New(repo, log)
	return &Module{handler: handler.New(svc)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "templates"
}

// RegisterRoutes mounts template routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.GET("/templates", m.handler.GetAll)
	ctx.V1.GET("/templates/:category", m.handler.GetByCategory)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
