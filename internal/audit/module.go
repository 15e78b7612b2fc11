// Package audit provides the audit funnel bounded context: intake
// submissions, the scoring pipeline and report retrieval.
package audit

import (
	"audit_funnel_backend/internal/audit/handler"
	"audit_funnel_backend/internal/audit/ports"
	"audit_funnel_backend/internal/audit/repository"
	"audit_funnel_backend/internal/audit/service"
	"audit_funnel_backend/internal/events"
	apphttp "audit_funnel_backend/internal/http"
	"audit_funnel_backend/platform/logger"
	"audit_funnel_backend/platform/validator"
)

// Module is the audit bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the audit module with all its
// dependencies. Inspector, renderer and archiver may be nil when the
// corresponding backing service is not configured.
func NewModule(repo repository.Repository, inspector ports.PageInspector, renderer ports.ReportRenderer, archiver ports.ReportArchiver, bus events.Bus, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(repo, inspector, renderer, archiver, bus, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "audit"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts audit routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Intake submissions come straight from the marketing site and are
	// rate limited per IP.
	ctx.Public.POST("/audit-submissions", m.handler.Submit)

	ctx.V1.GET("/audit-reports/:submissionId", m.handler.GetReport)
	ctx.V1.GET("/audit-reports/:submissionId/pdf", m.handler.DownloadReportPDF)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
