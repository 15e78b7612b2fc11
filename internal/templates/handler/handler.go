package handler

import (
	"github.com/gin-gonic/gin"

	"audit_funnel_backend/internal/templates/domain"
	"audit_funnel_backend/internal/templates/service"
	"audit_funnel_backend/internal/templates/transport"
	"audit_funnel_backend/platform/httpkit"
)

// Handler handles HTTP requests for the email template library.
type Handler struct {
	svc *service.Service
}

// New creates a new template handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// GetAll returns the full template library.
// GET /api/v1/templates
func (h *Handler) GetAll(c *gin.Context) {
	templates, err := h.svc.GetAll(c.Request.Context())
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.TemplatesResponse{Templates: emptyToSlice(templates)})
}

// GetByCategory returns the templates in one category.
// GET /api/v1/templates/:category
func (h *Handler) GetByCategory(c *gin.Context) {
	templates, err := h.svc.GetByCategory(c.Request.Context(), c.Param("category"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.TemplatesResponse{Templates: emptyToSlice(templates)})
}

// emptyToSlice keeps empty results rendering as [] rather than null.
func emptyToSlice(templates []domain.Template) []domain.Template {
	if templates == nil {
		return []domain.Template{}
	}
	return templates
}
