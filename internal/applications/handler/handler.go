package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"audit_funnel_backend/internal/applications/service"
	"audit_funnel_backend/internal/applications/transport"
	"audit_funnel_backend/platform/httpkit"
	"audit_funnel_backend/platform/validator"
)

// Handler handles HTTP requests for the application form.
type Handler struct {
	svc        *service.Service
	val        *validator.Validator
	smsEnabled bool
}

const (
	msgValidationFailed = "Please fill in all required fields correctly."
	msgSubmitFailed     = "Submission failed. Please try again or contact support."
)

// New creates a new applications handler. smsEnabled reflects whether the
// operator SMS alert is configured, surfaced in the response.
func New(svc *service.Service, val *validator.Validator, smsEnabled bool) *Handler {
	return &Handler{svc: svc, val: val, smsEnabled: smsEnabled}
}

// Submit accepts a completed qualification form.
// POST /api/v1/applications
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgSubmitFailed, nil)
		return
	}
	if err := h.val.Struct(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	err := h.svc.Submit(c.Request.Context(), service.Application{
		CompanyName:    req.CompanyName,
		Name:           req.Name,
		Email:          req.Email,
		Website:        req.Website,
		CurrentRevenue: req.CurrentRevenue,
		DesiredRevenue: req.DesiredRevenue,
		AgreesToPay:    req.AgreesToPay,
	})
	if httpkit.HandleError(c, err) {
		return
	}

	smsNotification := "skipped"
	if h.smsEnabled {
		smsNotification = "sent"
	}
	httpkit.OK(c, transport.SubmitApplicationResponse{
		Success:         true,
		Message:         "Application submitted successfully! We'll contact you within 24 hours.",
		SMSNotification: smsNotification,
	})
}
