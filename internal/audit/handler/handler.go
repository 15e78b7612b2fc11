package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"audit_funnel_backend/internal/audit/service"
	"audit_funnel_backend/internal/audit/transport"
	"audit_funnel_backend/platform/httpkit"
	"audit_funnel_backend/platform/validator"
)

// Handler handles HTTP requests for the audit funnel.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest      = "invalid request"
	msgValidationFailed    = "Failed to submit audit. Please check your data and try again."
	msgInvalidSubmissionID = "invalid submission ID"
)

// New creates a new audit handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Submit accepts a completed intake form, runs the scoring pipeline and
// returns the submission ID for report retrieval.
// POST /api/v1/audit-submissions
func (h *Handler) Submit(c *gin.Context) {
	var req transport.SubmitAuditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Submit(c.Request.Context(), req.ToDomain())
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.SubmitAuditResponse{
		Success:      true,
		SubmissionID: result.SubmissionID,
		Message:      "Audit submission successful! Your report is ready.",
	})
}

// GetReport returns a submission together with its generated report.
// GET /api/v1/audit-reports/:submissionId
func (h *Handler) GetReport(c *gin.Context) {
	id, err := uuid.Parse(c.Param("submissionId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidSubmissionID, nil)
		return
	}

	sub, report, err := h.svc.GetReport(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.OK(c, transport.ReportResponse{
		Success:    true,
		Submission: sub,
		Report:     report,
	})
}

// DownloadReportPDF renders the report as a PDF attachment.
// GET /api/v1/audit-reports/:submissionId/pdf
func (h *Handler) DownloadReportPDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("submissionId"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidSubmissionID, nil)
		return
	}

	pdf, filename, err := h.svc.RenderReportPDF(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
