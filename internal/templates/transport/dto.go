// Package transport defines the template library response shapes.
package transport

import (
	"audit_funnel_backend/internal/templates/domain"
)

// TemplatesResponse wraps a list of templates.
type TemplatesResponse struct {
	Templates []domain.Template `json:"templates"`
}
