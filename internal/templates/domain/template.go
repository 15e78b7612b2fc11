// Package domain holds the email template library entities.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Template categories mirror the library's navigation structure.
const (
	CategoryFirstOutreach = "first-outreach"
	CategoryFollowUp      = "follow-up"
	CategorySpecialized   = "specialized"
)

// Template is one proven cold-email template with its performance track
// record. Rates are stored as decimal strings to keep the two-digit
// precision the metrics were recorded with.
type Template struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Category            string    `json:"category"`
	SubCategory         string    `json:"subCategory,omitempty"`
	SubjectLine         string    `json:"subjectLine"`
	SubjectVariations   []string  `json:"subjectVariations,omitempty"`
	EmailBody           string    `json:"emailBody"`
	PersonalizationTips string    `json:"personalizationTips,omitempty"`
	IndustryFocus       string    `json:"industryFocus,omitempty"`
	OpenRate            string    `json:"openRate,omitempty"`
	ReplyRate           string    `json:"replyRate,omitempty"`
	PipelineGenerated   int       `json:"pipelineGenerated,omitempty"`
	UseCase             string    `json:"useCase,omitempty"`
	BestPractices       string    `json:"bestPractices,omitempty"`
	SuccessStory        string    `json:"successStory,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}
