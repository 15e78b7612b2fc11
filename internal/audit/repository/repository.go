package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"audit_funnel_backend/internal/audit/domain"
	"audit_funnel_backend/platform/apperr"
)

const (
	submissionNotFoundMessage = "audit submission not found"
	reportNotFoundMessage     = "audit report not found"
)

// Repo implements the Repository interface with PostgreSQL.
//
// The intake form is wide and versioned by product iteration, so the
// submission record is stored as a jsonb document alongside the scalar
// identity columns used for lookups. Report sections (recommendations,
// plan, benchmarks, signals) are jsonb documents per column.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Compile-time check that Repo implements Repository.
var _ Repository = (*Repo)(nil)

// CreateSubmission persists a normalized submission.
func (r *Repo) CreateSubmission(ctx context.Context, sub *domain.Submission) error {
	data, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}

	query := `
		INSERT INTO audit_submissions (id, company_name, contact_name, email, industry, company_size, data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err = r.pool.Exec(ctx, query,
		sub.ID, sub.CompanyName, sub.ContactName, sub.Email, sub.Industry, sub.CompanySize, data, sub.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create audit submission: %w", err)
	}
	return nil
}

// GetSubmission retrieves a submission by its ID.
func (r *Repo) GetSubmission(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	query := `SELECT data FROM audit_submissions WHERE id = $1`

	var data []byte
	if err := r.pool.QueryRow(ctx, query, id).Scan(&data); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(submissionNotFoundMessage)
		}
		return nil, fmt.Errorf("get audit submission: %w", err)
	}

	var sub domain.Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return nil, fmt.Errorf("unmarshal submission: %w", err)
	}
	sub.Normalize()
	return &sub, nil
}

// CreateReport persists a generated report.
func (r *Repo) CreateReport(ctx context.Context, report *domain.Report) error {
	recommendations, err := json.Marshal(report.Recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations: %w", err)
	}
	plan, err := json.Marshal(report.ImplementationPlan)
	if err != nil {
		return fmt.Errorf("marshal implementation plan: %w", err)
	}
	benchmarks, err := json.Marshal(report.BenchmarkData)
	if err != nil {
		return fmt.Errorf("marshal benchmark data: %w", err)
	}
	var signals []byte
	if report.WebsiteAuditResults != nil {
		signals, err = json.Marshal(report.WebsiteAuditResults)
		if err != nil {
			return fmt.Errorf("marshal website audit results: %w", err)
		}
	}

	query := `
		INSERT INTO audit_reports (
			id, submission_id, overall_score, current_efficiency_score, potential_improvement_score,
			estimated_roi, projected_appointment_increase, projected_revenue_increase,
			recommendations, implementation_plan, benchmark_data, website_audit_results, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err = r.pool.Exec(ctx, query,
		report.ID, report.SubmissionID, report.OverallScore, report.CurrentEfficiencyScore,
		report.PotentialImprovementScore, report.EstimatedROI, report.ProjectedAppointmentIncrease,
		report.ProjectedRevenueIncrease, recommendations, plan, benchmarks, signals, report.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create audit report: %w", err)
	}
	return nil
}

// GetReportBySubmissionID retrieves the report generated for a submission.
func (r *Repo) GetReportBySubmissionID(ctx context.Context, submissionID uuid.UUID) (*domain.Report, error) {
	query := `
		SELECT id, submission_id, overall_score, current_efficiency_score, potential_improvement_score,
			estimated_roi, projected_appointment_increase, projected_revenue_increase,
			recommendations, implementation_plan, benchmark_data, website_audit_results, created_at
		FROM audit_reports
		WHERE submission_id = $1`

	var report domain.Report
	var recommendations, plan, benchmarks, signals []byte
	var createdAt time.Time

	err := r.pool.QueryRow(ctx, query, submissionID).Scan(
		&report.ID, &report.SubmissionID, &report.OverallScore, &report.CurrentEfficiencyScore,
		&report.PotentialImprovementScore, &report.EstimatedROI, &report.ProjectedAppointmentIncrease,
		&report.ProjectedRevenueIncrease, &recommendations, &plan, &benchmarks, &signals, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(reportNotFoundMessage)
		}
		return nil, fmt.Errorf("get audit report: %w", err)
	}

	if err := json.Unmarshal(recommendations, &report.Recommendations); err != nil {
		return nil, fmt.Errorf("unmarshal recommendations: %w", err)
	}
	if err := json.Unmarshal(plan, &report.ImplementationPlan); err != nil {
		return nil, fmt.Errorf("unmarshal implementation plan: %w", err)
	}
	if err := json.Unmarshal(benchmarks, &report.BenchmarkData); err != nil {
		return nil, fmt.Errorf("unmarshal benchmark data: %w", err)
	}
	if signals != nil {
		if err := json.Unmarshal(signals, &report.WebsiteAuditResults); err != nil {
			return nil, fmt.Errorf("unmarshal website audit results: %w", err)
		}
	}
	report.CreatedAt = createdAt

	return &report, nil
}
