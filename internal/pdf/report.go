package pdf

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"audit_funnel_backend/internal/audit/domain"
	"audit_funnel_backend/internal/audit/ports"
)

// Renderer renders audit reports to PDF through Gotenberg.
type Renderer struct {
	client *GotenbergClient
	tmpl   *template.Template
}

// NewRenderer creates a report renderer backed by the given Gotenberg client.
func NewRenderer(client *GotenbergClient) *Renderer {
	return &Renderer{
		client: client,
		tmpl:   reportTemplate(),
	}
}

type reportView struct {
	CompanyName          string
	Industry             string
	CompanySize          string
	Website              string
	GeneratedOn          string
	OverallScore         int
	ROI                  string
	AppointmentIncrease  string
	RevenueIncrease      string
	Recommendations      []domain.Recommendation
	RecommendationsCount int
	ImplementationPlan   []domain.PlanPhase
}

// RenderPDF builds the report document and converts it to PDF.
func (r *Renderer) RenderPDF(ctx context.Context, sub *domain.Submission, report *domain.Report) ([]byte, error) {
	html, err := r.renderHTML(sub, report, time.Now())
	if err != nil {
		return nil, err
	}
	pdf, err := r.client.ConvertHTML(ctx, html, ReportOpts())
	if err != nil {
		return nil, fmt.Errorf("convert report to pdf: %w", err)
	}
	return pdf, nil
}

func (r *Renderer) renderHTML(sub *domain.Submission, report *domain.Report, now time.Time) ([]byte, error) {
	view := reportView{
		CompanyName:          sub.CompanyName,
		Industry:             sub.Industry,
		CompanySize:          sub.CompanySize,
		Website:              derefOrEmpty(sub.Website),
		GeneratedOn:          now.Format("January 2, 2006"),
		OverallScore:         report.OverallScore,
		ROI:                  formatMetric(report.EstimatedROI, "$%s", true),
		AppointmentIncrease:  formatMetric(report.ProjectedAppointmentIncrease, "+%s%%", false),
		RevenueIncrease:      formatMetric(report.ProjectedRevenueIncrease, "+%s%%", false),
		Recommendations:      report.Recommendations,
		RecommendationsCount: len(report.Recommendations),
		ImplementationPlan:   report.ImplementationPlan,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render report template: %w", err)
	}
	return buf.Bytes(), nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// formatMetric formats a projection metric, falling back to N/A for zero
// values. Money values get thousands separators.
func formatMetric(value int, pattern string, grouped bool) string {
	if value == 0 {
		return "N/A"
	}
	s := fmt.Sprintf("%d", value)
	if grouped {
		s = groupThousands(s)
	}
	return fmt.Sprintf(pattern, s)
}

func groupThousands(digits string) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	n := len(digits)
	for i, ch := range digits {
		if i > 0 && (n-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

func reportTemplate() *template.Template {
	funcs := template.FuncMap{
		"upper": func(v any) string { return strings.ToUpper(fmt.Sprint(v)) },
	}
	return template.Must(template.New("report").Funcs(funcs).Parse(reportHTML))
}

const reportHTML = `<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Lead Generation Audit Report - {{.CompanyName}}</title>
  <style>
    body {
      font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
      line-height: 1.6;
      color: #1f2937;
      max-width: 800px;
      margin: 0 auto;
      padding: 40px 20px;
    }
    .header {
      text-align: center;
      margin-bottom: 40px;
      border-bottom: 3px solid #3b82f6;
      padding-bottom: 20px;
    }
    .company-name {
      font-size: 2.5rem;
      font-weight: bold;
      color: #1e40af;
      margin-bottom: 10px;
    }
    .report-title {
      font-size: 1.8rem;
      color: #6b7280;
      margin-bottom: 10px;
    }
    .date {
      color: #9ca3af;
      font-size: 1rem;
    }
    .score-section {
      background: linear-gradient(135deg, #3b82f6 0%, #1e40af 100%);
      color: white;
      padding: 30px;
      border-radius: 12px;
      text-align: center;
      margin: 30px 0;
    }
    .score-number {
      font-size: 4rem;
      font-weight: bold;
      margin-bottom: 10px;
    }
    .score-label {
      font-size: 1.2rem;
      opacity: 0.9;
    }
    .metrics-grid {
      display: grid;
      grid-template-columns: repeat(2, 1fr);
      gap: 20px;
      margin: 30px 0;
    }
    .metric-card {
      border: 1px solid #e5e7eb;
      border-radius: 8px;
      padding: 20px;
      text-align: center;
    }
    .metric-value {
      font-size: 2rem;
      font-weight: bold;
      color: #059669;
      margin-bottom: 5px;
    }
    .metric-label {
      color: #6b7280;
      font-size: 0.9rem;
    }
    .section {
      margin: 40px 0;
    }
    .section-title {
      font-size: 1.5rem;
      font-weight: bold;
      color: #1e40af;
      margin-bottom: 20px;
      border-left: 4px solid #3b82f6;
      padding-left: 15px;
    }
    .recommendation {
      border: 1px solid #e5e7eb;
      border-radius: 8px;
      padding: 20px;
      margin-bottom: 15px;
    }
    .rec-priority {
      display: inline-block;
      padding: 4px 12px;
      border-radius: 20px;
      font-size: 0.8rem;
      font-weight: bold;
      margin-bottom: 10px;
    }
    .priority-high { background: #fef2f2; color: #dc2626; }
    .priority-medium { background: #fffbeb; color: #d97706; }
    .priority-low { background: #f0fdf4; color: #059669; }
    .rec-title {
      font-weight: bold;
      font-size: 1.1rem;
      margin-bottom: 8px;
    }
    .rec-description {
      color: #6b7280;
      margin-bottom: 10px;
    }
    .rec-impact {
      font-size: 0.9rem;
      color: #059669;
      font-weight: 500;
    }
    .implementation-item {
      display: flex;
      align-items: center;
      padding: 15px;
      border: 1px solid #e5e7eb;
      border-radius: 8px;
      margin-bottom: 10px;
    }
    .timeline {
      background: #3b82f6;
      color: white;
      padding: 4px 12px;
      border-radius: 20px;
      font-size: 0.8rem;
      font-weight: bold;
      margin-right: 15px;
    }
    .task-title {
      font-weight: 500;
      flex-grow: 1;
    }
  </style>
</head>
<body>
  <div class="header">
    <div class="company-name">{{.CompanyName}}</div>
    <div class="report-title">Lead Generation Audit Report</div>
    <div class="date">Generated on {{.GeneratedOn}}</div>
  </div>

  <div class="score-section">
    <div class="score-number">{{.OverallScore}}</div>
    <div class="score-label">Overall Lead Generation Score</div>
  </div>

  <div class="metrics-grid">
    <div class="metric-card">
      <div class="metric-value">{{.ROI}}</div>
      <div class="metric-label">Estimated ROI (12 months)</div>
    </div>
    <div class="metric-card">
      <div class="metric-value">{{.AppointmentIncrease}}</div>
      <div class="metric-label">Projected Appointment Increase</div>
    </div>
    <div class="metric-card">
      <div class="metric-value">{{.RevenueIncrease}}</div>
      <div class="metric-label">Projected Revenue Increase</div>
    </div>
    <div class="metric-card">
      <div class="metric-value">{{.RecommendationsCount}}</div>
      <div class="metric-label">Key Recommendations</div>
    </div>
  </div>

  <div class="section">
    <div class="section-title">Key Recommendations</div>
    {{if .Recommendations}}{{range .Recommendations}}
    <div class="recommendation">
      <div class="rec-priority priority-{{.Priority}}">{{upper .Priority}} PRIORITY</div>
      <div class="rec-title">{{.Title}}</div>
      <div class="rec-description">{{.Description}}</div>
      <div class="rec-impact">Expected Impact: {{.EstimatedImpact}}</div>
    </div>
    {{end}}{{else}}<p>No recommendations available.</p>{{end}}
  </div>

  <div class="section">
    <div class="section-title">90-Day Implementation Plan</div>
    {{if .ImplementationPlan}}{{range .ImplementationPlan}}
    <div class="implementation-item">
      <div class="timeline">Phase {{.Phase}}</div>
      <div class="task-title">{{.Title}} ({{.Duration}})</div>
    </div>
    {{end}}{{else}}<p>No implementation plan available.</p>{{end}}
  </div>

  <div class="section">
    <div class="section-title">About This Report</div>
    <p>This audit was generated using Brightside AI's proprietary lead generation analysis system. The recommendations are based on industry best practices and your specific business context.</p>
    <p><strong>Company:</strong> {{.CompanyName}}</p>
    <p><strong>Industry:</strong> {{.Industry}}</p>
    <p><strong>Company Size:</strong> {{.CompanySize}}</p>
    <p><strong>Website:</strong> {{.Website}}</p>
  </div>
</body>
</html>
`

var _ ports.ReportRenderer = (*Renderer)(nil)
