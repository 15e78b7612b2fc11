package engine

import "audit_funnel_backend/internal/audit/domain"

// BuildPlan returns the 90-day implementation roadmap. The content is
// static and does not vary with the selected recommendations; the
// parameter is accepted for interface stability while the roadmap is a
// one-size-fits-all program.
func BuildPlan(_ []domain.Recommendation) []domain.PlanPhase {
	return []domain.PlanPhase{
		{
			Phase:    1,
			Title:    "Foundation & Quick Wins",
			Duration: "4 weeks",
			Tasks: []string{
				"Set up CRM system and import existing leads",
				"Implement basic email sequences (3-5 touch points)",
				"Create lead capture forms and qualification criteria",
				"Set up basic tracking and reporting",
			},
			ExpectedResults: "Double appointment booking rate, organize existing pipeline",
		},
		{
			Phase:    2,
			Title:    "Scale & Optimize",
			Duration: "4 weeks",
			Tasks: []string{
				"Launch systematic outbound campaigns",
				"Develop and deploy lead magnets",
				"Optimize email sequences based on performance data",
				"Implement advanced lead scoring and routing",
			},
			ExpectedResults: "Triple monthly appointment volume, improve lead quality",
		},
		{
			Phase:    3,
			Title:    "Advanced Automation",
			Duration: "4 weeks",
			Tasks: []string{
				"Deploy AI-powered lead enrichment",
				"Implement advanced nurture sequences",
				"Set up revenue attribution reporting",
				"Create predictable pipeline forecasting",
			},
			ExpectedResults: "Achieve consistent 15-20 appointments monthly, predictable revenue",
		},
	}
}
