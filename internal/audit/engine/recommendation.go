package engine

import (
	"fmt"
	"math"

	"audit_funnel_backend/internal/audit/domain"
)

// Selection caps per priority band.
const (
	maxHighRecommendations   = 3
	maxMediumRecommendations = 3
	maxLowRecommendations    = 2
)

// ruleContext is the precomputed view of a submission that rule
// predicates evaluate against.
type ruleContext struct {
	sub   *domain.Submission
	stats signalStats
}

// rule is one entry of the recommendation catalog. Catalog order is the
// tie-breaker within a priority band; predicates are independent and not
// mutually exclusive.
type rule struct {
	when  func(rc ruleContext) bool
	build func(rc ruleContext) domain.Recommendation
}

func static(r domain.Recommendation) func(ruleContext) domain.Recommendation {
	return func(ruleContext) domain.Recommendation { return r }
}

// catalog is the fixed, ordered recommendation rule set.
var catalog = []rule{
	{
		when: func(rc ruleContext) bool { return !rc.sub.HasEmailSequences },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityHigh,
			Category:        "Email Automation",
			Title:           "Implement Multi-Touch Email Sequences",
			Description:     "Set up automated follow-up sequences to nurture prospects who don't respond to initial outreach. This alone can increase response rates by 250%.",
			TimeToImplement: "2-3 weeks",
			EstimatedImpact: "+150% appointment bookings",
			Tools:           []string{"HubSpot", "Outreach.io", "Apollo", "Lemlist"},
		}),
	},
	{
		when: func(rc ruleContext) bool { return !rc.sub.HasCRM },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityHigh,
			Category:        "Lead Management",
			Title:           "Deploy CRM System",
			Description:     "Implement a CRM to track prospects, manage pipeline, and prevent leads from falling through cracks. Essential for scaling beyond $1M ARR.",
			TimeToImplement: "1-2 weeks",
			EstimatedImpact: "+80% lead conversion",
			Tools:           []string{"HubSpot CRM", "Pipedrive", "Salesforce", "Close"},
		}),
	},
	{
		when: func(rc ruleContext) bool { return rc.sub.TargetingClaritySum() < 4 },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityHigh,
			Category:        "Target Audience Optimization",
			Title:           "Define Your Ideal Customer Profile (ICP)",
			Description:     "You lack clarity on your target audience. Define specific industries, company sizes, and decision-maker roles to improve messaging and targeting precision by 300%.",
			TimeToImplement: "1-2 weeks",
			EstimatedImpact: "+200% email response rates",
			Tools:           []string{"Apollo", "ZoomInfo", "Clay", "LinkedIn Sales Navigator"},
		}),
	},
	{
		when: func(rc ruleContext) bool { return rc.sub.Appointments() < 15 },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityHigh,
			Category:        "Lead Generation Scale",
			Title:           "Scale Appointment Generation",
			Description:     "Your current appointment volume is below industry benchmarks. Implement systematic outbound processes to reach 15-25 appointments monthly.",
			TimeToImplement: "3-4 weeks",
			EstimatedImpact: "+200% appointment volume",
			Tools:           []string{"Brightside AI", "Apollo", "ZoomInfo", "Clay"},
		}),
	},
	{
		when: func(rc ruleContext) bool { return len(rc.sub.CurrentValueProps) < 2 },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityMedium,
			Category:        "Value Proposition",
			Title:           "Strengthen Value Proposition",
			Description:     "Develop clear, compelling value propositions that differentiate you from competitors. Strong value props can double email response rates.",
			TimeToImplement: "2-3 weeks",
			EstimatedImpact: "+120% email responses",
			Tools:           []string{"StoryBrand Framework", "Value Prop Canvas", "Customer Interviews"},
		}),
	},
	{
		when: func(rc ruleContext) bool { return len(rc.sub.CompetitiveAdvantages) < 2 },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityMedium,
			Category:        "Competitive Positioning",
			Title:           "Define Competitive Advantages",
			Description:     "Identify and articulate what makes you unique versus competitors. Clear positioning improves win rates by 40%.",
			TimeToImplement: "1-2 weeks",
			EstimatedImpact: "+40% closing rate",
			Tools:           []string{"Competitive Analysis", "SWOT Framework", "Battle Cards"},
		}),
	},
	{
		when: func(rc ruleContext) bool { return !rc.sub.HasQualificationProcess() },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityMedium,
			Category:        "Sales Process",
			Title:           "Implement Lead Qualification Framework",
			Description:     "Deploy systematic lead qualification (BANT/MEDDIC) to focus on highest-value prospects and improve conversion rates.",
			TimeToImplement: "1-2 weeks",
			EstimatedImpact: "+60% sales efficiency",
			Tools:           []string{"BANT Framework", "MEDDIC", "Custom Scoring Models"},
		}),
	},
	{
		when: func(rc ruleContext) bool { return len(rc.sub.AnalyticsSetup) < 2 },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityMedium,
			Category:        "Analytics & Tracking",
			Title:           "Implement Revenue Attribution",
			Description:     "Track which marketing channels and campaigns generate the highest-value customers. Essential for optimizing marketing spend and scaling what works.",
			TimeToImplement: "1-2 weeks",
			EstimatedImpact: "+35% marketing ROI",
			Tools:           []string{"Google Analytics 4", "HubSpot Attribution", "Salesforce Reports", "ChartMogul"},
		}),
	},
	{
		when: func(rc ruleContext) bool { return len(rc.sub.PrimaryContentFormats) < 2 },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityMedium,
			Category:        "Content Strategy",
			Title:           "Develop Multi-Channel Content Strategy",
			Description:     "Create valuable content across multiple formats (blogs, videos, templates) to build authority and capture more inbound leads.",
			TimeToImplement: "3-4 weeks",
			EstimatedImpact: "+150% inbound leads",
			Tools:           []string{"ConvertKit", "Leadpages", "Unbounce", "Loom", "Canva"},
		}),
	},
	{
		when: func(rc ruleContext) bool { return rc.stats.count > 0 && rc.stats.avgConversionScore < 50 },
		build: func(rc ruleContext) domain.Recommendation {
			return domain.Recommendation{
				Priority:        domain.PriorityHigh,
				Category:        "Website Conversion",
				Title:           "Critical Website Conversion Optimization",
				Description:     fmt.Sprintf("Your landing pages scored %d/100 for conversion optimization. This requires immediate attention to capture more leads from your traffic.", int(math.Round(rc.stats.avgConversionScore))),
				TimeToImplement: "2-3 weeks",
				EstimatedImpact: "+200% website conversions",
				Tools:           []string{"Unbounce", "Leadpages", "Hotjar", "Google Optimize"},
			}
		},
	},
	{
		when: func(rc ruleContext) bool { return rc.stats.count > 0 && rc.stats.hasSlowPages },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityMedium,
			Category:        "Page Speed Optimization",
			Title:           "Improve Page Load Speed",
			Description:     "Your pages are loading slower than 3 seconds, which significantly impacts conversion rates. Fast-loading pages convert 2-3x better.",
			TimeToImplement: "1-2 weeks",
			EstimatedImpact: "+40% conversion rate",
			Tools:           []string{"GTmetrix", "PageSpeed Insights", "CloudFlare", "WP Rocket"},
		}),
	},
	{
		when: func(rc ruleContext) bool {
			return rc.stats.count > 0 && (rc.stats.hasWeakCTAs || rc.stats.lacksContactForms)
		},
		build: static(domain.Recommendation{
			Priority:        domain.PriorityMedium,
			Category:        "Lead Capture Optimization",
			Title:           "Strengthen Call-to-Action Elements",
			Description:     "Your pages lack sufficient call-to-action buttons or contact forms. Adding clear CTAs can double your lead capture rate.",
			TimeToImplement: "1 week",
			EstimatedImpact: "+120% lead capture",
			Tools:           []string{"Typeform", "ConvertKit", "Leadpages", "Calendly"},
		}),
	},
	{
		when: func(rc ruleContext) bool { return rc.stats.count > 0 && rc.stats.hasPoorSEO },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityLow,
			Category:        "SEO Optimization",
			Title:           "Improve Search Engine Optimization",
			Description:     "Your pages need better SEO elements (title tags, meta descriptions, headings) to improve organic traffic and credibility.",
			TimeToImplement: "1-2 weeks",
			EstimatedImpact: "+30% organic traffic",
			Tools:           []string{"Yoast SEO", "SEMrush", "Ahrefs", "Google Search Console"},
		}),
	},
	{
		when: func(rc ruleContext) bool { return rc.stats.count > 0 && rc.stats.notMobileOptimized },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityLow,
			Category:        "Mobile Optimization",
			Title:           "Implement Mobile-First Design",
			Description:     "Your pages are not optimized for mobile users, who represent 50%+ of website traffic. Mobile optimization is essential for conversions.",
			TimeToImplement: "2-3 weeks",
			EstimatedImpact: "+60% mobile conversions",
			Tools:           []string{"Bootstrap", "Tailwind CSS", "WordPress Mobile Themes", "AMP"},
		}),
	},
	{
		// Fallback when the site audit was requested but produced no
		// signals and the self-reported conversion rate is poor.
		when: func(rc ruleContext) bool {
			if rc.stats.count > 0 || !rc.sub.EnableWebsiteAudit {
				return false
			}
			rate := 0.0
			if rc.sub.CurrentWebsiteConversionRate != nil {
				rate = *rc.sub.CurrentWebsiteConversionRate
			}
			return rate < 3
		},
		build: static(domain.Recommendation{
			Priority:        domain.PriorityMedium,
			Category:        "Website Optimization",
			Title:           "Optimize Website Conversion Rate",
			Description:     "Your self-reported website conversion rate is below industry average. Focus on improving user experience and lead capture elements.",
			TimeToImplement: "2-3 weeks",
			EstimatedImpact: "+80% website conversions",
			Tools:           []string{"Unbounce", "Optimizely", "Hotjar", "Google Optimize"},
		}),
	},
	{
		when: func(rc ruleContext) bool { return len(rc.sub.SalesEnablementTools) < 2 },
		build: static(domain.Recommendation{
			Priority:        domain.PriorityLow,
			Category:        "Sales Enablement",
			Title:           "Deploy Sales Enablement Tools",
			Description:     "Equip your sales team with better tools for prospecting, engagement, and closing to improve efficiency and results.",
			TimeToImplement: "2-3 weeks",
			EstimatedImpact: "+25% sales productivity",
			Tools:           []string{"Gong", "Outreach", "PandaDoc", "Calendly"},
		}),
	},
}

// Recommend evaluates the catalog against the submission and selects a
// priority-stratified subset: the first 3 high, 3 medium and 2 low
// matches in catalog order, concatenated high to low.
func Recommend(sub *domain.Submission, signals []domain.WebsiteSignal) []domain.Recommendation {
	rc := ruleContext{sub: sub, stats: aggregateSignals(signals)}

	var matched []domain.Recommendation
	for _, r := range catalog {
		if r.when(rc) {
			matched = append(matched, r.build(rc))
		}
	}

	high := filterByPriority(matched, domain.PriorityHigh, maxHighRecommendations)
	medium := filterByPriority(matched, domain.PriorityMedium, maxMediumRecommendations)
	low := filterByPriority(matched, domain.PriorityLow, maxLowRecommendations)

	selected := make([]domain.Recommendation, 0, len(high)+len(medium)+len(low))
	selected = append(selected, high...)
	selected = append(selected, medium...)
	selected = append(selected, low...)
	return selected
}

func filterByPriority(recs []domain.Recommendation, p domain.Priority, limit int) []domain.Recommendation {
	var out []domain.Recommendation
	for _, r := range recs {
		if r.Priority == p {
			out = append(out, r)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}
