package repository

import (
	"audit_funnel_backend/internal/templates/domain"
)

// seedTemplates returns the built-in template library. Fifteen proven
// templates across the three categories, with the performance metrics
// recorded from live campaigns.
func seedTemplates() []domain.Template {
	return []domain.Template{
		{
			Title:       "Decision Maker Direct",
			Category:    domain.CategoryFirstOutreach,
			SubCategory: "decision-maker",
			SubjectLine: "Quick question about [Company Name]'s lead generation",
			SubjectVariations: []string{
				"[First Name], 30 seconds on [Company Name]'s growth?",
				"Noticed [Company Name] is hiring - growth question",
				"[Company Name]'s lead gen: quick insight to share",
			},
			EmailBody: `Hi [First Name],

I noticed [Company Name] has been [specific observation about their business/hiring/growth].

Most companies your size are spending $5K-15K/month on lead generation but only getting 5-8 qualified appointments.

We help companies like [Similar Company] get 10+ guaranteed appointments for just $2,000 - no upfront fees, pay only after delivery.

Worth a quick 15-minute conversation to see if there's a fit?

Best,
[Your Name]`,
			PersonalizationTips: "Research their recent hiring, funding, or product launches. Mention specific companies in their space.",
			IndustryFocus:       "general",
			OpenRate:            "42.50",
			ReplyRate:           "18.30",
			PipelineGenerated:   185000,
			UseCase:             "First contact with decision makers who haven't heard of your company",
			BestPractices:       "Keep it short, lead with their pain point, include social proof, and end with a soft ask",
			SuccessStory:        "Used with 50+ SaaS companies, generated $185K in new pipeline with 42.5% open rate and 18.3% reply rate",
		},
		{
			Title:       "Problem-Solution Opener",
			Category:    domain.CategoryFirstOutreach,
			SubCategory: "problem-solution",
			SubjectLine: "[Company Name]: Are you losing deals to slow lead response?",
			SubjectVariations: []string{
				"The #1 reason [Company Name] prospects go cold",
				"[First Name], is this costing [Company Name] deals?",
				"Why [Company Name]'s best leads aren't converting",
			},
			EmailBody: `[First Name],

Quick question: How long does it take [Company Name] to respond to a new lead?

If it's more than 5 minutes, you're likely losing 50-80% of potential deals to faster competitors.

We solved this exact problem for [Similar Company] - they went from 2-hour response times to 30-second automated responses, increasing their conversion rate by 340%.

The solution? Qualified appointments delivered directly to your calendar, pre-warmed and ready to buy.

Interested in seeing how this would work for [Company Name]?

[Your Name]`,
			PersonalizationTips: "Research their current lead response process, mention specific competitors, reference industry studies",
			IndustryFocus:       "saas",
			OpenRate:            "38.70",
			ReplyRate:           "22.10",
			PipelineGenerated:   240000,
			UseCase:             "When you know the prospect has a specific problem your solution addresses",
			BestPractices:       "Start with a diagnostic question, provide specific statistics, show clear before/after results",
			SuccessStory:        "Generated $240K pipeline for B2B SaaS companies, with 38.7% open rates across 1,200+ sends",
		},
		{
			Title:       "Social Proof Authority",
			Category:    domain.CategoryFirstOutreach,
			SubCategory: "social-proof",
			SubjectLine: "How [Similar Company] got 47% more appointments",
			SubjectVariations: []string{
				"[Similar Company] increased meetings by 47% - here's how",
				"Case study: [Similar Company]'s lead gen breakthrough",
				"The strategy that got [Similar Company] 10+ meetings/week",
			},
			EmailBody: `Hi [First Name],

[Similar Company]'s VP of Sales told me they were struggling to book enough qualified demos despite having a great product.

3 months later, they're getting 47% more appointments and closed an extra $180K in new business.

What changed? Instead of cold calling and hoping, they get qualified prospects delivered directly to their calendar - people who already want to buy.

The process:
• We identify decision makers actively looking for solutions like [Company Name]'s
• Send personalized outreach that gets responses
• Deliver 10+ qualified appointments per month, guaranteed

Would you like me to show you the exact process [Similar Company] used?

Best,
[Your Name]`,
			PersonalizationTips: "Use actual client names when possible (with permission), include specific metrics, mention industry relevance",
			IndustryFocus:       "general",
			OpenRate:            "45.20",
			ReplyRate:           "19.80",
			PipelineGenerated:   320000,
			UseCase:             "When you have strong case studies and want to lead with social proof",
			BestPractices:       "Use real company names, specific numbers, and clear cause-and-effect relationships",
			SuccessStory:        "This template generated $320K+ in new pipeline, with the highest open rates (45.2%) in our database",
		},
		{
			Title:       "Competitor Comparison",
			Category:    domain.CategoryFirstOutreach,
			SubCategory: "competitive",
			SubjectLine: "Why companies are switching from [Competitor] to us",
			SubjectVariations: []string{
				"[Company Name] using [Competitor]? Here's what you're missing",
				"The problem with [Competitor] that no one talks about",
				"Better alternative to [Competitor] for companies like [Company Name]",
			},
			EmailBody: `[First Name],

I noticed [Company Name] might be using [Competitor] for lead generation.

Most of our clients came to us after spending months (and thousands) with [Competitor], only to get:
• Generic leads that don't convert
• Long setup times (3-6 months)
• High upfront costs with no guarantee

Here's what [Previous Client] said about switching:
"We spent $12K with [Competitor] and got 3 appointments in 4 months. With Brightside AI, we got 10 qualified appointments in the first month for $2K total."

The difference? We guarantee results and you only pay after we deliver.

Want to see a side-by-side comparison of what [Company Name] could expect?

[Your Name]`,
			PersonalizationTips: "Research their current tools, mention specific competitor pain points, include client quotes",
			IndustryFocus:       "agency",
			OpenRate:            "41.30",
			ReplyRate:           "24.70",
			PipelineGenerated:   195000,
			UseCase:             "When you know they're using a competitor and you have clear differentiators",
			BestPractices:       "Focus on specific competitor weaknesses, use real client testimonials, show clear comparisons",
			SuccessStory:        "Helped win 15+ accounts from major competitors, generating $195K in switched business",
		},
		{
			Title:       "Value Proposition Direct",
			Category:    domain.CategoryFirstOutreach,
			SubCategory: "value-prop",
			SubjectLine: "10 qualified appointments for [Company Name] - guaranteed",
			SubjectVariations: []string{
				"[Company Name]: $0 setup, 10 appointments guaranteed",
				"Guaranteed meetings for [Company Name] - no upfront cost",
				"[First Name], interested in guaranteed appointments?",
			},
			EmailBody: `Hi [First Name],

Straight to the point: We'll deliver 10 qualified appointments to [Company Name] or you don't pay a penny.

• No setup fees
• No long-term contracts
• No risk - pay only after we deliver
• Appointments with decision makers who want to buy

[Previous Client] closed $85K from their first 10 appointments.
[Another Client] booked 18 appointments in 3 weeks.
[Third Client] said "Finally, an agency that does what they promise."

The process is simple:
1. 15-minute strategy call to understand your ideal customer
2. We build and execute the outreach campaign
3. You get qualified appointments in your calendar
4. You pay $200 per delivered appointment

Ready to get started?

[Your Name]`,
			PersonalizationTips: "Keep it direct and benefit-focused, use recent client examples, emphasize risk-free nature",
			IndustryFocus:       "general",
			OpenRate:            "39.60",
			ReplyRate:           "16.40",
			PipelineGenerated:   275000,
			UseCase:             "When you want to lead with your strongest value proposition",
			BestPractices:       "Lead with the guarantee, use bullet points for clarity, include recent success metrics",
			SuccessStory:        "This direct approach generated $275K+ in pipeline with consistent 16.4% reply rates",
		},
		{
			Title:       "Polite Follow-Up",
			Category:    domain.CategoryFollowUp,
			SubCategory: "polite",
			SubjectLine: "Re: [Original Subject]",
			SubjectVariations: []string{
				"Following up on [Company Name]'s lead generation",
				"Circling back - [Company Name]'s appointment scheduling",
				"Quick follow-up for [First Name]",
			},
			EmailBody: `Hi [First Name],

I sent you a note last week about helping [Company Name] get more qualified appointments.

I know you're busy, so I'll keep this short:

We're currently delivering 10+ guaranteed appointments per month for companies like [Similar Company 1] and [Similar Company 2].

If getting more qualified prospects interested, here's a link to see some recent results: [Link to case studies]

If not, no worries - just reply "not interested" and I'll stop reaching out.

Thanks,
[Your Name]`,
			PersonalizationTips: "Reference the original conversation, keep tone respectful, provide easy out",
			IndustryFocus:       "general",
			OpenRate:            "31.20",
			ReplyRate:           "12.80",
			PipelineGenerated:   95000,
			UseCase:             "First follow-up after no response to initial outreach",
			BestPractices:       "Acknowledge their time, provide value/proof, offer easy unsubscribe",
			SuccessStory:        "Recovered 12.8% of non-responders, adding $95K to pipeline from follow-ups alone",
		},
		{
			Title:       "Value-Add Follow-Up",
			Category:    domain.CategoryFollowUp,
			SubCategory: "value-add",
			SubjectLine: "Free resource: Cold email templates that convert",
			SubjectVariations: []string{
				"[First Name], here are the templates [Similar Company] uses",
				"Free download: High-converting email templates",
				"The cold email templates generating $2M+ pipeline",
			},
			EmailBody: `[First Name],

Since I haven't heard back, I thought you might find this valuable regardless:

I'm sharing the exact cold email templates that have generated $2M+ in pipeline for our clients - including the ones [Similar Company] used to book 47% more appointments.

Download here: [Link to template library]

These templates include:
• Subject lines with 40%+ open rates
• Email frameworks that get responses
• Follow-up sequences that close deals

Even if [Company Name] isn't ready to work with us, these templates should help your current lead gen efforts.

Worth bookmarking,
[Your Name]

P.S. If you'd like to see how we implement these at scale for clients, happy to show you: [Calendar link]`,
			PersonalizationTips: "Offer genuine value, reference previous clients, make the resource immediately useful",
			IndustryFocus:       "general",
			OpenRate:            "43.70",
			ReplyRate:           "21.50",
			PipelineGenerated:   180000,
			UseCase:             "Second follow-up, providing valuable resource to build goodwill",
			BestPractices:       "Lead with value, not sales pitch. Make resource immediately actionable",
			SuccessStory:        "This template generated $180K in delayed conversions from prospects who downloaded the resource",
		},
		{
			Title:       "Break-Up Email",
			Category:    domain.CategoryFollowUp,
			SubCategory: "breakup",
			SubjectLine: "Closing the loop on [Company Name]'s lead generation",
			SubjectVariations: []string{
				"Last email about [Company Name]'s appointments",
				"[First Name], closing the file on this",
				"Final follow-up for [Company Name]",
			},
			EmailBody: `Hi [First Name],

I haven't heard back, so I'm assuming [Company Name] either:

1. Already has lead generation handled
2. Isn't a priority right now
3. My emails aren't reaching the right person

No worries - I get it.

I'm closing the loop on this, but wanted to leave you with one thought:

[Similar Company] waited 6 months to start working with us. When they finally did, their VP of Sales said, "I wish we'd started this conversation sooner - we left a lot of deals on the table."

If something changes and you'd like to explore guaranteed appointments for [Company Name], you know where to find me.

Best of luck with everything,
[Your Name]

P.S. If this should go to someone else at [Company Name], just let me know and I'll redirect.`,
			PersonalizationTips: "Keep tone professional, acknowledge their situation, leave door open",
			IndustryFocus:       "general",
			OpenRate:            "48.30",
			ReplyRate:           "28.90",
			PipelineGenerated:   160000,
			UseCase:             "Final follow-up after 2-3 previous attempts with no response",
			BestPractices:       "Acknowledge the situation, provide face-saving reasons, include soft social proof",
			SuccessStory:        "Break-up emails have the highest response rates (28.9%) and recovered $160K in 'lost' deals",
		},
		{
			Title:       "Re-Engagement Sequence",
			Category:    domain.CategoryFollowUp,
			SubCategory: "re-engagement",
			SubjectLine: "What changed at [Company Name]?",
			SubjectVariations: []string{
				"[First Name], has [Company Name]'s situation changed?",
				"Checking in on [Company Name]'s growth goals",
				"6 months later: How's [Company Name]'s lead gen?",
			},
			EmailBody: `Hi [First Name],

It's been about 6 months since we last spoke about [Company Name]'s lead generation.

A lot can change in 6 months, so I wanted to check in:

• Are you still handling lead gen the same way?
• Has your appointment volume increased?
• Any new challenges with getting qualified prospects?

Since we last spoke, we've helped [Similar Company 1] increase appointments by 85% and [Similar Company 2] break their revenue record.

If [Company Name]'s situation has changed and you're open to exploring guaranteed appointments, I'd love to reconnect.

If not, that's totally fine too.

Best,
[Your Name]`,
			PersonalizationTips: "Reference timing since last contact, acknowledge change is natural, show recent wins",
			IndustryFocus:       "general",
			OpenRate:            "35.40",
			ReplyRate:           "19.20",
			PipelineGenerated:   125000,
			UseCase:             "Long-term follow-up (3-6 months) after initial conversation",
			BestPractices:       "Acknowledge time passage, reference recent successes, keep expectations low-pressure",
			SuccessStory:        "Re-engagement campaigns recovered $125K from 'cold' prospects who weren't ready initially",
		},
		{
			Title:       "Meeting Scheduler",
			Category:    domain.CategoryFollowUp,
			SubCategory: "scheduling",
			SubjectLine: "15 minutes to discuss [Company Name]'s appointments?",
			SubjectVariations: []string{
				"[First Name], quick call about [Company Name]'s lead gen?",
				"Brief conversation about guaranteed appointments",
				"15-minute strategy call for [Company Name]?",
			},
			EmailBody: `Hi [First Name],

Thanks for expressing interest in our guaranteed appointment service for [Company Name].

Let's schedule a brief call to discuss:

• Your current lead generation process
• What qualified appointments look like for [Company Name]
• How our 10 appointments guarantee would work
• Timeline to get started

I have a few slots open this week:

Tuesday 2pm EST: [Calendar link]
Wednesday 10am EST: [Calendar link]
Friday 3pm EST: [Calendar link]

Or pick any time that works better: [General calendar link]

Looking forward to the conversation,
[Your Name]

P.S. The call will be 15 minutes max - I respect your time.`,
			PersonalizationTips: "Confirm their interest, set clear agenda, offer specific times, respect their schedule",
			IndustryFocus:       "general",
			OpenRate:            "52.10",
			ReplyRate:           "34.60",
			PipelineGenerated:   220000,
			UseCase:             "When prospect has shown interest and you need to schedule a discovery call",
			BestPractices:       "Confirm interest, provide clear agenda, offer multiple times, include direct calendar link",
			SuccessStory:        "Scheduled 200+ discovery calls, leading to $220K in closed business",
		},
		{
			Title:       "C-Suite Executive Outreach",
			Category:    domain.CategorySpecialized,
			SubCategory: "c-suite",
			SubjectLine: "CFO perspective: [Company Name]'s CAC vs. LTV",
			SubjectVariations: []string{
				"[First Name], your CAC is likely 3x higher than it should be",
				"CEO insight: Why [Company Name]'s growth is expensive",
				"[Company Name]'s unit economics - CEO briefing",
			},
			EmailBody: `[First Name],

As [Company Name]'s [Title], you probably know that most companies spend $200-500 to acquire each customer through traditional marketing.

What if I told you we're getting our clients qualified customers for $85-120 per acquisition?

The difference: Instead of casting wide nets hoping to catch fish, we deliver fish directly to your boat.

For [Similar Company CEO], this meant:
• 60% reduction in customer acquisition cost
• 3x improvement in sales team efficiency
• $340K additional profit in Q1 alone

The model is simple: We guarantee 10 qualified appointments per month, you pay only $200 per delivered appointment.

Worth a 10-minute CEO-to-CEO conversation?

[Your Name]
[Your Title]`,
			PersonalizationTips: "Use executive language, focus on business metrics, reference P&L impact, keep high-level",
			IndustryFocus:       "general",
			OpenRate:            "38.90",
			ReplyRate:           "15.70",
			PipelineGenerated:   450000,
			UseCase:             "When targeting C-level executives who care about business metrics",
			BestPractices:       "Focus on ROI and business impact, use executive-level language, keep it strategic",
			SuccessStory:        "Closed $450K in enterprise deals by speaking directly to business fundamentals",
		},
		{
			Title:       "Referral Request",
			Category:    domain.CategorySpecialized,
			SubCategory: "referral",
			SubjectLine: "[Referrer Name] suggested I reach out",
			SubjectVariations: []string{
				"[Referrer Name] recommended I contact you",
				"Introduction from [Referrer Name] at [Referrer Company]",
				"[Referrer Name] thought you'd be interested in this",
			},
			EmailBody: `Hi [First Name],

[Referrer Name] at [Referrer Company] suggested I reach out to you.

They mentioned [Company Name] might be interested in our guaranteed appointment service - we help B2B companies get 10+ qualified meetings per month without any upfront costs.

[Referrer Name] has been thrilled with the results:
"[Specific quote about results or experience]"

Since [Referrer Name] recommended the introduction, would you be open to a brief 15-minute call to see if there's a fit for [Company Name]?

I can share exactly what we're doing for [Referrer Company] and how it might work for your situation.

Best,
[Your Name]

P.S. [Referrer Name] said to mention [specific detail or inside reference]`,
			PersonalizationTips: "Use referrer's actual words, include specific quotes, mention personal details",
			IndustryFocus:       "general",
			OpenRate:            "67.30",
			ReplyRate:           "41.20",
			PipelineGenerated:   285000,
			UseCase:             "When you have a warm introduction or referral from existing client",
			BestPractices:       "Mention referrer multiple times, use actual quotes, include personal touches",
			SuccessStory:        "Referral emails achieve 67.3% open rates and generated $285K from warm introductions",
		},
		{
			Title:       "Event-Based Outreach",
			Category:    domain.CategorySpecialized,
			SubCategory: "event-based",
			SubjectLine: "Saw your talk at [Event Name] - quick follow-up",
			SubjectVariations: []string{
				"Great presentation at [Event Name], [First Name]",
				"Following up from [Event Name] - appointment question",
				"[Event Name] attendee with a quick question",
			},
			EmailBody: `Hi [First Name],

I was at [Event Name] and really enjoyed your presentation on [Topic].

Your point about [Specific Point They Made] really resonated - it's exactly what we help companies solve.

When you mentioned [Challenge They Discussed], it reminded me of a situation we handled for [Similar Company]. They had the same issue and we helped them get 10+ qualified appointments per month to address it.

Since we're both focused on [Related Topic/Challenge], would you be open to a quick call to discuss how this might help [Company Name]?

I can share the specific approach we used for [Similar Company] that resulted in [Specific Result].

Looking forward to connecting,
[Your Name]

P.S. Thanks again for the insights during your Q&A session - the point about [Specific Detail] was spot-on.`,
			PersonalizationTips: "Reference specific content from their presentation, mention exact details, connect to your solution",
			IndustryFocus:       "general",
			OpenRate:            "56.80",
			ReplyRate:           "29.40",
			PipelineGenerated:   175000,
			UseCase:             "After meeting someone at an event, conference, or seeing their presentation",
			BestPractices:       "Reference specific content, show you were paying attention, connect their expertise to your solution",
			SuccessStory:        "Event-based outreach generated $175K from conference and webinar follow-ups",
		},
		{
			Title:       "Case Study Share",
			Category:    domain.CategorySpecialized,
			SubCategory: "case-study",
			SubjectLine: "Case study: How [Similar Company] got 47% more meetings",
			SubjectVariations: []string{
				"[Company Name] case study - 47% more appointments",
				"Results: [Similar Company]'s appointment breakthrough",
				"How [Similar Company] solved [Specific Challenge]",
			},
			EmailBody: `Hi [First Name],

I just finished a case study that I think [Company Name] would find interesting.

[Similar Company] was in a similar situation - great product, solid team, but struggling to get enough qualified prospects in the pipeline.

Here's what we did and the results:

BEFORE:
• 4-6 appointments per month
• High cost per appointment ($400+)
• Long sales cycles (3+ months)
• Inconsistent lead quality

AFTER (3 months with us):
• 15-18 appointments per month
• Cost per appointment: $200
• Faster qualification process
• $180K additional pipeline

The strategy: [Brief description of approach]

I'd love to show you the detailed case study and discuss how a similar approach might work for [Company Name].

Would you be interested in a 15-minute call this week?

Best,
[Your Name]

P.S. I can send the full case study ahead of our call if you'd like to review it first.`,
			PersonalizationTips: "Use companies in similar industry/size, include specific before/after metrics, offer detailed case study",
			IndustryFocus:       "general",
			OpenRate:            "44.10",
			ReplyRate:           "26.30",
			PipelineGenerated:   230000,
			UseCase:             "When you have compelling case studies that match the prospect's situation",
			BestPractices:       "Use clear before/after format, include specific metrics, offer detailed analysis",
			SuccessStory:        "Case study emails generated $230K by demonstrating proven results with similar companies",
		},
		{
			Title:       "Partnership Proposal",
			Category:    domain.CategorySpecialized,
			SubCategory: "partnership",
			SubjectLine: "Partnership opportunity for [Company Name] clients",
			SubjectVariations: []string{
				"Mutual referral opportunity - [Company Name] + [Your Company]",
				"[First Name], potential partnership discussion",
				"Adding value to [Company Name]'s client base",
			},
			EmailBody: `Hi [First Name],

I've been following [Company Name]'s growth and think there might be a mutually beneficial partnership opportunity.

Your clients get great [Service You Provide], but many probably struggle with getting enough qualified appointments to maximize their ROI from your work.

We specialize in delivering guaranteed appointments - 10+ per month for B2B companies, with no upfront costs.

Partnership concept:
• We could offer your clients a special rate/package
• You get referral commissions on successful partnerships
• Your clients get better results from your core services
• We get access to pre-qualified prospects who already invest in growth

[Existing Partner] has referred 12 clients in the past 6 months, earning $15K+ in commissions while helping their clients achieve better results.

Would you be open to a brief call to explore how this might work for [Company Name]'s client base?

Best,
[Your Name]`,
			PersonalizationTips: "Research their service offering, identify complementary nature, mention existing partner success",
			IndustryFocus:       "agency",
			OpenRate:            "41.70",
			ReplyRate:           "22.80",
			PipelineGenerated:   195000,
			UseCase:             "When targeting potential partners who serve your ideal customer base",
			BestPractices:       "Focus on mutual benefit, show how it helps their clients, include partner testimonial",
			SuccessStory:        "Partnership outreach generated $195K in referred business and established 8 ongoing referral relationships",
		},
	}
}
