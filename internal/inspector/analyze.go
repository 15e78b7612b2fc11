package inspector

import (
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"audit_funnel_backend/internal/audit/domain"
)

const ctaSelector = `button, a[href*="contact"], a[href*="demo"], a[href*="trial"], a[href*="signup"], input[type="submit"]`

var strongCTAWords = []string{"get started", "free trial", "demo", "contact", "book", "schedule", "download"}

var valueWords = []string{"save", "increase", "improve", "reduce", "faster", "better", "solution", "results"}

var (
	phonePattern = regexp.MustCompile(`\b\d{3}-\d{3}-\d{4}\b|\(\d{3}\)\s*\d{3}-\d{4}`)
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
)

const slowLoadThreshold = 3 * time.Second

// analyzePage derives the conversion signal for one fetched document.
// Static analysis counts every CTA element in the markup; hidden
// elements are not filtered out.
func analyzePage(url string, loadTime time.Duration, doc *goquery.Document) domain.WebsiteSignal {
	pageText := doc.Find("body").Text()
	lowerText := strings.ToLower(pageText)

	ctaCount := 0
	hasStrongCTA := false
	doc.Find(ctaSelector).Each(func(_ int, sel *goquery.Selection) {
		ctaCount++
		text := strings.ToLower(strings.TrimSpace(sel.Text()))
		for _, word := range strongCTAWords {
			if strings.Contains(text, word) {
				hasStrongCTA = true
				break
			}
		}
	})

	ctaQuality := domain.CTAQualityGood
	switch {
	case ctaCount == 0:
		ctaQuality = domain.CTAQualityPoor
	case ctaCount > 3 || hasStrongCTA:
		ctaQuality = domain.CTAQualityExcellent
	}

	hasContactForm := doc.Find("form").Length() > 0
	hasPhoneNumber := phonePattern.MatchString(pageText)
	hasEmailAddress := emailPattern.MatchString(pageText)
	mobileResponsive := doc.Find(`meta[name="viewport"]`).Length() > 0

	hasValueProp := false
	for _, word := range valueWords {
		if strings.Contains(lowerText, word) {
			hasValueProp = true
			break
		}
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	metaDescription, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	h1Count := doc.Find("h1").Length()

	seoScore := 0
	if len(title) > 10 && len(title) < 60 {
		seoScore += 25
	}
	if len(metaDescription) > 50 && len(metaDescription) < 160 {
		seoScore += 25
	}
	if h1Count == 1 {
		seoScore += 25
	}
	if hasPhoneNumber || hasEmailAddress {
		seoScore += 25
	}

	loadTimeMs := int(loadTime.Milliseconds())
	slow := loadTime > slowLoadThreshold

	var recommendations []string
	if slow {
		recommendations = append(recommendations, "Optimize page load speed - currently taking over 3 seconds")
	}
	if ctaCount < 2 {
		recommendations = append(recommendations, "Add more clear call-to-action buttons to increase conversions")
	}
	if !hasContactForm {
		recommendations = append(recommendations, "Add a contact form to capture lead information")
	}
	if !mobileResponsive {
		recommendations = append(recommendations, "Implement responsive design for mobile users")
	}
	if !hasValueProp {
		recommendations = append(recommendations, "Strengthen value proposition messaging on the page")
	}
	if seoScore < 75 {
		recommendations = append(recommendations, "Improve SEO elements (title tags, meta descriptions, headings)")
	}

	conversionScore := 0
	if hasContactForm {
		conversionScore += 20
	}
	if ctaCount >= 2 {
		conversionScore += 20
	}
	if hasPhoneNumber || hasEmailAddress {
		conversionScore += 15
	}
	if mobileResponsive {
		conversionScore += 15
	}
	if !slow {
		conversionScore += 15
	}
	if hasValueProp {
		conversionScore += 15
	}

	return domain.WebsiteSignal{
		URL:              url,
		PageLoadTimeMs:   loadTimeMs,
		MobileResponsive: mobileResponsive,
		HasContactForm:   hasContactForm,
		CTACount:         ctaCount,
		CTAQuality:       ctaQuality,
		HasPhoneNumber:   hasPhoneNumber,
		HasEmailAddress:  hasEmailAddress,
		ContentLength:    len(pageText),
		HasValueProp:     hasValueProp,
		SEOScore:         seoScore,
		Recommendations:  recommendations,
		ConversionScore:  conversionScore,
	}
}
