package inspector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"audit_funnel_backend/internal/audit/domain"
	"audit_funnel_backend/platform/config"
	"audit_funnel_backend/platform/logger"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse document: %v", err)
	}
	return doc
}

const optimizedPage = `<!DOCTYPE html>
<html>
<head>
  <title>Grow Your Pipeline With Acme Leads</title>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <meta name="description" content="Acme helps B2B teams book more qualified sales appointments every month with proven outbound systems.">
</head>
<body>
  <h1>Book More Sales Appointments</h1>
  <p>Save time and increase revenue with our proven system. Call us at 555-123-4567.</p>
  <form action="/contact"><input type="submit" value="Get Started"></form>
  <button>Book a Demo</button>
  <a href="/free-trial">Start Free Trial</a>
</body>
</html>`

const barePage = `<html><head></head><body><p>Welcome.</p></body></html>`

func TestAnalyzePageOptimized(t *testing.T) {
	sig := analyzePage("https://acme.test", 500*time.Millisecond, parseDoc(t, optimizedPage))

	if !sig.HasContactForm {
		t.Error("contact form not detected")
	}
	if !sig.MobileResponsive {
		t.Error("viewport meta not detected")
	}
	if !sig.HasPhoneNumber {
		t.Error("phone number not detected")
	}
	if !sig.HasValueProp {
		t.Error("value proposition words not detected")
	}
	if sig.CTACount < 2 {
		t.Errorf("cta count = %d, want >= 2", sig.CTACount)
	}
	if sig.CTAQuality != domain.CTAQualityExcellent {
		t.Errorf("cta quality = %q, want excellent", sig.CTAQuality)
	}
	if sig.SEOScore != 100 {
		t.Errorf("seo score = %d, want 100", sig.SEOScore)
	}
	if sig.ConversionScore != 100 {
		t.Errorf("conversion score = %d, want 100", sig.ConversionScore)
	}
	if len(sig.Recommendations) != 0 {
		t.Errorf("unexpected recommendations: %v", sig.Recommendations)
	}
}

func TestAnalyzePageBare(t *testing.T) {
	sig := analyzePage("https://bare.test", 4*time.Second, parseDoc(t, barePage))

	if sig.CTACount != 0 || sig.CTAQuality != domain.CTAQualityPoor {
		t.Errorf("cta = %d/%q, want 0/poor", sig.CTACount, sig.CTAQuality)
	}
	if sig.SEOScore != 0 {
		t.Errorf("seo score = %d, want 0", sig.SEOScore)
	}
	if sig.ConversionScore != 0 {
		t.Errorf("conversion score = %d, want 0", sig.ConversionScore)
	}

	wantAdvice := []string{
		"Optimize page load speed - currently taking over 3 seconds",
		"Add more clear call-to-action buttons to increase conversions",
		"Add a contact form to capture lead information",
		"Implement responsive design for mobile users",
		"Strengthen value proposition messaging on the page",
		"Improve SEO elements (title tags, meta descriptions, headings)",
	}
	if len(sig.Recommendations) != len(wantAdvice) {
		t.Fatalf("got %d recommendations, want %d: %v", len(sig.Recommendations), len(wantAdvice), sig.Recommendations)
	}
	for i, want := range wantAdvice {
		if sig.Recommendations[i] != want {
			t.Errorf("recommendation %d = %q, want %q", i, sig.Recommendations[i], want)
		}
	}
}

func TestAnalyzePageSEOTitleBounds(t *testing.T) {
	cases := []struct {
		name  string
		title string
		want  int
	}{
		{"good length", "Acme B2B Lead Generation Services", 25},
		{"too short", "Acme", 0},
		{"too long", strings.Repeat("Acme Lead Generation ", 5), 0},
	}
	for _, tc := range cases {
		html := "<html><head><title>" + tc.title + "</title></head><body></body></html>"
		sig := analyzePage("https://t.test", time.Second, parseDoc(t, html))
		if sig.SEOScore != tc.want {
			t.Errorf("%s: seo score = %d, want %d", tc.name, sig.SEOScore, tc.want)
		}
	}
}

func newTestInspector(timeout time.Duration) *Service {
	cfg := &config.Config{InspectorPageTimeout: timeout, InspectorMaxPages: 3}
	return New(cfg, logger.New("development"))
}

func TestInspectLimitsBatchAndDegradesFailures(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(optimizedPage))
	}))
	defer server.Close()

	urls := []string{
		server.URL,
		"http://127.0.0.1:1/unreachable",
		server.URL,
		server.URL + "/ignored-fourth",
	}

	signals := newTestInspector(5 * time.Second).Inspect(context.Background(), urls)
	if len(signals) != 3 {
		t.Fatalf("got %d signals, want 3 (batch limit)", len(signals))
	}

	failed := signals[1]
	if failed.ConversionScore != 0 || failed.SEOScore != 0 || failed.CTACount != 0 {
		t.Errorf("failed fetch should produce zeroed metrics: %+v", failed)
	}
	if len(failed.Recommendations) != 1 || failed.Recommendations[0] != failedFetchAdvice {
		t.Errorf("failed fetch advice = %v", failed.Recommendations)
	}
	if failed.URL != "http://127.0.0.1:1/unreachable" {
		t.Errorf("failed signal url = %q", failed.URL)
	}

	if signals[0].ConversionScore != 100 {
		t.Errorf("healthy page conversion score = %d, want 100", signals[0].ConversionScore)
	}
}

func TestInspectEmptyInput(t *testing.T) {
	if got := newTestInspector(time.Second).Inspect(context.Background(), nil); got != nil {
		t.Errorf("Inspect(nil) = %v, want nil", got)
	}
}
