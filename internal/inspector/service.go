// Package inspector collects structural conversion signals from
// submitted landing pages. It fetches each page over plain HTTP and
// analyzes the document statically; no scripts are executed.
package inspector

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"audit_funnel_backend/internal/audit/domain"
	"audit_funnel_backend/platform/config"
	"audit_funnel_backend/platform/logger"
)

// maxPages bounds the inspection batch regardless of how many URLs the
// form submitted.
const defaultMaxPages = 3

// Pages larger than this are truncated before parsing.
const maxBodyBytes = 2 << 20

const failedFetchAdvice = "Unable to analyze page - please check URL accessibility"

// Service fetches and analyzes landing pages sequentially.
type Service struct {
	client   *http.Client
	maxPages int
	timeout  time.Duration
	log      *logger.Logger
}

// New creates a page inspector using the configured per-page timeout and
// batch size.
func New(cfg config.InspectorConfig, log *logger.Logger) *Service {
	maxPages := cfg.GetInspectorMaxPages()
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &Service{
		client:   &http.Client{Timeout: cfg.GetInspectorPageTimeout()},
		maxPages: maxPages,
		timeout:  cfg.GetInspectorPageTimeout(),
		log:      log,
	}
}

// Inspect analyzes up to the first maxPages URLs, one at a time. A failed
// fetch degrades to a zeroed signal carrying a single advisory string;
// the batch always completes.
func (s *Service) Inspect(ctx context.Context, urls []string) []domain.WebsiteSignal {
	if len(urls) == 0 {
		return nil
	}
	if len(urls) > s.maxPages {
		urls = urls[:s.maxPages]
	}

	signals := make([]domain.WebsiteSignal, 0, len(urls))
	for _, url := range urls {
		signal, err := s.inspectPage(ctx, url)
		if err != nil {
			s.log.Warn("page inspection failed", "url", url, "error", err)
			signals = append(signals, failedSignal(url))
			continue
		}
		signals = append(signals, signal)
	}
	return signals
}

func (s *Service) inspectPage(ctx context.Context, url string) (domain.WebsiteSignal, error) {
	pageCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(pageCtx, http.MethodGet, url, nil)
	if err != nil {
		return domain.WebsiteSignal{}, err
	}
	req.Header.Set("User-Agent", "AuditFunnelBot/1.0 (+landing page analysis)")

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return domain.WebsiteSignal{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	loadTime := time.Since(start)
	if err != nil {
		return domain.WebsiteSignal{}, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return domain.WebsiteSignal{}, err
	}

	return analyzePage(url, loadTime, doc), nil
}

func failedSignal(url string) domain.WebsiteSignal {
	return domain.WebsiteSignal{
		URL:             url,
		CTAQuality:      domain.CTAQualityPoor,
		Recommendations: []string{failedFetchAdvice},
	}
}
