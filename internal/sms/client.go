// Package sms sends text messages through the Twilio REST API.
package sms

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"audit_funnel_backend/platform/config"
	"audit_funnel_backend/platform/logger"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// Client sends SMS messages via Twilio. A nil Client is valid and drops
// messages silently, so callers don't need a configured-or-not branch.
type Client struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	http       *http.Client
	log        *logger.Logger
}

// NewClient creates a Twilio SMS client. Returns nil when Twilio is not
// configured.
func NewClient(cfg config.TwilioConfig, log *logger.Logger) *Client {
	if !cfg.IsTwilioEnabled() {
		return nil
	}

	return &Client{
		accountSID: cfg.GetTwilioAccountSID(),
		authToken:  cfg.GetTwilioAuthToken(),
		from:       cfg.GetTwilioFromNumber(),
		baseURL:    twilioAPIBase,
		http:       &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// SendMessage sends one SMS to the given number.
func (c *Client) SendMessage(ctx context.Context, to string, body string) error {
	if c == nil {
		return nil
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("twilio request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode >= http.StatusBadRequest {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio returned %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	c.log.Info("sms sent", "to", to)
	return nil
}
