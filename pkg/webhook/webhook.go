package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// HeaderDeliveryID carries an id that stays the same across retries of one Send.
const HeaderDeliveryID = "X-Webhook-ID"

const userAgent = "oneclick-webhook/1.0"

// Sender posts JSON payloads to webhook endpoints with retries.
type Sender struct {
	client *http.Client
}

// NewSender returns a Sender using client, or a pooled default client when nil.
func NewSender(client *http.Client) *Sender {
	if client == nil {
		client = &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &Sender{client: client}
}

// Send marshals data and POSTs it to webhookURL.
//
// Network errors, 5xx and the retryable 4xx codes (408, 425, 429) are
// retried up to the configured limit with backoff waits that honour ctx.
// Other 4xx responses stop immediately with ErrPermanentFailure.
//
//	err := sender.Send(ctx, url, webhook.NewChatMessage("a***@example.com unsubscribed"),
//		webhook.WithMaxRetries(2),
//	)
func (s *Sender) Send(ctx context.Context, webhookURL string, data any, opts ...SendOption) error {
	if err := validateURL(webhookURL); err != nil {
		return err
	}
	payload, err := json.Marshal(data)
	if err != nil {
		return errors.Join(ErrInvalidPayload, err)
	}
	if len(payload) == 0 || string(payload) == "null" {
		return fmt.Errorf("%w: payload cannot be empty", ErrInvalidPayload)
	}

	o := defaultSendOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.deliveryID == "" {
		o.deliveryID = uuid.NewString()
	}

	var lastErr error
	for attempt := 0; attempt <= o.maxRetries; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(o.backoff.NextInterval(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return errors.Join(ErrDeliveryFailed, lastErr, ctx.Err())
			case <-timer.C:
			}
		}

		res := s.attempt(ctx, webhookURL, payload, o)
		res.Attempt = attempt + 1
		if o.onDelivery != nil {
			o.onDelivery(res)
		}
		if res.Err == nil {
			return nil
		}

		lastErr = res.Err
		if isPermanent(res.StatusCode) {
			return fmt.Errorf("%w: %w", ErrPermanentFailure, res.Err)
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrDeliveryFailed, o.maxRetries+1, lastErr)
}

func (s *Sender) attempt(ctx context.Context, webhookURL string, payload []byte, o *sendOptions) DeliveryResult {
	start := time.Now()
	res := DeliveryResult{DeliveryID: o.deliveryID}

	reqCtx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		res.Err = fmt.Errorf("failed to create request: %w", err)
		return res
	}
	for k, v := range o.headers {
		req.Header[k] = v
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set(HeaderDeliveryID, o.deliveryID)

	resp, err := s.client.Do(req)
	res.Duration = time.Since(start)
	if err != nil {
		if errors.Is(reqCtx.Err(), context.DeadlineExceeded) {
			res.Err = fmt.Errorf("%w: %w", ErrTimeout, err)
		} else {
			res.Err = fmt.Errorf("%w: %w", ErrTemporaryFailure, err)
		}
		return res
	}
	defer func() { _ = resp.Body.Close() }()

	res.StatusCode = resp.StatusCode
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := fmt.Sprintf("webhook returned status %d", resp.StatusCode)
		if snippet := strings.TrimSpace(strings.ReplaceAll(string(body), "\n", " ")); snippet != "" {
			if len(snippet) > 200 {
				snippet = snippet[:200] + "..."
			}
			msg += ": " + snippet
		}
		res.Err = errors.New(msg)
	}
	return res
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("%w: URL is required", ErrInvalidURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return errors.Join(ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: only http and https schemes are supported", ErrInvalidURL)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: host is required", ErrInvalidURL)
	}
	return nil
}

func isPermanent(status int) bool {
	if status < 400 || status >= 500 {
		return false
	}
	switch status {
	case http.StatusRequestTimeout, http.StatusTooEarly, http.StatusTooManyRequests:
		return false
	}
	return true
}
