package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/unimind/unimind/internal/survey"
)

// Client is the HTTP Scorer implementation.
type Client struct {
	config Config
	http   *http.Client
}

var _ Scorer = (*Client)(nil)

// NewClient creates a Client for the configured prediction service.
func NewClient(cfg Config) *Client {
	return &Client{
		config: cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
	}
}

// PredictURL returns the scoring endpoint URL.
func (c *Client) PredictURL() string {
	return strings.TrimRight(c.config.BaseURL, "/") + "/api/predict"
}

// Score posts the form's external feature vector to /api/predict and
// decodes the validated response.
func (c *Client) Score(ctx context.Context, form survey.Form, token string) (*Result, error) {
	body, err := json.Marshal(form.ExternalPayload())
	if err != nil {
		return nil, fmt.Errorf("marshal feature vector: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.PredictURL(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &ErrTimeout{Err: err}
		}
		return nil, &ErrNetwork{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ErrNetwork{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrServer{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(raw),
		}
	}

	if err := validateResult(raw); err != nil {
		return nil, err
	}

	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, &ErrSchema{Body: raw, Err: err}
	}

	result.ProbabilityPositive = clamp01(result.ProbabilityPositive)
	result.ProbabilityNegative = clamp01(result.ProbabilityNegative)
	return &result, nil
}

// Health probes the service's liveness endpoint. Any failure degrades to
// an offline status rather than an error.
func (c *Client) Health(ctx context.Context) HealthStatus {
	ctx, cancel := context.WithTimeout(ctx, c.config.HealthTimeout)
	defer cancel()

	url := strings.TrimRight(c.config.BaseURL, "/") + "/health"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return HealthStatus{Status: StatusOffline}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return HealthStatus{Status: StatusOffline}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return HealthStatus{Status: StatusOffline}
	}

	var status HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil || status.Status == "" {
		return HealthStatus{Status: StatusOK}
	}
	return status
}

// serverMessage extracts the server-supplied error text from a non-2xx
// body, falling back to a generic message.
func serverMessage(raw []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return "Server error occurred"
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
