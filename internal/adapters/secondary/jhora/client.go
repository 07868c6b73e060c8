package jhora

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/dhanmoti/vedic-chart-backend-2/internal/domain"
)

const (
	ComputeChartEndpoint     = "horoscope/chart"
	ComputeNakshatraEndpoint = "horoscope/nakshatra"
	HealthzEndpoint          = "health"
)

// truncateString shortens upstream bodies for logs and error messages
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client talks to the JHora compute engine (the sidecar wrapping PyJHora
// and the Swiss Ephemeris). All astronomy happens on the other side of it.
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient creates an engine client
func NewClient(cfg *Config, log *slog.Logger) *Client {
	transport := &http.Transport{}

	if cfg.ShouldSkipSSL() {
		transport.TLSClientConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}

	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
		Log: log,
	}
}

// buildURL joins BaseURL, ApiVersion and endpoint
func (c *Client) buildURL(endpoint string) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")
	return baseURL + "/" + path.Join(c.cfg.ApiVersion, endpoint)
}

// setHeaders sets the standard request headers
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.ApiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)
	}
}

// post sends a JSON payload and returns the response body on HTTP 200
func (c *Client) post(ctx context.Context, endpoint string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal engine request: %w", err)
	}

	url := c.buildURL(endpoint)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to build engine request: %w", err)
	}

	c.setHeaders(httpReq)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("engine request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read engine response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("jhora engine returned non-200 status",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("jhora engine error [endpoint=%s, status=%d]: %s",
			endpoint, resp.StatusCode, truncateString(string(body), 500))
	}

	return body, nil
}

// ComputeChart computes raw placements, divisional charts and house indices
func (c *Client) ComputeChart(ctx context.Context, birth domain.BirthData) (*domain.RawChart, error) {
	body, err := c.post(ctx, ComputeChartEndpoint, chartRequest(birth))
	if err != nil {
		return nil, err
	}

	var chartResp ChartResponse
	if err := json.Unmarshal(body, &chartResp); err != nil {
		c.Log.Debug("failed to unmarshal engine chart response",
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("jhora engine chart unmarshal failed: %w", err)
	}

	return &domain.RawChart{
		Placements:   chartResp.Placements,
		Charts:       chartResp.Charts,
		HouseIndices: chartResp.HouseIndices,
	}, nil
}

// ComputeNakshatra computes the nakshatra record of a single body
func (c *Client) ComputeNakshatra(ctx context.Context, birth domain.BirthData, bodyName string) (*domain.Nakshatra, error) {
	req := NakshatraRequest{
		ChartRequest: chartRequest(birth),
		Body:         bodyName,
	}

	body, err := c.post(ctx, ComputeNakshatraEndpoint, req)
	if err != nil {
		return nil, err
	}

	var nakResp NakshatraResponse
	if err := json.Unmarshal(body, &nakResp); err != nil {
		c.Log.Debug("failed to unmarshal engine nakshatra response",
			"error", err,
			"body", bodyName,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("jhora engine nakshatra unmarshal failed [body=%s]: %w", bodyName, err)
	}

	return &domain.Nakshatra{
		Name: nakResp.Name,
		Pada: nakResp.Pada,
		Lord: nakResp.Lord,
	}, nil
}

// Healthz probes the engine health endpoint
func (c *Client) Healthz(ctx context.Context) error {
	url := strings.TrimSuffix(c.cfg.BaseURL, "/") + "/" + HealthzEndpoint

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build engine health request: %w", err)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("engine health request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("jhora engine unhealthy [status=%d]", resp.StatusCode)
	}

	return nil
}

func chartRequest(birth domain.BirthData) ChartRequest {
	b := birth.Normalized()
	return ChartRequest{
		DOB:       b.DOB,
		Time:      b.Time,
		Latitude:  b.Latitude,
		Longitude: b.Longitude,
		Timezone:  b.Timezone,
		Language:  b.Language,
	}
}
