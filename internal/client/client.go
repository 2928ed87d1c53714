// Package client implements the HTTP client for the analysis service:
// the chat query and the one-shot dataset fetch.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/spendlens/spendlens/internal/domain"
)

// DefaultTimeout bounds a single request when no timeout is configured.
const DefaultTimeout = 60 * time.Second

// maxResponseSize caps the response body read from the service.
const maxResponseSize = 10 * 1024 * 1024

// Client talks to the analysis service over HTTP
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates a client for the analysis service at baseURL
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Query posts the projected transcript to /api/chat and returns the
// service's answer. Network errors, non-2xx statuses, and malformed
// bodies are all reported uniformly as a plain error.
func (c *Client) Query(ctx context.Context, messages []domain.ChatMessage) (*domain.ChatResponse, error) {
	body, err := json.Marshal(domain.ChatRequest{Messages: messages})
	if err != nil {
		return nil, fmt.Errorf("failed to encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("chat request failed: status %d", resp.StatusCode)
	}

	var out domain.ChatResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode chat response: %w", err)
	}

	c.logger.Debug("chat query completed",
		zap.Int("messages", len(messages)),
		zap.Bool("chart", out.Chart != nil),
		zap.Duration("latency", time.Since(start)),
	)
	return &out, nil
}

// FetchDataset retrieves the full dataset from /api/data, infers the
// column schema from the first row once, and validates every subsequent
// row against it.
func (c *Client) FetchDataset(ctx context.Context) ([]domain.Row, domain.Schema, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/data", nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build dataset request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("dataset request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, fmt.Errorf("dataset request failed: status %d", resp.StatusCode)
	}

	var rows []domain.Row
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&rows); err != nil {
		return nil, nil, fmt.Errorf("failed to decode dataset: %w", err)
	}

	schema := domain.InferSchema(rows)
	for i, row := range rows {
		if err := schema.Validate(row); err != nil {
			return nil, nil, fmt.Errorf("dataset row %d: %w", i, err)
		}
	}

	c.logger.Debug("dataset fetched", zap.Int("rows", len(rows)))
	return rows, schema, nil
}
