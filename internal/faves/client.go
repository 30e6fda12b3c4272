package faves

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"chembench/internal/ratelimit"
)

// DefaultTimeout bounds a single classification call.
const DefaultTimeout = 30 * time.Second

// profileTool is the MCP tool the benchmark exercises.
const profileTool = "get_molecule_profile"

// HTTPDoer abstracts the HTTP client so tests can inject fakes.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the compliance service's molecule-profile endpoint.
type Client struct {
	baseURL string
	apiKey  string
	timeout time.Duration
	pacer   ratelimit.Pacer
	client  HTTPDoer
}

// NewClient constructs a classification client. The API key is optional; when
// empty no X-API-Key header is sent. Zero timeout and nil pacer/client get
// defaults.
func NewClient(baseURL, apiKey string, timeout time.Duration, pacer ratelimit.Pacer, client HTTPDoer) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("classifier base url is required")
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if pacer == nil {
		pacer = ratelimit.NoopPacer
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		timeout: timeout,
		pacer:   pacer,
		client:  client,
	}, nil
}

// Classify submits a structure and returns the service's verdict. Faults are
// returned as errors whose text is the observation's error field: the caller
// records them and continues the run.
func (c *Client) Classify(ctx context.Context, structureID string) (Verdict, error) {
	if strings.TrimSpace(structureID) == "" {
		return Verdict{}, fmt.Errorf("structure id is required")
	}
	if err := c.pacer.Wait(ctx); err != nil {
		return Verdict{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	payload, err := json.Marshal(map[string]any{
		"arguments": map[string]any{"smiles": structureID},
	})
	if err != nil {
		return Verdict{}, fmt.Errorf("marshal request: %w", err)
	}

	endpoint := c.baseURL + "/mcp/tools/" + profileTool
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return Verdict{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Verdict{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Verdict{}, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Verdict{}, fmt.Errorf("read response: %w", err)
	}
	return parseProfile(body)
}
