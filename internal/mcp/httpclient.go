package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claude/tenrm/internal/load"
)

// HTTPClient implements DataSource by calling the tenrm REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but the
// catalog lives on the server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError is a non-2xx response from the REST API.
type APIError struct {
	Status   int
	Message  string
	Exercise string
}

func (e *APIError) Error() string {
	return e.Message
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("httpclient: encode request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("httpclient: create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Error    string `json:"error"`
			Exercise string `json:"exercise"`
		}
		if json.Unmarshal(data, &apiErr) != nil || apiErr.Error == "" {
			apiErr.Error = fmt.Sprintf("%s returned %d: %s", path, resp.StatusCode, data)
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Error, Exercise: apiErr.Exercise}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", path, err)
	}
	return nil
}

func programPath(name string) string {
	return "/api/v1/programs/" + url.PathEscape(name)
}

func (c *HTTPClient) ListPrograms(ctx context.Context) ([]ProgramInfo, error) {
	var programs []ProgramInfo
	if err := c.do(ctx, http.MethodGet, "/api/v1/programs", nil, &programs); err != nil {
		return nil, err
	}
	return programs, nil
}

func (c *HTTPClient) GetPhase(ctx context.Context, name string, week int) (*PhaseInfo, error) {
	var phase PhaseInfo
	path := programPath(name) + "/weeks/" + strconv.Itoa(week)
	if err := c.do(ctx, http.MethodGet, path, nil, &phase); err != nil {
		return nil, err
	}
	return &phase, nil
}

func (c *HTTPClient) ComputeTable(ctx context.Context, req TableRequest) (*load.Table, error) {
	var table load.Table
	if err := c.do(ctx, http.MethodPost, "/api/v1/table", req, &table); err != nil {
		return nil, err
	}
	return &table, nil
}

// IsNotFound reports whether err is a 404 from the REST API.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}
