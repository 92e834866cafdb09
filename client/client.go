package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"chainscale/models"
)

// APIClient is a typed HTTP client for the scalability API. Server-side
// error strings from the response envelope are returned verbatim so the
// dashboard can surface them unchanged.
type APIClient struct {
	BaseURL    string
	AppVersion string
	HttpClient *http.Client
}

func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		BaseURL: baseURL,
		HttpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError is a failure reported by the server inside the response
// envelope, as opposed to a transport failure.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

func (c *APIClient) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create GET request: %v", err)
	}
	return c.do(req, out)
}

func (c *APIClient) post(ctx context.Context, path string, body, out interface{}) error {
	jsonValue, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewBuffer(jsonValue))
	if err != nil {
		return fmt.Errorf("failed to create POST request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *APIClient) do(req *http.Request, out interface{}) error {
	if c.AppVersion != "" {
		req.Header.Set("X-App-Version", c.AppVersion)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request to %s failed: %v", req.URL.Path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %v", err)
	}

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
		Error   string          `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("invalid response from %s: %v", req.URL.Path, err)
	}

	if !envelope.Success {
		msg := envelope.Error
		if msg == "" {
			msg = fmt.Sprintf("server returned status %d", resp.StatusCode)
		}
		return &APIError{StatusCode: resp.StatusCode, Message: msg}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %v", err)
	}
	return nil
}

// Metrics endpoints.

func (c *APIClient) AllMetrics(ctx context.Context) (*models.AllMetrics, error) {
	var out models.AllMetrics
	if err := c.get(ctx, "/api/metrics/all", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) BaseMetrics(ctx context.Context) (map[string]models.BaseLayerChain, error) {
	out := make(map[string]models.BaseLayerChain)
	if err := c.get(ctx, "/api/metrics/base", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) Layer2Metrics(ctx context.Context) (map[string]models.Layer2Solution, error) {
	out := make(map[string]models.Layer2Solution)
	if err := c.get(ctx, "/api/metrics/layer2", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) ShardingMetrics(ctx context.Context) (map[string]models.ShardingSolution, error) {
	out := make(map[string]models.ShardingSolution)
	if err := c.get(ctx, "/api/metrics/sharding", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) TrilemmaMetrics(ctx context.Context) (map[string]models.TrilemmaScores, error) {
	out := make(map[string]models.TrilemmaScores)
	if err := c.get(ctx, "/api/metrics/trilemma", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) ComparisonSummary(ctx context.Context) (map[string]models.ComparisonProfile, error) {
	out := make(map[string]models.ComparisonProfile)
	if err := c.get(ctx, "/api/metrics/comparison", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *APIClient) SecurityVectors(ctx context.Context) (map[string]map[string]models.AttackVector, error) {
	out := make(map[string]map[string]models.AttackVector)
	if err := c.get(ctx, "/api/metrics/security", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Calculation endpoints.

func (c *APIClient) CalculateLayer2(ctx context.Context, req models.Layer2Request) (*models.Layer2Result, error) {
	var out models.Layer2Result
	if err := c.post(ctx, "/api/calculate/layer2", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) CalculateSharding(ctx context.Context, req models.ShardingRequest) (*models.ShardingResult, error) {
	var out models.ShardingResult
	if err := c.post(ctx, "/api/calculate/sharding", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) CalculateHybrid(ctx context.Context, req models.HybridRequest) (*models.HybridResult, error) {
	var out models.HybridResult
	if err := c.post(ctx, "/api/calculate/hybrid", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) CompareAll(ctx context.Context, req models.CompareRequest) (*models.CompareResult, error) {
	var out models.CompareResult
	if err := c.post(ctx, "/api/calculate/compare", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) CalculateTrilemma(ctx context.Context, req models.TrilemmaRequest) (*models.TrilemmaResult, error) {
	var out models.TrilemmaResult
	if err := c.post(ctx, "/api/calculate/trilemma", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Monitor endpoints.

func (c *APIClient) CurrentSample(ctx context.Context) (*models.MonitorSample, error) {
	var out models.MonitorSample
	if err := c.get(ctx, "/api/monitor/current", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) MonitorHistory(ctx context.Context) (*models.MonitorHistory, error) {
	var out models.MonitorHistory
	if err := c.get(ctx, "/api/monitor/history", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
