package cycleclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
)

// CycleRequest is the body of POST /api/v1/energy/cycles
type CycleRequest struct {
	CycleID string `json:"cycleId"`
}

// CycleResponse is the success body of POST /api/v1/energy/cycles
type CycleResponse struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	UpdatedCount     int    `json:"updatedCount"`
	FailedCount      int    `json:"failedCount"`
	AlreadyProcessed bool   `json:"alreadyProcessed"`
	CycleID          string `json:"cycleId"`
}

// Options configures the client
type Options struct {
	BaseURL      string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// Client triggers energy cycles on a running API. Retrying a trigger is safe
// because the server deduplicates on the cycle id.
type Client struct {
	baseURL string
	client  *retryablehttp.Client
}

// NewClient creates a new cycle client
func NewClient(opts Options, log *logger.Logger) *Client {
	rc := retryablehttp.NewClient()
	rc.RetryMax = opts.RetryMax
	if opts.RetryWaitMin > 0 {
		rc.RetryWaitMin = opts.RetryWaitMin
	}
	if opts.RetryWaitMax > 0 {
		rc.RetryWaitMax = opts.RetryWaitMax
	}
	if opts.Timeout > 0 {
		rc.HTTPClient.Timeout = opts.Timeout
	}
	if log != nil {
		rc.Logger = leveledLogger{log: log}
	} else {
		rc.Logger = nil
	}
	// hand the last response back so API error bodies can be decoded
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler

	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		client:  rc,
	}
}

// TriggerCycle asks the API to run the bulk grant for cycleID
func (c *Client) TriggerCycle(ctx context.Context, cycleID string) (*CycleResponse, error) {
	url := fmt.Sprintf("%s/api/v1/energy/cycles", c.baseURL)
	var resp CycleResponse
	if err := c.sendRequest(ctx, http.MethodPost, url, CycleRequest{CycleID: cycleID}, http.StatusOK, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// sendRequest sends a JSON request and decodes the expected response
func (c *Client) sendRequest(ctx context.Context, method, url string, bodyData any, expectedStatus int, out any) error {
	var body []byte
	if bodyData != nil {
		jsonBytes, err := json.Marshal(bodyData)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = jsonBytes
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if err := json.Unmarshal(respBody, apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(respBody))
		}
		return apiErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// leveledLogger adapts the zap wrapper to retryablehttp.LeveledLogger
type leveledLogger struct {
	log *logger.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.log.Zap().Sugar().Errorw(msg, keysAndValues...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Zap().Sugar().Infow(msg, keysAndValues...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.log.Zap().Sugar().Debugw(msg, keysAndValues...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.log.Zap().Sugar().Warnw(msg, keysAndValues...)
}
