package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/itchan-dev/forum/shared/api"
	internal_errors "github.com/itchan-dev/forum/shared/errors"
	"github.com/itchan-dev/forum/shared/middleware/metrics"
)

// APIClient handles all communication with the Forum API.
type APIClient struct {
	BaseURL    string
	HttpClient *http.Client
}

func New(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HttpClient: &http.Client{Timeout: timeout},
	}
}

// call is the single helper for Forum API requests. It unwraps the response
// envelope into T; a non-success status becomes a RemoteError carrying the
// server's message. token may be empty for public endpoints.
func call[T any](ctx context.Context, c *APIClient, operation, method, path string, body any, token string) (T, error) {
	var data T
	started := time.Now()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return data, fmt.Errorf("failed to marshal %s request: %w", operation, err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return data, fmt.Errorf("failed to create API request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HttpClient.Do(req)
	if err != nil {
		metrics.ObserveAPICall(operation, "error", started)
		return data, &internal_errors.RemoteError{Message: fmt.Sprintf("backend unavailable: %v", err)}
	}
	defer resp.Body.Close()

	var envelope api.Envelope[T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		metrics.ObserveAPICall(operation, "error", started)
		return data, &internal_errors.RemoteError{
			Message:    fmt.Sprintf("cannot decode %s response (status %d)", operation, resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}
	if !envelope.Ok() {
		metrics.ObserveAPICall(operation, "fail", started)
		msg := envelope.Message
		if msg == "" {
			msg = fmt.Sprintf("%s failed (status %d)", operation, resp.StatusCode)
		}
		return data, &internal_errors.RemoteError{Message: msg, StatusCode: resp.StatusCode}
	}

	metrics.ObserveAPICall(operation, "success", started)
	return envelope.Data, nil
}
