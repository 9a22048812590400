package levy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dtal-platform/api/internal/logger"
	"github.com/goccy/go-json"
)

// ErrRemote is the generic calculation-failed signal. Any transport failure,
// non-2xx status, or undecodable body collapses into it; callers never see
// remote internals and never receive a partial result.
var ErrRemote = errors.New("levy calculation failed")

// CalculationRequest is the outbound contract of the remote levy endpoint.
// All three fields are mandatory; validation happens locally before any
// network call is made.
type CalculationRequest struct {
	MunicipalityName   string  `json:"municipality_name" binding:"required"`
	BusinessActivity   string  `json:"business_activity" binding:"required"`
	RevenueTwoYearsAgo float64 `json:"revenue_two_years_ago" binding:"required,gt=0"`
}

// Client posts calculation requests to a remote levy endpoint and returns the
// raw response mapping. The response shape varies between deployments, so the
// body is decoded loosely; AssembleResult applies the per-field fallback
// chains on top. A Client is stateless over its http.Client and safe for
// concurrent use.
type Client struct {
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient creates a levy client. A zero timeout means no client-side
// timeout; the request context still bounds each call.
func NewClient(timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// Calculate posts the request to the given endpoint and decodes the response
// into a loosely-typed mapping. Non-2xx statuses are treated uniformly as
// failure regardless of body content.
func (c *Client) Calculate(ctx context.Context, endpoint string, req CalculationRequest) (map[string]interface{}, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: encode request: %v", ErrRemote, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrRemote, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.log.Info("Calling remote levy endpoint", map[string]interface{}{
		"endpoint":     endpoint,
		"municipality": req.MunicipalityName,
		"activity":     req.BusinessActivity,
	})

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("Remote levy call failed", err, map[string]interface{}{
			"endpoint": endpoint,
		})
		return nil, fmt.Errorf("%w: %v", ErrRemote, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.log.Warn("Remote levy endpoint returned non-success status", map[string]interface{}{
			"endpoint": endpoint,
			"status":   resp.StatusCode,
		})
		return nil, fmt.Errorf("%w: unexpected status %d", ErrRemote, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrRemote, err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.log.Error("Failed to decode levy response", err, map[string]interface{}{
			"endpoint": endpoint,
		})
		return nil, fmt.Errorf("%w: decode response: %v", ErrRemote, err)
	}

	return payload, nil
}
