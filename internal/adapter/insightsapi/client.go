// Package insightsapi is the HTTP client of the feedback-and-insights
// backend.
package insightsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/feedback-insights/internal/domain"
	"github.com/heartmarshall/feedback-insights/pkg/ctxutil"
)

// DefaultBaseURL is the backend address used when none is configured.
const DefaultBaseURL = "http://localhost:8000"

const feedbackAndInsightsPath = "/feedback_and_insights"

// Client fetches feedback records and their insights.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client for baseURL (DefaultBaseURL when empty).
// A zero timeout leaves requests bounded only by their context.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "insightsapi"),
	}
}

// FetchFeedbackAndInsights issues a single GET for the user's feedback and
// maps the response. Transport errors, non-200 statuses, undecodable bodies
// and shape errors are all returned as errors; there is no retry.
// A non-200 response is a failure even when its body is a valid array.
//
// The username is sent as given, including when it is empty.
func (c *Client) FetchFeedbackAndInsights(ctx context.Context, username string) ([]domain.Feedback, error) {
	reqURL := c.baseURL + feedbackAndInsightsPath + "?" + url.Values{"username": {username}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("insightsapi: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if id := ctxutil.RequestIDFromCtx(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}

	c.log.DebugContext(ctx, "fetch feedback and insights",
		slog.String("username", username),
		slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
	)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("insightsapi: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("insightsapi: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("insightsapi: read body: %w", err)
	}

	var elems []apiElement
	if err := json.Unmarshal(body, &elems); err != nil {
		return nil, fmt.Errorf("insightsapi: decode json: %w", err)
	}
	if elems == nil {
		// JSON null decodes into a nil slice without error.
		return nil, fmt.Errorf("%w: body is not an array", ErrMalformedResponse)
	}

	result, err := mapElements(elems, func(id, field, value string) {
		c.log.WarnContext(ctx, "invalid timestamp in response",
			slog.String("feedback_id", id),
			slog.String("field", field),
			slog.String("value", value),
		)
	})
	if err != nil {
		return nil, fmt.Errorf("insightsapi: %w", err)
	}

	c.log.DebugContext(ctx, "feedback and insights fetched",
		slog.String("username", username),
		slog.Int("count", len(result)),
		slog.Duration("took", time.Since(start)),
	)

	return result, nil
}
