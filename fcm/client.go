package fcm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"
)

// Outcome is the result of a single delivery attempt.
type Outcome int

const (
	// Delivered means FCM accepted the message for delivery.
	Delivered Outcome = iota
	// Rejected means FCM answered with a non-200 status. This is a reported
	// outcome, not a program failure.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Delivered:
		return "delivered"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Result carries the outcome of a send together with the raw response body
// for logging and diagnostics.
type Result struct {
	Outcome    Outcome
	StatusCode int
	Body       []byte
	// Err holds the decoded Google API error for a Rejected outcome.
	Err error
}

// Client sends built messages to the FCM v1 REST endpoint.
type Client struct {
	client    *http.Client
	tokens    oauth2.TokenSource
	baseURL   string
	projectID string
}

// NewClient creates a Client posting to the given endpoint base URL and
// project, authorizing each request with a token from ts.
func NewClient(ts oauth2.TokenSource, baseURL, projectID string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		tokens:    ts,
		baseURL:   strings.TrimRight(baseURL, "/"),
		projectID: projectID,
	}
}

// Endpoint returns the full messages:send URL for the configured project.
func (c *Client) Endpoint() string {
	return fmt.Sprintf("%s/v1/projects/%s/messages:send", c.baseURL, c.projectID)
}

// Send serializes the payload and performs one synchronous POST. Token and
// transport failures are returned as errors; a non-200 response is not an
// error but a Result with Outcome Rejected. There is no retry.
func (c *Client) Send(ctx context.Context, payload *Payload) (*Result, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize message: %w", err)
	}

	tok, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to obtain access token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+tok.AccessToken)
	req.Header.Set("Content-Type", "application/json; UTF-8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send to FCM: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read FCM response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return &Result{
			Outcome:    Rejected,
			StatusCode: resp.StatusCode,
			Body:       respBody,
			Err:        googleapi.CheckResponseWithBody(resp, respBody),
		}, nil
	}

	return &Result{
		Outcome:    Delivered,
		StatusCode: resp.StatusCode,
		Body:       respBody,
	}, nil
}
