package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/shayari/internal/logger"
	"github.com/alexisbeaulieu97/shayari/internal/poetry"
	apperrors "github.com/alexisbeaulieu97/shayari/pkg/errors"
)

// DefaultEndpoint is where the poem service listens during local development.
const DefaultEndpoint = "http://localhost:3000/api/poetry"

const maxResponseBytes = 1 << 20

// Options configures a Client.
type Options struct {
	Endpoint   string
	HTTPClient *http.Client
	UserAgent  string
	Logger     *logger.Logger
}

// Client posts generation requests to the poem service. A Client performs
// exactly one HTTP exchange per call and never retries.
type Client struct {
	endpoint   string
	httpClient *http.Client
	userAgent  string
	log        *logger.Logger
}

type requestBody struct {
	Mood  string `json:"mood"`
	Style string `json:"style"`
}

type responseBody struct {
	Poem  *string `json:"poem"`
	Error *string `json:"error"`
}

// New builds a Client. Missing options fall back to DefaultEndpoint and
// http.DefaultClient.
func New(opts Options) *Client {
	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		userAgent:  opts.UserAgent,
		log:        log.With("component", "generation"),
	}
}

// Endpoint returns the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Generate sends req to the poem service and returns the poem text. Every
// failure is a *errors.RequestError whose message can be shown to the user.
func (c *Client) Generate(ctx context.Context, req poetry.Request) (string, error) {
	requestID := uuid.NewString()
	log := c.log.WithFields(map[string]any{"request_id": requestID, "style": string(req.Style)})

	payload, err := json.Marshal(requestBody{Mood: req.Mood, Style: string(req.Style)})
	if err != nil {
		return "", apperrors.NewRequestError(0, poetry.MsgGenerationFailed, fmt.Errorf("encode request: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", apperrors.NewRequestError(0, poetry.MsgGenerationFailed, fmt.Errorf("build request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	started := time.Now()
	log.Debug("sending generation request")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error(err, "generation request failed")
		return "", apperrors.NewRequestError(0, poetry.MsgGenerationFailed, err)
	}
	defer resp.Body.Close()

	log = log.WithFields(map[string]any{
		"status":      resp.StatusCode,
		"duration_ms": time.Since(started).Milliseconds(),
	})

	poem, err := decodeResponse(resp)
	if err != nil {
		log.Error(err, "generation response rejected")
		return "", err
	}

	log.Debug("generation request completed")
	return poem, nil
}

func decodeResponse(resp *http.Response) (string, error) {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", apperrors.NewRequestError(resp.StatusCode, poetry.MsgGenerationFailed, fmt.Errorf("read response: %w", err))
	}

	var body responseBody
	decodeErr := json.Unmarshal(data, &body)
	success := resp.StatusCode >= 200 && resp.StatusCode < 300

	if !success {
		if decodeErr == nil && body.Error != nil && strings.TrimSpace(*body.Error) != "" {
			return "", apperrors.NewRequestError(resp.StatusCode, *body.Error, fmt.Errorf("poem service returned %s", resp.Status))
		}
		cause := fmt.Errorf("poem service returned %s", resp.Status)
		if decodeErr != nil {
			cause = errors.Join(cause, fmt.Errorf("decode response: %w", decodeErr))
		}
		return "", apperrors.NewRequestError(resp.StatusCode, poetry.MsgGenerationFailed, cause)
	}

	if decodeErr != nil {
		return "", apperrors.NewRequestError(resp.StatusCode, poetry.MsgGenerationFailed, fmt.Errorf("decode response: %w", decodeErr))
	}
	if body.Poem == nil || *body.Poem == "" {
		return "", apperrors.NewRequestError(resp.StatusCode, poetry.MsgGenerationFailed, errors.New("response did not contain a poem"))
	}
	return *body.Poem, nil
}
