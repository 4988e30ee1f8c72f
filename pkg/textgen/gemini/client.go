// Package gemini is a REST client for the generateContent endpoint of the
// Gemini API.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/porter-dev/ams-assistant/internal/logger"
	"github.com/porter-dev/ams-assistant/pkg/httpclient"
	"github.com/porter-dev/ams-assistant/pkg/textgen"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-2.0-flash"

	APIKeyHeader = "x-goog-api-key"
)

type Config struct {
	BaseURL string
	Model   string
	APIKey  string
	Timeout time.Duration

	// ClientOptions overrides the HTTP client options derived from Timeout.
	ClientOptions *httpclient.ClientOptions
}

type Client struct {
	client *httpclient.Client
	model  string
	apiKey string
	logger *logger.Logger
}

func NewClient(conf *Config, l *logger.Logger) *Client {
	baseURL := strings.TrimRight(conf.BaseURL, "/")

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := strings.TrimSpace(conf.Model)

	if model == "" {
		model = DefaultModel
	}

	opts := httpclient.ClientOptions{Timeout: conf.Timeout}

	if conf.ClientOptions != nil {
		opts = *conf.ClientOptions
	}

	return &Client{
		client: httpclient.NewClient(baseURL, opts),
		model:  model,
		apiKey: conf.APIKey,
		logger: l,
	}
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	path := fmt.Sprintf("/models/%s:generateContent", url.PathEscape(c.model))

	// the key must never appear in the URL
	header := http.Header{}
	header.Set(APIKeyHeader, c.apiKey)

	resp, err := c.client.Post(ctx, path, &GenerateContentRequest{
		Contents: []Content{
			{
				Role:  "user",
				Parts: []Part{{Text: prompt}},
			},
		},
	}, header)

	if err != nil {
		return "", fmt.Errorf("error calling generateContent: %w", err)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)

	if err != nil {
		return "", fmt.Errorf("error reading generateContent response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %d", textgen.ErrUnexpectedStatus, resp.StatusCode)
	}

	genResp := &GenerateContentResponse{}

	if err := json.Unmarshal(body, genResp); err != nil {
		return "", fmt.Errorf("%w: %v", textgen.ErrMalformedResponse, err)
	}

	text, ok := genResp.Text()

	if !ok {
		return "", fmt.Errorf("%w: no text in first candidate", textgen.ErrMalformedResponse)
	}

	c.logger.Debug().Caller().Msgf("generateContent on model %s completed in %v, response length %d", c.model, time.Since(start), len(text))

	return text, nil
}
