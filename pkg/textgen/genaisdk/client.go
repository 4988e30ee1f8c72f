// Package genaisdk implements textgen.Generator with the Google Gen AI SDK.
package genaisdk

import (
	"context"
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"github.com/porter-dev/ams-assistant/internal/logger"
	"github.com/porter-dev/ams-assistant/pkg/textgen"
	"google.golang.org/genai"
)

type Config struct {
	// BaseURL overrides the SDK's default endpoint when set. A trailing API
	// version segment such as /v1beta is moved into the SDK's API version.
	BaseURL string
	Model   string
	APIKey  string
}

var apiVersionSegment = regexp.MustCompile(`^v[0-9]+((alpha|beta)[0-9]*)?$`)

// splitAPIVersion separates a trailing API version segment from baseURL. The
// SDK appends the version to the base URL itself.
func splitAPIVersion(baseURL string) (string, string, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))

	if err != nil {
		return "", "", fmt.Errorf("invalid genai base URL %q: %w", baseURL, err)
	}

	dir, last := path.Split(u.Path)

	if !apiVersionSegment.MatchString(last) {
		return u.String(), "", nil
	}

	u.Path = dir

	return u.String(), last, nil
}

type Client struct {
	client *genai.Client
	model  string
	logger *logger.Logger
}

func NewClient(ctx context.Context, conf *Config, l *logger.Logger) (*Client, error) {
	if conf.APIKey == "" {
		return nil, fmt.Errorf("genai API key is required")
	}

	model := strings.TrimSpace(conf.Model)

	if model == "" {
		model = "gemini-2.0-flash"
	}

	clientConf := &genai.ClientConfig{
		APIKey:  conf.APIKey,
		Backend: genai.BackendGeminiAPI,
	}

	if conf.BaseURL != "" {
		baseURL, apiVersion, err := splitAPIVersion(conf.BaseURL)

		if err != nil {
			return nil, err
		}

		clientConf.HTTPOptions = genai.HTTPOptions{
			BaseURL:    baseURL,
			APIVersion: apiVersion,
		}
	}

	client, err := genai.NewClient(ctx, clientConf)

	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
		logger: l,
	}, nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)

	if err != nil {
		return "", fmt.Errorf("genai generate failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", textgen.ErrMalformedResponse)
	}

	content := resp.Candidates[0].Content

	if content == nil || len(content.Parts) == 0 || content.Parts[0] == nil || content.Parts[0].Text == "" {
		return "", fmt.Errorf("%w: no text in first candidate", textgen.ErrMalformedResponse)
	}

	c.logger.Debug().Caller().Msgf("genai generate on model %s returned %d bytes", c.model, len(content.Parts[0].Text))

	return content.Parts[0].Text, nil
}
