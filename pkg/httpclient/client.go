package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type ClientOptions struct {
	// Timeout applies to each request. Zero means no client-side timeout; the
	// caller's context still applies.
	Timeout time.Duration

	// Transport replaces the default transport, for tests.
	Transport http.RoundTripper
}

type Client struct {
	client *http.Client
	host   string
}

func NewClient(host string, opts ClientOptions) *Client {
	c := &http.Client{
		Timeout: opts.Timeout,
	}

	if opts.Transport != nil {
		c.Transport = opts.Transport
	}

	return &Client{
		client: c,
		host:   host,
	}
}

// Post sends body as JSON to host+path with the extra headers set. The caller
// closes the response body.
func (c *Client) Post(ctx context.Context, path string, body interface{}, header http.Header) (*http.Response, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s%s", c.host, path)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}

	for key, values := range header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	req.Header.Set("Content-Type", "application/json")

	return c.client.Do(req)
}
