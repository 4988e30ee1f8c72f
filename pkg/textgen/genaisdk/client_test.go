package genaisdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/porter-dev/ams-assistant/internal/logger"
	"github.com/porter-dev/ams-assistant/pkg/textgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wirePart struct {
	Text string `json:"text"`
}

type wireContent struct {
	Role  string     `json:"role"`
	Parts []wirePart `json:"parts"`
}

type wireRequest struct {
	Contents []wireContent `json:"contents"`
}

func newTestClient(t *testing.T, baseSuffix string, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), &Config{
		BaseURL: srv.URL + baseSuffix,
		Model:   "gemini-2.0-flash",
		APIKey:  "test-key",
	}, logger.NewNop())
	require.NoError(t, err)

	return client
}

func TestGenerateSendsSingleUserTurn(t *testing.T) {
	var got wireRequest

	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"1. Restart the gateway"}]}}]}`))
	})

	text, err := client.Generate(context.Background(), "analyze INC001")
	require.NoError(t, err)

	assert.Equal(t, "1. Restart the gateway", text)

	require.Len(t, got.Contents, 1)
	assert.Equal(t, "user", got.Contents[0].Role)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Equal(t, "analyze INC001", got.Contents[0].Parts[0].Text)
}

func TestGenerateWithVersionedBaseURL(t *testing.T) {
	for _, suffix := range []string{"/v1beta", "/v1beta/", "/v1"} {
		suffix := suffix

		t.Run(suffix, func(t *testing.T) {
			var gotPath string

			client := newTestClient(t, suffix, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path

				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"ok"}]}}]}`))
			})

			_, err := client.Generate(context.Background(), "prompt")
			require.NoError(t, err)

			version := suffix[1:]

			if version[len(version)-1] == '/' {
				version = version[:len(version)-1]
			}

			assert.Equal(t, "/"+version+"/models/gemini-2.0-flash:generateContent", gotPath)
		})
	}
}

func TestGenerateMalformedBodies(t *testing.T) {
	bodies := map[string]string{
		"no candidates": `{"candidates":[]}`,
		"empty object":  `{}`,
		"no parts":      `{"candidates":[{"content":{"role":"model","parts":[]}}]}`,
		"empty text":    `{"candidates":[{"content":{"role":"model","parts":[{"text":""}]}}]}`,
	}

	for name, body := range bodies {
		body := body

		t.Run(name, func(t *testing.T) {
			client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(body))
			})

			_, err := client.Generate(context.Background(), "prompt")
			assert.ErrorIs(t, err, textgen.ErrMalformedResponse)
		})
	}
}

func TestGenerateNon2xx(t *testing.T) {
	client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":404,"message":"not found","status":"NOT_FOUND"}}`))
	})

	_, err := client.Generate(context.Background(), "prompt")
	require.Error(t, err)

	assert.NotErrorIs(t, err, textgen.ErrMalformedResponse)
}

func TestSplitAPIVersion(t *testing.T) {
	cases := []struct {
		in      string
		base    string
		version string
	}{
		{"https://generativelanguage.googleapis.com/v1beta", "https://generativelanguage.googleapis.com/", "v1beta"},
		{"https://generativelanguage.googleapis.com/v1alpha/", "https://generativelanguage.googleapis.com/", "v1alpha"},
		{"https://proxy.internal/gemini/v1", "https://proxy.internal/gemini/", "v1"},
		{"https://generativelanguage.googleapis.com", "https://generativelanguage.googleapis.com", ""},
		{"https://proxy.internal/gemini", "https://proxy.internal/gemini", ""},
	}

	for _, c := range cases {
		base, version, err := splitAPIVersion(c.in)
		require.NoError(t, err)

		assert.Equal(t, c.base, base, c.in)
		assert.Equal(t, c.version, version, c.in)
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{}, logger.NewNop())
	assert.Error(t, err)
}
