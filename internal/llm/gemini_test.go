package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nishant/yojana/pkg/config"
)

func geminiReply(text string) string {
	return `{"candidates":[{"content":{"parts":[{"text":` + mustJSON(text) + `}]}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestGeminiGenerate(t *testing.T) {
	var gotPath string
	var gotBody geminiRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &gotBody))

		io.WriteString(w, geminiReply("hello from the model"))
	}))
	defer srv.Close()

	client := NewGemini(config.ProviderConfig{
		APIKey:  "test-key",
		Model:   "test-model",
		BaseURL: srv.URL,
	})

	got, err := client.Generate(context.Background(), "You are terse.", "Say hello.")
	require.NoError(t, err)
	assert.Equal(t, "hello from the model", got)

	assert.Equal(t, "/models/test-model:generateContent", gotPath)

	// System and user prompts collapse into a single content part.
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "You are terse.\n\nSay hello.", gotBody.Contents[0].Parts[0].Text)

	assert.Equal(t, Temperature, gotBody.GenerationConfig.Temperature)
	assert.Equal(t, TopK, gotBody.GenerationConfig.TopK)
	assert.Equal(t, TopP, gotBody.GenerationConfig.TopP)
	assert.Equal(t, MaxOutputTokens, gotBody.GenerationConfig.MaxOutputTokens)
}

func TestGeminiGenerate_NoAPIKey(t *testing.T) {
	client := NewGemini(config.ProviderConfig{Model: "test-model"})

	_, err := client.Generate(context.Background(), "sys", "user")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestGeminiGenerate_UpstreamStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"error":{"message":"invalid argument"}}`)
	}))
	defer srv.Close()

	client := NewGemini(config.ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})

	_, err := client.Generate(context.Background(), "sys", "user")

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Equal(t, http.StatusBadRequest, protoErr.StatusCode)
	assert.Contains(t, protoErr.Body, "invalid argument")
}

func TestGeminiGenerate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"candidates":[]}`)
	}))
	defer srv.Close()

	client := NewGemini(config.ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})

	_, err := client.Generate(context.Background(), "sys", "user")

	var protoErr *ProtocolError
	require.ErrorAs(t, err, &protoErr)
	assert.Contains(t, protoErr.Body, "no generated text")
}

func TestGeminiGenerate_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewGemini(config.ProviderConfig{APIKey: "k", Model: "m", BaseURL: srv.URL})

	_, err := client.Generate(context.Background(), "sys", "user")

	var transErr *TransportError
	require.ErrorAs(t, err, &transErr)
	assert.Error(t, transErr.Unwrap())
}

func TestNewGeminiDefaults(t *testing.T) {
	client := NewGemini(config.ProviderConfig{APIKey: "k"})

	assert.Equal(t, DefaultGeminiModel, client.Model())
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}
