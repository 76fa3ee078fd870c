package openrouter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAskRequiresAPIKey(t *testing.T) {
	t.Parallel()

	c := New("", "", "", "", "")
	_, err := c.Ask(context.Background(), "sys", "user")
	require.Error(t, err)
}

func TestAskSuccess(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatCompletionsRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		require.Equal(t, "system", req.Messages[0].Role)

		resp := chatCompletionsResponse{}
		resp.Choices = []chatChoice{{}}
		resp.Choices[0].Message.Content = "ranked"
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "test-model", "", "")
	got, err := c.Ask(context.Background(), "sys", "user")
	require.NoError(t, err)
	require.Equal(t, "ranked", got)
}

func TestAskHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "rate limited"})
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "test-model", "", "")
	_, err := c.Ask(context.Background(), "sys", "user")
	require.Error(t, err)
	require.Contains(t, err.Error(), "429")
}

func TestAskNoChoices(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(chatCompletionsResponse{}))
	}))
	defer srv.Close()

	c := New("test-key", srv.URL, "test-model", "", "")
	_, err := c.Ask(context.Background(), "sys", "user")
	require.Error(t, err)
}
