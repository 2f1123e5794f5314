package completion

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompleteReturnsFirstChoice(t *testing.T) {
	var gotPath, gotAuth string
	var gotReq map[string]interface{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"Focus on aptitude practice first."}}]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{
		APIKey:      "test-key",
		BaseURL:     srv.URL,
		Model:       "gpt-4",
		MaxTokens:   200,
		Temperature: 0.7,
	})

	reply, err := client.Complete(context.Background(), []Message{
		{Role: "system", Content: "You are a mentor."},
		{Role: "user", Content: "How do I prepare for placements?"},
	})
	require.NoError(t, err)
	require.Equal(t, "Focus on aptitude practice first.", reply)

	require.Equal(t, "/chat/completions", gotPath)
	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "gpt-4", gotReq["model"])
	require.Equal(t, float64(200), gotReq["max_tokens"])
	require.InDelta(t, 0.7, gotReq["temperature"].(float64), 0.001)
}

func TestCompleteNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"rate limited"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Model: "gpt-4"})

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.Error(t, err)
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewClient(Config{BaseURL: srv.URL, Model: "gpt-4"})

	_, err := client.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})
	require.ErrorIs(t, err, ErrNoChoices)
}
