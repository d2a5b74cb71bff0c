package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sseChunk(content string) string {
	return fmt.Sprintf(`data: {"choices":[{"delta":{"content":%q}}]}`+"\n\n", content)
}

func TestStreamChatDeliversTokensInOrder(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "text/event-stream")
		fmt.Fprint(w, sseChunk("Hel"))
		fmt.Fprint(w, sseChunk("lo"))
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "test-model")
	var tokens []string
	err := c.StreamChat(context.Background(), "be nice", "hi", func(tok string) error {
		tokens = append(tokens, tok)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"Hel", "lo"}, tokens)

	assert.True(t, gotReq.Stream)
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "be nice", gotReq.Messages[0].Content)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
}

func TestStreamChatSkipsEmptyDeltas(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// Role-only chunks and keepalive comments carry no content.
		fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{}}]}\n\n")
		fmt.Fprint(w, ": keepalive\n\n")
		fmt.Fprint(w, sseChunk("only"))
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "test-model")
	var tokens []string
	err := c.StreamChat(context.Background(), "sys", "msg", func(tok string) error {
		tokens = append(tokens, tok)
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, tokens)
}

func TestStreamChatReportsHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "key", "test-model")
	err := c.StreamChat(context.Background(), "sys", "msg", func(string) error { return nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 429")
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestStreamChatReportsMalformedChunks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "data: {not json}\n\n")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "test-model")
	err := c.StreamChat(context.Background(), "sys", "msg", func(string) error { return nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed stream chunk")
}

func TestStreamChatPropagatesCallbackErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, sseChunk("tok"))
		fmt.Fprint(w, "data: [DONE]\n\n")
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", "test-model")
	wantErr := fmt.Errorf("downstream gone")
	err := c.StreamChat(context.Background(), "sys", "msg", func(string) error { return wantErr })

	assert.ErrorIs(t, err, wantErr)
}
