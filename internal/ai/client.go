// Package ai speaks to an OpenAI-compatible chat completion endpoint and
// exposes streamed responses as a sequence of text fragments.
package ai

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Completer streams a chat completion for a persona's system prompt and one
// user message. onDelta is invoked once per non-empty fragment, in order; a
// nil return means the stream completed. Any error aborts the stream.
type Completer interface {
	StreamChat(ctx context.Context, systemPrompt, userMessage string, onDelta func(token string) error) error
}

// Client is a Completer backed by an OpenAI-compatible HTTP API using
// server-sent events. Intentionally no request timeout: a stream stays open
// as long as the backend keeps producing.
type Client struct {
	apiBase string
	apiKey  string
	model   string
	httpc   *http.Client
}

// NewClient builds a Client for the given API base URL (e.g.
// "https://api.openai.com/v1"), key, and model.
func NewClient(apiBase, apiKey, model string) *Client {
	return &Client{
		apiBase: strings.TrimRight(apiBase, "/"),
		apiKey:  apiKey,
		model:   model,
		httpc:   &http.Client{},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
}

type streamChunk struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

// StreamChat posts a streaming completion request and feeds each content
// delta to onDelta until the backend sends its end-of-stream marker.
func (c *Client) StreamChat(ctx context.Context, systemPrompt, userMessage string, onDelta func(token string) error) error {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Stream: true,
	})
	if err != nil {
		return fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("chat backend returned http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			return nil
		}
		var chunk streamChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			return fmt.Errorf("malformed stream chunk: %w", err)
		}
		if len(chunk.Choices) == 0 {
			continue
		}
		token := chunk.Choices[0].Delta.Content
		if token == "" {
			continue
		}
		if err := onDelta(token); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stream: %w", err)
	}
	return nil
}
