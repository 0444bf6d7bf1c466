package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultGroqBaseURL = "https://api.groq.com/openai/v1"
	DefaultModel       = "llama-3.3-70b-versatile"
)

// shared HTTP client for Groq API calls
// reuses connection pool and timeout configuration
var groqHTTPClient = &http.Client{
	Timeout: 120 * time.Second, // total request timeout, covers full stream reads
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

// rate limiter for Groq API calls (10 requests/second with burst capacity of 5)
var groqRateLimiter = rate.NewLimiter(10, 5)

// Client talks to Groq's OpenAI-compatible chat completions API
type Client struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// creates a new Groq client with the default model
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      DefaultModel,
		baseURL:    defaultGroqBaseURL,
		httpClient: groqHTTPClient, // use shared client with proper timeouts and connection pooling
	}
}

// overrides the API base URL, used by tests to point at a stub server
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
	return c
}

// Complete runs a non-streaming chat completion and returns the content of
// the first choice
func (c *Client) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	resp, err := c.send(ctx, req, false)
	if err != nil {
		return "", err
	}

	defer resp.Body.Close() //nolint:errcheck

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("model returned empty response")
	}

	return completion.Choices[0].Message.Content, nil
}

// Stream runs a streaming chat completion, invoking onDelta for each content
// fragment as it arrives. Returns when the model signals completion, the
// stream errors, or onDelta returns an error.
func (c *Client) Stream(ctx context.Context, req CompletionRequest, onDelta func(content string) error) error {
	resp, err := c.send(ctx, req, true)
	if err != nil {
		return err
	}

	defer resp.Body.Close() //nolint:errcheck

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || !strings.HasPrefix(line, "data: ") {
			continue
		}

		payload := strings.TrimPrefix(line, "data: ")
		if payload == "[DONE]" {
			return nil
		}

		var chunk chatCompletionChunk
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return fmt.Errorf("failed to parse stream chunk: %w", err)
		}

		for _, choice := range chunk.Choices {
			if choice.Delta.Content == "" {
				continue
			}

			if err := onDelta(choice.Delta.Content); err != nil {
				return err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("stream read failed: %w", err)
	}

	return nil
}

// builds and sends the chat completion request, returning the raw response
// after status checking
func (c *Client) send(ctx context.Context, req CompletionRequest, stream bool) (*http.Response, error) {
	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserPrompt},
		},
		Stream:      stream,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	if req.JSONResponse {
		reqBody.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))

	// rate limiting
	if err := groqRateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		resp.Body.Close()                //nolint:errcheck,gosec
		return nil, fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return resp, nil
}
