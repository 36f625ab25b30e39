package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tidwall/gjson"
)

// Completer turns a user message into an assistant reply. The production
// implementation talks to an OpenAI-compatible chat-completions API; tests
// substitute a stub.
type Completer interface {
	Complete(ctx context.Context, message string) (string, error)
}

const (
	defaultMaxTokens = 400
	fallbackReply    = "I couldn't generate a reply."
)

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type completionRequest struct {
	Model     string              `json:"model"`
	Messages  []completionMessage `json:"messages"`
	MaxTokens int                 `json:"max_tokens"`
}

type completionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (c *Client) Complete(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(completionRequest{
		Model:     c.model,
		Messages:  []completionMessage{{Role: "user", Content: message}},
		MaxTokens: defaultMaxTokens,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat provider returned status %d", resp.StatusCode)
	}

	reply := gjson.GetBytes(body, "choices.0.message.content").String()
	if reply == "" {
		return fallbackReply, nil
	}
	return reply, nil
}
