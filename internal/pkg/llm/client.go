package llm

import (
	"context"
	"fmt"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// Client wraps an OpenAI-compatible endpoint for the optional NLP
// backends (machine-translation drafts, grammar checking, embeddings,
// practice-item generation). Every call is bounded by Timeout so a slow
// backend can never block a scoring request indefinitely.
type Client struct {
	APIKey         string
	BaseURL        string
	Model          string
	EmbeddingModel string
	Timeout        time.Duration

	client *openai.Client
}

func NewClient(apiKey, model, embeddingModel, baseURL string, timeout time.Duration) *Client {
	if model == "" {
		model = "gpt-4o-mini"
	}
	if embeddingModel == "" {
		embeddingModel = string(openai.SmallEmbedding3)
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if timeout <= 0 {
		timeout = 4 * time.Second
	}

	config := openai.DefaultConfig(apiKey)
	config.BaseURL = baseURL

	return &Client{
		APIKey:         apiKey,
		Model:          model,
		EmbeddingModel: embeddingModel,
		BaseURL:        baseURL,
		Timeout:        timeout,
		client:         openai.NewClientWithConfig(config),
	}
}

// Configured reports whether the client can actually reach a backend.
func (c *Client) Configured() bool {
	return c != nil && c.client != nil && c.APIKey != ""
}

// GenerateJSON sends a single-prompt completion that must come back as a
// JSON object.
func (c *Client) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, &openai.ChatCompletionResponseFormat{
		Type: openai.ChatCompletionResponseFormatTypeJSONObject,
	})
}

// GenerateText sends a single-prompt completion returning plain text.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, nil)
}

func (c *Client) generate(ctx context.Context, prompt string, format *openai.ChatCompletionResponseFormat) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("llm client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: c.Model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature:    0.3,
			TopP:           0.95,
			MaxTokens:      2048,
			ResponseFormat: format,
		},
	)
	if err != nil {
		return "", fmt.Errorf("llm generate error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}

	text := resp.Choices[0].Message.Content
	if text == "" {
		return "", fmt.Errorf("llm returned empty response")
	}

	return text, nil
}

// Embed returns one embedding vector per input text.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("llm client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(c.EmbeddingModel),
		Input: texts,
	})
	if err != nil {
		return nil, fmt.Errorf("llm embeddings error: %w", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("llm returned %d embeddings for %d inputs", len(resp.Data), len(texts))
	}

	vectors := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		vectors[i] = d.Embedding
	}
	return vectors, nil
}
