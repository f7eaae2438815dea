// Package agents provides the search-augmented news summarization agent.
package agents

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// LLMClient defines the interface for language-model completions.
type LLMClient interface {
	// CompleteWithSystem sends a prompt with system message to the LLM.
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// OpenAICompatClient implements LLMClient against any OpenAI-compatible API
// (Groq exposes one at its base URL).
type OpenAICompatClient struct {
	client *openai.Client
	model  string
}

// NewOpenAICompatClient creates a new LLM client. An empty baseURL uses the
// OpenAI default endpoint.
func NewOpenAICompatClient(apiKey, baseURL, model string) *OpenAICompatClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAICompatClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// CompleteWithSystem sends a prompt with system message to the LLM.
func (c *OpenAICompatClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("llm completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from llm")
	}
	return resp.Choices[0].Message.Content, nil
}

// Model returns the model name.
func (c *OpenAICompatClient) Model() string {
	return c.model
}
