package llm

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const (
	OpenRouterBaseURL = "https://openrouter.ai/api/v1"
	GroqBaseURL       = "https://api.groq.com/openai/v1"

	DefaultOpenRouterModel = "meta-llama/llama-3.1-70b-instruct"
	DefaultGroqModel       = "llama-3.3-70b-versatile"
)

// OpenAICompatible talks to any chat-completions endpoint speaking the OpenAI wire format.
type OpenAICompatible struct {
	name   string
	model  string
	client *openai.Client
}

func NewOpenAICompatible(name, apiKey, baseURL, model string) *OpenAICompatible {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAICompatible{
		name:   name,
		model:  model,
		client: openai.NewClientWithConfig(cfg),
	}
}

func NewOpenRouter(apiKey, model string) *OpenAICompatible {
	if model == "" {
		model = DefaultOpenRouterModel
	}
	return NewOpenAICompatible("openrouter", apiKey, OpenRouterBaseURL, model)
}

func NewGroq(apiKey, model string) *OpenAICompatible {
	if model == "" {
		model = DefaultGroqModel
	}
	return NewOpenAICompatible("groq", apiKey, GroqBaseURL, model)
}

func (p *OpenAICompatible) Name() string { return p.name }

func (p *OpenAICompatible) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return "", fmt.Errorf("%s chat completion: %w", p.name, err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New(p.name + ": no choices returned")
	}
	return resp.Choices[0].Message.Content, nil
}
