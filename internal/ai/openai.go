package ai

import (
	"context"
	"errors"

	openai "github.com/sashabaranov/go-openai"
)

const DefaultOpenAIModel = "gpt-4.1"

// OpenAI talks to the chat-completion endpoint of OpenAI or any server
// speaking the same wire format.
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI builds a client for apiKey. A non-empty baseURL replaces the
// public endpoint.
func NewOpenAI(apiKey, model, baseURL string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("missing OPENAI_API_KEY")
	}
	if model == "" {
		model = DefaultOpenAIModel
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), model: model}, nil
}

func (o *OpenAI) Name() string  { return ProviderOpenAI }
func (o *OpenAI) Model() string { return o.model }

func (o *OpenAI) Complete(ctx context.Context, prompt string, temperature float32) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
	})
	if err != nil {
		return "", &BackendError{Backend: ProviderOpenAI, Op: "chat completion", Err: err}
	}
	if len(resp.Choices) == 0 {
		return "", &BackendError{Backend: ProviderOpenAI, Op: "chat completion", Err: errNoChoices}
	}
	return resp.Choices[0].Message.Content, nil
}
