package responder

import (
	"context"
	"log/slog"
	"strings"

	"faqpilot/internal/domain/qa"
	"faqpilot/internal/infra/llm/openai"
	apperrors "faqpilot/pkg/errors"
)

// noResponseSentinel is returned when the remote call succeeds but carries no
// candidate completions. An empty-but-valid payload is not an error.
const noResponseSentinel = "no response available"

type chatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIResponder forwards unanswered questions to the completion model.
type OpenAIResponder struct {
	client      chatClient
	model       string
	temperature float32
	logger      *slog.Logger
}

// NewOpenAIResponder constructs the fallback responder.
func NewOpenAIResponder(client chatClient, model string, temperature float32, logger *slog.Logger) *OpenAIResponder {
	return &OpenAIResponder{
		client:      client,
		model:       strings.TrimSpace(model),
		temperature: temperature,
		logger:      logger.With("component", "responder.openai"),
	}
}

// Complete sends the raw question and returns the top response text.
func (r *OpenAIResponder) Complete(ctx context.Context, question string) (string, error) {
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Messages:    []openai.Message{{Role: "user", Content: question}},
		Temperature: r.temperature,
	})
	if err != nil {
		return "", apperrors.Wrap(apperrors.CodeCompletion, "completion request failed", err)
	}
	if resp.Usage.TotalTokens > 0 {
		r.logger.Debug("completion token usage",
			"prompt", resp.Usage.PromptTokens,
			"completion", resp.Usage.CompletionTokens,
			"total", resp.Usage.TotalTokens)
	}
	if len(resp.Choices) == 0 {
		return noResponseSentinel, nil
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return noResponseSentinel, nil
	}
	return answer, nil
}

var _ qa.CompletionProvider = (*OpenAIResponder)(nil)
