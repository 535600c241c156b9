package embedder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"faqpilot/internal/domain/qa"
	"faqpilot/internal/infra/llm/openai"
	apperrors "faqpilot/pkg/errors"
)

// maxInputTokens is the per-text cap of the embedding models in use.
const maxInputTokens = 8191

type embeddingClient interface {
	CreateEmbedding(ctx context.Context, req openai.EmbeddingRequest) (openai.EmbeddingResponse, error)
}

// OpenAIEmbedder converts texts into vectors through the embeddings API,
// preserving input order.
type OpenAIEmbedder struct {
	client  embeddingClient
	model   string
	encoder *tiktoken.Tiktoken
	logger  *slog.Logger
}

// NewOpenAIEmbedder constructs an embedder for the given model.
func NewOpenAIEmbedder(client embeddingClient, model string, logger *slog.Logger) *OpenAIEmbedder {
	encoder, err := tiktoken.EncodingForModel(model)
	if err != nil {
		encoder, err = tiktoken.GetEncoding("cl100k_base")
	}
	if err != nil {
		logger.Warn("tiktoken encoder unavailable, skipping token budget checks", "model", model, "error", err)
		encoder = nil
	}
	return &OpenAIEmbedder{
		client:  client,
		model:   strings.TrimSpace(model),
		encoder: encoder,
		logger:  logger.With("component", "embedder.openai"),
	}
}

// Embed requests one vector per text. The i-th vector corresponds to the i-th
// input. No retry is performed here; retry policy belongs to the caller.
func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			return nil, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("embedding input %d is empty", i), nil)
		}
		if tokens := e.countTokens(text); tokens > maxInputTokens {
			return nil, apperrors.Wrap(apperrors.CodeEmbedding,
				fmt.Sprintf("embedding input %d exceeds token budget: %d > %d", i, tokens, maxInputTokens), nil)
		}
	}

	resp, err := e.client.CreateEmbedding(ctx, openai.EmbeddingRequest{
		Model: e.model,
		Input: texts,
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeEmbedding, "embedding request failed", err)
	}
	if len(resp.Data) != len(texts) {
		return nil, apperrors.Wrap(apperrors.CodeEmbedding,
			fmt.Sprintf("embedding count mismatch: expected %d got %d", len(texts), len(resp.Data)), nil)
	}

	out := make([][]float32, 0, len(resp.Data))
	for _, item := range resp.Data {
		vec := make([]float32, len(item.Embedding))
		copy(vec, item.Embedding)
		out = append(out, vec)
	}
	return out, nil
}

func (e *OpenAIEmbedder) countTokens(text string) int {
	if e.encoder == nil {
		// Rough upper bound when no encoder is available.
		return (len(text) + 1) / 2
	}
	return len(e.encoder.Encode(text, nil, nil))
}

var _ qa.EmbeddingProvider = (*OpenAIEmbedder)(nil)
