package qa

import (
	"context"
	"time"
)

// Store persists the embedding cache. Upsert is keyed on question text with
// last-write-wins semantics; each call is a single atomic write.
//
// FetchAll loads the whole cache on every query. Known scaling limit: the
// knowledge base is expected to stay in the tens-to-low-thousands range, so
// no pagination or index is provided.
type Store interface {
	Upsert(ctx context.Context, rec EmbeddingRecord) error
	FetchAll(ctx context.Context) ([]EmbeddingRecord, error)
}

// EmbeddingProvider converts texts into vectors, order preserved.
type EmbeddingProvider interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// CompletionProvider asks the external model for an answer.
type CompletionProvider interface {
	Complete(ctx context.Context, question string) (string, error)
}

// AnswerCache holds completions already fetched from the external model.
type AnswerCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Save(ctx context.Context, key, answer string, ttl time.Duration) error
}
