package embedstore

import (
	"context"
	"sync"

	"faqpilot/internal/domain/qa"
)

// MemoryStore is an in-memory qa.Store used for tests and local development.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int64
	byKey  map[string]int
	rows   []qa.EmbeddingRecord
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextID: 1,
		byKey:  make(map[string]int),
	}
}

// Upsert implements qa.Store. Existing rows keep their id; vectors and answer
// are replaced wholesale.
func (s *MemoryStore) Upsert(_ context.Context, rec qa.EmbeddingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := qa.EmbeddingRecord{
		Question:          rec.Question,
		QuestionEmbedding: append([]float32(nil), rec.QuestionEmbedding...),
		Answer:            rec.Answer,
		AnswerEmbedding:   append([]float32(nil), rec.AnswerEmbedding...),
	}

	if idx, ok := s.byKey[rec.Question]; ok {
		stored.ID = s.rows[idx].ID
		s.rows[idx] = stored
		return nil
	}

	stored.ID = s.nextID
	s.nextID++
	s.byKey[rec.Question] = len(s.rows)
	s.rows = append(s.rows, stored)
	return nil
}

// FetchAll implements qa.Store. Returned records carry copies of the stored
// vectors so callers may consume them freely.
func (s *MemoryStore) FetchAll(_ context.Context) ([]qa.EmbeddingRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]qa.EmbeddingRecord, 0, len(s.rows))
	for _, row := range s.rows {
		out = append(out, qa.EmbeddingRecord{
			ID:                row.ID,
			Question:          row.Question,
			QuestionEmbedding: append([]float32(nil), row.QuestionEmbedding...),
			Answer:            row.Answer,
			AnswerEmbedding:   append([]float32(nil), row.AnswerEmbedding...),
		})
	}
	return out, nil
}

var _ qa.Store = (*MemoryStore)(nil)
