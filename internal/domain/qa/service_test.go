package qa

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "faqpilot/pkg/errors"
)

type stubEmbedder struct {
	vectors map[string][]float32
	err     error
	calls   [][]string
}

func (s *stubEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	s.calls = append(s.calls, append([]string(nil), texts...))
	if s.err != nil {
		return nil, s.err
	}
	out := make([][]float32, 0, len(texts))
	for _, text := range texts {
		vec, ok := s.vectors[text]
		if !ok {
			vec = []float32{0, 0, 1}
		}
		out = append(out, vec)
	}
	return out, nil
}

type stubCompleter struct {
	answer string
	err    error
	calls  int
}

func (s *stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.answer, nil
}

type stubStore struct {
	records    []EmbeddingRecord
	fetchErr   error
	upsertErr  error
	upserts    []EmbeddingRecord
	fetchCalls int
}

func (s *stubStore) Upsert(_ context.Context, rec EmbeddingRecord) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.upserts = append(s.upserts, rec)
	for i, existing := range s.records {
		if existing.Question == rec.Question {
			s.records[i] = rec
			return nil
		}
	}
	s.records = append(s.records, rec)
	return nil
}

func (s *stubStore) FetchAll(_ context.Context) ([]EmbeddingRecord, error) {
	s.fetchCalls++
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.records, nil
}

type stubCache struct {
	entries map[string]string
	getErr  error
	saves   int
}

func (s *stubCache) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	answer, ok := s.entries[key]
	return answer, ok, nil
}

func (s *stubCache) Save(_ context.Context, key, answer string, _ time.Duration) error {
	s.saves++
	if s.entries == nil {
		s.entries = make(map[string]string)
	}
	s.entries[key] = answer
	return nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testService(embedder *stubEmbedder, completer *stubCompleter, store *stubStore, cache *stubCache) Service {
	return NewService(Config{SimilarityThreshold: 0.8, CacheTTL: time.Hour}, embedder, completer, store, cache, newTestLogger())
}

func TestAnswerFromLocalCache(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"How can I reset my password?": {1, 0, 0.01},
	}}
	store := &stubStore{records: []EmbeddingRecord{
		{
			Question:          "How do I reset my password?",
			QuestionEmbedding: []float32{1, 0, 0},
			Answer:            "Go to settings...",
		},
	}}
	completer := &stubCompleter{answer: "should not be used"}

	svc := testService(embedder, completer, store, &stubCache{})

	out, err := svc.Answer(context.Background(), "How can I reset my password?")
	require.NoError(t, err)
	require.Equal(t, SourceLocal, out.Source)
	require.Equal(t, "How do I reset my password?", out.MatchedQuestion)
	require.Equal(t, "Go to settings...", out.Answer)
	require.GreaterOrEqual(t, out.Score, 0.8)
	require.Zero(t, completer.calls)
}

func TestAnswerFallsBackToExternalModel(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"What is the capital of France?": {0, 1, 0},
	}}
	store := &stubStore{records: []EmbeddingRecord{
		{
			Question:          "How do I reset my password?",
			QuestionEmbedding: []float32{1, 0, 0},
			Answer:            "Go to settings...",
		},
	}}
	completer := &stubCompleter{answer: "Paris."}
	cache := &stubCache{}

	svc := testService(embedder, completer, store, cache)

	out, err := svc.Answer(context.Background(), "What is the capital of France?")
	require.NoError(t, err)
	require.Equal(t, SourceExternal, out.Source)
	require.Equal(t, "N/A", out.MatchedQuestion)
	require.Equal(t, "Paris.", out.Answer)
	require.Equal(t, 1, completer.calls)
	require.Equal(t, 1, cache.saves)
}

func TestAnswerUsesCachedCompletion(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{}}
	store := &stubStore{}
	completer := &stubCompleter{answer: "fresh"}
	cache := &stubCache{entries: map[string]string{
		"what is the capital of france": "Paris, from cache.",
	}}

	svc := testService(embedder, completer, store, cache)

	out, err := svc.Answer(context.Background(), "What is the capital of France?")
	require.NoError(t, err)
	require.Equal(t, SourceExternal, out.Source)
	require.Equal(t, "Paris, from cache.", out.Answer)
	require.Zero(t, completer.calls)
}

func TestAnswerRejectsEmptyQuestion(t *testing.T) {
	svc := testService(&stubEmbedder{}, &stubCompleter{}, &stubStore{}, &stubCache{})

	_, err := svc.Answer(context.Background(), "   ")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestAnswerEmbeddingFailureStopsPipeline(t *testing.T) {
	embedErr := apperrors.Wrap(apperrors.CodeEmbedding, "embedding request failed: status=500", nil)
	embedder := &stubEmbedder{err: embedErr}
	store := &stubStore{}
	completer := &stubCompleter{}

	svc := testService(embedder, completer, store, &stubCache{})

	_, err := svc.Answer(context.Background(), "anything")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeEmbedding))
	require.Zero(t, store.fetchCalls)
	require.Zero(t, completer.calls)
}

func TestAnswerFetchFailureIsNotSilent(t *testing.T) {
	fetchErr := apperrors.Wrap(apperrors.CodeStorage, "retrieving embeddings failed", nil)
	embedder := &stubEmbedder{}
	store := &stubStore{fetchErr: fetchErr}
	completer := &stubCompleter{}

	svc := testService(embedder, completer, store, &stubCache{})

	_, err := svc.Answer(context.Background(), "anything")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeStorage))
	require.Zero(t, completer.calls)
}

func TestPrimeCacheBatchesQuestionAndAnswer(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{
		"q1": {1, 0, 0},
		"a1": {0, 1, 0},
	}}
	store := &stubStore{}

	svc := testService(embedder, &stubCompleter{}, store, &stubCache{})

	err := svc.PrimeCache(context.Background(), []FAQEntry{{Question: "q1", Answer: "a1"}})
	require.NoError(t, err)
	require.Len(t, embedder.calls, 1)
	require.Equal(t, []string{"q1", "a1"}, embedder.calls[0])
	require.Len(t, store.upserts, 1)
	require.Equal(t, []float32{1, 0, 0}, store.upserts[0].QuestionEmbedding)
	require.Equal(t, []float32{0, 1, 0}, store.upserts[0].AnswerEmbedding)
}

func TestPrimeCacheIsIdempotent(t *testing.T) {
	embedder := &stubEmbedder{vectors: map[string][]float32{}}
	store := &stubStore{}
	svc := testService(embedder, &stubCompleter{}, store, &stubCache{})

	entries := []FAQEntry{{Question: "q1", Answer: "a1"}, {Question: "q2", Answer: "a2"}}
	require.NoError(t, svc.PrimeCache(context.Background(), entries))
	require.NoError(t, svc.PrimeCache(context.Background(), entries))

	require.Len(t, store.records, 2)
}

func TestPrimeCacheAbortsOnFirstFailure(t *testing.T) {
	store := &stubStore{}
	embedder := &stubEmbedder{vectors: map[string][]float32{}}
	svc := testService(embedder, &stubCompleter{}, store, &stubCache{})

	entries := []FAQEntry{
		{Question: "q1", Answer: "a1"},
		{Question: " ", Answer: "a2"},
		{Question: "q3", Answer: "a3"},
	}
	err := svc.PrimeCache(context.Background(), entries)
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	// The first entry stays committed; the rest were never attempted.
	require.Len(t, store.records, 1)
	require.Equal(t, "q1", store.records[0].Question)
}
