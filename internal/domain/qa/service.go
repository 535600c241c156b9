package qa

import (
	"context"
	"log/slog"
	"strings"

	apperrors "faqpilot/pkg/errors"
)

// Service exposes the retrieval-and-fallback engine.
type Service interface {
	Answer(ctx context.Context, question string) (Outcome, error)
	PrimeCache(ctx context.Context, entries []FAQEntry) error
}

type service struct {
	cfg       Config
	embedder  EmbeddingProvider
	completer CompletionProvider
	store     Store
	cache     AnswerCache
	logger    *slog.Logger
}

// NewService wires up the QA domain.
func NewService(cfg Config, embedder EmbeddingProvider, completer CompletionProvider, store Store, cache AnswerCache, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		embedder:  embedder,
		completer: completer,
		store:     store,
		cache:     cache,
		logger:    logger.With("component", "qa.service"),
	}
}

// Answer runs the pipeline: embed the question, load the cached records,
// pick the best cosine match, and fall back to the external model when
// nothing clears the threshold.
func (s *service) Answer(ctx context.Context, question string) (Outcome, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return Outcome{}, apperrors.Wrap(apperrors.CodeInvalidInput, "question cannot be empty", nil)
	}

	vectors, err := s.embedder.Embed(ctx, []string{question})
	if err != nil {
		return Outcome{}, err
	}
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return Outcome{}, apperrors.Wrap(apperrors.CodeEmbedding, "embedding response empty", nil)
	}
	queryVector := vectors[0]

	records, err := s.store.FetchAll(ctx)
	if err != nil {
		// A fetch failure is not the same as an empty cache; never match
		// against a partial set silently.
		return Outcome{}, err
	}

	result := FindBestMatch(queryVector, records, s.cfg.SimilarityThreshold)
	if result.Found {
		s.logger.Debug("answered from local cache", "matched", result.MatchedQuestion, "score", result.Score)
		return Outcome{
			Question:        question,
			Answer:          result.MatchedAnswer,
			Source:          SourceLocal,
			MatchedQuestion: result.MatchedQuestion,
			Score:           result.Score,
		}, nil
	}

	answer, err := s.completeExternally(ctx, question)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Question:        question,
		Answer:          answer,
		Source:          SourceExternal,
		MatchedQuestion: externalMatchedQuestion,
	}, nil
}

func (s *service) completeExternally(ctx context.Context, question string) (string, error) {
	key := normalizeQuestion(question)

	cached, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warn("answer cache lookup failed", "error", err)
	} else if ok {
		s.logger.Debug("answered from completion cache", "key", key)
		return cached, nil
	}

	answer, err := s.completer.Complete(ctx, question)
	if err != nil {
		return "", err
	}
	if err := s.cache.Save(ctx, key, answer, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("answer cache save failed", "error", err)
	}
	return answer, nil
}

// PrimeCache embeds each seed entry (question and answer in one batched call)
// and upserts it into the store. Re-running against an unchanged seed set is
// a no-op. Priming is not atomic across entries: a failure aborts the
// remaining entries but keeps the rows already committed.
func (s *service) PrimeCache(ctx context.Context, entries []FAQEntry) error {
	for _, entry := range entries {
		question := strings.TrimSpace(entry.Question)
		answer := strings.TrimSpace(entry.Answer)
		if question == "" || answer == "" {
			return apperrors.Wrap(apperrors.CodeInvalidInput, "seed entry has empty question or answer", nil)
		}

		vectors, err := s.embedder.Embed(ctx, []string{question, answer})
		if err != nil {
			return err
		}
		if len(vectors) != 2 {
			return apperrors.Wrap(apperrors.CodeEmbedding, "expected two vectors for seed entry", nil)
		}

		rec := EmbeddingRecord{
			Question:          question,
			QuestionEmbedding: vectors[0],
			Answer:            answer,
			AnswerEmbedding:   vectors[1],
		}
		if err := s.store.Upsert(ctx, rec); err != nil {
			return err
		}
	}
	s.logger.Info("embedding cache primed", "entries", len(entries))
	return nil
}
