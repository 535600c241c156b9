package embedstore

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"faqpilot/internal/domain/qa"
	apperrors "faqpilot/pkg/errors"
)

// PostgresStore implements qa.Store on top of pgx with pgvector columns.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore constructs the store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the embeddings table if it does not exist yet.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	statements := []string{
		`CREATE EXTENSION IF NOT EXISTS vector`,
		`CREATE TABLE IF NOT EXISTS embeddings (
			id BIGSERIAL PRIMARY KEY,
			question TEXT NOT NULL UNIQUE,
			question_embedding vector NOT NULL,
			answer TEXT NOT NULL,
			answer_embedding vector NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return apperrors.Wrap(apperrors.CodeStorage, "ensure embeddings schema", err)
		}
	}
	return nil
}

// Upsert inserts or fully replaces the row keyed by question text. The single
// statement is atomic: on conflict the prior row is replaced wholesale, on
// failure it is left untouched.
func (s *PostgresStore) Upsert(ctx context.Context, rec qa.EmbeddingRecord) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO embeddings (question, question_embedding, answer, answer_embedding)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (question) DO UPDATE
		SET question_embedding = EXCLUDED.question_embedding,
		    answer = EXCLUDED.answer,
		    answer_embedding = EXCLUDED.answer_embedding
	`, rec.Question, pgvector.NewVector(rec.QuestionEmbedding), rec.Answer, pgvector.NewVector(rec.AnswerEmbedding))
	if err != nil {
		return apperrors.Wrap(apperrors.CodeStorage, "upsert embedding record", err)
	}
	return nil
}

// FetchAll loads the entire embedding cache ordered by id. No pagination: the
// knowledge base is expected to stay small.
func (s *PostgresStore) FetchAll(ctx context.Context) ([]qa.EmbeddingRecord, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, question, question_embedding, answer, answer_embedding
		FROM embeddings
		ORDER BY id
	`)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "retrieve embedding records", err)
	}
	defer rows.Close()

	var records []qa.EmbeddingRecord
	for rows.Next() {
		var (
			rec            qa.EmbeddingRecord
			questionVector pgvector.Vector
			answerVector   pgvector.Vector
		)
		if err := rows.Scan(&rec.ID, &rec.Question, &questionVector, &rec.Answer, &answerVector); err != nil {
			return nil, apperrors.Wrap(apperrors.CodeStorage, "scan embedding record", err)
		}
		rec.QuestionEmbedding = questionVector.Slice()
		rec.AnswerEmbedding = answerVector.Slice()
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStorage, "retrieve embedding records", err)
	}
	return records, nil
}

var _ qa.Store = (*PostgresStore)(nil)
