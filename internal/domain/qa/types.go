package qa

import "time"

// Source tells the caller where an answer came from.
type Source string

const (
	// SourceLocal means a cached FAQ entry cleared the similarity threshold.
	SourceLocal Source = "local"
	// SourceExternal means the question was forwarded to the completion model.
	SourceExternal Source = "external"
)

// externalMatchedQuestion is reported when no stored question matched.
const externalMatchedQuestion = "N/A"

// FAQEntry is a static seed record. Immutable at runtime.
type FAQEntry struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// EmbeddingRecord is the persisted unit of the embedding cache. Question text
// is the unique key; re-upserting the same question replaces the row.
type EmbeddingRecord struct {
	ID                int64
	Question          string
	QuestionEmbedding []float32
	Answer            string
	AnswerEmbedding   []float32
}

// SimilarityResult reports the best candidate above the threshold, if any.
type SimilarityResult struct {
	MatchedQuestion string
	MatchedAnswer   string
	Score           float64
	Found           bool
}

// Outcome is returned to the transport for a single answered question.
type Outcome struct {
	Question        string  `json:"question"`
	Answer          string  `json:"answer"`
	Source          Source  `json:"source"`
	MatchedQuestion string  `json:"matchedQuestion"`
	Score           float64 `json:"score,omitempty"`
}

// Config holds runtime knobs for the QA service.
type Config struct {
	SimilarityThreshold float64
	CacheTTL            time.Duration
}
