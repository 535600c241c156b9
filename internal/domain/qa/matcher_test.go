package qa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCosineSimilarityIdenticalVectors(t *testing.T) {
	sim := CosineSimilarity([]float32{1, 0}, []float32{1, 0})
	require.InDelta(t, 1.0, sim, 1e-9)
}

func TestCosineSimilarityOrthogonalVectors(t *testing.T) {
	sim := CosineSimilarity([]float32{1, 0}, []float32{0, 1})
	require.InDelta(t, 0.0, sim, 1e-9)
}

func TestCosineSimilarityDegenerateInputs(t *testing.T) {
	require.Zero(t, CosineSimilarity(nil, nil))
	require.Zero(t, CosineSimilarity([]float32{1, 0}, []float32{1}))
	require.Zero(t, CosineSimilarity([]float32{0, 0}, []float32{1, 0}))
}

func TestFindBestMatchPicksHighestScore(t *testing.T) {
	candidates := []EmbeddingRecord{
		{Question: "far", Answer: "a1", QuestionEmbedding: []float32{1, 1}},
		{Question: "near", Answer: "a2", QuestionEmbedding: []float32{1, 0.01}},
	}

	res := FindBestMatch([]float32{1, 0}, candidates, 0.5)
	require.True(t, res.Found)
	require.Equal(t, "near", res.MatchedQuestion)
	require.Equal(t, "a2", res.MatchedAnswer)
	require.Greater(t, res.Score, 0.9)
}

func TestFindBestMatchThresholdIsInclusive(t *testing.T) {
	// Identical vectors score exactly 1.0, so a threshold of 1.0 must match.
	candidates := []EmbeddingRecord{
		{Question: "exact", Answer: "a", QuestionEmbedding: []float32{0, 1}},
	}

	res := FindBestMatch([]float32{0, 1}, candidates, 1.0)
	require.True(t, res.Found)
	require.Equal(t, "exact", res.MatchedQuestion)
}

func TestFindBestMatchNothingClearsThreshold(t *testing.T) {
	candidates := []EmbeddingRecord{
		{Question: "q1", QuestionEmbedding: []float32{0, 1}},
		{Question: "q2", QuestionEmbedding: []float32{0, -1}},
	}

	res := FindBestMatch([]float32{1, 0}, candidates, 0.8)
	require.False(t, res.Found)
	require.Empty(t, res.MatchedQuestion)
	require.Empty(t, res.MatchedAnswer)
	require.Zero(t, res.Score)
}

func TestFindBestMatchEmptyCandidateSet(t *testing.T) {
	res := FindBestMatch([]float32{1, 0}, nil, 0.8)
	require.False(t, res.Found)
}

func TestFindBestMatchTieKeepsFirstCandidate(t *testing.T) {
	candidates := []EmbeddingRecord{
		{Question: "first", Answer: "a1", QuestionEmbedding: []float32{1, 0}},
		{Question: "second", Answer: "a2", QuestionEmbedding: []float32{2, 0}},
	}

	res := FindBestMatch([]float32{1, 0}, candidates, 0.8)
	require.True(t, res.Found)
	require.Equal(t, "first", res.MatchedQuestion)
}
