package qa

import "math"

// FindBestMatch scores every candidate against the query vector and returns
// the highest-scoring one at or above the threshold. Ties keep the earliest
// candidate in input order. An empty candidate set, or no candidate clearing
// the threshold, yields Found == false; that is the fallback signal, not an
// error.
func FindBestMatch(query []float32, candidates []EmbeddingRecord, threshold float64) SimilarityResult {
	var best SimilarityResult
	for _, candidate := range candidates {
		score := CosineSimilarity(query, candidate.QuestionEmbedding)
		if score < threshold {
			continue
		}
		if !best.Found || score > best.Score {
			best = SimilarityResult{
				MatchedQuestion: candidate.Question,
				MatchedAnswer:   candidate.Answer,
				Score:           score,
				Found:           true,
			}
		}
	}
	return best
}

// CosineSimilarity computes (A · B) / (||A|| * ||B||). Vectors of mismatched
// or zero length score 0; callers are expected to compare vectors produced by
// the same embedding model.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
