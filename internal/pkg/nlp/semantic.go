package nlp

import (
	"context"
	"math"

	"github.com/DrNour/adaptive-translation-platform/internal/pkg/llm"
	"github.com/DrNour/adaptive-translation-platform/internal/pkg/metrics"
	"github.com/sirupsen/logrus"
)

// SemanticScorer estimates meaning preservation between two texts on a
// 0-100 scale. Implementations must be deterministic for equal inputs.
type SemanticScorer interface {
	Score(ctx context.Context, a, b string) (float64, error)
}

// TFIDFScorer is the pure, dependency-free default: cosine similarity of
// smoothed TF-IDF vectors over the two texts. Identical texts score 100
// and texts with disjoint vocabularies score 0.
type TFIDFScorer struct{}

func NewTFIDFScorer() *TFIDFScorer {
	return &TFIDFScorer{}
}

func (s *TFIDFScorer) Score(_ context.Context, a, b string) (float64, error) {
	return tfidfCosine(a, b), nil
}

func tfidfCosine(a, b string) float64 {
	tokensA := metrics.Tokenize(a)
	tokensB := metrics.Tokenize(b)
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0
	}

	countsA := termCounts(tokensA)
	countsB := termCounts(tokensB)

	// Smoothed IDF over the two-document collection, so terms shared by
	// both texts keep a non-zero weight.
	idf := func(term string) float64 {
		df := 0
		if countsA[term] > 0 {
			df++
		}
		if countsB[term] > 0 {
			df++
		}
		return math.Log(3.0/float64(1+df)) + 1
	}

	dot := 0.0
	normA := 0.0
	normB := 0.0
	seen := make(map[string]bool, len(countsA)+len(countsB))
	for _, counts := range []map[string]int{countsA, countsB} {
		for term := range counts {
			if seen[term] {
				continue
			}
			seen[term] = true
			w := idf(term)
			wa := float64(countsA[term]) * w
			wb := float64(countsB[term]) * w
			dot += wa * wb
			normA += wa * wa
			normB += wb * wb
		}
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)) * 100
}

func termCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// EmbeddingScorer scores via an embedding backend and falls back to the
// TF-IDF scorer when the backend is unavailable or times out, so scoring
// never fails a submission.
type EmbeddingScorer struct {
	client   *llm.Client
	fallback *TFIDFScorer
	log      *logrus.Logger
}

func NewEmbeddingScorer(client *llm.Client, log *logrus.Logger) *EmbeddingScorer {
	return &EmbeddingScorer{
		client:   client,
		fallback: NewTFIDFScorer(),
		log:      log,
	}
}

func (s *EmbeddingScorer) Score(ctx context.Context, a, b string) (float64, error) {
	if !s.client.Configured() {
		return s.fallback.Score(ctx, a, b)
	}

	vectors, err := s.client.Embed(ctx, []string{a, b})
	if err != nil {
		if s.log != nil {
			s.log.WithError(err).Warn("embedding backend unavailable, using tf-idf fallback")
		}
		return s.fallback.Score(ctx, a, b)
	}

	score := vectorCosine(vectors[0], vectors[1]) * 100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}

func vectorCosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	dot := 0.0
	normA := 0.0
	normB := 0.0
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
