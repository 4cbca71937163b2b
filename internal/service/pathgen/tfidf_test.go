package pathgen

import (
	"math"
	"testing"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases and drops short tokens", "Go Programming", []string{"programming"}},
		{"drops stop words", "the art of computer programming", []string{"art", "computer", "programming"}},
		{"splits on punctuation", "data-driven design, fast!", []string{"data", "driven", "design", "fast"}},
		{"empty", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tokenize(tt.in)
			if len(got) != len(tt.want) {
				t.Fatalf("tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTFIDF_SimilarDocsScoreHigher(t *testing.T) {
	t.Parallel()

	docs := []string{
		"machine learning neural networks deep models",
		"french cooking pastry baking recipes",
		"machine learning models for prediction",
	}
	vectors := tfidfVectorizer{maxFeatures: 500}.fitTransform(docs)

	simRelated := cosineSimilarity(vectors[0], vectors[2])
	simUnrelated := cosineSimilarity(vectors[0], vectors[1])

	if simRelated <= simUnrelated {
		t.Errorf("related docs should score higher: related=%f unrelated=%f", simRelated, simUnrelated)
	}
	if simUnrelated != 0 {
		t.Errorf("docs with no shared terms should score 0, got %f", simUnrelated)
	}
}

func TestTFIDF_VectorsAreL2Normalized(t *testing.T) {
	t.Parallel()

	vectors := tfidfVectorizer{maxFeatures: 500}.fitTransform([]string{
		"distributed systems consensus replication",
		"databases indexing storage",
	})

	for i, vec := range vectors {
		var sum float64
		for _, x := range vec {
			sum += x * x
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("vector %d norm^2 = %f, want 1", i, sum)
		}
	}
}

func TestTFIDF_MaxFeaturesKeepsMostFrequentTerms(t *testing.T) {
	t.Parallel()

	docs := []string{
		"alpha alpha alpha beta",
		"alpha beta gamma",
		"delta epsilon",
	}
	vectors := tfidfVectorizer{maxFeatures: 2}.fitTransform(docs)

	for i, vec := range vectors {
		if len(vec) != 2 {
			t.Fatalf("vector %d has %d features, want 2", i, len(vec))
		}
	}

	// alpha and beta are the two most frequent terms; the third document
	// contains neither, so its vector is zero.
	for _, x := range vectors[2] {
		if x != 0 {
			t.Errorf("doc without kept terms should have zero vector, got %v", vectors[2])
		}
	}
}

func TestTFIDF_EmptyCorpus(t *testing.T) {
	t.Parallel()

	vectors := tfidfVectorizer{maxFeatures: 500}.fitTransform([]string{"", "the of and"})
	if len(vectors) != 2 {
		t.Fatalf("expected 2 vectors, got %d", len(vectors))
	}
	if cosineSimilarity(vectors[0], vectors[1]) != 0 {
		t.Error("empty vectors should have zero similarity")
	}
}

func TestCosineSimilarity(t *testing.T) {
	t.Parallel()

	if got := cosineSimilarity([]float64{1, 0}, []float64{1, 0}); math.Abs(got-1) > 1e-9 {
		t.Errorf("identical vectors: got %f, want 1", got)
	}
	if got := cosineSimilarity([]float64{1, 0}, []float64{0, 1}); got != 0 {
		t.Errorf("orthogonal vectors: got %f, want 0", got)
	}
	if got := cosineSimilarity([]float64{1, 0}, []float64{0, 0}); got != 0 {
		t.Errorf("zero vector: got %f, want 0", got)
	}
	if got := cosineSimilarity([]float64{1}, []float64{1, 2}); got != 0 {
		t.Errorf("mismatched lengths: got %f, want 0", got)
	}
}
