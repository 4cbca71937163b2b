package pathgen

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// tokenPattern matches word tokens of two or more characters, mirroring the
// usual vectorizer default.
var tokenPattern = regexp.MustCompile(`[\pL\pN_][\pL\pN_]+`)

// tfidfVectorizer turns a document corpus into l2-normalized TF-IDF vectors:
// lowercase word tokens of length >= 2, english stop words removed, vocabulary
// capped at maxFeatures terms by corpus frequency, smoothed IDF.
type tfidfVectorizer struct {
	maxFeatures int
}

// fitTransform builds the vocabulary from the corpus and returns one vector
// per document. All vectors share the same dimensionality.
func (v tfidfVectorizer) fitTransform(docs []string) [][]float64 {
	tokenized := make([][]string, len(docs))
	for i, doc := range docs {
		tokenized[i] = tokenize(doc)
	}

	vocab := buildVocabulary(tokenized, v.maxFeatures)
	if len(vocab) == 0 {
		return make([][]float64, len(docs))
	}

	// Document frequency per term.
	df := make([]int, len(vocab))
	for _, tokens := range tokenized {
		seen := make(map[int]struct{})
		for _, tok := range tokens {
			if idx, ok := vocab[tok]; ok {
				seen[idx] = struct{}{}
			}
		}
		for idx := range seen {
			df[idx]++
		}
	}

	// Smoothed IDF: ln((1+n)/(1+df)) + 1.
	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	vectors := make([][]float64, len(docs))
	for i, tokens := range tokenized {
		vec := make([]float64, len(vocab))
		for _, tok := range tokens {
			if idx, ok := vocab[tok]; ok {
				vec[idx] += idf[idx]
			}
		}
		l2Normalize(vec)
		vectors[i] = vec
	}

	return vectors
}

func tokenize(doc string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(doc), -1)
	tokens := raw[:0]
	for _, tok := range raw {
		if _, stop := englishStopWords[tok]; !stop {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// buildVocabulary maps each kept term to its vector index. When the corpus
// has more distinct terms than maxFeatures, the most frequent terms win;
// ties break alphabetically.
func buildVocabulary(tokenized [][]string, maxFeatures int) map[string]int {
	counts := make(map[string]int)
	for _, tokens := range tokenized {
		for _, tok := range tokens {
			counts[tok]++
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}

	if maxFeatures > 0 && len(terms) > maxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if counts[terms[i]] != counts[terms[j]] {
				return counts[terms[i]] > counts[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:maxFeatures]
	}

	// Index terms alphabetically for deterministic vectors.
	sort.Strings(terms)
	vocab := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
	}
	return vocab
}

func l2Normalize(vec []float64) {
	var sum float64
	for _, x := range vec {
		sum += x * x
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

// cosineSimilarity returns the cosine of the angle between two vectors.
// Zero vectors and mismatched lengths yield 0.
func cosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
