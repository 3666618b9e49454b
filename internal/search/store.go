package search

import (
	"math"
	"sort"
)

// Document represents an indexed item's derived text and its vector.
type Document struct {
	ID      string
	Content string
	Vector  []float64
}

// Match pairs a document id with its similarity score.
type Match struct {
	ID    string
	Score float64
}

// VectorStore holds the indexed documents in insertion order. AddDocuments
// must be called exactly once, before any Rank call; the store is read-only
// afterwards and safe for concurrent Rank calls.
type VectorStore struct {
	Documents  []*Document
	Vectorizer *TFIDFVectorizer
}

func NewVectorStore() *VectorStore {
	return &VectorStore{
		Documents:  make([]*Document, 0),
		Vectorizer: NewTFIDFVectorizer(),
	}
}

// AddDocuments fits the vectorizer on the corpus and vectorizes every
// document.
func (vs *VectorStore) AddDocuments(docs []*Document) {
	rawTexts := make([]string, len(docs))
	for i, d := range docs {
		rawTexts[i] = d.Content
	}

	vs.Vectorizer.Fit(rawTexts)

	for _, d := range docs {
		d.Vector = vs.Vectorizer.Transform(d.Content)
		vs.Documents = append(vs.Documents, d)
	}
}

// Vector returns the stored vector for id, or nil when id is unknown.
func (vs *VectorStore) Vector(id string) []float64 {
	for _, d := range vs.Documents {
		if d.ID == id {
			return d.Vector
		}
	}
	return nil
}

// Rank scores query against every document and returns the topK best matches
// by descending similarity. The sort is stable, so equal scores keep
// insertion order. Zero-score documents are kept: the result length is
// min(topK, len(Documents)).
func (vs *VectorStore) Rank(query []float64, topK int) []Match {
	results := make([]Match, 0, len(vs.Documents))

	for _, doc := range vs.Documents {
		results = append(results, Match{
			ID:    doc.ID,
			Score: CosineSimilarity(query, doc.Vector),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		return results[:topK]
	}
	return results
}

// CosineSimilarity calculates the cosine similarity between two vectors.
// Mismatched lengths or a zero-norm side yield 0, never NaN.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}
	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dotProduct / (math.Sqrt(normA) * math.Sqrt(normB))
}
