package search

import (
	"math"
)

// TFIDFVectorizer implements Term Frequency - Inverse Document Frequency.
// The vocabulary keeps first-seen order, so index i refers to the same term
// for every vector produced after Fit. Fit is called once at index build;
// Transform is safe for concurrent use afterwards.
type TFIDFVectorizer struct {
	Terms []string           // vocabulary in first-seen order
	Index map[string]int     // term -> position in Terms
	IDF   map[string]float64 // term -> ln(N / (1 + df))
}

func NewTFIDFVectorizer() *TFIDFVectorizer {
	return &TFIDFVectorizer{
		Index: make(map[string]int),
		IDF:   make(map[string]float64),
	}
}

// Fit analyzes the corpus to build the vocabulary and IDF stats. Terms
// shorter than MinTermLength are skipped; a term counts once per document
// regardless of repetition. IDF values can be zero or negative for terms
// appearing in (nearly) every document and are kept as-is.
func (v *TFIDFVectorizer) Fit(docs []string) {
	docCount := float64(len(docs))
	docFreq := make(map[string]int)

	for _, doc := range docs {
		seenInDoc := make(map[string]bool)
		for _, term := range Tokenize(doc) {
			if len(term) < MinTermLength || seenInDoc[term] {
				continue
			}
			seenInDoc[term] = true
			docFreq[term]++
			if _, exists := v.Index[term]; !exists {
				v.Index[term] = len(v.Terms)
				v.Terms = append(v.Terms, term)
			}
		}
	}

	for term, df := range docFreq {
		v.IDF[term] = math.Log(docCount / (1 + float64(df)))
	}
}

// Transform converts text to a vector aligned to the fitted vocabulary:
// vector[i] = rawCount(Terms[i]) * IDF(Terms[i]). Terms outside the
// vocabulary contribute nothing.
func (v *TFIDFVectorizer) Transform(text string) []float64 {
	vector := make([]float64, len(v.Terms))

	tf := make(map[string]float64)
	for _, term := range Tokenize(text) {
		tf[term]++
	}

	for term, count := range tf {
		if idx, exists := v.Index[term]; exists {
			vector[idx] = count * v.IDF[term]
		}
	}

	return vector
}

// VocabularySize returns the dimensionality of every produced vector.
func (v *TFIDFVectorizer) VocabularySize() int {
	return len(v.Terms)
}
