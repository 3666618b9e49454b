// Package engine owns the catalog index and runs the recommendation
// pipeline: analyze answers, rank the catalog, explain the matches.
package engine

import (
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scent-engine/backend/internal/catalog"
	"github.com/scent-engine/backend/internal/profile"
	"github.com/scent-engine/backend/internal/search"
)

// DefaultTopK is the number of recommendations returned when no explicit
// count is configured.
const DefaultTopK = 4

// index bundles everything derived from one catalog load: the items, an id
// lookup, and the fitted vector store. It is immutable after newIndex
// returns; Engine swaps the whole bundle on reload so partial updates are
// never visible.
type index struct {
	items   []catalog.Item
	byID    map[string]catalog.Item
	store   *search.VectorStore
	builtAt time.Time
}

func newIndex(items []catalog.Item) (*index, error) {
	if err := catalog.Validate(items); err != nil {
		return nil, err
	}

	byID := make(map[string]catalog.Item, len(items))
	docs := make([]*search.Document, len(items))
	for i, it := range items {
		byID[it.ID] = it
		docs[i] = &search.Document{ID: it.ID, Content: it.Document()}
	}

	store := search.NewVectorStore()
	store.AddDocuments(docs)

	return &index{
		items:   items,
		byID:    byID,
		store:   store,
		builtAt: time.Now(),
	}, nil
}

// Engine answers recommendation requests against the current index. All
// methods are safe for concurrent use: requests only read the published
// index and build transient per-request state.
type Engine struct {
	Logger *logrus.Entry
	TopK   int

	mu  sync.RWMutex
	idx *index
}

// Profile is the analyzed form of a user's answers.
type Profile struct {
	Keywords []string
	Vector   []float64
}

// Recommendation is one scored catalog item.
type Recommendation struct {
	catalog.Item
	MatchScore int    `json:"matchScore"`
	Reasoning  string `json:"reasoning"`
}

// Stats describes the current index.
type Stats struct {
	Items          int
	VocabularySize int
	BuiltAt        time.Time
}

// New builds the catalog index and returns a ready Engine. An invalid or
// empty catalog fails the build; no engine is published in that case.
func New(items []catalog.Item, topK int, logger *logrus.Entry) (*Engine, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	idx, err := newIndex(items)
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"items":      len(items),
		"vocabulary": idx.store.Vectorizer.VocabularySize(),
	}).Info("Catalog index built")

	return &Engine{Logger: logger, TopK: topK, idx: idx}, nil
}

// Reload rebuilds the index from items and swaps it in atomically. A failed
// build leaves the current index untouched; in-flight requests keep the
// index they started with.
func (e *Engine) Reload(items []catalog.Item) error {
	idx, err := newIndex(items)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.idx = idx
	e.mu.Unlock()

	e.Logger.WithFields(logrus.Fields{
		"items":      len(items),
		"vocabulary": idx.store.Vectorizer.VocabularySize(),
	}).Info("Catalog index reloaded")
	return nil
}

func (e *Engine) snapshot() *index {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.idx
}

// AnalyzeUser converts quiz answers into matched keywords and a query vector
// aligned to the current vocabulary.
func (e *Engine) AnalyzeUser(answers profile.Answers) Profile {
	return analyze(e.snapshot(), answers)
}

func analyze(idx *index, answers profile.Answers) Profile {
	keywords := profile.Keywords(answers)
	vector := idx.store.Vectorizer.Transform(profile.QueryText(keywords))
	return Profile{Keywords: keywords, Vector: vector}
}

// Recommend runs the full pipeline against one index snapshot: analyze the
// answers, rank every catalog item by cosine similarity, and annotate the
// top results with match scores and reasoning.
func (e *Engine) Recommend(answers profile.Answers) (Profile, []Recommendation) {
	idx := e.snapshot()
	p := analyze(idx, answers)

	matches := idx.store.Rank(p.Vector, e.TopK)
	recs := make([]Recommendation, len(matches))
	for i, m := range matches {
		item := idx.byID[m.ID]
		recs[i] = Recommendation{
			Item:       item,
			MatchScore: int(math.Round(m.Score * 100)),
			Reasoning:  Reason(item, p.Keywords),
		}
	}
	return p, recs
}

// Items returns the catalog in load order.
func (e *Engine) Items() []catalog.Item {
	return e.snapshot().items
}

// IndexStats reports the size and build time of the current index.
func (e *Engine) IndexStats() Stats {
	idx := e.snapshot()
	return Stats{
		Items:          len(idx.items),
		VocabularySize: idx.store.Vectorizer.VocabularySize(),
		BuiltAt:        idx.builtAt,
	}
}
