package engine_test

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scent-engine/backend/internal/catalog"
	"github.com/scent-engine/backend/internal/engine"
	"github.com/scent-engine/backend/internal/profile"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger.WithField("test", "engine")
}

func testCatalog() []catalog.Item {
	return []catalog.Item{
		{
			ID:     "noir",
			Brand:  "Maison Noir",
			Name:   "Encens",
			Family: "Oriental",
			Notes: catalog.Notes{
				Top:    []string{"incense"},
				Middle: []string{"tobacco"},
				Base:   []string{"leather", "oud"},
			},
			Description: "dark smoky leather for the evening",
			Tags:        []string{"dark", "smoky"},
		},
		{
			ID:     "marine",
			Brand:  "Profumo",
			Name:   "Acqua",
			Family: "Citrus",
			Notes: catalog.Notes{
				Top:    []string{"lime", "lemon"},
				Middle: []string{"salt"},
				Base:   []string{"musk"},
			},
			Description: "fresh clean citrus by the sea",
			Tags:        []string{"fresh", "citrus"},
		},
		{
			ID:     "rose",
			Brand:  "Atelier",
			Name:   "Velvet",
			Family: "Floral",
			Notes: catalog.Notes{
				Top:    []string{"rose"},
				Middle: []string{"jasmine"},
				Base:   []string{"musk"},
			},
			Description: "romantic rose bouquet",
			Tags:        []string{"floral", "romantic"},
		},
	}
}

func TestNewRejectsEmptyCatalog(t *testing.T) {
	_, err := engine.New(nil, 4, testLogger())
	assert.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}

func TestRecommendSingleItemCatalog(t *testing.T) {
	// Document text is exactly "woody cedar leather violet".
	items := []catalog.Item{{
		ID:     "solo",
		Family: "woody",
		Notes: catalog.Notes{
			Top:    []string{"cedar"},
			Middle: []string{"leather"},
			Base:   []string{"violet"},
		},
	}}
	eng, err := engine.New(items, 4, testLogger())
	require.NoError(t, err)

	p, recs := eng.Recommend(profile.Answers{"1": profile.Single("dark")})

	assert.Equal(t, []string{"dark incense leather tobacco smoky"}, p.Keywords)
	require.Len(t, recs, 1)
	assert.Equal(t, "solo", recs[0].ID)
	assert.NotZero(t, recs[0].MatchScore)
	assert.Contains(t, recs[0].Reasoning, "leather")
}

func TestRecommendUnrecognizedAnswers(t *testing.T) {
	eng, err := engine.New(testCatalog(), 4, testLogger())
	require.NoError(t, err)

	p, recs := eng.Recommend(profile.Answers{"1": profile.Single("bogus")})

	// Unknown values are ignored and the pipeline falls back to the default
	// query; every catalog item still comes back.
	assert.Empty(t, p.Keywords)
	assert.Len(t, recs, 3)
}

func TestRecommendNeverExceedsCatalogSize(t *testing.T) {
	eng, err := engine.New(testCatalog()[:2], 4, testLogger())
	require.NoError(t, err)

	_, recs := eng.Recommend(profile.Answers{"1": profile.Single("dark")})
	assert.Len(t, recs, 2)
}

func TestRecommendRanksRelevantFirst(t *testing.T) {
	eng, err := engine.New(testCatalog(), 4, testLogger())
	require.NoError(t, err)

	_, recs := eng.Recommend(profile.Answers{"1": profile.Single("dark")})

	require.NotEmpty(t, recs)
	assert.Equal(t, "noir", recs[0].ID)
	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].MatchScore, recs[i].MatchScore)
	}
}

func TestRecommendDeterministic(t *testing.T) {
	answers := profile.Answers{
		"1": profile.Multi("dark", "floral"),
		"3": profile.Single("citrus_beach"),
	}

	eng1, err := engine.New(testCatalog(), 4, testLogger())
	require.NoError(t, err)
	eng2, err := engine.New(testCatalog(), 4, testLogger())
	require.NoError(t, err)

	p1, recs1 := eng1.Recommend(answers)
	p2, recs2 := eng2.Recommend(answers)

	assert.Equal(t, p1.Keywords, p2.Keywords)
	assert.Equal(t, p1.Vector, p2.Vector)
	assert.Equal(t, recs1, recs2)
}

func TestVectorLengthMatchesVocabulary(t *testing.T) {
	eng, err := engine.New(testCatalog(), 4, testLogger())
	require.NoError(t, err)

	p := eng.AnalyzeUser(profile.Answers{"1": profile.Single("warm")})
	assert.Len(t, p.Vector, eng.IndexStats().VocabularySize)
}

func TestReloadSwapsIndex(t *testing.T) {
	eng, err := engine.New(testCatalog(), 4, testLogger())
	require.NoError(t, err)

	replacement := []catalog.Item{{
		ID:     "only",
		Family: "amber",
		Notes:  catalog.Notes{Base: []string{"vanilla"}},
	}}
	require.NoError(t, eng.Reload(replacement))

	assert.Len(t, eng.Items(), 1)
	assert.Equal(t, 1, eng.IndexStats().Items)

	_, recs := eng.Recommend(profile.Answers{"1": profile.Single("warm")})
	require.Len(t, recs, 1)
	assert.Equal(t, "only", recs[0].ID)
}

func TestReloadRejectsEmptyAndKeepsOldIndex(t *testing.T) {
	eng, err := engine.New(testCatalog(), 4, testLogger())
	require.NoError(t, err)

	assert.ErrorIs(t, eng.Reload(nil), catalog.ErrEmptyCatalog)
	assert.Len(t, eng.Items(), 3)
}
