package search

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sariga-2005/VidhimurAI/internal/cache"
	"github.com/Sariga-2005/VidhimurAI/internal/ranking"
	"github.com/Sariga-2005/VidhimurAI/internal/storage/models"
	"github.com/Sariga-2005/VidhimurAI/internal/storage/sqlite"
)

type countingSource struct {
	cases []models.CaseRecord
	err   error
	calls int
}

func (s *countingSource) GetAllCases() ([]models.CaseRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.cases, nil
}

func defaultOptions() Options {
	return Options{
		RelevanceThreshold:   2.0,
		RerankRelevanceMin:   5.0,
		AuthorityMinHighTier: 5,
	}
}

func newTestEngine(repo CaseSource, opts Options) *Engine {
	scorer := ranking.NewScorer(2024, 5.0, 0.25)
	return NewEngine(repo, cache.New(time.Hour), scorer, nil, opts)
}

func tenancyCases() []models.CaseRecord {
	return []models.CaseRecord{
		{
			KanoonTID:     1,
			CaseName:      "Mehta vs Kapoor",
			Court:         "Delhi High Court",
			Year:          2022,
			CitationCount: 40,
			Summary:       "landlord ordered to refund the security deposit to the tenant",
		},
		{
			KanoonTID:     2,
			CaseName:      "Rao vs Housing Society",
			Court:         "District Court, Pune",
			Year:          2023,
			CitationCount: 2,
			Summary:       "tenant eviction over unpaid rent; deposit forfeited",
		},
		{
			KanoonTID:     3,
			CaseName:      "Union vs Federation",
			Court:         "Supreme Court of India",
			Year:          1985,
			CitationCount: 900,
			Summary:       "inter-state river water allocation",
		},
	}
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("returns scored cases sorted by final score", func(t *testing.T) {
		repo := &countingSource{cases: tenancyCases()}
		engine := newTestEngine(repo, defaultOptions())

		resp, err := engine.Search(ctx, "landlord kept my deposit", nil)
		require.NoError(t, err)

		require.Len(t, resp.TopCases, 2)
		assert.Equal(t, resp.TopCases[0].StrengthScore, resp.MostInfluentialCase.StrengthScore)
		for i := 1; i < len(resp.TopCases); i++ {
			assert.GreaterOrEqual(t, resp.TopCases[i-1].StrengthScore, resp.TopCases[i].StrengthScore)
		}
	})

	t.Run("irrelevant cases dropped by relevance threshold", func(t *testing.T) {
		repo := &countingSource{cases: tenancyCases()}
		engine := newTestEngine(repo, defaultOptions())

		resp, err := engine.Search(ctx, "landlord kept my deposit", nil)
		require.NoError(t, err)

		for _, c := range resp.TopCases {
			assert.NotEqual(t, 3, c.KanoonTID, "irrelevant landmark case survived the threshold")
		}
	})

	t.Run("empty result set", func(t *testing.T) {
		repo := &countingSource{cases: []models.CaseRecord{}}
		engine := newTestEngine(repo, defaultOptions())

		resp, err := engine.Search(ctx, "landlord deposit", nil)
		require.NoError(t, err)
		assert.Zero(t, resp.TotalCases)
		assert.Nil(t, resp.MostInfluentialCase)
	})

	t.Run("dataset error propagates", func(t *testing.T) {
		repo := &countingSource{err: fmt.Errorf("%w: disk gone", sqlite.ErrDatasetUnavailable)}
		engine := newTestEngine(repo, defaultOptions())

		_, err := engine.Search(ctx, "landlord deposit", nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, sqlite.ErrDatasetUnavailable)
	})
}

func TestSearchCaching(t *testing.T) {
	ctx := context.Background()

	t.Run("unfiltered results are cached", func(t *testing.T) {
		repo := &countingSource{cases: tenancyCases()}
		engine := newTestEngine(repo, defaultOptions())

		first, err := engine.Search(ctx, "landlord kept my deposit", nil)
		require.NoError(t, err)
		second, err := engine.Search(ctx, "landlord kept my deposit", nil)
		require.NoError(t, err)

		assert.Equal(t, 1, repo.calls)
		assert.Equal(t, first, second)
	})

	t.Run("filtered queries bypass the cache", func(t *testing.T) {
		repo := &countingSource{cases: tenancyCases()}
		engine := newTestEngine(repo, defaultOptions())
		filters := &models.SearchFilters{Court: "Delhi High Court"}

		_, err := engine.Search(ctx, "landlord kept my deposit", filters)
		require.NoError(t, err)
		_, err = engine.Search(ctx, "landlord kept my deposit", filters)
		require.NoError(t, err)

		assert.Equal(t, 2, repo.calls)
	})

	t.Run("filtered query does not poison the unfiltered cache", func(t *testing.T) {
		repo := &countingSource{cases: tenancyCases()}
		engine := newTestEngine(repo, defaultOptions())

		_, err := engine.Search(ctx, "landlord kept my deposit", &models.SearchFilters{Court: "Delhi High Court"})
		require.NoError(t, err)

		resp, err := engine.Search(ctx, "landlord kept my deposit", nil)
		require.NoError(t, err)

		assert.Equal(t, 2, repo.calls)
		assert.Len(t, resp.TopCases, 2)
	})
}

func TestAuthorityFilter(t *testing.T) {
	ctx := context.Background()

	t.Run("district courts dropped when high tiers suffice", func(t *testing.T) {
		opts := defaultOptions()
		opts.AuthorityMinHighTier = 2
		repo := &countingSource{cases: tenancyCases()}
		engine := newTestEngine(repo, opts)

		resp, err := engine.Search(ctx, "landlord kept my deposit", nil)
		require.NoError(t, err)

		for _, c := range resp.TopCases {
			assert.NotContains(t, c.Court, "District")
		}
	})

	t.Run("everything stays when high tiers are scarce", func(t *testing.T) {
		repo := &countingSource{cases: tenancyCases()}
		engine := newTestEngine(repo, defaultOptions())

		resp, err := engine.Search(ctx, "landlord kept my deposit", nil)
		require.NoError(t, err)

		courts := make([]string, 0, len(resp.TopCases))
		for _, c := range resp.TopCases {
			courts = append(courts, c.Court)
		}
		assert.Contains(t, courts, "District Court, Pune")
	})
}

func TestSearchFilters(t *testing.T) {
	ctx := context.Background()

	t.Run("court filter is case insensitive", func(t *testing.T) {
		repo := &countingSource{cases: tenancyCases()}
		engine := newTestEngine(repo, defaultOptions())

		resp, err := engine.Search(ctx, "landlord kept my deposit", &models.SearchFilters{Court: "delhi high court"})
		require.NoError(t, err)

		require.Len(t, resp.TopCases, 1)
		assert.Equal(t, 1, resp.TopCases[0].KanoonTID)
	})

	t.Run("year bounds are inclusive", func(t *testing.T) {
		repo := &countingSource{cases: tenancyCases()}
		engine := newTestEngine(repo, defaultOptions())

		start, end := 2022, 2022
		resp, err := engine.Search(ctx, "landlord kept my deposit", &models.SearchFilters{YearStart: &start, YearEnd: &end})
		require.NoError(t, err)

		require.Len(t, resp.TopCases, 1)
		assert.Equal(t, 2022, resp.TopCases[0].Year)
	})

	t.Run("filters can eliminate everything", func(t *testing.T) {
		repo := &countingSource{cases: tenancyCases()}
		engine := newTestEngine(repo, defaultOptions())

		start := 2030
		resp, err := engine.Search(ctx, "landlord kept my deposit", &models.SearchFilters{YearStart: &start})
		require.NoError(t, err)
		assert.Empty(t, resp.TopCases)
	})
}

func TestRerankByRelevance(t *testing.T) {
	// The authority-heavy case ends up with the higher final score, but
	// the meaningfully relevant one must come out on top.
	cases := []models.CaseRecord{
		{
			KanoonTID:     10,
			CaseName:      "Alpha vs Beta",
			Court:         "Supreme Court of India",
			Year:          2022,
			CitationCount: 2000,
			Summary:       "constitutional federalism question",
		},
		{
			KanoonTID: 11,
			CaseName:  "Gamma vs Delta",
			Court:     "District Court",
			Year:      2024,
			Summary:   "local civil matter",
		},
	}

	repo := &countingSource{cases: cases}
	engine := newTestEngine(repo, defaultOptions())

	resp, err := engine.Search(context.Background(), "helicopter insurance", nil)
	require.NoError(t, err)

	require.Len(t, resp.TopCases, 2)
	assert.Equal(t, 11, resp.TopCases[0].KanoonTID)
	assert.Equal(t, 10, resp.TopCases[1].KanoonTID)
	assert.Greater(t, resp.TopCases[1].StrengthScore, resp.TopCases[0].StrengthScore)
}
