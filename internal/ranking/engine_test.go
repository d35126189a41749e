package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Sariga-2005/VidhimurAI/internal/storage/models"
)

func newTestScorer() *Scorer {
	return NewScorer(2024, 5.0, 0.25)
}

func TestScoreBreakdown(t *testing.T) {
	scorer := newTestScorer()

	t.Run("fully relevant recent high court case", func(t *testing.T) {
		c := &models.CaseRecord{
			CaseName: "Tenant vs Landlord",
			Court:    "Delhi High Court",
			Year:     2024,
			Summary:  "tenant eviction dispute",
		}

		score, bd := scorer.Score(c, []string{"tenant"}, ModeSearch)

		assert.Equal(t, 21.0, bd.CourtWeight)
		assert.Equal(t, 0.0, bd.CitationScore)
		assert.Equal(t, 5.0, bd.RecencyBoost)
		assert.Equal(t, 100.0, bd.QueryOverlap)
		assert.Equal(t, 21.0, bd.AuthorityScore)
		assert.Equal(t, 105.0, bd.RelevanceScore)
		assert.Equal(t, 127.05, bd.FinalScore)
		assert.Equal(t, bd.FinalScore, score)
		assert.Equal(t, ModeSearch, bd.Mode)
	})

	t.Run("zero relevance zeroes the final score", func(t *testing.T) {
		// A heavily cited apex-court case contributes nothing when the
		// query does not touch it.
		c := &models.CaseRecord{
			CaseName:      "Kesavananda Bharati vs State of Kerala",
			Court:         "Supreme Court of India",
			Year:          1973,
			CitationCount: 5000,
			Summary:       "basic structure doctrine",
		}

		score, bd := scorer.Score(c, []string{"deposit"}, ModeSearch)

		assert.Equal(t, 0.0, bd.RelevanceScore)
		assert.Equal(t, 0.0, score)
		assert.Greater(t, bd.AuthorityScore, 0.0)
	})

	t.Run("relevant district case outranks irrelevant supreme court case", func(t *testing.T) {
		district := &models.CaseRecord{
			CaseName: "Sharma vs Gupta",
			Court:    "District Court, Pune",
			Year:     2022,
			Summary:  "security deposit refund ordered against landlord",
		}
		supreme := &models.CaseRecord{
			CaseName:      "State vs Union",
			Court:         "Supreme Court of India",
			Year:          1980,
			CitationCount: 3000,
			Summary:       "federal taxation powers",
		}

		tokens := []string{"deposit", "landlord"}
		districtScore, _ := scorer.Score(district, tokens, ModeSearch)
		supremeScore, _ := scorer.Score(supreme, tokens, ModeSearch)

		assert.Greater(t, districtScore, supremeScore)
	})

	t.Run("score is never negative", func(t *testing.T) {
		c := &models.CaseRecord{
			CaseName: "Ancient vs Older",
			Court:    "District Court",
			Year:     1950,
		}
		score, _ := scorer.Score(c, []string{"nothing"}, ModeEmpower)
		assert.GreaterOrEqual(t, score, 0.0)
	})
}

func TestRecencyBoost(t *testing.T) {
	scorer := newTestScorer()

	t.Run("monotonic in year", func(t *testing.T) {
		newer := &models.CaseRecord{Court: "District", Year: 2020, Summary: "tenant"}
		older := &models.CaseRecord{Court: "District", Year: 2000, Summary: "tenant"}

		_, bdNewer := scorer.Score(newer, []string{"tenant"}, ModeSearch)
		_, bdOlder := scorer.Score(older, []string{"tenant"}, ModeSearch)

		assert.Greater(t, bdNewer.RecencyBoost, bdOlder.RecencyBoost)
	})

	t.Run("floors at zero for very old cases", func(t *testing.T) {
		ancient := &models.CaseRecord{Court: "District", Year: 1950, Summary: "tenant"}
		_, bd := scorer.Score(ancient, []string{"tenant"}, ModeSearch)
		assert.Equal(t, 0.0, bd.RecencyBoost)
	})
}

func TestCitationScore(t *testing.T) {
	scorer := newTestScorer()
	base := models.CaseRecord{Court: "District", Year: 2024, Summary: "tenant"}
	tokens := []string{"tenant"}

	few := base
	few.CitationCount = 10
	many := base
	many.CitationCount = 1000

	_, bdFew := scorer.Score(&few, tokens, ModeSearch)
	_, bdMany := scorer.Score(&many, tokens, ModeSearch)

	// More citations score higher, but a 100x citation count does not
	// translate into a 100x citation score.
	assert.Greater(t, bdMany.CitationScore, bdFew.CitationScore)
	assert.Less(t, bdMany.CitationScore, bdFew.CitationScore*3)
}

func TestOverlapScore(t *testing.T) {
	scorer := newTestScorer()

	t.Run("fraction of matched tokens", func(t *testing.T) {
		c := &models.CaseRecord{
			Court:   "District",
			Year:    2024,
			Summary: "landlord withheld the deposit",
		}
		_, bd := scorer.Score(c, []string{"landlord", "deposit", "helicopter", "submarine"}, ModeSearch)
		assert.Equal(t, 50.0, bd.QueryOverlap)
	})

	t.Run("matches across keywords and statutes", func(t *testing.T) {
		c := &models.CaseRecord{
			Court:              "District",
			Year:               2024,
			Keywords:           []string{"eviction"},
			StatutesReferenced: []string{"Transfer of Property Act, 1882"},
		}
		_, bd := scorer.Score(c, []string{"eviction", "transfer"}, ModeSearch)
		assert.Equal(t, 100.0, bd.QueryOverlap)
	})

	t.Run("no tokens means zero overlap", func(t *testing.T) {
		c := &models.CaseRecord{Court: "District", Year: 2024, Summary: "anything"}
		_, bd := scorer.Score(c, nil, ModeSearch)
		assert.Equal(t, 0.0, bd.QueryOverlap)
	})
}

func TestTokenizeQuery(t *testing.T) {
	assert.Equal(t,
		[]string{"landlord", "kept", "deposit"},
		TokenizeQuery("My landlord kept my deposit!"),
	)
	assert.Empty(t, TokenizeQuery("a an it"))
}
