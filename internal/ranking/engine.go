// Package ranking implements the dual-score model: an authority score from
// court tier and citation volume, a relevance score from recency and query
// overlap, and a relevance-gated combination of the two.
package ranking

import (
	"math"
	"regexp"
	"strings"

	"github.com/Sariga-2005/VidhimurAI/internal/storage/models"
	"github.com/Sariga-2005/VidhimurAI/internal/vocab"
)

// Scoring modes. The gated formula is identical in both; mode is carried in
// the breakdown for observability.
const (
	ModeSearch  = "search"
	ModeEmpower = "empower"
)

var nonWord = regexp.MustCompile(`\W+`)

// Breakdown exposes every component of a computed score.
type Breakdown struct {
	AuthorityScore float64 `json:"authority_score"`
	RelevanceScore float64 `json:"relevance_score"`
	FinalScore     float64 `json:"final_score"`
	Mode           string  `json:"mode"`
	CourtWeight    float64 `json:"court_weight"`
	CitationScore  float64 `json:"citation_score"`
	RecencyBoost   float64 `json:"recency_boost"`
	QueryOverlap   float64 `json:"query_overlap"`
}

// Scorer computes deterministic scores for (case, query tokens) pairs.
type Scorer struct {
	currentYear float64
	maxBoost    float64
	decayRate   float64
}

func NewScorer(currentYear int, maxBoost, decayRate float64) *Scorer {
	return &Scorer{
		currentYear: float64(currentYear),
		maxBoost:    maxBoost,
		decayRate:   decayRate,
	}
}

// Score returns the final score and its breakdown for a case against the
// query tokens. Pure function of its inputs.
func (s *Scorer) Score(c *models.CaseRecord, queryTokens []string, mode string) (float64, Breakdown) {
	courtWeight := float64(vocab.CourtWeight(c.Court)) * 3
	citation := s.citationScore(c.CitationCount)
	recency := s.recencyBoost(c.Year)
	overlap := s.overlapScore(c, queryTokens)

	authority := courtWeight + citation
	relevance := recency + overlap

	// Relevance-gated authority: authority contributes only in
	// proportion to relevance, so an irrelevant landmark case cannot
	// outrank a topical one.
	final := relevance + authority*(relevance/100.0)

	bd := Breakdown{
		AuthorityScore: round2(authority),
		RelevanceScore: round2(relevance),
		FinalScore:     round2(final),
		Mode:           mode,
		CourtWeight:    round2(courtWeight),
		CitationScore:  round2(citation),
		RecencyBoost:   round2(recency),
		QueryOverlap:   round2(overlap),
	}

	return bd.FinalScore, bd
}

// citationScore is logarithmic so heavily-cited landmark cases do not
// permanently dominate every query.
func (s *Scorer) citationScore(citationCount int) float64 {
	return math.Log1p(float64(citationCount)) * 2
}

// recencyBoost decays per year of age and floors at zero.
func (s *Scorer) recencyBoost(year int) float64 {
	age := s.currentYear - float64(year)
	boost := s.maxBoost - age*s.decayRate
	return math.Max(0, round2(boost))
}

// overlapScore is the fraction of query tokens found as substrings in the
// case's searchable text, scaled to 0-100.
func (s *Scorer) overlapScore(c *models.CaseRecord, queryTokens []string) float64 {
	if len(queryTokens) == 0 {
		return 0
	}

	blob := strings.ToLower(strings.Join([]string{
		c.CaseName,
		c.Summary,
		strings.Join(c.Keywords, " "),
		strings.Join(c.LegalIssues, " "),
		strings.Join(c.StatutesReferenced, " "),
	}, " "))

	matches := 0
	for _, token := range queryTokens {
		if strings.Contains(blob, strings.ToLower(token)) {
			matches++
		}
	}

	return round2(float64(matches) / float64(len(queryTokens)) * 100)
}

// TokenizeQuery lowercases, splits on non-word boundaries, and drops short
// tokens. Used when a pipeline needs tokens without full normalization.
func TokenizeQuery(query string) []string {
	var tokens []string
	for _, t := range nonWord.Split(strings.ToLower(query), -1) {
		if len(t) > 2 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
