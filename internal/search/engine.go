// Package search assembles the case-search pipeline: normalize the query,
// pre-filter by court authority, apply user filters, score every surviving
// case, rerank by relevance, and cache the result.
package search

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sariga-2005/VidhimurAI/internal/cache"
	"github.com/Sariga-2005/VidhimurAI/internal/metrics"
	"github.com/Sariga-2005/VidhimurAI/internal/normalizer"
	"github.com/Sariga-2005/VidhimurAI/internal/ranking"
	"github.com/Sariga-2005/VidhimurAI/internal/storage/models"
	"github.com/Sariga-2005/VidhimurAI/internal/vocab"
	"github.com/Sariga-2005/VidhimurAI/pkg/logger"
	"github.com/Sariga-2005/VidhimurAI/pkg/utils"
)

// CaseSource supplies the enriched case collection. A read failure must be
// tagged sqlite.ErrDatasetUnavailable; the engine propagates it unchanged.
type CaseSource interface {
	GetAllCases() ([]models.CaseRecord, error)
}

// Options are the pipeline thresholds. Defaults live in pkg/config.
type Options struct {
	// RelevanceThreshold hides cases with near-zero relevance entirely.
	RelevanceThreshold float64
	// RerankRelevanceMin partitions "meaningfully relevant" cases from
	// authority-only ones during reranking.
	RerankRelevanceMin float64
	// AuthorityMinHighTier is the minimum number of top-two-tier cases
	// required before lower courts are dropped from consideration.
	AuthorityMinHighTier int
}

type Engine struct {
	repo       CaseSource
	cache      *cache.Cache
	scorer     *ranking.Scorer
	classifier normalizer.DomainClassifier
	opts       Options
}

// NewEngine wires the search pipeline. classifier may be nil when the
// fallback capability is absent.
func NewEngine(repo CaseSource, c *cache.Cache, scorer *ranking.Scorer, classifier normalizer.DomainClassifier, opts Options) *Engine {
	return &Engine{
		repo:       repo,
		cache:      c,
		scorer:     scorer,
		classifier: classifier,
		opts:       opts,
	}
}

type scoredCase struct {
	record    models.CaseRecord
	score     float64
	breakdown ranking.Breakdown
}

// Search runs the full pipeline. Filtered queries bypass the cache in both
// directions: the filter space is unbounded, so their results are never
// stored.
func (e *Engine) Search(ctx context.Context, query string, filters *models.SearchFilters) (*models.SearchResponse, error) {
	startTime := time.Now()
	queryID := uuid.New().String()

	normalized := normalizer.Enhance(ctx, normalizer.Normalize(query), e.classifier)

	logger.Info("Processing search query",
		zap.String("query_id", queryID),
		zap.String("query", query),
		zap.String("domain", normalized.Domain),
		zap.Int("tokens", len(normalized.ExpandedTerms)),
	)

	cacheKey := utils.QueryKey(normalized.SearchString)
	if filters.Empty() {
		if cached, ok := e.cache.GetQuery(cacheKey); ok {
			if resp, ok := cached.(*models.SearchResponse); ok {
				return resp, nil
			}
		}
	}

	cases, err := e.repo.GetAllCases()
	if err != nil {
		metrics.QueryTotal.WithLabelValues("search", "error").Inc()
		return nil, err
	}

	candidates := e.authorityFilter(cases)
	candidates = applyFilters(candidates, filters)

	tokens := normalized.ExpandedTerms
	if len(tokens) == 0 {
		tokens = ranking.TokenizeQuery(query)
	}

	scored := make([]scoredCase, 0, len(candidates))
	for i := range candidates {
		score, bd := e.scorer.Score(&candidates[i], tokens, ranking.ModeSearch)
		scored = append(scored, scoredCase{record: candidates[i], score: score, breakdown: bd})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	scored = e.rerankByRelevance(scored)

	topCases := make([]models.CaseResult, 0, len(scored))
	for _, sc := range scored {
		topCases = append(topCases, toCaseResult(&sc.record, sc.score, sc.breakdown))
	}

	response := &models.SearchResponse{
		TotalCases: len(topCases),
		TopCases:   topCases,
	}
	if len(topCases) > 0 {
		response.MostInfluentialCase = &topCases[0]
	}

	if filters.Empty() {
		e.cache.SetQuery(cacheKey, response)
	}

	metrics.QueryTotal.WithLabelValues("search", "ok").Inc()
	metrics.QueryDuration.WithLabelValues("search").Observe(time.Since(startTime).Seconds())
	metrics.ResultsReturned.WithLabelValues("search").Observe(float64(len(topCases)))

	logger.Info("Search completed",
		zap.String("query_id", queryID),
		zap.Int("results", len(topCases)),
		zap.Duration("elapsed", time.Since(startTime)),
	)

	return response, nil
}

// authorityFilter keeps only the top two court tiers when enough such cases
// exist, cutting noise from lower courts. With too few high-tier matches
// everything stays in play.
func (e *Engine) authorityFilter(cases []models.CaseRecord) []models.CaseRecord {
	var higher []models.CaseRecord
	for _, c := range cases {
		if vocab.AuthorityTier(c.Court) <= vocab.TierHigh {
			higher = append(higher, c)
		}
	}

	if len(higher) >= e.opts.AuthorityMinHighTier {
		return higher
	}
	return cases
}

func applyFilters(cases []models.CaseRecord, filters *models.SearchFilters) []models.CaseRecord {
	if filters.Empty() {
		return cases
	}

	result := make([]models.CaseRecord, 0, len(cases))
	for _, c := range cases {
		if filters.Court != "" && !strings.EqualFold(c.Court, filters.Court) {
			continue
		}
		if filters.YearStart != nil && c.Year < *filters.YearStart {
			continue
		}
		if filters.YearEnd != nil && c.Year > *filters.YearEnd {
			continue
		}
		result = append(result, c)
	}
	return result
}

// rerankByRelevance partitions the sorted list into meaningfully-relevant
// and authority-only buckets, concatenates relevant-first, then drops
// everything under the global relevance threshold. Topically relevant
// matches are never pushed out by high-authority noise.
func (e *Engine) rerankByRelevance(scored []scoredCase) []scoredCase {
	var relevant, authorityOnly []scoredCase
	for _, sc := range scored {
		if sc.breakdown.RelevanceScore >= e.opts.RerankRelevanceMin {
			relevant = append(relevant, sc)
		} else {
			authorityOnly = append(authorityOnly, sc)
		}
	}

	merged := append(relevant, authorityOnly...)

	kept := merged[:0]
	for _, sc := range merged {
		if sc.breakdown.RelevanceScore >= e.opts.RelevanceThreshold {
			kept = append(kept, sc)
		}
	}
	return kept
}

func toCaseResult(c *models.CaseRecord, score float64, bd ranking.Breakdown) models.CaseResult {
	return models.CaseResult{
		KanoonTID:      c.KanoonTID,
		CaseName:       c.CaseName,
		Court:          c.Court,
		Year:           c.Year,
		CitationCount:  c.CitationCount,
		StrengthScore:  score,
		AuthorityScore: bd.AuthorityScore,
		RelevanceScore: bd.RelevanceScore,
		Summary:        c.Summary,
	}
}
