// Package empower analyzes a citizen's legal issue: classify it, find
// supporting precedents, collect the statutes they rely on, grade the
// position, and attach an action roadmap.
package empower

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Sariga-2005/VidhimurAI/internal/cache"
	"github.com/Sariga-2005/VidhimurAI/internal/metrics"
	"github.com/Sariga-2005/VidhimurAI/internal/normalizer"
	"github.com/Sariga-2005/VidhimurAI/internal/ranking"
	"github.com/Sariga-2005/VidhimurAI/internal/search"
	"github.com/Sariga-2005/VidhimurAI/internal/storage/models"
	"github.com/Sariga-2005/VidhimurAI/internal/vocab"
	"github.com/Sariga-2005/VidhimurAI/pkg/logger"
	"github.com/Sariga-2005/VidhimurAI/pkg/utils"
)

// Legal strength labels.
const (
	StrengthStrong   = "Strong"
	StrengthModerate = "Moderate"
	StrengthWeak     = "Weak"
)

type Options struct {
	RelevanceThreshold float64
	MaxPrecedents      int
}

type Engine struct {
	repo       search.CaseSource
	cache      *cache.Cache
	scorer     *ranking.Scorer
	classifier normalizer.DomainClassifier
	opts       Options
}

func NewEngine(repo search.CaseSource, c *cache.Cache, scorer *ranking.Scorer, classifier normalizer.DomainClassifier, opts Options) *Engine {
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

// Analyze runs the full empowerment pipeline. context is optional free text
// merged into the relevance token set; it never affects classification.
func (e *Engine) Analyze(ctx context.Context, query, contextText string) (*models.EmpowerResponse, error) {
	startTime := time.Now()
	queryID := uuid.New().String()

	normalized := normalizer.Enhance(ctx, normalizer.Normalize(query), e.classifier)

	logger.Info("Processing empowerment query",
		zap.String("query_id", queryID),
		zap.String("query", query),
		zap.String("domain", normalized.Domain),
	)

	cacheKey := "empower:" + utils.QueryKey(normalized.SearchString)
	if cached, ok := e.cache.GetQuery(cacheKey); ok {
		if resp, ok := cached.(*models.EmpowerResponse); ok {
			return resp, nil
		}
	}

	issueType := classifyIssue(query, normalized.Domain)

	tokens := normalized.ExpandedTerms
	if contextText != "" {
		extended := normalizer.Normalize(query + " " + contextText)
		tokens = extended.ExpandedTerms
	}
	if len(tokens) == 0 {
		tokens = ranking.TokenizeQuery(query)
	}

	// No authority pre-filter here: empowerment prioritizes topical
	// relevance over court prestige.
	cases, err := e.repo.GetAllCases()
	if err != nil {
		metrics.QueryTotal.WithLabelValues("empower", "error").Inc()
		return nil, err
	}

	scored := make([]scoredCase, 0, len(cases))
	for i := range cases {
		score, bd := e.scorer.Score(&cases[i], tokens, ranking.ModeEmpower)
		scored = append(scored, scoredCase{record: cases[i], score: score, breakdown: bd})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	scored = excludeMisleadingCases(scored)
	scored = e.applyRelevanceThreshold(scored)

	if len(scored) > e.opts.MaxPrecedents {
		scored = scored[:e.opts.MaxPrecedents]
	}

	precedents := make([]models.CaseResult, 0, len(scored))
	records := make([]models.CaseRecord, 0, len(scored))
	for _, sc := range scored {
		precedents = append(precedents, models.CaseResult{
			KanoonTID:      sc.record.KanoonTID,
			CaseName:       sc.record.CaseName,
			Court:          sc.record.Court,
			Year:           sc.record.Year,
			CitationCount:  sc.record.CitationCount,
			StrengthScore:  sc.score,
			AuthorityScore: sc.breakdown.AuthorityScore,
			RelevanceScore: sc.breakdown.RelevanceScore,
			Summary:        sc.record.Summary,
		})
		records = append(records, sc.record)
	}

	response := &models.EmpowerResponse{
		IssueType:        issueType,
		RelevantSections: collectRelevantSections(records),
		Precedents:       precedents,
		LegalStrength:    computeLegalStrength(precedents),
		ActionSteps:      buildActionSteps(issueType),
	}

	e.cache.SetQuery(cacheKey, response)

	metrics.QueryTotal.WithLabelValues("empower", "ok").Inc()
	metrics.QueryDuration.WithLabelValues("empower").Observe(time.Since(startTime).Seconds())
	metrics.ResultsReturned.WithLabelValues("empower").Observe(float64(len(precedents)))

	logger.Info("Empowerment analysis completed",
		zap.String("query_id", queryID),
		zap.String("issue_type", issueType),
		zap.String("legal_strength", response.LegalStrength),
		zap.Int("precedents", len(precedents)),
	)

	return response, nil
}

// classifyIssue maps the detected domain to an actionable issue label,
// refining Property Law into its sub-category.
func classifyIssue(query, domain string) string {
	if domain == "Property Law" {
		return refinePropertyIssue(query)
	}
	return domain
}

// refinePropertyIssue narrows Property Law using weighted phrase matching:
// a multi-word phrase scores 3, a single word scores 1. The top-scoring
// sub-category wins; a scoreless query keeps the broad label.
func refinePropertyIssue(query string) string {
	q := strings.ToLower(query)

	best := "Property Law"
	bestScore := 0
	for _, sub := range vocab.PropertySubcategories {
		score := 0
		for _, kw := range sub.Keywords {
			if strings.Contains(q, kw) {
				if strings.Contains(kw, " ") {
					score += 3
				} else {
					score++
				}
			}
		}
		if score > bestScore {
			bestScore = score
			best = sub.Name
		}
	}
	return best
}

// excludeMisleadingCases drops cases whose name or summary contains an
// exclusion keyword. Terrorism or habeas-corpus precedents would mislead
// ordinary disputes no matter how well they score.
func excludeMisleadingCases(scored []scoredCase) []scoredCase {
	kept := make([]scoredCase, 0, len(scored))
	for _, sc := range scored {
		blob := strings.ToLower(sc.record.Summary + " " + sc.record.CaseName)
		excluded := false
		for _, kw := range vocab.CaseExclusionKeywords {
			if strings.Contains(blob, kw) {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, sc)
		}
	}
	return kept
}

func (e *Engine) applyRelevanceThreshold(scored []scoredCase) []scoredCase {
	kept := make([]scoredCase, 0, len(scored))
	for _, sc := range scored {
		if sc.breakdown.RelevanceScore >= e.opts.RelevanceThreshold {
			kept = append(kept, sc)
		}
	}
	return kept
}

// collectRelevantSections unions the statutes cited by the precedents,
// deduplicated in first-occurrence order, minus blacklisted patterns.
func collectRelevantSections(cases []models.CaseRecord) []string {
	sections := []string{}
	seen := make(map[string]struct{})

	for _, c := range cases {
		for _, s := range c.StatutesReferenced {
			sLower := strings.ToLower(s)
			blacklisted := false
			for _, pattern := range vocab.StatuteBlacklistPatterns {
				if strings.Contains(sLower, pattern) {
					blacklisted = true
					break
				}
			}
			if blacklisted {
				continue
			}
			if _, dup := seen[s]; !dup {
				sections = append(sections, s)
				seen[s] = struct{}{}
			}
		}
	}
	return sections
}

// computeLegalStrength grades the position from precedent count and court
// tiers. Conservative: "Strong" needs clear apex-court support.
func computeLegalStrength(precedents []models.CaseResult) string {
	if len(precedents) == 0 {
		return StrengthWeak
	}

	supreme, high := 0, 0
	for _, p := range precedents {
		switch vocab.AuthorityTier(p.Court) {
		case vocab.TierSupreme:
			supreme++
		case vocab.TierHigh:
			high++
		}
	}

	if supreme >= 2 || (supreme >= 1 && high >= 2) {
		return StrengthStrong
	}
	if len(precedents) >= 3 || supreme >= 1 || high >= 2 {
		return StrengthModerate
	}
	return StrengthWeak
}

// buildActionSteps renders the roadmap template for the issue, falling back
// to the generic roadmap for unknown labels.
func buildActionSteps(issueType string) []string {
	roadmap, ok := vocab.ActionRoadmaps[issueType]
	if !ok {
		roadmap = vocab.DefaultRoadmap
	}

	steps := make([]string, 0, len(roadmap))
	for i, step := range roadmap {
		steps = append(steps, fmt.Sprintf("Step %d: %s — %s", i+1, step.Title, step.Description))
	}
	return steps
}
