// Package normalizer turns citizen-language queries into legal search
// terms: lowercase tokenization, stopword removal, synonym expansion, and
// keyword-vote domain detection.
package normalizer

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/Sariga-2005/VidhimurAI/internal/vocab"
	"github.com/Sariga-2005/VidhimurAI/pkg/logger"
)

var nonWord = regexp.MustCompile(`\W+`)

// NormalizedQuery is the result of the normalization pipeline. Never
// mutated after construction except by Enhance, which replaces it.
type NormalizedQuery struct {
	RawQuery      string
	Tokens        []string
	ExpandedTerms []string
	Domain        string
	SearchString  string
}

// Classification is the output of an external domain classifier.
type Classification struct {
	Domain      string
	SearchTerms []string
}

// DomainClassifier is the optional collaborator consulted when keyword
// voting cannot place a query. A nil handle means the capability is absent.
type DomainClassifier interface {
	Classify(ctx context.Context, query string) (*Classification, error)
}

// Normalize runs the deterministic pipeline. Pure function; always
// completes fully regardless of any enhancement stage.
func Normalize(query string) NormalizedQuery {
	rawTokens := nonWord.Split(strings.ToLower(query), -1)

	var tokens []string
	for _, t := range rawTokens {
		if t == "" || len(t) <= 1 {
			continue
		}
		if _, stop := vocab.Stopwords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}

	expanded := make([]string, len(tokens))
	copy(expanded, tokens)
	seen := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		seen[t] = struct{}{}
	}
	for _, t := range tokens {
		for _, syn := range vocab.Synonyms[t] {
			if _, ok := seen[syn]; !ok {
				expanded = append(expanded, syn)
				seen[syn] = struct{}{}
			}
		}
	}

	return NormalizedQuery{
		RawQuery:      query,
		Tokens:        tokens,
		ExpandedTerms: expanded,
		Domain:        DetectDomain(query),
		SearchString:  strings.Join(expanded, " "),
	}
}

// DetectDomain scores every issue area against the raw lowercased query by
// counting keyword-phrase substring hits. The strictly highest score wins;
// ties keep the earliest-declared area. Zero hits everywhere yields the
// general domain.
func DetectDomain(query string) string {
	queryLower := strings.ToLower(query)

	best := vocab.GeneralDomain
	bestScore := 0
	for _, area := range vocab.IssueAreas {
		score := 0
		for _, kw := range area.Keywords {
			if strings.Contains(queryLower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = area.Name
		}
	}

	return best
}

// Enhance consults the optional classifier when the deterministic pass
// produced the general domain. Any failure, absence, or out-of-set answer
// leaves the baseline untouched; nothing propagates past this function.
func Enhance(ctx context.Context, nq NormalizedQuery, classifier DomainClassifier) NormalizedQuery {
	if classifier == nil || nq.Domain != vocab.GeneralDomain {
		return nq
	}

	result, err := classifier.Classify(ctx, nq.RawQuery)
	if err != nil || result == nil {
		if err != nil {
			logger.Debug("domain classifier unavailable", zap.Error(err))
		}
		return nq
	}
	if !vocab.IsKnownDomain(result.Domain) {
		return nq
	}

	enhanced := nq
	enhanced.Domain = result.Domain

	expanded := make([]string, len(nq.ExpandedTerms))
	copy(expanded, nq.ExpandedTerms)
	seen := make(map[string]struct{}, len(expanded))
	for _, t := range expanded {
		seen[t] = struct{}{}
	}
	for _, term := range result.SearchTerms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		if _, ok := seen[term]; !ok {
			expanded = append(expanded, term)
			seen[term] = struct{}{}
		}
	}
	enhanced.ExpandedTerms = expanded
	enhanced.SearchString = strings.Join(expanded, " ")

	logger.Info("query enhanced by domain classifier",
		zap.String("domain", enhanced.Domain),
		zap.Int("extra_terms", len(expanded)-len(nq.ExpandedTerms)),
	)

	return enhanced
}
