// Package tagger derives enrichment tags (keywords, outcome, legal issues,
// statute references) from raw case text at ingestion time. Everything here
// is rule-based and reproducible; no query context, no external calls.
package tagger

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/Sariga-2005/VidhimurAI/internal/vocab"
)

const (
	maxKeywords    = 12
	maxLegalIssues = 5

	// issueMinHits is stricter than query-time domain detection: case text
	// is noisier, so a single keyword hit is not reliable evidence.
	issueMinHits = 2

	outcomeUndeterminable = "Outcome not determinable from headline"
)

var (
	// Matches "Article 21", "Articles 14, 19 and 21", "Article 19(1)(g)".
	articleRe = regexp.MustCompile(`(?i)Articles?\s+(\d+(?:\s*\(\d+\)\s*(?:\([a-z]\))?)?(?:\s*,\s*\d+(?:\s*\(\d+\)\s*(?:\([a-z]\))?)?)*(?:\s*,?\s*and\s+\d+(?:\s*\(\d+\)\s*(?:\([a-z]\))?)?)?)`)

	// Matches "Section 377", "Section 498A", "Sections 43 and 66".
	sectionRe = regexp.MustCompile(`(?i)Sections?\s+(\d+[A-Z]?(?:\s*,\s*\d+[A-Z]?)*(?:\s*,?\s*and\s+\d+[A-Z]?)?)`)

	// Matches capitalized act names followed by a 4-digit year, e.g.
	// "Consumer Protection Act, 2019".
	actRe = regexp.MustCompile(`\b([A-Z][a-zA-Z\s&()]{3,55}?(?:Act|Code|Rules|Procedure|Regulation)\s*,?\s*\d{4})`)

	wordRe    = regexp.MustCompile(`[a-zA-Z]+`)
	listSplit = regexp.MustCompile(`\s*,\s*|\s+and\s+`)
)

// outcomePattern pairs a detection regex with its canonical label. Order is
// the priority order: the first matching pattern decides the outcome.
type outcomePattern struct {
	re    *regexp.Regexp
	label string
}

var outcomePatterns = []outcomePattern{
	{regexp.MustCompile(`(?i)set aside`), "set aside"},
	{regexp.MustCompile(`(?i)quashed`), "quashed"},
	{regexp.MustCompile(`(?i)upheld`), "upheld"},
	{regexp.MustCompile(`(?i)dismissed`), "petition/appeal dismissed"},
	{regexp.MustCompile(`(?i)allowed`), "petition/appeal allowed"},
	{regexp.MustCompile(`(?i)granted\s+bail`), "bail granted"},
	{regexp.MustCompile(`(?i)directed`), "direction issued"},
	{regexp.MustCompile(`(?i)awarded\s+(?:compensation|damages|Rs\.)`), "compensation awarded"},
	{regexp.MustCompile(`(?i)declared\s+(?:illegal|unlawful|unconstitutional)`), "declared illegal/unconstitutional"},
	{regexp.MustCompile(`(?i)struck\s+down`), "struck down"},
	{regexp.MustCompile(`(?i)reading\s+down`), "read down"},
	{regexp.MustCompile(`(?i)guidelines?\s+(?:laid\s+down|issued|established|formulated)`), "guidelines issued"},
	{regexp.MustCompile(`(?i)halted|stayed|restrained`), "stay/injunction granted"},
	{regexp.MustCompile(`(?i)reinstated?|reinstatement`), "reinstatement ordered"},
	{regexp.MustCompile(`(?i)closure\s+ordered`), "closure ordered"},
}

// AutoTags is the enrichment derived for a single case.
type AutoTags struct {
	Keywords           []string
	Outcome            string
	LegalIssues        []string
	StatutesReferenced []string
}

// GenerateTags derives tags from raw case data. Runs once per case at
// ingestion time.
func GenerateTags(title, headline string, citeTitles []string) AutoTags {
	text := title + " " + headline
	fullText := text + " " + strings.Join(citeTitles, " ")

	return AutoTags{
		Keywords:           extractKeywords(text),
		Outcome:            inferOutcome(headline),
		LegalIssues:        detectLegalIssues(fullText),
		StatutesReferenced: ExtractStatutes(fullText),
	}
}

// extractKeywords keeps tokens present in the curated legal vocabulary,
// then appends known multi-word phrases found as literal substrings.
// Deduplicated by first occurrence, capped at maxKeywords.
func extractKeywords(text string) []string {
	var keywords []string
	seen := make(map[string]struct{})

	for _, token := range wordRe.FindAllString(strings.ToLower(text), -1) {
		if len(token) <= 2 {
			continue
		}
		if _, stop := vocab.Stopwords[token]; stop {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		if vocab.IsLegalTerm(token) {
			keywords = append(keywords, token)
			seen[token] = struct{}{}
		}
	}

	textLower := strings.ToLower(text)
	for _, phrase := range vocab.LegalPhrases {
		if _, dup := seen[phrase]; dup {
			continue
		}
		if strings.Contains(textLower, phrase) {
			keywords = append(keywords, phrase)
			seen[phrase] = struct{}{}
		}
	}

	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

// inferOutcome scans the headline against the outcome patterns in priority
// order. On a match it returns the sentence containing the match, falling
// back to the pattern's canonical label. With no match at all it returns
// the last sentence of a multi-sentence headline, or a sentinel.
func inferOutcome(headline string) string {
	for _, p := range outcomePatterns {
		if !p.re.MatchString(headline) {
			continue
		}
		for _, sent := range splitSentences(headline) {
			if p.re.MatchString(sent) {
				return strings.TrimRight(strings.TrimSpace(sent), ".")
			}
		}
		return p.label
	}

	var sentences []string
	for _, s := range strings.Split(strings.TrimRight(headline, "."), ".") {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) > 1 {
		return strings.TrimRight(sentences[len(sentences)-1], ".")
	}
	return outcomeUndeterminable
}

func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == ';'
	})
}

// detectLegalIssues votes issue areas by keyword-phrase hits (issueMinHits
// or more), then appends matching fine-grained sub-issue labels. Broad
// domains come before sub-issues; the combined list is capped at five.
func detectLegalIssues(text string) []string {
	textLower := strings.ToLower(text)
	var issues []string
	present := make(map[string]struct{})

	for _, area := range vocab.IssueAreas {
		hits := 0
		for _, kw := range area.Keywords {
			if strings.Contains(textLower, kw) {
				hits++
			}
		}
		if hits >= issueMinHits {
			issues = append(issues, area.Name)
			present[area.Name] = struct{}{}
		}
	}

	for _, sub := range vocab.SubIssues {
		if _, dup := present[sub.Label]; dup {
			continue
		}
		if strings.Contains(textLower, sub.Phrase) {
			issues = append(issues, sub.Label)
			present[sub.Label] = struct{}{}
		}
	}

	if len(issues) > maxLegalIssues {
		issues = issues[:maxLegalIssues]
	}
	return issues
}

// ExtractStatutes pulls statute references out of case text in a fixed
// precedence order: constitutional articles, full act names with years,
// shorthand lookups, context-triggered inference, then standalone section
// numbers. The list is deduplicated by first occurrence and unbounded;
// downstream consumers apply their own filtering.
func ExtractStatutes(text string) []string {
	var statutes []string
	seen := make(map[string]struct{})

	add := func(ref string) {
		if _, dup := seen[ref]; !dup {
			statutes = append(statutes, ref)
			seen[ref] = struct{}{}
		}
	}

	// Pass 1: article references, one canonical entry per numeral.
	for _, m := range articleRe.FindAllStringSubmatch(text, -1) {
		for _, art := range listSplit.Split(m[1], -1) {
			art = stripLeadingAnd(strings.TrimSpace(art))
			if art != "" && unicode.IsDigit(rune(art[0])) {
				add("Constitution of India, Article " + art)
			}
		}
	}

	// Pass 2: full act names with years.
	for _, m := range actRe.FindAllStringSubmatch(text, -1) {
		add(strings.TrimSpace(m[1]))
	}

	textLower := strings.ToLower(text)

	// Pass 3: shorthand lookups.
	for _, sh := range vocab.StatuteShorthands {
		if strings.Contains(textLower, sh.Shorthand) {
			add(sh.FullName)
		}
	}

	// Pass 4: context-triggered inference. Captures cases where the court
	// discusses a topic without citing the statute verbatim.
	for _, cs := range vocab.ContextStatutes {
		if strings.Contains(textLower, cs.Trigger) {
			for _, statute := range cs.Statutes {
				add(statute)
			}
		}
	}

	// Pass 5: standalone section references not subsumed above.
	for _, m := range sectionRe.FindAllStringSubmatch(text, -1) {
		for _, sec := range listSplit.Split(m[1], -1) {
			if sec = strings.TrimSpace(sec); sec != "" {
				add("Section " + sec)
			}
		}
	}

	return statutes
}

// stripLeadingAnd removes the "and " prefix that survives splitting
// compound references like "Articles 14, 19 and 21". Invariant: an article
// numeral never starts with a conjunction.
func stripLeadingAnd(s string) string {
	if len(s) > 4 && strings.EqualFold(s[:4], "and ") {
		return strings.TrimSpace(s[4:])
	}
	return s
}
