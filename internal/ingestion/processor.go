// Package ingestion loads the raw Indian Kanoon dataset, enriches each
// document with auto-generated tags, and stores the resulting case records
// in the repository. Runs once at startup; queries never re-enrich.
package ingestion

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"

	"github.com/Sariga-2005/VidhimurAI/internal/cache"
	"github.com/Sariga-2005/VidhimurAI/internal/metrics"
	"github.com/Sariga-2005/VidhimurAI/internal/storage/models"
	"github.com/Sariga-2005/VidhimurAI/internal/storage/sqlite"
	"github.com/Sariga-2005/VidhimurAI/internal/tagger"
	"github.com/Sariga-2005/VidhimurAI/pkg/logger"
)

type Processor struct {
	db    *sqlite.Client
	cache *cache.Cache
}

func NewProcessor(db *sqlite.Client, c *cache.Cache) *Processor {
	return &Processor{db: db, cache: c}
}

// LoadDataset reads a Kanoon JSON dump, enriches every document, and
// upserts the records. A single malformed document is logged and skipped
// rather than failing the whole load.
func (p *Processor) LoadDataset(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", sqlite.ErrDatasetUnavailable, err)
	}

	var docs []models.KanoonDoc
	if err := json.Unmarshal(raw, &docs); err != nil {
		return 0, fmt.Errorf("%w: %v", sqlite.ErrDatasetUnavailable, err)
	}

	loaded := 0
	for _, doc := range docs {
		record, err := p.EnrichDoc(&doc)
		if err != nil {
			logger.Warn("Skipping malformed document",
				zap.Int("tid", doc.TID),
				zap.Error(err),
			)
			continue
		}

		if err := p.db.UpsertCase(record); err != nil {
			return loaded, fmt.Errorf("failed to store case %s: %w", record.ID, err)
		}

		p.cache.SetDoc(strconv.Itoa(doc.TID), record)
		loaded++
	}

	metrics.CasesLoaded.Set(float64(loaded))
	logger.Info("Dataset loaded",
		zap.String("path", path),
		zap.Int("documents", len(docs)),
		zap.Int("loaded", loaded),
	)

	return loaded, nil
}

// EnrichDoc converts a raw Kanoon document into an enriched CaseRecord:
// headline HTML is stripped, tags are generated, the publish year is parsed
// from the DD-MM-YYYY date, and the summary carries the inferred outcome.
func (p *Processor) EnrichDoc(doc *models.KanoonDoc) (*models.CaseRecord, error) {
	if doc.Title == "" {
		return nil, fmt.Errorf("document %d has no title", doc.TID)
	}

	headline := stripHTML(doc.Headline)

	citeTitles := make([]string, 0, len(doc.CiteList))
	for _, ref := range doc.CiteList {
		citeTitles = append(citeTitles, ref.Title)
	}

	tags := tagger.GenerateTags(doc.Title, headline, citeTitles)

	year, err := parseYear(doc.PublishDate)
	if err != nil {
		return nil, err
	}

	summary := headline
	if tags.Outcome != "" {
		summary += " Outcome: " + tags.Outcome
	}

	now := time.Now()
	return &models.CaseRecord{
		ID:                 fmt.Sprintf("CASE-%d", doc.TID),
		KanoonTID:          doc.TID,
		CaseName:           doc.Title,
		Court:              doc.DocSource,
		Year:               year,
		CitationCount:      doc.NumCitedBy,
		Summary:            summary,
		Keywords:           tags.Keywords,
		Outcome:            tags.Outcome,
		LegalIssues:        tags.LegalIssues,
		StatutesReferenced: tags.StatutesReferenced,
		PrecedentsCited:    citeTitles,
		Parties:            extractParties(doc.Title),
		CreatedAt:          now,
		UpdatedAt:          now,
	}, nil
}

// stripHTML flattens the markup Kanoon embeds in headlines (<b> match
// highlights and the like) to plain text.
func stripHTML(html string) string {
	if !strings.ContainsRune(html, '<') {
		return strings.TrimSpace(html)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.TrimSpace(html)
	}

	return strings.TrimSpace(strings.Join(strings.Fields(doc.Text()), " "))
}

// extractParties runs NER over the case title to pull out party names
// ("State of Maharashtra", personal names). Best effort; an empty result
// is fine and never blocks enrichment.
func extractParties(title string) []string {
	doc, err := prose.NewDocument(title, prose.WithSegmentation(false))
	if err != nil {
		return nil
	}

	var parties []string
	seen := make(map[string]struct{})
	for _, ent := range doc.Entities() {
		if ent.Label != "PERSON" && ent.Label != "GPE" {
			continue
		}
		name := strings.TrimSpace(ent.Text)
		if _, dup := seen[name]; name == "" || dup {
			continue
		}
		parties = append(parties, name)
		seen[name] = struct{}{}
	}

	return parties
}

func parseYear(publishDate string) (int, error) {
	parts := strings.Split(publishDate, "-")
	if len(parts) == 0 {
		return 0, fmt.Errorf("malformed publish date %q", publishDate)
	}
	year, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return 0, fmt.Errorf("malformed publish date %q: %w", publishDate, err)
	}
	return year, nil
}
