package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/Sariga-2005/VidhimurAI/internal/storage/models"
	"github.com/Sariga-2005/VidhimurAI/pkg/logger"
)

// ErrDatasetUnavailable tags any failure to read the case dataset. Callers
// propagate it unchanged; the pipelines never retry it.
var ErrDatasetUnavailable = errors.New("case dataset unavailable")

type Client struct {
	db *sql.DB
}

func NewClient(dbPath string) (*Client, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	logger.Info("SQLite client initialized", zap.String("path", dbPath))

	return &Client{db: db}, nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func (c *Client) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS cases (
		id TEXT PRIMARY KEY,
		kanoon_tid INTEGER UNIQUE,
		case_name TEXT NOT NULL,
		court TEXT NOT NULL,
		year INTEGER NOT NULL,
		citation_count INTEGER NOT NULL,
		summary TEXT,
		keywords TEXT,
		outcome TEXT,
		legal_issues TEXT,
		statutes_referenced TEXT,
		precedents_cited TEXT,
		parties TEXT,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_cases_court ON cases(court);
	CREATE INDEX IF NOT EXISTS idx_cases_year ON cases(year);
	`

	if _, err := c.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}

	logger.Info("SQLite schema initialized")
	return nil
}

func (c *Client) UpsertCase(record *models.CaseRecord) error {
	query := `
		INSERT INTO cases (id, kanoon_tid, case_name, court, year, citation_count,
			summary, keywords, outcome, legal_issues, statutes_referenced,
			precedents_cited, parties, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			case_name = excluded.case_name,
			court = excluded.court,
			year = excluded.year,
			citation_count = excluded.citation_count,
			summary = excluded.summary,
			keywords = excluded.keywords,
			outcome = excluded.outcome,
			legal_issues = excluded.legal_issues,
			statutes_referenced = excluded.statutes_referenced,
			precedents_cited = excluded.precedents_cited,
			parties = excluded.parties,
			updated_at = excluded.updated_at
	`

	_, err := c.db.Exec(
		query,
		record.ID,
		record.KanoonTID,
		record.CaseName,
		record.Court,
		record.Year,
		record.CitationCount,
		record.Summary,
		mustJSON(record.Keywords),
		record.Outcome,
		mustJSON(record.LegalIssues),
		mustJSON(record.StatutesReferenced),
		mustJSON(record.PrecedentsCited),
		mustJSON(record.Parties),
		record.CreatedAt.Unix(),
		record.UpdatedAt.Unix(),
	)

	if err != nil {
		return fmt.Errorf("failed to upsert case: %w", err)
	}

	logger.Debug("Case upserted", zap.String("case_id", record.ID), zap.String("name", record.CaseName))
	return nil
}

// GetAllCases returns every enriched case in insertion order. Any read
// failure is reported as ErrDatasetUnavailable.
func (c *Client) GetAllCases() ([]models.CaseRecord, error) {
	query := `
		SELECT id, kanoon_tid, case_name, court, year, citation_count,
			summary, keywords, outcome, legal_issues, statutes_referenced,
			precedents_cited, parties, created_at, updated_at
		FROM cases
		ORDER BY rowid
	`

	rows, err := c.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}
	defer rows.Close()

	var records []models.CaseRecord
	for rows.Next() {
		var r models.CaseRecord
		var keywords, issues, statutes, precedents, parties string
		var createdAt, updatedAt int64

		err := rows.Scan(
			&r.ID, &r.KanoonTID, &r.CaseName, &r.Court, &r.Year,
			&r.CitationCount, &r.Summary, &keywords, &r.Outcome,
			&issues, &statutes, &precedents, &parties,
			&createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
		}

		json.Unmarshal([]byte(keywords), &r.Keywords)
		json.Unmarshal([]byte(issues), &r.LegalIssues)
		json.Unmarshal([]byte(statutes), &r.StatutesReferenced)
		json.Unmarshal([]byte(precedents), &r.PrecedentsCited)
		json.Unmarshal([]byte(parties), &r.Parties)
		r.CreatedAt = time.Unix(createdAt, 0)
		r.UpdatedAt = time.Unix(updatedAt, 0)

		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}

	return records, nil
}

func (c *Client) CountCases() (int, error) {
	var count int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM cases`).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrDatasetUnavailable, err)
	}
	return count, nil
}

func mustJSON(list []string) string {
	if list == nil {
		list = []string{}
	}
	data, _ := json.Marshal(list)
	return string(data)
}
