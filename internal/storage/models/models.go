package models

import "time"

// CaseRecord is the enriched internal representation of a single case.
// Immutable after ingestion; pipelines only read it.
type CaseRecord struct {
	ID                 string
	KanoonTID          int
	CaseName           string
	Court              string
	Year               int
	CitationCount      int
	Summary            string
	Keywords           []string
	Outcome            string
	LegalIssues        []string
	StatutesReferenced []string
	PrecedentsCited    []string
	Parties            []string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// KanoonDocRef is a reference to another document in a cite list.
type KanoonDocRef struct {
	TID   int    `json:"tid"`
	Title string `json:"title"`
}

// KanoonDoc matches the shape of a single document from the Indian Kanoon
// API dump.
type KanoonDoc struct {
	TID         int            `json:"tid"`
	Title       string         `json:"title"`
	Headline    string         `json:"headline"`
	DocSource   string         `json:"docsource"`
	DocSize     int            `json:"docsize"`
	PublishDate string         `json:"publishdate"` // DD-MM-YYYY
	NumCites    int            `json:"numcites"`
	NumCitedBy  int            `json:"numcitedby"`
	CatName     string         `json:"catname"`
	CiteList    []KanoonDocRef `json:"citeList"`
	CitedByList []KanoonDocRef `json:"citedbyList"`
}

// SearchFilters are optional user constraints on the search pipeline.
// Nil pointer fields mean "no constraint".
type SearchFilters struct {
	Court     string `json:"court,omitempty"`
	YearStart *int   `json:"year_start,omitempty"`
	YearEnd   *int   `json:"year_end,omitempty"`
}

// Empty reports whether no constraint is set.
func (f *SearchFilters) Empty() bool {
	return f == nil || (f.Court == "" && f.YearStart == nil && f.YearEnd == nil)
}

// CaseResult is a single scored case in a pipeline response.
type CaseResult struct {
	KanoonTID      int     `json:"kanoon_tid"`
	CaseName       string  `json:"case_name"`
	Court          string  `json:"court"`
	Year           int     `json:"year"`
	CitationCount  int     `json:"citation_count"`
	StrengthScore  float64 `json:"strength_score"`
	AuthorityScore float64 `json:"authority_score"`
	RelevanceScore float64 `json:"relevance_score"`
	Summary        string  `json:"summary"`
}

// SearchResponse is the search pipeline output.
type SearchResponse struct {
	TotalCases          int          `json:"total_cases"`
	TopCases            []CaseResult `json:"top_cases"`
	MostInfluentialCase *CaseResult  `json:"most_influential_case,omitempty"`
}

// EmpowerResponse is the empowerment pipeline output.
type EmpowerResponse struct {
	IssueType        string       `json:"issue_type"`
	RelevantSections []string     `json:"relevant_sections"`
	Precedents       []CaseResult `json:"precedents"`
	LegalStrength    string       `json:"legal_strength"` // Strong | Moderate | Weak
	ActionSteps      []string     `json:"action_steps"`
}
