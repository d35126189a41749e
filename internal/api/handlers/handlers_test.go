package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sariga-2005/VidhimurAI/internal/cache"
	"github.com/Sariga-2005/VidhimurAI/internal/empower"
	"github.com/Sariga-2005/VidhimurAI/internal/ranking"
	"github.com/Sariga-2005/VidhimurAI/internal/search"
	"github.com/Sariga-2005/VidhimurAI/internal/storage/models"
	"github.com/Sariga-2005/VidhimurAI/internal/storage/sqlite"
)

type stubSource struct {
	cases []models.CaseRecord
	err   error
}

func (s *stubSource) GetAllCases() ([]models.CaseRecord, error) {
	return s.cases, s.err
}

func testCases() []models.CaseRecord {
	return []models.CaseRecord{
		{
			KanoonTID:          1,
			CaseName:           "Mehta vs Kapoor",
			Court:              "Delhi High Court",
			Year:               2022,
			CitationCount:      40,
			Summary:            "landlord directed to refund the security deposit to the tenant",
			StatutesReferenced: []string{"Transfer of Property Act, 1882"},
		},
	}
}

func newTestApp(src search.CaseSource) *fiber.App {
	scorer := ranking.NewScorer(2024, 5.0, 0.25)
	c := cache.New(time.Hour)

	searchEngine := search.NewEngine(src, c, scorer, nil, search.Options{
		RelevanceThreshold:   2.0,
		RerankRelevanceMin:   5.0,
		AuthorityMinHighTier: 5,
	})
	empowerEngine := empower.NewEngine(src, c, scorer, nil, empower.Options{
		RelevanceThreshold: 2.0,
		MaxPrecedents:      5,
	})

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Post("/research/search", NewSearchHandler(searchEngine).HandleSearch)
	api.Post("/empower/analyze", NewEmpowerHandler(empowerEngine).HandleAnalyze)

	cacheHandler := NewCacheHandler(c)
	api.Get("/cache/stats", cacheHandler.GetStats)
	api.Post("/cache/clear", cacheHandler.Clear)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func TestHandleSearch(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		app := newTestApp(&stubSource{cases: testCases()})

		status, body := postJSON(t, app, "/api/v1/research/search", fiber.Map{
			"query": "landlord kept my deposit",
		})
		require.Equal(t, fiber.StatusOK, status)

		var resp models.SearchResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, 1, resp.TotalCases)
		require.NotNil(t, resp.MostInfluentialCase)
		assert.Equal(t, "Mehta vs Kapoor", resp.MostInfluentialCase.CaseName)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		app := newTestApp(&stubSource{cases: testCases()})

		status, _ := postJSON(t, app, "/api/v1/research/search", fiber.Map{"query": ""})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})

	t.Run("dataset failure reported", func(t *testing.T) {
		app := newTestApp(&stubSource{err: fmt.Errorf("%w: boom", sqlite.ErrDatasetUnavailable)})

		status, body := postJSON(t, app, "/api/v1/research/search", fiber.Map{"query": "landlord deposit"})
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Contains(t, string(body), "dataset_unavailable")
	})
}

func TestHandleAnalyze(t *testing.T) {
	t.Run("valid query", func(t *testing.T) {
		app := newTestApp(&stubSource{cases: testCases()})

		status, body := postJSON(t, app, "/api/v1/empower/analyze", fiber.Map{
			"query": "my landlord refuses to return my security deposit",
		})
		require.Equal(t, fiber.StatusOK, status)

		var resp models.EmpowerResponse
		require.NoError(t, json.Unmarshal(body, &resp))
		assert.Equal(t, "Security Deposit Recovery", resp.IssueType)
		assert.NotEmpty(t, resp.ActionSteps)
	})

	t.Run("empty query rejected", func(t *testing.T) {
		app := newTestApp(&stubSource{cases: testCases()})

		status, _ := postJSON(t, app, "/api/v1/empower/analyze", fiber.Map{"query": ""})
		assert.Equal(t, fiber.StatusBadRequest, status)
	})
}

func TestCacheEndpoints(t *testing.T) {
	app := newTestApp(&stubSource{cases: testCases()})

	// Populate the query cache, then inspect and clear it.
	status, _ := postJSON(t, app, "/api/v1/research/search", fiber.Map{"query": "landlord kept my deposit"})
	require.Equal(t, fiber.StatusOK, status)

	req := httptest.NewRequest(fiber.MethodGet, "/api/v1/cache/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var stats cache.Stats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, 1, stats.QueryEntries)

	status, _ = postJSON(t, app, "/api/v1/cache/clear", nil)
	require.Equal(t, fiber.StatusOK, status)

	req = httptest.NewRequest(fiber.MethodGet, "/api/v1/cache/stats", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Zero(t, stats.QueryEntries)
}
