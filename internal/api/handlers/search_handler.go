package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Sariga-2005/VidhimurAI/internal/search"
	"github.com/Sariga-2005/VidhimurAI/internal/storage/models"
	"github.com/Sariga-2005/VidhimurAI/internal/storage/sqlite"
	"github.com/Sariga-2005/VidhimurAI/pkg/logger"
)

type SearchHandler struct {
	engine *search.Engine
}

func NewSearchHandler(engine *search.Engine) *SearchHandler {
	return &SearchHandler{engine: engine}
}

func (h *SearchHandler) HandleSearch(c *fiber.Ctx) error {
	var req struct {
		Query   string                `json:"query"`
		Filters *models.SearchFilters `json:"filters"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse search request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query is required",
		})
	}

	response, err := h.engine.Search(c.Context(), req.Query, req.Filters)
	if err != nil {
		logger.Error("Search failed", zap.Error(err))
		if errors.Is(err, sqlite.ErrDatasetUnavailable) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "dataset_unavailable",
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to process search",
		})
	}

	return c.JSON(response)
}
