package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Sariga-2005/VidhimurAI/internal/empower"
	"github.com/Sariga-2005/VidhimurAI/internal/storage/sqlite"
	"github.com/Sariga-2005/VidhimurAI/pkg/logger"
)

type EmpowerHandler struct {
	engine *empower.Engine
}

func NewEmpowerHandler(engine *empower.Engine) *EmpowerHandler {
	return &EmpowerHandler{engine: engine}
}

func (h *EmpowerHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req struct {
		Query   string `json:"query"`
		Context string `json:"context"`
	}

	if err := c.BodyParser(&req); err != nil {
		logger.Error("Failed to parse empower request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if req.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Query is required",
		})
	}

	response, err := h.engine.Analyze(c.Context(), req.Query, req.Context)
	if err != nil {
		logger.Error("Empowerment analysis failed", zap.Error(err))
		if errors.Is(err, sqlite.ErrDatasetUnavailable) {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "dataset_unavailable",
				"message": err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze issue",
		})
	}

	return c.JSON(response)
}
