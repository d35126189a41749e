package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Sariga-2005/VidhimurAI/internal/cache"
	"github.com/Sariga-2005/VidhimurAI/pkg/logger"
)

type CacheHandler struct {
	cache *cache.Cache
}

func NewCacheHandler(c *cache.Cache) *CacheHandler {
	return &CacheHandler{cache: c}
}

func (h *CacheHandler) GetStats(c *fiber.Ctx) error {
	return c.JSON(h.cache.Snapshot())
}

func (h *CacheHandler) Clear(c *fiber.Ctx) error {
	h.cache.Clear()
	logger.Info("Cache cleared by request")
	return c.JSON(fiber.Map{"status": "cleared"})
}
