package validation

import (
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	sqlInjectionPattern = regexp.MustCompile(`(?i)(union\s+select|insert\s+into|drop\s+table|delete\s+from|exec\s*\()`)
	xssPattern          = regexp.MustCompile(`(?i)(<script|<iframe|javascript:|onerror=|onload=|onclick=)`)
)

type Config struct {
	MaxQueryLength int
	Logger         *zap.Logger
}

// Middleware validates the query body on the search and empower endpoints.
func Middleware(cfg Config) fiber.Handler {
	if cfg.MaxQueryLength == 0 {
		cfg.MaxQueryLength = 2000
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return func(c *fiber.Ctx) error {
		path := c.Path()
		if c.Method() != fiber.MethodPost || !isQueryEndpoint(path) {
			return c.Next()
		}

		var req map[string]interface{}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid JSON format",
			})
		}

		query, ok := req["query"].(string)
		if !ok || strings.TrimSpace(query) == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Query is required and must be a string",
			})
		}

		if len(query) > cfg.MaxQueryLength {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Query exceeds maximum length",
			})
		}

		if sqlInjectionPattern.MatchString(query) || xssPattern.MatchString(query) {
			cfg.Logger.Warn("Rejected suspicious query",
				zap.String("ip", c.IP()),
				zap.String("path", path),
			)
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid query content",
			})
		}

		return c.Next()
	}
}

func isQueryEndpoint(path string) bool {
	return strings.Contains(path, "/research/search") || strings.Contains(path, "/empower/analyze")
}
