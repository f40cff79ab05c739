package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/example/telkomportal/internal/services"
)

// CatalogHandler serves the public marketing dataset.
type CatalogHandler struct {
	catalog *services.CatalogService
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(catalog *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Get serves GET /api/telkom-data. Responses come from a one-hour cache unless
// refresh=true forces a fresh pull.
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	force := c.Query("refresh") == "true"
	result := h.catalog.Get(force)

	response := fiber.Map{
		"success":     true,
		"data":        result.Catalog,
		"cached":      result.Cached,
		"nextRefresh": result.NextRefresh.UTC().Format(time.RFC3339),
	}
	if result.Cached {
		response["cacheAge"] = result.CacheAge.Milliseconds()
	}

	return c.JSON(response)
}
