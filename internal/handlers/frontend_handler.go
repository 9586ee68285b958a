package handlers

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	"jobmatcher/career-analyzer/internal/models"
)

// Catch-all paths with these prefixes are never answered with the SPA. A
// "static/" path only gets here when the asset does not exist.
var reservedPathPrefixes = []string{"api/", "docs", "openapi.json", "static/"}

// FrontendHandler serves the pre-built single page application.
type FrontendHandler struct {
	buildDir string
}

func NewFrontendHandler(buildDir string) *FrontendHandler {
	return &FrontendHandler{buildDir: buildDir}
}

func (h *FrontendHandler) StaticDir() string {
	return filepath.Join(h.buildDir, "static")
}

func (h *FrontendHandler) HandleIndex(c *fiber.Ctx) error {
	return c.SendFile(filepath.Join(h.buildDir, "index.html"))
}

// HandleCatchAll lets the SPA do client-side routing for every other GET.
func (h *FrontendHandler) HandleCatchAll(c *fiber.Ctx) error {
	fullPath := c.Params("*")
	for _, prefix := range reservedPathPrefixes {
		if strings.HasPrefix(fullPath, prefix) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse{Error: "Not found"})
		}
	}
	return h.HandleIndex(c)
}
