package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// StatusHandler serves the unauthenticated service descriptor and health
// endpoints.
type StatusHandler struct {
	spreadsheetID string
	hasSearchKey  bool
	hasFinderKey  bool
	hasSheetCreds bool
}

// NewStatusHandler captures the configuration presence flags reported by the
// health endpoint. Only booleans are exposed, never the values themselves.
func NewStatusHandler(spreadsheetID string, hasSearchKey, hasFinderKey, hasSheetCreds bool) *StatusHandler {
	return &StatusHandler{
		spreadsheetID: spreadsheetID,
		hasSearchKey:  hasSearchKey,
		hasFinderKey:  hasFinderKey,
		hasSheetCreds: hasSheetCreds,
	}
}

// Health handles GET /health.
func (h *StatusHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":        "healthy",
		"timestamp":     time.Now().UTC().Format(time.RFC3339),
		"spreadsheetId": h.spreadsheetID,
		"hasSearchKey":  h.hasSearchKey,
		"hasFinderKey":  h.hasFinderKey,
		"hasSheetCreds": h.hasSheetCreds,
	})
}

// Root handles GET / with a service descriptor.
func (h *StatusHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": "LinkedIn Data Extractor",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"profile":       "POST /webhook/profile",
			"company":       "POST /webhook/company",
			"posts":         "POST /webhook/posts",
			"postsDetailed": "POST /webhook/posts/detailed",
			"extractAll":    "POST /webhook/extract-all",
			"health":        "GET /health",
		},
	})
}
