package api

import (
	_ "embed"
	"log/slog"
	"net/http"

	"github.com/phrazzld/news-api/internal/platform/logger"
	"github.com/phrazzld/news-api/internal/redact"
)

//go:embed endpoints.json
var endpointsJSON []byte

// Endpoints returns the raw endpoint catalog served at GET /api.
func Endpoints() []byte {
	return endpointsJSON
}

// GetEndpoints handles GET /api requests
func GetEndpoints(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(endpointsJSON); err != nil {
		logger.FromContext(r.Context()).Error("failed to write endpoint catalog",
			slog.String("error", redact.Error(err)))
	}
}
