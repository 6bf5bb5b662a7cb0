package http

import (
	"net/http"
)

// NewRouter wires every endpoint behind the rate limiter. Methods are checked
// by the handlers so that a wrong method gets the JSON error body.
func NewRouter(
	calculators *CalculatorHandler,
	catalogs *CatalogHandler,
	limiter *RateLimiter,
) http.Handler {

	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", Health)

	mux.HandleFunc("/api/calculators", catalogs.List)
	mux.HandleFunc("/api/calculators/categories", catalogs.Categories)
	mux.HandleFunc("/api/calculators/stats", calculators.Stats)
	mux.HandleFunc("/api/calculators/{type}", catalogs.Get)
	mux.HandleFunc("/api/calculators/{type}/calculate", calculators.Calculate)
	mux.HandleFunc("/api/calculators/{type}/history", calculators.History)
	mux.HandleFunc("/api/calculators/{type}/rules", calculators.Rules)

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route "+r.URL.Path+" not found")
	})

	return RateLimitMiddleware(limiter, mux)
}
