package http

import (
	"net/http"
	"strings"

	"fincalc/catalog"
	"fincalc/domain"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// List handles GET /api/calculators. q filters by search term and category
// by exact category name, ignoring case.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	query := r.URL.Query()
	list := catalog.Search(query.Get("q"))

	if category := strings.TrimSpace(query.Get("category")); category != "" {
		filtered := make([]catalog.Calculator, 0, len(list))
		for _, c := range list {
			if strings.EqualFold(c.Category, category) {
				filtered = append(filtered, c)
			}
		}
		list = filtered
	}
	if list == nil {
		list = []catalog.Calculator{}
	}

	writeSuccess(w, list, "Calculators retrieved successfully")
}

func (h *CatalogHandler) Categories(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	writeSuccess(w, catalog.Categories(), "Categories retrieved successfully")
}

// Get handles GET /api/calculators/{type}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	c, ok := catalog.Get(domain.CalculatorType(r.PathValue("type")))
	if !ok {
		writeError(w, http.StatusNotFound, "Calculator not found")
		return
	}

	writeSuccess(w, c, "Calculator retrieved successfully")
}
