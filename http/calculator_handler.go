package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"fincalc/domain"
	"fincalc/service"
)

const maxBodyBytes = 1 << 20

type CalculatorHandler struct {
	service *service.CalculatorService
}

func NewCalculatorHandler(service *service.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{service: service}
}

// Calculate handles POST /api/calculators/{type}/calculate. The body is the
// flat inputs object of the calculator.
func (h *CalculatorHandler) Calculate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return
	}

	var inputs domain.Inputs
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&inputs)
	if err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.service.Calculate(r.Context(), r.PathValue("type"), inputs)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, outcome, "Calculation successful")
}

// History handles GET /api/calculators/{type}/history?limit=N.
func (h *CalculatorHandler) History(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	records, err := h.service.History(r.Context(), r.PathValue("type"), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, records, "History retrieved successfully")
}

func (h *CalculatorHandler) Stats(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, stats, "Statistics retrieved successfully")
}

// Rules handles GET /api/calculators/{type}/rules.
func (h *CalculatorHandler) Rules(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}

	rules, err := h.service.ValidationRules(r.PathValue("type"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, rules, "Validation rules retrieved successfully")
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Calculator API is running",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
