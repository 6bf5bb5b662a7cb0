package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"fincalc/domain"
)

type apiResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message,omitempty"`
	Data    any                 `json:"data,omitempty"`
	Errors  []domain.FieldError `json:"errors,omitempty"`
}

// writeJSON encodes into a buffer first so an encoding failure can still
// produce a clean 500.
func writeJSON(w http.ResponseWriter, status int, body any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeSuccess(w http.ResponseWriter, data any, message string) {
	writeJSON(w, http.StatusOK, apiResponse{Success: true, Message: message, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Success: false, Message: message})
}

// writeServiceError maps errors returned by the service layer to responses.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var divergenceErr *domain.DivergenceError

	switch {
	case errors.Is(err, domain.ErrInvalidCalculatorType):
		writeError(w, http.StatusBadRequest, "Invalid calculator type")
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusUnprocessableEntity, apiResponse{
			Message: validationErr.Error(),
			Errors:  validationErr.Fields,
		})
	case errors.As(err, &divergenceErr):
		writeJSON(w, http.StatusUnprocessableEntity, apiResponse{
			Message: divergenceErr.Message,
			Data:    divergenceErr.Partial,
		})
	default:
		log.Printf("Error handling request: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}
