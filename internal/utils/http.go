package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// WriteJSON serializes data to JSON and writes it with the given status code
// and a "Content-Type: application/json" header.
//
// If marshaling fails, nothing from data is written: the response becomes a
// 500 with a plain-text body and the wrapped marshal error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.OperationResult{Result: 5}, http.StatusOK)
//	WriteJSON(w, models.ErrorResponse{Error: "Invalid numbers provided"}, http.StatusBadRequest)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteText writes text as a plain-text body with the given status code.
func WriteText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentTypeText)
	w.WriteHeader(statusCode)

	n, err := w.Write([]byte(text))
	if err != nil {
		return n, fmt.Errorf("error writing text response: %w", err)
	}
	return n, nil
}
