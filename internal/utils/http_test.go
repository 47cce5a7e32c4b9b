package utils

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

type resultBody struct {
	Result float64 `json:"result"`
}

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, resultBody{Result: 5}, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n != len(`{"result":5}`) {
		t.Errorf("expected %d bytes written, got %d", len(`{"result":5}`), n)
	}
	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}
	if w.Body.String() != `{"result":5}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_ErrorStatus(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, map[string]string{"error": "Division by zero is not allowed"}, http.StatusBadRequest)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
	if w.Body.String() != `{"error":"Division by zero is not allowed"}` {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}

func TestWriteJSON_UnsupportedValue(t *testing.T) {
	w := httptest.NewRecorder()

	// encoding/json rejects infinities
	_, err := WriteJSON(w, resultBody{Result: math.Inf(1)}, http.StatusOK)

	if err == nil {
		t.Fatal("expected error for +Inf, got nil")
	}
	var unsupported interface{ Unwrap() error }
	if !errors.As(err, &unsupported) {
		t.Errorf("expected wrapped error, got %T", err)
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteText(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteText(w, "1.0.0", http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5 bytes written, got %d", n)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/plain; charset=utf-8" {
		t.Errorf("unexpected Content-Type '%s'", ct)
	}
	if w.Body.String() != "1.0.0" {
		t.Errorf("expected body '1.0.0', got '%s'", w.Body.String())
	}
}
