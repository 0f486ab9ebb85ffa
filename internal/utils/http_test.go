package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteJSON_Success(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"requestId": "req-1"}

	n, err := WriteJSON(w, data, http.StatusAccepted)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if n == 0 {
		t.Error("expected non-zero bytes written")
	}
	if w.Code != http.StatusAccepted {
		t.Errorf("expected status %d, got %d", http.StatusAccepted, w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got '%s'", ct)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}

func TestWriteJSON_InvalidData(t *testing.T) {
	w := httptest.NewRecorder()

	// channels cannot be marshaled to JSON
	_, err := WriteJSON(w, make(chan int), http.StatusOK)

	if err == nil {
		t.Fatal("expected error for non-serializable data, got nil")
	}
	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}

func TestWriteJSON_NilData(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, nil, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error for nil data, got: %v", err)
	}
	if w.Body.String() != "null" {
		t.Errorf("expected body 'null', got '%s'", w.Body.String())
	}
}

func TestWriteJSON_Struct(t *testing.T) {
	type loadResult struct {
		EntityType string `json:"entityType"`
		Created    int    `json:"created"`
	}

	w := httptest.NewRecorder()
	data := loadResult{EntityType: "DEVICE", Created: 3}

	_, err := WriteJSON(w, data, http.StatusOK)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	expected, _ := json.Marshal(data)
	if w.Body.String() != string(expected) {
		t.Errorf("expected body %s, got %s", expected, w.Body.String())
	}
}
