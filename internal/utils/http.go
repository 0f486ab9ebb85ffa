package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON marshals data and writes it as an application/json response with
// the given status code. A value that cannot be marshaled answers 500 and the
// wrapped error is returned to the caller.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "cannot encode response body", http.StatusInternalServerError)
		return 0, fmt.Errorf("encode response body: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(body)
}
