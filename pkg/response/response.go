package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the error envelope of every API endpoint
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Error sends {"error": message}
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, ErrorBody{Error: message})
}
