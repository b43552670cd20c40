// Package response provides helpers for writing JSON HTTP responses.
package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every failed API call. The message is fixed
// per route; details stay in the server log.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse is the body of the health check.
type StatusResponse struct {
	Status string `json:"status"`
}

// StatusOK is the health check status.
const StatusOK = "ok"

// WriteJSON serialises data as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Error builds an ErrorResponse carrying msg.
func Error(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}
