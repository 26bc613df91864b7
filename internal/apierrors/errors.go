// Package apierrors defines the two wire shapes error responses take:
// a single message object and a validation message list.
package apierrors

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body for single-error responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationResponse is the body for validation failures, carrying every
// collected field message.
type ValidationResponse struct {
	Errors []string `json:"errors"`
}

// WriteMessage writes a {"message": ...} error body.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteValidation writes an {"errors": [...]} body with the full message list.
func WriteValidation(w http.ResponseWriter, statusCode int, messages []string) {
	WriteJSON(w, statusCode, ValidationResponse{Errors: messages})
}

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}
