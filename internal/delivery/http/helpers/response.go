package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the error body for every non-2xx API response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is the body for operations that return only an outcome flag,
// such as DELETE /api/conferences/{id}.
// swagger:model SuccessResponse
type SuccessResponse struct {
	Success bool `json:"success"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes statusCode with an ErrorResponse carrying message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}
