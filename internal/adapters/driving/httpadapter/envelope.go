package httpadapter

import (
	"encoding/json"
	"net/http"

	"nearbysos/internal/core/service/directory"
)

// Every response, success or failure, is wrapped in one of these two
// envelopes so clients never have to guess at the body shape.

type successEnvelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type errorEnvelope struct {
	Success    bool                   `json:"success"`
	Error      string                 `json:"error"`
	Message    string                 `json:"message"`
	StatusCode int                    `json:"statusCode"`
	Errors     []directory.FieldError `json:"errors,omitempty"`
}

func respondSuccess(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, successEnvelope{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func respondError(w http.ResponseWriter, status int, message string, fields []directory.FieldError) {
	writeJSON(w, status, errorEnvelope{
		Success:    false,
		Error:      message,
		Message:    message,
		StatusCode: status,
		Errors:     fields,
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	// the status line is already out, nothing useful left to tell the client
	_ = json.NewEncoder(w).Encode(body)
}
