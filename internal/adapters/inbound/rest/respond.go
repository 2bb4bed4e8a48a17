package rest

import (
	"encoding/json"
	"net/http"

	"github.com/afcrichmond/believe-api/internal/telemetry"
)

type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		telemetry.Warnf("rest: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	writeJSON(w, status, apiError{Error: kind, Message: message})
}

func notFound(w http.ResponseWriter, resource, id string) {
	writeError(w, http.StatusNotFound, "Not Found", resource+" "+id+" does not exist")
}

func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, "Bad Request", message)
}

// decodeBody rejects malformed JSON and unknown fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		badRequest(w, "invalid request body: "+err.Error())
		return false
	}
	return true
}
