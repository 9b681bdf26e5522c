package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/oapi-codegen/nullable"
	"github.com/rs/zerolog"

	"github.com/Overland-East-Bay/participant-api/internal/app/participants"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error     string                    `json:"error"`
	RequestID nullable.Nullable[string] `json:"requestId,omitempty"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	er := ErrorResponse{Error: message}
	if rid := RequestIDFromContext(r.Context()); rid != "" {
		er.RequestID = nullable.NewNullableWithValue(rid)
	}
	writeJSON(w, status, er)
}

// writeAppError maps application errors to their status; anything else is a 500.
func writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	if ae := (*participants.Error)(nil); errors.As(err, &ae) {
		writeError(w, r, ae.Status, ae.Message)
		return
	}
	zerolog.Ctx(r.Context()).Error().Err(err).Msg("unexpected error")
	writeError(w, r, http.StatusInternalServerError, "Internal server error")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
