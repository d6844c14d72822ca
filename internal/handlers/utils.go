package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"video-player/internal/logging"
	"video-player/internal/player"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 64 << 10

// errorResponse is the body of every failed API request.
type errorResponse struct {
	Error  string `json:"error"`
	Kind   string `json:"kind"`
	Reason string `json:"reason,omitempty"`
}

// writeJSON encodes v as JSON and writes it to the response writer.
// Any encoding or write errors are logged since we typically cannot
// recover from them in an HTTP handler context.
func writeJSON(w http.ResponseWriter, v interface{}) {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("failed to encode JSON response: %v", err)
	}
}

// writeJSONStatus writes v as JSON with the given status code.
func writeJSONStatus(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, v)
}

// writeJSONError writes an error response as JSON with the given status code.
func writeJSONError(w http.ResponseWriter, message, kind string, statusCode int) {
	writeJSONStatus(w, statusCode, errorResponse{Error: message, Kind: kind})
}

// writeError maps a controller error to a status code and writes it.
func writeError(w http.ResponseWriter, err error) {
	var pe *player.Error
	if !errors.As(err, &pe) {
		logging.Error("unexpected handler error: %v", err)
		writeJSONError(w, "internal server error", "internal", http.StatusInternalServerError)
		return
	}

	resp := errorResponse{Error: pe.Err.Error(), Kind: pe.Kind.String()}
	if pe.Kind == player.KindFlagged {
		resp.Reason = pe.Reason
	}
	writeJSONStatus(w, statusForKind(pe.Kind), resp)
}

func statusForKind(k player.Kind) int {
	switch k {
	case player.KindNotFound:
		return http.StatusNotFound
	case player.KindConflict, player.KindInvalidState:
		return http.StatusConflict
	case player.KindFlagged:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched
// when optional is true.
func decodeJSON(r *http.Request, v interface{}, optional bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if optional && errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

// badRequest writes a 400 for malformed input.
func badRequest(w http.ResponseWriter, message string) {
	writeJSONError(w, message, "bad_request", http.StatusBadRequest)
}
