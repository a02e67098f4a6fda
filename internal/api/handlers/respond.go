// Package handlers holds the JSON helpers shared by every endpoint
// package: request decoding and the uniform error body {"error": code}.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies to keep decoding bounded.
const maxBodyBytes = 1 << 20 // 1 MB

// errorResponse is the uniform error body. Code is a stable machine
// readable identifier; Detail optionally narrows it down for humans.
type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// DecodeJSON decodes the request body into dst, rejecting unknown fields
// and trailing garbage.
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected content after JSON body")
	}
	return nil
}

// RespondJSON writes a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondNoContent writes an empty 204 response.
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// RespondError writes the uniform error body with the given status.
func RespondError(w http.ResponseWriter, status int, code string) {
	RespondJSON(w, status, errorResponse{Error: code})
}

// RespondErrorDetail writes the uniform error body with a human detail.
func RespondErrorDetail(w http.ResponseWriter, status int, code, detail string) {
	RespondJSON(w, status, errorResponse{Error: code, Detail: detail})
}

// RespondBadRequest writes a 400 with the given code.
func RespondBadRequest(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusBadRequest, code)
}

// RespondUnauthorized writes a 401 with the given code.
func RespondUnauthorized(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusUnauthorized, code)
}

// RespondForbidden writes a 403 with the given code.
func RespondForbidden(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusForbidden, code)
}

// RespondNotFound writes a 404 with the given code.
func RespondNotFound(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusNotFound, code)
}

// RespondConflict writes a 409 with the given code.
func RespondConflict(w http.ResponseWriter, code string) {
	RespondError(w, http.StatusConflict, code)
}

// RespondInternalError writes the generic 500 body.
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "server_error")
}
