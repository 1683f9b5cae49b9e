// Package httpx carries the JSON request/response helpers shared by the
// calculator handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrBadPayload is returned when a request body is not valid JSON.
var ErrBadPayload = errors.New("invalid request payload")

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Decode reads a JSON body into v, rejecting unknown fields.
func Decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return nil
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	WriteJSON(w, status, ErrorResponse{Code: code, Message: msg})
}

// BadRequest answers 400 with the given error.
func BadRequest(w http.ResponseWriter, err error) {
	code := "invalid_input"
	if errors.Is(err, ErrBadPayload) {
		code = "bad_payload"
	}
	WriteError(w, http.StatusBadRequest, code, err)
}
