package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body shape of every successful response. The browser
// client unwraps "data" unconditionally, so even message-only replies go
// through it.
type Envelope struct {
	Data any `json:"data"`
}

// WriteJSON encodes v with the given status. Content-Type is only set when
// a middleware has not claimed it already.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// OK writes 200 with the data envelope.
func OK(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusOK, Envelope{Data: data})
}

// Created writes 201 with the data envelope.
func Created(w http.ResponseWriter, data any) {
	WriteJSON(w, http.StatusCreated, Envelope{Data: data})
}

// NoContent writes 204 and nothing else.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
