package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// JSON writes payload as a JSON response body.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}

// Text writes a plain-text response body, used for confirmations and the
// raw login token.
func Text(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message)); err != nil {
		log.Printf("respond: write text failed: %v", err)
	}
}

// Error writes an error response. The message is client-safe; internal
// detail belongs in the server log, never here.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
