package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestJSONWritesStatusAndBody(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusCreated, map[string]string{"roomId": "abc12345"})

	if w.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["roomId"] != "abc12345" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestJSONErrorWrapsMessage(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, http.StatusNotFound, "room not found")

	if w.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil || body["error"] != "room not found" {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}
