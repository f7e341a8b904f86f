package httpx

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
)

func TestJSONErrorMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONErrorMessage(rec, 404, "client_not_found", "Client introuvable")
	if rec.Code != 404 {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
	var out ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Error != "client_not_found" || out.Message != "Client introuvable" {
		t.Fatalf("unexpected envelope: %+v", out)
	}
	if out.Details != nil {
		t.Fatalf("details must be omitted, got %v", out.Details)
	}
}

func TestJSONErrorDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, 400, "validation_failed", map[string]string{"nom": "Requis"})
	var out struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Error != "validation_failed" || out.Details["nom"] != "Requis" {
		t.Fatalf("unexpected envelope: %+v", out)
	}
}
