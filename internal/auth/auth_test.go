package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	rec := httptest.NewRecorder()
	CreateSession(rec, "empreinte-abc")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	fp, ok := ParseSession(req)
	if !ok || fp != "empreinte-abc" {
		t.Fatalf("expected fingerprint back, got %q ok=%v", fp, ok)
	}
}

func TestParseSessionRejectsTampering(t *testing.T) {
	rec := httptest.NewRecorder()
	CreateSession(rec, "empreinte-abc")
	cookie := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookie.Name, Value: "autre." + cookie.Value[len("empreinte-abc."):]})
	if _, ok := ParseSession(req); ok {
		t.Fatalf("tampered cookie must be rejected")
	}

	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.AddCookie(&http.Cookie{Name: cookie.Name, Value: "pasdesignature"})
	if _, ok := ParseSession(req2); ok {
		t.Fatalf("malformed cookie must be rejected")
	}
}

func TestRequireAuth(t *testing.T) {
	t.Cleanup(func() { SetDeviceVerifier(nil) })
	called := false
	h := Middleware(RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	// Sans cookie: 401, handler non appelé.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized || called {
		t.Fatalf("expected 401 without session, got %d called=%v", rec.Code, called)
	}

	// Cookie valide, vérificateur permissif: le handler est appelé.
	SetDeviceVerifier(func(_ context.Context, fp string) bool { return fp == "empreinte-abc" })
	seed := httptest.NewRecorder()
	CreateSession(seed, "empreinte-abc")
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range seed.Result().Cookies() {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	h.ServeHTTP(rec2, req)
	if rec2.Code != http.StatusOK || !called {
		t.Fatalf("expected pass with valid session, got %d called=%v", rec2.Code, called)
	}

	// Le vérificateur dit non: session purgée, 401.
	SetDeviceVerifier(func(_ context.Context, _ string) bool { return false })
	rec3 := httptest.NewRecorder()
	req3 := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range seed.Result().Cookies() {
		req3.AddCookie(c)
	}
	h.ServeHTTP(rec3, req3)
	if rec3.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when verifier denies, got %d", rec3.Code)
	}
}
