package auth

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Session d'appareil: le cookie signé transporte l'empreinte du navigateur,
// pas un identifiant de compte — il n'y a pas de comptes. La validité
// réelle de la session se vérifie en base via le DeviceVerifier.

type ctxKey string

const (
	sessionCookieName = "device"
	fingerprintCtxKey = ctxKey("fingerprint")
)

// DeviceVerifier valide qu'une session existe toujours pour l'empreinte.
// Configuré au démarrage via SetDeviceVerifier; nil = pas de vérification.
type DeviceVerifier func(ctx context.Context, fingerprint string) bool

var verifier DeviceVerifier

// SetDeviceVerifier configure le vérificateur global utilisé par RequireAuth.
func SetDeviceVerifier(v DeviceVerifier) { verifier = v }

// Secret returns SESSION_SECRET or default dev value.
func Secret() string {
	if s := os.Getenv("SESSION_SECRET"); s != "" {
		return s
	}
	return "devsessionsecret"
}

func sign(fingerprint string) string {
	mac := hmac.New(sha256.New, []byte(Secret()))
	mac.Write([]byte(fingerprint))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// CreateSession pose le cookie signé portant l'empreinte.
func CreateSession(w http.ResponseWriter, fingerprint string) {
	value := fingerprint + "." + sign(fingerprint)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(14 * 24 * time.Hour),
	})
}

// ClearSession deletes the session cookie.
func ClearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{Name: sessionCookieName, Value: "", Path: "/", Expires: time.Unix(0, 0), HttpOnly: true, SameSite: http.SameSiteLaxMode})
}

// ParseSession valide le cookie et renvoie l'empreinte.
func ParseSession(r *http.Request) (string, bool) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	parts := strings.Split(c.Value, ".")
	if len(parts) != 2 {
		return "", false
	}
	fingerprint, sig := parts[0], parts[1]
	if !hmac.Equal([]byte(sig), []byte(sign(fingerprint))) {
		return "", false
	}
	return fingerprint, true
}

// WithFingerprint stores the fingerprint in context.
func WithFingerprint(ctx context.Context, fingerprint string) context.Context {
	return context.WithValue(ctx, fingerprintCtxKey, fingerprint)
}

// FingerprintFromContext extracts the fingerprint.
func FingerprintFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(fingerprintCtxKey)
	if v == nil {
		return "", false
	}
	fp, ok := v.(string)
	return fp, ok && fp != ""
}

// Middleware attache l'empreinte au contexte si le cookie est valide.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fp, ok := ParseSession(r); ok {
			r = r.WithContext(WithFingerprint(r.Context(), fp))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth renvoie 401 JSON si aucune session d'appareil valide.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fp, ok := FingerprintFromContext(r.Context())
		if !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"unauthorized"}`)
			return
		}
		if verifier != nil && !verifier(r.Context(), fp) {
			// Le cookie référence une session supprimée: on le purge.
			ClearSession(w)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":"unauthorized"}`)
			return
		}
		next.ServeHTTP(w, r)
	})
}
