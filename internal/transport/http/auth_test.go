package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func bearerFor(t *testing.T, userID string) string {
	t.Helper()
	return "Bearer " + signToken(t, testSecret, jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(5 * time.Minute).Unix(),
	})
}

func TestAuthenticator_UserFromHeader(t *testing.T) {
	t.Parallel()

	auth := NewAuthenticator(testSecret, "")
	valid := bearerFor(t, "alice")
	expired := "Bearer " + signToken(t, testSecret, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})
	noExp := "Bearer " + signToken(t, testSecret, jwt.MapClaims{"sub": "alice"})
	noSub := "Bearer " + signToken(t, testSecret, jwt.MapClaims{"exp": time.Now().Add(time.Minute).Unix()})
	wrongKey := "Bearer " + signToken(t, []byte("other"), jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	tests := []struct {
		name    string
		header  string
		wantID  string
		wantErr bool
	}{
		{name: "valid token", header: valid, wantID: "alice"},
		{name: "missing header", header: "", wantErr: true},
		{name: "wrong scheme", header: "Basic abc", wantErr: true},
		{name: "malformed token", header: "Bearer not-a-jwt", wantErr: true},
		{name: "expired", header: expired, wantErr: true},
		{name: "no expiry", header: noExp, wantErr: true},
		{name: "no subject", header: noSub, wantErr: true},
		{name: "wrong signing key", header: wrongKey, wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			user, err := auth.UserFromHeader(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got user %+v", user)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if user.ID != tt.wantID {
				t.Fatalf("expected user %q, got %q", tt.wantID, user.ID)
			}
		})
	}
}

func TestAuthenticator_Issuer(t *testing.T) {
	auth := NewAuthenticator(testSecret, "https://issuer/")

	good := "Bearer " + signToken(t, testSecret, jwt.MapClaims{
		"sub": "alice", "iss": "https://issuer/", "exp": time.Now().Add(time.Minute).Unix(),
	})
	if _, err := auth.UserFromHeader(good); err != nil {
		t.Fatalf("expected matching issuer to pass: %v", err)
	}

	bad := "Bearer " + signToken(t, testSecret, jwt.MapClaims{
		"sub": "alice", "iss": "https://other/", "exp": time.Now().Add(time.Minute).Unix(),
	})
	if _, err := auth.UserFromHeader(bad); err == nil {
		t.Fatalf("expected issuer mismatch to fail")
	}
}

func TestRequireUser(t *testing.T) {
	auth := NewAuthenticator(testSecret, "")
	var seen string
	handler := auth.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			t.Errorf("expected user in context")
		}
		seen = user.ID
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodGet, "/webinars", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/webinars", nil)
	req.Header.Set("Authorization", bearerFor(t, "bob"))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 with token, got %d", rec.Code)
	}
	if seen != "bob" {
		t.Fatalf("expected bob in context, got %q", seen)
	}
}
