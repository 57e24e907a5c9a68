package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lexcard/lexcard-client/internal/graphql"
	"github.com/lexcard/lexcard-client/internal/storage"
)

type memKV struct{ m map[string]string }

func newMemKV() *memKV { return &memKV{m: map[string]string{}} }

func (s *memKV) Get(key string) (string, bool, error) {
	v, ok := s.m[key]
	return v, ok, nil
}
func (s *memKV) Set(key, value string) error { s.m[key] = value; return nil }
func (s *memKV) Delete(key string) error     { delete(s.m, key); return nil }
func (s *memKV) Clear() error                { s.m = map[string]string{}; return nil }

func newBackend(t *testing.T, handler func(query string) string) *Service {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Query string `json:"query"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(handler(body.Query)))
	}))
	t.Cleanup(srv.Close)
	return NewService(graphql.New(graphql.Config{Endpoint: srv.URL, Token: TokenFromContext}))
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return tok
}

func TestLoginStoresTokenPerRememberMe(t *testing.T) {
	svc := newBackend(t, func(query string) string {
		if !strings.Contains(query, "Login") {
			return `{"errors":[{"message":"unknown"}]}`
		}
		return `{"data":{"login":{"access_token":"tok-1","user":{"id":3,"displayName":"Ana","email":"a@x.y","roles":["user"],"verified":true}}}}`
	})

	durable, session := newMemKV(), newMemKV()
	p := storage.Prefs{Durable: durable, Session: session}

	u, err := svc.Login(context.Background(), p, "a@x.y", "pw", false)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.DisplayName != "Ana" || !u.Verified {
		t.Fatalf("profile %+v", u)
	}
	if _, ok := durable.m["authToken"]; ok {
		t.Fatal("token should be session-scoped without remember-me")
	}
	if session.m["authToken"] != "tok-1" {
		t.Fatalf("session token = %q", session.m["authToken"])
	}

	// remembered login lands in the durable store
	if _, err := svc.Login(context.Background(), p, "a@x.y", "pw", true); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if durable.m["authToken"] != "tok-1" {
		t.Fatalf("durable token = %q", durable.m["authToken"])
	}
	if _, ok := session.m["authToken"]; ok {
		t.Fatal("stale session token left behind")
	}
}

func TestLogoutClearsEvenIfBackendFails(t *testing.T) {
	svc := newBackend(t, func(string) string {
		return `{"errors":[{"message":"session already gone"}]}`
	})
	p := storage.Prefs{Durable: newMemKV(), Session: newMemKV()}
	_ = p.SetItem("authToken", "tok")

	if err := svc.Logout(context.Background(), p); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if _, ok := p.GetItem("authToken"); ok {
		t.Fatal("token survived logout")
	}
}

func TestVerifySessionExpiredToken(t *testing.T) {
	svc := newBackend(t, func(string) string {
		return `{"data":{"me":{"id":1}}}`
	})
	p := storage.Prefs{Durable: newMemKV(), Session: newMemKV()}

	if err := svc.VerifySession(context.Background(), p); err != ErrNotLoggedIn {
		t.Fatalf("no token: err = %v", err)
	}

	expired := signedToken(t, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	_ = p.SetItem("authToken", expired)
	if err := svc.VerifySession(context.Background(), p); err != ErrNotLoggedIn {
		t.Fatalf("expired token: err = %v", err)
	}
	if _, ok := p.GetItem("authToken"); ok {
		t.Fatal("expired token not removed")
	}

	live := signedToken(t, jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	_ = p.SetItem("authToken", live)
	if err := svc.VerifySession(context.Background(), p); err != nil {
		t.Fatalf("live token: %v", err)
	}
}

func TestParseClaims(t *testing.T) {
	tok := signedToken(t, jwt.MapClaims{
		"sub":   "42",
		"roles": []any{"admin", "user"},
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	c, err := ParseClaims(tok)
	if err != nil {
		t.Fatalf("ParseClaims: %v", err)
	}
	if c.Subject != "42" || !c.HasRole("admin") || c.HasRole("editor") || c.Expired() {
		t.Fatalf("claims %+v", c)
	}

	if _, err := ParseClaims("not-a-jwt"); err == nil {
		t.Fatal("expected error for garbage token")
	}
}
