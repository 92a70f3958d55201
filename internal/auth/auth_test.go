package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/roughcut/roughcut/backend-go/internal/typeid"
)

func TestCredentialsNormalize(t *testing.T) {
	creds := credentials{Email: "  Ada@Example.COM ", DisplayName: " Ada "}
	creds.normalize()
	if creds.Email != "ada@example.com" {
		t.Errorf("email = %q, want %q", creds.Email, "ada@example.com")
	}
	if creds.DisplayName != "Ada" {
		t.Errorf("displayName = %q, want %q", creds.DisplayName, "Ada")
	}
}

func TestBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		token  string
		ok     bool
	}{
		{"well formed", "Bearer abc.def.ghi", "abc.def.ghi", true},
		{"lowercase scheme", "bearer abc", "abc", true},
		{"missing header", "", "", false},
		{"wrong scheme", "Basic abc", "", false},
		{"empty token", "Bearer ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			token, ok := bearerToken(r)
			if ok != tt.ok || token != tt.token {
				t.Errorf("bearerToken = (%q, %v), want (%q, %v)", token, ok, tt.token, tt.ok)
			}
		})
	}
}

func TestAuthMiddlewarePutsUserInContext(t *testing.T) {
	svc := NewService(nil, "test-secret")
	userID := typeid.NewUserID()
	token, err := svc.issueToken(userID)
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
	})

	r := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	svc.AuthMiddleware(next).ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotUserID != userID {
		t.Errorf("user id in context = %q, want %q", gotUserID, userID)
	}
}

func TestAuthMiddlewareRejectsNonUserSubject(t *testing.T) {
	svc := NewService(nil, "test-secret")
	token, err := svc.issueToken(typeid.NewBoardID())
	if err != nil {
		t.Fatalf("issueToken: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run for a non-user subject")
	})

	r := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	svc.AuthMiddleware(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
	if !strings.Contains(w.Body.String(), "invalid token subject") {
		t.Errorf("body = %q, want subject rejection", w.Body.String())
	}
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	svc := NewService(nil, "test-secret")
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler should not run without a token")
	})

	r := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	w := httptest.NewRecorder()
	svc.AuthMiddleware(next).ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
