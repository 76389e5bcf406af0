package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/angelmondragon/hotelsuite/pkg/auth"
	"github.com/angelmondragon/hotelsuite/pkg/config"
	"github.com/angelmondragon/hotelsuite/pkg/enums"
	"github.com/google/uuid"
)

var testJWT = config.JWTConfig{Secret: "secret", Issuer: "issuer", ExpirationMinutes: 60}

func TestAuthRejectsMissingToken(t *testing.T) {
	handler := Auth(testJWT, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	handler := Auth(testJWT, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Message != "invalid token" {
		t.Fatalf("expected invalid token message got %q", body.Error.Message)
	}
}

func TestAuthAllowsValidToken(t *testing.T) {
	token := mintTestToken(t, enums.MemberRoleManager, "42")

	var captured struct {
		user          string
		role          string
		establishment string
		canEdit       bool
	}
	handler := Auth(testJWT, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.user = UserIDFromContext(r.Context())
		captured.role = RoleFromContext(r.Context())
		captured.establishment = EstablishmentIDFromContext(r.Context())
		captured.canEdit = CanEditLayoutFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if captured.user == "" {
		t.Fatal("expected user id in context")
	}
	if captured.role != string(enums.MemberRoleManager) {
		t.Fatalf("expected role manager got %s", captured.role)
	}
	if captured.establishment != "42" {
		t.Fatalf("expected establishment 42 got %s", captured.establishment)
	}
	if !captured.canEdit {
		t.Fatal("expected manager to edit the layout")
	}
}

func TestRequireLayoutEditorRejectsStaff(t *testing.T) {
	token := mintTestToken(t, enums.MemberRoleStaff, "")
	reached := false
	handler := Auth(testJWT, nil)(RequireLayoutEditor(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	})))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d", resp.Code)
	}
	if reached {
		t.Fatal("handler should not run for staff")
	}
	if EstablishmentIDFromContext(req.Context()) != "" {
		t.Fatal("request context should stay untouched")
	}
}

func mintTestToken(t *testing.T, role enums.MemberRole, establishmentID string) string {
	t.Helper()
	payload := auth.AccessTokenPayload{
		UserID:          uuid.New(),
		EstablishmentID: establishmentID,
		Role:            role,
	}
	token, err := auth.MintAccessToken(testJWT, time.Now(), payload)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func TestRequireRoleRejectsOtherRoles(t *testing.T) {
	handler := Auth(testJWT, nil)(RequireRole(nil, enums.MemberRoleManager, enums.MemberRoleAdmin)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	for role, want := range map[enums.MemberRole]int{
		enums.MemberRoleManager: http.StatusNoContent,
		enums.MemberRoleStaff:   http.StatusForbidden,
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/42", nil)
		req.Header.Set("Authorization", "Bearer "+mintTestToken(t, role, "42"))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != want {
			t.Errorf("role %s: expected %d, got %d", role, want, rec.Code)
		}
	}
}
