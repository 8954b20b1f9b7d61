package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	pkgAuth "github.com/anasbeautylab/beautylab-backend/pkg/auth"
	"github.com/anasbeautylab/beautylab-backend/pkg/config"
	"github.com/anasbeautylab/beautylab-backend/pkg/db/models"
	"github.com/anasbeautylab/beautylab-backend/pkg/enums"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func authTestJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "beautylab",
		ExpirationMinutes: 60,
	}
}

func mintTestToken(t *testing.T, cfg config.JWTConfig, user *models.User, issuedAt time.Time) string {
	t.Helper()
	token, err := pkgAuth.MintAccessToken(cfg, issuedAt, pkgAuth.AccessTokenPayload{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return token
}

func activeTestUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Role:     enums.UserRoleAdmin,
		IsActive: true,
	}
}

func TestAuth_SeedsContextFromStoredUser(t *testing.T) {
	cfg := authTestJWTConfig()
	user := activeTestUser()
	resolver := &stubResolver{user: user}

	var gotUserID, gotRole string
	handler := Auth(cfg, resolver, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromContext(r.Context())
		gotRole = RoleFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/gallery", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, cfg, user, time.Now()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotUserID != user.ID.String() {
		t.Fatalf("expected user id in context, got %q", gotUserID)
	}
	if gotRole != string(enums.UserRoleAdmin) {
		t.Fatalf("expected admin role in context, got %q", gotRole)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	handler := Auth(authTestJWTConfig(), &stubResolver{}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/gallery", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assertUnauthorized(t, rec, "missing credentials")
}

func TestAuth_TamperedToken(t *testing.T) {
	cfg := authTestJWTConfig()
	user := activeTestUser()
	handler := Auth(cfg, &stubResolver{user: user}, nil)(okHandler())

	token := mintTestToken(t, cfg, user, time.Now())
	tampered := token[:len(token)-1] + flipChar(token[len(token)-1])

	req := httptest.NewRequest(http.MethodGet, "/api/admin/gallery", nil)
	req.Header.Set("Authorization", "Bearer "+tampered)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assertUnauthorized(t, rec, "invalid token")
}

func TestAuth_ExpiredToken(t *testing.T) {
	cfg := authTestJWTConfig()
	user := activeTestUser()
	handler := Auth(cfg, &stubResolver{user: user}, nil)(okHandler())

	issued := time.Now().Add(-2 * time.Hour)
	req := httptest.NewRequest(http.MethodGet, "/api/admin/gallery", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, cfg, user, issued))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assertUnauthorized(t, rec, "token expired")
}

func TestAuth_UnknownUser(t *testing.T) {
	cfg := authTestJWTConfig()
	user := activeTestUser()
	handler := Auth(cfg, &stubResolver{}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/gallery", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, cfg, user, time.Now()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assertUnauthorized(t, rec, "account no longer exists")
}

func TestAuth_DeactivatedUser(t *testing.T) {
	cfg := authTestJWTConfig()
	user := activeTestUser()
	user.IsActive = false
	handler := Auth(cfg, &stubResolver{user: user}, nil)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/gallery", nil)
	req.Header.Set("Authorization", "Bearer "+mintTestToken(t, cfg, user, time.Now()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assertUnauthorized(t, rec, "account is deactivated")
}

func TestRequireRole_AllowsListedRoles(t *testing.T) {
	handler := RequireRole(nil, "admin", "editor")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/gallery", nil)
	req = req.WithContext(WithUser(req.Context(), uuid.NewString(), "e@example.com", "editor"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_RejectsOtherRoles(t *testing.T) {
	handler := RequireRole(nil, "admin")(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/admin/settings", nil)
	req = req.WithContext(WithUser(req.Context(), uuid.NewString(), "e@example.com", "editor"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func assertUnauthorized(t *testing.T, rec *httptest.ResponseRecorder, wantMsg string) {
	t.Helper()
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d: %s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if payload.Success {
		t.Fatalf("expected success false")
	}
	if payload.Error != wantMsg {
		t.Fatalf("expected %q, got %q", wantMsg, payload.Error)
	}
}

func flipChar(c byte) string {
	if c == 'a' {
		return "b"
	}
	return "a"
}

type stubResolver struct {
	user *models.User
}

func (s *stubResolver) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if s.user == nil || s.user.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *s.user
	return &clone, nil
}
