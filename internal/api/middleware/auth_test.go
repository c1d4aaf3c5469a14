package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authModels "github.com/m04kA/CMG-AppointmentService/internal/service/auth/models"
)

type fakeVerifier struct {
	claims *authModels.Claims
	err    error
}

func (f *fakeVerifier) VerifyToken(string) (*authModels.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

func secretaryClaims() *authModels.Claims {
	return &authModels.Claims{Email: "secretaria@drgomez.com.ar", Role: "secretary"}
}

func TestAuth_ValidToken(t *testing.T) {
	mw := Auth(&fakeVerifier{claims: secretaryClaims()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	called := false
	mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "secretary", claims.Role)
	})).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	mw := Auth(&fakeVerifier{claims: secretaryClaims()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_InvalidToken(t *testing.T) {
	mw := Auth(&fakeVerifier{err: fmt.Errorf("expired")})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_NotBearerScheme(t *testing.T) {
	mw := Auth(&fakeVerifier{claims: secretaryClaims()})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()

	mw(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	auth := Auth(&fakeVerifier{claims: secretaryClaims()})
	gate := RequireRole("admin", "secretary")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	called := false
	auth(gate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_Forbidden(t *testing.T) {
	auth := Auth(&fakeVerifier{claims: secretaryClaims()})
	gate := RequireRole("admin")

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/123", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()

	auth(gate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be called")
	}))).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_WithoutAuth(t *testing.T) {
	gate := RequireRole("admin")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()

	gate(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("handler must not be called")
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
