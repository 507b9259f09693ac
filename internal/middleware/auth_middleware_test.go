package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-module/internal/domain"
	"hr-module/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func validClaims(uid string) jwt.MapClaims {
	return jwt.MapClaims{
		"exp":   time.Now().Add(time.Hour).Unix(),
		"email": "user@example.com",
		"uid":   uid,
		"roles": []string{domain.RoleEmployee},
		"jti":   uuid.New().String(),
	}
}

func authRouter(t *testing.T, extra ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.AuthMiddleware()}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		identity := middleware.IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"userId": identity.UserID, "roles": identity.Roles})
	})
	router.GET("/protected", handlers...)
	return router
}

func TestAuthMiddleware(t *testing.T) {
	uid := uuid.New().String()

	t.Run("bearer token resolves into an identity", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		router := authRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", validClaims(uid)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), uid)
	})

	t.Run("cookie token is accepted when no header is set", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		router := authRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: signToken(t, "test-secret", validClaims(uid))})
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is unauthorized", func(t *testing.T) {
		router := authRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		router := authRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", validClaims(uid)))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		router := authRouter(t)

		claims := validClaims(uid)
		claims["exp"] = time.Now().Add(-time.Minute).Unix()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", claims))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token without a uid claim is rejected", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		router := authRouter(t)

		claims := validClaims(uid)
		delete(claims, "uid")

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", claims))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	uid := uuid.New().String()

	protectedWith := func(t *testing.T, tokenRoles []string, allowed ...string) *httptest.ResponseRecorder {
		t.Helper()
		t.Setenv("JWT_SECRET", "test-secret")
		router := authRouter(t, middleware.RequireRole(allowed...))

		claims := validClaims(uid)
		claims["roles"] = tokenRoles

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "test-secret", claims))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("any overlapping role passes", func(t *testing.T) {
		rec := protectedWith(t, []string{domain.RoleEmployee, domain.RoleHRAdmin}, domain.RoleHRAdmin, domain.RoleSuperAdmin)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("no overlap is forbidden", func(t *testing.T) {
		rec := protectedWith(t, []string{domain.RoleEmployee}, domain.RoleHRAdmin, domain.RoleSuperAdmin)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("super admin passes only where listed", func(t *testing.T) {
		rec := protectedWith(t, []string{domain.RoleSuperAdmin}, domain.RoleHRAdmin)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		rec = protectedWith(t, []string{domain.RoleSuperAdmin}, domain.RoleHRAdmin, domain.RoleSuperAdmin)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
