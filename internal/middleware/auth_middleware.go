package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	autherrors "hr-module/internal/auth/errors"
	"hr-module/internal/domain"
	"hr-module/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Context keys set by AuthMiddleware for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
	CtxRoles  = "roles"
)

// AuthMiddleware resolves the bearer token into an identity. The role
// list is taken from the token claims as issued; it is not re-fetched
// from the store.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if err != nil && strings.Contains(err.Error(), "expired") {
				errObj = autherrors.ErrTokenExpired
			}
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, autherrors.ErrMissingClaims.HTTPStatus, autherrors.ErrMissingClaims.Code, autherrors.ErrMissingClaims.Message, nil)
			c.Abort()
			return
		}

		uid, ok := claims["uid"].(string)
		if !ok || uid == "" {
			response.Error(c, autherrors.ErrMissingClaims.HTTPStatus, autherrors.ErrMissingClaims.Code, "User ID not found in token", nil)
			c.Abort()
			return
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			response.Error(c, autherrors.ErrMissingClaims.HTTPStatus, autherrors.ErrMissingClaims.Code, "Email not found in token", nil)
			c.Abort()
			return
		}

		roles := rolesFromClaim(claims["roles"])

		c.Set(CtxUserID, uid)
		c.Set(CtxEmail, email)
		c.Set(CtxRoles, roles)

		c.Next()
	}
}

func rolesFromClaim(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	roles := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok {
			roles = append(roles, s)
		}
	}
	return roles
}

// IdentityFrom rebuilds the caller's identity from the context keys set
// by AuthMiddleware.
func IdentityFrom(c *gin.Context) domain.Identity {
	roles, _ := c.Get(CtxRoles)
	roleList, _ := roles.([]string)
	return domain.Identity{
		UserID: c.GetString(CtxUserID),
		Email:  c.GetString(CtxEmail),
		Roles:  roleList,
	}
}

// RequireRole gates the request on a flat role-set intersection. Each
// route enumerates its own allowed set; SuperAdmin must be listed
// explicitly wherever it should pass.
func RequireRole(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFrom(c)
		if !identity.HasAnyRole(allowedRoles...) {
			response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
