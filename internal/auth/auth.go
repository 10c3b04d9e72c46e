// Package auth extracts the caller's identity from a bearer token issued by
// the external identity provider and gates routes by administrative role.
package auth

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/batchrecords/rqs/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// principalKey is the context key the middleware stores the caller under.
const principalKey = "rqs.principal"

// ErrNoPrincipal indicates that a handler ran without the authentication
// middleware having stored a caller identity.
var ErrNoPrincipal = errors.New("no authenticated caller in the request context")

// Principal describes the authenticated caller of a request.
type Principal struct {
	ID       string
	Username string
	Email    string
	Name     string
	Role     model.Role
}

// Claims is the token claim set issued by the identity provider. The subject
// carries the user identifier.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Middleware parses the bearer token on each request and stores the caller's
// Principal in the request context. Requests without a valid token are
// rejected before any handler runs.
func Middleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token := strings.TrimPrefix(header, "Bearer ")
			if header == "" || token == header {
				return model.Error(ctx, "missing or malformed bearer token", http.StatusUnauthorized)
			}

			claims := &Claims{}
			parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return secret, nil
			})
			if err != nil || !parsed.Valid {
				return model.Error(ctx, "invalid bearer token", http.StatusUnauthorized)
			}
			if claims.Subject == "" {
				return model.Error(ctx, "bearer token has no subject", http.StatusUnauthorized)
			}

			role, err := model.ParseRole(claims.Role)
			if err != nil {
				return model.Error(ctx, "the token role is not recognized", http.StatusForbidden)
			}

			SetPrincipal(ctx, &Principal{
				ID:       claims.Subject,
				Username: claims.Username,
				Email:    claims.Email,
				Name:     claims.Name,
				Role:     role,
			})
			return next(ctx)
		}
	}
}

// RequireRoles rejects callers whose role is not in the given set. It must
// run after Middleware.
func RequireRoles(roles ...model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			principal, err := GetPrincipal(ctx)
			if err != nil {
				return model.Error(ctx, "missing or malformed bearer token", http.StatusUnauthorized)
			}
			for _, role := range roles {
				if principal.Role == role {
					return next(ctx)
				}
			}
			return model.Error(ctx, "the caller's role may not perform this operation", http.StatusForbidden)
		}
	}
}

// SetPrincipal stores the caller identity in the request context.
func SetPrincipal(ctx echo.Context, principal *Principal) {
	ctx.Set(principalKey, principal)
}

// GetPrincipal returns the caller identity stored by Middleware.
func GetPrincipal(ctx echo.Context) (*Principal, error) {
	principal, ok := ctx.Get(principalKey).(*Principal)
	if !ok || principal == nil {
		return nil, ErrNoPrincipal
	}
	return principal, nil
}
