package middleware

import (
	"context"
	"errors"
	"net/http"

	"orthocare-api/pkg/jwt"
	"orthocare-api/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const (
	PrincipalKey contextKey = "principal"
)

var ErrMissingSession = errors.New("missing session cookie")

// Principal is the decoded session payload attached to authenticated requests.
type Principal struct {
	AdminID   uuid.UUID `json:"sub"`
	Email     string    `json:"email"`
	IssuedAt  int64     `json:"iat"`
	ExpiresAt int64     `json:"exp"`
}

// Authenticator resolves the principal of a request or fails.
type Authenticator func(r *http.Request) (*Principal, error)

// CookieAuthenticator reads the session token from the named cookie and
// verifies its signature and expiry.
func CookieAuthenticator(jwtService *jwt.JWTService, cookieName string) Authenticator {
	return func(r *http.Request) (*Principal, error) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			return nil, ErrMissingSession
		}

		claims, err := jwtService.ValidateToken(cookie.Value)
		if err != nil {
			return nil, err
		}

		adminID, err := claims.AdminID()
		if err != nil {
			return nil, err
		}

		principal := &Principal{
			AdminID: adminID,
			Email:   claims.Email,
		}
		if claims.IssuedAt != nil {
			principal.IssuedAt = claims.IssuedAt.Unix()
		}
		if claims.ExpiresAt != nil {
			principal.ExpiresAt = claims.ExpiresAt.Unix()
		}
		return principal, nil
	}
}

type AuthMiddleware struct {
	authenticate Authenticator
}

func NewAuthMiddleware(authenticate Authenticator) *AuthMiddleware {
	return &AuthMiddleware{
		authenticate: authenticate,
	}
}

func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := m.authenticate(r)
		if err != nil {
			if errors.Is(err, ErrMissingSession) {
				response.Unauthorized(w, "Authentication required")
				return
			}
			response.Unauthorized(w, "Invalid or expired session")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

func WithPrincipal(ctx context.Context, principal *Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, principal)
}

// GetPrincipalFromContext extracts the authenticated principal from context
func GetPrincipalFromContext(ctx context.Context) (*Principal, bool) {
	principal, ok := ctx.Value(PrincipalKey).(*Principal)
	return principal, ok && principal != nil
}

// GetAdminIDFromContext extracts the authenticated admin ID from context
func GetAdminIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	principal, ok := GetPrincipalFromContext(ctx)
	if !ok {
		return uuid.Nil, false
	}
	return principal.AdminID, true
}
