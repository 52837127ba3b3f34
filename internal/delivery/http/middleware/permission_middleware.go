package middleware

import (
	"context"
	"net/http"

	"orthocare-api/internal/domain/entity"
	"orthocare-api/pkg/response"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// PermissionLookup returns the permission names granted to an admin.
type PermissionLookup func(ctx context.Context, adminID uuid.UUID) ([]string, error)

// RequirePermission lets the request through when the authenticated admin
// holds any of the named permissions. entity.PermissionFullAccess satisfies
// every check.
// Must run after AuthMiddleware.
func RequirePermission(lookup PermissionLookup, log *logrus.Logger, required ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID, ok := GetAdminIDFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Authentication required")
				return
			}

			granted, err := lookup(r.Context(), adminID)
			if err != nil {
				log.Warnf("Failed to load permissions: %+v", err)
				response.InternalServerError(w, "Failed to check permissions")
				return
			}

			if !hasAny(granted, required) {
				response.Error(w, http.StatusForbidden, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func hasAny(granted, required []string) bool {
	for _, g := range granted {
		if g == entity.PermissionFullAccess {
			return true
		}
		for _, req := range required {
			if g == req {
				return true
			}
		}
	}
	return false
}
