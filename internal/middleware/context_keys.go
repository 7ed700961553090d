package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vyaparbooks/billing_app/internal/apperrors"
)

const (
	organizationIDHeader = "x-organization-id"
	userIDHeader         = "x-user-id"

	organizationIDCtxKey = contextKey("organizationID")
	actorCtxKey          = contextKey("actor")

	// defaultActor is recorded in audit fields when no user header is present.
	defaultActor = "system"
)

// OrganizationScopeMiddleware reads the tenant identifier from the
// x-organization-id header and stores it in the request context. Requests
// without the header are rejected, every API route operates inside a tenant
// scope.
func OrganizationScopeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID := c.GetHeader(organizationIDHeader)
		if orgID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"error": "missing " + organizationIDHeader + " header",
			})
			return
		}

		actor := c.GetHeader(userIDHeader)
		if actor == "" {
			actor = defaultActor
		}

		ctx := context.WithValue(c.Request.Context(), organizationIDCtxKey, orgID)
		ctx = context.WithValue(ctx, actorCtxKey, actor)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetOrganizationIDFromContext returns the tenant identifier stored by
// OrganizationScopeMiddleware.
func GetOrganizationIDFromContext(ctx context.Context) (string, error) {
	orgID, ok := ctx.Value(organizationIDCtxKey).(string)
	if !ok || orgID == "" {
		return "", apperrors.NewAppError(http.StatusForbidden, "organization scope missing from request context", apperrors.ErrForbidden)
	}
	return orgID, nil
}

// GetActorFromContext returns the acting user recorded for audit fields.
func GetActorFromContext(ctx context.Context) string {
	actor, ok := ctx.Value(actorCtxKey).(string)
	if !ok || actor == "" {
		return defaultActor
	}
	return actor
}
