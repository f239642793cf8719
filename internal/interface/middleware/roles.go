package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cashflowhq/cash-flow-api/internal/domain/entity"
	"github.com/cashflowhq/cash-flow-api/pkg/apperrors"
	"github.com/cashflowhq/cash-flow-api/pkg/response"
)

// Authorize is the access-control gate decision. An empty requirement allows
// unconditionally; otherwise the caller needs a role, ADMIN satisfies any
// requirement that includes ADMIN, and anyone else must be a member of the
// required set. Denials are never downgraded to empty results.
func Authorize(role entity.Role, required []entity.Role) error {
	if len(required) == 0 {
		return nil
	}
	if role == "" {
		return apperrors.Forbidden("no role on request")
	}
	for _, r := range required {
		if r == entity.RoleAdmin && role == entity.RoleAdmin {
			return nil
		}
	}
	for _, r := range required {
		if r == role {
			return nil
		}
	}
	return apperrors.Forbidden("insufficient role")
}

// RequireRoles declares the operation's required role set. The requirement
// is static per route, attached at registration time.
func RequireRoles(required ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := entity.Role(c.GetString(CtxUserRoleKey))
		if err := Authorize(role, required); err != nil {
			resp := response.Error[any](c, apperrors.StatusOf(err), "access denied", err.Error())
			c.AbortWithStatusJSON(resp.Status, resp)
			return
		}
		c.Next()
	}
}
