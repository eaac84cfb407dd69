package middlewares

import (
	"net/http"

	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

// RequirePermission gates one resource/action cell. Owners bypass the
// matrix entirely, as do delegated accounts with the admin role; every
// other delegated account needs the cell to be exactly true.
// Unauthenticated requests pass through untouched.
func RequirePermission(resource permissions.Resource, action permissions.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c.Request.Context())
		if actor == nil || actor.IsOwner() {
			c.Next()
			return
		}
		if actor.Role == permissions.RoleAdmin {
			c.Next()
			return
		}
		if !actor.Permissions.Allows(resource, action) {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "You do not have permission to perform this action",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireOwner guards routes no delegated account may reach regardless
// of its permission set, such as sub-user management.
func RequireOwner() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := ActorFromContext(c.Request.Context())
		if actor == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
			c.Abort()
			return
		}
		if !actor.IsOwner() {
			c.JSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Only the account owner can perform this action",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAuth rejects anonymous requests without checking any matrix
// cell. Used by profile and logout style routes.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ActorFromContext(c.Request.Context()) == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}
