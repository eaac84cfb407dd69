package handlers

import (
	"errors"
	"net/http"

	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"bitbucket.org/mmdatafocus/invoice_backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Sub-user administration is owner-only regardless of any subUsers
// permission a delegated account may carry.
func RegisterSubUserRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/sub-users", middlewares.RequireOwner())
	grp.POST("", createSubUserHandler(api))
	grp.GET("", listSubUsersHandler(api))
	grp.GET("/:id", getSubUserHandler(api))
	grp.PUT("/:id", updateSubUserHandler(api))
	grp.PUT("/:id/password", changeSubUserPasswordHandler(api))
	grp.DELETE("/:id", deleteSubUserHandler(api))

	// Own prefix: a static sibling of /sub-users/:id would not route.
	r.GET("/permissions/meta", middlewares.RequireOwner(), permissionMetaHandler())
}

// resolvePermissions maps a (role, overrides) pair onto the stored
// permission table. Custom roles carry their overrides verbatim; named
// roles start from the predefined table with cell-level overwrites.
func resolvePermissions(role string, overrides permissions.PermissionSet) (permissions.PermissionSet, error) {
	switch role {
	case permissions.RoleAdmin:
		return permissions.Full(), nil
	case permissions.RoleCustom:
		if len(overrides) == 0 {
			return nil, errors.New("custom role requires a permissions table")
		}
		return overrides.Clone(), nil
	default:
		return permissions.Merge(role, overrides), nil
	}
}

func createSubUserHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Email       string                     `json:"email" binding:"required,email"`
			Password    string                     `json:"password" binding:"required,min=8"`
			FullName    string                     `json:"fullName" binding:"required"`
			Role        string                     `json:"role" binding:"required"`
			Permissions map[string]map[string]bool `json:"permissions"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		if !permissions.IsKnownRole(req.Role) {
			badRequest(c, "unknown role")
			return
		}
		overrides, err := permissions.ValidateOverrides(req.Permissions)
		if err != nil {
			badRequest(c, err.Error())
			return
		}
		perms, err := resolvePermissions(req.Role, overrides)
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		actor := middlewares.ActorFromContext(c.Request.Context())
		db := api.Store.DB().WithContext(c.Request.Context())

		var count int64
		db.Model(&models.User{}).Where("email = ?", req.Email).Count(&count)
		if count == 0 {
			db.Model(&models.SubUser{}).Where("email = ?", req.Email).Count(&count)
		}
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
			return
		}

		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			api.internalError(c, "subUsers", "Create", req.Email, err)
			return
		}

		sub := models.SubUser{
			ParentUserEmail: actor.Email,
			Email:           req.Email,
			PasswordHash:    string(hash),
			FullName:        req.FullName,
			Role:            req.Role,
			Permissions:     perms,
			IsActive:        true,
		}
		if err := db.Create(&sub).Error; err != nil {
			if utils.IsDuplicateKey(err) {
				c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
				return
			}
			api.internalError(c, "subUsers", "Create", req.Email, err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": sub})
	}
}

func listSubUsersHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := middlewares.ActorFromContext(c.Request.Context())

		var subs []models.SubUser
		err := api.Store.DB().WithContext(c.Request.Context()).
			Where("parent_user_email = ?", actor.Email).
			Order("created_at").
			Find(&subs).Error
		if err != nil {
			api.internalError(c, "subUsers", "List", actor.Email, err)
			return
		}
		if subs == nil {
			subs = []models.SubUser{}
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": subs})
	}
}

// permissionMetaHandler publishes the closed vocabulary and the
// predefined role tables so clients can render permission editors
// without hardcoding them.
func permissionMetaHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"resources": permissions.Resources(),
			"actions":   permissions.Actions(),
			"roles":     permissions.RoleTables(),
		})
	}
}

// loadOwnedSubUser fetches a sub-user scoped to the calling owner.
// Someone else's sub-user id is indistinguishable from a missing one.
func loadOwnedSubUser(c *gin.Context, api *API) (*models.SubUser, bool) {
	actor := middlewares.ActorFromContext(c.Request.Context())

	var sub models.SubUser
	err := api.Store.DB().WithContext(c.Request.Context()).
		Where("id = ? AND parent_user_email = ?", c.Param("id"), actor.Email).
		First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c)
		return nil, false
	}
	if err != nil {
		api.internalError(c, "subUsers", "Load", c.Param("id"), err)
		return nil, false
	}
	return &sub, true
}

func getSubUserHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, ok := loadOwnedSubUser(c, api)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": sub})
	}
}

func updateSubUserHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			FullName    string                     `json:"fullName"`
			Role        string                     `json:"role"`
			IsActive    *bool                      `json:"isActive"`
			Permissions map[string]map[string]bool `json:"permissions"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		sub, ok := loadOwnedSubUser(c, api)
		if !ok {
			return
		}

		if req.Role != "" && !permissions.IsKnownRole(req.Role) {
			badRequest(c, "unknown role")
			return
		}
		overrides, err := permissions.ValidateOverrides(req.Permissions)
		if err != nil {
			badRequest(c, err.Error())
			return
		}

		if req.FullName != "" {
			sub.FullName = req.FullName
		}
		if req.IsActive != nil {
			sub.IsActive = *req.IsActive
		}

		role := sub.Role
		if req.Role != "" {
			role = req.Role
		}
		switch {
		case req.Role == "" && len(overrides) == 0:
			// name or active flag only; table untouched
		case role == permissions.RoleAdmin:
			sub.Permissions = permissions.Full()
		case role == permissions.RoleCustom && sub.Role == permissions.RoleCustom && req.Role == "":
			// cell-level edits on the existing custom table
			merged := sub.Permissions.Clone()
			for resource, actions := range overrides {
				if merged[resource] == nil {
					merged[resource] = permissions.ActionSet{}
				}
				for action, allowed := range actions {
					merged[resource][action] = allowed
				}
			}
			sub.Permissions = merged
		case role == permissions.RoleCustom:
			if len(overrides) == 0 {
				badRequest(c, "custom role requires a permissions table")
				return
			}
			sub.Permissions = overrides.Clone()
		default:
			sub.Permissions = permissions.Merge(role, overrides)
		}
		sub.Role = role

		if err := api.Store.DB().WithContext(c.Request.Context()).Save(sub).Error; err != nil {
			api.internalError(c, "subUsers", "Update", sub.ID, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": sub})
	}
}

func changeSubUserPasswordHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			NewPassword string `json:"newPassword" binding:"required,min=8"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		sub, ok := loadOwnedSubUser(c, api)
		if !ok {
			return
		}

		hash, err := utils.HashPassword(req.NewPassword)
		if err != nil {
			api.internalError(c, "subUsers", "ChangePassword", sub.ID, err)
			return
		}
		sub.PasswordHash = string(hash)
		if err := api.Store.DB().WithContext(c.Request.Context()).Save(sub).Error; err != nil {
			api.internalError(c, "subUsers", "ChangePassword", sub.ID, err)
			return
		}

		api.revokeSessions(c, sub.ID, models.UserTypeSub)

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated"})
	}
}

func deleteSubUserHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		sub, ok := loadOwnedSubUser(c, api)
		if !ok {
			return
		}

		api.revokeSessions(c, sub.ID, models.UserTypeSub)

		if err := api.Store.DB().WithContext(c.Request.Context()).Delete(sub).Error; err != nil {
			api.internalError(c, "subUsers", "Delete", sub.ID, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Sub-user deleted"})
	}
}
