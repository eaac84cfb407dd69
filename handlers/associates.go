package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterAssociateRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/associates")
	grp.POST("", middlewares.RequirePermission(permissions.ResourceAssociates, permissions.ActionCreate), CreateHandler[models.Associate, *models.Associate](api, "associates"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourceAssociates, permissions.ActionRead), ListHandler[models.Associate](api, "associates"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourceAssociates, permissions.ActionUpdate), UpdateHandler[models.Associate](api, "associates"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourceAssociates, permissions.ActionDelete), DeleteHandler[models.Associate](api, "associates"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourceAssociates, permissions.ActionUpdate), associateSyncHandler(api))
}

func associateSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail  string             `json:"userEmail" binding:"required,email"`
			Associates []models.Associate `json:"associates"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		fresh, failedIds, ok := syncCollection[models.Associate, *models.Associate](api, c, "associates", req.UserEmail, req.Associates)
		if !ok {
			return
		}
		respondSync(c, gin.H{"data": fresh}, failedIds)
	}
}
