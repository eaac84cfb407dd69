package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterInventoryRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/inventory")
	grp.POST("", middlewares.RequirePermission(permissions.ResourceInventory, permissions.ActionCreate), CreateHandler[models.Inventory, *models.Inventory](api, "inventory"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourceInventory, permissions.ActionRead), ListHandler[models.Inventory](api, "inventory"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourceInventory, permissions.ActionUpdate), UpdateHandler[models.Inventory](api, "inventory"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourceInventory, permissions.ActionDelete), DeleteHandler[models.Inventory](api, "inventory"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourceInventory, permissions.ActionUpdate), inventorySyncHandler(api))
}

func inventorySyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail string             `json:"userEmail" binding:"required,email"`
			Inventory []models.Inventory `json:"inventory"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		fresh, failedIds, ok := syncCollection[models.Inventory, *models.Inventory](api, c, "inventory", req.UserEmail, req.Inventory)
		if !ok {
			return
		}
		respondSync(c, gin.H{"inventory": fresh}, failedIds)
	}
}
