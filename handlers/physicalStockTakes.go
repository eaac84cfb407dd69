package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterPhysicalStockTakeRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/physicalStockTakes")
	grp.POST("", middlewares.RequirePermission(permissions.ResourcePhysicalStockTake, permissions.ActionCreate), CreateHandler[models.PhysicalStockTake, *models.PhysicalStockTake](api, "physicalStockTakes"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourcePhysicalStockTake, permissions.ActionRead), ListHandler[models.PhysicalStockTake](api, "physicalStockTakes"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourcePhysicalStockTake, permissions.ActionUpdate), UpdateHandler[models.PhysicalStockTake](api, "physicalStockTakes"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourcePhysicalStockTake, permissions.ActionDelete), DeleteHandler[models.PhysicalStockTake](api, "physicalStockTakes"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourcePhysicalStockTake, permissions.ActionUpdate), physicalStockTakeSyncHandler(api))
}

func physicalStockTakeSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail          string                     `json:"userEmail" binding:"required,email"`
			PhysicalStockTakes []models.PhysicalStockTake `json:"physicalStockTakes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		fresh, failedIds, ok := syncCollection[models.PhysicalStockTake, *models.PhysicalStockTake](api, c, "physicalStockTakes", req.UserEmail, req.PhysicalStockTakes)
		if !ok {
			return
		}
		respondSync(c, gin.H{"physicalStockTakes": fresh}, failedIds)
	}
}
