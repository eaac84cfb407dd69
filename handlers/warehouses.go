package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterWarehouseRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/warehouses")
	grp.POST("", middlewares.RequirePermission(permissions.ResourceWarehouses, permissions.ActionCreate), CreateHandler[models.Warehouse, *models.Warehouse](api, "warehouses"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourceWarehouses, permissions.ActionRead), ListHandler[models.Warehouse](api, "warehouses"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourceWarehouses, permissions.ActionUpdate), UpdateHandler[models.Warehouse](api, "warehouses"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourceWarehouses, permissions.ActionDelete), DeleteHandler[models.Warehouse](api, "warehouses"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourceWarehouses, permissions.ActionUpdate), warehouseSyncHandler(api))
}

func warehouseSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail      string                 `json:"userEmail" binding:"required,email"`
			Warehouses     []models.Warehouse     `json:"warehouses"`
			WarehouseItems []models.WarehouseItem `json:"warehouseItems"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		freshWarehouses, failedWarehouses, ok := syncCollection[models.Warehouse, *models.Warehouse](api, c, "warehouses", req.UserEmail, req.Warehouses)
		if !ok {
			return
		}
		freshItems, failedItems, ok := syncCollection[models.WarehouseItem, *models.WarehouseItem](api, c, "warehouses", req.UserEmail, req.WarehouseItems)
		if !ok {
			return
		}

		respondSync(c, gin.H{
			"warehouses":     freshWarehouses,
			"warehouseItems": freshItems,
		}, append(failedWarehouses, failedItems...))
	}
}
