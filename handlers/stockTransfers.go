package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterStockTransferRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/stockTransfers")
	grp.POST("", middlewares.RequirePermission(permissions.ResourceStockTransfers, permissions.ActionCreate), CreateHandler[models.StockTransfer, *models.StockTransfer](api, "stockTransfers"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourceStockTransfers, permissions.ActionRead), ListHandler[models.StockTransfer](api, "stockTransfers"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourceStockTransfers, permissions.ActionUpdate), UpdateHandler[models.StockTransfer](api, "stockTransfers"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourceStockTransfers, permissions.ActionDelete), DeleteHandler[models.StockTransfer](api, "stockTransfers"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourceStockTransfers, permissions.ActionUpdate), stockTransferSyncHandler(api))
}

func stockTransferSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail      string                 `json:"userEmail" binding:"required,email"`
			StockTransfers []models.StockTransfer `json:"stockTransfers"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		fresh, failedIds, ok := syncCollection[models.StockTransfer, *models.StockTransfer](api, c, "stockTransfers", req.UserEmail, req.StockTransfers)
		if !ok {
			return
		}
		respondSync(c, gin.H{"stockTransfers": fresh}, failedIds)
	}
}
