package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterProductRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/products")
	grp.POST("", middlewares.RequirePermission(permissions.ResourceProducts, permissions.ActionCreate), CreateHandler[models.Product, *models.Product](api, "products"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourceProducts, permissions.ActionRead), ListHandler[models.Product](api, "products"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourceProducts, permissions.ActionUpdate), UpdateHandler[models.Product](api, "products"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourceProducts, permissions.ActionDelete), DeleteHandler[models.Product](api, "products"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourceProducts, permissions.ActionUpdate), productSyncHandler(api))
	grp.GET("/:userEmail/export", middlewares.RequirePermission(permissions.ResourceProducts, permissions.ActionExport), exportProductsHandler(api))
}

func productSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail string           `json:"userEmail" binding:"required,email"`
			Products  []models.Product `json:"products"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		fresh, failedIds, ok := syncCollection[models.Product, *models.Product](api, c, "products", req.UserEmail, req.Products)
		if !ok {
			return
		}
		respondSync(c, gin.H{"data": fresh}, failedIds)
	}
}
