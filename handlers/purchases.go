package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterPurchaseRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/purchases")
	grp.POST("", middlewares.RequirePermission(permissions.ResourcePurchases, permissions.ActionCreate), CreateHandler[models.Purchase, *models.Purchase](api, "purchases"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourcePurchases, permissions.ActionRead), ListHandler[models.Purchase](api, "purchases"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourcePurchases, permissions.ActionUpdate), UpdateHandler[models.Purchase](api, "purchases"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourcePurchases, permissions.ActionDelete), DeleteHandler[models.Purchase](api, "purchases"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourcePurchases, permissions.ActionUpdate), purchaseSyncHandler(api))
}

func purchaseSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail        string                   `json:"userEmail" binding:"required,email"`
			Purchases        []models.Purchase        `json:"purchases"`
			PurchaseItems    []models.PurchaseItem    `json:"purchaseItems"`
			PurchasePayments []models.PurchasePayment `json:"purchasePayments"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		freshPurchases, failedPurchases, ok := syncCollection[models.Purchase, *models.Purchase](api, c, "purchases", req.UserEmail, req.Purchases)
		if !ok {
			return
		}
		freshItems, failedItems, ok := syncCollection[models.PurchaseItem, *models.PurchaseItem](api, c, "purchases", req.UserEmail, req.PurchaseItems)
		if !ok {
			return
		}
		freshPayments, failedPayments, ok := syncCollection[models.PurchasePayment, *models.PurchasePayment](api, c, "purchases", req.UserEmail, req.PurchasePayments)
		if !ok {
			return
		}

		failedIds := append(append(failedPurchases, failedItems...), failedPayments...)
		respondSync(c, gin.H{
			"purchases":        freshPurchases,
			"purchaseItems":    freshItems,
			"purchasePayments": freshPayments,
		}, failedIds)
	}
}
