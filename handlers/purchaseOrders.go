package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterPurchaseOrderRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/purchaseOrders")
	grp.POST("", middlewares.RequirePermission(permissions.ResourcePurchaseOrders, permissions.ActionCreate), CreateHandler[models.PurchaseOrder, *models.PurchaseOrder](api, "purchaseOrders"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourcePurchaseOrders, permissions.ActionRead), ListHandler[models.PurchaseOrder](api, "purchaseOrders"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourcePurchaseOrders, permissions.ActionUpdate), UpdateHandler[models.PurchaseOrder](api, "purchaseOrders"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourcePurchaseOrders, permissions.ActionDelete), DeleteHandler[models.PurchaseOrder](api, "purchaseOrders"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourcePurchaseOrders, permissions.ActionUpdate), purchaseOrderSyncHandler(api))
}

func purchaseOrderSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail             string                        `json:"userEmail" binding:"required,email"`
			PurchaseOrders        []models.PurchaseOrder        `json:"purchaseOrders"`
			PurchaseOrderItems    []models.PurchaseOrderItem    `json:"purchaseOrderItems"`
			PurchaseOrderPayments []models.PurchaseOrderPayment `json:"purchaseOrderPayments"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		freshOrders, failedOrders, ok := syncCollection[models.PurchaseOrder, *models.PurchaseOrder](api, c, "purchaseOrders", req.UserEmail, req.PurchaseOrders)
		if !ok {
			return
		}
		freshItems, failedItems, ok := syncCollection[models.PurchaseOrderItem, *models.PurchaseOrderItem](api, c, "purchaseOrders", req.UserEmail, req.PurchaseOrderItems)
		if !ok {
			return
		}
		freshPayments, failedPayments, ok := syncCollection[models.PurchaseOrderPayment, *models.PurchaseOrderPayment](api, c, "purchaseOrders", req.UserEmail, req.PurchaseOrderPayments)
		if !ok {
			return
		}

		failedIds := append(append(failedOrders, failedItems...), failedPayments...)
		respondSync(c, gin.H{
			"purchaseOrders":        freshOrders,
			"purchaseOrderItems":    freshItems,
			"purchaseOrderPayments": freshPayments,
		}, failedIds)
	}
}
