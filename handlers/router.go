package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the whole REST surface under /api.
func RegisterRoutes(r gin.IRouter, api *API) {
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "invoice backend is running"})
	})

	grp := r.Group("/api")

	RegisterAuthRoutes(grp, api)
	RegisterSubUserRoutes(grp, api)

	RegisterAssociateRoutes(grp, api)
	RegisterProductRoutes(grp, api)
	RegisterPaymentRoutes(grp, api)
	RegisterInvoiceRoutes(grp, api)
	RegisterPurchaseRoutes(grp, api)
	RegisterPurchaseOrderRoutes(grp, api)
	RegisterExpenseRoutes(grp, api)
	RegisterCreditNoteRoutes(grp, api)
	RegisterDeliveryNoteRoutes(grp, api)
	RegisterWarehouseRoutes(grp, api)
	RegisterInventoryRoutes(grp, api)
	RegisterPhysicalStockTakeRoutes(grp, api)
	RegisterStockTransferRoutes(grp, api)
	RegisterCashRegisterRoutes(grp, api)
	RegisterCommissionAgentRoutes(grp, api)
	RegisterCommissionHistoryRoutes(grp, api)
}
