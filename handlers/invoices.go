package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterInvoiceRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/invoices")
	grp.POST("", middlewares.RequirePermission(permissions.ResourceInvoices, permissions.ActionCreate), CreateHandler[models.Invoice, *models.Invoice](api, "invoices"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourceInvoices, permissions.ActionRead), ListHandler[models.Invoice](api, "invoices"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourceInvoices, permissions.ActionUpdate), UpdateHandler[models.Invoice](api, "invoices"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourceInvoices, permissions.ActionDelete), DeleteHandler[models.Invoice](api, "invoices"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourceInvoices, permissions.ActionUpdate), invoiceSyncHandler(api))
	grp.GET("/:userEmail/export", middlewares.RequirePermission(permissions.ResourceInvoices, permissions.ActionExport), exportInvoicesHandler(api))
}

// invoiceSyncHandler reconciles invoices and their items as two
// independent flat batches. There is no cross-collection transaction: a
// failure in one batch leaves the other fully applied, and the client
// repairs any gap on its next push.
func invoiceSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail    string               `json:"userEmail" binding:"required,email"`
			Invoices     []models.Invoice     `json:"invoices"`
			InvoiceItems []models.InvoiceItem `json:"invoiceItems"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		freshInvoices, failedInvoices, ok := syncCollection[models.Invoice, *models.Invoice](api, c, "invoices", req.UserEmail, req.Invoices)
		if !ok {
			return
		}
		freshItems, failedItems, ok := syncCollection[models.InvoiceItem, *models.InvoiceItem](api, c, "invoices", req.UserEmail, req.InvoiceItems)
		if !ok {
			return
		}

		respondSync(c, gin.H{
			"invoices":     freshInvoices,
			"invoiceItems": freshItems,
		}, append(failedInvoices, failedItems...))
	}
}
