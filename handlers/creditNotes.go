package handlers

import (
	"net/http"

	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterCreditNoteRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/creditNotes")
	grp.POST("", middlewares.RequirePermission(permissions.ResourceCreditNotes, permissions.ActionCreate), CreateHandler[models.CreditNote, *models.CreditNote](api, "creditNotes"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourceCreditNotes, permissions.ActionRead), ListHandler[models.CreditNote](api, "creditNotes"))
	grp.GET("/:userEmail/invoice/:invoiceId", middlewares.RequirePermission(permissions.ResourceCreditNotes, permissions.ActionRead), creditNotesByInvoiceHandler(api))
	grp.GET("/:userEmail/status/:status", middlewares.RequirePermission(permissions.ResourceCreditNotes, permissions.ActionRead), creditNotesByStatusHandler(api))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourceCreditNotes, permissions.ActionUpdate), UpdateHandler[models.CreditNote](api, "creditNotes"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourceCreditNotes, permissions.ActionDelete), DeleteHandler[models.CreditNote](api, "creditNotes"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourceCreditNotes, permissions.ActionUpdate), creditNoteSyncHandler(api))
}

func creditNotesByInvoiceHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.Param("userEmail")
		invoiceId := c.Param("invoiceId")

		var notes []models.CreditNote
		err := api.Store.DB().WithContext(c.Request.Context()).
			Where("user_email = ? AND invoice_id = ? AND deleted = 0", userEmail, invoiceId).
			Order("created_at, id").
			Find(&notes).Error
		if err != nil {
			api.internalError(c, "creditNotes", "ByInvoice", invoiceId, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": notes})
	}
}

func creditNotesByStatusHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.Param("userEmail")
		status := c.Param("status")

		var notes []models.CreditNote
		err := api.Store.DB().WithContext(c.Request.Context()).
			Where("user_email = ? AND status = ? AND deleted = 0", userEmail, status).
			Order("created_at, id").
			Find(&notes).Error
		if err != nil {
			api.internalError(c, "creditNotes", "ByStatus", status, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": notes})
	}
}

func creditNoteSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail   string              `json:"userEmail" binding:"required,email"`
			CreditNotes []models.CreditNote `json:"creditNotes"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		fresh, failedIds, ok := syncCollection[models.CreditNote, *models.CreditNote](api, c, "creditNotes", req.UserEmail, req.CreditNotes)
		if !ok {
			return
		}
		respondSync(c, gin.H{"data": fresh}, failedIds)
	}
}
