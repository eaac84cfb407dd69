package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterDeliveryNoteRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/deliveryNotes")
	grp.POST("", middlewares.RequirePermission(permissions.ResourceDeliveryNotes, permissions.ActionCreate), CreateHandler[models.DeliveryNote, *models.DeliveryNote](api, "deliveryNotes"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourceDeliveryNotes, permissions.ActionRead), ListHandler[models.DeliveryNote](api, "deliveryNotes"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourceDeliveryNotes, permissions.ActionUpdate), UpdateHandler[models.DeliveryNote](api, "deliveryNotes"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourceDeliveryNotes, permissions.ActionDelete), DeleteHandler[models.DeliveryNote](api, "deliveryNotes"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourceDeliveryNotes, permissions.ActionUpdate), deliveryNoteSyncHandler(api))
}

func deliveryNoteSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail         string                    `json:"userEmail" binding:"required,email"`
			DeliveryNotes     []models.DeliveryNote     `json:"deliveryNotes"`
			DeliveryNoteItems []models.DeliveryNoteItem `json:"deliveryNoteItems"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		freshNotes, failedNotes, ok := syncCollection[models.DeliveryNote, *models.DeliveryNote](api, c, "deliveryNotes", req.UserEmail, req.DeliveryNotes)
		if !ok {
			return
		}
		freshItems, failedItems, ok := syncCollection[models.DeliveryNoteItem, *models.DeliveryNoteItem](api, c, "deliveryNotes", req.UserEmail, req.DeliveryNoteItems)
		if !ok {
			return
		}

		respondSync(c, gin.H{
			"deliveryNotes":     freshNotes,
			"deliveryNoteItems": freshItems,
		}, append(failedNotes, failedItems...))
	}
}
