package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterPaymentRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/payments")
	grp.POST("", middlewares.RequirePermission(permissions.ResourcePayments, permissions.ActionCreate), CreateHandler[models.Payment, *models.Payment](api, "payments"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourcePayments, permissions.ActionRead), ListHandler[models.Payment](api, "payments"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourcePayments, permissions.ActionUpdate), UpdateHandler[models.Payment](api, "payments"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourcePayments, permissions.ActionDelete), DeleteHandler[models.Payment](api, "payments"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourcePayments, permissions.ActionUpdate), paymentSyncHandler(api))
}

func paymentSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail string           `json:"userEmail" binding:"required,email"`
			Payments  []models.Payment `json:"payments"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		fresh, failedIds, ok := syncCollection[models.Payment, *models.Payment](api, c, "payments", req.UserEmail, req.Payments)
		if !ok {
			return
		}
		respondSync(c, gin.H{"data": fresh}, failedIds)
	}
}
