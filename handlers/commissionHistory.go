package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterCommissionHistoryRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/commissionHistory")
	grp.POST("", middlewares.RequirePermission(permissions.ResourceCommissionHistory, permissions.ActionCreate), CreateHandler[models.CommissionHistory, *models.CommissionHistory](api, "commissionHistory"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourceCommissionHistory, permissions.ActionRead), ListHandler[models.CommissionHistory](api, "commissionHistory"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourceCommissionHistory, permissions.ActionUpdate), UpdateHandler[models.CommissionHistory](api, "commissionHistory"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourceCommissionHistory, permissions.ActionDelete), DeleteHandler[models.CommissionHistory](api, "commissionHistory"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourceCommissionHistory, permissions.ActionUpdate), commissionHistorySyncHandler(api))
}

func commissionHistorySyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail         string                     `json:"userEmail" binding:"required,email"`
			CommissionHistory []models.CommissionHistory `json:"commissionHistory"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		fresh, failedIds, ok := syncCollection[models.CommissionHistory, *models.CommissionHistory](api, c, "commissionHistory", req.UserEmail, req.CommissionHistory)
		if !ok {
			return
		}
		respondSync(c, gin.H{"data": fresh}, failedIds)
	}
}
