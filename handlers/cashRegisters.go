package handlers

import (
	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterCashRegisterRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/cashRegisters")
	grp.POST("", middlewares.RequirePermission(permissions.ResourceCashRegisters, permissions.ActionCreate), CreateHandler[models.CashRegister, *models.CashRegister](api, "cashRegisters"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourceCashRegisters, permissions.ActionRead), ListHandler[models.CashRegister](api, "cashRegisters"))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourceCashRegisters, permissions.ActionUpdate), UpdateHandler[models.CashRegister](api, "cashRegisters"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourceCashRegisters, permissions.ActionDelete), DeleteHandler[models.CashRegister](api, "cashRegisters"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourceCashRegisters, permissions.ActionUpdate), cashRegisterSyncHandler(api))
}

func cashRegisterSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail     string                `json:"userEmail" binding:"required,email"`
			CashRegisters []models.CashRegister `json:"cashRegisters"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		fresh, failedIds, ok := syncCollection[models.CashRegister, *models.CashRegister](api, c, "cashRegisters", req.UserEmail, req.CashRegisters)
		if !ok {
			return
		}
		respondSync(c, gin.H{"cashRegisters": fresh}, failedIds)
	}
}
