package handlers

import (
	"net/http"

	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"bitbucket.org/mmdatafocus/invoice_backend/store"
	"github.com/gin-gonic/gin"
)

func RegisterCommissionAgentRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/commissionAgents")
	grp.POST("", middlewares.RequirePermission(permissions.ResourceCommissionAgents, permissions.ActionCreate), CreateHandler[models.CommissionAgent, *models.CommissionAgent](api, "commissionAgents"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourceCommissionAgents, permissions.ActionRead), ListHandler[models.CommissionAgent](api, "commissionAgents"))
	grp.GET("/:userEmail/unsynced", middlewares.RequirePermission(permissions.ResourceCommissionAgents, permissions.ActionRead), unsyncedCommissionAgentsHandler(api))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourceCommissionAgents, permissions.ActionUpdate), UpdateHandler[models.CommissionAgent](api, "commissionAgents"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourceCommissionAgents, permissions.ActionDelete), DeleteHandler[models.CommissionAgent](api, "commissionAgents"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourceCommissionAgents, permissions.ActionUpdate), commissionAgentSyncHandler(api))
	grp.POST("/mark-synced", middlewares.RequirePermission(permissions.ResourceCommissionAgents, permissions.ActionUpdate), markCommissionAgentsSyncedHandler(api))
}

func unsyncedCommissionAgentsHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.Param("userEmail")

		agents, err := store.FindUnsynced[models.CommissionAgent](c.Request.Context(), api.Store, userEmail)
		if err != nil {
			api.internalError(c, "commissionAgents", "Unsynced", userEmail, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": agents})
	}
}

func markCommissionAgentsSyncedHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail string   `json:"userEmail" binding:"required,email"`
			Ids       []string `json:"ids" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		err := store.MarkSynced[models.CommissionAgent](c.Request.Context(), api.Store, req.UserEmail, req.Ids)
		if err != nil {
			api.internalError(c, "commissionAgents", "MarkSynced", req.Ids, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func commissionAgentSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail        string                   `json:"userEmail" binding:"required,email"`
			CommissionAgents []models.CommissionAgent `json:"commissionAgents"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		fresh, failedIds, ok := syncCollection[models.CommissionAgent, *models.CommissionAgent](api, c, "commissionAgents", req.UserEmail, req.CommissionAgents)
		if !ok {
			return
		}
		respondSync(c, gin.H{"data": fresh}, failedIds)
	}
}
