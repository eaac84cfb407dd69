package handlers

import (
	"net/http"

	"bitbucket.org/mmdatafocus/invoice_backend/middlewares"
	"bitbucket.org/mmdatafocus/invoice_backend/models"
	"bitbucket.org/mmdatafocus/invoice_backend/permissions"
	"github.com/gin-gonic/gin"
)

func RegisterExpenseRoutes(r gin.IRouter, api *API) {
	grp := r.Group("/expenses")
	grp.POST("", middlewares.RequirePermission(permissions.ResourceExpenses, permissions.ActionCreate), CreateHandler[models.Expense, *models.Expense](api, "expenses"))
	grp.GET("/:userEmail", middlewares.RequirePermission(permissions.ResourceExpenses, permissions.ActionRead), ListHandler[models.Expense](api, "expenses"))
	grp.GET("/:userEmail/recent", middlewares.RequirePermission(permissions.ResourceExpenses, permissions.ActionRead), recentExpensesHandler(api))
	grp.PUT("/:id", middlewares.RequirePermission(permissions.ResourceExpenses, permissions.ActionUpdate), UpdateHandler[models.Expense](api, "expenses"))
	grp.DELETE("/:id", middlewares.RequirePermission(permissions.ResourceExpenses, permissions.ActionDelete), DeleteHandler[models.Expense](api, "expenses"))
	grp.POST("/sync", middlewares.RequirePermission(permissions.ResourceExpenses, permissions.ActionUpdate), expenseSyncHandler(api))
}

func recentExpensesHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.Param("userEmail")

		var expenses []models.Expense
		err := api.Store.DB().WithContext(c.Request.Context()).
			Where("user_email = ? AND deleted = 0", userEmail).
			Order("date DESC").
			Limit(10).
			Find(&expenses).Error
		if err != nil {
			api.internalError(c, "expenses", "Recent", userEmail, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": expenses})
	}
}

func expenseSyncHandler(api *API) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			UserEmail string           `json:"userEmail" binding:"required,email"`
			Expenses  []models.Expense `json:"expenses"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		fresh, failedIds, ok := syncCollection[models.Expense, *models.Expense](api, c, "expenses", req.UserEmail, req.Expenses)
		if !ok {
			return
		}
		respondSync(c, gin.H{"data": fresh}, failedIds)
	}
}
