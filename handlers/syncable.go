package handlers

import (
	"errors"
	"net/http"

	"bitbucket.org/mmdatafocus/invoice_backend/store"
	"bitbucket.org/mmdatafocus/invoice_backend/utils"
	"github.com/gin-gonic/gin"
)

// The CRUD endpoints share one shape across every synced entity, so the
// handlers are generic over the model type. Only the sync endpoints are
// written per entity: their request and response field names differ.

type createRequest[T any] struct {
	UserEmail string `json:"userEmail" binding:"required,email"`
	Data      *T     `json:"data" binding:"required"`
}

type updateRequest struct {
	UserEmail string         `json:"userEmail" binding:"required,email"`
	Data      map[string]any `json:"data" binding:"required"`
}

type tenantRequest struct {
	UserEmail string `json:"userEmail" binding:"required,email"`
}

func CreateHandler[T any, PT store.RecordPtr[T]](api *API, moduleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createRequest[T]
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		rec := PT(req.Data)
		if rec.RecordId() == "" {
			badRequest(c, "data.id is required")
			return
		}

		err := store.Insert[T, PT](c.Request.Context(), api.Store, req.UserEmail, rec)
		if errors.Is(err, utils.ErrorDuplicateRecord) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Record already exists"})
			return
		}
		if err != nil {
			api.internalError(c, moduleName, "Create", rec.RecordId(), err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{"success": true, "data": req.Data})
	}
}

func ListHandler[T any](api *API, moduleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.Param("userEmail")
		if userEmail == "" {
			badRequest(c, "userEmail is required")
			return
		}

		records, err := store.FindAll[T](c.Request.Context(), api.Store, userEmail, false)
		if err != nil {
			api.internalError(c, moduleName, "List", userEmail, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": records})
	}
}

func UpdateHandler[T any](api *API, moduleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req updateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		err := store.Update[T](c.Request.Context(), api.Store, req.UserEmail, id, req.Data)
		if errors.Is(err, utils.ErrorRecordNotFound) {
			notFound(c)
			return
		}
		if err != nil {
			api.internalError(c, moduleName, "Update", id, err)
			return
		}

		fresh, err := store.FindById[T](c.Request.Context(), api.Store, req.UserEmail, id)
		if err != nil {
			api.internalError(c, moduleName, "Update", id, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": fresh})
	}
}

func DeleteHandler[T any](api *API, moduleName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		var req tenantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			bindError(c, err)
			return
		}

		err := store.SoftDelete[T](c.Request.Context(), api.Store, req.UserEmail, id)
		if errors.Is(err, utils.ErrorRecordNotFound) {
			notFound(c)
			return
		}
		if err != nil {
			api.internalError(c, moduleName, "Delete", id, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Record deleted"})
	}
}

// syncCollection runs the reconciler for one batch and reports whether
// the handler should keep going. A store failure on the read-back is the
// only fatal outcome; per-record failures just land in failedIds.
func syncCollection[T any, PT store.RecordPtr[T]](api *API, c *gin.Context, moduleName, userEmail string, batch []T) ([]T, []string, bool) {
	fresh, failedIds, err := store.SyncBatch[T, PT](c.Request.Context(), api.Store, userEmail, batch)
	if err != nil {
		api.internalError(c, moduleName, "Sync", userEmail, err)
		return nil, nil, false
	}
	return fresh, failedIds, true
}

// respondSync writes a sync response. failedIds only appears when some
// records could not be applied; the push itself still succeeded.
func respondSync(c *gin.Context, body gin.H, failedIds []string) {
	body["success"] = true
	if len(failedIds) > 0 {
		body["failedIds"] = failedIds
	}
	c.JSON(http.StatusOK, body)
}
