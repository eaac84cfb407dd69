// Package handlers exposes the REST surface: auth, sub-user management,
// per-entity CRUD, and the offline-sync endpoints.
package handlers

import (
	"net/http"

	"bitbucket.org/mmdatafocus/invoice_backend/config"
	"bitbucket.org/mmdatafocus/invoice_backend/store"
	"bitbucket.org/mmdatafocus/invoice_backend/utils"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// API bundles the dependencies every handler needs. Constructed once in
// main; there are no package globals.
type API struct {
	Store *store.Store
	Cache *config.Cache
	Log   *logrus.Logger
	Cfg   *config.Config
}

func NewAPI(st *store.Store, cache *config.Cache, log *logrus.Logger, cfg *config.Config) *API {
	return &API{Store: st, Cache: cache, Log: log, Cfg: cfg}
}

// bindError reports a 400 carrying every violated rule, not just the
// first one.
func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "validation failed",
		"errors":  utils.ProcessValidationErrors(err),
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

// notFound conflates "does not exist" with "belongs to another tenant";
// the caller cannot distinguish the two.
func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"success": false,
		"message": "Record not found or you do not have permission",
	})
}

// internalError logs the real failure with context and answers with a
// generic 500.
func (api *API) internalError(c *gin.Context, moduleName, funcName string, data any, err error) {
	config.LogError(api.Log, moduleName, funcName, c.FullPath(), data, err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "internal server error",
	})
}
