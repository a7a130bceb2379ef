// Package version reports which build of the budget backend is running
// and which API versions it serves.
package version

import (
	"net/http"

	"github.com/family-budget/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// APIVersions lists the API versions mounted by the router, oldest first.
var APIVersions = []string{"v1"}

var backendVersion = "0.0.0"

type Response struct {
	Data Object `json:"data"`
}

type Object struct {
	Version     string   `json:"version" example:"1.1.0"`                              // Build version of the budget backend
	APIVersions []string `json:"api_versions" example:"v1" swaggertype:"array,string"` // API versions served under their own path prefix
}

// RegisterRoutes registers the version endpoint. version is the build
// version reported by it.
func RegisterRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	r.GET("", Get)
	r.OPTIONS("", httputil.OptionsGet)
}

// @Summary		Backend version
// @Description	Returns the build version of the budget backend and the API versions it serves
// @Tags			General
// @Success		200	{object}	Response
// @Router			/version [get]
func Get(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Data: Object{
			Version:     backendVersion,
			APIVersions: APIVersions,
		},
	})
}
