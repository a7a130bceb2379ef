// Package root serves the entrypoint of the budget backend.
package root

import (
	"net/http"

	"github.com/family-budget/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Docs         string `json:"docs" example:"https://example.com/api/docs/index.html"`           // Swagger API documentation
	Healthz      string `json:"healthz" example:"https://example.com/api/healthz"`                // Database health check
	Version      string `json:"version" example:"https://example.com/api/version"`                // Build and API versions
	Metrics      string `json:"metrics" example:"https://example.com/api/metrics"`                // Prometheus metrics
	Pprof        string `json:"pprof,omitempty" example:"https://example.com/api/debug/pprof"`    // Profiling endpoints, only listed when enabled
	V1           string `json:"v1" example:"https://example.com/api/v1"`                          // Budget API
	FamilyConfig string `json:"family_config" example:"https://example.com/api/v1/family-config"` // Shortcut to the family configuration
	Template     string `json:"template" example:"https://example.com/api/v1/reports/template"`   // Shortcut to the blank budget workbook
}

// RegisterRoutes registers the entrypoint. When pprof is true, the
// profiling endpoints are listed in the links.
func RegisterRoutes(r *gin.RouterGroup, pprof bool) {
	r.GET("", func(c *gin.Context) {
		get(c, pprof)
	})
	r.OPTIONS("", Options)
}

// @Summary		API root
// @Description	Entrypoint for the budget backend, listing the API versions and service endpoints
// @Tags			General
// @Success		200	{object}	Response
// @Router			/ [get]
func Get(c *gin.Context) {
	get(c, false)
}

func get(c *gin.Context, pprof bool) {
	url := httputil.URL(c)

	links := Links{
		Docs:         url + "/docs/index.html",
		Healthz:      url + "/healthz",
		Version:      url + "/version",
		Metrics:      url + "/metrics",
		V1:           url + "/v1",
		FamilyConfig: url + "/v1/family-config",
		Template:     url + "/v1/reports/template",
	}

	if pprof {
		links.Pprof = url + "/debug/pprof"
	}

	c.JSON(http.StatusOK, Response{Links: links})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
