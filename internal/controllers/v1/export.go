package v1

import (
	"encoding/json"
	"net/http"
	"reflect"
	"time"

	"github.com/family-budget/backend/internal/httputil"
	"github.com/family-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

var backendVersion string

type ExportResponse struct {
	Version      string                     `json:"version" example:"1.2.0"`                         // Version of the backend that created the export
	CreationTime time.Time                  `json:"creation_time" example:"2024-03-01T10:00:00.000Z"` // Time the export was created
	Data         map[string]json.RawMessage `json:"data"`                                            // Exported resources by model name
}

func RegisterExportRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	{
		r.OPTIONS("", OptionsExport)
		r.GET("", GetExport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export
// @Description	Exports all resources of the instance
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	resources := make(map[string]json.RawMessage)

	for _, model := range models.Registry {
		b, err := model.Export()
		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}

		resources[reflect.TypeOf(model).Name()] = b
	}

	c.JSON(http.StatusOK, ExportResponse{
		Version:      backendVersion,
		CreationTime: time.Now().In(time.UTC),
		Data:         resources,
	})
}
