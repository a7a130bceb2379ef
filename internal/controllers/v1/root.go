package v1

import (
	"net/http"

	"github.com/family-budget/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

type Links struct {
	FamilyConfig    string `json:"family_config" example:"https://example.com/api/v1/family-config"`        // Family configuration
	Months          string `json:"months" example:"https://example.com/api/v1/months"`                     // Month records
	Years           string `json:"years" example:"https://example.com/api/v1/years"`                       // Year creation
	AnnualSummaries string `json:"annual_summaries" example:"https://example.com/api/v1/annual-summaries"` // Annual summaries
	Alerts          string `json:"alerts" example:"https://example.com/api/v1/alerts"`                     // Budget alerts
	Reports         string `json:"reports" example:"https://example.com/api/v1/reports"`                   // Workbook downloads
	SampleData      string `json:"sample_data" example:"https://example.com/api/v1/sample-data"`            // Sample data generation
	Export          string `json:"export" example:"https://example.com/api/v1/export"`                     // JSON export of all data
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.DELETE("", Cleanup)
	r.OPTIONS("", Options)
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := httputil.URL(c)

	c.JSON(http.StatusOK, Response{
		Links: Links{
			FamilyConfig:    url + "/v1/family-config",
			Months:          url + "/v1/months",
			Years:           url + "/v1/years",
			AnnualSummaries: url + "/v1/annual-summaries",
			Alerts:          url + "/v1/alerts",
			Reports:         url + "/v1/reports",
			SampleData:      url + "/v1/sample-data",
			Export:          url + "/v1/export",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGetDelete(c)
}
