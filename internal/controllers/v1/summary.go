package v1

import (
	"net/http"

	"github.com/family-budget/backend/internal/aggregation"
	"github.com/family-budget/backend/internal/httputil"
	"github.com/family-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type AnnualSummaryListResponse struct {
	Data  []aggregation.AnnualSummary `json:"data"`                                                                // Summaries of all years with data
	Error *string                     `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type AnnualSummaryResponse struct {
	Data  *aggregation.AnnualSummary `json:"data"`                                             // Summary of the year
	Error *string                    `json:"error" example:"there is no data for this year"` // The error, if any occurred
}

func RegisterAnnualSummaryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", httputil.OptionsGet)
		r.GET("", GetAnnualSummaries)
	}

	{
		r.OPTIONS("/:year", httputil.OptionsGet)
		r.GET("/:year", GetAnnualSummary)
	}
}

// @Summary		Get annual summaries
// @Description	Returns the summaries of all years that have month records, ordered by year
// @Tags			Annual Summaries
// @Produce		json
// @Success		200	{object}	AnnualSummaryListResponse
// @Failure		500	{object}	AnnualSummaryListResponse
// @Router			/v1/annual-summaries [get]
func GetAnnualSummaries(c *gin.Context) {
	config, err := models.GetFamilyConfig(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnnualSummaryListResponse{
			Error: &s,
		})
		return
	}

	months, err := models.ListMonths(models.DB, nil)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnnualSummaryListResponse{
			Error: &s,
		})
		return
	}

	summaries, err := aggregation.AnnualAll(c.Request.Context(), months, config, httputil.Labels(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnnualSummaryListResponse{
			Error: &s,
		})
		return
	}

	if summaries == nil {
		summaries = []aggregation.AnnualSummary{}
	}

	c.JSON(http.StatusOK, AnnualSummaryListResponse{Data: summaries})
}

// @Summary		Get annual summary
// @Description	Returns the income, expenses and savings of a year together with a projection of the annual savings
// @Tags			Annual Summaries
// @Produce		json
// @Success		200		{object}	AnnualSummaryResponse
// @Failure		400		{object}	AnnualSummaryResponse
// @Failure		404		{object}	AnnualSummaryResponse
// @Failure		500		{object}	AnnualSummaryResponse
// @Param			year	path		int	true	"Year"
// @Router			/v1/annual-summaries/{year} [get]
func GetAnnualSummary(c *gin.Context) {
	var uri URIYear
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnnualSummaryResponse{
			Error: &s,
		})
		return
	}

	config, err := models.GetFamilyConfig(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnnualSummaryResponse{
			Error: &s,
		})
		return
	}

	months, err := models.ListMonths(models.DB, &uri.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnnualSummaryResponse{
			Error: &s,
		})
		return
	}

	summary, err := aggregation.Annual(uri.Year, months, config, httputil.Labels(c))
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AnnualSummaryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AnnualSummaryResponse{Data: &summary})
}
