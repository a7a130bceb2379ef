package v1

import (
	"fmt"
	"net/http"

	"github.com/family-budget/backend/internal/httputil"
	"github.com/family-budget/backend/internal/models"
	"github.com/family-budget/backend/internal/report"
	"github.com/gin-gonic/gin"
)

func RegisterReportRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/template", httputil.OptionsGet)
		r.GET("/template", GetTemplate)
	}

	{
		r.OPTIONS("/annual/:year", httputil.OptionsGet)
		r.GET("/annual/:year", GetAnnualReport)
	}
}

// @Summary		Download budget template
// @Description	Returns a blank budget workbook with an instructions sheet and one sheet per month
// @Tags			Reports
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200	{file}		binary
// @Failure		500	{object}	httpError
// @Router			/v1/reports/template [get]
func GetTemplate(c *gin.Context) {
	lbl := httputil.Labels(c)

	b, err := report.Template(lbl)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	attachment(c, lbl.TemplateFilename, b)
}

// @Summary		Download annual report
// @Description	Returns a workbook with the income, expenses and savings of every month of the year
// @Tags			Reports
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200		{file}		binary
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			year	path		int	true	"Year"
// @Router			/v1/reports/annual/{year} [get]
func GetAnnualReport(c *gin.Context) {
	var uri URIYear
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	months, err := models.ListMonths(models.DB, &uri.Year)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	lbl := httputil.Labels(c)
	b, err := report.Annual(uri.Year, months, lbl)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	attachment(c, fmt.Sprintf(lbl.AnnualFilename, uri.Year), b)
}

func attachment(c *gin.Context, filename string, b []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, report.ContentType, b)
}
