package v1

import (
	"net/http"

	"github.com/family-budget/backend/internal/httputil"
	"github.com/family-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterMonthRoutes registers the routes for month records with
// the RouterGroup that is passed.
func RegisterMonthRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsMonthList)
		r.GET("", GetMonths)
		r.POST("", CreateMonth)
	}

	// Month with year and month
	{
		r.OPTIONS("/:year/:month", OptionsMonthDetail)
		r.GET("/:year/:month", GetMonth)
		r.PATCH("/:year/:month", UpdateMonth)
		r.DELETE("/:year/:month", DeleteMonth)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/months [options]
func OptionsMonthList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			year	path		int	true	"Year"
// @Param			month	path		int	true	"Month"
// @Router			/v1/months/{year}/{month} [options]
func OptionsMonthDetail(c *gin.Context) {
	var uri URIYearMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.GetMonth(models.DB, uri.Year, uri.Month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Get months
// @Description	Returns all month records ordered by year and month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthListResponse
// @Failure		400		{object}	MonthListResponse
// @Failure		500		{object}	MonthListResponse
// @Param			year	query		int	false	"Filter by year"
// @Router			/v1/months [get]
func GetMonths(c *gin.Context) {
	var filter MonthQueryFilter
	err := c.ShouldBindQuery(&filter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthListResponse{
			Error: &s,
		})
		return
	}

	months, err := models.ListMonths(models.DB, filter.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthListResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, MonthListResponse{Data: newMonths(c, months)})
}

// @Summary		Create month
// @Description	Creates a month record. There can only be one record per year and month.
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		201		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			month	body		MonthCreate	true	"Month"
// @Router			/v1/months [post]
func CreateMonth(c *gin.Context) {
	var create MonthCreate
	err := httputil.BindData(c, &create)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	record := create.model()
	if record.MonthName == "" {
		record.MonthName = httputil.Labels(c).MonthName(record.Month)
	}

	err = models.DB.Create(&record).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := newMonth(c, record)
	c.JSON(http.StatusCreated, MonthResponse{Data: &data})
}

// @Summary		Get month
// @Description	Returns the record for a specific year and month
// @Tags			Months
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			year	path		int	true	"Year"
// @Param			month	path		int	true	"Month"
// @Router			/v1/months/{year}/{month} [get]
func GetMonth(c *gin.Context) {
	var uri URIYearMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	record, err := models.GetMonth(models.DB, uri.Year, uri.Month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	data := newMonth(c, record)
	c.JSON(http.StatusOK, MonthResponse{Data: &data})
}

// @Summary		Update month
// @Description	Updates an existing month record. Only values to be updated need to be specified.
// @Tags			Months
// @Accept			json
// @Produce		json
// @Success		200		{object}	MonthResponse
// @Failure		400		{object}	MonthResponse
// @Failure		404		{object}	MonthResponse
// @Failure		500		{object}	MonthResponse
// @Param			year	path		int				true	"Year"
// @Param			month	path		int				true	"Month"
// @Param			data	body		MonthEditable	true	"Month"
// @Router			/v1/months/{year}/{month} [patch]
func UpdateMonth(c *gin.Context) {
	var uri URIYearMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	record, err := models.GetMonth(models.DB, uri.Year, uri.Month)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, MonthEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	var data MonthEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthResponse{
			Error: &s,
		})
		return
	}

	// A body without any known field does not change the record
	if len(updateFields) > 0 {
		err = models.DB.Model(&record).Select("", updateFields...).Updates(data.model()).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), MonthResponse{
				Error: &s,
			})
			return
		}
	}

	GetMonth(c)
}

// @Summary		Delete month
// @Description	Deletes the record for a specific year and month
// @Tags			Months
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		404		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			year	path		int	true	"Year"
// @Param			month	path		int	true	"Month"
// @Router			/v1/months/{year}/{month} [delete]
func DeleteMonth(c *gin.Context) {
	var uri URIYearMonth
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	record, err := models.GetMonth(models.DB, uri.Year, uri.Month)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&record).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
