package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/family-budget/backend/internal/httputil"
	"github.com/family-budget/backend/internal/models"
	"github.com/family-budget/backend/internal/seed"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SampleDataQuery struct {
	Year *int    `form:"year"` // Year to generate data for. Defaults to the current year.
	Seed *uint64 `form:"seed"` // Seed for the generator. Defaults to 0.
}

type SampleDataResponse struct {
	Data  []Month `json:"data"`                                                                // The generated months
	Error *string `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

func RegisterSampleDataRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", httputil.OptionsPost)
	r.POST("", CreateSampleData)
}

// @Summary		Generate sample data
// @Description	Generates twelve months of sample data for the year. Existing months of the year are overwritten.
// @Description	The same seed always generates the same data for the same family configuration.
// @Tags			Sample Data
// @Produce		json
// @Success		201		{object}	SampleDataResponse
// @Failure		400		{object}	SampleDataResponse
// @Failure		500		{object}	SampleDataResponse
// @Param			year	query		int	false	"Year, defaults to the current year"
// @Param			seed	query		int	false	"Seed, defaults to 0"
// @Router			/v1/sample-data [post]
func CreateSampleData(c *gin.Context) {
	var query SampleDataQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SampleDataResponse{
			Error: &s,
		})
		return
	}

	year := time.Now().Year()
	if query.Year != nil {
		year = *query.Year
	}

	var sd uint64
	if query.Seed != nil {
		sd = *query.Seed
	}

	var months []models.MonthRecord
	err = models.Transaction(models.DB, func(tx *gorm.DB) error {
		config, err := models.GetFamilyConfig(tx)
		if err != nil {
			return err
		}

		months = seed.Sample(config, year, sd, httputil.Labels(c))
		for i := range months {
			err := upsertMonth(tx, &months[i])
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), SampleDataResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusCreated, SampleDataResponse{Data: newMonths(c, months)})
}

// upsertMonth replaces the record with the same year and month or creates it.
func upsertMonth(tx *gorm.DB, record *models.MonthRecord) error {
	existing, err := models.GetMonth(tx, record.Year, record.Month)
	if errors.Is(err, models.ErrResourceNotFound) {
		return tx.Create(record).Error
	}

	if err != nil {
		return err
	}

	record.ID = existing.ID
	record.CreatedAt = existing.CreatedAt
	return tx.Save(record).Error
}
