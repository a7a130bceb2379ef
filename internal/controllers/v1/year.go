package v1

import (
	"errors"
	"net/http"

	"github.com/family-budget/backend/internal/httputil"
	"github.com/family-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func RegisterYearRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:year", OptionsYear)
	r.POST("/:year", CreateYear)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Param			year	path	int	true	"Year"
// @Router			/v1/years/{year} [options]
func OptionsYear(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create year
// @Description	Creates all months of the year that do not exist yet. Income is set to 0 for every
// @Description	member and every category starts with an empty list of expenses.
// @Tags			Months
// @Produce		json
// @Success		200		{object}	YearResponse	"All months existed already"
// @Success		201		{object}	YearResponse
// @Failure		400		{object}	YearResponse
// @Failure		500		{object}	YearResponse
// @Param			year	path		int	true	"Year"
// @Router			/v1/years/{year} [post]
func CreateYear(c *gin.Context) {
	var uri URIYear
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), YearResponse{
			Error: &s,
		})
		return
	}

	lbl := httputil.Labels(c)
	created := 0

	err = models.Transaction(models.DB, func(tx *gorm.DB) error {
		config, err := models.GetFamilyConfig(tx)
		if err != nil {
			return err
		}

		for month := 1; month <= 12; month++ {
			_, err := models.GetMonth(tx, uri.Year, month)
			if err == nil {
				continue
			}

			if !errors.Is(err, models.ErrResourceNotFound) {
				return err
			}

			record := emptyMonth(config, uri.Year, month)
			record.MonthName = lbl.MonthName(month)

			err = tx.Create(&record).Error
			if err != nil {
				return err
			}
			created++
		}

		return nil
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), YearResponse{
			Error: &s,
		})
		return
	}

	months, err := models.ListMonths(models.DB, &uri.Year)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), YearResponse{
			Error: &s,
		})
		return
	}

	code := http.StatusOK
	if created > 0 {
		code = http.StatusCreated
	}

	c.JSON(code, YearResponse{Data: &YearCreated{
		Year:    uri.Year,
		Created: created,
		Months:  newMonths(c, months),
	}})
}

// emptyMonth returns a month record with zero income for every member
// and an empty expense list for every category.
func emptyMonth(config models.FamilyConfig, year, month int) models.MonthRecord {
	record := models.MonthRecord{
		Year:             year,
		Month:            month,
		Income:           models.AmountMap{},
		CategoryExpenses: models.CategoryExpenses{},
	}

	for _, member := range config.Members {
		record.Income[member.ID] = decimal.Zero
	}

	for _, category := range config.Categories {
		record.CategoryExpenses[category.ID] = models.ExpenseList{}
	}

	return record
}
