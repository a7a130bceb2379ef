package v1

import (
	"fmt"

	"github.com/family-budget/backend/internal/httputil"
	"github.com/family-budget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// MonthEditable represents all user configurable parameters of a month
type MonthEditable struct {
	MonthName        string                  `json:"month_name" example:"January"` // Display name of the month. Defaults to the localized month name on creation.
	Income           models.AmountMap        `json:"income"`                       // Income by member ID
	FixedExpenses    models.ExpenseList      `json:"fixed_expenses"`               // Expenses that do not change between months
	VariableExpenses models.ExpenseList      `json:"variable_expenses"`            // Expenses that vary between months
	CategoryExpenses models.CategoryExpenses `json:"category_expenses"`            // Expenses by category ID
	BankBalances     models.AmountMap        `json:"bank_balances"`                // Balance by bank account ID
	Savings          models.AmountMap        `json:"savings"`                      // Free-form savings entries
}

// MonthCreate is the data needed to create a month record
type MonthCreate struct {
	Year  int `json:"year" example:"2024"` // Year of the record
	Month int `json:"month" example:"1"`   // Month of the year, 1 to 12
	MonthEditable
}

func (editable MonthEditable) model() models.MonthRecord {
	return models.MonthRecord{
		MonthName:        editable.MonthName,
		Income:           editable.Income,
		FixedExpenses:    editable.FixedExpenses,
		VariableExpenses: editable.VariableExpenses,
		CategoryExpenses: editable.CategoryExpenses,
		BankBalances:     editable.BankBalances,
		Savings:          editable.Savings,
	}
}

func (create MonthCreate) model() models.MonthRecord {
	m := create.MonthEditable.model()
	m.Year = create.Year
	m.Month = create.Month
	return m
}

type MonthLinks struct {
	Self          string `json:"self" example:"https://example.com/api/v1/months/2024/1"`                  // The month itself
	AnnualSummary string `json:"annual_summary" example:"https://example.com/api/v1/annual-summaries/2024"` // Summary of the year the month belongs to
	Alerts        string `json:"alerts" example:"https://example.com/api/v1/alerts?year=2024"`              // Alerts for the year the month belongs to
}

type Month struct {
	models.MonthRecord
	Links MonthLinks `json:"links"`
}

func newMonth(c *gin.Context, model models.MonthRecord) Month {
	url := httputil.URL(c)

	return Month{
		MonthRecord: model,
		Links: MonthLinks{
			Self:          fmt.Sprintf("%s/v1/months/%d/%d", url, model.Year, model.Month),
			AnnualSummary: fmt.Sprintf("%s/v1/annual-summaries/%d", url, model.Year),
			Alerts:        fmt.Sprintf("%s/v1/alerts?year=%d", url, model.Year),
		},
	}
}

func newMonths(c *gin.Context, records []models.MonthRecord) []Month {
	data := make([]Month, 0, len(records))
	for _, record := range records {
		data = append(data, newMonth(c, record))
	}
	return data
}

type MonthListResponse struct {
	Data  []Month `json:"data"`                                          // List of month records
	Error *string `json:"error" example:"the month must be between 1 and 12"` // The error, if any occurred
}

type MonthResponse struct {
	Data  *Month  `json:"data"`                                               // Data for the month record
	Error *string `json:"error" example:"the month must be between 1 and 12"` // The error, if any occurred
}

type MonthQueryFilter struct {
	Year *int `form:"year"` // By year
}

// YearCreated is the result of creating the months of a year
type YearCreated struct {
	Year    int     `json:"year" example:"2024"`  // The year
	Created int     `json:"created" example:"12"` // Number of months that were created
	Months  []Month `json:"months"`               // All months of the year
}

type YearResponse struct {
	Data  *YearCreated `json:"data"`                                                   // Data for the year
	Error *string      `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}
