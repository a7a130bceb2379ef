package v1_test

import (
	"net/http"

	v1 "github.com/family-budget/backend/internal/controllers/v1"
	"github.com/family-budget/backend/internal/models"
	"github.com/family-budget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAnnualSummary() {
	config := getTestFamilyConfig(suite.T())
	nata := config.Members[0]
	jon := config.Members[1]

	_ = createTestMonth(suite.T(), v1.MonthCreate{
		Year:  2024,
		Month: 1,
		MonthEditable: v1.MonthEditable{
			MonthName: "Enero",
			Income:    models.AmountMap{nata.ID: decimal.NewFromInt(4500), jon.ID: decimal.NewFromInt(3500)},
			FixedExpenses: models.ExpenseList{
				{Name: "Hipoteca", Budget: decimal.NewFromInt(1500), Actual: decimal.NewFromInt(1500)},
			},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/annual-summaries/2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AnnualSummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	s := response.Data
	assert.Equal(suite.T(), 2024, s.Year)
	assert.True(suite.T(), decimal.NewFromInt(8000).Equal(s.TotalIncome))
	assert.True(suite.T(), decimal.NewFromInt(1500).Equal(s.TotalExpenses))
	assert.True(suite.T(), decimal.NewFromInt(6500).Equal(s.TotalSavings))
	assert.True(suite.T(), decimal.NewFromInt(4500).Equal(s.MemberContributions[nata.Name]))
	assert.True(suite.T(), decimal.NewFromInt(3500).Equal(s.MemberContributions[jon.Name]))
	assert.True(suite.T(), decimal.NewFromInt(1500).Equal(s.ExpenseByCategory["Hipoteca"]))
	require.Len(suite.T(), s.MonthlyData, 1)
	assert.Equal(suite.T(), "Enero", s.MonthlyData[0].MonthName)
	assert.True(suite.T(), decimal.NewFromInt(78000).Equal(s.SavingsProjection.ProjectedAnnualSavings))
	assert.Equal(suite.T(), 1, s.SavingsProjection.MonthsTracked)
	assert.Equal(suite.T(), 11, s.SavingsProjection.RemainingMonths)
}

func (suite *TestSuiteStandard) TestAnnualSummaryLabels() {
	config := getTestFamilyConfig(suite.T())

	_ = createTestMonth(suite.T(), v1.MonthCreate{
		Year:  2024,
		Month: 1,
		MonthEditable: v1.MonthEditable{
			VariableExpenses: models.ExpenseList{
				{Budget: decimal.NewFromInt(20), Actual: decimal.NewFromInt(12)},
			},
			CategoryExpenses: models.CategoryExpenses{
				config.Categories[1].ID: {{Name: "Luz", Budget: decimal.NewFromInt(100), Actual: decimal.NewFromInt(150)}},
			},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/annual-summaries/2024", "", map[string]string{"Accept-Language": "es"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AnnualSummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.True(suite.T(), decimal.NewFromInt(150).Equal(response.Data.ExpenseByCategory[config.Categories[1].Name]))
	assert.True(suite.T(), decimal.NewFromInt(12).Equal(response.Data.ExpenseByCategory["Otros"]), "Items without name must use the localized label")
}

func (suite *TestSuiteStandard) TestAnnualSummaryNoData() {
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2023, Month: 1})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/annual-summaries/2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response v1.AnnualSummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "there is no data for this year", *response.Error)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/annual-summaries/this-year", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestAnnualSummaries() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/annual-summaries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AnnualSummaryListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.NotNil(suite.T(), response.Data)
	assert.Len(suite.T(), response.Data, 0)

	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 2})
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2022, Month: 5})
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 1})

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/annual-summaries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), 2022, response.Data[0].Year)
	assert.Equal(suite.T(), 2024, response.Data[1].Year)
	assert.Len(suite.T(), response.Data[1].MonthlyData, 2)
}

func (suite *TestSuiteStandard) TestAnnualSummaryDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/annual-summaries", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/annual-summaries/2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
