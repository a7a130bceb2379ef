package v1_test

import (
	"bytes"
	"net/http"
	"testing"

	v1 "github.com/family-budget/backend/internal/controllers/v1"
	"github.com/family-budget/backend/internal/models"
	"github.com/family-budget/backend/internal/report"
	"github.com/family-budget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, b []byte) *excelize.File {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.Nil(t, err, "Workbook could not be opened")
	t.Cleanup(func() { f.Close() })
	return f
}

func (suite *TestSuiteStandard) TestReportTemplate() {
	tests := []struct {
		language string
		filename string
		first    string
		january  string
	}{
		{"en", "budget_template.xlsx", "INSTRUCTIONS", "January"},
		{"es-MX", "plantilla_presupuesto.xlsx", "INSTRUCCIONES", "Enero"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.language, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/reports/template", "", map[string]string{"Accept-Language": tt.language})
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			assert.Equal(t, report.ContentType, r.Header().Get("Content-Type"))
			assert.Equal(t, `attachment; filename="`+tt.filename+`"`, r.Header().Get("Content-Disposition"))

			f := openWorkbook(t, r.Body.Bytes())
			sheets := f.GetSheetList()
			require.Len(t, sheets, 13)
			assert.Equal(t, tt.first, sheets[0])
			assert.Equal(t, tt.january, sheets[1])
		})
	}
}

func (suite *TestSuiteStandard) TestReportAnnual() {
	config := getTestFamilyConfig(suite.T())

	_ = createTestMonth(suite.T(), v1.MonthCreate{
		Year:  2024,
		Month: 2,
		MonthEditable: v1.MonthEditable{
			MonthName:     "February",
			Income:        models.AmountMap{config.Members[0].ID: decimal.NewFromInt(1000)},
			FixedExpenses: models.ExpenseList{expense("Renta", 1500, 1500)},
		},
	})

	_ = createTestMonth(suite.T(), v1.MonthCreate{
		Year:  2024,
		Month: 1,
		MonthEditable: v1.MonthEditable{
			MonthName: "January",
			Income:    models.AmountMap{config.Members[0].ID: decimal.NewFromInt(4500)},
		},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/annual/2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Equal(suite.T(), report.ContentType, r.Header().Get("Content-Type"))
	assert.Equal(suite.T(), `attachment; filename="budget_2024.xlsx"`, r.Header().Get("Content-Disposition"))

	f := openWorkbook(suite.T(), r.Body.Bytes())
	rows, err := f.GetRows("Annual Summary")
	require.Nil(suite.T(), err)

	// Header plus one row per month
	require.Len(suite.T(), rows, 3)
	assert.Equal(suite.T(), "Month", rows[0][0])
	assert.Equal(suite.T(), "January", rows[1][0])
	assert.Equal(suite.T(), "February", rows[2][0])
}

func (suite *TestSuiteStandard) TestReportAnnualFails() {
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2023, Month: 1})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"No data", "2024", http.StatusNotFound},
		{"Invalid year", "last", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/reports/annual/"+tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestReportDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/annual/2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	// The template does not need the database
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/reports/template", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
