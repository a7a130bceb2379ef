package v1_test

import (
	"net/http"
	"testing"
	"time"

	v1 "github.com/family-budget/backend/internal/controllers/v1"
	"github.com/family-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestSampleData(t *testing.T, query string, headers ...map[string]string) v1.SampleDataResponse {
	r := test.Request(t, http.MethodPost, "http://example.com/v1/sample-data"+query, "", headers...)
	test.AssertHTTPStatus(t, &r, http.StatusCreated)

	var response v1.SampleDataResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestSampleData() {
	response := createTestSampleData(suite.T(), "?year=2024&seed=7")
	require.Len(suite.T(), response.Data, 12)

	for i, m := range response.Data {
		assert.Equal(suite.T(), 2024, m.Year)
		assert.Equal(suite.T(), i+1, m.Month)
		assert.NotEmpty(suite.T(), m.Links.Self)
	}
	assert.Equal(suite.T(), "January", response.Data[0].MonthName)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var months v1.MonthListResponse
	test.DecodeResponse(suite.T(), &r, &months)
	assert.Len(suite.T(), months.Data, 12)
}

func (suite *TestSuiteStandard) TestSampleDataDefaultYear() {
	response := createTestSampleData(suite.T(), "")
	require.Len(suite.T(), response.Data, 12)
	assert.Equal(suite.T(), time.Now().Year(), response.Data[0].Year)
}

func (suite *TestSuiteStandard) TestSampleDataSpanish() {
	response := createTestSampleData(suite.T(), "?year=2024", map[string]string{"Accept-Language": "es"})
	assert.Equal(suite.T(), "Enero", response.Data[0].MonthName)
}

func (suite *TestSuiteStandard) TestSampleDataDeterministic() {
	first := createTestSampleData(suite.T(), "?year=2024&seed=42")
	second := createTestSampleData(suite.T(), "?year=2024&seed=42")

	require.Len(suite.T(), second.Data, 12)
	for i := range first.Data {
		assert.Equal(suite.T(), first.Data[i].ID, second.Data[i].ID, "Existing months must be overwritten")
		assert.Equal(suite.T(), first.Data[i].Income, second.Data[i].Income)
		assert.Equal(suite.T(), first.Data[i].FixedExpenses, second.Data[i].FixedExpenses)
		assert.Equal(suite.T(), first.Data[i].VariableExpenses, second.Data[i].VariableExpenses)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var months v1.MonthListResponse
	test.DecodeResponse(suite.T(), &r, &months)
	assert.Len(suite.T(), months.Data, 12)
}

func (suite *TestSuiteStandard) TestSampleDataOverwrites() {
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 3, MonthEditable: v1.MonthEditable{MonthName: "Custom"}})

	response := createTestSampleData(suite.T(), "?year=2024")
	assert.Equal(suite.T(), "March", response.Data[2].MonthName)

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/2024/3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var month v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &month)
	assert.Equal(suite.T(), "March", month.Data.MonthName)
}

func (suite *TestSuiteStandard) TestSampleDataFails() {
	tests := []struct {
		name  string
		query string
	}{
		{"Invalid year", "?year=next"},
		{"Negative seed", "?seed=-1"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/sample-data"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestSampleDataDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/sample-data?year=2024", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
