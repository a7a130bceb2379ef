package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/family-budget/backend/internal/controllers/v1"
	"github.com/family-budget/backend/internal/models"
	"github.com/family-budget/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestMonthCreate() {
	month := createTestMonth(suite.T(), v1.MonthCreate{
		Year:  2024,
		Month: 1,
		MonthEditable: v1.MonthEditable{
			MonthName: "Enero",
			Income:    models.AmountMap{"nata": decimal.NewFromInt(4500)},
			FixedExpenses: models.ExpenseList{
				{Name: "Hipoteca", Budget: decimal.NewFromInt(1500), Actual: decimal.NewFromInt(1500)},
			},
		},
	})

	assert.Equal(suite.T(), 2024, month.Data.Year)
	assert.Equal(suite.T(), 1, month.Data.Month)
	assert.Equal(suite.T(), "Enero", month.Data.MonthName)
	assert.True(suite.T(), decimal.NewFromInt(4500).Equal(month.Data.Income["nata"]))
	assert.NotNil(suite.T(), month.Data.VariableExpenses, "Collections must never be null")
	assert.NotNil(suite.T(), month.Data.BankBalances, "Collections must never be null")
	assert.Equal(suite.T(), "http://example.com/v1/months/2024/1", month.Data.Links.Self)
	assert.Equal(suite.T(), "http://example.com/v1/annual-summaries/2024", month.Data.Links.AnnualSummary)
}

func (suite *TestSuiteStandard) TestMonthCreateDefaultName() {
	tests := []struct {
		language string
		month    int
		name     string
	}{
		{"", 3, "March"},
		{"es-ES", 4, "Abril"},
		{"en-GB", 12, "December"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			headers := map[string]string{}
			if tt.language != "" {
				headers["Accept-Language"] = tt.language
			}

			r := test.Request(t, http.MethodPost, "http://example.com/v1/months", v1.MonthCreate{Year: 2024, Month: tt.month}, headers)
			test.AssertHTTPStatus(t, &r, http.StatusCreated)

			var response v1.MonthResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.name, response.Data.MonthName)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthCreateFails() {
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 5})

	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Duplicate", v1.MonthCreate{Year: 2024, Month: 5}, http.StatusBadRequest},
		{"Month 0", v1.MonthCreate{Year: 2024, Month: 0}, http.StatusBadRequest},
		{"Month 13", v1.MonthCreate{Year: 2024, Month: 13}, http.StatusBadRequest},
		{"Empty body", "", http.StatusBadRequest},
		{"Broken body", `{ "year": "two thousand" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/months", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/months", v1.MonthCreate{Year: 2024, Month: 5})
	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), models.ErrMonthNotUnique.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestMonthList() {
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 3})
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2023, Month: 11})
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 1})

	tests := []struct {
		query    string
		expected [][2]int
	}{
		{"", [][2]int{{2023, 11}, {2024, 1}, {2024, 3}}},
		{"?year=2024", [][2]int{{2024, 1}, {2024, 3}}},
		{"?year=2023", [][2]int{{2023, 11}}},
		{"?year=1999", [][2]int{}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.query, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/months"+tt.query, "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MonthListResponse
			test.DecodeResponse(t, &r, &response)

			got := [][2]int{}
			for _, m := range response.Data {
				got = append(got, [2]int{m.Year, m.Month})
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthListFails() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months?year=last", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	suite.CloseDB()
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

func (suite *TestSuiteStandard) TestMonthGet() {
	created := createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 7})

	tests := []struct {
		name   string
		path   string
		status int
	}{
		{"Existing", "2024/7", http.StatusOK},
		{"Not existing", "2024/8", http.StatusNotFound},
		{"Month out of range", "2024/13", http.StatusBadRequest},
		{"Month zero", "2024/0", http.StatusBadRequest},
		{"Not a number", "2024/july", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/months/"+tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.MonthResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, created.Data.ID, response.Data.ID)
			}
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/2024/8", "")
	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), "there is no month record matching your query", *response.Error)
}

func (suite *TestSuiteStandard) TestMonthUpdate() {
	_ = createTestMonth(suite.T(), v1.MonthCreate{
		Year:  2024,
		Month: 2,
		MonthEditable: v1.MonthEditable{
			MonthName: "Febrero",
			Income:    models.AmountMap{"nata": decimal.NewFromInt(4500)},
		},
	})

	body := map[string]any{
		"variable_expenses": []map[string]any{
			{"name": "Restaurantes", "budget": 300, "actual": 350},
		},
		"bank_balances": map[string]any{"main": 2500},
	}

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/months/2024/2", body)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.VariableExpenses, 1)
	assert.Equal(suite.T(), "Restaurantes", response.Data.VariableExpenses[0].Name)
	assert.True(suite.T(), decimal.NewFromInt(2500).Equal(response.Data.BankBalances["main"]))

	// Fields not in the body are kept
	assert.Equal(suite.T(), "Febrero", response.Data.MonthName)
	assert.True(suite.T(), decimal.NewFromInt(4500).Equal(response.Data.Income["nata"]))
}

func (suite *TestSuiteStandard) TestMonthUpdateClear() {
	_ = createTestMonth(suite.T(), v1.MonthCreate{
		Year:  2024,
		Month: 2,
		MonthEditable: v1.MonthEditable{
			Income: models.AmountMap{"nata": decimal.NewFromInt(4500)},
		},
	})

	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/months/2024/2", `{ "income": {} }`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MonthResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data.Income, 0)
}

func (suite *TestSuiteStandard) TestMonthUpdateFails() {
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 2})

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"Not existing", "2024/3", `{ "month_name": "March" }`, http.StatusNotFound},
		{"Invalid month", "2024/14", `{ "month_name": "March" }`, http.StatusBadRequest},
		{"Empty body", "2024/2", "", http.StatusBadRequest},
		{"Broken body", "2024/2", `{ "income": [`, http.StatusBadRequest},
		{"Wrong type", "2024/2", `{ "income": "a lot" }`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, "http://example.com/v1/months/"+tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestMonthDelete() {
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 6})

	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/months/2024/6", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months/2024/6", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/months/2024/6", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The month can be created again after deletion
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 6})
}

func (suite *TestSuiteStandard) TestMonthDBError() {
	suite.CloseDB()

	tests := []struct {
		method string
		path   string
		body   any
	}{
		{http.MethodPost, "http://example.com/v1/months", v1.MonthCreate{Year: 2024, Month: 1}},
		{http.MethodGet, "http://example.com/v1/months/2024/1", ""},
		{http.MethodPatch, "http://example.com/v1/months/2024/1", `{ "month_name": "January" }`},
		{http.MethodDelete, "http://example.com/v1/months/2024/1", ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.method, func(t *testing.T) {
			r := test.Request(t, tt.method, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}
