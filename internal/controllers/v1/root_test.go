package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/family-budget/backend/internal/controllers/v1"
	"github.com/family-budget/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), v1.Links{
		FamilyConfig:    "http://example.com/v1/family-config",
		Months:          "http://example.com/v1/months",
		Years:           "http://example.com/v1/years",
		AnnualSummaries: "http://example.com/v1/annual-summaries",
		Alerts:          "http://example.com/v1/alerts",
		Reports:         "http://example.com/v1/reports",
		SampleData:      "http://example.com/v1/sample-data",
		Export:          "http://example.com/v1/export",
	}, response.Links)
}

func (suite *TestSuiteStandard) TestOptions() {
	tests := []struct {
		path  string
		allow string
	}{
		{"http://example.com/v1", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/export", "OPTIONS, GET"},
		{"http://example.com/v1/family-config", "OPTIONS, GET, PATCH"},
		{"http://example.com/v1/family-config/members", "OPTIONS, POST"},
		{"http://example.com/v1/family-config/members/some-id", "OPTIONS, DELETE"},
		{"http://example.com/v1/family-config/categories", "OPTIONS, POST"},
		{"http://example.com/v1/family-config/bank-accounts/some-id", "OPTIONS, DELETE"},
		{"http://example.com/v1/months", "OPTIONS, GET, POST"},
		{"http://example.com/v1/years/2024", "OPTIONS, POST"},
		{"http://example.com/v1/annual-summaries", "OPTIONS, GET"},
		{"http://example.com/v1/annual-summaries/2024", "OPTIONS, GET"},
		{"http://example.com/v1/alerts", "OPTIONS, GET, DELETE"},
		{"http://example.com/v1/alerts/dismissals", "OPTIONS, POST"},
		{"http://example.com/v1/reports/template", "OPTIONS, GET"},
		{"http://example.com/v1/reports/annual/2024", "OPTIONS, GET"},
		{"http://example.com/v1/sample-data", "OPTIONS, POST"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, tt.path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestOptionsMonthDetail() {
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 2})

	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/months/2024/2", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/months/2024/3", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/months/2024/13", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCleanup() {
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 1})
	_ = getTestFamilyConfig(suite.T())

	dismiss := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/alerts/dismissals", v1.DismissalEditable{AlertKey: "2024-1-fixed-Renta"})
	test.AssertHTTPStatus(suite.T(), &dismiss, http.StatusCreated)

	// Delete
	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	// Verify
	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/months", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var months v1.MonthListResponse
	test.DecodeResponse(suite.T(), &recorder, &months)
	assert.Len(suite.T(), months.Data, 0, "There are months left")

	recorder = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var export v1.ExportResponse
	test.DecodeResponse(suite.T(), &recorder, &export)
	assert.JSONEq(suite.T(), "[]", string(export.Data["DismissedAlert"]))
	assert.JSONEq(suite.T(), "[]", string(export.Data["FamilyConfig"]))
}

func (suite *TestSuiteStandard) TestCleanupFails() {
	tests := []struct {
		name string
		path string
	}{
		{"No confirmation", ""},
		{"Invalid path", "confirm=2"},
		{"Confirmation wrong", "confirm=invalid-confirmation"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, http.MethodDelete, fmt.Sprintf("http://example.com/v1?%s", tt.path), "")
			test.AssertHTTPStatus(t, &recorder, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestCleanupDBError() {
	suite.CloseDB()

	recorder := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusInternalServerError)
}
