package v1_test

import (
	"encoding/json"
	"net/http"

	v1 "github.com/family-budget/backend/internal/controllers/v1"
	"github.com/family-budget/backend/internal/models"
	"github.com/family-budget/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExport() {
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2023, Month: 12})
	_ = createTestMonth(suite.T(), v1.MonthCreate{Year: 2024, Month: 1})
	config := getTestFamilyConfig(suite.T())

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "0.0.0", response.Version)
	assert.False(suite.T(), response.CreationTime.IsZero())
	assert.Len(suite.T(), response.Data, 3)

	var months []models.MonthRecord
	require.Nil(suite.T(), json.Unmarshal(response.Data["MonthRecord"], &months))
	require.Len(suite.T(), months, 2)
	assert.Equal(suite.T(), 2023, months[0].Year)
	assert.Equal(suite.T(), 2024, months[1].Year)

	var configs []models.FamilyConfig
	require.Nil(suite.T(), json.Unmarshal(response.Data["FamilyConfig"], &configs))
	require.Len(suite.T(), configs, 1)
	assert.Equal(suite.T(), config.ID, configs[0].ID)
}

func (suite *TestSuiteStandard) TestExportDBError() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
