package v1_test

import (
	"encoding/json"
	"net/http"

	v1 "github.com/koinochrista/backend/internal/controllers/v1"
	"github.com/koinochrista/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExport() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromInt(100)})
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExportResponse
	test.DecodeResponse(suite.T(), &r, &response)

	for _, key := range []string{"expenses", "apartments", "heatingReadings", "buildingInfos", "calculationPeriods", "matchRules"} {
		assert.Contains(suite.T(), response.Data, key)
	}

	var expenses []map[string]any
	require.NoError(suite.T(), json.Unmarshal(response.Data["expenses"], &expenses))
	require.Len(suite.T(), expenses, 1)
	assert.Equal(suite.T(), expense.Data.Description, expenses[0]["description"])
}

func (suite *TestSuiteStandard) TestExportXLSX() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromInt(100)})
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export/xlsx", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", r.Header().Get("Content-Type"))
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), ".xlsx")
	assert.NotEmpty(suite.T(), r.Body.Bytes())
}

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export/xlsx", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}
