package v1_test

import (
	"net/http"

	v1 "github.com/koinochrista/backend/internal/controllers/v1"
	"github.com/koinochrista/backend/internal/types"
	"github.com/koinochrista/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCalculationPreview() {
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1", Coefficients: types.Coefficients{
		types.CategoryCommon: decimal.NewFromInt(600),
	}})
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A2", Coefficients: types.Coefficients{
		types.CategoryCommon: decimal.NewFromInt(400),
	}})
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromInt(100)})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/calculation", v1.CalculationRequest{
		ExpenseIDs: types.IDList{expense.Data.ID},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CalculationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.TotalAmount.Equal(decimal.NewFromInt(100)))
	require.Len(suite.T(), response.Data.TenantPayments, 2)
	assert.True(suite.T(), response.Data.TenantPayments[0].TotalShare.Equal(decimal.NewFromInt(60)))
	assert.True(suite.T(), response.Data.TenantPayments[1].TotalShare.Equal(decimal.NewFromInt(40)))
	assert.Empty(suite.T(), response.Data.InvalidColumns)
	assert.True(suite.T(), response.Data.Residual.IsZero())
}

// An empty body previews all expenses that are not part of a period yet.
func (suite *TestSuiteStandard) TestCalculationPreviewEmptyBody() {
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1", Coefficients: types.Coefficients{
		types.CategoryCommon: decimal.NewFromInt(1000),
	}})
	available := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromInt(100)})
	used := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Gardening", Amount: decimal.NewFromInt(40)})
	_ = createTestPeriod(suite.T(), v1.CalculationPeriodEditable{Name: "November 2025", ExpenseIDs: types.IDList{used.Data.ID}})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/calculation", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CalculationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), types.IDList{available.Data.ID}, response.Data.ExpenseIDs)
	assert.True(suite.T(), response.Data.TotalAmount.Equal(decimal.NewFromInt(100)))
}

// Incomplete coefficient columns are warnings, they never block the preview.
func (suite *TestSuiteStandard) TestCalculationPreviewResidual() {
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1", Coefficients: types.Coefficients{
		types.CategoryCommon: decimal.NewFromInt(500),
	}})
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromInt(100)})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/calculation", v1.CalculationRequest{
		ExpenseIDs: types.IDList{expense.Data.ID},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CalculationResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Residual.Equal(decimal.NewFromInt(-50)))
	assert.Equal(suite.T(), []string{types.CategoryCommon}, response.Data.InvalidColumns)
}

func (suite *TestSuiteStandard) TestCalculationPreviewNoExpenses() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/calculation", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestCalculationPreviewUnknownExpense() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/calculation", v1.CalculationRequest{
		ExpenseIDs: types.IDList{4096},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCalculationOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/calculation", "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}
