package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/koinochrista/backend/internal/controllers/v1"
	"github.com/koinochrista/backend/internal/models"
	"github.com/koinochrista/backend/internal/types"
	"github.com/koinochrista/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestPeriod(t *testing.T, period v1.CalculationPeriodEditable, expectedStatus ...int) v1.CalculationPeriodResponse {
	body := []v1.CalculationPeriodEditable{
		period,
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/periods", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var p v1.CalculationPeriodCreateResponse
	test.DecodeResponse(t, &r, &p)

	if r.Code == http.StatusCreated {
		return p.Data[0]
	}

	return v1.CalculationPeriodResponse{}
}

// Closing a period freezes the snapshot computed from the current
// coefficients.
func (suite *TestSuiteStandard) TestPeriodsCreate() {
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1", Coefficients: types.Coefficients{
		types.CategoryCommon: decimal.NewFromInt(600),
	}})
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A2", Coefficients: types.Coefficients{
		types.CategoryCommon: decimal.NewFromInt(400),
	}})
	suite.replaceTestHeatingReadings([]v1.HeatingReadingEditable{
		{ApartmentCode: "A1", Cost: decimal.NewFromInt(50)},
	})
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromInt(100)})

	period := createTestPeriod(suite.T(), v1.CalculationPeriodEditable{
		Name:       "November 2025",
		ExpenseIDs: types.IDList{expense.Data.ID},
	})

	require.NotNil(suite.T(), period.Data)
	assert.True(suite.T(), period.Data.TotalAmount.Equal(decimal.NewFromInt(100)))

	require.Len(suite.T(), period.Data.TenantPayments, 2)
	assert.True(suite.T(), period.Data.TenantPayments[0].Shares[types.CategoryCommon].Equal(decimal.NewFromInt(60)))
	assert.True(suite.T(), period.Data.TenantPayments[0].HeatingCost.Equal(decimal.NewFromInt(50)))
	assert.True(suite.T(), period.Data.TenantPayments[0].TotalShare.Equal(decimal.NewFromInt(110)))
	assert.True(suite.T(), period.Data.TenantPayments[1].TotalShare.Equal(decimal.NewFromInt(40)))
}

// The snapshot must not change when coefficients change afterwards.
func (suite *TestSuiteStandard) TestPeriodsSnapshotFrozen() {
	apartment := createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1", Coefficients: types.Coefficients{
		types.CategoryCommon: decimal.NewFromInt(1000),
	}})
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromInt(100)})

	period := createTestPeriod(suite.T(), v1.CalculationPeriodEditable{
		Name:       "November 2025",
		ExpenseIDs: types.IDList{expense.Data.ID},
	})

	// Change the coefficients after the fact
	r := test.Request(suite.T(), http.MethodPatch, apartment.Data.Links.Self, map[string]any{
		"coefficients": map[string]any{types.CategoryCommon: 500},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, period.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CalculationPeriodResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.TenantPayments, 1)
	assert.True(suite.T(), response.Data.TenantPayments[0].TotalShare.Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestPeriodsCreateEmptySelection() {
	_ = createTestPeriod(suite.T(), v1.CalculationPeriodEditable{Name: "Empty"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestPeriodsCreateUnknownExpense() {
	_ = createTestPeriod(suite.T(), v1.CalculationPeriodEditable{
		Name:       "November 2025",
		ExpenseIDs: types.IDList{4096},
	}, http.StatusNotFound)
}

// An expense can only be part of one period.
func (suite *TestSuiteStandard) TestPeriodsCreateConflict() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromInt(100)})

	_ = createTestPeriod(suite.T(), v1.CalculationPeriodEditable{
		Name:       "November 2025",
		ExpenseIDs: types.IDList{expense.Data.ID},
	})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/periods", []v1.CalculationPeriodEditable{
		{Name: "December 2025", ExpenseIDs: types.IDList{expense.Data.ID}},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response v1.CalculationPeriodCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Data[0].Error, models.ErrExpenseAlreadyUsed.Error())
}

func (suite *TestSuiteStandard) TestPeriodsList() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromInt(100)})
	_ = createTestPeriod(suite.T(), v1.CalculationPeriodEditable{
		Name:       "November 2025",
		ExpenseIDs: types.IDList{expense.Data.ID},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/periods", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CalculationPeriodListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "November 2025", response.Data[0].Name)
}

// Deleting a period makes its expenses available again.
func (suite *TestSuiteStandard) TestPeriodsDelete() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromInt(100)})
	period := createTestPeriod(suite.T(), v1.CalculationPeriodEditable{
		Name:       "November 2025",
		ExpenseIDs: types.IDList{expense.Data.ID},
	})

	r := test.Request(suite.T(), http.MethodDelete, period.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?available=true", "")
	var expenses v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &expenses)
	assert.Len(suite.T(), expenses.Data, 1)
}

func (suite *TestSuiteStandard) TestPeriodsDeleteNotFound() {
	r := test.Request(suite.T(), http.MethodDelete, "http://example.com/v1/periods/4096", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestPeriodsNoticePDF() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromInt(100)})
	period := createTestPeriod(suite.T(), v1.CalculationPeriodEditable{
		Name:       "November 2025",
		ExpenseIDs: types.IDList{expense.Data.ID},
	})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/periods/%d/notice.pdf", period.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.Equal(suite.T(), "application/pdf", r.Header().Get("Content-Type"))
	assert.True(suite.T(), len(r.Body.Bytes()) > 0)
}
