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
)

func createTestExpense(t *testing.T, expense v1.ExpenseEditable, expectedStatus ...int) v1.ExpenseResponse {
	if expense.CostCategory == 0 {
		expense.CostCategory = types.CostCommon
	}

	body := []v1.ExpenseEditable{
		expense,
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/expenses", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var e v1.ExpenseCreateResponse
	test.DecodeResponse(t, &r, &e)

	if r.Code == http.StatusCreated {
		return e.Data[0]
	}

	return v1.ExpenseResponse{}
}

func (suite *TestSuiteStandard) TestExpensesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestExpense(t, v1.ExpenseEditable{Description: "Cleaning"}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/expenses", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ExpenseListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesOptions() {
	tests := []struct {
		name   string
		id     string // path at the Expenses endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No expense with this ID", "4096", http.StatusNotFound},
		{"Not a valid ID", "NotANumber", http.StatusBadRequest},
		{"Expense exists", fmt.Sprint(createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning"}).Data.ID), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/expenses", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesCreate() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{
		{Description: "Stairwell electricity", CostCategory: types.CostCommon, Amount: decimal.NewFromFloat(104.32)},
		{Description: "Elevator service", CostCategory: types.CostElevator, Amount: decimal.NewFromFloat(80)},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Stairwell electricity", response.Data[0].Data.Description)
	assert.Contains(suite.T(), response.Data[0].Data.Links.Self, "/v1/expenses/")
}

// An unknown cost category code must fail the whole resource, not silently
// misclassify it.
func (suite *TestSuiteStandard) TestExpensesCreateUnknownCostCategory() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", []v1.ExpenseEditable{
		{Description: "Mystery bill", CostCategory: 99},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ExpenseCreateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Data[0].Error, types.ErrUnknownCostCategory.Error())
}

func (suite *TestSuiteStandard) TestExpensesCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/expenses", `{ "description": "not an array" `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExpensesGetFilter() {
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Stairwell electricity", Category: "Electricity", CostCategory: types.CostCommon})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Elevator service", CostCategory: types.CostElevator})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Garden", Code: "INV-1", CostCategory: types.CostGarden})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"No filter", "", 3},
		{"Cost category", "costCategory=12", 1},
		{"Description", "description=Elevator service", 1},
		{"Code", "code=INV", 1},
		{"Search", "search=elev", 1},
		{"Search matches category", "search=electr", 1},
		{"From date in the past", "fromDate=2000-01-01T00:00:00Z", 3},
		{"From date in the future", "fromDate=2199-01-01T00:00:00Z", 0},
		{"Until date in the future", "untilDate=2199-01-01T00:00:00Z", 3},
		{"Limit", "limit=2", 2},
		{"Offset", "offset=2", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ExpenseListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len, "Wrong number of expenses for query %q", tt.query)
		})
	}
}

// Expenses that are part of a period disappear from the available list but
// stay in the full list.
func (suite *TestSuiteStandard) TestExpensesGetAvailable() {
	used := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromFloat(100)})
	_ = createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Electricity", Amount: decimal.NewFromFloat(50)})

	_ = createTestPeriod(suite.T(), v1.CalculationPeriodEditable{
		Name:       "November 2025",
		ExpenseIDs: types.IDList{used.Data.ID},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses?available=true", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "Electricity", response.Data[0].Description)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses", "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Len(suite.T(), response.Data, 2)
}

func (suite *TestSuiteStandard) TestExpensesGetSingle() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning"})

	r := test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Cleaning", response.Data.Description)
}

func (suite *TestSuiteStandard) TestExpensesGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/4096", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesUpdate() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning"})

	r := test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{
		"description": "Cleaning November",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ExpenseResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "Cleaning November", response.Data.Description)
}

// Locked expenses return a conflict on update and delete.
func (suite *TestSuiteStandard) TestExpensesLocked() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning", Amount: decimal.NewFromFloat(100)})
	_ = createTestPeriod(suite.T(), v1.CalculationPeriodEditable{
		Name:       "November 2025",
		ExpenseIDs: types.IDList{expense.Data.ID},
	})

	r := test.Request(suite.T(), http.MethodPatch, expense.Data.Links.Self, map[string]any{
		"description": "Changed",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestExpensesDelete() {
	expense := createTestExpense(suite.T(), v1.ExpenseEditable{Description: "Cleaning"})

	r := test.Request(suite.T(), http.MethodDelete, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, expense.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestExpensesSuggest() {
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 2, Match: "*καθαρισμ*", CostCategory: types.CostCommon})
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "*ανελκυστ*", CostCategory: types.CostElevator})

	tests := []struct {
		name        string
		description string
		status      int
		code        types.CostCategory
	}{
		{"Elevator, accented", "Συντήρηση ανελκυστήρα", http.StatusOK, types.CostElevator},
		{"Common", "ΚΑΘΑΡΙΣΜΟΣ ΝΟΕΜΒΡΙΟΥ", http.StatusOK, types.CostCommon},
		{"No match", "Δεν ταιριάζει", http.StatusNotFound, 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/expenses/suggest?description=%s", tt.description), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusOK {
				var response v1.ExpenseSuggestionResponse
				test.DecodeResponse(t, &r, &response)
				assert.Equal(t, tt.code, response.Data.CostCategory)

				if tt.code == types.CostElevator {
					assert.Equal(t, rule.Data.ID, response.Data.RuleID)
				}
			}
		})
	}
}

func (suite *TestSuiteStandard) TestExpensesSuggestNoDescription() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/expenses/suggest", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}
