package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/koinochrista/backend/internal/controllers/v1"
	"github.com/koinochrista/backend/internal/types"
	"github.com/koinochrista/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMatchRule(t *testing.T, rule v1.MatchRuleEditable, expectedStatus ...int) v1.MatchRuleResponse {
	body := []v1.MatchRuleEditable{
		rule,
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var m v1.MatchRuleCreateResponse
	test.DecodeResponse(t, &r, &m)

	if r.Code == http.StatusCreated {
		return m.Data[0]
	}

	return v1.MatchRuleResponse{}
}

func (suite *TestSuiteStandard) TestMatchRulesCreate() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "*ΔΕΗ*", CostCategory: types.CostCommon})

	require.NotNil(suite.T(), rule.Data)
	assert.Equal(suite.T(), "*ΔΕΗ*", rule.Data.Match)
	assert.Equal(suite.T(), types.CostCommon, rule.Data.CostCategory)
}

func (suite *TestSuiteStandard) TestMatchRulesCreateNoPattern() {
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, CostCategory: types.CostCommon}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMatchRulesCreateUnknownCostCategory() {
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "*ΔΕΗ*", CostCategory: 1}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestMatchRulesCreateInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/match-rules", `{ "this is not valid JSON`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// Rules are returned ordered by priority, then ID.
func (suite *TestSuiteStandard) TestMatchRulesList() {
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 2, Match: "*καθαρισμ*", CostCategory: types.CostCommon})
	_ = createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "*ανελκυστ*", CostCategory: types.CostElevator})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "*ανελκυστ*", response.Data[0].Match)
	assert.Equal(suite.T(), "*καθαρισμ*", response.Data[1].Match)
}

func (suite *TestSuiteStandard) TestMatchRulesGetSingle() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "*ΔΕΗ*", CostCategory: types.CostCommon})

	r := test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), rule.Data.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestMatchRulesGetNotFound() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules/4096", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMatchRulesUpdate() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "*ΔΕΗ*", CostCategory: types.CostCommon})

	r := test.Request(suite.T(), http.MethodPatch, rule.Data.Links.Self, map[string]any{
		"priority": 5,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), uint(5), response.Data.Priority)
	assert.Equal(suite.T(), "*ΔΕΗ*", response.Data.Match)
}

func (suite *TestSuiteStandard) TestMatchRulesDelete() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "*ΔΕΗ*", CostCategory: types.CostCommon})

	r := test.Request(suite.T(), http.MethodDelete, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, rule.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestMatchRulesOptions() {
	rule := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "*ΔΕΗ*", CostCategory: types.CostCommon})

	r := test.Request(suite.T(), http.MethodOptions, rule.Data.Links.Self, "")
	assert.Equal(suite.T(), http.StatusNoContent, r.Code)
	assert.Equal(suite.T(), "GET, PATCH, DELETE", r.Header().Get("allow"))
}
