package v1_test

import (
	"net/http"

	v1 "github.com/koinochrista/backend/internal/controllers/v1"
	"github.com/koinochrista/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) replaceTestHeatingReadings(readings []v1.HeatingReadingEditable) {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/heating", readings)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}

func (suite *TestSuiteStandard) TestHeatingReplaceAndList() {
	suite.replaceTestHeatingReadings([]v1.HeatingReadingEditable{
		{ApartmentCode: "A1", Cost: decimal.NewFromFloat(50)},
		{ApartmentCode: "A2", Cost: decimal.NewFromFloat(25.50)},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/heating", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.HeatingReadingListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "A1", response.Data[0].ApartmentCode)
	assert.True(suite.T(), response.Total.Equal(decimal.NewFromFloat(75.50)))
}

// PUT replaces the whole set, earlier readings are gone.
func (suite *TestSuiteStandard) TestHeatingReplaceIsFullReplace() {
	suite.replaceTestHeatingReadings([]v1.HeatingReadingEditable{
		{ApartmentCode: "A1", Cost: decimal.NewFromFloat(50)},
	})
	suite.replaceTestHeatingReadings([]v1.HeatingReadingEditable{
		{ApartmentCode: "A2", Cost: decimal.NewFromFloat(30)},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/heating", "")

	var response v1.HeatingReadingListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), "A2", response.Data[0].ApartmentCode)
}

func (suite *TestSuiteStandard) TestHeatingReplaceInvalid() {
	r := test.Request(suite.T(), http.MethodPut, "http://example.com/v1/heating", []v1.HeatingReadingEditable{
		{ApartmentCode: "", Cost: decimal.NewFromFloat(50)},
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// The readings from before the failed replace are still there
	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/heating", "")

	var response v1.HeatingReadingListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestHeatingDelete() {
	suite.replaceTestHeatingReadings([]v1.HeatingReadingEditable{
		{ApartmentCode: "A1", Cost: decimal.NewFromFloat(50)},
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/heating", "")
	var response v1.HeatingReadingListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 1)

	r = test.Request(suite.T(), http.MethodDelete, response.Data[0].Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/heating", "")
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data)
}
