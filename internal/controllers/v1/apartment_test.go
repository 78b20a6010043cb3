package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/koinochrista/backend/internal/controllers/v1"
	"github.com/koinochrista/backend/internal/models"
	"github.com/koinochrista/backend/internal/types"
	"github.com/koinochrista/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestApartment(t *testing.T, apartment v1.ApartmentEditable, expectedStatus ...int) v1.ApartmentResponse {
	if apartment.Code == "" {
		apartment.Code = uuid.New().String()
	}

	body := []v1.ApartmentEditable{
		apartment,
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/apartments", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var a v1.ApartmentCreateResponse
	test.DecodeResponse(t, &r, &a)

	if r.Code == http.StatusCreated {
		return a.Data[0]
	}

	return v1.ApartmentResponse{}
}

func (suite *TestSuiteStandard) TestApartmentsCreate() {
	apartment := createTestApartment(suite.T(), v1.ApartmentEditable{
		Code:  "A1",
		Floor: "1",
		Coefficients: types.Coefficients{
			types.CategoryCommon: decimal.NewFromInt(600),
		},
	})

	assert.Equal(suite.T(), "A1", apartment.Data.Code)
	assert.True(suite.T(), apartment.Data.Coefficients.Get(types.CategoryCommon).Equal(decimal.NewFromInt(600)))
}

// A duplicate apartment code is a conflict.
func (suite *TestSuiteStandard) TestApartmentsCreateDuplicateCode() {
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1"})
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1"}, http.StatusConflict)
}

func (suite *TestSuiteStandard) TestApartmentsGetFilter() {
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1", Floor: "1"})
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A2", Floor: "2", Owner: models.Contact{Name: "M. Papadopoulou"}})
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "B1", Floor: "1"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"No filter", "", 3},
		{"Floor", "floor=1", 2},
		{"Code", "code=A", 2},
		{"Search owner", "search=papadopoulou", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/apartments?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ApartmentListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len, "Wrong number of apartments for query %q", tt.query)
		})
	}
}

func (suite *TestSuiteStandard) TestApartmentsUpdate() {
	apartment := createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1"})

	r := test.Request(suite.T(), http.MethodPatch, apartment.Data.Links.Self, map[string]any{
		"floor": "3",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ApartmentResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "3", response.Data.Floor)
	assert.Equal(suite.T(), "A1", response.Data.Code)
}

func (suite *TestSuiteStandard) TestApartmentsDelete() {
	apartment := createTestApartment(suite.T(), v1.ApartmentEditable{})

	r := test.Request(suite.T(), http.MethodDelete, apartment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, apartment.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// The coefficient check reports each column with its sum and validity.
func (suite *TestSuiteStandard) TestApartmentsCoefficientSums() {
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1", Coefficients: types.Coefficients{
		types.CategoryCommon:   decimal.NewFromInt(600),
		types.CategoryElevator: decimal.NewFromInt(300),
	}})
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A2", Coefficients: types.Coefficients{
		types.CategoryCommon:   decimal.NewFromInt(400),
		types.CategoryElevator: decimal.NewFromInt(300),
	}})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/apartments/coefficients", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CoefficientSumsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)

	byCategory := make(map[string]v1.CoefficientSum)
	for _, sum := range response.Data {
		byCategory[sum.Category] = sum
	}

	assert.True(suite.T(), byCategory[types.CategoryCommon].Valid)
	assert.False(suite.T(), byCategory[types.CategoryElevator].Valid)
	assert.True(suite.T(), byCategory[types.CategoryElevator].Sum.Equal(decimal.NewFromInt(600)))
}

// Equal-share fill assigns 1000/n and persists the result.
func (suite *TestSuiteStandard) TestApartmentsFillEqual() {
	first := createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A1"})
	_ = createTestApartment(suite.T(), v1.ApartmentEditable{Code: "A2"})

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/apartments/fill-equal", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.FillEqualResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), 2, response.Data.Apartments)
	assert.True(suite.T(), response.Data.Value.Equal(decimal.NewFromInt(500)))

	// The fill must be persisted
	r = test.Request(suite.T(), http.MethodGet, first.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var apartment v1.ApartmentResponse
	test.DecodeResponse(suite.T(), &r, &apartment)
	assert.True(suite.T(), apartment.Data.Coefficients.Get(types.CategoryEqual).Equal(decimal.NewFromInt(500)))
}
