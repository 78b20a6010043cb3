package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/koinochrista/backend/internal/httputil"
	"github.com/koinochrista/backend/internal/models"
	"github.com/koinochrista/backend/internal/types"
	"github.com/shopspring/decimal"
)

// ApartmentEditable represents all user configurable parameters of an apartment
type ApartmentEditable struct {
	Code         string             `json:"code" example:"A1" default:""`    // Unique display label of the apartment
	Floor        string             `json:"floor" example:"1" default:""`    // Floor of the apartment
	Area         decimal.Decimal    `json:"area" example:"74.5" default:"0"` // Area in square meters
	Owner        models.Contact     `json:"owner"`
	Occupant     models.Contact     `json:"occupant"`
	Coefficients types.Coefficients `json:"coefficients"` // Per-mille share per coefficient category
}

func (editable ApartmentEditable) model() models.Apartment {
	return models.Apartment{
		Code:         editable.Code,
		Floor:        editable.Floor,
		Area:         editable.Area,
		Owner:        editable.Owner,
		Occupant:     editable.Occupant,
		Coefficients: editable.Coefficients,
	}
}

type ApartmentLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/apartments/4"` // The apartment itself
}

type Apartment struct {
	models.Model
	ApartmentEditable
	Links ApartmentLinks `json:"links"`
}

func newApartment(c *gin.Context, model models.Apartment) Apartment {
	url := httputil.RequestHost(c)

	return Apartment{
		Model: model.Model,
		ApartmentEditable: ApartmentEditable{
			Code:         model.Code,
			Floor:        model.Floor,
			Area:         model.Area,
			Owner:        model.Owner,
			Occupant:     model.Occupant,
			Coefficients: model.Coefficients,
		},
		Links: ApartmentLinks{
			Self: fmt.Sprintf("%s/v1/apartments/%d", url, model.ID),
		},
	}
}

type ApartmentListResponse struct {
	Data       []Apartment `json:"data"`       // List of apartments
	Error      *string     `json:"error"`      // The error, if any occurred
	Pagination *Pagination `json:"pagination"` // Pagination information
}

type ApartmentCreateResponse struct {
	Data  []ApartmentResponse `json:"data"`  // List of the created apartments or their respective error
	Error *string             `json:"error"` // The error, if any occurred
}

func (r *ApartmentCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ApartmentResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ApartmentResponse struct {
	Data  *Apartment `json:"data"`  // Data for the apartment
	Error *string    `json:"error"` // The error, if any occurred
}

type ApartmentQueryFilter struct {
	Code   string `form:"code" filterField:"false"`   // By code
	Floor  string `form:"floor"`                      // By floor
	Search string `form:"search" filterField:"false"` // Search for this text in owner and occupant names
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first apartment returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of apartments to return. Defaults to 50.
}

func (f ApartmentQueryFilter) model() models.Apartment {
	return models.Apartment{
		Floor: f.Floor,
	}
}

// CoefficientSumsResponse reports, per coefficient category, the sum of the
// column over all apartments and whether it is within tolerance of 1000.
type CoefficientSumsResponse struct {
	Data  []CoefficientSum `json:"data"`  // One entry per coefficient category
	Error *string          `json:"error"` // The error, if any occurred
}

type CoefficientSum struct {
	Category string          `json:"category" example:"common"` // The coefficient category
	Sum      decimal.Decimal `json:"sum" example:"999.99"`      // Sum of the column over all apartments
	Valid    bool            `json:"valid" example:"true"`      // Whether the sum is within tolerance of 1000
}

// FillEqualResponse is the response for the equal-share auto-fill.
type FillEqualResponse struct {
	Data  *FillEqualResult `json:"data"`  // The applied value
	Error *string          `json:"error"` // The error, if any occurred
}

type FillEqualResult struct {
	Value      decimal.Decimal `json:"value" example:"125"` // The value assigned to the "equal" column of every apartment
	Apartments int             `json:"apartments" example:"8"` // Number of apartments that were updated
}
