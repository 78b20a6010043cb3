package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/koinochrista/backend/internal/httputil"
	"github.com/koinochrista/backend/internal/models"
	"github.com/shopspring/decimal"
)

// HeatingReadingEditable represents all values of a heating reading
// that can be set by API consumers.
type HeatingReadingEditable struct {
	ApartmentCode string          `json:"apartmentCode" example:"A1"`
	Cost          decimal.Decimal `json:"cost" example:"123.45"`
}

// model returns the database resource for the API representation
func (editable HeatingReadingEditable) model() models.HeatingReading {
	return models.HeatingReading{
		ApartmentCode: editable.ApartmentCode,
		Cost:          editable.Cost,
	}
}

type HeatingReadingLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/heating/7"`
}

// HeatingReading is the API representation of a heating reading
type HeatingReading struct {
	models.Model
	HeatingReadingEditable
	Links HeatingReadingLinks `json:"links"`
}

func newHeatingReading(c *gin.Context, model models.HeatingReading) HeatingReading {
	url := httputil.RequestHost(c)

	return HeatingReading{
		Model: model.Model,
		HeatingReadingEditable: HeatingReadingEditable{
			ApartmentCode: model.ApartmentCode,
			Cost:          model.Cost,
		},
		Links: HeatingReadingLinks{
			Self: fmt.Sprintf("%s/v1/heating/%d", url, model.ID),
		},
	}
}

type HeatingReadingListResponse struct {
	Data  []HeatingReading `json:"data"`
	Error *string          `json:"error" example:"the specified resource ID is not a valid ID"`
	Total decimal.Decimal  `json:"total" example:"456.78"`
}

type HeatingReadingCreateResponse struct {
	Data  []HeatingReadingResponse `json:"data"`
	Error *string                  `json:"error" example:"the specified resource ID is not a valid ID"`
}

func (r *HeatingReadingCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, HeatingReadingResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type HeatingReadingResponse struct {
	Data  *HeatingReading `json:"data"`
	Error *string         `json:"error" example:"the specified resource ID is not a valid ID"`
}
