package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/koinochrista/backend/internal/httputil"
	"github.com/koinochrista/backend/internal/models"
	"github.com/koinochrista/backend/internal/types"
	"github.com/shopspring/decimal"
)

// CalculationPeriodEditable represents all values of a calculation period
// that can be set by API consumers. Everything else, including the payment
// snapshot, is derived on the server when the period is created.
type CalculationPeriodEditable struct {
	Name       string       `json:"name" example:"November 2025"`
	Date       time.Time    `json:"date" example:"2025-11-30T00:00:00Z"`
	ExpenseIDs types.IDList `json:"expenseIds"`
}

// model returns the database resource for the API representation
func (editable CalculationPeriodEditable) model() models.CalculationPeriod {
	return models.CalculationPeriod{
		Name:       editable.Name,
		Date:       editable.Date,
		ExpenseIDs: editable.ExpenseIDs,
	}
}

type CalculationPeriodLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/periods/2"`
	Notice string `json:"notice" example:"https://example.com/api/v1/periods/2/notice.pdf"`
}

// CalculationPeriod is the API representation of a calculation period
type CalculationPeriod struct {
	models.Model
	CalculationPeriodEditable
	TotalAmount    decimal.Decimal        `json:"totalAmount" example:"740.20"`
	TenantPayments types.PaymentList      `json:"tenantPayments"`
	Links          CalculationPeriodLinks `json:"links"`
}

func newCalculationPeriod(c *gin.Context, model models.CalculationPeriod) CalculationPeriod {
	url := httputil.RequestHost(c)

	return CalculationPeriod{
		Model: model.Model,
		CalculationPeriodEditable: CalculationPeriodEditable{
			Name:       model.Name,
			Date:       model.Date,
			ExpenseIDs: model.ExpenseIDs,
		},
		TotalAmount:    model.TotalAmount,
		TenantPayments: model.TenantPayments,
		Links: CalculationPeriodLinks{
			Self:   fmt.Sprintf("%s/v1/periods/%d", url, model.ID),
			Notice: fmt.Sprintf("%s/v1/periods/%d/notice.pdf", url, model.ID),
		},
	}
}

type CalculationPeriodListResponse struct {
	Data  []CalculationPeriod `json:"data"`
	Error *string             `json:"error" example:"the specified resource ID is not a valid ID"`
}

type CalculationPeriodCreateResponse struct {
	Data  []CalculationPeriodResponse `json:"data"`
	Error *string                     `json:"error" example:"the specified resource ID is not a valid ID"`
}

func (r *CalculationPeriodCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CalculationPeriodResponse{Error: &s})

	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CalculationPeriodResponse struct {
	Data  *CalculationPeriod `json:"data"`
	Error *string            `json:"error" example:"the specified resource ID is not a valid ID"`
}
