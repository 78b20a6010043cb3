package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koinochrista/backend/internal/calculation"
	"github.com/koinochrista/backend/internal/httputil"
	"github.com/koinochrista/backend/internal/models"
	"github.com/koinochrista/backend/internal/types"
	"github.com/shopspring/decimal"
)

// RegisterCalculationRoutes registers the routes for calculation previews
// with the RouterGroup that is passed.
func RegisterCalculationRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCalculation)
	r.POST("", PreviewCalculation)
}

// CalculationRequest selects the expenses to preview. With no IDs, all
// expenses not yet part of a period are used.
type CalculationRequest struct {
	ExpenseIDs types.IDList `json:"expenseIds"`
}

// CalculationResult is a dry run of a calculation period: the same numbers
// that would be frozen into the snapshot, without persisting anything.
type CalculationResult struct {
	ExpenseIDs     types.IDList      `json:"expenseIds"`
	TotalAmount    decimal.Decimal   `json:"totalAmount" example:"740.20"`
	HeatingTotal   decimal.Decimal   `json:"heatingTotal" example:"230.00"`
	TenantPayments types.PaymentList `json:"tenantPayments"`
	Residual       decimal.Decimal   `json:"residual" example:"0.004"`
	InvalidColumns []string          `json:"invalidColumns" example:"elevator"` // Coefficient columns whose sum is off by more than the tolerance
}

type CalculationResponse struct {
	Data  *CalculationResult `json:"data"`
	Error *string            `json:"error" example:"at least one expense must be selected"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calculation
// @Success		204
// @Router			/v1/calculation [options]
func OptionsCalculation(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Preview a calculation
// @Description	Computes the per-apartment payments for the selected expenses without creating a period. Column warnings and the rounding residual are reported alongside, they never block the preview.
// @Tags			Calculation
// @Accept			json
// @Produce		json
// @Success		200			{object}	CalculationResponse
// @Failure		400			{object}	CalculationResponse
// @Failure		404			{object}	CalculationResponse
// @Failure		500			{object}	CalculationResponse
// @Param			calculation	body		CalculationRequest	true	"Expense selection"
// @Router			/v1/calculation [post]
func PreviewCalculation(c *gin.Context) {
	var request CalculationRequest

	// An empty body is a valid request for "preview everything available"
	err := httputil.BindData(c, &request)
	if err != nil && !errors.Is(err, httputil.ErrRequestBodyEmpty) {
		s := err.Error()
		c.JSON(status(err), CalculationResponse{
			Error: &s,
		})
		return
	}

	var expenses []models.Expense
	if len(request.ExpenseIDs) == 0 {
		expenses, err = models.AvailableExpenses(models.DB)
	} else {
		expenses, err = models.ExpensesByIDs(models.DB, request.ExpenseIDs)
	}
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalculationResponse{
			Error: &s,
		})
		return
	}

	if len(expenses) == 0 {
		s := errNoExpensesSelected.Error()
		c.JSON(http.StatusBadRequest, CalculationResponse{
			Error: &s,
		})
		return
	}

	var apartments []models.Apartment
	err = models.DB.Order("code ASC").Find(&apartments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalculationResponse{
			Error: &s,
		})
		return
	}

	var readings []models.HeatingReading
	err = models.DB.Find(&readings).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalculationResponse{
			Error: &s,
		})
		return
	}

	shares, err := calculation.ComputeShares(expenses, apartments, readings)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalculationResponse{
			Error: &s,
		})
		return
	}

	ids := make(types.IDList, 0, len(expenses))
	for _, expense := range expenses {
		ids = append(ids, expense.ID)
	}

	data := CalculationResult{
		ExpenseIDs:     ids,
		TotalAmount:    models.TotalOf(expenses),
		HeatingTotal:   models.TotalHeatingCost(readings),
		TenantPayments: types.PaymentList(shares),
		Residual:       calculation.Residual(shares, expenses),
		InvalidColumns: calculation.InvalidColumns(apartments),
	}

	c.JSON(http.StatusOK, CalculationResponse{Data: &data})
}
