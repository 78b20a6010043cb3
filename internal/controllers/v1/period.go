package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koinochrista/backend/internal/calculation"
	"github.com/koinochrista/backend/internal/export"
	"github.com/koinochrista/backend/internal/httputil"
	"github.com/koinochrista/backend/internal/models"
	"github.com/koinochrista/backend/internal/types"
)

// RegisterPeriodRoutes registers the routes for calculation periods with
// the RouterGroup that is passed.
func RegisterPeriodRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPeriodList)
		r.GET("", GetPeriods)
		r.POST("", CreatePeriods)
	}

	// Period with ID
	{
		r.OPTIONS("/:id", OptionsPeriodDetail)
		r.GET("/:id", GetPeriod)
		r.DELETE("/:id", DeletePeriod)
		r.GET("/:id/notice.pdf", GetPeriodNotice)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Periods
// @Success		204
// @Router			/v1/periods [options]
func OptionsPeriodList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Periods
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/periods/{id} [options]
func OptionsPeriodDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var period models.CalculationPeriod
	err = models.DB.First(&period, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create calculation periods
// @Description	Closes the selected expenses into new calculation periods. The per-apartment payment snapshot is computed and frozen at this point.
// @Tags			Periods
// @Accept			json
// @Produce		json
// @Success		201		{object}	CalculationPeriodCreateResponse
// @Failure		400		{object}	CalculationPeriodCreateResponse
// @Failure		404		{object}	CalculationPeriodCreateResponse
// @Failure		409		{object}	CalculationPeriodCreateResponse
// @Failure		500		{object}	CalculationPeriodCreateResponse
// @Param			periods	body		[]CalculationPeriodEditable	true	"Calculation periods"
// @Router			/v1/periods [post]
func CreatePeriods(c *gin.Context) {
	var editables []CalculationPeriodEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CalculationPeriodCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := CalculationPeriodCreateResponse{}

	for _, editable := range editables {
		period, err := closePeriod(editable)
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newCalculationPeriod(c, period)
		r.Data = append(r.Data, CalculationPeriodResponse{Data: &data})
	}

	c.JSON(status, r)
}

// closePeriod computes the payment snapshot for the selected expenses and
// persists the period with its expenses locked.
func closePeriod(editable CalculationPeriodEditable) (models.CalculationPeriod, error) {
	if len(editable.ExpenseIDs) == 0 {
		return models.CalculationPeriod{}, errNoExpensesSelected
	}

	expenses, err := models.ExpensesByIDs(models.DB, editable.ExpenseIDs)
	if err != nil {
		return models.CalculationPeriod{}, err
	}

	var apartments []models.Apartment
	err = models.DB.Order("code ASC").Find(&apartments).Error
	if err != nil {
		return models.CalculationPeriod{}, err
	}

	var readings []models.HeatingReading
	err = models.DB.Find(&readings).Error
	if err != nil {
		return models.CalculationPeriod{}, err
	}

	shares, err := calculation.ComputeShares(expenses, apartments, readings)
	if err != nil {
		return models.CalculationPeriod{}, err
	}

	period := editable.model()
	err = models.CreateCalculationPeriod(models.DB, &period, expenses, types.PaymentList(shares))
	if err != nil {
		return models.CalculationPeriod{}, err
	}

	return period, nil
}

// @Summary		List calculation periods
// @Description	Returns all calculation periods, newest first
// @Tags			Periods
// @Produce		json
// @Success		200	{object}	CalculationPeriodListResponse
// @Failure		500	{object}	CalculationPeriodListResponse
// @Router			/v1/periods [get]
func GetPeriods(c *gin.Context) {
	var periods []models.CalculationPeriod
	err := models.DB.Order("date DESC, id DESC").Find(&periods).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalculationPeriodListResponse{
			Error: &s,
		})
		return
	}

	apiResources := make([]CalculationPeriod, 0)
	for _, period := range periods {
		apiResources = append(apiResources, newCalculationPeriod(c, period))
	}

	c.JSON(http.StatusOK, CalculationPeriodListResponse{Data: apiResources})
}

// @Summary		Get calculation period
// @Description	Returns a specific calculation period with its frozen payment snapshot
// @Tags			Periods
// @Produce		json
// @Success		200	{object}	CalculationPeriodResponse
// @Failure		400	{object}	CalculationPeriodResponse
// @Failure		404	{object}	CalculationPeriodResponse
// @Failure		500	{object}	CalculationPeriodResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/periods/{id} [get]
func GetPeriod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalculationPeriodResponse{
			Error: &s,
		})
		return
	}

	var period models.CalculationPeriod
	err = models.DB.First(&period, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CalculationPeriodResponse{
			Error: &s,
		})
		return
	}

	apiResource := newCalculationPeriod(c, period)
	c.JSON(http.StatusOK, CalculationPeriodResponse{Data: &apiResource})
}

// @Summary		Delete calculation period
// @Description	Deletes a calculation period. Its expenses return to the available pool.
// @Tags			Periods
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/periods/{id} [delete]
func DeletePeriod(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DeleteCalculationPeriod(models.DB, uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Period notice PDF
// @Description	Returns a printable payment notice for the period, rendered from the frozen snapshot
// @Tags			Periods
// @Produce		application/pdf
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/periods/{id}/notice.pdf [get]
func GetPeriodNotice(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var period models.CalculationPeriod
	err = models.DB.First(&period, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	building, err := models.GetBuildingInfo(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	pdf, err := export.BuildPeriodNoticePDF(building, period)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="period-%d-notice.pdf"`, period.ID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
