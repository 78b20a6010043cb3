package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koinochrista/backend/internal/httputil"
	"github.com/koinochrista/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterHeatingRoutes registers the routes for heating readings with
// the RouterGroup that is passed.
func RegisterHeatingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsHeatingList)
		r.GET("", GetHeatingReadings)
		r.PUT("", ReplaceHeatingReadings)
	}

	// Heating reading with ID
	{
		r.OPTIONS("/:id", OptionsHeatingDetail)
		r.GET("/:id", GetHeatingReading)
		r.DELETE("/:id", DeleteHeatingReading)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Heating
// @Success		204
// @Router			/v1/heating [options]
func OptionsHeatingList(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Heating
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/heating/{id} [options]
func OptionsHeatingDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.HeatingReading{})
}

// @Summary		List heating readings
// @Description	Returns all heating readings together with their total cost
// @Tags			Heating
// @Produce		json
// @Success		200	{object}	HeatingReadingListResponse
// @Failure		500	{object}	HeatingReadingListResponse
// @Router			/v1/heating [get]
func GetHeatingReadings(c *gin.Context) {
	var readings []models.HeatingReading
	err := models.DB.Order("apartment_code ASC").Find(&readings).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HeatingReadingListResponse{
			Error: &s,
		})
		return
	}

	apiResources := make([]HeatingReading, 0)
	for _, reading := range readings {
		apiResources = append(apiResources, newHeatingReading(c, reading))
	}

	c.JSON(http.StatusOK, HeatingReadingListResponse{
		Data:  apiResources,
		Total: models.TotalHeatingCost(readings),
	})
}

// @Summary		Replace heating readings
// @Description	Replaces the full set of heating readings. The readings describe one distribution round, so partial updates are not supported.
// @Tags			Heating
// @Accept			json
// @Produce		json
// @Success		200			{object}	HeatingReadingCreateResponse
// @Failure		400			{object}	HeatingReadingCreateResponse
// @Failure		500			{object}	HeatingReadingCreateResponse
// @Param			readings	body		[]HeatingReadingEditable	true	"Heating readings"
// @Router			/v1/heating [put]
func ReplaceHeatingReadings(c *gin.Context) {
	var editables []HeatingReadingEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HeatingReadingCreateResponse{
			Error: &e,
		})
		return
	}

	readings := make([]models.HeatingReading, 0, len(editables))
	for _, editable := range editables {
		readings = append(readings, editable.model())
	}

	err = models.DB.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("1 = 1").Delete(&models.HeatingReading{}).Error
		if err != nil {
			return err
		}

		for i := range readings {
			err = tx.Create(&readings[i]).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), HeatingReadingCreateResponse{
			Error: &e,
		})
		return
	}

	r := HeatingReadingCreateResponse{}
	for _, reading := range readings {
		data := newHeatingReading(c, reading)
		r.Data = append(r.Data, HeatingReadingResponse{Data: &data})
	}

	c.JSON(http.StatusOK, r)
}

// @Summary		Get heating reading
// @Description	Returns a specific heating reading
// @Tags			Heating
// @Produce		json
// @Success		200	{object}	HeatingReadingResponse
// @Failure		400	{object}	HeatingReadingResponse
// @Failure		404	{object}	HeatingReadingResponse
// @Failure		500	{object}	HeatingReadingResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/heating/{id} [get]
func GetHeatingReading(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HeatingReadingResponse{
			Error: &s,
		})
		return
	}

	var reading models.HeatingReading
	err = models.DB.First(&reading, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), HeatingReadingResponse{
			Error: &s,
		})
		return
	}

	apiResource := newHeatingReading(c, reading)
	c.JSON(http.StatusOK, HeatingReadingResponse{Data: &apiResource})
}

// @Summary		Delete heating reading
// @Description	Deletes a heating reading
// @Tags			Heating
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/heating/{id} [delete]
func DeleteHeatingReading(c *gin.Context) {
	deleteResource[models.HeatingReading](c)
}
