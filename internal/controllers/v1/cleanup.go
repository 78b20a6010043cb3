package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koinochrista/backend/internal/models"
	"gorm.io/gorm"
)

// RegisterCleanupRoutes registers the routes for cleanup with the RouterGroup
// that is passed.
func RegisterCleanupRoutes(r *gin.RouterGroup) {
	r.DELETE("", Cleanup)
}

// @Summary		Delete everything
// @Description	Permanently deletes all resources. Requires the confirmation query parameter to be set correctly.
// @Tags			v1
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			confirm	query	string	false	"Confirmation to delete all resources. Must have the value 'yes-please-delete-everything'"
// @Router			/v1 [delete]
func Cleanup(c *gin.Context) {
	var params struct {
		Confirm string `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != "yes-please-delete-everything" {
		c.JSON(http.StatusBadRequest, httpError{Error: errCleanupConfirmation.Error()})
		return
	}

	// The period rows go first so that the expense lock hooks do not get in
	// the way of the raw deletes.
	resources := []any{
		&models.CalculationPeriod{},
		&models.Expense{},
		&models.Apartment{},
		&models.HeatingReading{},
		&models.BuildingInfo{},
		&models.MatchRule{},
	}

	// A failure here is always a server-side problem, the request itself
	// cannot be at fault anymore.
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		for _, resource := range resources {
			err := tx.Session(&gorm.Session{SkipHooks: true}).Unscoped().Where("1 = 1").Delete(resource).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
