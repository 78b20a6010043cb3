package v1

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/koinochrista/backend/internal/export"
	"github.com/koinochrista/backend/internal/httputil"
	"github.com/koinochrista/backend/internal/models"
)

// RegisterExportRoutes registers the routes for exports with the RouterGroup
// that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
	r.OPTIONS("/xlsx", OptionsExportXLSX)
	r.GET("/xlsx", GetExportXLSX)
}

type ExportResponse struct {
	Data  map[string]json.RawMessage `json:"data"`
	Error *string                    `json:"error" example:"an error occurred on the server during your request"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export/xlsx [options]
func OptionsExportXLSX(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export all data
// @Description	Returns all resources of this instance as one JSON document, keyed by resource type
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportResponse
// @Failure		500	{object}	ExportResponse
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	data := make(map[string]json.RawMessage, len(models.Registry))

	for _, model := range models.Registry {
		raw, err := model.Export()
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ExportResponse{
				Error: &e,
			})
			return
		}

		data[exportKey(model)] = raw
	}

	c.JSON(http.StatusOK, ExportResponse{Data: data})
}

// exportKey derives the JSON key for a model, e.g. "calculationPeriods" for
// models.CalculationPeriod.
func exportKey(model models.Exportable) string {
	name := fmt.Sprintf("%T", model)
	name = strings.TrimPrefix(name, "models.")

	return strings.ToLower(name[:1]) + name[1:] + "s"
}

// @Summary		Export as spreadsheet
// @Description	Returns all resources of this instance as an xlsx workbook with one sheet per resource type
// @Tags			Export
// @Produce		application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success		200
// @Failure		500	{object}	httpError
// @Router			/v1/export/xlsx [get]
func GetExportXLSX(c *gin.Context) {
	var expenses []models.Expense
	err := models.DB.Order("date ASC, id ASC").Find(&expenses).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var apartments []models.Apartment
	err = models.DB.Order("code ASC").Find(&apartments).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var readings []models.HeatingReading
	err = models.DB.Order("apartment_code ASC").Find(&readings).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var periods []models.CalculationPeriod
	err = models.DB.Order("date ASC, id ASC").Find(&periods).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	workbook, err := export.BuildArchiveXLSX(expenses, apartments, readings, periods)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	filename := fmt.Sprintf("koinochrista-%s.xlsx", time.Now().In(time.UTC).Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", workbook)
}
