package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/koinochrista/backend/internal/httputil"
	"github.com/koinochrista/backend/internal/models"
)

// RegisterBuildingRoutes registers the routes for the building info with
// the RouterGroup that is passed.
func RegisterBuildingRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBuilding)
	r.GET("", GetBuildingInfo)
	r.PUT("", UpdateBuildingInfo)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Building
// @Success		204
// @Router			/v1/building [options]
func OptionsBuilding(c *gin.Context) {
	httputil.OptionsGetPut(c)
}

// @Summary		Get building info
// @Description	Returns the building master data. The record is created empty on first access.
// @Tags			Building
// @Produce		json
// @Success		200	{object}	BuildingInfoResponse
// @Failure		500	{object}	BuildingInfoResponse
// @Router			/v1/building [get]
func GetBuildingInfo(c *gin.Context) {
	info, err := models.GetBuildingInfo(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BuildingInfoResponse{
			Error: &s,
		})
		return
	}

	apiResource := newBuildingInfo(info)
	c.JSON(http.StatusOK, BuildingInfoResponse{Data: &apiResource})
}

// @Summary		Update building info
// @Description	Replaces the building master data
// @Tags			Building
// @Accept			json
// @Produce		json
// @Success		200			{object}	BuildingInfoResponse
// @Failure		400			{object}	BuildingInfoResponse
// @Failure		500			{object}	BuildingInfoResponse
// @Param			building	body		BuildingInfoEditable	true	"Building info"
// @Router			/v1/building [put]
func UpdateBuildingInfo(c *gin.Context) {
	info, err := models.GetBuildingInfo(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BuildingInfoResponse{
			Error: &s,
		})
		return
	}

	var data BuildingInfoEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BuildingInfoResponse{
			Error: &s,
		})
		return
	}

	// PUT replaces the whole record, empty fields included
	err = models.DB.Model(&info).Select("Address", "Manager", "Processor", "Note").Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BuildingInfoResponse{
			Error: &s,
		})
		return
	}

	apiResource := newBuildingInfo(info)
	c.JSON(http.StatusOK, BuildingInfoResponse{Data: &apiResource})
}
