package v1

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/koinochrista/backend/internal/calculation"
	"github.com/koinochrista/backend/internal/httputil"
	"github.com/koinochrista/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterApartmentRoutes registers the routes for apartments with
// the RouterGroup that is passed.
func RegisterApartmentRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsApartmentList)
		r.GET("", GetApartments)
		r.POST("", CreateApartments)
	}

	// Coefficient table operations
	{
		r.OPTIONS("/coefficients", OptionsCoefficients)
		r.GET("/coefficients", GetCoefficientSums)
		r.OPTIONS("/fill-equal", OptionsFillEqual)
		r.POST("/fill-equal", FillEqualShares)
	}

	// Apartment with ID
	{
		r.OPTIONS("/:id", OptionsApartmentDetail)
		r.GET("/:id", GetApartment)
		r.PATCH("/:id", UpdateApartment)
		r.DELETE("/:id", DeleteApartment)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Apartments
// @Success		204
// @Router			/v1/apartments [options]
func OptionsApartmentList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Apartments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/apartments/{id} [options]
func OptionsApartmentDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Apartment{})
}

// @Summary		Create apartments
// @Description	Creates new apartments
// @Tags			Apartments
// @Accept			json
// @Produce		json
// @Success		201			{object}	ApartmentCreateResponse
// @Failure		400			{object}	ApartmentCreateResponse
// @Failure		409			{object}	ApartmentCreateResponse
// @Failure		500			{object}	ApartmentCreateResponse
// @Param			apartments	body		[]ApartmentEditable	true	"Apartments"
// @Router			/v1/apartments [post]
func CreateApartments(c *gin.Context) {
	var editables []ApartmentEditable

	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ApartmentCreateResponse{
			Error: &e,
		})
		return
	}

	status := http.StatusCreated
	r := ApartmentCreateResponse{}

	for _, editable := range editables {
		apartment := editable.model()

		err := models.DB.Create(&apartment).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newApartment(c, apartment)
		r.Data = append(r.Data, ApartmentResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List apartments
// @Description	Returns a list of apartments
// @Tags			Apartments
// @Produce		json
// @Success		200	{object}	ApartmentListResponse
// @Failure		500	{object}	ApartmentListResponse
// @Router			/v1/apartments [get]
// @Param			code	query	string	false	"Filter by code"
// @Param			floor	query	string	false	"Filter by floor"
// @Param			search	query	string	false	"Search for this text in owner and occupant names"
// @Param			offset	query	uint	false	"The offset of the first apartment returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of apartments to return. Defaults to 50."
func GetApartments(c *gin.Context) {
	var filter ApartmentQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Always sort by code
	q := models.DB.
		Order("code ASC").
		Where(filter.model(), queryFields...)

	if filter.Code != "" {
		q = q.Where("code LIKE ?", "%"+filter.Code+"%")
	} else if slices.Contains(setFields, "Code") {
		q = q.Where("code = ''")
	}

	if filter.Search != "" {
		like := fmt.Sprintf("%%%s%%", filter.Search)
		q = q.Where(
			models.DB.Where("owner_name LIKE ?", like).Or(
				models.DB.Where("occupant_name LIKE ?", like),
			),
		)
	}

	q = q.Offset(int(filter.Offset))

	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var apartments []models.Apartment
	err := q.Find(&apartments).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApartmentListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ApartmentListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Apartment, 0)
	for _, apartment := range apartments {
		apiResources = append(apiResources, newApartment(c, apartment))
	}

	c.JSON(http.StatusOK, ApartmentListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get apartment
// @Description	Returns a specific apartment
// @Tags			Apartments
// @Produce		json
// @Success		200	{object}	ApartmentResponse
// @Failure		400	{object}	ApartmentResponse
// @Failure		404	{object}	ApartmentResponse
// @Failure		500	{object}	ApartmentResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/apartments/{id} [get]
func GetApartment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApartmentResponse{
			Error: &s,
		})
		return
	}

	var apartment models.Apartment
	err = models.DB.First(&apartment, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApartmentResponse{
			Error: &s,
		})
		return
	}

	apiResource := newApartment(c, apartment)
	c.JSON(http.StatusOK, ApartmentResponse{Data: &apiResource})
}

// @Summary		Update apartment
// @Description	Update an existing apartment. Only values to be updated need to be specified.
// @Tags			Apartments
// @Accept			json
// @Produce		json
// @Success		200			{object}	ApartmentResponse
// @Failure		400			{object}	ApartmentResponse
// @Failure		404			{object}	ApartmentResponse
// @Failure		409			{object}	ApartmentResponse
// @Failure		500			{object}	ApartmentResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			apartment	body		ApartmentEditable	true	"Apartment"
// @Router			/v1/apartments/{id} [patch]
func UpdateApartment(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApartmentResponse{
			Error: &s,
		})
		return
	}

	var apartment models.Apartment
	err = models.DB.First(&apartment, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApartmentResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ApartmentEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApartmentResponse{
			Error: &s,
		})
		return
	}

	var data ApartmentEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApartmentResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&apartment).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ApartmentResponse{
			Error: &s,
		})
		return
	}

	apiResource := newApartment(c, apartment)
	c.JSON(http.StatusOK, ApartmentResponse{Data: &apiResource})
}

// @Summary		Delete apartment
// @Description	Deletes an apartment
// @Tags			Apartments
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/apartments/{id} [delete]
func DeleteApartment(c *gin.Context) {
	deleteResource[models.Apartment](c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Apartments
// @Success		204
// @Router			/v1/apartments/coefficients [options]
func OptionsCoefficients(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Coefficient column sums
// @Description	Returns, per coefficient category, the column sum over the matching apartments and whether it is within tolerance of 1000. A failing column is a warning, it does not block anything.
// @Tags			Apartments
// @Produce		json
// @Success		200	{object}	CoefficientSumsResponse
// @Failure		500	{object}	CoefficientSumsResponse
// @Router			/v1/apartments/coefficients [get]
// @Param			floor	query	string	false	"Restrict the check to one floor"
func GetCoefficientSums(c *gin.Context) {
	apartments, err := filteredApartments(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CoefficientSumsResponse{
			Error: &s,
		})
		return
	}

	sums := calculation.ColumnSums(apartments)
	categories := make([]string, 0, len(sums))
	for category := range sums {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	data := make([]CoefficientSum, 0, len(categories))
	for _, category := range categories {
		data = append(data, CoefficientSum{
			Category: category,
			Sum:      sums[category],
			Valid:    calculation.IsValidColumnSum(sums[category]),
		})
	}

	c.JSON(http.StatusOK, CoefficientSumsResponse{Data: data})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Apartments
// @Success		204
// @Router			/v1/apartments/fill-equal [options]
func OptionsFillEqual(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Fill equal shares
// @Description	Assigns 1000/n to the "equal" coefficient of every matching apartment, so that the column sums to 1000 when applied to the full set.
// @Tags			Apartments
// @Produce		json
// @Success		200	{object}	FillEqualResponse
// @Failure		400	{object}	FillEqualResponse
// @Failure		500	{object}	FillEqualResponse
// @Router			/v1/apartments/fill-equal [post]
// @Param			floor	query	string	false	"Restrict the fill to one floor"
func FillEqualShares(c *gin.Context) {
	apartments, err := filteredApartments(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FillEqualResponse{
			Error: &s,
		})
		return
	}

	value := calculation.FillEqualShares(apartments)

	for i := range apartments {
		err = models.DB.Model(&apartments[i]).Update("Coefficients", apartments[i].Coefficients).Error
		if err != nil {
			s := err.Error()
			c.JSON(status(err), FillEqualResponse{
				Error: &s,
			})
			return
		}
	}

	data := FillEqualResult{
		Value:      value,
		Apartments: len(apartments),
	}
	c.JSON(http.StatusOK, FillEqualResponse{Data: &data})
}

// filteredApartments loads the apartments the coefficient table operations
// work on, optionally restricted to one floor. The same subset is used for
// the column sum check and the equal-share fill.
func filteredApartments(c *gin.Context) ([]models.Apartment, error) {
	var params struct {
		Floor string `form:"floor"`
	}

	_ = c.Bind(&params)

	q := models.DB.Order("code ASC")
	if params.Floor != "" {
		q = q.Where("floor = ?", params.Floor)
	}

	var apartments []models.Apartment
	err := q.Find(&apartments).Error
	if err != nil {
		return nil, err
	}

	return apartments, nil
}
