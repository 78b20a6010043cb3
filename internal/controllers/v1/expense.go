package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/koinochrista/backend/internal/greek"
	"github.com/koinochrista/backend/internal/httputil"
	"github.com/koinochrista/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterExpenseRoutes registers the routes for expenses with
// the RouterGroup that is passed.
func RegisterExpenseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsExpenseList)
		r.GET("", GetExpenses)
		r.POST("", CreateExpenses)
	}

	// Suggestion endpoint
	{
		r.OPTIONS("/suggest", OptionsExpenseSuggest)
		r.GET("/suggest", SuggestCostCategory)
	}

	// Expense with ID
	{
		r.OPTIONS("/:id", OptionsExpenseDetail)
		r.GET("/:id", GetExpense)
		r.PATCH("/:id", UpdateExpense)
		r.DELETE("/:id", DeleteExpense)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses [options]
func OptionsExpenseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [options]
func OptionsExpenseDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Expense{})
}

// @Summary		Create expenses
// @Description	Creates new expenses
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		201			{object}	ExpenseCreateResponse
// @Failure		400			{object}	ExpenseCreateResponse
// @Failure		500			{object}	ExpenseCreateResponse
// @Param			expenses	body		[]ExpenseEditable	true	"Expenses"
// @Router			/v1/expenses [post]
func CreateExpenses(c *gin.Context) {
	var editables []ExpenseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ExpenseCreateResponse{}

	for _, editable := range editables {
		expense := editable.model()

		err := models.DB.Create(&expense).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newExpense(c, expense)
		r.Data = append(r.Data, ExpenseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		List expenses
// @Description	Returns a list of expenses
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseListResponse
// @Failure		500	{object}	ExpenseListResponse
// @Router			/v1/expenses [get]
// @Param			code			query	string	false	"Filter by code"
// @Param			category		query	string	false	"Filter by category"
// @Param			description		query	string	false	"Filter by description"
// @Param			costCategory	query	int		false	"Filter by cost category code"
// @Param			period			query	uint	false	"Filter by calculation period"
// @Param			available		query	bool	false	"Only list expenses that are not part of any period"
// @Param			search			query	string	false	"Search for this text in description and category"
// @Param			fromDate		query	string	false	"Expenses at and after this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			untilDate		query	string	false	"Expenses before and at this date. Ignores exact time, matches on the day of the RFC3339 timestamp provided."
// @Param			offset			query	uint	false	"The offset of the first expense returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of expenses to return. Defaults to 50."
func GetExpenses(c *gin.Context) {
	var filter ExpenseQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we're filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	// Newest expenses first
	q := models.DB.
		Order("date DESC, id DESC").
		Where(filter.model(), queryFields...)

	q = stringFilters(models.DB, q, setFields, filter.Description, filter.Category, filter.Search)

	if filter.Code != "" {
		q = q.Where("code LIKE ?", "%"+filter.Code+"%")
	} else if slices.Contains(setFields, "Code") {
		q = q.Where("code = ''")
	}

	// Filter for the dates. The date filters are ignored if they are not set
	if !filter.FromDate.IsZero() {
		q = q.Where("date >= date(?)", time.Date(filter.FromDate.Year(), filter.FromDate.Month(), filter.FromDate.Day(), 0, 0, 0, 0, time.UTC))
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("date < date(?)", time.Date(filter.UntilDate.Year(), filter.UntilDate.Month(), filter.UntilDate.Day()+1, 0, 0, 0, 0, time.UTC))
	}

	// Availability is decided against the union of all periods' expense IDs,
	// not against the PeriodID column.
	if filter.Available {
		used, err := models.UsedExpenseIDs(models.DB)
		if err != nil {
			s := err.Error()
			c.JSON(status(err), ExpenseListResponse{
				Error: &s,
			})
			return
		}

		if len(used) > 0 {
			q = q.Where("id NOT IN ?", []uint64(used))
		}
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 expenses and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var expenses []models.Expense
	err := q.Find(&expenses).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExpenseListResponse{
			Error: &e,
		})
		return
	}

	apiResources := make([]Expense, 0)
	for _, expense := range expenses {
		apiResources = append(apiResources, newExpense(c, expense))
	}

	c.JSON(http.StatusOK, ExpenseListResponse{
		Data: apiResources,
		Pagination: &Pagination{
			Count:  len(apiResources),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get expense
// @Description	Returns a specific expense
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseResponse
// @Failure		400	{object}	ExpenseResponse
// @Failure		404	{object}	ExpenseResponse
// @Failure		500	{object}	ExpenseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [get]
func GetExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	apiResource := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// @Summary		Update expense
// @Description	Update an existing expense. Only values to be updated need to be specified. Expenses that are part of a calculation period cannot be updated.
// @Tags			Expenses
// @Accept			json
// @Produce		json
// @Success		200		{object}	ExpenseResponse
// @Failure		400		{object}	ExpenseResponse
// @Failure		404		{object}	ExpenseResponse
// @Failure		409		{object}	ExpenseResponse
// @Failure		500		{object}	ExpenseResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			expense	body		ExpenseEditable	true	"Expense"
// @Router			/v1/expenses/{id} [patch]
func UpdateExpense(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var expense models.Expense
	err = models.DB.First(&expense, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ExpenseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	var data ExpenseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&expense).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseResponse{
			Error: &s,
		})
		return
	}

	apiResource := newExpense(c, expense)
	c.JSON(http.StatusOK, ExpenseResponse{Data: &apiResource})
}

// @Summary		Delete expense
// @Description	Deletes an expense. Expenses that are part of a calculation period cannot be deleted.
// @Tags			Expenses
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/expenses/{id} [delete]
func DeleteExpense(c *gin.Context) {
	deleteResource[models.Expense](c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Expenses
// @Success		204
// @Router			/v1/expenses/suggest [options]
func OptionsExpenseSuggest(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Suggest cost category
// @Description	Suggests a cost category code for an expense description using the configured match rules. Matching ignores case and Greek diacritics.
// @Tags			Expenses
// @Produce		json
// @Success		200	{object}	ExpenseSuggestionResponse
// @Failure		400	{object}	ExpenseSuggestionResponse
// @Failure		404	{object}	ExpenseSuggestionResponse
// @Failure		500	{object}	ExpenseSuggestionResponse
// @Param			description	query	string	true	"The expense description to classify"
// @Router			/v1/expenses/suggest [get]
func SuggestCostCategory(c *gin.Context) {
	var params struct {
		Description string `form:"description"`
	}

	_ = c.Bind(&params)
	if params.Description == "" {
		s := errDescriptionNotSet.Error()
		c.JSON(http.StatusBadRequest, ExpenseSuggestionResponse{
			Error: &s,
		})
		return
	}

	var rules []models.MatchRule
	err := models.DB.Order("priority ASC, id ASC").Find(&rules).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ExpenseSuggestionResponse{
			Error: &s,
		})
		return
	}

	for _, rule := range rules {
		if glob.Glob(greek.Fold(rule.Match), greek.Fold(params.Description)) {
			data := ExpenseSuggestion{
				CostCategory: rule.CostCategory,
				Label:        rule.CostCategory.Label(),
				RuleID:       rule.ID,
			}
			c.JSON(http.StatusOK, ExpenseSuggestionResponse{Data: &data})
			return
		}
	}

	s := errNoRuleMatches.Error()
	c.JSON(http.StatusNotFound, ExpenseSuggestionResponse{
		Error: &s,
	})
}
