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

// ExpenseEditable represents all user configurable parameters of an expense
type ExpenseEditable struct {
	Code         string             `json:"code" example:"DEH-11/2025" default:""`                  // Short reference, usually the bill number
	Category     string             `json:"category" example:"Electricity" default:""`              // Free text category for bookkeeping
	Description  string             `json:"description" example:"Stairwell electricity" default:""` // Description of the expense
	CostCategory types.CostCategory `json:"costCategory" example:"14" default:"14"`                 // Cost category code, one of 12, 13, 14, 16
	Amount       decimal.Decimal    `json:"amount" example:"104.32" default:"0"`                    // Amount of the expense
	Date         time.Time          `json:"date" example:"2025-11-02T00:00:00Z"`                    // Date of the expense
}

func (editable ExpenseEditable) model() models.Expense {
	return models.Expense{
		Code:         editable.Code,
		Category:     editable.Category,
		Description:  editable.Description,
		CostCategory: editable.CostCategory,
		Amount:       editable.Amount,
		Date:         editable.Date,
	}
}

type ExpenseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/expenses/7"` // The expense itself
}

type Expense struct {
	models.Model
	ExpenseEditable
	PeriodID *uint64      `json:"periodId" example:"3"` // ID of the calculation period the expense is locked into, if any
	Links    ExpenseLinks `json:"links"`
}

func newExpense(c *gin.Context, model models.Expense) Expense {
	url := httputil.RequestHost(c)

	return Expense{
		Model: model.Model,
		ExpenseEditable: ExpenseEditable{
			Code:         model.Code,
			Category:     model.Category,
			Description:  model.Description,
			CostCategory: model.CostCategory,
			Amount:       model.Amount,
			Date:         model.Date,
		},
		PeriodID: model.PeriodID,
		Links: ExpenseLinks{
			Self: fmt.Sprintf("%s/v1/expenses/%d", url, model.ID),
		},
	}
}

type ExpenseListResponse struct {
	Data       []Expense   `json:"data"`                                                  // List of expenses
	Error      *string     `json:"error" example:"the specified resource ID is not a valid number"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                            // Pagination information
}

type ExpenseCreateResponse struct {
	Data  []ExpenseResponse `json:"data"`  // List of the created expenses or their respective error
	Error *string           `json:"error"` // The error, if any occurred
}

func (r *ExpenseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, ExpenseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ExpenseResponse struct {
	Data  *Expense `json:"data"`  // Data for the expense
	Error *string  `json:"error"` // The error, if any occurred
}

type ExpenseQueryFilter struct {
	Code         string    `form:"code" filterField:"false"`        // By code
	Category     string    `form:"category" filterField:"false"`    // By category
	Description  string    `form:"description" filterField:"false"` // By description
	CostCategory int       `form:"costCategory"`                    // By cost category code
	PeriodID     uint64    `form:"period"`                          // By calculation period
	Available    bool      `form:"available" filterField:"false"`   // Only expenses not part of any period
	Search       string    `form:"search" filterField:"false"`      // Search for this text in description and category
	FromDate     time.Time `form:"fromDate" filterField:"false"`    // Expenses at and after this date
	UntilDate    time.Time `form:"untilDate" filterField:"false"`   // Expenses before and at this date
	Offset       uint      `form:"offset" filterField:"false"`      // The offset of the first expense returned. Defaults to 0.
	Limit        int       `form:"limit" filterField:"false"`       // Maximum number of expenses to return. Defaults to 50.
}

func (f ExpenseQueryFilter) model() models.Expense {
	var periodID *uint64
	if f.PeriodID != 0 {
		periodID = &f.PeriodID
	}

	return models.Expense{
		CostCategory: types.CostCategory(f.CostCategory),
		PeriodID:     periodID,
	}
}

// ExpenseSuggestionResponse is the response for the cost category suggestion
// endpoint.
type ExpenseSuggestionResponse struct {
	Data  *ExpenseSuggestion `json:"data"`  // The suggestion, if a rule matched
	Error *string            `json:"error"` // The error, if any occurred
}

type ExpenseSuggestion struct {
	CostCategory types.CostCategory `json:"costCategory" example:"12"`   // Suggested cost category code
	Label        string             `json:"label" example:"Elevator"`    // Human readable name of the cost category
	RuleID       uint64             `json:"ruleId" example:"2"`          // ID of the match rule that matched
}
