package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/koinochrista/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense is a single cost of the building, e.g. one electricity bill.
//
// While an expense is part of a calculation period, it is locked: it cannot
// be edited or deleted, and its PeriodID does not change until the period is
// deleted.
type Expense struct {
	Model
	Code         string             `json:"code" example:"DEH-11/2025"`                        // Short reference, usually the bill number
	Category     string             `json:"category" example:"Electricity"`                    // Free text category for bookkeeping
	Description  string             `json:"description" example:"Stairwell electricity"`       // Description of the expense
	CostCategory types.CostCategory `json:"costCategory" gorm:"index" example:"14"`            // Code deciding which coefficient the expense is prorated against
	Amount       decimal.Decimal    `json:"amount" gorm:"type:DECIMAL(20,8)" example:"104.32"` // Amount in the building's currency
	Date         time.Time          `json:"date" example:"2025-11-02T00:00:00Z"`               // Date of the expense
	PeriodID     *uint64            `json:"periodId" gorm:"index" example:"3"`                 // ID of the calculation period the expense belongs to, if any
}

func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Code = strings.TrimSpace(e.Code)
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)

	if e.Amount.IsNegative() {
		return ErrExpenseAmountNegative
	}

	if _, err := e.CostCategory.Coefficient(); err != nil {
		return err
	}

	if e.Date.IsZero() {
		e.Date = time.Now().In(time.UTC)
	} else {
		e.Date = e.Date.In(time.UTC)
	}

	return nil
}

// BeforeUpdate blocks edits of locked expenses. The period ledger itself is
// exempt since assigning and clearing the PeriodID is how expenses get locked
// and unlocked in the first place.
func (e *Expense) BeforeUpdate(tx *gorm.DB) error {
	if e.PeriodID != nil && !tx.Statement.Changed("PeriodID") {
		return ErrExpenseLocked
	}

	return nil
}

func (e *Expense) BeforeDelete(_ *gorm.DB) error {
	if e.PeriodID != nil {
		return ErrExpenseLocked
	}

	return nil
}

// AfterFind updates the date to use UTC as timezone, see Model.AfterFind.
func (e *Expense) AfterFind(tx *gorm.DB) error {
	_ = e.Model.AfterFind(tx)
	e.Date = e.Date.In(time.UTC)

	return nil
}

// Export returns all expenses on this instance for export.
func (Expense) Export() (json.RawMessage, error) {
	var expenses []Expense
	err := DB.Unscoped().Where(&Expense{}).Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&expenses)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}

// ExpensesByIDs loads the expenses with the given IDs, in ID order. All IDs
// must exist.
func ExpensesByIDs(db *gorm.DB, ids types.IDList) ([]Expense, error) {
	var expenses []Expense
	err := db.Where("id IN ?", []uint64(ids)).Order("id ASC").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	found := make(map[uint64]bool, len(expenses))
	for _, expense := range expenses {
		found[expense.ID] = true
	}

	for _, id := range ids {
		if !found[id] {
			return nil, fmt.Errorf("%w expense with ID %d", ErrResourceNotFound, id)
		}
	}

	return expenses, nil
}

// TotalOf returns the sum of the amounts of all given expenses.
func TotalOf(expenses []Expense) decimal.Decimal {
	total := decimal.Zero
	for _, expense := range expenses {
		total = total.Add(expense.Amount)
	}

	return total
}
