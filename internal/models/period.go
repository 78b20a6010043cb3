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

// CalculationPeriod is a named, immutable batch of expenses together with the
// frozen per-apartment payment breakdown that was computed when the period
// was saved.
//
// The snapshot in TenantPayments is never recomputed: it records what the
// apartments actually owed at the time, even if coefficients change later.
type CalculationPeriod struct {
	Model
	Name           string            `json:"name" example:"November 2025"`                           // User supplied name of the period
	Date           time.Time         `json:"date" example:"2025-11-30T00:00:00Z"`                    // Date of the calculation
	ExpenseIDs     types.IDList      `json:"expenseIds"`                                             // IDs of the expenses included in the period
	TotalAmount    decimal.Decimal   `json:"totalAmount" gorm:"type:DECIMAL(20,8)" example:"740.20"` // Sum of the amounts of all included expenses
	TenantPayments types.PaymentList `json:"tenantPayments"`                                         // Frozen per-apartment payment snapshot
}

func (p *CalculationPeriod) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)

	if p.Name == "" {
		return ErrPeriodNameMissing
	}

	if len(p.ExpenseIDs) == 0 {
		return ErrPeriodEmpty
	}

	if p.Date.IsZero() {
		p.Date = time.Now().In(time.UTC)
	} else {
		p.Date = p.Date.In(time.UTC)
	}

	return nil
}

// BeforeUpdate blocks all in-place changes. Changing the composition of a
// period means deleting and recreating it.
func (p *CalculationPeriod) BeforeUpdate(_ *gorm.DB) error {
	return ErrPeriodImmutable
}

// AfterFind updates the date to use UTC as timezone, see Model.AfterFind.
func (p *CalculationPeriod) AfterFind(tx *gorm.DB) error {
	_ = p.Model.AfterFind(tx)
	p.Date = p.Date.In(time.UTC)

	return nil
}

// UsedExpenseIDs returns the union of the expense IDs of all calculation
// periods. Availability of an expense is always decided against this union,
// not against the PeriodID field, so a stale PeriodID can never double-book
// an expense.
func UsedExpenseIDs(db *gorm.DB) (types.IDList, error) {
	var periods []CalculationPeriod
	err := db.Find(&periods).Error
	if err != nil {
		return nil, err
	}

	var used types.IDList
	for _, period := range periods {
		for _, id := range period.ExpenseIDs {
			if !used.Contains(id) {
				used = append(used, id)
			}
		}
	}

	return used, nil
}

// AvailableExpenses returns all expenses that are not part of any calculation
// period.
func AvailableExpenses(db *gorm.DB) ([]Expense, error) {
	used, err := UsedExpenseIDs(db)
	if err != nil {
		return nil, err
	}

	var expenses []Expense
	q := db.Order("id ASC")
	if len(used) > 0 {
		q = q.Where("id NOT IN ?", []uint64(used))
	}

	err = q.Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// CreateCalculationPeriod validates and saves a new calculation period and
// locks its expenses, all in one transaction.
//
// The caller supplies the frozen payment snapshot, computed by the
// calculation engine from the expenses the period contains.
func CreateCalculationPeriod(db *gorm.DB, period *CalculationPeriod, expenses []Expense, payments types.PaymentList) error {
	used, err := UsedExpenseIDs(db)
	if err != nil {
		return err
	}

	for _, id := range period.ExpenseIDs {
		if used.Contains(id) {
			return fmt.Errorf("%w: expense %d", ErrExpenseAlreadyUsed, id)
		}
	}

	period.TotalAmount = TotalOf(expenses)
	period.TenantPayments = payments

	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Create(period).Error
		if err != nil {
			return err
		}

		for _, expense := range expenses {
			err = tx.Model(&expense).Update("PeriodID", period.ID).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteCalculationPeriod deletes a period and returns its expenses to the
// available pool by clearing their PeriodID.
func DeleteCalculationPeriod(db *gorm.DB, id uint64) error {
	var period CalculationPeriod
	err := db.First(&period, id).Error
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var expenses []Expense
		err := tx.Where("period_id = ?", period.ID).Find(&expenses).Error
		if err != nil {
			return err
		}

		for _, expense := range expenses {
			err = tx.Model(&expense).Update("PeriodID", nil).Error
			if err != nil {
				return err
			}
		}

		return tx.Delete(&period).Error
	})
}

// Export returns all calculation periods on this instance for export.
func (CalculationPeriod) Export() (json.RawMessage, error) {
	var periods []CalculationPeriod
	err := DB.Unscoped().Where(&CalculationPeriod{}).Find(&periods).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&periods)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
