package models_test

import (
	"github.com/koinochrista/backend/internal/models"
	"github.com/koinochrista/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) closeTestPeriod(name string, expenses []models.Expense) models.CalculationPeriod {
	ids := make(types.IDList, 0, len(expenses))
	for _, expense := range expenses {
		ids = append(ids, expense.ID)
	}

	period := models.CalculationPeriod{
		Name:       name,
		ExpenseIDs: ids,
	}

	err := models.CreateCalculationPeriod(models.DB, &period, expenses, types.PaymentList{})
	if err != nil {
		suite.Assert().FailNow("CalculationPeriod could not be saved", "Error: %s, CalculationPeriod: %#v", err, period)
	}

	return period
}

func (suite *TestSuiteStandard) TestPeriodNameMissing() {
	expense := suite.createTestExpense(models.Expense{Description: "Water"})

	period := models.CalculationPeriod{ExpenseIDs: types.IDList{expense.ID}}
	err := models.CreateCalculationPeriod(models.DB, &period, []models.Expense{expense}, types.PaymentList{})

	suite.Assert().ErrorIs(err, models.ErrPeriodNameMissing)
}

func (suite *TestSuiteStandard) TestPeriodEmpty() {
	period := models.CalculationPeriod{Name: "Empty"}
	err := models.CreateCalculationPeriod(models.DB, &period, nil, types.PaymentList{})

	suite.Assert().ErrorIs(err, models.ErrPeriodEmpty)
}

// Closing a period locks its expenses and stamps the total.
func (suite *TestSuiteStandard) TestPeriodLocksExpenses() {
	first := suite.createTestExpense(models.Expense{Description: "Cleaning", Amount: decimal.NewFromFloat(100)})
	second := suite.createTestExpense(models.Expense{Description: "Electricity", Amount: decimal.NewFromFloat(40.20)})

	period := suite.closeTestPeriod("November 2025", []models.Expense{first, second})
	suite.Assert().True(period.TotalAmount.Equal(decimal.NewFromFloat(140.20)))

	for _, id := range []uint64{first.ID, second.ID} {
		var expense models.Expense
		suite.Require().Nil(models.DB.First(&expense, id).Error)
		suite.Require().NotNil(expense.PeriodID)
		suite.Assert().Equal(period.ID, *expense.PeriodID)
	}

	available, err := models.AvailableExpenses(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Empty(available)
}

// An expense can be part of at most one period.
func (suite *TestSuiteStandard) TestPeriodExpenseReuse() {
	expense := suite.createTestExpense(models.Expense{Description: "Cleaning", Amount: decimal.NewFromFloat(100)})
	suite.closeTestPeriod("November 2025", []models.Expense{expense})

	period := models.CalculationPeriod{
		Name:       "December 2025",
		ExpenseIDs: types.IDList{expense.ID},
	}
	err := models.CreateCalculationPeriod(models.DB, &period, []models.Expense{expense}, types.PaymentList{})

	suite.Assert().ErrorIs(err, models.ErrExpenseAlreadyUsed)
}

func (suite *TestSuiteStandard) TestPeriodImmutable() {
	expense := suite.createTestExpense(models.Expense{Description: "Cleaning"})
	period := suite.closeTestPeriod("November 2025", []models.Expense{expense})

	err := models.DB.Model(&period).Select("", "Name").Updates(models.CalculationPeriod{Name: "Renamed"}).Error
	suite.Assert().ErrorIs(err, models.ErrPeriodImmutable)
}

// Deleting a period returns its expenses to the available pool.
func (suite *TestSuiteStandard) TestPeriodDelete() {
	expense := suite.createTestExpense(models.Expense{Description: "Cleaning", Amount: decimal.NewFromFloat(100)})
	period := suite.closeTestPeriod("November 2025", []models.Expense{expense})

	err := models.DeleteCalculationPeriod(models.DB, period.ID)
	suite.Require().Nil(err)

	var restored models.Expense
	suite.Require().Nil(models.DB.First(&restored, expense.ID).Error)
	suite.Assert().Nil(restored.PeriodID)

	available, err := models.AvailableExpenses(models.DB)
	suite.Require().Nil(err)
	suite.Assert().Len(available, 1)
}

func (suite *TestSuiteStandard) TestPeriodDeleteNotExisting() {
	err := models.DeleteCalculationPeriod(models.DB, 4096)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

// The snapshot is stored as given and never recomputed on read.
func (suite *TestSuiteStandard) TestPeriodSnapshotFrozen() {
	expense := suite.createTestExpense(models.Expense{Description: "Cleaning", Amount: decimal.NewFromFloat(100)})

	payments := types.PaymentList{
		{
			ApartmentID: 1,
			Code:        "A1",
			Shares:      map[string]decimal.Decimal{types.CategoryCommon: decimal.NewFromFloat(60)},
			TotalShare:  decimal.NewFromFloat(60),
		},
	}

	period := models.CalculationPeriod{
		Name:       "November 2025",
		ExpenseIDs: types.IDList{expense.ID},
	}
	suite.Require().Nil(models.CreateCalculationPeriod(models.DB, &period, []models.Expense{expense}, payments))

	var reloaded models.CalculationPeriod
	suite.Require().Nil(models.DB.First(&reloaded, period.ID).Error)

	suite.Require().Len(reloaded.TenantPayments, 1)
	suite.Assert().Equal("A1", reloaded.TenantPayments[0].Code)
	suite.Assert().True(reloaded.TenantPayments[0].TotalShare.Equal(decimal.NewFromFloat(60)))
}
