package models_test

import (
	"github.com/koinochrista/backend/internal/models"
	"github.com/koinochrista/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestExpenseTrimWhitespace() {
	expense := suite.createTestExpense(models.Expense{
		Code:        " DEH-11/2025 ",
		Category:    "  Electricity",
		Description: "Stairwell electricity\t",
		Amount:      decimal.NewFromFloat(104.32),
	})

	assert := suite.Assert()
	assert.Equal("DEH-11/2025", expense.Code)
	assert.Equal("Electricity", expense.Category)
	assert.Equal("Stairwell electricity", expense.Description)
}

func (suite *TestSuiteStandard) TestExpenseAmountNegative() {
	err := models.DB.Create(&models.Expense{
		Description:  "Refund gone wrong",
		CostCategory: types.CostCommon,
		Amount:       decimal.NewFromFloat(-1),
	}).Error

	suite.Assert().ErrorIs(err, models.ErrExpenseAmountNegative)
}

func (suite *TestSuiteStandard) TestExpenseUnknownCostCategory() {
	err := models.DB.Create(&models.Expense{
		Description:  "Mystery bill",
		CostCategory: 99,
		Amount:       decimal.NewFromFloat(10),
	}).Error

	suite.Assert().ErrorIs(err, types.ErrUnknownCostCategory)
}

func (suite *TestSuiteStandard) TestExpenseDateDefault() {
	expense := suite.createTestExpense(models.Expense{Description: "No date set"})

	suite.Assert().False(expense.Date.IsZero())
}

// Expenses that are part of a period must not change anymore.
func (suite *TestSuiteStandard) TestExpenseLocked() {
	expense := suite.createTestExpense(models.Expense{
		Description: "Locked",
		Amount:      decimal.NewFromFloat(100),
	})
	suite.createTestApartment(models.Apartment{Code: "A1"})

	period := models.CalculationPeriod{
		Name:       "November 2025",
		ExpenseIDs: types.IDList{expense.ID},
	}
	err := models.CreateCalculationPeriod(models.DB, &period, []models.Expense{expense}, types.PaymentList{})
	suite.Require().Nil(err)

	var locked models.Expense
	suite.Require().Nil(models.DB.First(&locked, expense.ID).Error)
	suite.Require().NotNil(locked.PeriodID)

	err = models.DB.Model(&locked).Select("", "Description").Updates(models.Expense{Description: "Changed"}).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseLocked)

	err = models.DB.Delete(&locked).Error
	suite.Assert().ErrorIs(err, models.ErrExpenseLocked)
}

func (suite *TestSuiteStandard) TestExpensesByIDs() {
	first := suite.createTestExpense(models.Expense{Description: "First"})
	second := suite.createTestExpense(models.Expense{Description: "Second"})

	expenses, err := models.ExpensesByIDs(models.DB, types.IDList{first.ID, second.ID})
	suite.Require().Nil(err)
	suite.Assert().Len(expenses, 2)

	_, err = models.ExpensesByIDs(models.DB, types.IDList{first.ID, 4096})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestTotalOf() {
	expenses := []models.Expense{
		{Amount: decimal.NewFromFloat(100)},
		{Amount: decimal.NewFromFloat(23.45)},
	}

	suite.Assert().True(models.TotalOf(expenses).Equal(decimal.NewFromFloat(123.45)))
}
