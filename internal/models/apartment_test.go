package models_test

import (
	"github.com/koinochrista/backend/internal/models"
	"github.com/koinochrista/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestApartmentCodeMissing() {
	err := models.DB.Create(&models.Apartment{Code: "   "}).Error

	suite.Assert().ErrorIs(err, models.ErrApartmentCodeMissing)
}

func (suite *TestSuiteStandard) TestApartmentCodeNotUnique() {
	suite.createTestApartment(models.Apartment{Code: "A1"})

	err := models.DB.Create(&models.Apartment{Code: "A1"}).Error
	suite.Assert().ErrorIs(err, models.ErrApartmentCodeNotUnique)
}

func (suite *TestSuiteStandard) TestApartmentNegativeCoefficient() {
	err := models.DB.Create(&models.Apartment{
		Code: "B2",
		Coefficients: types.Coefficients{
			types.CategoryCommon: decimal.NewFromFloat(-10),
		},
	}).Error

	suite.Assert().NotNil(err)
}

// Coefficient categories beyond the ones the engine prorates with must
// survive a round trip through the database.
func (suite *TestSuiteStandard) TestApartmentCustomCoefficients() {
	apartment := suite.createTestApartment(models.Apartment{
		Code: "C3",
		Coefficients: types.Coefficients{
			types.CategoryCommon: decimal.NewFromFloat(250),
			"fi":                 decimal.NewFromFloat(300),
		},
	})

	var reloaded models.Apartment
	suite.Require().Nil(models.DB.First(&reloaded, apartment.ID).Error)

	suite.Assert().True(reloaded.Coefficients.Get("fi").Equal(decimal.NewFromFloat(300)))
	suite.Assert().True(reloaded.Coefficients.Get("unset").IsZero())
}
