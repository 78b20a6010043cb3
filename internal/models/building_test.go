package models_test

import (
	"github.com/koinochrista/backend/internal/models"
)

// The building info row is created on first access and reused afterwards.
func (suite *TestSuiteStandard) TestBuildingInfoSingleton() {
	first, err := models.GetBuildingInfo(models.DB)
	suite.Require().Nil(err)

	second, err := models.GetBuildingInfo(models.DB)
	suite.Require().Nil(err)

	suite.Assert().Equal(first.ID, second.ID)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.BuildingInfo{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}
