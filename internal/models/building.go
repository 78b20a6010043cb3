package models

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

// BuildingInfo holds the master data of the building. There is exactly one
// row; multi-building support is out of scope.
type BuildingInfo struct {
	Model
	Address   string `json:"address" example:"Example Street 32, Athens"`
	Manager   string `json:"manager" example:"K. Ioannou"`   // Name of the building manager
	Processor string `json:"processor" example:"G. Nikolaou"` // Name of the person doing the bookkeeping
	Note      string `json:"note"`
}

// GetBuildingInfo returns the building info, creating the singleton row on
// first access.
func GetBuildingInfo(db *gorm.DB) (BuildingInfo, error) {
	var info BuildingInfo

	err := db.First(&info).Error
	if err != nil {
		if !errors.Is(err, ErrResourceNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
			return BuildingInfo{}, err
		}

		err = db.Create(&info).Error
		if err != nil {
			return BuildingInfo{}, err
		}
	}

	return info, nil
}

// Export returns the building info on this instance for export.
func (BuildingInfo) Export() (json.RawMessage, error) {
	var info []BuildingInfo
	err := DB.Unscoped().Where(&BuildingInfo{}).Find(&info).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&info)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
