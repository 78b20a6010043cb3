package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// HeatingReading is the heating charge of one apartment for the current
// period, as read from the building's heat meters.
//
// Heating is not prorated by coefficient: the cost is an absolute amount
// charged directly to the apartment with the matching code.
type HeatingReading struct {
	Model
	ApartmentCode string          `json:"apartmentCode" gorm:"index" example:"A1"`      // Code of the apartment the charge applies to
	Cost          decimal.Decimal `json:"cost" gorm:"type:DECIMAL(20,8)" example:"50"` // Absolute heating charge
}

func (h *HeatingReading) BeforeSave(_ *gorm.DB) error {
	h.ApartmentCode = strings.TrimSpace(h.ApartmentCode)

	if h.ApartmentCode == "" {
		return ErrHeatingApartmentCodeNeeded
	}

	if h.Cost.IsNegative() {
		return ErrHeatingCostNegative
	}

	return nil
}

// TotalHeatingCost returns the sum of the costs of all readings.
func TotalHeatingCost(readings []HeatingReading) decimal.Decimal {
	total := decimal.Zero
	for _, reading := range readings {
		total = total.Add(reading.Cost)
	}

	return total
}

// Export returns all heating readings on this instance for export.
func (HeatingReading) Export() (json.RawMessage, error) {
	var readings []HeatingReading
	err := DB.Unscoped().Where(&HeatingReading{}).Find(&readings).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&readings)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
