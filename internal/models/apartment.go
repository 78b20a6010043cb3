package models

import (
	"encoding/json"
	"strings"

	"github.com/koinochrista/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Contact holds the contact details for an owner or occupant.
type Contact struct {
	Name   string `json:"name" example:"M. Papadopoulou"`
	Phone  string `json:"phone" example:"2101234567"`
	Mobile string `json:"mobile" example:"6941234567"`
}

// Apartment is one apartment of the building together with its distribution
// coefficients.
//
// Coefficients is an open mapping so that columns beyond the four the engine
// uses (e.g. "fi", "ei", "emergency") survive a round trip through the API.
type Apartment struct {
	Model
	Code         string             `json:"code" gorm:"uniqueIndex" example:"A1"`          // Unique display label, e.g. the door plate
	Floor        string             `json:"floor" example:"1"`                             // Floor of the apartment
	Area         decimal.Decimal    `json:"area" gorm:"type:DECIMAL(20,8)" example:"74.5"` // Area in square meters
	Owner        Contact            `json:"owner" gorm:"embedded;embeddedPrefix:owner_"`
	Occupant     Contact            `json:"occupant" gorm:"embedded;embeddedPrefix:occupant_"`
	Coefficients types.Coefficients `json:"coefficients"` // Per-mille share per coefficient category
}

func (a *Apartment) BeforeSave(_ *gorm.DB) error {
	a.Code = strings.TrimSpace(a.Code)
	a.Floor = strings.TrimSpace(a.Floor)

	if a.Code == "" {
		return ErrApartmentCodeMissing
	}

	return a.Coefficients.Validate()
}

// Export returns all apartments on this instance for export.
func (Apartment) Export() (json.RawMessage, error) {
	var apartments []Apartment
	err := DB.Unscoped().Where(&Apartment{}).Find(&apartments).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&apartments)
	if err != nil {
		return json.RawMessage{}, err
	}

	return json.RawMessage(j), nil
}
