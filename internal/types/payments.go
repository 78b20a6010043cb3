package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// ApartmentShare is the computed share of one apartment for a set of
// expenses. It is both the result type of the proration engine and the
// element type of the snapshot frozen into a CalculationPeriod.
type ApartmentShare struct {
	ApartmentID uint64                     `json:"apartmentId" example:"4"`           // ID of the apartment
	Code        string                     `json:"code" example:"A1"`                 // Display code of the apartment
	Floor       string                     `json:"floor" example:"1"`                 // Floor of the apartment
	OwnerName   string                     `json:"ownerName" example:"M. Papadopoulou"`
	Shares      map[string]decimal.Decimal `json:"shares"`                            // Prorated share per coefficient category
	HeatingCost decimal.Decimal            `json:"heatingCost" example:"50"`          // Flat heating charge for the apartment
	TotalShare  decimal.Decimal            `json:"totalShare" example:"110.5"`        // Sum of all shares plus the heating charge
}

// PaymentList is a frozen list of apartment shares, stored as a JSON array.
//
// It is written exactly once when a CalculationPeriod is created and is never
// recomputed afterwards, so it stays consistent with history even when
// coefficients change later.
type PaymentList []ApartmentShare

// Total returns the sum of all total shares in the list.
func (l PaymentList) Total() decimal.Decimal {
	total := decimal.Zero
	for _, share := range l {
		total = total.Add(share.TotalShare)
	}

	return total
}

// Scan reads the JSON representation from the database.
func (l *PaymentList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into PaymentList", value)
	}

	if len(raw) == 0 {
		*l = nil
		return nil
	}

	return json.Unmarshal(raw, l)
}

// Value returns the JSON representation for the SQL driver to write to the database.
func (l PaymentList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	raw, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}

	return string(raw), nil
}

// GormDataType defines the data type used by gorm for the type.
func (PaymentList) GormDataType() string {
	return "text"
}
