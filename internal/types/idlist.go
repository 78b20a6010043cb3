package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/slices"
)

// IDList is a list of resource IDs stored as a JSON array.
//
// CalculationPeriods use it to record which expenses they contain.
type IDList []uint64

// Contains reports whether the list contains the given ID.
func (l IDList) Contains(id uint64) bool {
	return slices.Contains(l, id)
}

// Scan reads the JSON representation from the database.
func (l *IDList) Scan(value any) error {
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
		return fmt.Errorf("cannot scan %T into IDList", value)
	}

	if len(raw) == 0 {
		*l = nil
		return nil
	}

	return json.Unmarshal(raw, l)
}

// Value returns the JSON representation for the SQL driver to write to the database.
func (l IDList) Value() (driver.Value, error) {
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
func (IDList) GormDataType() string {
	return "text"
}
