// Package types implements special types for the koinochrista backend.
package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Coefficient categories that the proration engine works with by default.
// Coefficients is an open mapping, so apartments can carry additional
// categories (e.g. "fi", "ei", "emergency") without any code changes.
const (
	CategoryCommon   = "common"
	CategoryElevator = "elevator"
	CategoryHeating  = "heating"
	CategoryEqual    = "equal"
)

// Coefficients maps a coefficient category to an apartment's per-mille share
// of that category. The full column over all apartments should sum to 1000.
type Coefficients map[string]decimal.Decimal

// Get returns the value for a category, defaulting to zero if it is not set.
func (c Coefficients) Get(category string) decimal.Decimal {
	if c == nil {
		return decimal.Zero
	}

	value, ok := c[category]
	if !ok {
		return decimal.Zero
	}

	return value
}

// Set stores the value for a category, allocating the map if needed.
func (c *Coefficients) Set(category string, value decimal.Decimal) {
	if *c == nil {
		*c = make(Coefficients)
	}

	(*c)[category] = value
}

// Scan reads the JSON representation from the database.
func (c *Coefficients) Scan(value any) error {
	if value == nil {
		*c = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Coefficients", value)
	}

	if len(raw) == 0 {
		*c = nil
		return nil
	}

	return json.Unmarshal(raw, c)
}

// Value returns the JSON representation for the SQL driver to write to the database.
func (c Coefficients) Value() (driver.Value, error) {
	if c == nil {
		return "{}", nil
	}

	raw, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}

	return string(raw), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Coefficients) GormDataType() string {
	return "text"
}

var errNegativeCoefficient = errors.New("coefficients must not be negative")

// Validate checks that no coefficient is negative.
func (c Coefficients) Validate() error {
	for category, value := range c {
		if value.IsNegative() {
			return fmt.Errorf("%w: %s is %s", errNegativeCoefficient, category, value)
		}
	}

	return nil
}
