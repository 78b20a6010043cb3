package types

import (
	"errors"
	"fmt"
)

// CostCategory is the integer tag on an expense that decides which
// coefficient category it is prorated against. The codes are the column
// numbers of the building's paper per-mille table.
type CostCategory int

const (
	CostElevator CostCategory = 12 // Prorated with the "elevator" coefficient
	CostGarden   CostCategory = 13 // Garden and other costs, billed like common charges
	CostCommon   CostCategory = 14 // Prorated with the "common" coefficient
	CostHeating  CostCategory = 16 // Prorated with the "heating" coefficient
)

// ErrUnknownCostCategory is returned for cost category codes that are not in
// the classification table. Unknown codes are never silently billed against a
// default coefficient, as that would mischarge apartments.
var ErrUnknownCostCategory = errors.New("unknown cost category code")

type costCategoryInfo struct {
	coefficient string
	label       string
}

var costCategories = map[CostCategory]costCategoryInfo{
	CostElevator: {coefficient: CategoryElevator, label: "Elevator"},
	CostGarden:   {coefficient: CategoryCommon, label: "Garden/Other"},
	CostCommon:   {coefficient: CategoryCommon, label: "Common charges"},
	CostHeating:  {coefficient: CategoryHeating, label: "Heating"},
}

// Coefficient returns the coefficient category the cost category is prorated
// against.
func (c CostCategory) Coefficient() (string, error) {
	info, ok := costCategories[c]
	if !ok {
		return "", fmt.Errorf("%w: %d", ErrUnknownCostCategory, c)
	}

	return info.coefficient, nil
}

// Label returns the human readable name of the cost category.
func (c CostCategory) Label() string {
	info, ok := costCategories[c]
	if !ok {
		return fmt.Sprintf("Unknown (%d)", c)
	}

	return info.label
}

// Valid reports whether the cost category code is in the classification table.
func (c CostCategory) Valid() bool {
	_, ok := costCategories[c]
	return ok
}

// CostCategories returns all known cost category codes in ascending order.
func CostCategories() []CostCategory {
	return []CostCategory{CostElevator, CostGarden, CostCommon, CostHeating}
}
