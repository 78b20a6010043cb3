package models

import "encoding/json"

// Exportable is implemented by all models that can be exported as part of an
// archive snapshot.
type Exportable interface {
	Export() (json.RawMessage, error)
}

// Registry contains an instance of each model, used to iterate over all
// models for exports and similar operations.
var Registry = []Exportable{
	Expense{},
	Apartment{},
	HeatingReading{},
	BuildingInfo{},
	CalculationPeriod{},
	MatchRule{},
}
