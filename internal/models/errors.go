package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Expense errors
var (
	ErrExpenseAmountNegative = errors.New("expense amounts must not be negative")
	ErrExpenseLocked         = errors.New("the expense is part of a calculation period and cannot be changed")
	ErrExpenseAlreadyUsed    = errors.New("the expense is already part of another calculation period")
)

// Apartment errors
var (
	ErrApartmentCodeMissing   = errors.New("the apartment code must be set")
	ErrApartmentCodeNotUnique = errors.New("the apartment code is already in use")
)

// HeatingReading errors
var (
	ErrHeatingCostNegative        = errors.New("heating costs must not be negative")
	ErrHeatingApartmentCodeNeeded = errors.New("heating readings must reference an apartment code")
)

// CalculationPeriod errors
var (
	ErrPeriodNameMissing = errors.New("the calculation period name must be set")
	ErrPeriodEmpty       = errors.New("a calculation period must contain at least one expense")
	ErrPeriodImmutable   = errors.New("calculation periods cannot be changed, delete and recreate it instead")
)

// MatchRule errors
var (
	ErrMatchRulePatternMissing = errors.New("the match rule pattern must be set")
)

// conflictErrors contains all errors that are reported to clients as a
// conflict with existing state instead of an invalid request.
var conflictErrors = []error{
	ErrExpenseLocked,
	ErrExpenseAlreadyUsed,
	ErrApartmentCodeNotUnique,
	ErrPeriodImmutable,
}

// IsConflict reports whether err describes a conflict with existing state.
func IsConflict(err error) bool {
	for _, conflict := range conflictErrors {
		if errors.Is(err, conflict) {
			return true
		}
	}

	return false
}
