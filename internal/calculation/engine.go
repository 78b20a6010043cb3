// Package calculation implements the proration engine: distributing a set of
// expenses over the apartments of the building according to their per-mille
// coefficients.
//
// The package is pure, it never touches the database. Callers load the
// records and persist the results.
package calculation

import (
	"sort"

	"github.com/koinochrista/backend/internal/models"
	"github.com/koinochrista/backend/internal/types"
	"github.com/shopspring/decimal"
)

// perMille is the scale of the coefficients: an apartment holding the whole
// building would have a coefficient of 1000.
var perMille = decimal.NewFromInt(1000)

// Epsilon is the largest difference between the distributed total and the
// expense total that is considered rounding noise. Anything larger is
// surfaced to the caller as a consistency warning.
var Epsilon = decimal.NewFromFloat(0.01)

// ComputeShares computes the share of every apartment for the given expenses.
//
// Expenses are partitioned by the coefficient category their cost category
// code maps to, and each apartment is charged categoryTotal * coefficient /
// 1000 per category. Heating readings are not prorated: they are flat
// charges added to the apartment with the matching code.
//
// Every apartment gets a result, even with all-zero coefficients. The output
// is deterministic for identical inputs: apartments keep their input order
// and categories are processed in lexical order.
func ComputeShares(expenses []models.Expense, apartments []models.Apartment, heating []models.HeatingReading) ([]types.ApartmentShare, error) {
	categoryTotals := make(map[string]decimal.Decimal)
	for _, expense := range expenses {
		category, err := expense.CostCategory.Coefficient()
		if err != nil {
			return nil, err
		}

		categoryTotals[category] = categoryTotals[category].Add(expense.Amount)
	}

	categories := make([]string, 0, len(categoryTotals))
	for category := range categoryTotals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	heatingByCode := make(map[string]decimal.Decimal)
	for _, reading := range heating {
		heatingByCode[reading.ApartmentCode] = heatingByCode[reading.ApartmentCode].Add(reading.Cost)
	}

	shares := make([]types.ApartmentShare, 0, len(apartments))
	for _, apartment := range apartments {
		share := types.ApartmentShare{
			ApartmentID: apartment.ID,
			Code:        apartment.Code,
			Floor:       apartment.Floor,
			OwnerName:   apartment.Owner.Name,
			Shares:      make(map[string]decimal.Decimal, len(categories)),
			HeatingCost: heatingByCode[apartment.Code],
		}

		total := decimal.Zero
		for _, category := range categories {
			amount := categoryTotals[category].Mul(apartment.Coefficients.Get(category)).Div(perMille)
			share.Shares[category] = amount
			total = total.Add(amount)
		}

		share.TotalShare = total.Add(share.HeatingCost)
		shares = append(shares, share)
	}

	return shares, nil
}

// Residual returns the difference between the sum of all computed total
// shares and the sum of the prorated expense amounts plus all heating
// charges the shares include.
//
// A non-zero residual means the coefficient columns do not sum to 1000: the
// building distributes more or less than it spent. It is reported as a
// warning, never as an error.
func Residual(shares []types.ApartmentShare, expenses []models.Expense) decimal.Decimal {
	distributed := decimal.Zero
	heating := decimal.Zero
	for _, share := range shares {
		distributed = distributed.Add(share.TotalShare)
		heating = heating.Add(share.HeatingCost)
	}

	return distributed.Sub(models.TotalOf(expenses)).Sub(heating)
}

// ExceedsEpsilon reports whether the residual is large enough to warn about.
func ExceedsEpsilon(residual decimal.Decimal) bool {
	return residual.Abs().GreaterThan(Epsilon)
}
