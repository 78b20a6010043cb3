package calculation

import (
	"sort"

	"github.com/koinochrista/backend/internal/models"
	"github.com/koinochrista/backend/internal/types"
	"github.com/shopspring/decimal"
)

// columnTolerance is the allowed floating point drift when checking that a
// coefficient column sums to 1000.
var columnTolerance = decimal.NewFromFloat(0.01)

// ColumnSum sums one coefficient category over the given apartments.
func ColumnSum(apartments []models.Apartment, category string) decimal.Decimal {
	sum := decimal.Zero
	for _, apartment := range apartments {
		sum = sum.Add(apartment.Coefficients.Get(category))
	}

	return sum
}

// ColumnSums sums every coefficient category that appears on any of the
// given apartments.
func ColumnSums(apartments []models.Apartment) map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, apartment := range apartments {
		for category, value := range apartment.Coefficients {
			sums[category] = sums[category].Add(value)
		}
	}

	return sums
}

// IsValidColumnSum reports whether a column sum is close enough to 1000 to
// distribute costs fully. A failing column is a warning, the engine still
// computes shares with it.
func IsValidColumnSum(sum decimal.Decimal) bool {
	return sum.Sub(perMille).Abs().LessThanOrEqual(columnTolerance)
}

// InvalidColumns returns the categories whose column does not sum to 1000,
// in lexical order.
func InvalidColumns(apartments []models.Apartment) []string {
	var invalid []string
	for category, sum := range ColumnSums(apartments) {
		if !IsValidColumnSum(sum) {
			invalid = append(invalid, category)
		}
	}

	sort.Strings(invalid)
	return invalid
}

// FillEqualShares assigns 1000/n to the "equal" category of every apartment
// in the given set and returns the assigned value. Applied to the full
// apartment set, the column then sums to 1000 up to floating point rounding.
func FillEqualShares(apartments []models.Apartment) decimal.Decimal {
	if len(apartments) == 0 {
		return decimal.Zero
	}

	value := perMille.Div(decimal.NewFromInt(int64(len(apartments))))
	for i := range apartments {
		apartments[i].Coefficients.Set(types.CategoryEqual, value)
	}

	return value
}
