package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters applies the description/category and search filters to a
// query. Explicitly sending an empty filter value matches only empty fields.
func stringFilters(db, query *gorm.DB, setFields []string, description, category, search string) *gorm.DB {
	if description != "" {
		query = query.Where("description LIKE ?", fmt.Sprintf("%%%s%%", description))
	} else if slices.Contains(setFields, "Description") {
		query = query.Where("description = ''")
	}

	if category != "" {
		query = query.Where("category LIKE ?", fmt.Sprintf("%%%s%%", category))
	} else if slices.Contains(setFields, "Category") {
		query = query.Where("category = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("description LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("category LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
