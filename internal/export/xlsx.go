// Package export renders archive snapshots and period notices into the file
// formats the building manager actually hands out: XLSX for the bookkeeping
// archive and PDF for the notice pinned to the lobby board.
package export

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/koinochrista/backend/internal/models"
	"github.com/xuri/excelize/v2"
)

// BuildArchiveXLSX renders all collections into one workbook with a sheet
// per collection.
func BuildArchiveXLSX(expenses []models.Expense, apartments []models.Apartment, heating []models.HeatingReading, periods []models.CalculationPeriod) ([]byte, error) {
	f := excelize.NewFile()

	expenseSheet := "Expenses"
	f.SetSheetName("Sheet1", expenseSheet)

	headers := []string{"ID", "Code", "Category", "Description", "Cost category", "Amount", "Date", "Period ID"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(expenseSheet, cell, header)
	}

	for i, expense := range expenses {
		row := i + 2
		_ = f.SetCellValue(expenseSheet, fmt.Sprintf("A%d", row), expense.ID)
		_ = f.SetCellValue(expenseSheet, fmt.Sprintf("B%d", row), expense.Code)
		_ = f.SetCellValue(expenseSheet, fmt.Sprintf("C%d", row), expense.Category)
		_ = f.SetCellValue(expenseSheet, fmt.Sprintf("D%d", row), expense.Description)
		_ = f.SetCellValue(expenseSheet, fmt.Sprintf("E%d", row), fmt.Sprintf("%d - %s", expense.CostCategory, expense.CostCategory.Label()))
		_ = f.SetCellValue(expenseSheet, fmt.Sprintf("F%d", row), expense.Amount.InexactFloat64())
		_ = f.SetCellValue(expenseSheet, fmt.Sprintf("G%d", row), expense.Date.Format("2006-01-02"))
		if expense.PeriodID != nil {
			_ = f.SetCellValue(expenseSheet, fmt.Sprintf("H%d", row), *expense.PeriodID)
		}
	}

	apartmentSheet := "Apartments"
	_, err := f.NewSheet(apartmentSheet)
	if err != nil {
		return nil, err
	}

	// Collect the union of coefficient categories so custom columns are
	// exported too.
	categorySet := make(map[string]struct{})
	for _, apartment := range apartments {
		for category := range apartment.Coefficients {
			categorySet[category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(categorySet))
	for category := range categorySet {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	headers = []string{"ID", "Code", "Floor", "Area", "Owner", "Owner phone", "Occupant", "Occupant phone"}
	for _, category := range categories {
		headers = append(headers, "Coeff. "+category)
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(apartmentSheet, cell, header)
	}

	for i, apartment := range apartments {
		row := i + 2
		values := []any{
			apartment.ID,
			apartment.Code,
			apartment.Floor,
			apartment.Area.InexactFloat64(),
			apartment.Owner.Name,
			apartment.Owner.Phone,
			apartment.Occupant.Name,
			apartment.Occupant.Phone,
		}
		for _, category := range categories {
			values = append(values, apartment.Coefficients.Get(category).InexactFloat64())
		}

		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(apartmentSheet, cell, value)
		}
	}

	heatingSheet := "Heating"
	_, err = f.NewSheet(heatingSheet)
	if err != nil {
		return nil, err
	}

	_ = f.SetCellValue(heatingSheet, "A1", "Apartment code")
	_ = f.SetCellValue(heatingSheet, "B1", "Cost")
	for i, reading := range heating {
		row := i + 2
		_ = f.SetCellValue(heatingSheet, fmt.Sprintf("A%d", row), reading.ApartmentCode)
		_ = f.SetCellValue(heatingSheet, fmt.Sprintf("B%d", row), reading.Cost.InexactFloat64())
	}

	periodSheet := "Periods"
	_, err = f.NewSheet(periodSheet)
	if err != nil {
		return nil, err
	}

	_ = f.SetCellValue(periodSheet, "A1", "ID")
	_ = f.SetCellValue(periodSheet, "B1", "Name")
	_ = f.SetCellValue(periodSheet, "C1", "Date")
	_ = f.SetCellValue(periodSheet, "D1", "Expenses")
	_ = f.SetCellValue(periodSheet, "E1", "Total amount")
	for i, period := range periods {
		row := i + 2
		_ = f.SetCellValue(periodSheet, fmt.Sprintf("A%d", row), period.ID)
		_ = f.SetCellValue(periodSheet, fmt.Sprintf("B%d", row), period.Name)
		_ = f.SetCellValue(periodSheet, fmt.Sprintf("C%d", row), period.Date.Format("2006-01-02"))
		_ = f.SetCellValue(periodSheet, fmt.Sprintf("D%d", row), len(period.ExpenseIDs))
		_ = f.SetCellValue(periodSheet, fmt.Sprintf("E%d", row), period.TotalAmount.InexactFloat64())
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
