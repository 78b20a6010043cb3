package export

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/koinochrista/backend/internal/models"
)

// BuildPeriodNoticePDF renders the payment notice for one calculation
// period: the table of per-apartment amounts that gets pinned to the lobby
// board.
func BuildPeriodNoticePDF(building models.BuildingInfo, period models.CalculationPeriod) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "B", 14)
	pdf.AddPage()

	pdf.Cell(0, 8, "Shared expense notice")
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 10)
	if building.Address != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Building: %s", building.Address))
		pdf.Ln(5)
	}
	if building.Manager != "" {
		pdf.Cell(0, 6, fmt.Sprintf("Manager: %s", building.Manager))
		pdf.Ln(5)
	}
	pdf.Cell(0, 6, fmt.Sprintf("Period: %s", period.Name))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", period.Date.Format("2006-01-02")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Expenses included: %d", len(period.ExpenseIDs)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Total amount: %s", period.TotalAmount.StringFixed(2)))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().In(time.UTC).Format(time.RFC3339)))
	pdf.Ln(8)

	// One column per coefficient category that appears in the snapshot.
	categorySet := make(map[string]struct{})
	for _, payment := range period.TenantPayments {
		for category := range payment.Shares {
			categorySet[category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(categorySet))
	for category := range categorySet {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	colWidth := 150.0 / float64(len(categories)+2)

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(20, 6, "Apt.", "1", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "Floor", "1", 0, "C", false, 0, "")
	for _, category := range categories {
		pdf.CellFormat(colWidth, 6, category, "1", 0, "C", false, 0, "")
	}
	pdf.CellFormat(colWidth, 6, "Heating", "1", 0, "C", false, 0, "")
	pdf.CellFormat(colWidth, 6, "Total", "1", 0, "C", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, payment := range period.TenantPayments {
		pdf.CellFormat(20, 6, payment.Code, "1", 0, "C", false, 0, "")
		pdf.CellFormat(20, 6, payment.Floor, "1", 0, "C", false, 0, "")
		for _, category := range categories {
			pdf.CellFormat(colWidth, 6, payment.Shares[category].StringFixed(2), "1", 0, "R", false, 0, "")
		}
		pdf.CellFormat(colWidth, 6, payment.HeatingCost.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colWidth, 6, payment.TotalShare.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetFont("Arial", "B", 9)
	pdf.CellFormat(40+colWidth*float64(len(categories)+1), 6, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(colWidth, 6, period.TenantPayments.Total().StringFixed(2), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	err := pdf.Output(&buf)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
