package services

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"tracker/src/schemas"
	"tracker/src/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"
)

// ExportService serializes report documents to XLSX, PDF and CSV. It formats
// only; every number comes precomputed in the document.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

// PeriodDataframe lays the period series out as a matrix, one row per period.
// Both the XLSX and CSV exporters render from this frame so the two formats
// can never disagree.
func (s *ExportService) PeriodDataframe(report *schemas.PeriodReport) dataframe.DataFrame {
	n := len(report.Periods)
	labels := make([]string, n)
	startValues := make([]float64, n)
	endValues := make([]float64, n)
	growth := make([]float64, n)
	growthPct := make([]float64, n)
	txCounts := make([]int, n)
	txTotals := make([]float64, n)

	for i, p := range report.Periods {
		labels[i] = p.Label
		startValues[i] = utils.RoundCurrency(p.StartValue)
		endValues[i] = utils.RoundCurrency(p.EndValue)
		growth[i] = utils.RoundCurrency(p.Growth)
		growthPct[i] = utils.RoundCurrency(p.GrowthPercentage)
		txCounts[i] = p.TransactionCount
		txTotals[i] = utils.RoundCurrency(p.TransactionTotal)
	}

	return dataframe.New(
		series.New(labels, series.String, "Period"),
		series.New(startValues, series.Float, "StartValue"),
		series.New(endValues, series.Float, "EndValue"),
		series.New(growth, series.Float, "Growth"),
		series.New(growthPct, series.Float, "GrowthPct"),
		series.New(txCounts, series.Int, "Transactions"),
		series.New(txTotals, series.Float, "TransactionTotal"),
	)
}

func (s *ExportService) GenerateXLSX(doc *schemas.ReportDocument) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := s.writeSummarySheet(f, doc); err != nil {
		return nil, err
	}
	if err := s.writeDataframeSheet(f, "Periods", s.PeriodDataframe(doc.Periods)); err != nil {
		return nil, err
	}
	if err := s.writeHoldingsSheet(f, doc); err != nil {
		return nil, err
	}
	if err := s.writeDistributionSheet(f, doc); err != nil {
		return nil, err
	}

	if err := s.applyStylesToAllSheets(f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *ExportService) writeSummarySheet(f *excelize.File, doc *schemas.ReportDocument) error {
	sheetName := "Summary"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Generated", doc.GeneratedAt.Format(utils.ShortDashDateLayout)},
		{"Total Value", doc.Summary.TotalValue},
		{"Total Invested", doc.Summary.TotalInvested},
		{"Total Gain/Loss", doc.Summary.TotalGainLoss},
		{"Gain/Loss %", doc.Summary.GainLossPercentage},
		{"Holdings", doc.Summary.HoldingCount},
		{"Active Holdings", doc.Summary.ActiveCount},
		{"Transactions", doc.Summary.TransactionCount},
	}
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeDataframeSheet(f *excelize.File, sheetName string, df dataframe.DataFrame) error {
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	defer f.SetActiveSheet(index)

	for rowIndex, record := range df.Records() {
		for colIndex, cellValue := range record {
			cell := fmt.Sprintf("%s%d", toAlphaString(colIndex+1), rowIndex+1)
			if numValue, err := strconv.ParseFloat(cellValue, 64); err == nil && rowIndex > 0 {
				if err := f.SetCellValue(sheetName, cell, numValue); err != nil {
					return err
				}
			} else {
				if err := f.SetCellValue(sheetName, cell, cellValue); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (s *ExportService) writeHoldingsSheet(f *excelize.File, doc *schemas.ReportDocument) error {
	sheetName := "Holdings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	defer f.SetActiveSheet(index)

	header := []interface{}{"Name", "Category", "Status", "Purchase Date", "Initial Amount", "Current Value"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	for i, h := range doc.Holdings {
		row := []interface{}{
			h.Name, h.Category, h.Status,
			h.PurchaseDate.Format(utils.ShortDashDateLayout),
			utils.RoundCurrency(h.InitialAmount),
			utils.RoundCurrency(h.CurrentValue),
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) writeDistributionSheet(f *excelize.File, doc *schemas.ReportDocument) error {
	sheetName := "Distribution"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}
	defer f.SetActiveSheet(index)

	header := []interface{}{"Group", "Count", "Total Value", "Percentage"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}
	for i, bucket := range doc.Distribution {
		row := []interface{}{
			bucket.Label, bucket.Count,
			utils.RoundCurrency(bucket.TotalValue),
			utils.RoundCurrency(bucket.Percentage),
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func (s *ExportService) applyStylesToAllSheets(f *excelize.File) error {
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6E6E6"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return err
	}

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			continue
		}

		// The Summary sheet is label/value pairs with no header row.
		if sheetName != "Summary" {
			lastCol := toAlphaString(len(rows[0]))
			if err := f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle); err != nil {
				return err
			}
		}
		for i := 1; i <= len(rows[0]); i++ {
			colName := toAlphaString(i)
			if err := f.SetColWidth(sheetName, colName, colName, 18); err != nil {
				return err
			}
		}
	}
	return nil
}

// GeneratePDF renders the report document as a simple tabular PDF.
func (s *ExportService) GeneratePDF(doc *schemas.ReportDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Portfolio Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, "Generated: "+doc.GeneratedAt.Format(utils.ShortDashDateLayout))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Summary")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	summaryLines := []string{
		fmt.Sprintf("Total Value: %.2f", doc.Summary.TotalValue),
		fmt.Sprintf("Total Invested: %.2f", doc.Summary.TotalInvested),
		fmt.Sprintf("Total Gain/Loss: %.2f (%.2f%%)", doc.Summary.TotalGainLoss, doc.Summary.GainLossPercentage),
		fmt.Sprintf("Holdings: %d (%d active)", doc.Summary.HoldingCount, doc.Summary.ActiveCount),
	}
	for _, line := range summaryLines {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Periods")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "B", 9)
	widths := []float64{30, 32, 32, 32, 28}
	headers := []string{"Period", "Start Value", "End Value", "Growth", "Growth %"}
	for i, h := range headers {
		pdf.CellFormat(widths[i], 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, p := range doc.Periods.Periods {
		cells := []string{
			p.Label,
			fmt.Sprintf("%.2f", p.StartValue),
			fmt.Sprintf("%.2f", p.EndValue),
			fmt.Sprintf("%.2f", p.Growth),
			fmt.Sprintf("%.2f", p.GrowthPercentage),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 6, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateCSV writes the period series as CSV from the shared dataframe.
func (s *ExportService) GenerateCSV(w io.Writer, doc *schemas.ReportDocument) error {
	df := s.PeriodDataframe(doc.Periods)
	records := df.Records()
	if len(records) == 0 {
		return nil
	}
	return utils.WriteCSV(w, records[0], records[1:])
}

func toAlphaString(column int) string {
	result := ""
	for column > 0 {
		column--
		result = string(rune('A'+column%26)) + result
		column /= 26
	}
	return result
}
