package report

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"muebles-backend/internal/storage"
)

type ReportStorage interface {
	GetAssignmentsByDate(ctx context.Context, date time.Time) ([]storage.AssignmentRow, error)
}

type ReportService struct {
	storage ReportStorage
}

func NewReportService(storage ReportStorage) *ReportService {
	return &ReportService{storage: storage}
}

// DailyPlanExcel renders the production plan of one date as an xlsx
// workbook, one row per assignment, grouped by worker the way the
// storage already sorts them.
func (g *ReportService) DailyPlanExcel(ctx context.Context, date time.Time) ([]byte, error) {
	const op = "service.report.DailyPlanExcel"

	rows, err := g.storage.GetAssignmentsByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("%s: fetch data: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Plan " + date.Format("2006-01-02")
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	headers := []string{"Worker", "Order", "Product", "Units", "Completed", "Status"}
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), headerStyle)

	for rowIdx, a := range rows {
		rowNum := rowIdx + 2

		f.SetCellValue(sheet, cellName(1, rowNum), a.WorkerName)
		f.SetCellValue(sheet, cellName(2, rowNum), a.OrderNum)
		f.SetCellValue(sheet, cellName(3, rowNum), a.Product)
		f.SetCellValue(sheet, cellName(4, rowNum), a.UnitsTotal)
		f.SetCellValue(sheet, cellName(5, rowNum), a.UnitsCompleted)
		f.SetCellValue(sheet, cellName(6, rowNum), a.Status)
	}

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
	})

	f.SetColWidth(sheet, "A", "C", 25)
	f.SetColWidth(sheet, "D", "F", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
