package generate_excel

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

type GenerateExcelHandler interface {
	DailyPlanExcel(ctx context.Context, date time.Time) ([]byte, error)
}

// GenerateReportExcel streams the daily plan workbook for the
// requested date (defaults to today).
func GenerateReportExcel(log *slog.Logger, gen GenerateExcelHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.generate-report.GenerateReportExcel"

		dateStr := r.URL.Query().Get("date")

		date := time.Now().UTC().Truncate(24 * time.Hour)
		if dateStr != "" {
			var err error
			date, err = time.Parse("2006-01-02", dateStr)
			if err != nil {
				http.Error(w, "invalid date", http.StatusBadRequest)
				return
			}
		}

		// Excel generation gets a longer budget than the JSON
		// endpoints.
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		excelBytes, err := gen.DailyPlanExcel(ctx, date)
		if err != nil {
			log.Error("failed to generate excel", "op", op, "err", err)
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		fileName := fmt.Sprintf("Plan_%s.xlsx", date.Format("2006-01-02"))

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", "attachment; filename="+fileName)
		w.Write(excelBytes)
	}
}
