package get

import (
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"muebles-backend/internal/storage"
	"net/http"
	"strconv"
	"time"
)

type TimesheetStorage interface {
	GetTimeEntries(ctx context.Context, workerID int64, from, to time.Time) ([]storage.TimeEntry, error)
}

type Response struct {
	Entries []storage.TimeEntry `json:"entries"`
	Status  string              `json:"status"`
	Error   string              `json:"error"`
}

// GetTimeEntries lists punches for a date range, optionally filtered
// to one worker.
func GetTimeEntries(log *slog.Logger, res TimesheetStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.timesheet.get.GetTimeEntries"

		from, err := time.Parse("2006-01-02", r.URL.Query().Get("from"))
		if err != nil {
			http.Error(w, "Invalid from date", http.StatusBadRequest)
			return
		}

		to, err := time.Parse("2006-01-02", r.URL.Query().Get("to"))
		if err != nil {
			http.Error(w, "Invalid to date", http.StatusBadRequest)
			return
		}

		var workerID int64
		if workerStr := r.URL.Query().Get("worker_id"); workerStr != "" {
			workerID, err = strconv.ParseInt(workerStr, 10, 64)
			if err != nil {
				http.Error(w, "Invalid worker_id", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entries, err := res.GetTimeEntries(ctx, workerID, from, to.AddDate(0, 0, 1))
		if err != nil {
			log.Error("failed to load time entries", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "failed to load time entries"})
			return
		}

		render.JSON(w, r, Response{
			Entries: entries,
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}
