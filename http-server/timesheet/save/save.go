package save

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-chi/render"
	"log/slog"
	"muebles-backend/internal/storage"
	"net/http"
	"strconv"
	"time"
)

type TimesheetStorage interface {
	ClockIn(ctx context.Context, workerID int64, at time.Time) (int64, error)
	ClockOut(ctx context.Context, workerID int64, at time.Time) error
}

type Request struct {
	WorkerID int64 `json:"worker_id"`
}

type Response struct {
	EntryID int64  `json:"entry_id,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error"`
}

func ClockInOperation(log *slog.Logger, res TimesheetStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.timesheet.save.ClockInOperation"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.WorkerID == 0 {
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		entryID, err := res.ClockIn(ctx, req.WorkerID, time.Now().UTC())
		if err != nil {
			if errors.Is(err, storage.ErrAlreadyClockedIn) {
				w.WriteHeader(http.StatusConflict)
				render.JSON(w, r, Response{Error: "worker already clocked in"})
				return
			}
			log.Error("failed to clock in", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			EntryID: entryID,
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}

func ClockOutOperation(log *slog.Logger, res TimesheetStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.timesheet.save.ClockOutOperation"

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.WorkerID == 0 {
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err := res.ClockOut(ctx, req.WorkerID, time.Now().UTC())
		if err != nil {
			if errors.Is(err, storage.ErrNotClockedIn) {
				w.WriteHeader(http.StatusConflict)
				render.JSON(w, r, Response{Error: "worker is not clocked in"})
				return
			}
			log.Error("failed to clock out", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{Status: strconv.Itoa(http.StatusOK)})
	}
}
