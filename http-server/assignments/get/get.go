package get

import (
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"muebles-backend/internal/storage"
	"net/http"
	"time"
)

type AssignmentsStorage interface {
	GetAssignmentsByDate(ctx context.Context, date time.Time) ([]storage.AssignmentRow, error)
}

type Response struct {
	Assignments []storage.AssignmentRow `json:"assignments"`
	Status      string                  `json:"status"`
	Error       string                  `json:"error"`
}

// GetAssignmentsByDate feeds the production-floor board.
func GetAssignmentsByDate(log *slog.Logger, res AssignmentsStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.assignments.get.GetAssignmentsByDate"

		dateStr := r.URL.Query().Get("date")
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			http.Error(w, "Invalid date", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		assignments, err := res.GetAssignmentsByDate(ctx, date)
		if err != nil {
			log.Error("failed to load assignments", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "failed to load assignments"})
			return
		}

		render.JSON(w, r, Response{
			Assignments: assignments,
			Status:      "200",
		})
	}
}
