package update

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"log/slog"
	"muebles-backend/internal/storage"
	"net/http"
	"strconv"
	"time"
)

type ProgressStorage interface {
	ApplyProgress(ctx context.Context, id int64, delta int) (*storage.Assignment, error)
}

type ProgressRequest struct {
	Delta int `json:"delta"`
}

type ProgressResponse struct {
	Assignment *storage.Assignment `json:"assignment"`
	Status     string              `json:"status"`
	Error      string              `json:"error"`
}

// UpdateProgressOperation applies a signed delta from the
// production-floor buttons. Completion and its cascade to the order
// happen inside the storage transaction.
func UpdateProgressOperation(log *slog.Logger, res ProgressStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.assignments.update.UpdateProgressOperation"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req ProgressRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if req.Delta == 0 {
			http.Error(w, "Delta must be non-zero", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		assignment, err := res.ApplyProgress(ctx, id, req.Delta)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Assignment not found", http.StatusNotFound)
				return
			}
			log.Error("failed to apply progress", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, ProgressResponse{
			Assignment: assignment,
			Status:     strconv.Itoa(http.StatusOK),
		})
	}
}
