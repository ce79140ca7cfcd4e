package save

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

type WorkersStorage interface {
	SaveWorker(ctx context.Context, req storage.SaveWorker) (int64, error)
	UpdateWorker(ctx context.Context, id int64, req storage.SaveWorker) error
}

type Response struct {
	WorkerID int64  `json:"worker_id"`
	Status   string `json:"status"`
	Error    string `json:"error"`
}

func SaveWorkerOperation(log *slog.Logger, res WorkersStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.save.SaveWorkerOperation"

		var req storage.SaveWorker
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if req.Name == "" {
			http.Error(w, "Worker name is required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		workerID, err := res.SaveWorker(ctx, req)
		if err != nil {
			log.Error("failed to save worker", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "failed to save worker"})
			return
		}

		render.JSON(w, r, Response{
			WorkerID: workerID,
			Status:   strconv.Itoa(http.StatusOK),
		})
	}
}

func UpdateWorkerOperation(log *slog.Logger, res WorkersStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.save.UpdateWorkerOperation"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.SaveWorker
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = res.UpdateWorker(ctx, id, req)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Worker not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update worker", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			WorkerID: id,
			Status:   strconv.Itoa(http.StatusOK),
		})
	}
}
