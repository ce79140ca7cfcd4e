package get

import (
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"muebles-backend/internal/storage"
	"net/http"
	"time"
)

type Workers interface {
	GetAllWorkers(ctx context.Context) ([]storage.Worker, error)
}

func GetWorkers(log *slog.Logger, worker Workers) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.workers.get.GetWorkers"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		workers, err := worker.GetAllWorkers(ctx)
		if err != nil {
			log.With(slog.String("op", op), slog.String("error", err.Error())).Error("failed to load workers")
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, workers)
	}
}
