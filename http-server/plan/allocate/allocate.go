package allocate

import (
	"context"
	"encoding/json"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	allocatesvc "muebles-backend/internal/service/allocate"
	"muebles-backend/internal/storage"
	"net/http"
	"time"
)

type PlanAllocator interface {
	Run(ctx context.Context, date time.Time, instructions []storage.PlanInstruction) (*allocatesvc.RunResult, error)
}

type Request struct {
	Date         string                    `json:"date"`
	Instructions []storage.PlanInstruction `json:"instructions"`
}

type Response struct {
	*allocatesvc.RunResult
	Status string `json:"status"`
	Error  string `json:"error"`
}

// AllocatePlanOperation runs one daily plan through the allocator.
// Diagnostics and row-level write failures come back in the summary;
// only a failed pool/roster load is an error here.
func AllocatePlanOperation(log *slog.Logger, service PlanAllocator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.plan.allocate.AllocatePlanOperation"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			http.Error(w, "Invalid date", http.StatusBadRequest)
			return
		}

		if len(req.Instructions) == 0 {
			http.Error(w, "No instructions", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		result, err := service.Run(ctx, date, req.Instructions)
		if err != nil {
			log.Error("allocation run failed", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "allocation run failed, nothing was written"})
			return
		}

		log.Info("plan allocated",
			slog.String("run_id", result.RunID),
			slog.Int("created", result.Created),
			slog.Int("failures", len(result.Failures)),
			slog.Int("diagnostics", len(result.Diagnostics)),
		)

		render.JSON(w, r, Response{
			RunResult: result,
			Status:    "200",
		})
	}
}
