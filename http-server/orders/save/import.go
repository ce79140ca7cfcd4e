package save

import (
	"context"
	"encoding/json"
	"github.com/go-chi/render"
	"log/slog"
	"muebles-backend/internal/storage"
	"net/http"
	"strconv"
	"time"
)

type ImportOrdersStorage interface {
	ImportOrders(ctx context.Context, rows []storage.ImportRow) (storage.ImportResult, error)
}

type ImportRequest struct {
	Rows []storage.ImportRow `json:"rows"`
}

type ImportResponse struct {
	storage.ImportResult
	Status string `json:"status"`
	Error  string `json:"error"`
}

// ImportOrdersOperation receives the rows the frontend already parsed
// out of the spreadsheet and merges them into the order table.
func ImportOrdersOperation(log *slog.Logger, res ImportOrdersStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.save.ImportOrdersOperation"

		var req ImportRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if len(req.Rows) == 0 {
			http.Error(w, "No rows to import", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		result, err := res.ImportOrders(ctx, req.Rows)
		if err != nil {
			log.Error("failed to import orders", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ImportResponse{Error: "failed to import orders"})
			return
		}

		log.Info("orders imported",
			slog.Int("inserted", result.Inserted),
			slog.Int("updated", result.Updated),
		)

		render.JSON(w, r, ImportResponse{
			ImportResult: result,
			Status:       strconv.Itoa(http.StatusOK),
		})
	}
}
