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

type SaveOrderStorage interface {
	SaveOrder(ctx context.Context, req storage.SaveOrder) (int64, error)
}

type Response struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
	Error   string `json:"error"`
}

func SaveOrderOperation(log *slog.Logger, res SaveOrderStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.save.SaveOrderOperation"

		var req storage.SaveOrder
		err := json.NewDecoder(r.Body).Decode(&req)
		if err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if req.OrderNum == "" || req.Product == "" || req.Quantity <= 0 {
			log.Error("incomplete order", slog.String("op", op), slog.String("order_num", req.OrderNum))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		orderID, err := res.SaveOrder(ctx, req)
		if err != nil {
			log.Error("failed to save order", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "failed to save order"})
			return
		}

		render.JSON(w, r, Response{
			OrderID: orderID,
			Status:  strconv.Itoa(http.StatusOK),
		})
	}
}
