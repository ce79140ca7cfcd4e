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

type OrderStatusStorage interface {
	UpdateOrderStatus(ctx context.Context, id int64, status string) error
	DeleteOrder(ctx context.Context, id int64) error
}

type StatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatusOperation moves an order through the dispatch
// workflow (DONE orders get marked SHIPPED here).
func UpdateOrderStatusOperation(log *slog.Logger, res OrderStatusStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.update.UpdateOrderStatusOperation"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req StatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		switch req.Status {
		case storage.OrderStatusPending, storage.OrderStatusDone, storage.OrderStatusShipped:
		default:
			http.Error(w, "Invalid status", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = res.UpdateOrderStatus(ctx, id, req.Status)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update order status", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, map[string]interface{}{
			"status":   strconv.Itoa(http.StatusOK),
			"order_id": id,
		})
	}
}

// DeleteOrderAdmin is mounted only under the admin router.
func DeleteOrderAdmin(log *slog.Logger, res OrderStatusStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.update.DeleteOrderAdmin"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = res.DeleteOrder(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Order not found", http.StatusNotFound)
				return
			}
			log.Error("failed to delete order", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		log.Info("order deleted", slog.Int64("id", id))

		render.JSON(w, r, map[string]interface{}{
			"status":   strconv.Itoa(http.StatusOK),
			"order_id": id,
		})
	}
}
