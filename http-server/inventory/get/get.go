package get

import (
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"muebles-backend/internal/storage"
	"net/http"
	"time"
)

type StockStorage interface {
	GetStockItems(ctx context.Context, category string) ([]storage.StockItem, error)
}

func GetStockItems(log *slog.Logger, res StockStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.inventory.get.GetStockItems"

		category := r.URL.Query().Get("category")

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := res.GetStockItems(ctx, category)
		if err != nil {
			log.Error("failed to load stock items", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, items)
	}
}
