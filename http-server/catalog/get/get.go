package get

import (
	"context"
	"github.com/go-chi/render"
	"log/slog"
	"muebles-backend/internal/storage"
	"net/http"
	"time"
)

type CatalogStorage interface {
	GetCatalogProducts(ctx context.Context) ([]storage.CatalogProduct, error)
}

func GetCatalog(log *slog.Logger, res CatalogStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.get.GetCatalog"

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		products, err := res.GetCatalogProducts(ctx)
		if err != nil {
			log.Error("failed to load catalog", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, products)
	}
}
