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

type CatalogStorage interface {
	SaveCatalogProduct(ctx context.Context, req storage.SaveCatalogProduct) (int64, error)
	UpdateCatalogProduct(ctx context.Context, id int64, req storage.SaveCatalogProduct) error
}

type Response struct {
	ProductID int64  `json:"product_id"`
	Status    string `json:"status"`
	Error     string `json:"error"`
}

func SaveCatalogProductAdmin(log *slog.Logger, res CatalogStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.save.SaveCatalogProductAdmin"

		var req storage.SaveCatalogProduct
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		if req.SKU == "" || req.Name == "" {
			http.Error(w, "SKU and name are required", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		id, err := res.SaveCatalogProduct(ctx, req)
		if err != nil {
			log.Error("failed to save catalog product", slog.String("op", op), slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, Response{Error: "failed to save catalog product"})
			return
		}

		render.JSON(w, r, Response{
			ProductID: id,
			Status:    strconv.Itoa(http.StatusOK),
		})
	}
}

func UpdateCatalogProductAdmin(log *slog.Logger, res CatalogStorage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.catalog.save.UpdateCatalogProductAdmin"

		idStr := chi.URLParam(r, "id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			http.Error(w, "Invalid ID", http.StatusBadRequest)
			return
		}

		var req storage.SaveCatalogProduct
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("invalid JSON", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Invalid data", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		err = res.UpdateCatalogProduct(ctx, id, req)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				http.Error(w, "Catalog product not found", http.StatusNotFound)
				return
			}
			log.Error("failed to update catalog product", slog.String("op", op), slog.String("error", err.Error()))
			http.Error(w, "Internal error", http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, Response{
			ProductID: id,
			Status:    strconv.Itoa(http.StatusOK),
		})
	}
}
