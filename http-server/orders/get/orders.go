package get

import (
	"context"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"muebles-backend/internal/storage"
	"net/http"
	"strconv"
	"time"
)

type ResponseOrders struct {
	Orders []*storage.Order `json:"orders"`
	Status string           `json:"status"`
	Error  string           `json:"error"`
}

type GetOrders interface {
	GetOrders(ctx context.Context, filter storage.OrderFilter) ([]*storage.Order, error)
}

func GetOrdersFilter(log *slog.Logger, getOrders GetOrders) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.orders.get.GetOrdersFilter"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		yearStr := r.URL.Query().Get("year")
		monthStr := r.URL.Query().Get("month")
		search := r.URL.Query().Get("search")
		status := r.URL.Query().Get("status")

		var year, month int
		var err error

		// Without a search term or status the month filter is
		// mandatory, otherwise the dashboard would pull the whole
		// table.
		if search == "" && status == "" && (yearStr == "" || monthStr == "") {
			log.Error("missing year or month in query parameters")
			http.Error(w, "Missing year or month", http.StatusBadRequest)
			return
		}

		// A supplied month filter applies even alongside a status
		// filter.
		if yearStr != "" && monthStr != "" {
			year, err = strconv.Atoi(yearStr)
			if err != nil {
				log.Error("invalid year", slog.String("error", err.Error()))
				http.Error(w, "Invalid year", http.StatusBadRequest)
				return
			}

			month, err = strconv.Atoi(monthStr)
			if err != nil {
				log.Error("invalid month", slog.String("error", err.Error()))
				http.Error(w, "Invalid month", http.StatusBadRequest)
				return
			}
		}

		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		orders, err := getOrders.GetOrders(ctx, storage.OrderFilter{
			Year:   year,
			Month:  month,
			Search: search,
			Status: status,
		})
		if err != nil {
			log.Error("failed to load orders", slog.String("error", err.Error()))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, ResponseOrders{Error: "failed to load orders"})
			return
		}

		render.JSON(w, r, ResponseOrders{
			Orders: orders,
			Status: strconv.Itoa(http.StatusOK),
		})
	}
}
