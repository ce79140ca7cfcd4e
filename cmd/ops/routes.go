package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getassignments "muebles-backend/http-server/assignments/get"
	upassignments "muebles-backend/http-server/assignments/update"
	getcatalog "muebles-backend/http-server/catalog/get"
	savecatalog "muebles-backend/http-server/catalog/save"
	generate_excel "muebles-backend/http-server/generate-report/generate-excel"
	getinventory "muebles-backend/http-server/inventory/get"
	getorders "muebles-backend/http-server/orders/get"
	saveorders "muebles-backend/http-server/orders/save"
	uporders "muebles-backend/http-server/orders/update"
	allocateplan "muebles-backend/http-server/plan/allocate"
	gettimesheet "muebles-backend/http-server/timesheet/get"
	savetimesheet "muebles-backend/http-server/timesheet/save"
	getworkers "muebles-backend/http-server/workers/get"
	saveworkers "muebles-backend/http-server/workers/save"
	"muebles-backend/internal/config"
	"muebles-backend/internal/constants"
	"muebles-backend/internal/middleware/auth"
	allocatesvc "muebles-backend/internal/service/allocate"
	"muebles-backend/internal/service/report"
	"muebles-backend/internal/session"
	"muebles-backend/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage, allocator *allocatesvc.Service, reports *report.ReportService) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", session.RoleHeader},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Orders: intake, listing, spreadsheet-import merge, dispatch.
	router.Get("/api/orders", getorders.GetOrdersFilter(log, storage))
	router.With(session.RequireCapability(constants.ActionOrdersWrite)).
		Post("/api/orders", saveorders.SaveOrderOperation(log, storage))
	router.With(session.RequireCapability(constants.ActionOrdersImport)).
		Post("/api/orders/import", saveorders.ImportOrdersOperation(log, storage))
	router.With(session.RequireCapability(constants.ActionOrdersDispatch)).
		Put("/api/orders/{id}/status", uporders.UpdateOrderStatusOperation(log, storage))

	// Workers
	router.Get("/api/workers/all", getworkers.GetWorkers(log, storage))
	router.With(session.RequireCapability(constants.ActionWorkersWrite)).
		Post("/api/workers", saveworkers.SaveWorkerOperation(log, storage))
	router.With(session.RequireCapability(constants.ActionWorkersWrite)).
		Put("/api/workers/{id}", saveworkers.UpdateWorkerOperation(log, storage))

	// Daily production plan allocation
	router.With(session.RequireCapability(constants.ActionPlanAllocate)).
		Post("/api/plan/allocate", allocateplan.AllocatePlanOperation(log, allocator))

	// Production-floor board and progress buttons
	router.Get("/api/assignments", getassignments.GetAssignmentsByDate(log, storage))
	router.With(session.RequireCapability(constants.ActionProgressUpdate)).
		Post("/api/assignments/{id}/progress", upassignments.UpdateProgressOperation(log, storage))

	// Product catalog (read side; CRUD lives in the admin panel)
	router.Get("/api/catalog", getcatalog.GetCatalog(log, storage))

	// Warehouse stock
	router.Get("/api/inventory", getinventory.GetStockItems(log, storage))

	// Personnel time-tracking
	router.Get("/api/timesheet", gettimesheet.GetTimeEntries(log, storage))
	router.With(session.RequireCapability(constants.ActionTimesheetWrite)).
		Post("/api/timesheet/clock-in", savetimesheet.ClockInOperation(log, storage))
	router.With(session.RequireCapability(constants.ActionTimesheetWrite)).
		Post("/api/timesheet/clock-out", savetimesheet.ClockOutOperation(log, storage))

	// Excel export of a day's plan
	router.Get("/api/report/excel", generate_excel.GenerateReportExcel(log, reports))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Post("/catalog/new", savecatalog.SaveCatalogProductAdmin(log, storage))
	adminRouter.Put("/catalog/update/{id}", savecatalog.UpdateCatalogProductAdmin(log, storage))
	adminRouter.Delete("/orders/{id}", uporders.DeleteOrderAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
