package http

import (
	"log/slog"
	"os"

	"github.com/bookstore-chain/timeclock-backend-go/internal/handler/http/middleware"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env      string
	LogLevel slog.Level
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	masterHandler MasterHandler,
	scheduleHandler ScheduleHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	liveHandler LiveHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timeclock-backend"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.LogLevel,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Kiosk endpoints. The kiosk runs unattended on the shop floor; the
		// PIN check inside each clock action is its only credential.
		r.Route("/kiosk", func(r chi.Router) {
			r.Get("/board", employeeHandler.KioskBoard)
			r.Post("/employees/{id}/verify-pin", employeeHandler.VerifyPIN)
			r.Get("/employees/{id}/week", scheduleHandler.WeekPreview)
			r.Post("/clock", attendanceHandler.ClockAction)
			r.Get("/activity", attendanceHandler.RecentActivity)
		})

		r.Post("/auth/login", authHandler.AdminLogin)

		// Live status stream authenticates with its own short-lived token.
		r.Get("/live", liveHandler.Stream)

		// Admin console
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
			r.Use(middleware.AdminOnly)

			r.Get("/auth/live-token", authHandler.LiveToken)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.ListEmployees)
				r.Post("/", employeeHandler.CreateEmployee)
				r.Get("/{id}", employeeHandler.GetEmployee)
				r.Put("/{id}", employeeHandler.UpdateEmployee)
				r.Delete("/{id}", employeeHandler.DeleteEmployee)
				r.Get("/{id}/schedule", scheduleHandler.ListForEmployee)
			})

			r.Route("/stores", func(r chi.Router) {
				r.Get("/", masterHandler.ListStores)
				r.Post("/", masterHandler.CreateStore)
				r.Get("/{id}", masterHandler.GetStore)
				r.Put("/{id}", masterHandler.UpdateStore)
				r.Delete("/{id}", masterHandler.DeleteStore)
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", masterHandler.ListShifts)
				r.Post("/", masterHandler.CreateShift)
				r.Get("/{id}", masterHandler.GetShift)
				r.Put("/{id}", masterHandler.UpdateShift)
				r.Delete("/{id}", masterHandler.DeleteShift)
			})

			r.Route("/schedule", func(r chi.Router) {
				r.Put("/", scheduleHandler.Upsert)
				r.Get("/", scheduleHandler.ListForDate)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.ListRecords)
				r.Get("/{id}", attendanceHandler.GetRecord)
				r.Put("/{id}", attendanceHandler.UpdateRecord)
				r.Delete("/{id}", attendanceHandler.DeleteRecord)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/monthly", reportHandler.MonthlySummaries)
				r.Get("/employees/{id}/summary", reportHandler.EmployeeSummary)
				r.Get("/employees/{id}/detail", reportHandler.EmployeeDetail)
			})
		})
	})

	return r
}
