package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/bookstore-chain/timeclock-backend-go/internal/config"
	appHTTP "github.com/bookstore-chain/timeclock-backend-go/internal/handler/http"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/clock"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/cron"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/database"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/jwt"
	"github.com/bookstore-chain/timeclock-backend-go/internal/pkg/sse"
	"github.com/bookstore-chain/timeclock-backend-go/internal/repository/postgresql"
	attendanceService "github.com/bookstore-chain/timeclock-backend-go/internal/service/attendance"
	serviceAuth "github.com/bookstore-chain/timeclock-backend-go/internal/service/auth"
	employeeService "github.com/bookstore-chain/timeclock-backend-go/internal/service/employee"
	masterService "github.com/bookstore-chain/timeclock-backend-go/internal/service/master"
	reportService "github.com/bookstore-chain/timeclock-backend-go/internal/service/report"
	scheduleService "github.com/bookstore-chain/timeclock-backend-go/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	location, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		log.Fatal("Invalid timezone: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	storeRepo := postgresql.NewStoreRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	transactor := postgresql.NewTransactor(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	hub := sse.NewHub()
	clk := clock.System()

	authSvc := serviceAuth.NewAuthService(jwtService, cfg.Admin.PasswordHash)
	employeeSvc := employeeService.NewEmployeeService(transactor, employeeRepo, attendanceRepo, scheduleRepo, storeRepo, clk, location)
	masterSvc := masterService.NewMasterService(transactor, storeRepo, shiftRepo, scheduleRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, shiftRepo, storeRepo, clk, location)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		scheduleRepo,
		shiftRepo,
		storeRepo,
		hub,
		clk,
		location,
		cfg.Attendance.GeofenceRadiusMeters,
		cfg.Attendance.LocationTimeout,
	)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, scheduleRepo, shiftRepo, location)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	liveHandler := appHTTP.NewLiveHandler(hub, jwtService)

	watchdog := attendanceService.NewWatchdog(attendanceRepo, scheduleRepo, shiftRepo, clk, location)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("open-record-watchdog", time.Hour, watchdog.Run)
	scheduler.Start()
	defer scheduler.Stop()

	logLevel := slog.LevelInfo
	if cfg.App.LogLevel == "debug" {
		logLevel = slog.LevelDebug
	}

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, LogLevel: logLevel},
		jwtService,
		authHandler,
		employeeHandler,
		masterHandler,
		scheduleHandler,
		attendanceHandler,
		reportHandler,
		liveHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
