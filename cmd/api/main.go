package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/flexidesk/wfh-backend-go/internal/config"
	appHTTP "github.com/flexidesk/wfh-backend-go/internal/handler/http"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/clock"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/cron"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/database"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/email"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/jwt"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/oauth"
	"github.com/flexidesk/wfh-backend-go/internal/repository/postgresql"
	applicationService "github.com/flexidesk/wfh-backend-go/internal/service/application"
	authService "github.com/flexidesk/wfh-backend-go/internal/service/auth"
	blacklistService "github.com/flexidesk/wfh-backend-go/internal/service/blacklist"
	employeeService "github.com/flexidesk/wfh-backend-go/internal/service/employee"
	reportService "github.com/flexidesk/wfh-backend-go/internal/service/report"
)

const blacklistRetentionDays = 90

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	blacklistRepo := postgresql.NewBlacklistRepository(db)
	txRunner := postgresql.NewTxRunner(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService, err := email.NewService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	clk := clock.System()

	authSvc := authService.NewService(txRunner, userRepo, employeeRepo, jwtService)
	applicationSvc := applicationService.NewService(txRunner, applicationRepo, scheduleRepo, blacklistRepo, employeeRepo, emailService, clk)
	blacklistSvc := blacklistService.NewService(txRunner, blacklistRepo, employeeRepo)
	reportSvc := reportService.NewService(employeeRepo, scheduleRepo)
	employeeSvc := employeeService.NewService(employeeRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService, googleService, cfg.App.FrontendURL)
	applicationHandler := appHTTP.NewApplicationHandler(applicationSvc)
	blacklistHandler := appHTTP.NewBlacklistHandler(blacklistSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{Env: cfg.App.Env, FrontendURL: cfg.App.FrontendURL},
		jwtService,
		authHandler,
		applicationHandler,
		blacklistHandler,
		reportHandler,
		employeeHandler,
	)

	housekeeping := cron.NewHousekeepingJob(applicationRepo, scheduleRepo, blacklistRepo, clk, blacklistRetentionDays)
	scheduler := cron.NewScheduler()
	scheduler.AddJob("reject-stale-pending", time.Hour, housekeeping.RejectStalePending)
	scheduler.AddJob("clean-orphan-schedules", 6*time.Hour, housekeeping.CleanOrphanSchedules)
	scheduler.AddJob("purge-expired-blacklists", 24*time.Hour, housekeeping.PurgeExpiredBlacklists)
	scheduler.Start()
	defer scheduler.Stop()

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
