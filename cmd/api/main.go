package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/audient-hq/audient-backend/internal/config"
	appHTTP "github.com/audient-hq/audient-backend/internal/handler/http"
	"github.com/audient-hq/audient-backend/internal/pkg/database"
	"github.com/audient-hq/audient-backend/internal/pkg/jwt"
	"github.com/audient-hq/audient-backend/internal/repository/postgresql"
	attendanceService "github.com/audient-hq/audient-backend/internal/service/attendance"
	authService "github.com/audient-hq/audient-backend/internal/service/auth"
	clientService "github.com/audient-hq/audient-backend/internal/service/client"
	locationService "github.com/audient-hq/audient-backend/internal/service/location"
	organizationService "github.com/audient-hq/audient-backend/internal/service/organization"
	recordingService "github.com/audient-hq/audient-backend/internal/service/recording"
	reportService "github.com/audient-hq/audient-backend/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	if err := db.Migrate(context.Background()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	userRepo := postgresql.NewUserRepository(db)
	organizationRepo := postgresql.NewOrganizationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	clientRepo := postgresql.NewClientRepository(db)
	recordingRepo := postgresql.NewRecordingRepository(db)
	locationRepo := postgresql.NewLocationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, userRepo, organizationRepo)
	authSvc := authService.NewAuthService(postgresql.NewTransactor(db), userRepo, organizationRepo, JWTService, attendanceSvc, cfg.App.AdminSecret)
	configSvc := organizationService.NewConfigService(userRepo, organizationRepo)
	reportSvc := reportService.NewReportService(reportRepo, userRepo)
	clientSvc := clientService.NewClientService(clientRepo)
	recordingSvc := recordingService.NewRecordingService(recordingRepo)
	locationSvc := locationService.NewProfileService(locationRepo)

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:        JWTService,
		AuthHandler:       appHTTP.NewAuthHandler(authSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		OrgHandler:        appHTTP.NewOrganizationHandler(configSvc),
		ReportHandler:     appHTTP.NewReportHandler(reportSvc),
		ClientHandler:     appHTTP.NewClientHandler(clientSvc),
		RecordingHandler:  appHTTP.NewRecordingHandler(recordingSvc),
		LocationHandler:   appHTTP.NewLocationHandler(locationSvc),
		FrontendURL:       cfg.App.FrontendURL,
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error:", err)
	}
}
