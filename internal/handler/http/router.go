package http

import (
	"log/slog"
	"os"

	"github.com/audient-hq/audient-backend/internal/handler/http/middleware"
	"github.com/audient-hq/audient-backend/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	JWTService        jwt.Service
	AuthHandler       AuthHandler
	AttendanceHandler AttendanceHandler
	OrgHandler        OrganizationHandler
	ReportHandler     ReportHandler
	ClientHandler     ClientHandler
	RecordingHandler  RecordingHandler
	LocationHandler   LocationHandler
	FrontendURL       string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "audient-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{deps.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", deps.AuthHandler.Register)
			r.Post("/login", deps.AuthHandler.Login)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Get("/auth/me", deps.AuthHandler.Me)

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", deps.AttendanceHandler.RecordLogin)
				r.Get("/today", deps.AttendanceHandler.GetToday)
			})

			r.Route("/config", func(r chi.Router) {
				r.Get("/", deps.OrgHandler.GetConfig)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/", deps.OrgHandler.UpdateConfig)
				})
			})

			// Admin attendance review
			r.Route("/sentry", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/employees", deps.ReportHandler.Employees)
				r.Get("/attendance", deps.ReportHandler.ByDate)
				r.Get("/attendance/summary", deps.ReportHandler.MonthSummary)
				r.Get("/employees/{employeeID}/history", deps.ReportHandler.EmployeeHistory)
			})

			r.Route("/clients", func(r chi.Router) {
				r.Post("/", deps.ClientHandler.Create)
				r.Get("/", deps.ClientHandler.List)

				r.Route("/{clientID}", func(r chi.Router) {
					r.Get("/", deps.ClientHandler.Get)
					r.Put("/", deps.ClientHandler.Update)
					r.Delete("/", deps.ClientHandler.Delete)

					r.Route("/stakeholders", func(r chi.Router) {
						r.Post("/", deps.ClientHandler.AddStakeholder)
						r.Get("/", deps.ClientHandler.ListStakeholders)
						r.Delete("/{stakeholderID}", deps.ClientHandler.RemoveStakeholder)
					})
				})
			})

			r.Route("/recordings", func(r chi.Router) {
				r.Post("/", deps.RecordingHandler.Create)
				r.Get("/", deps.RecordingHandler.List)
				r.Get("/{recordingID}", deps.RecordingHandler.Get)
				r.Delete("/{recordingID}", deps.RecordingHandler.Delete)
			})

			r.Route("/locations", func(r chi.Router) {
				r.Post("/", deps.LocationHandler.Create)
				r.Get("/", deps.LocationHandler.List)
				r.Delete("/{profileID}", deps.LocationHandler.Delete)
			})
		})
	})
	return r
}
