package http

import (
	"log/slog"
	"os"

	"github.com/flexidesk/wfh-backend-go/internal/handler/http/middleware"
	"github.com/flexidesk/wfh-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	Env         string
	FrontendURL string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	applicationHandler ApplicationHandler,
	blacklistHandler BlacklistHandler,
	reportHandler ReportHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "wfh-backend"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
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
			r.Post("/register", authHandler.Register)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)

			r.Route("/login", func(r chi.Router) {
				r.Post("/", authHandler.Login)
				r.Get("/oauth/google", authHandler.LoginWithGoogle)
			})
			r.Get("/oauth/callback/google", authHandler.OAuthCallbackGoogle)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/applications", func(r chi.Router) {
				r.Post("/", applicationHandler.Submit)
				r.Get("/", applicationHandler.ListMine)
				r.Get("/{id}", applicationHandler.GetByID)
				r.Post("/{id}/withdrawal-request", applicationHandler.RequestWithdrawal)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/pending", applicationHandler.ListPending)
					r.Post("/{id}/approve", applicationHandler.Approve)
					r.Post("/{id}/reject", applicationHandler.Reject)
					r.Post("/{id}/withdraw", applicationHandler.Withdraw)
				})
			})

			r.Get("/schedules/my", applicationHandler.ListMySchedules)

			r.Route("/blacklists", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Post("/", blacklistHandler.Create)
				r.Get("/", blacklistHandler.List)
				r.Put("/{id}", blacklistHandler.Update)
				r.Delete("/{id}", blacklistHandler.Delete)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireHR)
				r.Get("/company", reportHandler.CompanyWide)
				r.Get("/departments/{department}", reportHandler.DepartmentDetail)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.Me)
				r.Get("/departments", employeeHandler.ListDepartments)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Get("/team", employeeHandler.ListTeam)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireHR)
					r.Get("/", employeeHandler.List)
				})
			})
		})
	})

	return r
}
