package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/jobly-app/jobly-backend-go/internal/handler/http/middleware"
	"github.com/jobly-app/jobly-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	authHandler AuthHandler,
	companyHandler CompanyHandler,
	jobHandler JobHandler,
	userHandler UserHandler,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "jobly-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

	// The verifier only parses tokens into the context. A missing or invalid
	// token never fails the request here; the gates on the routes below
	// decide what each endpoint demands.
	r.Use(jwtauth.Verifier(JWTService.JWTAuth()))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/token", authHandler.Token)
			r.Post("/register", authHandler.Register)
		})

		r.Route("/companies", func(r chi.Router) {
			r.Get("/", companyHandler.List)
			r.Get("/{handle}", companyHandler.Get)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", companyHandler.Create)
				r.Patch("/{handle}", companyHandler.Update)
				r.Delete("/{handle}", companyHandler.Delete)
			})
		})

		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", jobHandler.List)
			r.Get("/{jobID}", jobHandler.Get)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Post("/", jobHandler.Create)
				r.Patch("/{jobID}", jobHandler.Update)
				r.Delete("/{jobID}", jobHandler.Delete)
			})
		})

		r.Route("/users", func(r chi.Router) {
			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", userHandler.List)
				r.Post("/", userHandler.Create)
			})

			// Admin or the user in question
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOrSelf("username"))
				r.Get("/{username}", userHandler.Get)
				r.Patch("/{username}", userHandler.Update)
				r.Delete("/{username}", userHandler.Delete)
			})
		})
	})
	return r
}
