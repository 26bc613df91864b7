package router

import (
	"database/sql"
	"net/http"
	"time"

	"courseapi/internal/api/v1/handler"
	"courseapi/internal/config"
	"courseapi/internal/middleware"
	"courseapi/internal/repository"
	"courseapi/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// New opens the database connection, wires repositories, services and handlers
// together and returns the assembled HTTP handler along with the DB handle so
// the caller can close it on shutdown.
func New(cfg *config.Config, logger zerolog.Logger) (http.Handler, *sql.DB, error) {
	db, err := sql.Open("pgx", cfg.DBConnectionString)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, nil, err
	}
	logger.Info().Msg("Database connection successful")

	// Set reasonable connection pool limits
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxIdleTime(5 * time.Minute)

	validate := validator.New(validator.WithRequiredStructEnabled())

	userRepo := repository.NewUserRepo(db)
	courseRepo := repository.NewCourseRepo(db)

	userSvc := service.NewUserService(userRepo, validate)
	courseSvc := service.NewCourseService(courseRepo)

	userHandler := handler.NewUserHandler(userSvc, logger)
	courseHandler := handler.NewCourseHandler(courseSvc, validate, logger)

	authenticator := middleware.NewAuthenticator(userRepo, logger)

	return Build(userHandler, courseHandler, authenticator, logger), db, nil
}

// Build assembles the route tree from constructed components. Split out from
// New so tests can mount the real routes over fake repositories.
func Build(userHandler *handler.UserHandler, courseHandler *handler.CourseHandler, authenticator *middleware.Authenticator, logger zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logging(logger))

	requireAuth := authenticator.Middleware()

	r.Route("/courses", func(r chi.Router) {
		r.Get("/", courseHandler.ListCourses)
		r.Get("/{id}", courseHandler.GetCourse)
		r.With(requireAuth).Post("/", courseHandler.CreateCourse)
		r.With(requireAuth).Put("/{id}", courseHandler.UpdateCourse)
		r.With(requireAuth).Delete("/{id}", courseHandler.DeleteCourse)
	})

	r.Route("/users", func(r chi.Router) {
		r.With(requireAuth).Get("/", userHandler.GetCurrentUser)
		r.Post("/", userHandler.CreateUser)
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(r)
}
