package api

import (
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/crediya/auth-service/docs"
	"github.com/crediya/auth-service/internal/api/handler"
	"github.com/crediya/auth-service/internal/api/middleware"
	"github.com/crediya/auth-service/internal/core/service"
	"github.com/crediya/auth-service/internal/core/token"
	"github.com/crediya/auth-service/internal/infrastructure/config"
	mongodb "github.com/crediya/auth-service/internal/infrastructure/db/mongo"
	"github.com/crediya/auth-service/internal/infrastructure/security"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Token signing / verification ---
	privateKey, publicKey, err := cfg.JWT.Keys()
	if err != nil {
		return nil, err
	}
	signer := token.NewSigner(privateKey, cfg.JWT.Issuer, cfg.JWT.TTL())
	verifier := token.NewVerifier(publicKey)

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	hasher := security.NewBcryptHasher(cfg.Hasher.Cost, cfg.Hasher.Workers)

	authService := service.NewAuthService(userRepo, roleRepo, hasher, signer, log)
	userService := service.NewUserService(userRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService, userService)

	// --- Route policy ---
	// Registration is gated on the administrative authorities; every route
	// without a rule requires a valid token.
	policy := middleware.NewPolicy(
		middleware.Rule{Method: http.MethodPost, Path: "/api/v1/login", Access: middleware.Public},
		middleware.Rule{Method: http.MethodGet, Path: "/health", Access: middleware.Public},
		middleware.Rule{Method: http.MethodGet, Path: "/health/ready", Access: middleware.Public},
		middleware.Rule{Method: http.MethodGet, Path: "/metrics", Access: middleware.Public},
		middleware.Rule{Method: http.MethodGet, Path: "/swagger/*", Access: middleware.Public},
		middleware.Rule{
			Method: http.MethodPost, Path: "/api/v1/users",
			Access:      middleware.WithAuthorities,
			Authorities: []string{token.Authority("ADMIN"), token.Authority("ADVISOR")},
		},
	)
	e.Use(middleware.Auth(verifier, policy))

	// --- Routes ---
	e.POST("/api/v1/login", authHandler.Login)
	e.POST("/api/v1/users", userHandler.Register)
	e.GET("/api/v1/users/:document", userHandler.GetByDocument)

	// --- Observability and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}
