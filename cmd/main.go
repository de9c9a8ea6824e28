package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"traceback-explainer/config"
	"traceback-explainer/internal/controller"
	"traceback-explainer/internal/explainer"
	"traceback-explainer/internal/logging"
	"traceback-explainer/internal/middleware"
	"traceback-explainer/internal/nlp"
	"traceback-explainer/internal/parser"
	"traceback-explainer/internal/service"
)

// @title           Traceback Explainer API
// @version         1.0
// @description     Extracts structured error records from Python tracebacks and explains them in plain language.

// @host      localhost:8080
// @BasePath  /
// @schemes   http https

// @tag.name         errors
// @tag.description  Traceback parsing

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}
	logging.Setup(cfg)

	app := fx.New(
		fx.Supply(cfg),
		appOptions(),
		fx.NopLogger,
	)

	startCtx, cancelStart := context.WithTimeout(context.Background(), cfg.Server.StartupTimeout)
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}
	<-app.Done()

	stopCtx, cancelStop := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelStop()
	log.Info().Msg("Shutting down application...")
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Forced shutdown due to error or timeout")
	}
	log.Info().Msg("Exiting.")
}

// appOptions is everything except the config, so tests can supply their own.
func appOptions() fx.Option {
	return fx.Options(
		// Infrastructure Dependencies
		fx.Provide(
			NewGinEngine,
			nlp.NewProseTokenizer,
			parser.NewTracebackParser,
			explainer.NewExplainer,
			service.NewTracebackService,
			controller.NewTracebackController,
		),
		fx.Invoke(RegisterAPIRoutes),
	)
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: !allowsAnyOrigin(cfg.CORS.AllowedOrigins),
		MaxAge:           12 * time.Hour,
	}))

	return r
}

// Browsers refuse credentialed responses carrying a wildcard origin.
func allowsAnyOrigin(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

func RegisterAPIRoutes(
	lifecycle fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	tracebackController *controller.TracebackController,
) {
	controller.RegisterTracebackRoutes(router, tracebackController)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Starting HTTP server on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Error().Err(err).Msg("HTTP server ListenAndServe error")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Shutting down HTTP server...")
			return server.Shutdown(ctx)
		},
	})
}
