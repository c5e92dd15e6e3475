package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/villagef/splot-ani-server/config"
	"github.com/villagef/splot-ani-server/internal/controller"
	circuitbreaker "github.com/villagef/splot-ani-server/internal/infrastructure/circuit-breaker"
	"github.com/villagef/splot-ani-server/internal/infrastructure/database/mongodb"
	"github.com/villagef/splot-ani-server/internal/infrastructure/message-queue/kafka"
	"github.com/villagef/splot-ani-server/internal/infrastructure/tracing"
	"github.com/villagef/splot-ani-server/internal/graph"
	localmiddleware "github.com/villagef/splot-ani-server/internal/middleware"
	"github.com/villagef/splot-ani-server/internal/repository"
	"github.com/villagef/splot-ani-server/internal/service"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// App wires the GraphQL server. Store is required unless Repository is set,
// in which case the health endpoint always reports healthy.
type App struct {
	Config     *config.Config
	Store      *mongodb.Store
	Repository repository.ProductRepository
	Publisher  service.EventPublisher
	Server     *echo.Echo

	metrics        *echo.Echo
	scheduler      gocron.Scheduler
	tracerProvider *sdktrace.TracerProvider
	producer       *kafka.Producer
}

// InitLogger installs the process-wide zerolog logger.
func InitLogger(level string) {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil || parsedLevel == zerolog.NoLevel {
		parsedLevel = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsedLevel)

	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger
}

func (app *App) Setup() error {
	traceProvider, err := tracing.InitTracing(app.Config.TracingConfig.CollectorHost)
	if err != nil {
		return err
	}
	app.tracerProvider = traceProvider

	repo := app.Repository
	if repo == nil {
		if app.Store == nil {
			return errors.New("app requires a store or a repository")
		}
		repo = repository.CreateNewMongoDBRepository(app.Store.Database(), app.Config.MongoDBConfig.Collection)
	}
	repo = repository.CreateCircuitBreakerRepository(repo, circuitbreaker.CreateCircuitBreaker("mongodb"))

	publisher := app.Publisher
	if publisher == nil && app.Config.KafkaConfig.Enabled() {
		app.producer = kafka.CreateKafkaProducer(app.Config)
		publisher = app.producer
	}

	svc := service.CreateProductService(repo, *app.Config, publisher)

	schema, err := graph.NewSchema(graph.NewResolver(svc), app.Config.GraphQLConfig.MaxDepth)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echo.WrapMiddleware(otelhttp.NewMiddleware(tracing.ServiceName,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return fmt.Sprintf("[%s] %s", r.Method, r.URL.Path)
		}),
	)))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: app.Config.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
	}))
	e.Use(echoprometheus.NewMiddleware(""))
	e.Use(localmiddleware.Logger)

	g := e.Group("/api/v1")

	var health controller.HealthChecker
	if app.Store != nil {
		health = app.Store
	}
	controller.CreateGraphQLController(e, g, schema, health)

	app.Server = e

	return app.startHealthChecks()
}

// startHealthChecks pings the store on a fixed interval so the health
// endpoint and the logs follow the store's availability.
func (app *App) startHealthChecks() error {
	if app.Store == nil {
		return nil
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(app.Config.MongoDBConfig.HealthCheckInterval),
		gocron.NewTask(func() {
			_ = app.Store.CheckHealth(context.Background())
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	s.Start()
	app.scheduler = s

	return nil
}

// Start serves HTTP until the server is shut down. Setup must be called first.
func (app *App) Start() error {
	if app.Config.MetricsPort != "" {
		app.metrics = echo.New()
		app.metrics.HideBanner = true
		app.metrics.GET("/metrics", echoprometheus.NewHandler())
		go func() {
			if err := app.metrics.Start(fmt.Sprintf(":%s", app.Config.MetricsPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("Failed to start metrics server")
			}
		}()
	}

	log.Info().Str("port", app.Config.ServicePort).Msg("Server ready at /graphql")

	return app.Server.Start(fmt.Sprintf(":%s", app.Config.ServicePort))
}

func (app *App) StopServer() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var errList []error

	if app.Server != nil {
		errList = append(errList, app.Server.Shutdown(ctx))
	}
	if app.metrics != nil {
		errList = append(errList, app.metrics.Shutdown(ctx))
	}
	if app.scheduler != nil {
		errList = append(errList, app.scheduler.Shutdown())
	}
	if app.producer != nil {
		errList = append(errList, app.producer.Close())
	}
	if app.tracerProvider != nil {
		errList = append(errList, app.tracerProvider.Shutdown(ctx))
	}

	return errors.Join(errList...)
}
