package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/yashwanth-3000/content--hub/config"
	"github.com/yashwanth-3000/content--hub/internal/repositories/publishedpost"
	"github.com/yashwanth-3000/content--hub/internal/repositories/socialaccount"
	"github.com/yashwanth-3000/content--hub/internal/repositories/usernameanalysis"
	"github.com/yashwanth-3000/content--hub/pkg/agents"
	"github.com/yashwanth-3000/content--hub/pkg/database"
	"github.com/yashwanth-3000/content--hub/pkg/events"
	"github.com/yashwanth-3000/content--hub/pkg/generator"
	"github.com/yashwanth-3000/content--hub/pkg/graph"
	"github.com/yashwanth-3000/content--hub/pkg/health"
	"github.com/yashwanth-3000/content--hub/pkg/httpclient"
	"github.com/yashwanth-3000/content--hub/pkg/kafka"
	"github.com/yashwanth-3000/content--hub/pkg/logging"
	"github.com/yashwanth-3000/content--hub/pkg/middleware"
	"github.com/yashwanth-3000/content--hub/pkg/profile"
	"github.com/yashwanth-3000/content--hub/pkg/redis"
	"github.com/yashwanth-3000/content--hub/pkg/routes/analytics"
	"github.com/yashwanth-3000/content--hub/pkg/routes/analyze"
	"github.com/yashwanth-3000/content--hub/pkg/routes/calendar"
	"github.com/yashwanth-3000/content--hub/pkg/routes/company"
	"github.com/yashwanth-3000/content--hub/pkg/routes/generate"
	"github.com/yashwanth-3000/content--hub/pkg/routes/posts"
	profileroute "github.com/yashwanth-3000/content--hub/pkg/routes/profile"
	"github.com/yashwanth-3000/content--hub/pkg/tracing"
	"github.com/yashwanth-3000/content--hub/pkg/tracing/exporters"
	"github.com/yashwanth-3000/content--hub/pkg/watsonx"
)

const version = "1.0.0"

func main() {
	_ = godotenv.Load()

	cfg := &config.Config{}
	if err := ectoenv.BindEnv(cfg); err != nil {
		panic(fmt.Errorf("failed to bind config: %w", err))
	}

	logger, flush, err := logging.New(cfg.LogLevel, cfg.PrettyLogs)
	if err != nil {
		panic(fmt.Errorf("failed to create logger: %w", err))
	}
	defer flush()

	if err := run(cfg, logger); err != nil {
		logger.WithError(err).Error("service exited with error")
		flush()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger ectologger.Logger) error {
	ctx := context.Background()

	shutdownTracing, err := setupTracing(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer shutdownTracing(ctx)

	// Postgres
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseUserName, cfg.DatabasePassword,
		cfg.DatabaseName, cfg.DatabaseSSLMode)

	sqlxDB, err := sqlx.Connect(cfg.DatabaseDriver, dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer sqlxDB.Close()

	db := database.NewDatabaseInstance(sqlxDB, logger)
	db.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)
	db.SetMaxIdleConns(cfg.DatabaseMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DatabaseConnMaxLifetime)

	driver, err := postgres.WithInstance(sqlxDB.DB, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrations := database.NewMigrationService(logger, &database.MigrationConfig{
		MigrationFolderPath: cfg.DatabaseMigrationFolderPath,
		Version:             uint(cfg.DatabaseMigrationVersion),
		Force:               cfg.DatabaseMigrationForce,
		AutoRollback:        cfg.DatabaseMigrationAutoRollback,
	})
	if err := migrations.Migrate(cfg.DatabaseName, driver); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Redis
	redisClient, err := redis.NewClient(redis.Config{
		Host:     cfg.RedisHost,
		Port:     cfg.RedisPort,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	defer redisClient.Close()

	// Graph database
	graphClient, err := graph.NewClient(graph.Config{
		Host:     cfg.GraphDBHost,
		Port:     cfg.GraphDBPort,
		Username: cfg.GraphDBUser,
		Password: cfg.GraphDBPassword,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to create graph client: %w", err)
	}
	defer graphClient.Close(ctx)

	// HTTP clients
	webhookHTTPConfig := httpclient.DefaultConfig()
	webhookHTTPConfig.Timeout = cfg.WebhookTimeout
	webhookClient := httpclient.NewClient(webhookHTTPConfig, logger)

	tokenManager := watsonx.NewTokenManager(watsonx.TokenManagerConfig{
		TokenURL:    cfg.IBMTokenURL,
		APIKey:      cfg.IBMAPIKey,
		TTLSeconds:  cfg.TokenCacheTTLSeconds,
		SkewSeconds: cfg.TokenSkewSeconds,
	}, webhookClient, redisClient, logger)

	watsonxClient := watsonx.NewClient(watsonx.Config{
		BaseURL:    cfg.WatsonxBaseURL,
		APIVersion: cfg.WatsonxAPIVersion,
		ModelID:    cfg.WatsonxModelID,
		ProjectID:  cfg.WatsonxProjectID,
	}, webhookClient, tokenManager, logger)

	agentClient := agents.NewClient(agents.Config{
		TwitterProfileURL:   cfg.TwitterProfileWebhookURL,
		LinkedInProfileURL:  cfg.LinkedInProfileWebhookURL,
		URLAnalysisURL:      cfg.URLAnalysisWebhookURL,
		YouTubeAnalysisURL:  cfg.YouTubeAnalysisWebhookURL,
		ImageGenerationURL:  cfg.ImageGenerationWebhookURL,
		InstagramCaptionURL: cfg.InstagramCaptionWebhookURL,
	}, webhookClient, logger)

	// Repositories and services
	accountRepo := socialaccount.NewRepository(db, logger)
	analysisRepo := usernameanalysis.NewRepository(db, logger)
	postRepo := publishedpost.NewRepository(db, logger)
	companyStore := graph.NewCompanyStore(graphClient, logger)
	profileService := profile.NewService(accountRepo, analysisRepo, agentClient, logger)
	generatorService := generator.NewService(profileService, accountRepo, agentClient, watsonxClient, logger)

	var producer *kafka.Producer
	if cfg.KafkaEnabled {
		producer = kafka.NewProducer(kafka.ProducerConfig{
			Brokers:      cfg.KafkaBrokers,
			Topic:        cfg.KafkaOutputTopic,
			BatchSize:    cfg.KafkaBatchSize,
			BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
			RequiredAcks: cfg.KafkaRequiredAcks,
			Compression:  cfg.KafkaCompression,
		}, logger)
		defer producer.Close()
	}
	emitter := events.NewEmitter(producer, logger)

	checker := health.NewChecker(db, redisClient, graphClient, version)

	// DI container
	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		return fmt.Errorf("failed to create DI container: %w", err)
	}
	if err := ectoinject.RegisterInstance[ectologger.Logger](container, logger); err != nil {
		return fmt.Errorf("failed to register logger: %w", err)
	}
	if err := ectoinject.RegisterInstance[database.DB](container, db); err != nil {
		return fmt.Errorf("failed to register database: %w", err)
	}
	if err := ectoinject.RegisterInstance[socialaccount.SocialAccountRepository](container, accountRepo); err != nil {
		return fmt.Errorf("failed to register social account repository: %w", err)
	}
	if err := ectoinject.RegisterInstance[usernameanalysis.UsernameAnalysisRepository](container, analysisRepo); err != nil {
		return fmt.Errorf("failed to register username analysis repository: %w", err)
	}
	if err := ectoinject.RegisterInstance[publishedpost.PublishedPostRepository](container, postRepo); err != nil {
		return fmt.Errorf("failed to register published post repository: %w", err)
	}
	if err := ectoinject.RegisterInstance[company.Directory](container, companyStore); err != nil {
		return fmt.Errorf("failed to register company store: %w", err)
	}
	if err := ectoinject.RegisterInstance[*profile.Service](container, profileService); err != nil {
		return fmt.Errorf("failed to register profile service: %w", err)
	}
	if err := ectoinject.RegisterInstance[*generator.Service](container, generatorService); err != nil {
		return fmt.Errorf("failed to register generator service: %w", err)
	}
	if err := ectoinject.RegisterInstance[*events.Emitter](container, emitter); err != nil {
		return fmt.Errorf("failed to register event emitter: %w", err)
	}

	// HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second
	e.Server.IdleTimeout = time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second
	e.Server.MaxHeaderBytes = cfg.MaxHeaderBytes

	e.HTTPErrorHandler = middleware.Error(logger)
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))
	e.Use(echomiddleware.Recover())

	api := e.Group("/api")
	profileroute.Register(api.Group("/profiles"))
	analyze.Register(api.Group("/analyze"))
	generate.Register(api.Group("/generate"))
	analytics.Register(api.Group("/analytics"))
	calendar.Register(api.Group("/calendar"))
	posts.Register(api.Group("/posts"))
	company.Register(api.Group("/companies"))

	e.GET("/health/live", checker.LivenessHandler)
	e.GET("/health/ready", checker.ReadinessHandler)

	checker.SetReady(true)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		logger.Infof("Starting %s on %s", cfg.AppName, addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	checker.SetReady(false)
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	return nil
}

func setupTracing(ctx context.Context, cfg *config.Config) (func(context.Context) error, error) {
	var exporter sdktrace.SpanExporter
	if cfg.TracingEnabled {
		otlpConfig := exporters.DefaultOTLPConfig()
		otlpConfig.Endpoint = cfg.TracingOTLPEndpoint
		otlpConfig.Protocol = cfg.TracingOTLPProtocol
		otlpConfig.Insecure = cfg.TracingInsecure

		otlpExporter, err := exporters.NewOTLPExporter(ctx, otlpConfig)
		if err != nil {
			return nil, err
		}
		exporter = otlpExporter
	} else {
		exporter = &exporters.ConsoleExporter{}
	}

	res, err := sdkresource.Merge(sdkresource.Default(), sdkresource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.AppName),
		semconv.ServiceVersion(version),
	))
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	tracing.SetTracer(tp.Tracer(cfg.AppName))

	return tp.Shutdown, nil
}
