package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/library-service/internal/events"
	"github.com/sbilibin2017/library-service/internal/handlers"
	"github.com/sbilibin2017/library-service/internal/logger"
	"github.com/sbilibin2017/library-service/internal/middlewares"
	"github.com/sbilibin2017/library-service/internal/repositories"
	"github.com/sbilibin2017/library-service/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title library-service API
// @version 1.0.0
// @description Library management service: books, users, genres, borrowing and ratings
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// config holds the application, database, Redis, Kafka and logging settings.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// Empty RedisHost disables the genre cache.
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExp          time.Duration

	// Empty KafkaBrokers disables event publishing.
	KafkaBrokers []string
	KafkaTopic   string
}

func (c config) dsn() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// parseConfig loads environment variables from a file, when present, and
// fills the config with defaults for anything unset.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "library")
	if cfg.PGPort, err = getInt("POSTGRES_PORT", "5432"); err != nil {
		return
	}
	if cfg.PGMaxOpenConns, err = getInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.PGMaxIdleConns, err = getInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getInt("REDIS_PORT", "6379"); err != nil {
		return
	}
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisPoolSize, err = getInt("REDIS_POOL_SIZE", "10"); err != nil {
		return
	}
	if cfg.RedisMinIdleConns, err = getInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return
	}
	var redisExpSecond int
	if redisExpSecond, err = getInt("REDIS_EXP_SECOND", "60"); err != nil {
		return
	}
	cfg.RedisExp = time.Duration(redisExpSecond) * time.Second

	// Kafka config
	for _, broker := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, broker)
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "library-events")

	return
}

// run initializes the logger, database, Redis, Kafka writer and HTTP server.
// It blocks until ctx is cancelled or a shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.dsn())
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	if err := repositories.Migrate(ctx, db); err != nil {
		return err
	}

	// Connect to Redis
	var cache services.GenreCache
	if cfg.RedisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password:     cfg.RedisPassword,
			DB:           cfg.RedisDB,
			PoolSize:     cfg.RedisPoolSize,
			MinIdleConns: cfg.RedisMinIdleConns,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("Redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewGenreCacheRepository(rdb, cfg.RedisExp)
	} else {
		logger.Log.Info("REDIS_HOST not set, genre cache disabled")
	}

	// Kafka writer
	var writer events.KafkaWriter
	if w := events.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic); w != nil {
		defer w.Close()
		writer = w
	} else {
		logger.Log.Info("KAFKA_BROKERS not set, event publishing disabled")
	}

	r := newRouter(db, cache, writer)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires repositories, services and handlers. Reads use the pool;
// every mutating route runs in its own transaction. cache and writer may be nil.
func newRouter(db *sqlx.DB, cache services.GenreCache, writer events.KafkaWriter) chi.Router {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db, middlewares.GetTxFromContext)
	genreRepo := repositories.NewGenreRepository(db, middlewares.GetTxFromContext)
	bookRepo := repositories.NewBookRepository(db, middlewares.GetTxFromContext)
	borrowRepo := repositories.NewBorrowRepository(db, middlewares.GetTxFromContext)
	ratingRepo := repositories.NewRatingRepository(db, middlewares.GetTxFromContext)

	// Initialize services
	publisher := events.NewPublisher(writer)
	userService := services.NewUserService(userRepo)
	genreService := services.NewGenreService(genreRepo, cache, middlewares.AfterCommit)
	bookService := services.NewBookService(bookRepo, genreRepo)
	borrowService := services.NewBorrowService(userRepo, bookRepo, borrowRepo, publisher, middlewares.AfterCommit)
	ratingService := services.NewRatingService(userRepo, bookRepo, ratingRepo, publisher, middlewares.AfterCommit)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)

	r.Get("/", handlers.NewHomeHandler(buildVersion))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/books", handlers.NewListBooksHandler(bookService))
	r.Get("/books/{id:[0-9]+}", handlers.NewGetBookHandler(bookService))
	r.Get("/users", handlers.NewListUsersHandler(userService))
	r.Get("/users/{id:[0-9]+}", handlers.NewGetUserHandler(userService))
	r.Get("/genres", handlers.NewListGenresHandler(genreService))
	r.Get("/borrows", handlers.NewListBorrowsHandler(borrowService))
	r.Get("/borrows/{id:[0-9]+}", handlers.NewGetBorrowHandler(borrowService))
	r.Get("/borrowed-books", handlers.NewListBorrowedBooksHandler(borrowService))
	r.Get("/ratings", handlers.NewListRatingsHandler(ratingService))
	r.Get("/ratings/{id:[0-9]+}", handlers.NewGetRatingHandler(ratingService))

	r.Group(func(r chi.Router) {
		r.Use(middlewares.TxMiddleware(db))

		r.Post("/books", handlers.NewCreateBookHandler(bookService))
		r.Patch("/books/{id:[0-9]+}", handlers.NewUpdateBookHandler(bookService))
		r.Post("/users", handlers.NewCreateUserHandler(userService))
		r.Post("/genres", handlers.NewCreateGenreHandler(genreService))
		r.Post("/borrow", handlers.NewCreateBorrowHandler(borrowService))
		r.Patch("/return/{id:[0-9]+}", handlers.NewReturnBorrowHandler(borrowService))
		r.Put("/return/{id:[0-9]+}", handlers.NewReturnBorrowHandler(borrowService))
		r.Post("/ratings", handlers.NewCreateRatingHandler(ratingService))
	})

	return r
}
