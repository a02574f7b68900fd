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
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/smartbank/smartbank/docs"
	"github.com/smartbank/smartbank/internal/handlers"
	"github.com/smartbank/smartbank/internal/jwt"
	"github.com/smartbank/smartbank/internal/logger"
	"github.com/smartbank/smartbank/internal/middlewares"
	"github.com/smartbank/smartbank/internal/migrations"
	"github.com/smartbank/smartbank/internal/models"
	"github.com/smartbank/smartbank/internal/repositories"
	"github.com/smartbank/smartbank/internal/services"
	"github.com/smartbank/smartbank/internal/sessions"
	"github.com/smartbank/smartbank/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title smartbank API
// @version 1.0.0
// @description Banking demo service: registration with a face-upload onboarding step, session login, dashboard and ATM lookup
// @host localhost:8080
// @BasePath /
// @schemes http
func main() {
	printBuildInfo()
	configPath, migrate, seedATMs := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		uploadDir,
		jwtSecret, sessionTTLSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		migrate, seedATMs,
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		uploadDir,
		jwtSecret, sessionTTLSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags: config file path and the
// administrative run modes (apply schema, seed sample ATMs).
func parseFlags() (configPath string, migrate, seedATMs bool) {
	c := flag.String("c", "config.env", "Path to configuration file")
	m := flag.Bool("migrate", false, "Apply database schema and exit")
	s := flag.Bool("seed-atms", false, "Seed sample ATM records and exit")
	flag.Parse()
	return *c, *m, *s
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, upload and session configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	uploadDir string,
	jwtSecretKey string, sessionTTLSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "smartbank")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config, optional: empty address disables signup events
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "smartbank.signups")

	// Upload config
	uploadDir = getEnv("UPLOAD_DIR", "static/uploads")

	// Session config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if sessionTTLSecond, err = strconv.Atoi(getEnv("SESSION_TTL_SECOND", "3600")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	migrate, seedATMs bool,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	uploadDir string,
	jwtSecretKey string, sessionTTLSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL. A failed connection does not stop the service:
	// the store handle carries the unavailable state and every dependent
	// endpoint reports it instead.
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	handle := repositories.NewUnavailableStoreHandle()
	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL unavailable, serving in degraded mode", "error", err)
		db = nil
	} else {
		defer db.Close()
		db.SetMaxOpenConns(pgMaxOpenConns)
		db.SetMaxIdleConns(pgMaxIdleConns)
		handle = repositories.NewStoreHandle(db)
	}

	// Administrative run modes: apply schema / seed sample ATMs, then exit.
	if migrate {
		return runMigrations(ctx, db)
	}
	if seedATMs {
		return seedSampleATMs(ctx, handle)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for signup events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaAddr != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Session token signing
	tokenSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(sessionTTLSecond)*time.Second),
	)

	// Session store
	sessionStore := sessions.New(rdb, time.Duration(sessionTTLSecond)*time.Second)

	// Face image storage
	faceStorage := storage.NewDiskStorage(uploadDir)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(handle)
	userWriteRepo := repositories.NewUserWriteRepository(handle, middlewares.GetTxFromContext)
	atmReadRepo := repositories.NewATMReadRepository(handle)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, kafkaWriter)
	accountService := services.NewAccountService(userReadRepo)
	faceService := services.NewFaceService(userReadRepo, userWriteRepo, faceStorage)
	atmService := services.NewATMService(atmReadRepo)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService, sessionStore, tokenSvc)
	logoutHandler := handlers.NewLogoutHandler(tokenSvc, sessionStore)
	homeHandler := handlers.NewHomeHandler(accountService)
	dashboardHandler := handlers.NewDashboardHandler(accountService)
	uploadFaceHandler := handlers.NewUploadFaceHandler(faceService)
	atmsHandler := handlers.NewATMsHandler(atmService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	// Public routes
	r.Get("/", homeHandler)
	if handle.Available() {
		// Registration checks and inserts inside one transaction.
		r.With(middlewares.TxMiddleware(db)).Post("/register", registerHandler)
	} else {
		r.Post("/register", registerHandler)
	}
	r.Post("/login", loginHandler)
	r.Get("/logout", logoutHandler)
	r.Post("/upload-face/{user_id}", uploadFaceHandler)
	r.Get("/api/atms", atmsHandler)

	// Protected routes require an active session
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokenSvc, sessionStore))
		r.Get("/dashboard", dashboardHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
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

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// runMigrations applies the embedded schema with goose.
func runMigrations(ctx context.Context, db *sqlx.DB) error {
	if db == nil {
		return repositories.ErrStoreUnavailable
	}

	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		return err
	}

	logger.Log.Info("Initialized the database.")
	return nil
}

// seedSampleATMs inserts the sample ATM pair, keyed by name so re-runs are
// idempotent.
func seedSampleATMs(ctx context.Context, handle *repositories.StoreHandle) error {
	repo := repositories.NewATMWriteRepository(handle)

	samples := []models.ATMDB{
		{
			Name:      "Shirpur Bank ATM - Main Street",
			Address:   strPtr("Near Market, Shirpur"),
			Pincode:   "425405",
			Latitude:  nullDecimal("20.756000"),
			Longitude: nullDecimal("74.591000"),
		},
		{
			Name:      "Shindkhed ATM - Central",
			Address:   strPtr("Opposite Bus Stand, Shindkhed"),
			Pincode:   "425403",
			Latitude:  nullDecimal("20.760500"),
			Longitude: nullDecimal("74.598200"),
		},
	}

	created := 0
	for _, s := range samples {
		ok, err := repo.SaveIfNameAbsent(ctx, s)
		if err != nil {
			return err
		}
		if ok {
			created++
		}
	}

	logger.Log.Infof("Seeded %d ATM(s)", created)
	return nil
}

func strPtr(s string) *string {
	return &s
}

func nullDecimal(s string) decimal.NullDecimal {
	d, _ := decimal.NewFromString(s)
	return decimal.NullDecimal{Decimal: d, Valid: true}
}
