package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant_menu/internal/handlers"
	"restaurant_menu/internal/logger"
	"restaurant_menu/internal/repository"
	"restaurant_menu/internal/repository/db"
	"restaurant_menu/internal/server"
	"restaurant_menu/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/spf13/viper"
)

const (
	defaultPort      = "5055"
	defaultDBPath    = "menu.db"
	defaultUploadDir = "uploads"
	defaultTokenTTL  = 24 * time.Hour
)

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load .env (optional) and configs/config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	tokens, err := newTokenManager()
	if err != nil {
		log.Fatalw("invalid token config", "err", err)
	}

	// open DB
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	uploadDir := viper.GetString("uploads.dir")
	if uploadDir == "" {
		uploadDir = defaultUploadDir
	}
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, tokens, uploadDir)
	apiHandler := handlers.NewHandler(services, log, uploadDir)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), withCORS(apiHandler.InitRoutes()), log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	// secrets come from the environment; .env is a local convenience
	_ = godotenv.Load()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.AutomaticEnv()
	_ = viper.BindEnv("jwt.secret", "JWT_SECRET")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil // env-only configuration is fine
		}
		return err
	}
	return nil
}

// newTokenManager builds the token manager from config; the signing secret is
// mandatory.
func newTokenManager() (*service.TokenManager, error) {
	secret := viper.GetString("jwt.secret")
	if secret == "" {
		return nil, errors.New("jwt.secret (JWT_SECRET) is not set")
	}
	ttl := viper.GetDuration("jwt.ttl")
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return service.NewTokenManager(secret, ttl), nil
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", defaultDBPath)
		dbPath = defaultDBPath
	}
	return db.InitDB(dbPath)
}

// withCORS wraps the router with the permissive CORS policy the frontend expects.
func withCORS(handler http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "HEAD", "PUT", "PATCH", "POST", "DELETE"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler(handler)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler http.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = defaultPort
		}
		if err := srv.Run(port, handler); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
