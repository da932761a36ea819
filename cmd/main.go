package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"portfolio/internal/handlers"
	"portfolio/internal/logger"
	"portfolio/internal/repository"
	"portfolio/internal/repository/db"
	"portfolio/internal/server"
	"portfolio/internal/service"

	"github.com/spf13/viper"
)

func main() {
	seed := flag.Bool("seed", false, "insert the demo portfolio when the database is empty")
	flag.Parse()

	// load config.yml first so the log level is configurable
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	secret := viper.GetString("jwt.secret")
	if secret == "" {
		log.Fatalw("jwt.secret must be set (config or PORTFOLIO_JWT_SECRET)")
	}

	// open DB
	database, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := database.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire dependencies
	repos := repository.NewRepository(database)
	services := service.NewService(repos, service.Config{
		TokenSecret:    secret,
		TokenTTL:       time.Duration(viper.GetInt("jwt.ttl_minutes")) * time.Minute,
		UploadDir:      uploadDir(),
		UploadBaseURL:  "/uploads",
		UploadMaxBytes: viper.GetInt64("upload.max_bytes"),
	})
	apiHandler := handlers.NewHandler(services, log,
		handlers.WithUploadDir(uploadDir()),
		handlers.WithAllowedOrigins(viper.GetStringSlice("cors.allowed_origins")),
	)

	if *seed {
		if err := seedDemoData(context.Background(), repos, services); err != nil {
			log.Fatalw("failed to seed demo data", "err", err)
		}
		log.Infow("demo data seeded")
	}

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	viper.SetEnvPrefix("portfolio")
	// Dotted keys use underscores in the environment: jwt.secret is
	// overridden by PORTFOLIO_JWT_SECRET.
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	// A missing file is fine when everything comes from the environment.
	var notFound viper.ConfigFileNotFoundError
	if err != nil && errors.As(err, &notFound) {
		return nil
	}
	return err
}

func uploadDir() string {
	dir := viper.GetString("upload.dir")
	if dir == "" {
		dir = "uploads"
	}
	return dir
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "portfolio.db")
		dbPath = "portfolio.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
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
	ctx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
