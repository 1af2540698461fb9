package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"database/sql"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/pokevault/pokedex-service/internal/auth"
	"github.com/pokevault/pokedex-service/internal/config"
	"github.com/pokevault/pokedex-service/internal/handler"
	"github.com/pokevault/pokedex-service/internal/integrations/openai"
	"github.com/pokevault/pokedex-service/internal/integrations/pokeapi"
	"github.com/pokevault/pokedex-service/internal/middleware"
	"github.com/pokevault/pokedex-service/internal/migrations"
	"github.com/pokevault/pokedex-service/internal/repository"
	"github.com/pokevault/pokedex-service/internal/scheduler"
	"github.com/pokevault/pokedex-service/internal/service"
	"github.com/pokevault/pokedex-service/internal/utils/email"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	db, err := sql.Open("postgres", cfg.DBConn)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Fatalf("Failed to ping database: %v", err)
	}
	if err := migrations.Apply(context.Background(), db); err != nil {
		logger.Fatalf("Failed to apply migrations: %v", err)
	}

	// Initialize layers
	repo := repository.NewRepository(db)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	aiClient := openai.NewClient(cfg, logger)
	catalogClient := pokeapi.NewClient(cfg, logger)
	svc := service.NewService(repo, tokens, aiClient, catalogClient, logger)
	h := handler.NewHandler(svc, cfg, logger)

	// Setup router
	authMW := middleware.NewAuthMiddleware(tokens)
	corsMW := middleware.NewCORSMiddleware(cfg.AllowedOrigin)
	router := h.Router(authMW)
	var root http.Handler = router
	root = middleware.RequestLogger(logger)(root)
	root = corsMW.Handler(root)

	// Collection digest emails, only when SMTP is configured
	if cfg.SMTPHost != "" {
		sender := email.NewSender(cfg, logger)
		sched := scheduler.NewScheduler(repo, sender, logger)
		if err := sched.Start(cfg.DigestCron); err != nil {
			logger.Fatalf("Failed to start digest scheduler: %v", err)
		}
		defer sched.Stop()
	}

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      root,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
