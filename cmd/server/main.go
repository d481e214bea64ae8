package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"

	httpapi "vcg-backend/internal/api/http"
	"vcg-backend/internal/cache"
	"vcg-backend/internal/config"
	"vcg-backend/internal/logger"
	"vcg-backend/internal/repository/postgres"
	"vcg-backend/internal/security"
	"vcg-backend/internal/service"
	"vcg-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting VCG Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Storage configuration", "type", cfg.Storage.Type, "max_upload_mb", cfg.Storage.MaxUploadSizeMB)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize fallback cache. An empty Redis address leaves the cache
	// disabled; list endpoints then degrade without a snapshot source.
	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warn("Redis unreachable, continuing without fallback cache", "addr", cfg.Redis.Addr, "error", err)
		} else {
			logger.Info("Redis connection established", "addr", cfg.Redis.Addr)
		}
	}
	snapshots := cache.New(redisClient)

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Storage Service
	var storageService storage.StorageInterface
	var fileHandler *httpapi.FileHandler
	switch cfg.Storage.Type {
	case "", "local":
		logger.Info("Using local storage", "upload_dir", cfg.Storage.UploadDir)
		localStorage, err := storage.NewLocalStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize local storage", "error", err)
			log.Fatalf("Failed to initialize local storage: %v", err)
		}
		storageService = localStorage
		fileHandler = httpapi.NewFileHandler(localStorage)
	case "s3":
		logger.Info("Using S3 storage", "bucket", cfg.Storage.Bucket, "region", cfg.Storage.Region)
		s3Storage, err := storage.NewS3StorageService(context.Background(), cfg.Storage.Bucket, cfg.Storage.Region, cfg.Storage.Endpoint)
		if err != nil {
			logger.Error("Failed to initialize S3 storage", "error", err)
			log.Fatalf("Failed to initialize S3 storage: %v", err)
		}
		storageService = s3Storage
	default:
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not supported", cfg.Storage.Type)
	}

	if err := storageService.EnsureBucket(context.Background()); err != nil {
		logger.Error("Failed to ensure storage bucket", "error", err)
		log.Fatalf("Failed to ensure storage bucket: %v", err)
	}

	// Initialize Email Service
	emailSvc := service.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.User,
		cfg.SMTP.Password,
		cfg.SMTP.From,
		cfg.SMTP.AdminEmail,
	)

	// Initialize Services
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	documentSvc := service.NewDocumentService(storageService, cfg.MaxUploadSizeBytes())
	positionSvc := service.NewPositionService(store.PositionRepository, snapshots)
	applicationSvc := service.NewApplicationService(store.ApplicationRepository, documentSvc, emailSvc, snapshots)
	contactSvc := service.NewContactService(store.ContactMessageRepository, snapshots)

	// Initialize HTTP handlers and router
	router := httpapi.NewRouter(httpapi.RouterDependencies{
		Auth:           httpapi.NewAuthHandler(authSvc),
		Positions:      httpapi.NewPositionHandler(positionSvc),
		Applications:   httpapi.NewApplicationHandler(applicationSvc, cfg.MaxUploadSizeBytes()),
		Contacts:       httpapi.NewContactHandler(contactSvc),
		Files:          fileHandler,
		AuthMiddleware: httpapi.NewAuthMiddleware(tokenManager, store.UserRepository),
		AllowedOrigins: cfg.Server.AllowedOrigins,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("Failed to serve HTTP", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
