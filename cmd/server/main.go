package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/Cian99/secure-web-project-recipe-sharing/internal/auth"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/blob"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/config"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/service"
	"github.com/Cian99/secure-web-project-recipe-sharing/internal/storage/sqlite"
	"github.com/Cian99/secure-web-project-recipe-sharing/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.Database.Path)

	// Pick the image blob backend
	var blobs blob.Store
	var localUploads *blob.LocalStore
	switch cfg.Uploads.Backend {
	case "s3":
		blobs, err = blob.NewS3Store(context.Background(), blob.S3Config{
			Endpoint:  cfg.Uploads.S3.Endpoint,
			Region:    cfg.Uploads.S3.Region,
			Bucket:    cfg.Uploads.S3.Bucket,
			AccessKey: cfg.Uploads.S3.AccessKey,
			SecretKey: cfg.Uploads.S3.SecretKey,
			Prefix:    cfg.Uploads.S3.Prefix,
		})
		if err != nil {
			slog.Error("Failed to initialize S3 blob store", "error", err)
			os.Exit(1)
		}
		slog.Info("Image uploads go to S3", "bucket", cfg.Uploads.S3.Bucket)
	default:
		localUploads, err = blob.NewLocalStore(cfg.Uploads.Dir, "/uploads")
		if err != nil {
			slog.Error("Failed to initialize local blob store", "error", err)
			os.Exit(1)
		}
		blobs = localUploads
		slog.Info("Image uploads go to local disk", "dir", cfg.Uploads.Dir)
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.SessionMinutes)*time.Minute)
	authenticator := auth.NewPasswordAuthenticator(store)

	router := service.NewRouter(service.RouterConfig{
		Auth:         service.NewAuthService(authenticator, jwtManager, store),
		Recipes:      service.NewRecipeService(store, blobs),
		Favorites:    service.NewFavoritesService(store),
		JWTManager:   jwtManager,
		LocalUploads: localUploads,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	slog.Info("Server starting", "address", addr)
	if err := server.ListenAndServe(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
