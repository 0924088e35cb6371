package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsportal/config"
	"newsportal/handlers"
	"newsportal/helper"
	"newsportal/middleware"
	"newsportal/migration"
	"newsportal/repositories"
	"newsportal/services"
	"newsportal/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	seed := flag.Bool("seed", false, "provision the admin account and demo content, then exit")
	flag.Parse()

	if err := run(*seed); err != nil {
		log.WithError(err).Fatal("Server exited")
	}
}

func run(seed bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	config.ConfigureLogging(cfg)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer config.CloseDB(db)

	if err := migration.Migrate(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	if seed {
		if _, err := migration.Seed(context.Background(), db, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
		return nil
	}

	// Login rate limiting is shared through Redis when available.
	var loginLimiter middleware.Limiter = middleware.NewMemoryLimiter(cfg.LoginRateLimit, cfg.LoginRateWindow)
	if cfg.UseRedis() {
		rdb, err := storage.ConnectRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Warn("Redis unavailable, falling back to in-memory rate limiting")
		} else {
			defer rdb.Close()
			loginLimiter = middleware.NewRedisLimiter(rdb, cfg.LoginRateLimit, cfg.LoginRateWindow)
		}
	}

	var objectStore services.ObjectStore
	s3Client, err := storage.NewS3Client(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket, cfg.S3.PublicURL)
	if err != nil {
		return fmt.Errorf("configure object storage: %w", err)
	}
	if s3Client != nil {
		objectStore = s3Client
	} else {
		log.Warn("Object storage not configured, media uploads are disabled")
	}

	validate, translator, err := helper.NewValidator()
	if err != nil {
		return err
	}
	httpHelper := helper.NewHTTPHelper(validate, translator)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	// Initialize services and routes
	router := handlers.NewRouter(handlers.RouterConfig{
		ArticleService:  services.NewArticleService(articleRepo, categoryRepo, validate),
		CategoryService: services.NewCategoryService(categoryRepo, validate),
		StatsService:    services.NewStatsService(statsRepo),
		AuthService:     services.NewAuthService(userRepo, validate, []byte(cfg.JWTSecret), cfg.JWTExpiration),
		MediaService:    services.NewMediaService(objectStore, cfg.MediaFolder, cfg.MaxUploadBytes),
		Helper:          httpHelper,
		JWTSecret:       []byte(cfg.JWTSecret),
		LoginLimiter:    loginLimiter,
		CORSOrigins:     cfg.CORSOrigins,
		MaxUploadBytes:  cfg.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("port", cfg.Port).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}
	log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
