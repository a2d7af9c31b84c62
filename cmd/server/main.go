package main

import (
	"flag"
	"os"
	"strings"
	"syscall"

	"github.com/linque-cms/internal/app"
	"github.com/linque-cms/internal/config"
	"github.com/linque-cms/internal/logger"
	"github.com/linque-cms/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if cfg.Server.Mode == "release" {
		if isWeakSecret(cfg.JWT.SecretKey) {
			stdLog.Fatalf("JWT secret is weak or still the default value, set a strong random key in production")
		}
	} else if isWeakSecret(cfg.JWT.SecretKey) {
		stdLog.Printf("warning: JWT secret is weak or still the default value")
	}

	// The content store is optional. Without one the site serves the built-in
	// catalog and the admin content endpoints fail closed.
	var db *gorm.DB
	if cfg.Database.Configured() {
		opened, err := models.OpenDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
			MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
			MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
			ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
			ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
		})
		if err != nil {
			logger.Warnw("content_store_unreachable", "error", err)
		} else {
			db = opened
		}
	}

	if db != nil {
		if err := models.AutoMigrate(db); err != nil {
			stdLog.Fatalf("database migration failed: %v", err)
		}

		defaultAdminUser := os.Getenv("LQ_DEFAULT_ADMIN_USERNAME")
		defaultAdminPass := os.Getenv("LQ_DEFAULT_ADMIN_PASSWORD")
		if cfg.Server.Mode == "release" && defaultAdminPass == "" {
			stdLog.Printf("warning: LQ_DEFAULT_ADMIN_PASSWORD not set, skipped default admin setup")
		} else if err := models.InitDefaultAdmin(db, defaultAdminUser, defaultAdminPass); err != nil {
			stdLog.Printf("warning: default admin setup failed: %v", err)
		}
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "run mode: all (default), api, worker")
	flag.Parse()

	if err := app.Run(db, app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{os.Interrupt, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("server exited with error: %v", err)
	}
}

func isWeakSecret(secret string) bool {
	trimmed := strings.TrimSpace(secret)
	if len(trimmed) < 16 {
		return true
	}
	switch strings.ToLower(trimmed) {
	case "secret", "changeme", "change-me", "your-secret-key", "linque-secret-key":
		return true
	}
	return false
}
