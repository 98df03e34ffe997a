package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"birrieria-admin/internal/adapters/assets"
	"birrieria-admin/internal/adapters/auth/fireauth"
	"birrieria-admin/internal/adapters/notify/whatsapp"
	"birrieria-admin/internal/adapters/storage/postgres"
	"birrieria-admin/internal/platform/config"
	"birrieria-admin/internal/platform/logger"
	"birrieria-admin/internal/ports/auth"
	"birrieria-admin/internal/router"
)

// @title Birriería La Purísima - API administrativa
// @version 1.0
// @description Generación de documentos laborales, calendario y minutas de supervisión de la cadena.
// @BasePath /api/v1
func main() {
	// .env solo para dev; en prod las vars vienen del ambiente
	_ = godotenv.Load()

	cfg := config.Load()

	appLog, err := logger.NewZap(logger.ParseLevel(cfg.LogLevel), "birrieria-admin")
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer appLog.Sync()

	// Sin proveedor de identidad configurado el middleware queda en
	// modo dev (X-Debug-User-ID).
	var verifier auth.AuthVerifier
	if cfg.AuthBaseURL != "" && cfg.AuthAPIKey != "" {
		verifier = fireauth.NewVerifier(fireauth.NewClient(fireauth.Config{
			BaseURL: cfg.AuthBaseURL,
			APIKey:  cfg.AuthAPIKey,
		}))
	}

	// Sin DB_DSN el router usa repos en memoria (dev/demo).
	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = postgres.Open(cfg.DBDSN)
		if err != nil {
			log.Fatalf("postgres: %v", err)
		}
		defer db.Close()
	}

	r := router.NewRouter(router.Options{
		AuthVerifier: verifier,
		DB:           db,
		Assets:       assets.NewFetcher(assets.Config{LogoURL: cfg.AssetLogoURL}, appLog),
		Notifier: whatsapp.New(whatsapp.Config{
			APIURL: cfg.WhatsAppAPIURL,
			APIKey: cfg.WhatsAppAPIKey,
		}, appLog),
		Log: appLog,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	appLog.Info("starting server", map[string]any{"addr": srv.Addr, "env": cfg.Env})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		appLog.Error("server error", map[string]any{"error": err.Error()})
	}
}
