package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del servicio, leída del ambiente.
type Config struct {
	Env  string
	Port string

	// DSN de Postgres; vacío = repos en memoria (modo dev).
	DBDSN string

	AuthBaseURL string
	AuthAPIKey  string

	AssetLogoURL string

	WhatsAppAPIURL string
	WhatsAppAPIKey string

	LogLevel  string
	LogFormat string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
}

// Load arma la configuración desde variables de ambiente con defaults
// razonables para desarrollo local.
func Load() Config {
	v := viper.New()

	v.SetDefault("ENV", "dev")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_DSN", "")
	v.SetDefault("AUTH_BASE_URL", "")
	v.SetDefault("AUTH_API_KEY", "")
	v.SetDefault("ASSET_LOGO_URL", "")
	v.SetDefault("WHATSAPP_API_URL", "")
	v.SetDefault("WHATSAPP_API_KEY", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("HTTP_READ_TIMEOUT", 10*time.Second)
	v.SetDefault("HTTP_WRITE_TIMEOUT", 30*time.Second)
	v.SetDefault("HTTP_IDLE_TIMEOUT", 60*time.Second)

	v.AutomaticEnv()

	return Config{
		Env:              strings.ToLower(v.GetString("ENV")),
		Port:             v.GetString("PORT"),
		DBDSN:            v.GetString("DB_DSN"),
		AuthBaseURL:      v.GetString("AUTH_BASE_URL"),
		AuthAPIKey:       v.GetString("AUTH_API_KEY"),
		AssetLogoURL:     v.GetString("ASSET_LOGO_URL"),
		WhatsAppAPIURL:   v.GetString("WHATSAPP_API_URL"),
		WhatsAppAPIKey:   v.GetString("WHATSAPP_API_KEY"),
		LogLevel:         v.GetString("LOG_LEVEL"),
		LogFormat:        v.GetString("LOG_FORMAT"),
		HTTPReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
		HTTPWriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
		HTTPIdleTimeout:  v.GetDuration("HTTP_IDLE_TIMEOUT"),
	}
}

// IsProd indica si el servicio corre en producción.
func (c Config) IsProd() bool {
	return c.Env == "prod" || c.Env == "production"
}
