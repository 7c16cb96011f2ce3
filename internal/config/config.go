package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	// Environment
	Env string // "development", "production", etc.

	// Server
	ServerAddr string
	BaseURL    string

	// Data
	DataFile string // Launch records CSV, read once at startup

	// Views and static assets
	ViewsDir  string
	StaticDir string

	// Dashboard widget overrides (YAML)
	DashboardConfigFile string

	// TLS/mTLS
	TLSEnabled  bool
	TLSCertFile string
	TLSKeyFile  string
	TLSCAFile   string // CA for verifying client certs (mTLS)

	// CORS
	CORSOrigins string // Comma-separated allowed origins, e.g. "https://example.com,https://app.example.com"

	// Rate limiting
	RateLimitMax int    // Requests per minute per IP, 0 disables the limiter
	RedisURL     string // Optional shared limiter storage, e.g. "redis://localhost:6379/0"

	// Chart images
	ChartWidth  int
	ChartHeight int

	// Site Branding
	SiteTitle  string // env: SITE_TITLE, default: "SpaceX Launch Records Dashboard"
	SiteFooter string // env: SITE_FOOTER
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		Env:                 getEnv("ENV", "development"),
		ServerAddr:          getEnv("SERVER_ADDR", ":8050"),
		BaseURL:             getEnv("BASE_URL", "http://localhost:8050"),
		DataFile:            getEnv("DATA_FILE", "data/spacex_launch_dash.csv"),
		ViewsDir:            getEnv("VIEWS_DIR", "./views"),
		StaticDir:           getEnv("STATIC_DIR", "./static"),
		DashboardConfigFile: getEnv("DASHBOARD_CONFIG", "dashboard.yaml"),
		TLSEnabled:          getEnv("TLS_ENABLED", "") != "",
		TLSCertFile:         getEnv("TLS_CERT_FILE", ""),
		TLSKeyFile:          getEnv("TLS_KEY_FILE", ""),
		TLSCAFile:           getEnv("TLS_CA_FILE", ""),
		CORSOrigins:         getEnv("CORS_ORIGINS", ""),
		RateLimitMax:        getEnvInt("RATE_LIMIT_MAX", 100),
		RedisURL:            getEnv("REDIS_URL", ""),
		ChartWidth:          getEnvInt("CHART_WIDTH", 800),
		ChartHeight:         getEnvInt("CHART_HEIGHT", 450),

		SiteTitle:  getEnv("SITE_TITLE", "SpaceX Launch Records Dashboard"),
		SiteFooter: getEnv("SITE_FOOTER", "Launch records dashboard"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

// IsDev returns true if the environment is set to development.
func (c *Config) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}

// IsMTLSEnabled returns true if mTLS is configured with a CA file.
func (c *Config) IsMTLSEnabled() bool {
	return c.TLSEnabled && c.TLSCAFile != ""
}
