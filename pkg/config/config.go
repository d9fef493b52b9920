package config

import (
	"log"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. It is built once at startup and
// passed explicitly into the components that need it; there is no implicit
// global configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// TemplateDir is where document templates live. The registry
	// provisions the built-in defaults here on first use.
	TemplateDir string

	// Product identity stamped into every generated document.
	ProductName    string
	ProductVersion string
	PrintedBy      string

	// RateLimit uses the limiter formatted syntax, e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("TEMPLATE_DIR", filepath.Join("data", "templates"))
	viper.SetDefault("PRODUCT_NAME", "School Ledger")
	viper.SetDefault("PRODUCT_VERSION", "v1.0")
	viper.SetDefault("PRINTED_BY", "نظام الحسابات المدرسية")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.TemplateDir = viper.GetString("TEMPLATE_DIR")
	cfg.ProductName = viper.GetString("PRODUCT_NAME")
	cfg.ProductVersion = viper.GetString("PRODUCT_VERSION")
	cfg.PrintedBy = viper.GetString("PRINTED_BY")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
