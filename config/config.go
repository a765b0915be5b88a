package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings and the upstream financial-data provider connection details.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	API_KEY=your-fmp-api-key
//	PROVIDER_BASE_URL=https://financialmodelingprep.com/api/v3
//	PROVIDER_TICKER=AAPL
//	PROVIDER_PERIOD=annual
//	PROVIDER_TIMEOUT_SECONDS=10
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Provider ProviderConfig // Financial Modeling Prep connection settings
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// ProviderConfig defines connection details for the upstream financial-data provider.
//
// Fields:
//   - APIKey: credential sent as the apikey query parameter; required.
//   - BaseURL: API root, without a trailing slash.
//   - Ticker: company symbol whose income statements are fetched.
//   - Period: reporting period requested from the provider ("annual").
//   - TimeoutSeconds: outbound HTTP client timeout.
type ProviderConfig struct {
	APIKey         string
	BaseURL        string
	Ticker         string
	Period         string
	TimeoutSeconds int
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all fields except API_KEY, which has no safe default.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Normalizes the base URL so endpoint paths can be appended directly.
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("PROVIDER_BASE_URL", "https://financialmodelingprep.com/api/v3")
	viper.SetDefault("PROVIDER_TICKER", "AAPL")
	viper.SetDefault("PROVIDER_PERIOD", "annual")
	viper.SetDefault("PROVIDER_TIMEOUT_SECONDS", 10)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Provider: ProviderConfig{
			APIKey:         viper.GetString("API_KEY"),
			BaseURL:        strings.TrimRight(viper.GetString("PROVIDER_BASE_URL"), "/"),
			Ticker:         viper.GetString("PROVIDER_TICKER"),
			Period:         viper.GetString("PROVIDER_PERIOD"),
			TimeoutSeconds: viper.GetInt("PROVIDER_TIMEOUT_SECONDS"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// StatementsURL returns the income-statement endpoint for the configured
// ticker and period. The API key is not part of the URL; the provider client
// appends it per request so it cannot leak through logs.
func (p ProviderConfig) StatementsURL() string {
	return fmt.Sprintf("%s/income-statement/%s?period=%s", p.BaseURL, p.Ticker, p.Period)
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Provider.APIKey == "" {
		missing = append(missing, "API_KEY")
	}
	if AppConfig.Provider.BaseURL == "" {
		missing = append(missing, "PROVIDER_BASE_URL")
	}
	if AppConfig.Provider.Ticker == "" {
		missing = append(missing, "PROVIDER_TICKER")
	}
	if AppConfig.Provider.Period == "" {
		missing = append(missing, "PROVIDER_PERIOD")
	}

	if len(missing) > 0 {
		log.Fatalf("Missing required environment variables: %v\n", missing)
	}
}
