package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"txt_to_excel/internal/config"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds application configuration
type Config struct {
	// TemplatePath is the Excel template to fill; empty means the bundled
	// default template is materialized and used.
	TemplatePath string

	// StartRow is the first row of column 1 that receives a text unit.
	StartRow int
}

// SetupEnvironment loads .env file and configures zerolog output and log level.
func SetupEnvironment() {
	// Load .env file if it exists
	err := godotenv.Load()

	// Configure logging
	if os.Getenv("ENV") == "production" {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	levelStr := strings.ToLower(os.Getenv("LOGLEVEL"))
	switch levelStr {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	case "disabled":
		zerolog.SetGlobalLevel(zerolog.Disabled)
	case "":
		// Default based on environment
		if os.Getenv("ENV") == "production" {
			zerolog.SetGlobalLevel(zerolog.WarnLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Msgf("Unknown LOGLEVEL '%s', defaulting to info.", levelStr)
	}

	// wait until now to report on the .env file so we have the chance to set up logging first
	if err == nil {
		log.Debug().Msg("Loaded environment variables from .env file.")
	} else {
		log.Debug().Msg("No .env file found or error loading .env file; proceeding with existing environment variables.")
	}
}

// LoadConfig loads configuration from environment variables.
// Both settings are optional; command line flags override them.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		TemplatePath: os.Getenv("TEMPLATE_PATH"),
		StartRow:     config.DefaultStartRow,
	}

	if raw := os.Getenv("START_ROW"); raw != "" {
		startRow, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("START_ROW must be an integer, got %q", raw)
		}
		if startRow < config.MinStartRow {
			return nil, fmt.Errorf("START_ROW must be at least %d, got %d", config.MinStartRow, startRow)
		}
		cfg.StartRow = startRow
	}

	return cfg, nil
}
