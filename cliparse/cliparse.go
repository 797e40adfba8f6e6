package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	EditKeySalt  string
	BaseURL      string
	CatalogPath  string
	StorageKey   string
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("year-review", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.BaseURL, "base-url", "", "Public URL share links point at")

	// Form config
	fs.StringVar(&cfg.CatalogPath, "catalog", "", "YAML question catalog (default: built-in)")
	fs.StringVar(&cfg.StorageKey, "storage-key", "", "Key prefix for stored drafts")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.EditKeySalt, "edit-salt", "", "Edit key salt (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType != "sqlite" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:yearreview.db"
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = os.Getenv("PUBLIC_BASE_URL")
		if cfg.BaseURL == "" {
			cfg.BaseURL = "http://localhost:" + strconv.Itoa(cfg.Port) + "/"
		}
	}

	if cfg.CatalogPath == "" {
		cfg.CatalogPath = os.Getenv("CATALOG_PATH")
	}

	if cfg.StorageKey == "" {
		cfg.StorageKey = os.Getenv("STORAGE_KEY")
		if cfg.StorageKey == "" {
			cfg.StorageKey = "yearReview2025"
		}
	}

	// Secrets - MUST be provided
	if cfg.EditKeySalt == "" {
		cfg.EditKeySalt = os.Getenv("EDIT_KEY_SALT")
	}
	if cfg.EditKeySalt == "" {
		return Config{}, errors.New("EDIT_KEY_SALT required")
	}

	return cfg, nil
}
