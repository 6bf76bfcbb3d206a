package app

import (
	"os"
	"time"

	"github.com/shandysiswandi/godocstore/internal/pkg/pkgconfig"
)

const defaultConfigPath = "./config/config.yaml"

// Settings is the typed view of the configuration the service runs with.
type Settings struct {
	HTTPAddress     string
	ShutdownTimeout time.Duration
	StorageDir      string
	SwaggerFile     string
	AssetsDir       string
	GenerateDocs    bool
	LogLevel        string
	TZ              string
}

func defaults() map[string]any {
	return map[string]any{
		"server.address.http":     ":3000",
		"server.shutdown_timeout": "10s",
		"storage.dir":             "./data",
		"docs.swagger_file":       "./swagger.json",
		"docs.assets_dir":         "./swagger-ui",
		"docs.generate":           false,
		"log.level":               "info",
		"tz":                      "",
	}
}

func configPath() string {
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		return p
	}
	return defaultConfigPath
}

func loadSettings(cfg pkgconfig.Config) Settings {
	s := Settings{
		HTTPAddress:     cfg.GetString("server.address.http"),
		ShutdownTimeout: cfg.GetDuration("server.shutdown_timeout"),
		StorageDir:      cfg.GetString("storage.dir"),
		SwaggerFile:     cfg.GetString("docs.swagger_file"),
		AssetsDir:       cfg.GetString("docs.assets_dir"),
		GenerateDocs:    cfg.GetBool("docs.generate"),
		LogLevel:        cfg.GetString("log.level"),
		TZ:              cfg.GetString("tz"),
	}

	if s.ShutdownTimeout <= 0 {
		s.ShutdownTimeout = 10 * time.Second
	}

	return s
}
