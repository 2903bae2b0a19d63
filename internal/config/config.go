package config

import (
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"

	"taskhive/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

const (
	EnvModeDevelopment = "development"
	EnvModeProduction  = "production"

	DatabaseDriverSqlite   = "sqlite"
	DatabaseDriverPostgres = "postgres"
)

type EnvVariables struct {
	IsTesting bool

	EnvMode         string `env:"ENV_MODE" env-default:"development"`
	Port            string `env:"PORT"     env-default:"4010"`
	BackendRootPath string

	// Database. The sqlite defaults keep local development and `go test`
	// working without any infrastructure; production sets postgres via env.
	DatabaseDriver string `env:"DATABASE_DRIVER" env-default:"sqlite"`
	DatabaseDsn    string `env:"DATABASE_DSN"    env-default:"file::memory:?cache=shared"`

	// Cache (optional; project caching is disabled when VALKEY_HOST is empty)
	ValkeyHost     string `env:"VALKEY_HOST"`
	ValkeyPort     string `env:"VALKEY_PORT" env-default:"6379"`
	ValkeyUsername string `env:"VALKEY_USERNAME"`
	ValkeyPassword string `env:"VALKEY_PASSWORD"`
	ValkeyIsSsl    bool   `env:"VALKEY_IS_SSL"`
}

func (e EnvVariables) IsCacheEnabled() bool {
	return e.ValkeyHost != ""
}

var (
	env  EnvVariables
	once sync.Once

	shouldShutdown atomic.Bool
)

// StartListeningForShutdownSignal flips the shutdown flag on SIGINT or
// SIGTERM so long-running workers can drain between ticks.
func StartListeningForShutdownSignal() {
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		shouldShutdown.Store(true)
	}()
}

func IsShouldShutdown() bool {
	return shouldShutdown.Load()
}

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	env.BackendRootPath = backendRoot

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.EnvMode != EnvModeDevelopment && env.EnvMode != EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	if env.DatabaseDriver != DatabaseDriverSqlite && env.DatabaseDriver != DatabaseDriverPostgres {
		log.Error("DATABASE_DRIVER is invalid", "driver", env.DatabaseDriver)
		os.Exit(1)
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}
}
