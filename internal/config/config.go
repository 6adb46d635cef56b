package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultStatePath  = "commandcenter.db"
	defaultMigrations = "migrations"
)

type Config struct {
	Env    string
	DB     db
	Server server
	State  state
	Logger logger
}

type db struct {
	DatabaseURI string `env:"DATABASE_URI"`
	Migrations  string `env:"MIGRATIONS_PATH"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

// state is the local SQLite file that keeps per-installation UI state
// (the punchline rotation cache) across restarts.
type state struct {
	Path string `env:"STATE_PATH"`
}

type logger struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// MustLoad reads the environment (optionally seeded from a .env file)
// and returns the service configuration.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()

	cfg := Config{
		Env: viper.GetString("app_env"),
		DB: db{
			DatabaseURI: viper.GetString("database_uri"),
			Migrations:  viper.GetString("migrations_path"),
		},
		Server: server{RunAddress: viper.GetString("run_address")},
		State:  state{Path: viper.GetString("state_path")},
		Logger: logger{LogLevel: viper.GetString("log_level")},
	}

	if cfg.Env == "" {
		cfg.Env = EnvLocal
	}
	if cfg.Server.RunAddress == "" {
		cfg.Server.RunAddress = defaultRunAddress
	}
	if cfg.State.Path == "" {
		cfg.State.Path = defaultStatePath
	}
	if cfg.DB.Migrations == "" {
		cfg.DB.Migrations = defaultMigrations
	}

	return &cfg
}
