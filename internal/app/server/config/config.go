package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPath   = ".env"
	SecretKey = "SecRetKey"
	EnvLocal  = "local"
	EnvDev    = "dev"
	EnvProd   = "prod"
)

const (
	StorageMemory   = "memory"
	StorageSQLite   = "sqlite"
	StoragePostgres = "postgres"
)

type Config struct {
	Env      string
	Mutation string
	Secret   string
	SeedPath string
	DB       db
	Server   server
	View     view
}

type db struct {
	Storage     string `env:"STORAGE" envDefault:"memory"`
	DatabaseURI string `env:"DATABASE_URI"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"devdash.db"`
	Migrations  string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS" envDefault:":8080"`
}

type view struct {
	TTL time.Duration `env:"VIEW_TTL" envDefault:"15m"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", EnvLocal)
	v.SetDefault("run_address", ":8080")
	v.SetDefault("storage", StorageMemory)
	v.SetDefault("sqlite_path", "devdash.db")
	v.SetDefault("migrations_path", "migrations")
	v.SetDefault("mutation_mode", "stub")
	v.SetDefault("view_ttl", 15*time.Minute)
}

// MustLoad читает .env (если есть) и переменные окружения
func MustLoad() *Config {
	if err := godotenv.Load(envPath); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return load(v)
}

func load(v *viper.Viper) *Config {
	secret := v.GetString("secret_key")
	if secret == "" {
		secret = SecretKey
	}

	return &Config{
		Env:      v.GetString("app_env"),
		Mutation: v.GetString("mutation_mode"),
		Secret:   secret,
		SeedPath: v.GetString("seed_path"),
		DB: db{
			Storage:     v.GetString("storage"),
			DatabaseURI: v.GetString("database_uri"),
			SQLitePath:  v.GetString("sqlite_path"),
			Migrations:  v.GetString("migrations_path"),
		},
		Server: server{RunAddress: v.GetString("run_address")},
		View:   view{TTL: v.GetDuration("view_ttl")},
	}
}
