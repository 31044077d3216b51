// Package config lee la configuración desde variables de entorno.
// Con todo vacío el programa usa el store en memoria y no necesita nada más.
package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	AppName   string `env:"APP_NAME" env-default:"pet-inventory"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`

	// Port del servidor HTTP (subcomando serve).
	Port string `env:"PORT" env-default:"8080" validate:"numeric"`

	// APIURL es la API que consulta el subcomando list.
	APIURL string `env:"API_URL" env-default:"http://localhost:8080" validate:"url"`

	Store Store
}

type Store struct {
	Driver     string `env:"STORE_DRIVER" env-default:"memory" validate:"oneof=memory postgres sqlite"`
	DSN        string `env:"DB_DSN" validate:"required_if=Driver postgres"`
	SQLitePath string `env:"SQLITE_PATH" env-default:"pets.db" validate:"required_if=Driver sqlite"`
}

// Load valida solo lo que usan todos los comandos (store y logging).
// PORT y API_URL se revisan con RequireServer y RequireAPI.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env: %w", err)
	}

	if err := validator.New().StructExcept(cfg, "Port", "APIURL"); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// RequireServer valida PORT (subcomando serve).
func (c Config) RequireServer() error {
	if err := validator.New().StructPartial(c, "Port"); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// RequireAPI valida API_URL (subcomando list).
func (c Config) RequireAPI() error {
	if err := validator.New().StructPartial(c, "APIURL"); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr para http.Server.
func (c Config) Addr() string {
	return ":" + c.Port
}
