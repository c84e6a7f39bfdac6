// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once, kept in a
// process-wide shared cell, and copied out on subsequent calls.
//
// The package loads a .env file on first use, parses struct fields with
// caarlos0/env and validates the result with go-playground/validator
// `validate` tags.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/compose/core/config"
//
//	type DatabaseConfig struct {
//		Host     string `env:"DB_HOST" envDefault:"localhost"`
//		Port     int    `env:"DB_PORT" envDefault:"5432"`
//		Username string `env:"DB_USER,required"`
//		Password string `env:"DB_PASS,required" validate:"min=8"`
//	}
//
//	func main() {
//		var db DatabaseConfig
//
//		// Load with error handling
//		if err := config.Load(&db); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&db)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 DatabaseConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 DatabaseConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	type ServerConfig struct {
//		Port int `env:"PORT" envDefault:"8080"`
//	}
//
//	type RedisConfig struct {
//		URL string `env:"REDIS_URL,required"`
//	}
//
//	// Each type has its own cache entry
//	config.MustLoad(&ServerConfig{})
//	config.MustLoad(&RedisConfig{})
//
// A failed first load is cached too; fix the environment and restart.
// A missing .env file is fine; a malformed one makes every load fail with ErrDotenv.
//
// # YAML Files
//
// LoadFile decodes a YAML base file, then applies environment overrides and
// validation. It reads the file on every call:
//
//	type LogConfig struct {
//		Level  string `yaml:"level" env:"COMPOSE_LOG_LEVEL" validate:"oneof=debug info warn error"`
//		Format string `yaml:"format" env:"COMPOSE_LOG_FORMAT" validate:"oneof=text json"`
//	}
//
//	var lc LogConfig
//	err := config.LoadFile("compose.yaml", &lc)
package config
