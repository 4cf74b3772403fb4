package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr         string
	DBPath       string
	Namespace    string
	LogLevel     string
	TeacherEmail string
	TeacherPass  string
	TeacherName  string
	SeedDemoData bool
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:         envOr("ADDR", ":8080"),
		DBPath:       envOr("DB_PATH", "file:englishclub.db"),
		Namespace:    envOr("NAMESPACE", "tec_v5_"),
		LogLevel:     envOr("LOG_LEVEL", "INFO"),
		TeacherEmail: envOr("TEACHER_EMAIL", "tahmidhc245@gmail.com"),
		TeacherPass:  envOr("TEACHER_PASS", ""),
		TeacherName:  envOr("TEACHER_NAME", "Tahamid Teacher"),
		SeedDemoData: envBoolOr("SEED_DEMO_DATA", true),
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.Namespace == "" {
		return fmt.Errorf("NAMESPACE cannot be empty")
	}
	if c.TeacherEmail == "" {
		return fmt.Errorf("TEACHER_EMAIL cannot be empty")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
