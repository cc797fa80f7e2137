package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AuthUsername  string
	AuthPassword  string
	SessionSecret string
	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBPath        string
	StaticDir     string
	TemplatesDir  string
	UIAddr        string
	UIPort        string
}

const (
	DefaultAuthUsername  = "admin"
	DefaultAuthPassword  = "admin"
	// Public value; override SESSION_SECRET outside development
	DefaultSessionSecret = "codeline-challenge"
	// sqlserver, postgres or sqlite
	DefaultDBDriver   = "sqlserver"
	DefaultDBHost     = "CODELINE002"
	DefaultDBPort     = "1433"
	DefaultDBUser     = "sa"
	DefaultDBPassword = "root"
	DefaultDBName     = "CodelineChallenge1"
	DefaultDBSSLMode  = "disable"
	// Only used by the sqlite driver
	DefaultDBPath       = "codeline.db"
	DefaultStaticDir    = "static"
	DefaultTemplatesDir = "templates"
	// Empty address listens on all interfaces
	DefaultUIAddr = ""
	DefaultUIPort = "8080"
)

// EnvFile is the system-wide .env location, checked before the project root.
const EnvFile = "/etc/codeline/.env"

// LoadEnv loads .env from EnvFile, then falls back to the working directory.
// A missing file is not an error; defaults apply.
func LoadEnv() {
	if err := godotenv.Load(EnvFile); err != nil {
		if err2 := godotenv.Load(); err2 != nil {
			log.Println("No .env found in /etc/codeline or project root; using defaults.")
		} else {
			log.Println("Loaded .env from project root.")
		}
	} else {
		log.Println("Loaded .env from " + EnvFile)
	}
}

func LoadConfig() *Config {
	return &Config{
		AuthUsername:  getEnvOrDefault("AUTH_USERNAME", DefaultAuthUsername),
		AuthPassword:  getEnvOrDefault("AUTH_PASSWORD", DefaultAuthPassword),
		SessionSecret: getEnvOrDefault("SESSION_SECRET", DefaultSessionSecret),
		DBDriver:      getEnvOrDefault("DB_DRIVER", DefaultDBDriver),
		DBHost:        getEnvOrDefault("DB_HOST", DefaultDBHost),
		DBPort:        getEnvOrDefault("DB_PORT", DefaultDBPort),
		DBUser:        getEnvOrDefault("DB_USER", DefaultDBUser),
		DBPassword:    getEnvOrDefault("DB_PASSWORD", DefaultDBPassword),
		DBName:        getEnvOrDefault("DB_NAME", DefaultDBName),
		DBSSLMode:     getEnvOrDefault("DB_SSL_MODE", DefaultDBSSLMode),
		DBPath:        getEnvOrDefault("DB_PATH", DefaultDBPath),
		StaticDir:     getEnvOrDefault("STATIC_DIR", DefaultStaticDir),
		TemplatesDir:  getEnvOrDefault("TEMPLATES_DIR", DefaultTemplatesDir),
		UIAddr:        getEnvOrDefault("UI_ADDR", DefaultUIAddr),
		UIPort:        getEnvOrDefault("UI_PORT", DefaultUIPort),
	}
}

// UsesDefaultSessionSecret reports whether the cookie store key is still the
// built-in DefaultSessionSecret.
func (c *Config) UsesDefaultSessionSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}

// Addr is the listen address, UI_ADDR:UI_PORT.
func (c *Config) Addr() string {
	return c.UIAddr + ":" + c.UIPort
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
