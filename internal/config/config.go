package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Provider exposes configuration to the rest of the application so that
// tests can substitute their own values.
type Provider interface {
	GetServerAddr() string
	GetAppBaseURL() string
	GetDataPath() string
	GetDataWatch() bool
	GetAssetDir() string
	GetAssetCheck() bool
	GetAPIRateLimit() int
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr   string
	AppBaseURL   string
	DataPath     string
	DataWatch    bool
	AssetDir     string
	AssetCheck   bool
	APIRateLimit int
	LogFormat    string
	LogLevel     string
}

// New loads configuration from a .env file, if present, and environment
// variables. Every setting has a default so the site runs with no setup.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() *Config {
	return &Config{
		ServerAddr:   getEnv("SERVER_ADDR", ":8080"),
		AppBaseURL:   getEnv("APP_BASE_URL", "http://localhost:8080"),
		DataPath:     os.Getenv("HOSPITAL_DATA_PATH"),
		DataWatch:    getBool("HOSPITAL_DATA_WATCH", false),
		AssetDir:     getEnv("ASSET_DIR", "web/public"),
		AssetCheck:   getBool("ASSET_CHECK", true),
		APIRateLimit: getInt("API_RATE_LIMIT", 60),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		LogLevel:     getEnv("LOG_LEVEL", "debug"),
	}
}

func (c *Config) GetServerAddr() string { return c.ServerAddr }
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }
func (c *Config) GetDataPath() string   { return c.DataPath }
func (c *Config) GetDataWatch() bool    { return c.DataWatch }
func (c *Config) GetAssetDir() string   { return c.AssetDir }
func (c *Config) GetAssetCheck() bool   { return c.AssetCheck }
func (c *Config) GetAPIRateLimit() int  { return c.APIRateLimit }
func (c *Config) GetLogFormat() string  { return c.LogFormat }
func (c *Config) GetLogLevel() string   { return c.LogLevel }

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("Invalid boolean for %s=%q, using default %t", key, v, fallback)
		return fallback
	}
	return b
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Invalid positive integer for %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
