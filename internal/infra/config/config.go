package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	CORSOrigins  []string

	// Primary store (Supabase REST). Leaving these empty is a valid
	// configuration: the service runs against MongoDB only.
	SupabaseURL string
	SupabaseKey string

	// Fallback store (MongoDB)
	MongoURI string
	MongoDB  string

	// Notifications (optional)
	RabbitMQURL string
	MailHost    string
	MailPort    int
	MailUser    string
	MailPass    string
	MailFrom    string
	MailTo      string
}

// LoadConfig loads configuration from environment variables, reading a
// .env file first when one exists.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	config := &Config{
		Port:         getEnv("PORT", "8001"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		CORSOrigins:  []string{getEnv("CORS_ORIGIN", "*")},

		SupabaseURL: getEnv("SUPABASE_URL", ""),
		SupabaseKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),

		MongoURI: getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:  getEnv("MONGO_DB", "santos_cleaning"),

		RabbitMQURL: getEnv("RABBITMQ_URL", ""),
		MailHost:    getEnv("MAIL_HOST", ""),
		MailPort:    getEnvAsInt("MAIL_PORT", 587),
		MailUser:    getEnv("MAIL_USER", ""),
		MailPass:    getEnv("MAIL_PASS", ""),
		MailFrom:    getEnv("MAIL_FROM", "no-reply@santoscsolutions.com"),
		MailTo:      getEnv("MAIL_NOTIFY_TO", ""),
	}

	return config, nil
}

// SupabaseConfigured reports whether the primary store can be used at all.
func (c *Config) SupabaseConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

func (c *Config) MailConfigured() bool {
	return c.MailHost != "" && c.MailTo != ""
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
