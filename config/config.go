package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Mongo MongoConfig

	// Auth
	Auth AuthConfig

	// GoldenSage specifics
	Gemini         GeminiConfig
	SMS            SMSConfig
	GoogleCalendar GoogleCalendarConfig
	Assistant      AssistantConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MongoConfig struct {
	URI      string
	Database string
}

type AuthConfig struct {
	JWTSecret      string
	AccessDuration time.Duration
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// SMSConfig configures the SNS dispatch path for SOS alerts.
// HospitalNumbers is a comma-separated list in config/env form.
type SMSConfig struct {
	Enabled         bool
	Region          string
	SenderID        string
	HospitalNumbers []string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type AssistantConfig struct {
	HistorySize     int
	HistoryTurns    int
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Mongo.URI = viper.GetString("mongo.uri")
	cfg.Mongo.Database = viper.GetString("mongo.database")
	if mongoURI := viper.GetString("mongo_uri"); mongoURI != "" {
		cfg.Mongo.URI = mongoURI
	}

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if jwtSecret := viper.GetString("jwt_secret"); jwtSecret != "" {
		cfg.Auth.JWTSecret = jwtSecret
	}
	cfg.Auth.AccessDuration = viper.GetDuration("auth.access_duration")
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}

	// Gemini (optional: the assistant degrades to keyword matching without it)
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// SMS
	cfg.SMS.Enabled = viper.GetBool("sms.enabled")
	cfg.SMS.Region = viper.GetString("sms.region")
	cfg.SMS.SenderID = viper.GetString("sms.sender_id")

	// Split hospital numbers since viper might not parse array seamlessly from env
	var numbers []string
	if raw := viper.GetString("sms.hospital_numbers"); raw != "" {
		for _, n := range strings.Split(raw, ",") {
			n = strings.TrimSpace(n)
			if n != "" {
				numbers = append(numbers, n)
			}
		}
	}
	cfg.SMS.HospitalNumbers = numbers

	// Google Calendar (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Assistant
	cfg.Assistant.HistorySize = viper.GetInt("assistant.history_size")
	cfg.Assistant.HistoryTurns = viper.GetInt("assistant.history_turns")
	cfg.Assistant.RateLimitPerMin = viper.GetInt("assistant.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("mongo.uri", "mongodb://localhost:27017")
	viper.SetDefault("mongo.database", "goldensage")
	viper.SetDefault("auth.access_duration", "720h")
	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("sms.enabled", false)
	viper.SetDefault("sms.region", "ap-south-1")
	viper.SetDefault("assistant.history_size", 1024)
	viper.SetDefault("assistant.history_turns", 6)
	viper.SetDefault("assistant.rate_limit_per_min", 30)
}
