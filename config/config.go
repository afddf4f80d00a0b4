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

	// Campus Day Planner specifics
	GoogleCalendar GoogleCalendarConfig
	Gemini         GeminiConfig
	Postgres       PostgresConfig
	Planner        PlannerConfig
	Timetable      TimetableConfig
	RateLimit      RateLimitConfig
	Auth           AuthConfig
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

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type GeminiConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type PostgresConfig struct {
	DSN string
}

// PlannerConfig holds the scheduling-pipeline knobs. Defaults follow the
// product rules: 08:00-22:00 planning window, 4h global study cap, 2h
// per-assignment cap.
type PlannerConfig struct {
	Timezone            string
	DayStartHour        int
	DayEndHour          int
	MaxStudyHoursPerDay float64
	MaxAssignmentHours  float64
	MaxBlockHours       float64
	MinBlockMinutes     int
	MinFreeBlockMinutes int
	CacheTTL            time.Duration
	CacheRetentionDays  int
	MinFreeHours        float64
}

type TimetableConfig struct {
	Path                   string // optional YAML override; embedded defaults otherwise
	ArrivalBufferMinutes   int
	DepartureBufferMinutes int
	LateNightHour          int
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// AuthConfig maps static bearer tokens to user ids. Single-tenant friendly:
// one token per user, rotated by editing the config.
type AuthConfig struct {
	Tokens map[string]string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
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

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Postgres
	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}

	// Planner
	cfg.Planner.Timezone = viper.GetString("planner.timezone")
	cfg.Planner.DayStartHour = viper.GetInt("planner.day_start_hour")
	cfg.Planner.DayEndHour = viper.GetInt("planner.day_end_hour")
	cfg.Planner.MaxStudyHoursPerDay = viper.GetFloat64("planner.max_study_hours_per_day")
	cfg.Planner.MaxAssignmentHours = viper.GetFloat64("planner.max_assignment_hours_per_day")
	cfg.Planner.MaxBlockHours = viper.GetFloat64("planner.max_block_hours")
	cfg.Planner.MinBlockMinutes = viper.GetInt("planner.min_block_minutes")
	cfg.Planner.MinFreeBlockMinutes = viper.GetInt("planner.min_free_block_minutes")
	cfg.Planner.CacheTTL = viper.GetDuration("planner.cache_ttl")
	cfg.Planner.CacheRetentionDays = viper.GetInt("planner.cache_retention_days")
	cfg.Planner.MinFreeHours = viper.GetFloat64("planner.min_free_hours")

	if cfg.Planner.DayEndHour <= cfg.Planner.DayStartHour {
		return nil, fmt.Errorf("planner: day_end_hour (%d) must be after day_start_hour (%d)",
			cfg.Planner.DayEndHour, cfg.Planner.DayStartHour)
	}

	// Timetable
	cfg.Timetable.Path = viper.GetString("timetable.path")
	cfg.Timetable.ArrivalBufferMinutes = viper.GetInt("timetable.arrival_buffer_minutes")
	cfg.Timetable.DepartureBufferMinutes = viper.GetInt("timetable.departure_buffer_minutes")
	cfg.Timetable.LateNightHour = viper.GetInt("timetable.late_night_hour")

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Auth
	cfg.Auth.Tokens = viper.GetStringMapString("auth.tokens")

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

	viper.SetDefault("gemini.model", "gemini-1.5-flash")
	viper.SetDefault("gemini.timeout", "8s")

	viper.SetDefault("planner.timezone", "America/New_York")
	viper.SetDefault("planner.day_start_hour", 8)
	viper.SetDefault("planner.day_end_hour", 22)
	viper.SetDefault("planner.max_study_hours_per_day", 4.0)
	viper.SetDefault("planner.max_assignment_hours_per_day", 2.0)
	viper.SetDefault("planner.max_block_hours", 2.0)
	viper.SetDefault("planner.min_block_minutes", 30)
	viper.SetDefault("planner.min_free_block_minutes", 15)
	viper.SetDefault("planner.cache_ttl", "30m")
	viper.SetDefault("planner.cache_retention_days", 7)
	viper.SetDefault("planner.min_free_hours", 3.0)

	viper.SetDefault("timetable.arrival_buffer_minutes", 0)
	viper.SetDefault("timetable.departure_buffer_minutes", 0)
	viper.SetDefault("timetable.late_night_hour", 22)

	viper.SetDefault("rate_limit.requests_per_min", 60)
}
