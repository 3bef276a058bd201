package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	SecretKey       string
	StaffPassword   string
	SMS             SMSConfig
	DisplayWindow   time.Duration
	HistoryLimit    int
	MenuCacheTTL    time.Duration
	MonitorInterval time.Duration
	ShutdownTimeout time.Duration
	LogLevel        string
}

// SMSConfig describes the outbound text message provider.
type SMSConfig struct {
	AccountSID         string
	AuthToken          string
	FromNumber         string
	BaseURL            string
	DefaultCountryCode string
}

// Enabled reports whether all provider credentials are present.
func (c SMSConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

const (
	defaultRunAddress      = ":8080"
	defaultSecretKey       = "change-me-in-production"
	defaultSMSBaseURL      = "https://api.twilio.com"
	defaultCountryCode     = "+1"
	defaultDisplayWindow   = 5 * time.Minute
	defaultHistoryLimit    = 50
	defaultMenuCacheTTL    = 30 * time.Second
	defaultMonitorInterval = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultLogLevel        = "info"
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:    getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:   getString(lookup, "DATABASE_URI", ""),
		SecretKey:     getString(lookup, "SECRET_KEY", defaultSecretKey),
		StaffPassword: getString(lookup, "STAFF_PASSWORD", ""),
		SMS: SMSConfig{
			AccountSID:         getString(lookup, "TWILIO_ACCOUNT_SID", ""),
			AuthToken:          getString(lookup, "TWILIO_AUTH_TOKEN", ""),
			FromNumber:         getString(lookup, "TWILIO_PHONE_NUMBER", ""),
			BaseURL:            getString(lookup, "TWILIO_BASE_URL", defaultSMSBaseURL),
			DefaultCountryCode: getString(lookup, "SMS_DEFAULT_COUNTRY_CODE", defaultCountryCode),
		},
		DisplayWindow:   getDuration(lookup, "DISPLAY_WINDOW", defaultDisplayWindow),
		HistoryLimit:    getInt(lookup, "HISTORY_LIMIT", defaultHistoryLimit),
		MenuCacheTTL:    getDuration(lookup, "MENU_CACHE_TTL", defaultMenuCacheTTL),
		MonitorInterval: getDuration(lookup, "MONITOR_INTERVAL", defaultMonitorInterval),
		ShutdownTimeout: getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		LogLevel:        getString(lookup, "LOG_LEVEL", defaultLogLevel),
	}

	fs := flag.NewFlagSet("foodorder", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	durations := map[string]*time.Duration{
		"display-window":   &cfg.DisplayWindow,
		"menu-cache-ttl":   &cfg.MenuCacheTTL,
		"monitor-interval": &cfg.MonitorInterval,
		"shutdown-timeout": &cfg.ShutdownTimeout,
	}
	raw := make(map[string]*string, len(durations))
	for name, d := range durations {
		s := d.String()
		raw[name] = &s
	}

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.SecretKey, "secret-key", cfg.SecretKey, "Secret for signing staff tokens")
	fs.StringVar(&cfg.StaffPassword, "staff-password", cfg.StaffPassword, "Password for staff pages")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Minimum log level: debug, info, warn or error")
	fs.IntVar(&cfg.HistoryLimit, "history-limit", cfg.HistoryLimit, "Maximum orders on the history page")
	fs.StringVar(raw["display-window"], "display-window", *raw["display-window"], "How long completed orders stay on the display")
	fs.StringVar(raw["menu-cache-ttl"], "menu-cache-ttl", *raw["menu-cache-ttl"], "Lifetime of cached menu listings")
	fs.StringVar(raw["monitor-interval"], "monitor-interval", *raw["monitor-interval"], "Interval between backlog checks")
	fs.StringVar(raw["shutdown-timeout"], "shutdown-timeout", *raw["shutdown-timeout"], "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	for name, d := range durations {
		parsed, err := time.ParseDuration(*raw[name])
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", strings.ReplaceAll(name, "-", " "), err)
		}
		*d = parsed
	}

	if secretFile, ok := lookup("SECRET_KEY_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read secret key file: %w", err)
		}
		cfg.SecretKey = strings.TrimSpace(string(content))
	}

	if cfg.DisplayWindow <= 0 {
		cfg.DisplayWindow = defaultDisplayWindow
	}

	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = defaultHistoryLimit
	}

	if cfg.MenuCacheTTL <= 0 {
		cfg.MenuCacheTTL = defaultMenuCacheTTL
	}

	if cfg.MonitorInterval <= 0 {
		cfg.MonitorInterval = defaultMonitorInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.SMS.DefaultCountryCode != "" && !strings.HasPrefix(cfg.SMS.DefaultCountryCode, "+") {
		cfg.SMS.DefaultCountryCode = "+" + cfg.SMS.DefaultCountryCode
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
