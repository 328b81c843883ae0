package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ksaito/studypace/internal/notion"
	"github.com/ksaito/studypace/internal/series"
)

// ErrMissingCredentials indicates the Notion token or database ids are
// not configured.
var ErrMissingCredentials = errors.New("missing notion credentials")

// Config holds all configuration for the tool: Notion connection
// parameters, the two database ids, the property identifiers, and the
// snapshot cache location.
type Config struct {
	Notion         notion.Config
	LogDatabaseID  string
	GoalDatabaseID string
	Props          series.PropertyNames
	CachePath      string
	LogRequests    bool
}

// FileConfig is the subset of settings persisted by "studypace setup".
// Environment variables take precedence over the file.
type FileConfig struct {
	Token          string `json:"notion_token"`
	LogDatabaseID  string `json:"database_id"`
	GoalDatabaseID string `json:"goal_database_id"`
}

// DefaultConfig returns a Config with sensible defaults. Credentials
// are left empty and must come from the environment or the config file.
func DefaultConfig() Config {
	return Config{
		Notion: notion.DefaultConfig(),
		Props:  series.DefaultPropertyNames(),
	}
}

// Load reads configuration from ~/.studypace/config.json (if present)
// and the environment, with the environment winning. Absent values keep
// their defaults; call Validate before using the credentials.
func Load() Config {
	cfg := DefaultConfig()

	if path, err := DefaultFilePath(); err == nil {
		applyFile(&cfg, path)
	}
	applyEnv(&cfg)
	return cfg
}

// DefaultFilePath returns ~/.studypace/config.json.
func DefaultFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".studypace", "config.json"), nil
}

// DefaultCachePath returns ~/.studypace/studypace.db.
func DefaultCachePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".studypace", "studypace.db"), nil
}

// Validate reports whether the credentials needed to reach Notion are
// present.
func (c Config) Validate() error {
	var missing []string
	if c.Notion.Token == "" {
		missing = append(missing, "NOTION_TOKEN")
	}
	if c.LogDatabaseID == "" {
		missing = append(missing, "STUDYPACE_DATABASE_ID")
	}
	if c.GoalDatabaseID == "" {
		missing = append(missing, "STUDYPACE_GOAL_DATABASE_ID")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %v (set the environment variables or run 'studypace setup')",
			ErrMissingCredentials, missing)
	}
	return nil
}

// Save writes the credential file used by "studypace setup", creating
// the directory if needed.
func Save(path string, fc FileConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(fc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func applyFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	var fc FileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return
	}
	if fc.Token != "" {
		cfg.Notion.Token = fc.Token
	}
	if fc.LogDatabaseID != "" {
		cfg.LogDatabaseID = fc.LogDatabaseID
	}
	if fc.GoalDatabaseID != "" {
		cfg.GoalDatabaseID = fc.GoalDatabaseID
	}
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("NOTION_TOKEN"); v != "" {
		cfg.Notion.Token = v
	}
	if v := os.Getenv("STUDYPACE_DATABASE_ID"); v != "" {
		cfg.LogDatabaseID = v
	}
	if v := os.Getenv("STUDYPACE_GOAL_DATABASE_ID"); v != "" {
		cfg.GoalDatabaseID = v
	}
	if v := os.Getenv("STUDYPACE_API_URL"); v != "" {
		cfg.Notion.BaseURL = v
	}
	if v := os.Getenv("STUDYPACE_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			cfg.Notion.PageSize = n
		}
	}
	if v := os.Getenv("STUDYPACE_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Notion.TimeoutMs = n
		}
	}
	if v := os.Getenv("STUDYPACE_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Notion.MaxRetries = n
		}
	}
	if v := os.Getenv("STUDYPACE_DB"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("STUDYPACE_LOG_REQUESTS"); v != "" {
		cfg.LogRequests, _ = strconv.ParseBool(v)
	}

	applyPropEnv(&cfg.Props.Date, "STUDYPACE_PROP_DATE")
	applyPropEnv(&cfg.Props.Minutes, "STUDYPACE_PROP_MINUTES")
	applyPropEnv(&cfg.Props.GoalTitle, "STUDYPACE_PROP_GOAL_TITLE")
	applyPropEnv(&cfg.Props.GoalHours, "STUDYPACE_PROP_GOAL_HOURS")
}

func applyPropEnv(field *string, envName string) {
	if v := os.Getenv(envName); v != "" {
		*field = v
	}
}
