// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPort             = 8080
	defaultMaxUploadMB      = 16
	defaultConcurrency      = 4
	defaultMinSkillLength   = 5
	defaultMaxSkillsPerType = 10
	defaultLexiconCacheSecs = 300

	// docxExpansion bounds how far a DOCX body may decompress relative to the upload limit
	docxExpansion = 16
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults, environment
// variables or CLI flags.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	UploadDir   string `json:"upload_dir,omitempty"`                               // Parent dir for per-request upload dirs (system temp when empty)
	MaxUploadMB int    `json:"max_upload_mb,omitempty" validate:"omitempty,min=1"` // Maximum multipart request size

	// Lexicons
	HardSkillsPath   string `json:"hard_skills,omitempty"`  // Hard skills lexicon (.xlsx, .csv, .txt, .json)
	SoftSkillsPath   string `json:"soft_skills,omitempty"`  // Soft skills lexicon
	DatabaseURL      string `json:"database_url,omitempty"` // PostgreSQL skill_terms table, used instead of files when set
	// Lexicon snapshot lifetime in seconds; 0 disables the cache
	LexiconCacheSecs *int   `json:"lexicon_cache_seconds,omitempty" validate:"omitempty,min=0"`

	// Pipeline
	Concurrency      int  `json:"concurrency,omitempty" validate:"omitempty,min=1,max=64"` // Documents extracted in parallel
	MinSkillLength   *int `json:"min_skill_length,omitempty" validate:"omitempty,min=0"`
	// Displayed skills per category; 0 disables truncation
	MaxSkillsPerType *int `json:"max_skills_per_type,omitempty" validate:"omitempty,min=0"`

	// Logging
	LogJSON bool `json:"log_json,omitempty"`
	Debug   bool `json:"debug,omitempty"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Port:             defaultPort,
		MaxUploadMB:      defaultMaxUploadMB,
		HardSkillsPath:   "Hard_skills.xlsx",
		SoftSkillsPath:   "soft_skills.xlsx",
		LexiconCacheSecs: Int(defaultLexiconCacheSecs),
		Concurrency:      defaultConcurrency,
		MinSkillLength:   Int(defaultMinSkillLength),
		MaxSkillsPerType: Int(defaultMaxSkillsPerType),
	}
}

// Int returns a pointer to n, for the optional numeric fields
func Int(n int) *int {
	return &n
}

func intValue(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

// MaxUploadBytes is the multipart request limit in bytes
func (c Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// MaxDocumentBytes caps the decompressed body of one DOCX document
func (c Config) MaxDocumentBytes() int64 {
	return c.MaxUploadBytes() * docxExpansion
}

// LexiconCacheTTL is the lexicon snapshot lifetime; zero means no cache
func (c Config) LexiconCacheTTL() time.Duration {
	return time.Duration(intValue(c.LexiconCacheSecs)) * time.Second
}

// SkillMinLength is the shortest skill term that is displayed
func (c Config) SkillMinLength() int {
	return intValue(c.MinSkillLength)
}

// SkillLimit caps displayed skills per category; zero means no cap
func (c Config) SkillLimit() int {
	return intValue(c.MaxSkillsPerType)
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			msgs := make([]string, 0, len(validationErrors))
			for _, fe := range validationErrors {
				msgs = append(msgs, fmt.Sprintf("'%s' failed on '%s'", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("config error: %s", strings.Join(msgs, ", "))
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.DatabaseURL == "" && c.HardSkillsPath == "" && c.SoftSkillsPath == "" {
		return fmt.Errorf("config error: at least one skill lexicon source is required")
	}

	if c.UploadDir != "" {
		info, err := os.Stat(c.UploadDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("config error: upload directory not found: %s", c.UploadDir)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.UploadDir == "" {
		result.UploadDir = defaults.UploadDir
	}
	if result.MaxUploadMB == 0 {
		result.MaxUploadMB = defaults.MaxUploadMB
	}
	if result.HardSkillsPath == "" {
		result.HardSkillsPath = defaults.HardSkillsPath
	}
	if result.SoftSkillsPath == "" {
		result.SoftSkillsPath = defaults.SoftSkillsPath
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	// Optional numeric fields: nil means unset, an explicit 0 is kept
	if result.LexiconCacheSecs == nil {
		result.LexiconCacheSecs = defaults.LexiconCacheSecs
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.MinSkillLength == nil {
		result.MinSkillLength = defaults.MinSkillLength
	}
	if result.MaxSkillsPerType == nil {
		result.MaxSkillsPerType = defaults.MaxSkillsPerType
	}

	// Bool fields: cannot distinguish unset from false, so only true wins
	result.LogJSON = result.LogJSON || defaults.LogJSON
	result.Debug = result.Debug || defaults.Debug

	return result
}

// ApplyEnv overrides fields from SCREENER_* environment variables.
// Unparseable numeric and boolean values are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("SCREENER_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Port = n
		}
	}
	if v := os.Getenv("SCREENER_UPLOAD_DIR"); v != "" {
		c.UploadDir = v
	}
	if v := os.Getenv("SCREENER_HARD_SKILLS"); v != "" {
		c.HardSkillsPath = v
	}
	if v := os.Getenv("SCREENER_SOFT_SKILLS"); v != "" {
		c.SoftSkillsPath = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("SCREENER_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Concurrency = n
		}
	}
	if v := os.Getenv("SCREENER_LOG_JSON"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.LogJSON = b
		}
	}
	if v := os.Getenv("SCREENER_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}
