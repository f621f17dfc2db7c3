package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"port": 9090,
		"hard_skills": "lexicons/hard.xlsx",
		"soft_skills": "lexicons/soft.csv",
		"concurrency": 8,
		"debug": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "lexicons/hard.xlsx", cfg.HardSkillsPath)
	assert.Equal(t, "lexicons/soft.csv", cfg.SoftSkillsPath)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.True(t, cfg.Debug)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{"Defaults are valid", Defaults(), ""},
		{"Port out of range", Config{Port: 70000, HardSkillsPath: "h.xlsx"}, "'Port' failed on 'max'"},
		{"Negative concurrency", Config{Concurrency: -1, HardSkillsPath: "h.xlsx"}, "'Concurrency' failed on 'min'"},
		{"No lexicon source", Config{}, "at least one skill lexicon source"},
		{"Database only", Config{DatabaseURL: "postgres://localhost/db"}, ""},
		{"Missing upload dir", Config{HardSkillsPath: "h.xlsx", UploadDir: "/nonexistent/uploads"}, "upload directory not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9000, HardSkillsPath: "mine.csv"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 9000, merged.Port)
	assert.Equal(t, "mine.csv", merged.HardSkillsPath)
	assert.Equal(t, "soft_skills.xlsx", merged.SoftSkillsPath)
	assert.Equal(t, 5, merged.SkillMinLength())
	assert.Equal(t, 10, merged.SkillLimit())
	assert.Equal(t, 300*time.Second, merged.LexiconCacheTTL())
	assert.Equal(t, int64(16<<20), merged.MaxUploadBytes())
	assert.Equal(t, int64(16<<20)*16, merged.MaxDocumentBytes())
	assert.Equal(t, 4, merged.Concurrency)
	assert.Equal(t, 0, cfg.Concurrency, "original should be unchanged")
}

func TestMergeWithDefaults_ExplicitZero(t *testing.T) {
	content := `{"hard_skills": "h.csv", "lexicon_cache_seconds": 0, "min_skill_length": 0, "max_skills_per_type": 0}`
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	merged := cfg.MergeWithDefaults(Defaults())
	require.NoError(t, merged.Validate())

	assert.Equal(t, time.Duration(0), merged.LexiconCacheTTL())
	assert.Equal(t, 0, merged.SkillMinLength())
	assert.Equal(t, 0, merged.SkillLimit())
}

func TestValidate_NegativeOptional(t *testing.T) {
	cfg := Config{HardSkillsPath: "h.csv", MaxSkillsPerType: Int(-1)}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'MaxSkillsPerType' failed on 'min'")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("SCREENER_PORT", "7000")
	t.Setenv("SCREENER_HARD_SKILLS", "env_hard.xlsx")
	t.Setenv("SCREENER_CONCURRENCY", "not-a-number")
	t.Setenv("SCREENER_DEBUG", "true")

	cfg := Config{Concurrency: 2}
	cfg.ApplyEnv()

	assert.Equal(t, 7000, cfg.Port)
	assert.Equal(t, "env_hard.xlsx", cfg.HardSkillsPath)
	assert.Equal(t, 2, cfg.Concurrency)
	assert.True(t, cfg.Debug)
}
