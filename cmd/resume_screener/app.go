package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/lexicon"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/normalize"
	"github.com/jonathan/resume-screener/internal/screening"
	"github.com/jonathan/resume-screener/internal/skills"
	"github.com/jonathan/resume-screener/internal/types"
)

// resolveConfig layers the config file, SCREENER_* environment variables and
// CLI flags, then fills the remaining fields with defaults.
func resolveConfig() (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	cfg.ApplyEnv()

	if flagHardSkills != "" {
		cfg.HardSkillsPath = flagHardSkills
	}
	if flagSoftSkills != "" {
		cfg.SoftSkillsPath = flagSoftSkills
	}
	if flagDatabase != "" {
		cfg.DatabaseURL = flagDatabase
	}
	cfg.LogJSON = cfg.LogJSON || flagLogJSON
	cfg.Debug = cfg.Debug || flagDebug

	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// app holds the long-lived collaborators shared by every pipeline invocation
type app struct {
	cfg       config.Config
	logger    *zap.Logger
	extractor *extraction.Extractor
	service   *screening.Service
	store     *lexicon.Store
	caches    []*lexicon.CachedSource
}

// newApp loads the linguistic resource and wires the pipeline. A missing
// linguistic resource is fatal.
func newApp(ctx context.Context, cfg config.Config) (*app, error) {
	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	resource, err := normalize.LoadEnglish()
	if err != nil {
		return nil, err
	}

	extractor, err := extraction.New(ctx,
		extraction.WithLogger(log),
		extraction.WithMaxDocumentBytes(cfg.MaxDocumentBytes()),
	)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, logger: log, extractor: extractor}

	hard, soft, err := a.lexiconSources(ctx)
	if err != nil {
		return nil, err
	}

	a.service = screening.New(resource, lexicon.NewLoader(hard, soft, log), extractor,
		screening.WithDisplayPolicy(skills.LengthLimitPolicy{
			MinLength: cfg.SkillMinLength(),
			Limit:     cfg.SkillLimit(),
		}),
		screening.WithConcurrency(cfg.Concurrency),
		screening.WithLogger(log),
	)
	return a, nil
}

// lexiconSources picks the database when configured and the lexicon files otherwise.
// Sources are wrapped in a read-only cache when a cache TTL is set.
func (a *app) lexiconSources(ctx context.Context) (lexicon.Source, lexicon.Source, error) {
	var hard, soft lexicon.Source

	if a.cfg.DatabaseURL != "" {
		store, err := lexicon.Connect(ctx, a.cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		a.store = store
		hard = store.Source(types.CategoryHard)
		soft = store.Source(types.CategorySoft)
	} else {
		if a.cfg.HardSkillsPath != "" {
			hard = lexicon.OpenFile(a.cfg.HardSkillsPath)
		}
		if a.cfg.SoftSkillsPath != "" {
			soft = lexicon.OpenFile(a.cfg.SoftSkillsPath)
		}
	}

	if ttl := a.cfg.LexiconCacheTTL(); ttl > 0 {
		hard = a.cached(hard, ttl)
		soft = a.cached(soft, ttl)
	}
	return hard, soft, nil
}

func (a *app) cached(src lexicon.Source, ttl time.Duration) lexicon.Source {
	if src == nil {
		return nil
	}
	c := lexicon.NewCachedSource(src, ttl)
	a.caches = append(a.caches, c)
	return c
}

// reloadLexicons drops every cached lexicon snapshot so the next request reads the sources again
func (a *app) reloadLexicons() {
	for _, c := range a.caches {
		c.Invalidate()
	}
	a.logger.Info("lexicon caches invalidated", zap.Int("sources", len(a.caches)))
}

// lexiconsReady reports whether every configured lexicon file exists.
// A database-backed lexicon is always considered ready.
func (a *app) lexiconsReady() bool {
	if a.cfg.DatabaseURL != "" {
		return true
	}
	paths := []string{a.cfg.HardSkillsPath, a.cfg.SoftSkillsPath}
	configured := false
	for _, path := range paths {
		if path == "" {
			continue
		}
		configured = true
		if _, err := os.Stat(path); err != nil {
			return false
		}
	}
	return configured
}

// Close releases the database pool and flushes the logger
func (a *app) Close() {
	if a.store != nil {
		a.store.Close()
	}
	_ = a.logger.Sync()
}
