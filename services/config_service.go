package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"hardware-store/models"
	"hardware-store/repositories"
)

var ErrInvalidConfig = errors.New("invalid store configuration")

// ConfigSource is anything the store configuration can be loaded from:
// a repository on the server or the remote config endpoint in the client.
type ConfigSource interface {
	Load(ctx context.Context) (*models.StoreConfig, error)
}

// ConfigService holds the process-wide store configuration and the theme
// derived from it. It starts with the built-in defaults.
type ConfigService struct {
	mu     sync.RWMutex
	config models.StoreConfig
	theme  Theme
	source ConfigSource
	repo   repositories.ConfigRepository
}

// NewConfigService takes the source used by LoadConfig and the repository
// used by SaveConfig. repo may be nil for read-only consumers.
func NewConfigService(source ConfigSource, repo repositories.ConfigRepository) *ConfigService {
	s := &ConfigService{source: source, repo: repo}
	s.UpdateConfig(models.DefaultStoreConfig())
	return s
}

// LoadConfig replaces the current config with the one from the source.
// Any failure keeps the current config; nothing is retried.
func (s *ConfigService) LoadConfig(ctx context.Context) {
	if s.source == nil {
		return
	}

	cfg, err := s.source.Load(ctx)
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			log.Printf("Error loading config: %v", err)
		}
		return
	}
	if cfg.Popups == nil {
		cfg.Popups = []models.PopupConfig{}
	}
	s.UpdateConfig(*cfg)
}

// UpdateConfig swaps the in-memory config wholesale and re-derives the theme.
// It does not persist.
func (s *ConfigService) UpdateConfig(cfg models.StoreConfig) {
	cfg = cfg.Clone()
	theme := ApplyTheme(cfg)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.config = cfg
	s.theme = theme
}

// SaveConfig validates and persists cfg, then makes it current.
func (s *ConfigService) SaveConfig(ctx context.Context, cfg models.StoreConfig) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if cfg.Popups == nil {
		cfg.Popups = []models.PopupConfig{}
	}
	if s.repo == nil {
		return errors.New("config persistence not configured")
	}
	if err := s.repo.Save(ctx, &cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	s.UpdateConfig(cfg)
	return nil
}

func (s *ConfigService) Config() models.StoreConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.Clone()
}

func (s *ConfigService) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vars := make(map[string]string, len(s.theme.Variables))
	for k, v := range s.theme.Variables {
		vars[k] = v
	}
	return Theme{Variables: vars}
}

func (s *ConfigService) Popups() []models.PopupConfig {
	return s.Config().Popups
}
