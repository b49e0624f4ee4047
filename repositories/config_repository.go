package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hardware-store/models"
)

// ConfigRepository reads and writes the store configuration document wholesale.
type ConfigRepository interface {
	Load(ctx context.Context) (*models.StoreConfig, error)
	Save(ctx context.Context, cfg *models.StoreConfig) error
}

type FileConfigRepository struct {
	path string
}

func NewFileConfigRepository(path string) *FileConfigRepository {
	return &FileConfigRepository{path: path}
}

func (r *FileConfigRepository) Load(_ context.Context) (*models.StoreConfig, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg models.StoreConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}
	return &cfg, nil
}

func (r *FileConfigRepository) Save(_ context.Context, cfg *models.StoreConfig) error {
	if err := os.MkdirAll(filepath.Dir(r.path), os.ModePerm); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return os.Rename(tmp, r.path)
}

// PostgresConfigRepository stores the document in the single-row store_config table.
type PostgresConfigRepository struct {
	db *pgxpool.Pool
}

func NewPostgresConfigRepository(db *pgxpool.Pool) *PostgresConfigRepository {
	return &PostgresConfigRepository{db: db}
}

func (r *PostgresConfigRepository) Load(ctx context.Context) (*models.StoreConfig, error) {
	var document []byte
	err := r.db.QueryRow(ctx, `SELECT document FROM store_config WHERE id = 1`).Scan(&document)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var cfg models.StoreConfig
	if err := json.Unmarshal(document, &cfg); err != nil {
		return nil, fmt.Errorf("decode stored config: %w", err)
	}
	return &cfg, nil
}

func (r *PostgresConfigRepository) Save(ctx context.Context, cfg *models.StoreConfig) error {
	document, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	query := `
		INSERT INTO store_config (id, document, updated_at) VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query, document, time.Now())
	return err
}
