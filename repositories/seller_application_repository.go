package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"hardware-store/models"
)

type SellerApplicationRepository interface {
	Create(ctx context.Context, app *models.SellerApplication) error
	FindAll(ctx context.Context) ([]models.SellerApplication, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.SellerApplication, error)
}

// SQLSellerApplicationRepository works on a database/sql handle opened with
// the pgx stdlib driver. Nested sections are stored as JSONB documents.
type SQLSellerApplicationRepository struct {
	db *sql.DB
}

func NewSQLSellerApplicationRepository(db *sql.DB) *SQLSellerApplicationRepository {
	return &SQLSellerApplicationRepository{db: db}
}

func (r *SQLSellerApplicationRepository) Create(ctx context.Context, app *models.SellerApplication) error {
	personal, err := json.Marshal(app.PersonalInfo)
	if err != nil {
		return fmt.Errorf("encode personal info: %w", err)
	}
	business, err := json.Marshal(app.BusinessInfo)
	if err != nil {
		return fmt.Errorf("encode business info: %w", err)
	}
	experience, err := json.Marshal(app.Experience)
	if err != nil {
		return fmt.Errorf("encode experience: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO seller_applications (id, personal_info, business_info, experience, motivation, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		app.ID, personal, business, experience, app.Motivation, string(app.Status), app.CreatedAt, app.UpdatedAt,
	)
	return err
}

const applicationColumns = `id, personal_info, business_info, experience, motivation, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*models.SellerApplication, error) {
	var (
		app                            models.SellerApplication
		status                         string
		personal, business, experience []byte
	)
	if err := row.Scan(&app.ID, &personal, &business, &experience, &app.Motivation, &status, &app.CreatedAt, &app.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	app.Status = models.ApplicationStatus(status)

	if err := json.Unmarshal(personal, &app.PersonalInfo); err != nil {
		return nil, fmt.Errorf("decode personal info: %w", err)
	}
	if err := json.Unmarshal(business, &app.BusinessInfo); err != nil {
		return nil, fmt.Errorf("decode business info: %w", err)
	}
	if err := json.Unmarshal(experience, &app.Experience); err != nil {
		return nil, fmt.Errorf("decode experience: %w", err)
	}
	return &app, nil
}

func (r *SQLSellerApplicationRepository) FindAll(ctx context.Context) ([]models.SellerApplication, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+applicationColumns+` FROM seller_applications ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []models.SellerApplication{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		apps = append(apps, *app)
	}
	return apps, rows.Err()
}

func (r *SQLSellerApplicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.SellerApplication, error) {
	row := r.db.QueryRowContext(ctx,
		`UPDATE seller_applications SET status = $1, updated_at = $2 WHERE id = $3 RETURNING `+applicationColumns,
		string(status), time.Now(), id)
	return scanApplication(row)
}

type MemorySellerApplicationRepository struct {
	mu   sync.RWMutex
	apps []models.SellerApplication
}

func NewMemorySellerApplicationRepository() *MemorySellerApplicationRepository {
	return &MemorySellerApplicationRepository{}
}

func (r *MemorySellerApplicationRepository) Create(_ context.Context, app *models.SellerApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps = append(r.apps, *app)
	return nil
}

func (r *MemorySellerApplicationRepository) FindAll(_ context.Context) ([]models.SellerApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.SellerApplication{}, r.apps...), nil
}

func (r *MemorySellerApplicationRepository) UpdateStatus(_ context.Context, id string, status models.ApplicationStatus) (*models.SellerApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.apps {
		if r.apps[i].ID == id {
			r.apps[i].Status = status
			r.apps[i].UpdatedAt = time.Now()
			updated := r.apps[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}
