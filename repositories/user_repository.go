package repositories

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hardware-store/models"
)

var ErrDuplicateEmail = errors.New("email already registered")

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByID(ctx context.Context, id string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	Count(ctx context.Context) (int, error)
}

type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) findOne(ctx context.Context, where string, arg string) (*models.Account, error) {
	query := `SELECT id, email, password, name, role, created_at, updated_at FROM users WHERE ` + where

	account := &models.Account{}
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&account.ID,
		&account.Email,
		&account.Password,
		&account.Name,
		&account.Role,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return account, nil
}

func (r *PostgresUserRepository) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, "email = $1", strings.ToLower(email))
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id string) (*models.Account, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *PostgresUserRepository) Create(ctx context.Context, account *models.Account) error {
	query := `
		INSERT INTO users (id, email, password, name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		ON CONFLICT (email) DO NOTHING
	`
	now := time.Now()
	tag, err := r.db.Exec(ctx, query,
		account.ID, strings.ToLower(account.Email), account.Password, account.Name, account.Role, now)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicateEmail
	}
	account.CreatedAt = now
	account.UpdatedAt = now
	return nil
}

func (r *PostgresUserRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total)
	return total, err
}

type MemoryUserRepository struct {
	mu       sync.RWMutex
	accounts map[string]*models.Account
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{accounts: make(map[string]*models.Account)}
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	email = strings.ToLower(email)
	for _, a := range r.accounts {
		if a.Email == email {
			found := *a
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id string) (*models.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *a
	return &found, nil
}

func (r *MemoryUserRepository) Create(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := strings.ToLower(account.Email)
	for _, a := range r.accounts {
		if a.Email == email {
			return ErrDuplicateEmail
		}
	}

	now := time.Now()
	stored := *account
	stored.Email = email
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.accounts[stored.ID] = &stored

	account.CreatedAt = now
	account.UpdatedAt = now
	return nil
}

func (r *MemoryUserRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.accounts), nil
}
