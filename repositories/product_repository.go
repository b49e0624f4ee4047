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

var ErrNotFound = errors.New("record not found")

type ProductRepository interface {
	FindAll(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Categories(ctx context.Context) ([]models.Category, error)
}

type PostgresProductRepository struct {
	db *pgxpool.Pool
}

func NewPostgresProductRepository(db *pgxpool.Pool) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, name, code, description, price, stock, category, images, featured, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.Code, &p.Description, &p.Price, &p.Stock,
		&p.Category, &p.Images, &p.Featured, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching search as a literal
// substring.
func containsPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

func (r *PostgresProductRepository) FindAll(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products
	          WHERE ($1 = '' OR lower(category) = lower($1))
	            AND (NOT $2 OR featured)
	            AND ($3 = '' OR name ILIKE $4 ESCAPE '\' OR code ILIKE $4 ESCAPE '\')
	          ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, filter.Category, filter.Featured, filter.Search, containsPattern(filter.Search))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) FindByID(ctx context.Context, id string) (*models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return scanProduct(r.db.QueryRow(ctx, query, id))
}

func (r *PostgresProductRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (id, name, code, description, price, stock, category, images, featured, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING created_at, updated_at
	`
	return r.db.QueryRow(ctx, query,
		product.ID, product.Name, product.Code, product.Description, product.Price,
		product.Stock, product.Category, product.Images, product.Featured, time.Now(),
	).Scan(&product.CreatedAt, &product.UpdatedAt)
}

func (r *PostgresProductRepository) Update(ctx context.Context, product *models.Product) error {
	query := `UPDATE products SET name = $1, code = $2, description = $3, price = $4, stock = $5,
	          category = $6, images = $7, featured = $8, updated_at = $9 WHERE id = $10`
	product.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx, query,
		product.Name, product.Code, product.Description, product.Price, product.Stock,
		product.Category, product.Images, product.Featured, product.UpdatedAt, product.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresProductRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total)
	return total, err
}

func (r *PostgresProductRepository) Categories(ctx context.Context) ([]models.Category, error) {
	query := `SELECT c.id, c.name, c.slug, c.description, c.image, COUNT(p.id)
	          FROM categories c LEFT JOIN products p ON lower(p.category) = lower(c.name)
	          GROUP BY c.id ORDER BY c.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Image, &c.ProductCount); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// MemoryProductRepository serves the catalog from process memory when no
// database is configured.
type MemoryProductRepository struct {
	mu         sync.RWMutex
	products   []models.Product
	categories []models.Category
}

func NewMemoryProductRepository(products []models.Product, categories []models.Category) *MemoryProductRepository {
	return &MemoryProductRepository{
		products:   append([]models.Product(nil), products...),
		categories: append([]models.Category(nil), categories...),
	}
}

func matchesFilter(p models.Product, f models.ProductFilter) bool {
	if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
		return false
	}
	if f.Featured && !p.Featured {
		return false
	}
	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), search) && !strings.Contains(strings.ToLower(p.Code), search) {
			return false
		}
	}
	return true
}

func (r *MemoryProductRepository) FindAll(_ context.Context, filter models.ProductFilter) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := []models.Product{}
	for _, p := range r.products {
		if matchesFilter(p, filter) {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *MemoryProductRepository) FindByID(_ context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryProductRepository) Create(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products = append(r.products, *product)
	return nil
}

func (r *MemoryProductRepository) Update(_ context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			product.UpdatedAt = time.Now()
			r.products[i] = *product
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryProductRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *MemoryProductRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

func (r *MemoryProductRepository) Categories(_ context.Context) ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]models.Category, 0, len(r.categories))
	for _, c := range r.categories {
		c.ProductCount = 0
		for _, p := range r.products {
			if strings.EqualFold(p.Category, c.Name) {
				c.ProductCount++
			}
		}
		categories = append(categories, c)
	}
	return categories, nil
}
