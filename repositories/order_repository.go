package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hardware-store/models"
)

type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	FindByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int, error)
	UpdatePayment(ctx context.Context, id, paymentID string, status models.OrderStatus) error
	Count(ctx context.Context) (int, error)
	Revenue(ctx context.Context) (int64, error)
}

type PostgresOrderRepository struct {
	db *pgxpool.Pool
}

func NewPostgresOrderRepository(db *pgxpool.Pool) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func (r *PostgresOrderRepository) Create(ctx context.Context, order *models.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("encode order items: %w", err)
	}

	now := time.Now()
	query := `
		INSERT INTO orders (id, user_id, items, total, status, preference_id, payment_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`
	if _, err := r.db.Exec(ctx, query,
		order.ID, order.UserID, items, order.Total, order.Status, order.PreferenceID, order.PaymentID, now,
	); err != nil {
		return err
	}
	order.CreatedAt = now
	order.UpdatedAt = now
	return nil
}

const orderColumns = `id, user_id, items, total, status, preference_id, payment_id, created_at, updated_at`

func scanOrder(row pgx.Row) (*models.Order, error) {
	var (
		o     models.Order
		items []byte
	)
	err := row.Scan(&o.ID, &o.UserID, &items, &o.Total, &o.Status, &o.PreferenceID, &o.PaymentID, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("decode order items: %w", err)
	}
	return &o, nil
}

func (r *PostgresOrderRepository) FindByID(ctx context.Context, id string) (*models.Order, error) {
	return scanOrder(r.db.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
}

func (r *PostgresOrderRepository) List(ctx context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int, error) {
	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM orders WHERE ($1 = '' OR status = $1)`, string(status),
	).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE ($1 = '' OR status = $1)
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		string(status), limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, *o)
	}
	return orders, total, rows.Err()
}

func (r *PostgresOrderRepository) UpdatePayment(ctx context.Context, id, paymentID string, status models.OrderStatus) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE orders SET payment_id = $1, status = $2, updated_at = $3 WHERE id = $4`,
		paymentID, status, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresOrderRepository) Count(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total)
	return total, err
}

func (r *PostgresOrderRepository) Revenue(ctx context.Context) (int64, error) {
	var revenue int64
	err := r.db.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM orders WHERE status IN ('processing', 'shipped', 'delivered')`,
	).Scan(&revenue)
	return revenue, err
}

type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]models.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]models.Order)}
}

func (r *MemoryOrderRepository) Create(_ context.Context, order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	stored := *order
	stored.Items = append([]models.CartItem(nil), order.Items...)
	r.orders[order.ID] = stored
	return nil
}

func (r *MemoryOrderRepository) FindByID(_ context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	o, ok := r.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &o, nil
}

func (r *MemoryOrderRepository) List(_ context.Context, status models.OrderStatus, limit, offset int) ([]models.Order, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []models.Order{}
	for _, o := range r.orders {
		if status == "" || o.Status == status {
			matched = append(matched, o)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := len(matched)
	if offset >= total {
		return []models.Order{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return matched[offset:end], total, nil
}

func (r *MemoryOrderRepository) UpdatePayment(_ context.Context, id, paymentID string, status models.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	o, ok := r.orders[id]
	if !ok {
		return ErrNotFound
	}
	o.PaymentID = paymentID
	o.Status = status
	o.UpdatedAt = time.Now()
	r.orders[id] = o
	return nil
}

func (r *MemoryOrderRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.orders), nil
}

func (r *MemoryOrderRepository) Revenue(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var revenue int64
	for _, o := range r.orders {
		if o.Status.Paid() {
			revenue += o.Total
		}
	}
	return revenue, nil
}
