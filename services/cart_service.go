package services

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"hardware-store/models"
	"hardware-store/repositories"
)

const cartStorageKey = "cart-storage"

// CartService keeps one cart per owner. Every mutation rewrites the owner's
// whole item list through the KV store. Cart operations never fail: storage
// errors are logged and the in-flight result is still returned.
type CartService struct {
	storage repositories.KVStore
	locks   sync.Map // owner -> *sync.Mutex
}

func NewCartService(storage repositories.KVStore) *CartService {
	return &CartService{storage: storage}
}

func cartKey(owner string) string {
	return cartStorageKey + ":" + owner
}

func (s *CartService) lockFor(owner string) func() {
	v, _ := s.locks.LoadOrStore(owner, &sync.Mutex{})
	m := v.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

func (s *CartService) load(ctx context.Context, owner string) []models.CartItem {
	data, found, err := s.storage.Get(ctx, cartKey(owner))
	if err != nil {
		log.Printf("[Cart] failed to load cart %s: %v", owner, err)
		return []models.CartItem{}
	}
	if !found {
		return []models.CartItem{}
	}

	var items []models.CartItem
	if err := json.Unmarshal(data, &items); err != nil || items == nil {
		if err != nil {
			log.Printf("[Cart] discarding unreadable cart %s: %v", owner, err)
		}
		return []models.CartItem{}
	}
	return items
}

func (s *CartService) persist(ctx context.Context, owner string, items []models.CartItem) {
	data, err := json.Marshal(items)
	if err != nil {
		log.Printf("[Cart] failed to encode cart %s: %v", owner, err)
		return
	}
	if err := s.storage.Set(ctx, cartKey(owner), data); err != nil {
		log.Printf("[Cart] failed to persist cart %s: %v", owner, err)
	}
}

func (s *CartService) mutate(ctx context.Context, owner string, fn func([]models.CartItem) []models.CartItem) []models.CartItem {
	unlock := s.lockFor(owner)
	defer unlock()

	items := fn(s.load(ctx, owner))
	if items == nil {
		items = []models.CartItem{}
	}
	s.persist(ctx, owner, items)
	return items
}

func (s *CartService) AddToCart(ctx context.Context, owner string, product models.Product) []models.CartItem {
	return s.mutate(ctx, owner, func(items []models.CartItem) []models.CartItem {
		return addItem(items, product)
	})
}

func (s *CartService) RemoveFromCart(ctx context.Context, owner, productID string) []models.CartItem {
	return s.mutate(ctx, owner, func(items []models.CartItem) []models.CartItem {
		return removeItem(items, productID)
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, owner, productID string, quantity int) []models.CartItem {
	return s.mutate(ctx, owner, func(items []models.CartItem) []models.CartItem {
		return updateItemQuantity(items, productID, quantity)
	})
}

func (s *CartService) ClearCart(ctx context.Context, owner string) []models.CartItem {
	return s.mutate(ctx, owner, func([]models.CartItem) []models.CartItem {
		return []models.CartItem{}
	})
}

func (s *CartService) GetItems(ctx context.Context, owner string) []models.CartItem {
	return s.load(ctx, owner)
}

func (s *CartService) GetTotal(ctx context.Context, owner string) int64 {
	return cartTotal(s.load(ctx, owner))
}

func (s *CartService) GetItemCount(ctx context.Context, owner string) int {
	return cartItemCount(s.load(ctx, owner))
}

func (s *CartService) Summary(ctx context.Context, owner string) models.CartSummary {
	return Summarize(s.load(ctx, owner))
}

// Merge folds the items of one cart into another, one add per unit, so the
// stock clamp still applies, and clears the source. Used when an anonymous
// shopper signs in.
func (s *CartService) Merge(ctx context.Context, from, into string) []models.CartItem {
	if from == into {
		return s.GetItems(ctx, into)
	}

	var source []models.CartItem
	s.mutate(ctx, from, func(items []models.CartItem) []models.CartItem {
		source = items
		return []models.CartItem{}
	})
	if len(source) == 0 {
		return s.GetItems(ctx, into)
	}

	return s.mutate(ctx, into, func(items []models.CartItem) []models.CartItem {
		for _, item := range source {
			for n := 0; n < item.Quantity; n++ {
				items = addItem(items, item.Product)
			}
		}
		return items
	})
}

// Summarize totals a list of cart items.
func Summarize(items []models.CartItem) models.CartSummary {
	return models.CartSummary{
		Items:     items,
		Total:     cartTotal(items),
		ItemCount: cartItemCount(items),
	}
}

func addItem(items []models.CartItem, product models.Product) []models.CartItem {
	for i := range items {
		if items[i].Product.ID != product.ID {
			continue
		}
		if items[i].Quantity < product.Stock {
			out := append([]models.CartItem(nil), items...)
			out[i].Quantity++
			return out
		}
		return items
	}
	if product.Stock <= 0 {
		return items
	}
	return append(append([]models.CartItem(nil), items...), models.CartItem{Product: product, Quantity: 1})
}

func removeItem(items []models.CartItem, productID string) []models.CartItem {
	out := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}
	return out
}

func updateItemQuantity(items []models.CartItem, productID string, quantity int) []models.CartItem {
	if quantity <= 0 {
		return removeItem(items, productID)
	}

	out := append([]models.CartItem(nil), items...)
	for i := range out {
		if out[i].Product.ID != productID {
			continue
		}
		clamped := min(quantity, out[i].Product.Stock)
		if clamped <= 0 {
			return removeItem(items, productID)
		}
		out[i].Quantity = clamped
	}
	return out
}

func cartTotal(items []models.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Product.Price * int64(item.Quantity)
	}
	return total
}

func cartItemCount(items []models.CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
