package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"storefront/internal/domain"
)

// MemoryStore объединённое in-memory хранилище каталога, покупателей и корзин.
// Хранит указатели: корзины ссылаются на те же товары, что и каталог.
type MemoryStore struct {
	mu        sync.RWMutex
	products  map[string]*domain.Product
	customers map[string]*domain.Customer
	carts     map[string]*domain.Cart
	newID     func() string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products:  make(map[string]*domain.Product),
		customers: make(map[string]*domain.Customer),
		carts:     make(map[string]*domain.Cart),
		newID:     func() string { return uuid.NewString() },
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

// Ensure interfaces
var _ ProductRepository = (*MemoryStore)(nil)

// ProductRepository implementation
func (m *MemoryStore) Create(ctx context.Context, p *domain.Product) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	p.ID = m.newID()
	m.products[p.ID] = p.Clone()
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	return p.Clone(), nil
}

func (m *MemoryStore) Lookup(ctx context.Context, id string) (*domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// Update overwrites the catalog entry in place so carts holding it see the change.
func (m *MemoryStore) Update(ctx context.Context, p *domain.Product) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	live, ok := m.products[p.ID]
	if !ok {
		return ErrNotFound
	}
	*live = *p.Clone()
	return nil
}

// Delete unlists the product; carts that already reference it keep their pointer.
func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.products[id]; !ok {
		return ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *MemoryStore) List(ctx context.Context, f ProductFilter) ([]domain.Product, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Product, 0)
	for _, p := range m.products {
		if !f.match(p) {
			continue
		}
		out = append(out, *p.Clone())
	}
	slices.SortFunc(out, func(a, b domain.Product) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out, nil
}

// CustomerRepository implementation on wrapper type
type MemoryCustomers struct{ store *MemoryStore }

func NewMemoryCustomers(store *MemoryStore) *MemoryCustomers { return &MemoryCustomers{store: store} }

var _ CustomerRepository = (*MemoryCustomers)(nil)

func (mc *MemoryCustomers) Create(ctx context.Context, c *domain.Customer) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	c.ID = mc.store.newID()
	cp := *c
	mc.store.customers[c.ID] = &cp
	return nil
}

func (mc *MemoryCustomers) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	c, ok := mc.store.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (mc *MemoryCustomers) Lookup(ctx context.Context, id string) (*domain.Customer, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	c, ok := mc.store.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// CartRepository implementation on wrapper type
type MemoryCarts struct{ store *MemoryStore }

func NewMemoryCarts(store *MemoryStore) *MemoryCarts { return &MemoryCarts{store: store} }

var _ CartRepository = (*MemoryCarts)(nil)

func (mc *MemoryCarts) Create(ctx context.Context, c *domain.Cart) error {
	mc.store.wlock(ctx)
	defer mc.store.wunlock(ctx)
	c.ID = mc.store.newID()
	mc.store.carts[c.ID] = c
	return nil
}

func (mc *MemoryCarts) GetByID(ctx context.Context, id string) (*domain.Cart, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	c, ok := mc.store.carts[id]
	if !ok {
		return nil, ErrNotFound
	}
	snap := c.Snapshot()
	return &snap, nil
}

func (mc *MemoryCarts) Lookup(ctx context.Context, id string) (*domain.Cart, error) {
	mc.store.rlock(ctx)
	defer mc.store.runlock(ctx)
	c, ok := mc.store.carts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// nested calls reuse the lock already held by the outer transaction
	if isTx(ctx) {
		return fn(ctx)
	}
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
