package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"ghala.backend/internal/domain/entities"
	domainerrors "ghala.backend/internal/domain/errors"
	"ghala.backend/pkg/logger"
)

// Saver persists a snapshot of the store. Failures are logged and never
// surfaced: the in-memory state stays authoritative until the next
// successful write.
type Saver interface {
	Save(ctx context.Context, snap *Snapshot) error
}

// Snapshot is the durable export of the store: merchants by id, orders by
// merchant id then order id, users by username.
type Snapshot struct {
	Merchants map[string]*entities.Merchant
	Orders    map[string]map[string]*entities.Order
	Users     map[string]*entities.User
}

// Store is the single shared mutable resource: every read and write goes
// through its RWMutex. It implements the merchant, order and user
// repository interfaces and never hands out its internal pointers.
type Store struct {
	mu        sync.RWMutex
	merchants map[string]*entities.Merchant
	orders    map[string]map[string]*entities.Order
	users     map[string]*entities.User
	saver     Saver
}

// New creates an empty store. saver may be nil (no durability).
func New(saver Saver) *Store {
	return &Store{
		merchants: make(map[string]*entities.Merchant),
		orders:    make(map[string]map[string]*entities.Order),
		users:     make(map[string]*entities.User),
		saver:     saver,
	}
}

// Restore replaces the store contents with a previously loaded snapshot
func (s *Store) Restore(snap *Snapshot) {
	if snap == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.merchants = make(map[string]*entities.Merchant, len(snap.Merchants))
	for id, m := range snap.Merchants {
		cp := *m
		s.merchants[id] = &cp
	}
	s.orders = make(map[string]map[string]*entities.Order, len(snap.Orders))
	for mid, byID := range snap.Orders {
		s.orders[mid] = make(map[string]*entities.Order, len(byID))
		for oid, o := range byID {
			cp := *o
			s.orders[mid][oid] = &cp
		}
	}
	s.users = make(map[string]*entities.User, len(snap.Users))
	for name, u := range snap.Users {
		cp := *u
		s.users[name] = &cp
	}
}

// Snapshot returns a deep copy of the current contents
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() *Snapshot {
	snap := &Snapshot{
		Merchants: make(map[string]*entities.Merchant, len(s.merchants)),
		Orders:    make(map[string]map[string]*entities.Order, len(s.orders)),
		Users:     make(map[string]*entities.User, len(s.users)),
	}
	for id, m := range s.merchants {
		cp := *m
		snap.Merchants[id] = &cp
	}
	for mid, byID := range s.orders {
		snap.Orders[mid] = make(map[string]*entities.Order, len(byID))
		for oid, o := range byID {
			cp := *o
			snap.Orders[mid][oid] = &cp
		}
	}
	for name, u := range s.users {
		cp := *u
		snap.Users[name] = &cp
	}
	return snap
}

// persist writes a snapshot through the saver, best effort
func (s *Store) persist(ctx context.Context, snap *Snapshot) {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(ctx, snap); err != nil {
		logger.Warn(ctx, "snapshot write failed, in-memory state remains authoritative", zap.Error(err))
	}
}

// Get returns a merchant by id
func (s *Store) Get(ctx context.Context, id string) (*entities.Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.merchants[id]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

// Put stores a merchant configuration and persists the snapshot
func (s *Store) Put(ctx context.Context, merchant *entities.Merchant) error {
	s.mu.Lock()
	cp := *merchant
	s.merchants[merchant.ID] = &cp
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return nil
}

// List returns all merchants ordered by id
func (s *Store) List(ctx context.Context) ([]*entities.Merchant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.Merchant, 0, len(s.merchants))
	for _, m := range s.merchants {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetByUsername returns a user by username
func (s *Store) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

// Create records a new order under its merchant and persists the snapshot
func (s *Store) Create(ctx context.Context, order *entities.Order) error {
	s.mu.Lock()
	byID, ok := s.orders[order.MerchantID]
	if !ok {
		byID = make(map[string]*entities.Order)
		s.orders[order.MerchantID] = byID
	}
	cp := *order
	byID[order.ID] = &cp
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return nil
}

// Get returns one order of a merchant
func (s *Store) GetOrder(ctx context.Context, merchantID, orderID string) (*entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[merchantID][orderID]
	if !ok {
		return nil, domainerrors.ErrNotFound
	}
	cp := *o
	return &cp, nil
}

// ListOrders returns a merchant's orders newest first, optionally
// restricted to one status
func (s *Store) ListOrders(ctx context.Context, merchantID, status string) ([]*entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entities.Order, 0, len(s.orders[merchantID]))
	for _, o := range s.orders[merchantID] {
		if status != "" && status != entities.StatusFilterAll && string(o.Status) != status {
			continue
		}
		cp := *o
		out = append(out, &cp)
	}
	sortNewestFirst(out)
	return out, nil
}

// ListAllOrders returns every order across merchants, newest first
func (s *Store) ListAllOrders(ctx context.Context) ([]*entities.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*entities.Order
	for _, byID := range s.orders {
		for _, o := range byID {
			cp := *o
			out = append(out, &cp)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

// UpdateOrder overwrites an existing order and persists the snapshot
func (s *Store) UpdateOrder(ctx context.Context, order *entities.Order) error {
	s.mu.Lock()
	if _, ok := s.orders[order.MerchantID][order.ID]; !ok {
		s.mu.Unlock()
		return domainerrors.ErrNotFound
	}
	cp := *order
	s.orders[order.MerchantID][order.ID] = &cp
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return nil
}

// DeleteOrder removes an order permanently
func (s *Store) DeleteOrder(ctx context.Context, merchantID, orderID string) error {
	s.mu.Lock()
	if _, ok := s.orders[merchantID][orderID]; !ok {
		s.mu.Unlock()
		return domainerrors.ErrNotFound
	}
	delete(s.orders[merchantID], orderID)
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return nil
}

// ResolveOrder applies a settlement outcome. A paid outcome stamps
// payment_processed_at; a failed one clears it.
func (s *Store) ResolveOrder(ctx context.Context, merchantID, orderID string, status entities.OrderStatus, processedAt time.Time) error {
	s.mu.Lock()
	o, ok := s.orders[merchantID][orderID]
	if !ok {
		s.mu.Unlock()
		return domainerrors.ErrNotFound
	}
	o.Status = status
	if status == entities.OrderStatusPaid {
		o.PaymentProcessedAt.SetValid(processedAt)
	} else {
		o.PaymentProcessedAt.Valid = false
	}
	snap := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snap)
	return nil
}

func sortNewestFirst(orders []*entities.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
