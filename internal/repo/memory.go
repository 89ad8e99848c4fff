package repo

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/payment-reconciler/internal/entities"
	"github.com/SergeyBogomolovv/payment-reconciler/pkg/trm"
)

type stockKey struct {
	productID int64
	variantID int64
}

type sideEffectKey struct {
	orderID int64
	effect  entities.SideEffect
}

// MemoryRepo хранит заказы, остатки и купоны в памяти процесса.
// Семантика как у postgresRepo, включая условное обновление статуса.
// Как trm.Manager выполняет транзакции по одной и при ошибке колбэка откатывает
// остатки, купоны и журнал эффектов. Статус заказа откатом не покрыт,
// postgresRepo тоже не меняет его внутри транзакции.
type MemoryRepo struct {
	txMu        sync.Mutex
	mu          sync.Mutex
	orders      map[int64]entities.Order
	stock       map[stockKey]int
	coupons     map[int64]int
	sideEffects map[sideEffectKey]struct{}
	now         func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		orders:      make(map[int64]entities.Order),
		stock:       make(map[stockKey]int),
		coupons:     make(map[int64]int),
		sideEffects: make(map[sideEffectKey]struct{}),
		now:         time.Now,
	}
}

func (r *MemoryRepo) PutOrder(o entities.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o.Items = slices.Clone(o.Items)
	r.orders[o.ID] = o
}

func (r *MemoryRepo) SetStock(productID, variantID int64, qty int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stock[stockKey{productID, variantID}] = qty
}

func (r *MemoryRepo) Stock(productID, variantID int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stock[stockKey{productID, variantID}]
}

func (r *MemoryRepo) AddCoupon(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.coupons[id] = 0
}

func (r *MemoryRepo) CouponUsage(id int64) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.coupons[id]
}

func (r *MemoryRepo) FindOrder(_ context.Context, id int64) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	o.Items = slices.Clone(o.Items)
	return o, nil
}

func (r *MemoryRepo) UpdateStatusIf(_ context.Context, id int64, expected, next entities.OrderStatus, paymentID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok || o.Status != expected {
		return false, nil
	}
	o.Status = next
	if paymentID != "" {
		o.PaymentID = paymentID
	}
	o.UpdatedAt = r.now()
	r.orders[id] = o
	return true, nil
}

func (r *MemoryRepo) StalePendingOrders(_ context.Context, staleBefore, notBefore time.Time, limit int) ([]entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []entities.Order
	for _, o := range r.orders {
		if o.Status != entities.StatusPending || !o.UpdatedAt.Before(staleBefore) || !o.CreatedAt.After(notBefore) {
			continue
		}
		if !o.CheckedAt.IsZero() && !o.CheckedAt.Before(staleBefore) {
			continue
		}
		o.Items = nil
		result = append(result, o)
	}
	slices.SortFunc(result, func(a, b entities.Order) int {
		if c := lastSeen(a).Compare(lastSeen(b)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *MemoryRepo) MarkChecked(_ context.Context, ids []int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if o, ok := r.orders[id]; ok {
			o.CheckedAt = at
			r.orders[id] = o
		}
	}
	return nil
}

func lastSeen(o entities.Order) time.Time {
	if o.CheckedAt.IsZero() {
		return o.UpdatedAt
	}
	return o.CheckedAt
}

func (r *MemoryRepo) MarkSideEffect(_ context.Context, orderID int64, effect entities.SideEffect) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := sideEffectKey{orderID, effect}
	if _, ok := r.sideEffects[key]; ok {
		return false, nil
	}
	r.sideEffects[key] = struct{}{}
	return true, nil
}

func (r *MemoryRepo) DecrementStock(_ context.Context, items []entities.LineItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range items {
		key := stockKey{it.ProductID, it.VariantID}
		r.stock[key] = max(r.stock[key]-it.Quantity, 0)
	}
	return nil
}

func (r *MemoryRepo) IncrementCouponUsage(_ context.Context, couponID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.coupons[couponID]; !ok {
		return entities.ErrCouponNotFound
	}
	r.coupons[couponID]++
	return nil
}

type memTxKey struct{}

type memSnapshot struct {
	stock       map[stockKey]int
	coupons     map[int64]int
	sideEffects map[sideEffectKey]struct{}
}

type memTx struct {
	repo *MemoryRepo
	snap memSnapshot
	done bool
}

func (t *memTx) Commit() error {
	if t.done {
		return nil
	}
	t.done = true
	t.repo.txMu.Unlock()
	return nil
}

func (t *memTx) Rollback() error {
	if t.done {
		return nil
	}
	t.done = true
	t.repo.restore(t.snap)
	t.repo.txMu.Unlock()
	return nil
}

func (r *MemoryRepo) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	r.txMu.Lock()
	tx := &memTx{repo: r, snap: r.snapshot()}
	return context.WithValue(ctx, memTxKey{}, tx), tx, nil
}

func (r *MemoryRepo) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if _, ok := ctx.Value(memTxKey{}).(*memTx); ok {
		return callback(ctx)
	}

	ctx, tx, err := r.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(ctx); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *MemoryRepo) snapshot() memSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return memSnapshot{
		stock:       maps.Clone(r.stock),
		coupons:     maps.Clone(r.coupons),
		sideEffects: maps.Clone(r.sideEffects),
	}
}

func (r *MemoryRepo) restore(s memSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stock = s.stock
	r.coupons = s.coupons
	r.sideEffects = s.sideEffects
}
