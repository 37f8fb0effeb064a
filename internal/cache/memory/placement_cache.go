package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/wb_warehouse/internal/domain"
	"github.com/Gunvolt24/wb_warehouse/internal/ports"
	"github.com/Gunvolt24/wb_warehouse/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу PlacementCache.
var _ ports.PlacementCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        int64
	placement *domain.Placement
	expiresAt time.Time
}

// LRUCacheTTL — потокобезопасный LRU-кэш размещений с TTL.
// TTL <= 0 отключает истечение.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[int64]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL — конструктор. capacity <= 0 трактуется как 1.
func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[int64]*list.Element),
	}
}

// Get — размещение по id; продлевает TTL при попадании.
func (c *LRUCacheTTL) Get(_ context.Context, id int64) (*domain.Placement, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return clonePlacement(ent.placement), true
}

// Set — сохранить/обновить размещение; вытесняет LRU при переполнении.
func (c *LRUCacheTTL) Set(_ context.Context, p *domain.Placement) error {
	if p == nil || p.ID <= 0 {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[p.ID]; ok {
		ent := elem.Value.(*entry)
		ent.placement = clonePlacement(p)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:        p.ID,
		placement: clonePlacement(p),
		expiresAt: c.expiryFrom(now),
	})
	c.index[p.ID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// WarmUp — массовая загрузка (например, при старте).
func (c *LRUCacheTTL) WarmUp(ctx context.Context, placements []*domain.Placement) error {
	for _, p := range placements {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Set(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
