package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "cart:"

// Manager owns every session's cart. Each session id maps to exactly one
// Cart, so all writers for a session funnel through the same instance.
// When a Redis client is supplied, a JSON snapshot is written after every
// mutation and reloaded on a cold lookup; concurrent sessions sharing an id
// resolve last-writer-wins.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Cart
	rdb      *redis.Client
	ttl      time.Duration
}

func NewManager(rdb *redis.Client, ttl time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Cart),
		rdb:      rdb,
		ttl:      ttl,
	}
}

// Add adds the product to the session's cart and persists the snapshot.
func (m *Manager) Add(ctx context.Context, sessionID string, p Product, quantity int) Snapshot {
	c := m.cart(ctx, sessionID)
	c.Add(p, quantity)
	return m.persist(ctx, sessionID, c)
}

// UpdateQuantity sets the absolute quantity of a line in the session's cart.
func (m *Manager) UpdateQuantity(ctx context.Context, sessionID string, id, quantity int) Snapshot {
	c := m.cart(ctx, sessionID)
	c.UpdateQuantity(id, quantity)
	return m.persist(ctx, sessionID, c)
}

// Remove deletes a line from the session's cart.
func (m *Manager) Remove(ctx context.Context, sessionID string, id int) Snapshot {
	c := m.cart(ctx, sessionID)
	c.Remove(id)
	return m.persist(ctx, sessionID, c)
}

// Clear empties the session's cart and drops the stored snapshot.
func (m *Manager) Clear(ctx context.Context, sessionID string) Snapshot {
	c := m.cart(ctx, sessionID)
	c.Clear()
	if m.rdb != nil {
		if err := m.rdb.Del(ctx, redisKeyPrefix+sessionID).Err(); err != nil {
			log.Println("cart: failed to drop snapshot:", err)
		}
	}
	return c.Snapshot()
}

// Snapshot returns the session's current cart state without mutating it.
func (m *Manager) Snapshot(ctx context.Context, sessionID string) Snapshot {
	return m.cart(ctx, sessionID).Snapshot()
}

// cart returns the live cart for the session, restoring it from Redis when
// the session is not in memory (process restart, other instance).
func (m *Manager) cart(ctx context.Context, sessionID string) *Cart {
	m.mu.RLock()
	c, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok = m.sessions[sessionID]; ok {
		return c
	}

	c = New()
	m.restore(ctx, sessionID, c)
	m.sessions[sessionID] = c
	return c
}

func (m *Manager) restore(ctx context.Context, sessionID string, c *Cart) {
	if m.rdb == nil {
		return
	}

	raw, err := m.rdb.Get(ctx, redisKeyPrefix+sessionID).Result()
	if err != nil {
		if err != redis.Nil {
			log.Println("cart: failed to load snapshot:", err)
		}
		return
	}

	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		log.Println("cart: discarding corrupt snapshot:", err)
		return
	}

	// Replay through Add so restored state satisfies the same invariants
	// as live state (unique ids, positive quantities, fresh totals).
	for _, item := range snap.Items {
		if item.Quantity <= 0 {
			continue
		}
		c.Add(Product{
			ID:          item.ID,
			Name:        item.Name,
			Price:       item.Price,
			Image:       item.Image,
			Description: item.Description,
		}, item.Quantity)
	}
}

func (m *Manager) persist(ctx context.Context, sessionID string, c *Cart) Snapshot {
	snap := c.Snapshot()
	if m.rdb == nil {
		return snap
	}

	raw, err := json.Marshal(snap)
	if err != nil {
		log.Println("cart: failed to encode snapshot:", err)
		return snap
	}
	if err := m.rdb.Set(ctx, redisKeyPrefix+sessionID, raw, m.ttl).Err(); err != nil {
		log.Println("cart: failed to store snapshot:", err)
	}
	return snap
}
