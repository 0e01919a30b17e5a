package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps in-progress wizards between requests, keyed by the
// (customer, professional) pair. A missing wizard is (nil, nil).
type Store interface {
	Get(ctx context.Context, customerID, professionalID uint) (*Wizard, error)
	Put(ctx context.Context, w *Wizard) error
	Delete(ctx context.Context, customerID, professionalID uint) error
}

// Sessions is the process-wide wizard store. main wires a RedisStore here and
// tests a MemStore; it is deliberately nil until wired so a deployment that
// skips the wiring fails on the first booking request instead of silently
// keeping wizards in process memory.
var Sessions Store

func sessionKey(customerID, professionalID uint) string {
	return fmt.Sprintf("wizard:%d:%d", customerID, professionalID)
}

// RedisStore persists wizards in redis with a TTL, so abandoned bookings
// expire on their own.
type RedisStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{Client: client, TTL: ttl}
}

func (s *RedisStore) Get(ctx context.Context, customerID, professionalID uint) (*Wizard, error) {
	raw, err := s.Client.Get(ctx, sessionKey(customerID, professionalID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var w Wizard
	if err := json.Unmarshal([]byte(raw), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *RedisStore) Put(ctx context.Context, w *Wizard) error {
	raw, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, sessionKey(w.CustomerID, w.ProfessionalID), raw, s.TTL).Err()
}

func (s *RedisStore) Delete(ctx context.Context, customerID, professionalID uint) error {
	return s.Client.Del(ctx, sessionKey(customerID, professionalID)).Err()
}

// MemStore is an in-process store for tests and local development without
// redis.
type MemStore struct {
	mu      sync.Mutex
	wizards map[string]*Wizard
}

func NewMemStore() *MemStore {
	return &MemStore{wizards: make(map[string]*Wizard)}
}

func (s *MemStore) Get(ctx context.Context, customerID, professionalID uint) (*Wizard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, ok := s.wizards[sessionKey(customerID, professionalID)]
	if !ok {
		return nil, nil
	}
	clone := *w
	return &clone, nil
}

func (s *MemStore) Put(ctx context.Context, w *Wizard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *w
	s.wizards[sessionKey(w.CustomerID, w.ProfessionalID)] = &clone
	return nil
}

func (s *MemStore) Delete(ctx context.Context, customerID, professionalID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.wizards, sessionKey(customerID, professionalID))
	return nil
}
