package revocation

import (
	"context"
	"sync"
	"time"
)

// MemoryList is an in-process revocation list for single-instance
// deployments and tests.
type MemoryList struct {
	mu      sync.RWMutex
	revoked map[string]time.Time
}

func NewMemoryList() *MemoryList {
	return &MemoryList{revoked: make(map[string]time.Time)}
}

func (l *MemoryList) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	if jti == "" {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.revoked[jti] = time.Now().Add(ttl)
	return nil
}

func (l *MemoryList) IsRevoked(_ context.Context, jti string) (bool, error) {
	if jti == "" {
		return false, nil
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	expiry, ok := l.revoked[jti]
	if !ok {
		return false, nil
	}
	return time.Now().Before(expiry), nil
}
