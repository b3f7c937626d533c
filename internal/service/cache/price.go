package cache

import (
	"sync"
	"time"
)

type pricePoint struct {
	usd float64
	at  time.Time
}

// PriceCache holds the native-currency USD price per chain for a short
// window so concurrent scans don't refetch it on every call.
type PriceCache struct {
	mu  sync.RWMutex
	ttl time.Duration
	now func() time.Time
	m   map[string]pricePoint
}

func NewPriceCache(ttl time.Duration) *PriceCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &PriceCache{ttl: ttl, now: time.Now, m: make(map[string]pricePoint)}
}

// WithClock replaces the clock; tests use this to drive expiry.
func (p *PriceCache) WithClock(now func() time.Time) *PriceCache {
	p.now = now
	return p
}

func (p *PriceCache) Get(chain string) (float64, bool) {
	p.mu.RLock()
	pt, ok := p.m[chain]
	p.mu.RUnlock()
	if !ok || p.now().Sub(pt.at) > p.ttl {
		return 0, false
	}
	return pt.usd, true
}

func (p *PriceCache) Set(chain string, usd float64) {
	p.mu.Lock()
	p.m[chain] = pricePoint{usd: usd, at: p.now()}
	p.mu.Unlock()
}
