package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"rugcheck/internal/domain/models"
	"rugcheck/pkg/cache"
)

var ErrReportNotFound = errors.New("report not found")

// CachedReports stores finished reports for a short TTL so repeat lookups
// don't rescan. Reports are stored as JSON strings, which every cache
// backend round-trips unchanged.
type CachedReports struct {
	cache cache.Service
	ttl   time.Duration
}

func NewCachedReports(c cache.Service, ttl time.Duration) *CachedReports {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &CachedReports{cache: c, ttl: ttl}
}

func reportKey(chain, address string) string {
	return "report:" + chain + ":" + address
}

func (r *CachedReports) Put(ctx context.Context, report *models.ScanReport) error {
	b, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	return r.cache.Set(ctx, reportKey(report.Chain, report.Address), string(b), r.ttl)
}

func (r *CachedReports) Get(ctx context.Context, chain, address string) (*models.ScanReport, error) {
	var raw string
	err := r.cache.Get(ctx, reportKey(chain, address), &raw)
	if err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	var report models.ScanReport
	if err := json.Unmarshal([]byte(raw), &report); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}
	return &report, nil
}
