package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"rugcheck/internal/domain/models"
	"rugcheck/pkg/cache"
)

func TestCachedReportsRoundTrip(t *testing.T) {
	store := NewCachedReports(cache.NewMemoryCache(), time.Minute)
	ctx := context.Background()

	report := &models.ScanReport{
		Chain:   "eth",
		Address: "0xdac17f958d2ee523a2206206994597c13d831ec7",
		Score:   models.RiskScore{Points: 42, Verdict: models.VerdictMedium},
	}
	if err := store.Put(ctx, report); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, err := store.Get(ctx, "eth", report.Address)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Score.Points != 42 || got.Score.Verdict != models.VerdictMedium {
		t.Fatalf("report mangled in cache: %+v", got.Score)
	}
}

func TestCachedReportsMiss(t *testing.T) {
	store := NewCachedReports(cache.NewMemoryCache(), time.Minute)
	_, err := store.Get(context.Background(), "eth", "0x0000000000000000000000000000000000000001")
	if !errors.Is(err, ErrReportNotFound) {
		t.Fatalf("expected ErrReportNotFound, got %v", err)
	}
}
