package usecase

import (
	"context"
	"fmt"

	"rugcheck/internal/domain/models"
	"rugcheck/internal/domain/repository"
	"rugcheck/pkg/logger"
	"rugcheck/pkg/queue"
)

const (
	ScanJobName = "scan-token"
	ScanJobType = "scan.request"
)

// ScanJob consumes queued scan requests, runs the scan and pushes the
// finished report to the cache and publisher. Invalid requests are dropped
// rather than retried.
type ScanJob struct {
	scanner   *Scanner
	reports   repository.ReportCache
	publisher repository.ReportPublisher
	log       *logger.Logger
}

func NewScanJob(scanner *Scanner, reports repository.ReportCache, publisher repository.ReportPublisher, log *logger.Logger) *ScanJob {
	return &ScanJob{scanner: scanner, reports: reports, publisher: publisher, log: log}
}

func (j *ScanJob) Name() string { return ScanJobName }
func (j *ScanJob) Type() string { return ScanJobType }

func (j *ScanJob) Handle(ctx context.Context, payload interface{}) error {
	req, err := queue.ParsePayload[models.ScanRequest](payload)
	if err != nil {
		j.log.Error("scan job payload malformed", logger.Error(err))
		return nil
	}

	report, err := j.scanner.Scan(ctx, req.Chain, req.Address)
	if err != nil {
		// Input errors can't succeed on retry.
		j.log.Warn("queued scan rejected",
			logger.String("chain", req.Chain),
			logger.String("address", req.Address),
			logger.Error(err))
		return nil
	}

	if err := j.reports.Put(ctx, report); err != nil {
		return fmt.Errorf("cache report: %w", err)
	}
	if err := j.publisher.Publish(ctx, report); err != nil {
		return fmt.Errorf("publish report: %w", err)
	}
	return nil
}
