package task

import (
	"context"
	"log/slog"
	"time"

	"landing-platform/internal/service"
)

// DuplicateScanner is the part of the landing service the scan needs.
type DuplicateScanner interface {
	ScanDuplicates(ctx context.Context) ([]service.UnitConflicts, error)
}

// IntegrityScanJob logs every locale that has more than one active page.
// It never changes data; an operator picks which page stays active.
type IntegrityScanJob struct {
	scanner DuplicateScanner
	logger  *slog.Logger
	timeout time.Duration
}

func NewIntegrityScanJob(scanner DuplicateScanner, logger *slog.Logger) *IntegrityScanJob {
	return &IntegrityScanJob{scanner: scanner, logger: logger, timeout: 2 * time.Minute}
}

func (j *IntegrityScanJob) Name() string {
	return "IntegrityScanJob"
}

func (j *IntegrityScanJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	found, err := j.scanner.ScanDuplicates(ctx)
	if err != nil {
		j.logger.Error("duplicate active scan failed", slog.Any("error", err))
	}
	for _, unit := range found {
		for _, c := range unit.Conflicts {
			j.logger.Warn("duplicate active landing pages",
				slog.String("business_unit_id", unit.BusinessUnitID),
				slog.String("country", c.Country),
				slog.String("language_code", c.LanguageCode),
				slog.Any("page_ids", c.PageIDs),
			)
		}
	}
	if err == nil && len(found) == 0 {
		j.logger.Info("no duplicate active landing pages")
	}
}
