package task

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"landing-platform/internal/domain/locale"
	"landing-platform/internal/service"

	"github.com/robfig/cron/v3"
)

type stubScanner struct {
	found []service.UnitConflicts
	err   error
}

func (s stubScanner) ScanDuplicates(context.Context) ([]service.UnitConflicts, error) {
	return s.found, s.err
}

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return slog.New(slog.NewTextHandler(&buf, nil)), &buf
}

func TestIntegrityScanJobLogsConflicts(t *testing.T) {
	logger, buf := bufferLogger()
	job := NewIntegrityScanJob(stubScanner{found: []service.UnitConflicts{{
		BusinessUnitID: "bu-1",
		Conflicts:      []locale.Conflict{{Country: "US", LanguageCode: "en", PageIDs: []string{"p1", "p2"}}},
	}}}, logger)

	job.Run()

	out := buf.String()
	if !strings.Contains(out, "duplicate active landing pages") || !strings.Contains(out, "business_unit_id=bu-1") {
		t.Errorf("log = %s", out)
	}
}

func TestIntegrityScanJobLogsErrors(t *testing.T) {
	logger, buf := bufferLogger()
	NewIntegrityScanJob(stubScanner{err: errors.New("db down")}, logger).Run()

	if !strings.Contains(buf.String(), "db down") {
		t.Errorf("log = %s", buf.String())
	}
}

func TestPanicRecoveryWrapper(t *testing.T) {
	logger, buf := bufferLogger()
	job := NewPanicRecoveryWrapper(logger)(cron.FuncJob(func() { panic("boom") }))

	job.Run()

	if !strings.Contains(buf.String(), "job panicked") {
		t.Errorf("log = %s", buf.String())
	}
}

func TestJobName(t *testing.T) {
	if got := jobName(NewIntegrityScanJob(stubScanner{}, slog.Default())); got != "IntegrityScanJob" {
		t.Errorf("jobName = %q", got)
	}
	if got := jobName(cron.FuncJob(func() {})); got != "cron.FuncJob" {
		t.Errorf("jobName = %q", got)
	}
}

func TestSchedulerRejectsBadSpec(t *testing.T) {
	logger, _ := bufferLogger()
	s := NewScheduler(logger)
	if err := s.Register("not a schedule", NewIntegrityScanJob(stubScanner{}, logger)); err == nil {
		t.Error("expected error")
	}
	if err := s.Register("@every 6h", NewIntegrityScanJob(stubScanner{}, logger)); err != nil {
		t.Error(err)
	}
}

func TestSchedulerChainLogsJobName(t *testing.T) {
	logger, buf := bufferLogger()
	s := NewScheduler(logger)
	if err := s.Register("@every 6h", NewIntegrityScanJob(stubScanner{}, logger)); err != nil {
		t.Fatal(err)
	}

	entries := s.cron.Entries()
	if len(entries) != 1 {
		t.Fatalf("entries = %d", len(entries))
	}
	entries[0].WrappedJob.Run()

	out := buf.String()
	if !strings.Contains(out, `msg="job started" system=cron job_name=IntegrityScanJob`) {
		t.Errorf("log = %s", out)
	}
	if strings.Contains(out, "job_name=cron.FuncJob") {
		t.Errorf("wrapper name leaked into log: %s", out)
	}
}

func TestWrappersKeepJobName(t *testing.T) {
	logger, _ := bufferLogger()
	job := NewIntegrityScanJob(stubScanner{}, logger)
	wrapped := NewPanicRecoveryWrapper(logger)(NewLoggingWrapper(logger)(job))
	if got := jobName(wrapped); got != "IntegrityScanJob" {
		t.Errorf("jobName = %q", got)
	}
}
