package worker

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tsogoo/minimart/internal/domain/model"
	testhelpers "github.com/tsogoo/minimart/internal/test"
)

type warnRecorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *warnRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *warnRecorder) Handle(_ context.Context, record slog.Record) error {
	if record.Level == slog.LevelWarn {
		r.mu.Lock()
		r.messages = append(r.messages, record.Message)
		r.mu.Unlock()
	}
	return nil
}

func (r *warnRecorder) WithAttrs([]slog.Attr) slog.Handler { return r }
func (r *warnRecorder) WithGroup(string) slog.Handler      { return r }

func (r *warnRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages)
}

func TestNewStockMonitorDefaults(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	monitor := NewStockMonitor(&testhelpers.MonitorFacadeStub{}, time.Second, 5, 0, 0, logger)
	if monitor.batchSize != 1 {
		t.Fatalf("expected batch size default to 1, got %d", monitor.batchSize)
	}
	if monitor.workers != 1 {
		t.Fatalf("expected workers default to 1, got %d", monitor.workers)
	}
}

func TestStockMonitorReportsLowStock(t *testing.T) {
	recorder := &warnRecorder{}
	logger := slog.New(recorder)
	facade := &testhelpers.MonitorFacadeStub{
		Batches: [][]model.Product{{
			{ID: 1, Code: "P001", Stock: 2},
			{ID: 2, Code: "P002", Stock: 0},
		}},
	}
	monitor := NewStockMonitor(facade, 10*time.Millisecond, 5, 4, 2, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	monitor.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for recorder.count() < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for low stock reports")
		case <-time.After(10 * time.Millisecond):
		}
	}
	monitor.Stop()

	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	seenOut := false
	for _, msg := range recorder.messages {
		if msg == "product out of stock" {
			seenOut = true
		}
	}
	if !seenOut {
		t.Fatal("expected out of stock report for empty product")
	}
}

func TestStockMonitorPassesThresholdAndBatch(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	var calls int32
	facade := &testhelpers.MonitorFacadeStub{
		LowStockFn: func(ctx context.Context, threshold int64, limit int) ([]model.Product, error) {
			if threshold != 7 || limit != 3 {
				t.Errorf("unexpected poll arguments: threshold=%d limit=%d", threshold, limit)
			}
			atomic.AddInt32(&calls, 1)
			return nil, nil
		},
	}
	monitor := NewStockMonitor(facade, 5*time.Millisecond, 7, 3, 1, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	monitor.Start(ctx)

	deadline := time.After(500 * time.Millisecond)
	for atomic.LoadInt32(&calls) < 2 {
		select {
		case <-deadline:
			t.Fatal("timeout waiting for polls")
		case <-time.After(5 * time.Millisecond):
		}
	}
	monitor.Stop()
}

func TestStockMonitorStopIsIdempotent(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	monitor := NewStockMonitor(&testhelpers.MonitorFacadeStub{}, 10*time.Millisecond, 5, 1, 1, logger)
	monitor.Start(context.Background())
	monitor.Stop()
	monitor.Stop()
}
