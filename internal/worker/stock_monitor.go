package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/tsogoo/minimart/internal/domain/model"
)

// StoreFacade exposes the subset of application functionality required by the monitor.
type StoreFacade interface {
	LowStockProducts(ctx context.Context, threshold int64, limit int) ([]model.Product, error)
}

// StockMonitor polls the catalog and reports products running low concurrently.
type StockMonitor struct {
	facade       StoreFacade
	pollInterval time.Duration
	threshold    int64
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Product
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStockMonitor constructs stock monitor worker pool.
func NewStockMonitor(facade StoreFacade, pollInterval time.Duration, threshold int64, batchSize, workers int, logger *slog.Logger) *StockMonitor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &StockMonitor{
		facade:       facade,
		pollInterval: pollInterval,
		threshold:    threshold,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Product, batchSize*workers),
	}
}

// Start launches background monitoring.
func (m *StockMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.worker(runCtx)
	}

	m.wg.Add(1)
	go m.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (m *StockMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *StockMonitor) dispatch(ctx context.Context) {
	defer m.wg.Done()
	defer close(m.jobs)
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.fetchAndDispatch(ctx)
		}
	}
}

func (m *StockMonitor) fetchAndDispatch(ctx context.Context) {
	products, err := m.facade.LowStockProducts(ctx, m.threshold, m.batchSize)
	if err != nil {
		m.logger.Error("fetch low stock products failed", slog.String("error", err.Error()))
		return
	}
	for _, product := range products {
		select {
		case <-ctx.Done():
			return
		case m.jobs <- product:
		}
	}
}

func (m *StockMonitor) worker(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case product, ok := <-m.jobs:
			if !ok {
				return
			}
			m.report(product)
		}
	}
}

func (m *StockMonitor) report(product model.Product) {
	if product.Stock == 0 {
		m.logger.Warn("product out of stock",
			slog.Int64("product_id", product.ID),
			slog.String("code", product.Code),
		)
		return
	}
	m.logger.Warn("product running low",
		slog.Int64("product_id", product.ID),
		slog.String("code", product.Code),
		slog.Int64("stock", product.Stock),
		slog.Int64("threshold", m.threshold),
	)
}
