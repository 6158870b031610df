package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// BulkFacade exposes the per-item operations driven by the bulk processor.
type BulkFacade interface {
	CancelOrder(ctx context.Context, orderID int64, reason string) error
	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	UpdateProductStatus(ctx context.Context, productID int64, status model.ProductStatus) error
}

// BulkResult is the outcome of one item within a batch.
type BulkResult struct {
	ID  int64
	Err error
}

// BulkProcessor fans administrative batch operations out over a fixed worker
// pool and collects per-item outcomes. Each item is handled independently;
// a failing item never aborts the rest of the batch. The processor runs
// synchronously within the request that triggered it.
type BulkProcessor struct {
	facade  BulkFacade
	workers int
	logger  *slog.Logger
}

// NewBulkProcessor constructs the bulk processor.
func NewBulkProcessor(facade BulkFacade, workers int, logger *slog.Logger) *BulkProcessor {
	if workers <= 0 {
		workers = 1
	}
	return &BulkProcessor{facade: facade, workers: workers, logger: logger}
}

// Cancel cancels every order in ids, recording the reason, and returns one
// result per order in input order.
func (p *BulkProcessor) Cancel(ctx context.Context, ids []int64, reason string) []BulkResult {
	return p.run(ctx, ids, "cancel", func(ctx context.Context, orderID int64) error {
		return p.facade.CancelOrder(ctx, orderID, reason)
	})
}

// UpdateStatus moves every order in ids to status and returns one result per
// order in input order.
func (p *BulkProcessor) UpdateStatus(ctx context.Context, ids []int64, status model.OrderStatus) []BulkResult {
	return p.run(ctx, ids, string(status), func(ctx context.Context, orderID int64) error {
		return p.facade.UpdateOrderStatus(ctx, orderID, status)
	})
}

// UpdateProductsStatus moves every product in ids to status and returns one
// result per product in input order.
func (p *BulkProcessor) UpdateProductsStatus(ctx context.Context, ids []int64, status model.ProductStatus) []BulkResult {
	return p.run(ctx, ids, "product "+string(status), func(ctx context.Context, productID int64) error {
		return p.facade.UpdateProductStatus(ctx, productID, status)
	})
}

func (p *BulkProcessor) run(ctx context.Context, ids []int64, op string, apply func(context.Context, int64) error) []BulkResult {
	results := make([]BulkResult, len(ids))
	jobs := make(chan int)

	workers := p.workers
	if workers > len(ids) {
		workers = len(ids)
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				id := ids[idx]
				err := apply(ctx, id)
				if err != nil {
					p.logger.Warn("bulk operation failed",
						slog.String("op", op),
						slog.Int64("id", id),
						slog.String("error", err.Error()),
					)
				}
				results[idx] = BulkResult{ID: id, Err: err}
			}
		}()
	}

	for idx := range ids {
		select {
		case <-ctx.Done():
			results[idx] = BulkResult{ID: ids[idx], Err: ctx.Err()}
			continue
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	return results
}
