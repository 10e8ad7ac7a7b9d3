// Package engine - Comparison orchestrator
// Runs the per-vendor pipeline across a batch of vendor IDs. Vendor
// calculations are independent, so the batch fans out over a bounded worker
// pool; a failed vendor is reported and omitted, never aborting the batch.
package engine

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"vendor-tco/core/types"
	"vendor-tco/internal/logging"
)

// DefaultWorkers is the worker-pool size when none is configured
const DefaultWorkers = 4

// VendorFailure records one vendor that could not be calculated
type VendorFailure struct {
	// VendorID is the failed vendor
	VendorID string `json:"vendor_id"`

	// Error is the failure description
	Error string `json:"error"`
}

// ComparisonReport is the batch output. Results hold only the vendors that
// computed successfully, sorted ascending by total cost; Failures make a
// fully-failed batch distinguishable from an empty request.
type ComparisonReport struct {
	// BatchID uniquely identifies this comparison run
	BatchID string `json:"batch_id"`

	// Results are successful calculations sorted ascending by total cost
	Results []*types.CalculationResult `json:"results"`

	// Failures lists vendors that were skipped
	Failures []VendorFailure `json:"failures,omitempty"`

	// Requested is the number of vendor IDs in the request
	Requested int `json:"requested"`

	// Duration is the batch wall time
	Duration time.Duration `json:"duration"`
}

// Orchestrator fans vendor calculations out over a worker pool
type Orchestrator struct {
	engine  *Engine
	workers int
}

// NewOrchestrator creates an orchestrator over an engine
func NewOrchestrator(engine *Engine, workers int) *Orchestrator {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Orchestrator{engine: engine, workers: workers}
}

// Compare runs the pipeline for every vendor ID and returns the ranked
// report. The configuration is validated once up front; an invalid
// configuration fails the whole batch before any computation.
func (o *Orchestrator) Compare(ctx context.Context, vendorIDs []string, cfg *types.Configuration, rtf types.RealTimeFactors) (*ComparisonReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	report := &ComparisonReport{
		BatchID:   uuid.NewString(),
		Requested: len(vendorIDs),
	}

	if len(vendorIDs) == 0 {
		report.Duration = time.Since(start)
		return report, nil
	}

	workers := o.workers
	if len(vendorIDs) < workers {
		workers = len(vendorIDs)
	}

	work := make(chan string, len(vendorIDs))
	for _, id := range vendorIDs {
		work <- id
	}
	close(work)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		results  []*types.CalculationResult
		failures []VendorFailure
	)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for id := range work {
				select {
				case <-ctx.Done():
					return
				default:
				}

				result, err := o.engine.Calculate(ctx, id, cfg, rtf)
				mu.Lock()
				if err != nil {
					failures = append(failures, VendorFailure{VendorID: id, Error: err.Error()})
					logging.Warn("vendor skipped in comparison",
						zap.String("vendor_id", id),
						zap.String("batch_id", report.BatchID),
						zap.Error(err))
				} else {
					results = append(results, result)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	// Ascending by total cost; vendor ID breaks cost ties for a stable order
	sort.Slice(results, func(i, j int) bool {
		c := results[i].Breakdown.Total.Cmp(results[j].Breakdown.Total)
		if c != 0 {
			return c < 0
		}
		return results[i].VendorID < results[j].VendorID
	})
	sort.Slice(failures, func(i, j int) bool {
		return failures[i].VendorID < failures[j].VendorID
	})

	report.Results = results
	report.Failures = failures
	report.Duration = time.Since(start)

	logging.Info("comparison batch complete",
		zap.String("batch_id", report.BatchID),
		zap.Int("requested", report.Requested),
		zap.Int("succeeded", len(results)),
		zap.Int("failed", len(failures)),
		zap.Duration("duration", report.Duration))

	return report, nil
}
