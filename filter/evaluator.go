package filter

import (
	"context"
	"runtime"
	"sync"

	"github.com/s0up4200/geckoctl/market"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workerCount = workers
		}
	}
}

// WithBatchSize sets the chunk size below which evaluation stays sequential
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator implements both Evaluator and BatchEvaluator
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
	pool        WorkerPool
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   250,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.pool = NewWorkerPool(e.workerCount)

	return e
}

// Evaluate returns the coins matching filter, in input order
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, coins []market.CoinInfo) ([]market.CoinInfo, error) {
	if len(coins) == 0 {
		return []market.CoinInfo{}, nil
	}

	if len(coins) < e.batchSize {
		return evaluateSequential(filter, coins), nil
	}

	return e.evaluateConcurrent(ctx, filter, coins)
}

// EvaluateBatch evaluates several filters against the same coins.
// Filters whose evaluation was cancelled are left out of the result.
func (e *ConcurrentEvaluator) EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, coins []market.CoinInfo) (map[string][]market.CoinInfo, error) {
	results := make(map[string][]market.CoinInfo, len(filters))
	if len(filters) == 0 || len(coins) == 0 {
		return results, nil
	}

	resultChan := make(chan BatchResult, len(filters))

	var wg sync.WaitGroup
	for name, filter := range filters {
		wg.Add(1)

		// Each filter runs sequentially on one worker; nesting chunked work
		// on the same pool could starve it.
		err := e.pool.Submit(func() {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				resultChan <- BatchResult{FilterName: name, Error: err}
				return
			}
			resultChan <- BatchResult{
				FilterName: name,
				Matches:    evaluateSequential(filter, coins),
			}
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}

	wg.Wait()
	close(resultChan)

	for result := range resultChan {
		if result.Error != nil {
			continue
		}
		results[result.FilterName] = result.Matches
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func evaluateSequential(filter CompiledFilter, coins []market.CoinInfo) []market.CoinInfo {
	matches := make([]market.CoinInfo, 0, len(coins)/4)
	for _, coin := range coins {
		if filter.Evaluate(coin) {
			matches = append(matches, coin)
		}
	}
	return matches
}

// evaluateConcurrent splits coins into chunks evaluated on the worker pool
// and reassembles the matches in input order.
func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter CompiledFilter, coins []market.CoinInfo) ([]market.CoinInfo, error) {
	chunkSize := max(len(coins)/e.workerCount, e.batchSize)
	chunks := (len(coins) + chunkSize - 1) / chunkSize
	results := make([][]market.CoinInfo, chunks)

	var wg sync.WaitGroup
	for i := range chunks {
		start := i * chunkSize
		chunk := coins[start:min(start+chunkSize, len(coins))]

		wg.Add(1)
		err := e.pool.Submit(func() {
			defer wg.Done()

			if ctx.Err() != nil {
				return
			}
			results[i] = evaluateSequential(filter, chunk)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, err
		}
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	matches := make([]market.CoinInfo, 0, total)
	for _, r := range results {
		matches = append(matches, r...)
	}
	return matches, nil
}

// Stop gracefully stops the evaluator's worker pool
func (e *ConcurrentEvaluator) Stop(ctx context.Context) error {
	return e.pool.Stop(ctx)
}
