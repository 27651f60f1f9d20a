package filter

import (
	"context"

	"github.com/s0up4200/geckoctl/market"
)

// Filter defines the basic interface for coin filters
type Filter interface {
	// Evaluate checks if a coin matches the filter criteria.
	// A coin the expression fails on does not match.
	Evaluate(coin market.CoinInfo) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Run evaluates the filter and reports runtime failures
	Run(coin market.CoinInfo) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// Evaluator evaluates filters against coins
type Evaluator interface {
	Evaluate(ctx context.Context, filter CompiledFilter, coins []market.CoinInfo) ([]market.CoinInfo, error)
}

// BatchEvaluator evaluates multiple filters concurrently
type BatchEvaluator interface {
	EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, coins []market.CoinInfo) (map[string][]market.CoinInfo, error)
}

// BatchResult represents the result of evaluating one named filter
type BatchResult struct {
	FilterName string
	Matches    []market.CoinInfo
	Error      error
}

// WorkerPool defines the interface for concurrent work execution
type WorkerPool interface {
	// Submit queues work, blocking while the queue is full
	Submit(work func()) error

	// Stop drains queued work and stops the workers
	Stop(ctx context.Context) error
}
