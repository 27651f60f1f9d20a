package filter

import (
	"context"
	"strings"
	"sync"

	"github.com/s0up4200/geckoctl/market"
)

var (
	defaultCompiler     CachingCompiler
	defaultCompilerOnce sync.Once
)

func sharedCompiler() CachingCompiler {
	defaultCompilerOnce.Do(func() {
		defaultCompiler = NewExprCompiler(WithCache(256))
	})
	return defaultCompiler
}

// CompileFilter compiles an expression with the shared caching compiler
func CompileFilter(expression string) (CompiledFilter, error) {
	return sharedCompiler().Compile(expression)
}

// ParseAndCreateFilter parses a filter expression and returns a filter function
func ParseAndCreateFilter(expression string) (func(market.CoinInfo) bool, error) {
	if strings.TrimSpace(expression) == "" {
		// Empty filter matches everything
		return func(market.CoinInfo) bool { return true }, nil
	}

	compiled, err := CompileFilter(expression)
	if err != nil {
		return nil, err
	}
	return compiled.Evaluate, nil
}

// EvaluateFilters compiles each named expression and evaluates them all
// against coins concurrently.
func EvaluateFilters(ctx context.Context, filters map[string]string, coins []market.CoinInfo) (map[string][]market.CoinInfo, error) {
	manager := NewManager(WithCompiler(sharedCompiler()))
	defer manager.Close(context.Background())

	if err := manager.RegisterFilters(filters); err != nil {
		return nil, err
	}
	return manager.EvaluateAll(ctx, coins)
}
