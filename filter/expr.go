package filter

import (
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/geckoctl/market"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	extra      map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds helper functions available to every expression
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.extra, funcs)
	}
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	extra map[string]any
	cache *lruCache[CompiledFilter]
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		extra: make(map[string]any),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile compiles an expression into an executable filter.
// Identifiers are checked against the coin environment, so a misspelled
// field fails here rather than on every coin.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	env := createRuntimeEnvironment(market.CoinInfo{}, c.extra)
	program, err := expr.Compile(expression,
		expr.Env(env),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		extra:      c.extra,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Evaluate evaluates the filter against a coin
func (f *exprFilter) Evaluate(coin market.CoinInfo) bool {
	ok, err := f.Run(coin)
	return err == nil && ok
}

// Run evaluates the filter against a coin and reports runtime errors
func (f *exprFilter) Run(coin market.CoinInfo) (bool, error) {
	result, err := expr.Run(f.program, createRuntimeEnvironment(coin, f.extra))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			CoinID:     coin.ID,
			Err:        err,
		}
	}

	// AsBool guarantees the result type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// createRuntimeEnvironment exposes the coin fields and helpers to expressions
func createRuntimeEnvironment(coin market.CoinInfo, extra map[string]any) map[string]any {
	env := make(map[string]any, 32+len(extra))

	addHelperFunctions(env)

	env["Coin"] = coin
	env["ID"] = coin.ID
	env["Symbol"] = coin.Symbol
	env["Name"] = coin.Name
	env["Rank"] = coin.Rank
	env["Price"] = coin.Price
	env["MarketCap"] = coin.MarketCap
	env["Volume"] = coin.Volume
	env["High24h"] = coin.High24h
	env["Low24h"] = coin.Low24h
	env["Change24h"] = coin.Change24h
	env["CirculatingSupply"] = coin.CirculatingSupply
	env["TotalSupply"] = coin.TotalSupply
	env["MaxSupply"] = coin.MaxSupply
	env["ATH"] = coin.ATH
	env["ATHChange"] = coin.ATHChange
	env["ATHDate"] = coin.ATHDate
	env["LastUpdated"] = coin.LastUpdated

	env["symbolIs"] = createSymbolIsFunc(coin.Symbol)
	env["supplyRatio"] = createSupplyRatioFunc(coin.CirculatingSupply, coin.MaxSupply)
	env["rangePosition"] = createRangePositionFunc(coin.Price, coin.Low24h, coin.High24h)
	env["volumeRatio"] = createVolumeRatioFunc(coin.Volume, coin.MarketCap)

	maps.Copy(env, extra)
	return env
}

// addHelperFunctions adds the coin-independent helpers. String case helpers
// and now() come from the expr builtins.
func addHelperFunctions(env map[string]any) {
	env["daysSince"] = func(t time.Time) int {
		return int(time.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return time.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return time.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return time.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse("2006-01-02", dateStr)
		return t
	}
}

func createSymbolIsFunc(symbol string) func(...string) bool {
	return func(symbols ...string) bool {
		for _, s := range symbols {
			if strings.EqualFold(s, symbol) {
				return true
			}
		}
		return false
	}
}

// createSupplyRatioFunc returns circulating/max supply, 0 for uncapped coins
func createSupplyRatioFunc(circulating, maxSupply float64) func() float64 {
	return func() float64 {
		if maxSupply <= 0 {
			return 0
		}
		return circulating / maxSupply
	}
}

// createRangePositionFunc returns where the price sits in the 24h range,
// from 0 at the low to 1 at the high.
func createRangePositionFunc(price, low, high float64) func() float64 {
	return func() float64 {
		if high <= low {
			return 0
		}
		return (price - low) / (high - low)
	}
}

func createVolumeRatioFunc(volume, marketCap float64) func() float64 {
	return func() float64 {
		if marketCap <= 0 {
			return 0
		}
		return volume / marketCap
	}
}
