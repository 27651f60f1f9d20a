package filter

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/geckoctl/market"
)

func testCoin() market.CoinInfo {
	return market.CoinInfo{
		ID:                "bitcoin",
		Symbol:            "BTC",
		Name:              "Bitcoin",
		Rank:              1,
		Price:             65000,
		MarketCap:         1.28e12,
		Volume:            3.2e10,
		High24h:           66000,
		Low24h:            62000,
		Change24h:         -3.5,
		CirculatingSupply: 19_700_000,
		TotalSupply:       21_000_000,
		MaxSupply:         21_000_000,
		ATH:               73738,
		ATHChange:         -11.8,
		ATHDate:           time.Now().AddDate(0, -7, 0),
		LastUpdated:       time.Now(),
	}
}

func TestCompileFilter(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `Rank <= 100`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `Symbol == "unclosed`,
			wantErr:    true,
		},
		{
			name:       "unknown field",
			expression: `Year > 2020`,
			wantErr:    true,
		},
		{
			name:       "non boolean result",
			expression: `Price * 2`,
			wantErr:    true,
		},
		{
			name:       "complex expression",
			expression: `MarketCap > 1e9 and abs(Change24h) > 2 and supplyRatio() > 0.5`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)

			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.True(t, errors.As(err, &compErr))
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, filter)
			assert.Equal(t, tt.expression, filter.Expression())
		})
	}
}

func TestFilterEvaluation(t *testing.T) {
	coin := testCoin()

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{"rank", `Rank <= 10`, true},
		{"symbol", `Symbol == "BTC"`, true},
		{"symbolIs any case", `symbolIs("eth", "btc")`, true},
		{"symbolIs miss", `symbolIs("eth", "sol")`, false},
		{"name contains", `Name contains "coin"`, true},
		{"id prefix", `ID startsWith "bit"`, true},
		{"negative change", `Change24h < -3`, true},
		{"abs change", `abs(Change24h) > 5`, false},
		{"price range", `Price > 60000 and Price < 70000`, true},
		{"supply ratio", `supplyRatio() > 0.9`, true},
		{"range position", `rangePosition() > 0.7`, true},
		{"volume ratio", `volumeRatio() < 0.1`, true},
		{"ath older than a month", `ATHDate < daysAgo(30)`, true},
		{"ath within a year", `ATHDate > yearsAgo(1)`, true},
		{"days since ath", `daysSince(ATHDate) > 180`, true},
		{"not operator", `not (Rank > 10)`, true},
		{"coin struct access", `Coin.MaxSupply == TotalSupply`, true},
		{"lower builtin", `lower(Symbol) == "btc"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := CompileFilter(tt.expression)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, filter.Evaluate(coin), "expression %q", tt.expression)
		})
	}
}

func TestHelperFunctions_EdgeCases(t *testing.T) {
	uncapped := market.CoinInfo{ID: "ethereum", CirculatingSupply: 120e6}
	assert.Zero(t, createSupplyRatioFunc(uncapped.CirculatingSupply, uncapped.MaxSupply)())

	flat := createRangePositionFunc(10, 10, 10)
	assert.Zero(t, flat())

	assert.Zero(t, createVolumeRatioFunc(100, 0)())
	assert.InDelta(t, 0.5, createRangePositionFunc(15, 10, 20)(), 1e-9)
}

func TestParseAndCreateFilter(t *testing.T) {
	t.Run("empty matches everything", func(t *testing.T) {
		fn, err := ParseAndCreateFilter("")
		require.NoError(t, err)
		assert.True(t, fn(market.CoinInfo{}))
	})

	t.Run("expression", func(t *testing.T) {
		fn, err := ParseAndCreateFilter(`Rank > 5`)
		require.NoError(t, err)
		assert.False(t, fn(testCoin()))
		assert.True(t, fn(market.CoinInfo{Rank: 6}))
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseAndCreateFilter(`Rank >`)
		require.Error(t, err)
	})
}

func TestExprFilter_RunReportsErrors(t *testing.T) {
	compiler := NewExprCompiler(WithCustomFunctions(map[string]any{
		"failing": func() (bool, error) { return false, errors.New("boom") },
	}))

	filter, err := compiler.Compile(`failing()`)
	require.NoError(t, err)

	ok, err := filter.Run(testCoin())
	require.Error(t, err)
	assert.False(t, ok)

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "bitcoin", evalErr.CoinID)
	assert.False(t, filter.Evaluate(testCoin()))
}

func TestConcurrentEvaluation(t *testing.T) {
	coins := generateTestCoins(1000)

	filter, err := CompileFilter(`Change24h > 0 and Rank <= 500`)
	require.NoError(t, err)

	evaluator := NewConcurrentEvaluator(WithWorkers(4), WithBatchSize(50))
	defer evaluator.Stop(context.Background())

	matches, err := evaluator.Evaluate(context.Background(), filter, coins)
	require.NoError(t, err)

	// Order must match a sequential pass
	assert.Equal(t, evaluateSequential(filter, coins), matches)
	assert.NotEmpty(t, matches)
}

func TestConcurrentEvaluation_Cancelled(t *testing.T) {
	coins := generateTestCoins(1000)
	filter, err := CompileFilter(`Rank > 0`)
	require.NoError(t, err)

	evaluator := NewConcurrentEvaluator(WithWorkers(2), WithBatchSize(10))
	defer evaluator.Stop(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = evaluator.Evaluate(ctx, filter, coins)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEvaluator_Stopped(t *testing.T) {
	filter, err := CompileFilter(`Rank > 0`)
	require.NoError(t, err)

	evaluator := NewConcurrentEvaluator(WithWorkers(2), WithBatchSize(10))
	require.NoError(t, evaluator.Stop(context.Background()))

	_, err = evaluator.Evaluate(context.Background(), filter, generateTestCoins(100))
	assert.ErrorIs(t, err, ErrPoolStopped)
}

func TestBatchEvaluation(t *testing.T) {
	coins := generateTestCoins(500)

	filters := map[string]string{
		"gainers":   `Change24h > 0`,
		"top100":    `Rank <= 100`,
		"largeCaps": `MarketCap > 1e9`,
	}

	results, err := EvaluateFilters(context.Background(), filters, coins)
	require.NoError(t, err)
	require.Len(t, results, len(filters))

	for name, expression := range filters {
		filter, err := CompileFilter(expression)
		require.NoError(t, err)
		assert.Equal(t, evaluateSequential(filter, coins), results[name], name)
	}
	assert.Len(t, results["top100"], 100)
}

func TestBatchEvaluation_InvalidFilter(t *testing.T) {
	_, err := EvaluateFilters(context.Background(), map[string]string{
		"ok":  `Rank > 0`,
		"bad": `Rank >`,
	}, generateTestCoins(10))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'bad'")
}

func TestFilterManager(t *testing.T) {
	manager := NewManager()
	defer manager.Close(context.Background())
	ctx := context.Background()

	filters := map[string]string{
		"top10":   `Rank <= 10`,
		"gainers": `Change24h > 0`,
		"cheap":   `Price < 1`,
	}
	require.NoError(t, manager.RegisterFilters(filters))

	assert.Equal(t, []string{"cheap", "gainers", "top10"}, manager.ListFilters())

	filter, exists := manager.GetFilter("top10")
	require.True(t, exists)
	assert.Equal(t, `Rank <= 10`, filter.Expression())

	coins := generateTestCoins(100)
	matches, err := manager.EvaluateFilter(ctx, "top10", coins)
	require.NoError(t, err)
	assert.Len(t, matches, 10)

	_, err = manager.EvaluateFilter(ctx, "missing", coins)
	assert.ErrorIs(t, err, ErrFilterNotFound)

	selected, err := manager.EvaluateSelected(ctx, []string{"top10", "gainers"}, coins)
	require.NoError(t, err)
	assert.Len(t, selected, 2)

	_, err = manager.EvaluateSelected(ctx, []string{"top10", "missing"}, coins)
	assert.ErrorIs(t, err, ErrFilterNotFound)

	all, err := manager.EvaluateAll(ctx, coins)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	manager.UnregisterFilter("top10")
	_, exists = manager.GetFilter("top10")
	assert.False(t, exists)

	// A failed batch registers nothing
	err = manager.RegisterFilters(map[string]string{"good": `Rank > 1`, "bad": `Rank >`})
	require.Error(t, err)
	_, exists = manager.GetFilter("good")
	assert.False(t, exists)
}

func TestCacheEffectiveness(t *testing.T) {
	compiler := NewExprCompiler(WithCache(2))
	expression := `Rank <= 100 and Change24h > 0`

	first, err := compiler.Compile(expression)
	require.NoError(t, err)

	second, err := compiler.Compile("  " + expression + "  ")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, compiler.Size())

	_, err = compiler.Compile(`Rank > 1`)
	require.NoError(t, err)
	_, err = compiler.Compile(`Rank > 2`)
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.Size())

	compiler.Clear()
	assert.Zero(t, compiler.Size())

	assert.Zero(t, NewExprCompiler().Size())
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := newLRUCache[int](2)
	cache.Put("a", 1)
	cache.Put("b", 2)

	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Put("c", 3)

	_, ok = cache.Get("b")
	assert.False(t, ok)

	v, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	cache.Put("a", 10)
	v, _ = cache.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, cache.Len())
}

func TestWorkerPool(t *testing.T) {
	pool := NewWorkerPool(3)

	results := make(chan int, 10)
	for i := range 10 {
		require.NoError(t, pool.Submit(func() { results <- i }))
	}

	require.NoError(t, pool.Stop(context.Background()))
	close(results)

	sum := 0
	for v := range results {
		sum += v
	}
	assert.Equal(t, 45, sum)

	assert.ErrorIs(t, pool.Submit(func() {}), ErrPoolStopped)
	assert.NoError(t, pool.Stop(context.Background()))
}

// generateTestCoins creates coins ranked 1..count with alternating movement
func generateTestCoins(count int) []market.CoinInfo {
	coins := make([]market.CoinInfo, count)

	for i := range count {
		rank := i + 1
		change := float64(i%7) - 3
		coins[i] = market.CoinInfo{
			ID:                fmt.Sprintf("coin-%d", rank),
			Symbol:            fmt.Sprintf("C%d", rank),
			Name:              fmt.Sprintf("Coin %d", rank),
			Rank:              rank,
			Price:             1000 / float64(rank),
			MarketCap:         1e12 / float64(rank),
			Volume:            1e9 / float64(rank),
			High24h:           1100 / float64(rank),
			Low24h:            900 / float64(rank),
			Change24h:         change,
			CirculatingSupply: 1e6 * float64(rank),
			MaxSupply:         2e6 * float64(rank%3),
			ATHDate:           time.Now().AddDate(0, -(i % 24), 0),
		}
	}

	return coins
}
