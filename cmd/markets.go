package cmd

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/geckoctl/filter"
	"github.com/s0up4200/geckoctl/market"
)

var (
	filterExpr  string
	preset      string
	perPage     int
	pages       int
	order       string
	category    string
	coinIDs     []string
	showDetails bool
	countOnly   bool
)

// marketsCmd represents the markets command
var marketsCmd = &cobra.Command{
	Use:   "markets",
	Short: "List coin markets matching the filter criteria",
	Long: `List coins from the CoinGecko markets endpoint, optionally narrowed by a filter
expression or a preset from the config.

Filter expressions see the coin fields ID, Symbol, Name, Rank, Price, MarketCap,
Volume, High24h, Low24h, Change24h, CirculatingSupply, TotalSupply, MaxSupply, ATH,
ATHChange, ATHDate and LastUpdated, and the helpers symbolIs(...), supplyRatio(),
rangePosition(), volumeRatio(), daysSince(t), daysAgo(n), monthsAgo(n), yearsAgo(n)
and parseDate("2006-01-02").

Examples:
  geckoctl markets -f 'Rank <= 20 and Change24h > 5'
  geckoctl markets -f 'abs(Change24h) > 10' --pages 4
  geckoctl markets --preset bluechips --details`,
	RunE: runMarkets,
}

func init() {
	rootCmd.AddCommand(marketsCmd)
	rootCmd.AddCommand(presetsCmd)

	marketsCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression")
	marketsCmd.Flags().StringVarP(&preset, "preset", "p", "", "use a preset filter from config")
	marketsCmd.Flags().StringVar(&vsCurrency, "vs", "", "quote currency (default from markets.vs_currency)")
	marketsCmd.Flags().IntVar(&perPage, "per-page", 0, "coins per page, at most 250 (default from markets.per_page)")
	marketsCmd.Flags().IntVar(&pages, "pages", 1, "number of pages to fetch concurrently")
	marketsCmd.Flags().StringVar(&order, "order", "", "sort order, e.g. market_cap_desc or volume_desc")
	marketsCmd.Flags().StringVar(&category, "category", "", "only coins of this category")
	marketsCmd.Flags().StringSliceVar(&coinIDs, "ids", nil, "only these coin IDs")
	marketsCmd.Flags().BoolVar(&showDetails, "details", false, "show supply and all-time-high details")

	presetsCmd.Flags().BoolVar(&countOnly, "count", false, "count matches of every preset against the current markets")
	presetsCmd.Flags().StringVar(&vsCurrency, "vs", "", "quote currency (default from markets.vs_currency)")
}

func runMarkets(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if pages < 1 {
		return fmt.Errorf("--pages must be at least 1")
	}

	// Determine filter expression
	expr, presetName, err := getFilterExpression()
	if err != nil {
		return err
	}

	opts := listOptions()
	logger.Info().
		Str("filter", expr).
		Str("vs_currency", opts.VsCurrency).
		Int("pages", pages).
		Msg("Searching markets")

	var coins []market.CoinInfo
	if presetName != "" {
		coins, err = evaluatePreset(ctx, presetName, opts)
	} else {
		coins, err = searchMarkets(ctx, expr, opts)
	}
	if err != nil {
		return err
	}

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), coins)
	}

	// Display results
	if len(coins) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No coins found matching the filter criteria.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), operations.Formatter().FormatCoinList(coins, market.FormatOptions{
		VsCurrency:  opts.VsCurrency,
		ShowDetails: showDetails,
	}))
	return nil
}

func listOptions() market.ListOptions {
	size := perPage
	if size <= 0 {
		size = cfg.Markets.PerPage
	}
	return market.ListOptions{
		VsCurrency: currency(),
		PerPage:    size,
		Order:      order,
		Category:   category,
		IDs:        coinIDs,
	}
}

// searchMarkets applies an ad-hoc expression. A single page goes through
// the filtered search; several pages are fetched concurrently first.
func searchMarkets(ctx context.Context, expr string, opts market.ListOptions) ([]market.CoinInfo, error) {
	filterFunc, err := filter.ParseAndCreateFilter(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	if pages == 1 {
		opts.Page = 1
		return operations.SearchMarkets(ctx, opts, filterFunc)
	}

	coins, err := operations.ListMarketsPages(ctx, opts, pages)
	if err != nil {
		return nil, err
	}
	return market.FilterCoins(coins, filterFunc), nil
}

// evaluatePreset runs a configured preset through a filter manager holding
// every preset, so a broken preset is reported even when another is used.
func evaluatePreset(ctx context.Context, name string, opts market.ListOptions) ([]market.CoinInfo, error) {
	manager, err := presetManager()
	if err != nil {
		return nil, err
	}
	defer manager.Close(context.Background())

	coins, err := operations.ListMarketsPages(ctx, opts, pages)
	if err != nil {
		return nil, err
	}

	return manager.EvaluateFilter(ctx, name, coins)
}

func presetManager() (*filter.Manager, error) {
	manager := filter.NewManager()
	if err := manager.RegisterFilters(cfg.Markets.Presets); err != nil {
		manager.Close(context.Background())
		return nil, fmt.Errorf("invalid preset in config: %w", err)
	}
	return manager, nil
}

// getFilterExpression determines the filter expression to use.
// Priority: command line filter > preset > default. No filter at all
// matches every coin.
func getFilterExpression() (expr string, presetName string, err error) {
	if filterExpr != "" {
		return filterExpr, "", nil
	}

	if preset != "" {
		presetFilter, ok := cfg.Markets.Presets[preset]
		if !ok {
			return "", "", fmt.Errorf("preset '%s' not found in config", preset)
		}
		return presetFilter, preset, nil
	}

	return cfg.Markets.DefaultFilter, "", nil
}

// presetsCmd represents the presets command
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the filter presets from the config",
	RunE:  runPresets,
}

func runPresets(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	manager, err := presetManager()
	if err != nil {
		return err
	}
	defer manager.Close(context.Background())

	names := manager.ListFilters()
	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No presets configured.")
		return nil
	}

	counts := make(map[string]int, len(names))
	if countOnly {
		opts := listOptions()
		opts.Page = 1
		coins, err := operations.ListMarkets(ctx, opts)
		if err != nil {
			return err
		}

		results, err := manager.EvaluateAll(ctx, coins)
		if err != nil {
			return err
		}
		for name, matches := range results {
			counts[name] = len(matches)
		}
	}

	if jsonOutput() {
		out := make([]map[string]any, 0, len(names))
		for _, name := range names {
			entry := map[string]any{"name": name, "expression": cfg.Markets.Presets[name]}
			if countOnly {
				entry["matches"] = counts[name]
			}
			out = append(out, entry)
		}
		return printJSON(cmd.OutOrStdout(), out)
	}

	width := len(slices.MaxFunc(names, func(a, b string) int { return len(a) - len(b) }))
	fmt.Fprintf(cmd.OutOrStdout(), "Presets (%d):\n", len(names))
	fmt.Fprintln(cmd.OutOrStdout(), strings.Repeat("-", 80))
	for _, name := range names {
		fmt.Fprintf(cmd.OutOrStdout(), "• %-*s  %s", width, name, cfg.Markets.Presets[name])
		if countOnly {
			fmt.Fprintf(cmd.OutOrStdout(), "  [%d matches]", counts[name])
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}

	return nil
}
