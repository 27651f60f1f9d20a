package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/geckoctl/market"
)

var (
	showDefi    bool
	snapshotTop int
)

// globalCmd represents the global command
var globalCmd = &cobra.Command{
	Use:   "global",
	Short: "Show global cryptocurrency market statistics",
	RunE:  runGlobal,
}

// trendingCmd represents the trending command
var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show the coins trending in CoinGecko searches",
	RunE:  runTrending,
}

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Fetch global stats, top coins and trending coins concurrently",
	Long: `Fetch global statistics, the top coins by market cap and the trending list in
parallel. A section that fails is reported and the others are still shown.`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(globalCmd)
	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(snapshotCmd)

	globalCmd.Flags().BoolVar(&showDefi, "defi", false, "show decentralized finance statistics instead")
	globalCmd.Flags().StringVar(&vsCurrency, "vs", "", "quote currency (default from markets.vs_currency)")

	snapshotCmd.Flags().IntVar(&snapshotTop, "top", market.DefaultSnapshotTop, "number of top coins to include")
	snapshotCmd.Flags().StringVar(&vsCurrency, "vs", "", "quote currency (default from markets.vs_currency)")
	snapshotCmd.Flags().BoolVar(&showDetails, "details", false, "show supply and all-time-high details")
}

func runGlobal(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if showDefi {
		defi, err := operations.Defi(ctx)
		if err != nil {
			return err
		}
		if jsonOutput() {
			return printJSON(cmd.OutOrStdout(), defi)
		}
		fmt.Fprint(cmd.OutOrStdout(), operations.Formatter().FormatFields("DeFi Market", defi))
		return nil
	}

	global, err := operations.Global(ctx)
	if err != nil {
		return err
	}

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), global)
	}

	fmt.Fprint(cmd.OutOrStdout(), operations.Formatter().FormatGlobal(global, currency()))
	return nil
}

func runTrending(cmd *cobra.Command, args []string) error {
	coins, err := operations.Trending(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), coins)
	}

	if len(coins) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No trending coins right now.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), operations.Formatter().FormatTrending(coins))
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if snapshotTop < 1 || snapshotTop > market.MaxPerPage {
		return fmt.Errorf("--top must be between 1 and %d", market.MaxPerPage)
	}

	opts := market.SnapshotOptions{
		VsCurrency: currency(),
		Top:        snapshotTop,
	}

	snapshot, err := operations.Snapshot(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), snapshotJSON(snapshot))
	}

	fmt.Fprint(cmd.OutOrStdout(), operations.Formatter().FormatSnapshot(snapshot, market.FormatOptions{
		VsCurrency:  opts.VsCurrency,
		ShowDetails: showDetails,
	}))
	return nil
}

// snapshotJSON flattens failures to strings; error values encode as {}
func snapshotJSON(s *market.Snapshot) map[string]any {
	failed := make([]string, 0, len(s.Failed))
	for _, f := range s.Failed {
		failed = append(failed, f.Error())
	}
	return map[string]any{
		"global":   s.Global,
		"top":      s.Top,
		"trending": s.Trending,
		"failed":   failed,
	}
}
