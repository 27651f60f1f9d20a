package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/geckoctl/coingecko"
	"github.com/s0up4200/geckoctl/config"
	"github.com/s0up4200/geckoctl/market"
)

var (
	cfgFile    string
	cfg        *config.Config
	logger     zerolog.Logger
	client     *coingecko.Client
	operations *market.Operations

	// Command flags
	apiKey       string
	outputFormat string
	verbose      bool
	vsCurrency   string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "geckoctl",
	Short: "Query CoinGecko market data from the command line",
	Long: `geckoctl is a CLI for the CoinGecko API. It lists and filters coin markets,
looks up prices and global statistics, builds concurrent market snapshots and can
call any endpoint of the API directly.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "CoinGecko pro API key (overrides config and COINGECKO_API_KEY)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "output format (table|json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(pingCmd)
	rootCmd.AddCommand(priceCmd)
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	if outputFormat != "table" && outputFormat != "json" {
		return fmt.Errorf("invalid output format: %s (must be 'table' or 'json')", outputFormat)
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if verbose {
		cfg.Logging.Level = "debug"
	}

	// Setup logger
	logger = setupLogger(cfg.Logging, os.Stderr)

	// Override API key from command line if specified
	if cmd.Flags().Changed("api-key") {
		cfg.CoinGecko.APIKey = apiKey
	}

	opts := append(cfg.CoinGecko.ClientOptions(), coingecko.WithAPIKeyFromEnv())
	client, err = coingecko.NewClient(logger, opts...)
	if err != nil {
		return fmt.Errorf("failed to create CoinGecko client: %w", err)
	}

	logger.Debug().
		Str("base_url", client.BaseURL()).
		Bool("pro", client.HasAPIKey()).
		Msg("CoinGecko client ready")

	operations = market.NewOperations(client, logger)

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig, out *os.File) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	// Console format; colour only makes sense on a terminal
	colored := cfg.Color && (isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd()))
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !colored,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// currency returns the --vs flag value or the configured default
func currency() string {
	if vsCurrency != "" {
		return strings.ToLower(vsCurrency)
	}
	return cfg.Markets.VsCurrency
}

func jsonOutput() bool {
	return outputFormat == "json"
}

// printJSON writes v as indented JSON
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// pingCmd represents the ping command
var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check the CoinGecko API status",
	RunE:  runPing,
}

func runPing(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Pinging CoinGecko at %s...\n", client.BaseURL())

	says, err := operations.Ping(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s\n", says)
	if client.HasAPIKey() {
		fmt.Fprintln(cmd.OutOrStdout(), "- API key: configured (pro API)")
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), "- API key: not configured (public API)")
	}
	policy := client.RetryPolicy()
	fmt.Fprintf(cmd.OutOrStdout(), "- Retries: %d (backoff %s, statuses %v)\n", policy.MaxRetries, policy.BackoffFactor, policy.StatusCodes)

	return nil
}

// priceCmd represents the price command
var priceCmd = &cobra.Command{
	Use:   "price <coin-id>...",
	Short: "Show current prices for one or more coins",
	Long: `Show the current price of the given coin IDs (for example bitcoin ethereum)
in one or more quote currencies.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPrice,
}

var priceVs []string

func init() {
	priceCmd.Flags().StringSliceVar(&priceVs, "vs", nil, "quote currencies (default from markets.vs_currency)")
}

func runPrice(cmd *cobra.Command, args []string) error {
	vs := priceVs
	if len(vs) == 0 {
		vs = []string{cfg.Markets.VsCurrency}
	}

	prices, err := operations.Prices(cmd.Context(), args, vs)
	if err != nil {
		return err
	}

	if jsonOutput() {
		return printJSON(cmd.OutOrStdout(), prices)
	}

	if len(prices) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No prices found for the given coins.")
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), operations.Formatter().FormatPrices(prices))
	return nil
}
