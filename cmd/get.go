package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/geckoctl/coingecko"
)

var (
	queryParams   []string
	endpointGroup string
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <endpoint> [args...]",
	Short: "Call any CoinGecko endpoint and print the raw JSON response",
	Long: `Call an endpoint from the catalog by name (see 'geckoctl endpoints') or by its
client method name. Positional arguments fill the path, and extra query parameters
are passed with -p key=value.

Examples:
  geckoctl get coin-market-chart bitcoin usd 30 -p interval=daily
  geckoctl get coin-ohlc-range bitcoin usd 1700000000 1700600000 daily
  geckoctl get GetExchangesTickersByID binance -p include_exchange_logo=true`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

// endpointsCmd represents the endpoints command
var endpointsCmd = &cobra.Command{
	Use:   "endpoints",
	Short: "List the endpoints callable with 'get'",
	RunE:  runEndpoints,
}

func init() {
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(endpointsCmd)

	getCmd.Flags().StringArrayVarP(&queryParams, "param", "p", nil, "query parameter as key=value (repeatable)")
	endpointsCmd.Flags().StringVar(&endpointGroup, "group", "", "only list endpoints of this group")
}

func runGet(cmd *cobra.Command, args []string) error {
	e, ok := lookupEndpoint(args[0])
	if !ok {
		return fmt.Errorf("unknown endpoint '%s' (see 'geckoctl endpoints')", args[0])
	}

	params, err := parseParams(queryParams)
	if err != nil {
		return err
	}

	logger.Debug().
		Str("endpoint", e.Name).
		Strs("args", args[1:]).
		Str("params", params.Encode()).
		Msg("Calling endpoint")

	result, err := e.Invoke(cmd.Context(), client, args[1:], params)
	if err != nil {
		return err
	}

	return printJSON(cmd.OutOrStdout(), result)
}

// parseParams turns key=value pairs into query parameters. A repeated key
// keeps its first position and takes the last value.
func parseParams(pairs []string) (*coingecko.Params, error) {
	params := coingecko.NewParams()
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid parameter %q: expected key=value", pair)
		}
		params.Set(key, value)
	}
	return params, nil
}

func runEndpoints(cmd *cobra.Command, args []string) error {
	groups := catalogGroups()
	if endpointGroup != "" {
		found := false
		for _, g := range groups {
			if g == endpointGroup {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("unknown group '%s' (groups: %s)", endpointGroup, strings.Join(groups, ", "))
		}
		groups = []string{endpointGroup}
	}

	if jsonOutput() {
		var out []map[string]any
		for _, e := range catalog {
			if endpointGroup != "" && e.Group != endpointGroup {
				continue
			}
			out = append(out, map[string]any{
				"name":   e.Name,
				"group":  e.Group,
				"method": e.Method,
				"args":   e.Args,
			})
		}
		return printJSON(cmd.OutOrStdout(), out)
	}

	for i, group := range groups {
		if i > 0 {
			fmt.Fprintln(cmd.OutOrStdout())
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s:\n", group)
		for _, e := range catalog {
			if e.Group != group {
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %-60s %s\n", e.Usage(), e.Method)
		}
	}

	return nil
}
