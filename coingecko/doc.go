// Package coingecko provides a client for the CoinGecko market-data API.
//
// Every upstream REST endpoint is exposed as a method on Client. Methods take
// their required identifiers as arguments and an optional *Params bag for the
// remaining query parameters, and return the decoded JSON document.
//
// # Usage
//
//	logger := zerolog.New(os.Stderr)
//	client, err := coingecko.NewClient(logger,
//		coingecko.WithAPIKeyFromEnv(),
//		coingecko.WithTimeout(30*time.Second),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	prices, err := client.GetPrice(ctx, "bitcoin, ethereum", "usd",
//		coingecko.NewParams().Set("include_24hr_change", true))
//
// # API keys
//
// The key is resolved once, in NewClient: WithAPIKey wins when non-empty,
// otherwise COINGECKO_API_KEY is read if WithAPIKeyFromEnv was given. A client
// with a key talks to the pro host and sends the key as the x_cg_pro_api_key
// query parameter on every request.
//
// # Query values
//
// Query values are written into the URL as-is, without percent-encoding.
// Callers must not pass values containing reserved URL characters.
//
// # Errors
//
// Failures are reported as *NetworkError (transport failures and non-JSON
// error responses) or *APIError (JSON error bodies and malformed success
// bodies):
//
//	var apiErr *coingecko.APIError
//	if errors.As(err, &apiErr) && apiErr.IsNotFound() {
//		// unknown coin id
//	}
package coingecko
