// Package mirror is a small client for the Hedera mirror node REST API. It
// covers what the asset workflow needs: record blocks (used as confirmation
// rounds), transaction lookups by ID, token metadata and per-account token
// relationships (balance and freeze status).
//
//	client, err := mirror.NewClient(mirror.Config{Network: "testnet"})
//	block, err := client.GetLatestBlock(ctx)
//	tx, err := client.GetTransaction(ctx, "0.0.1234@1700000000.000000001")
//
// Non-2xx responses are returned as *StatusError; IsNotFound distinguishes a
// transaction the mirror node has not ingested yet from a failed request.
package mirror
