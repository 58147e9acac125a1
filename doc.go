// Package hts_asset_demo_go runs a fungible asset lifecycle on the Hedera
// Token Service and waits for every step to be confirmed.
//
// # Packages
//
//   - pkg/confirm: bounded, round-based transaction confirmation
//   - pkg/mirror: mirror node REST client (blocks, transactions, tokens)
//   - pkg/assets: transaction builders and the lifecycle client
//   - pkg/shared: network, key, mnemonic and funder configuration
//
// # Running the Demo
//
//	FUNDER_ACCOUNT_ID=0.0.1234 MNEMONIC="..." go run ./cmd/asset-demo --network testnet
//
// # Installation
//
//	go get github.com/hashgraph-online/hts-asset-demo-go@latest
package hts_asset_demo_go
