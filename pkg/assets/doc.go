// Package assets runs a fungible asset lifecycle on Hedera: generate key
// pairs, fund them into ledger accounts, create a token, opt an account in,
// transfer units and freeze the holding.
//
// Every submission is confirmed with the confirm package before the next
// step starts, so each operation either returns a confirmed OperationResult
// or an OperationError that unwraps to the confirm error (rejected, timed
// out, cancelled or failed).
//
// # Build Transactions
//
// The Build* functions are pure and can be used without a client:
//
//	tx, err := assets.BuildAssetCreateTx(assets.AssetCreateTxParams{
//		Name:              "Death",
//		UnitName:          "DIE",
//		Total:             1000,
//		TreasuryAccountID: creatorID,
//		ManagerKey:        creatorKey.PublicKey(),
//		FreezeKey:         creatorKey.PublicKey(),
//	})
//
// # Client Usage
//
// The funder pays for account creation; every later step is paid and signed
// by the account acting in it:
//
//	client, err := assets.NewClient(assets.ClientConfig{
//		FunderAccountID: "0.0.1234",
//		FunderMnemonic:  "<24 words>",
//		Network:         "testnet",
//	})
//
//	report, err := client.RunLifecycle(context.Background(), assets.LifecycleOptions{})
package assets
