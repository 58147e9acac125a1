// Package shared holds the pieces every other package needs: network name
// normalisation, Hedera client construction, funder configuration loaded from
// the environment or a .env file, private key parsing, and BIP-39 mnemonic
// derivation.
//
// # Environment Variables
//
//   - HEDERA_NETWORK: mainnet, testnet (default), previewnet or local
//   - FUNDER_ACCOUNT_ID: account that pays for and funds generated accounts
//     (falls back to HEDERA_ACCOUNT_ID / OPERATOR_ID)
//   - MNEMONIC: 12 or 24 word BIP-39 phrase for the funder key
//   - FUNDER_PRIVATE_KEY: used when MNEMONIC is unset
//     (falls back to HEDERA_PRIVATE_KEY / OPERATOR_KEY)
//   - MIRROR_BASE_URL, MIRROR_API_KEY: mirror node REST overrides
//   - CONFIRM_MAX_ROUNDS: round budget for confirmation waits
//
// Any of the funder variables may be prefixed with the upper-cased network
// name (TESTNET_MNEMONIC, LOCAL_FUNDER_ACCOUNT_ID, ...) to scope it.
// FunderConfigFromEnvForNetwork picks that prefix from an explicit network
// instead of HEDERA_NETWORK.
package shared
