package shared

import (
	"fmt"
)

// OperatorConfig is a generic Hedera operator read from the HEDERA_* variables.
type OperatorConfig struct {
	AccountID  string
	PrivateKey string
	Network    string
}

// OperatorConfigFromEnv loads the operator for HEDERA_NETWORK (testnet when
// unset). Network-prefixed variables such as MAINNET_HEDERA_ACCOUNT_ID take
// precedence over unscoped ones.
func OperatorConfigFromEnv() (OperatorConfig, error) {
	loadDotEnvIfPresent()

	network, err := resolveNetwork("")
	if err != nil {
		return OperatorConfig{}, err
	}

	config := operatorConfigForNetwork(network)
	if config.AccountID == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_ACCOUNT_ID is required")
	}
	if config.PrivateKey == "" {
		return OperatorConfig{}, fmt.Errorf("HEDERA_PRIVATE_KEY is required")
	}
	return config, nil
}

// operatorConfigForNetwork reads the operator variables scoped to a
// normalized network without requiring any of them.
func operatorConfigForNetwork(network string) OperatorConfig {
	return OperatorConfig{
		AccountID: scopedEnv(
			network,
			"HEDERA_ACCOUNT_ID",
			"HEDERA_OPERATOR_ID",
			"ACCOUNT_ID",
			"OPERATOR_ID",
		),
		PrivateKey: scopedEnv(
			network,
			"HEDERA_PRIVATE_KEY",
			"HEDERA_OPERATOR_KEY",
			"PRIVATE_KEY",
			"OPERATOR_KEY",
		),
		Network: network,
	}
}

// resolveNetwork normalizes override, falling back to HEDERA_NETWORK or
// NETWORK and then testnet.
func resolveNetwork(override string) (string, error) {
	network := override
	if network == "" {
		network = firstNonEmptyEnv("HEDERA_NETWORK", "NETWORK")
	}
	return NormalizeNetwork(network)
}
