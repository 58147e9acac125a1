package shared

import (
	"fmt"
	"strconv"
	"strings"
)

// FunderConfig describes the account that pays for and funds generated accounts.
type FunderConfig struct {
	AccountID     string
	Mnemonic      string
	PrivateKey    string
	Network       string
	MirrorBaseURL string
	MirrorAPIKey  string
	MaxRounds     int
}

// FunderConfigFromEnv loads the funder for HEDERA_NETWORK (testnet when unset).
func FunderConfigFromEnv() (FunderConfig, error) {
	return FunderConfigFromEnvForNetwork("")
}

// FunderConfigFromEnvForNetwork loads the funder from MNEMONIC plus an account
// ID, falling back to the operator account and private key when no funder
// value is set. A non-empty network overrides HEDERA_NETWORK and selects the
// prefix of scoped variables such as MAINNET_MNEMONIC, which take precedence
// over unscoped ones.
func FunderConfigFromEnvForNetwork(network string) (FunderConfig, error) {
	loadDotEnvIfPresent()

	normalizedNetwork, err := resolveNetwork(strings.TrimSpace(network))
	if err != nil {
		return FunderConfig{}, err
	}

	operator := operatorConfigForNetwork(normalizedNetwork)
	accountID := scopedEnv(normalizedNetwork, "FUNDER_ACCOUNT_ID")
	if accountID == "" {
		accountID = operator.AccountID
	}
	mnemonic := scopedEnv(normalizedNetwork, "MNEMONIC", "FUNDER_MNEMONIC")
	privateKey := scopedEnv(normalizedNetwork, "FUNDER_PRIVATE_KEY")
	if privateKey == "" {
		privateKey = operator.PrivateKey
	}

	if accountID == "" {
		return FunderConfig{}, fmt.Errorf("FUNDER_ACCOUNT_ID is required")
	}
	if mnemonic == "" && privateKey == "" {
		return FunderConfig{}, fmt.Errorf("MNEMONIC or FUNDER_PRIVATE_KEY is required")
	}

	maxRounds := 0
	if rawRounds := firstNonEmptyEnv("CONFIRM_MAX_ROUNDS"); rawRounds != "" {
		parsed, err := strconv.Atoi(rawRounds)
		if err != nil || parsed < 0 {
			return FunderConfig{}, fmt.Errorf("invalid CONFIRM_MAX_ROUNDS %q", rawRounds)
		}
		maxRounds = parsed
	}

	return FunderConfig{
		AccountID:     accountID,
		Mnemonic:      mnemonic,
		PrivateKey:    privateKey,
		Network:       normalizedNetwork,
		MirrorBaseURL: firstNonEmptyEnv("MIRROR_BASE_URL", "HEDERA_MIRROR_URL"),
		MirrorAPIKey:  firstNonEmptyEnv("MIRROR_API_KEY"),
		MaxRounds:     maxRounds,
	}, nil
}

// HasMnemonic reports whether the funder key is derived from a recovery phrase.
func (config FunderConfig) HasMnemonic() bool {
	return strings.TrimSpace(config.Mnemonic) != ""
}
