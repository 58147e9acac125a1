package shared

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/tyler-smith/go-bip39"
)

// NormalizeMnemonic collapses whitespace and lower-cases a recovery phrase.
func NormalizeMnemonic(phrase string) string {
	return strings.ToLower(strings.Join(strings.Fields(phrase), " "))
}

// PrivateKeyFromMnemonic derives the ED25519 key at index from a BIP-39 phrase
// using the standard Hedera derivation path.
func PrivateKeyFromMnemonic(phrase string, passphrase string, index uint32) (hedera.PrivateKey, error) {
	normalized := NormalizeMnemonic(phrase)
	if normalized == "" {
		return hedera.PrivateKey{}, fmt.Errorf("mnemonic cannot be empty")
	}
	if !bip39.IsMnemonicValid(normalized) {
		return hedera.PrivateKey{}, fmt.Errorf(
			"mnemonic is not a valid BIP-39 phrase (%d words)",
			len(strings.Fields(normalized)),
		)
	}

	mnemonic, err := hedera.MnemonicFromString(normalized)
	if err != nil {
		return hedera.PrivateKey{}, fmt.Errorf("failed to parse mnemonic: %w", err)
	}

	privateKey, err := mnemonic.ToStandardEd25519PrivateKey(passphrase, index)
	if err != nil {
		return hedera.PrivateKey{}, fmt.Errorf("failed to derive private key from mnemonic: %w", err)
	}

	return privateKey, nil
}
