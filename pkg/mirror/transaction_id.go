package mirror

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	sdkTransactionIDPattern    = regexp.MustCompile(`^(\d+\.\d+\.\d+)@(\d+)\.(\d+)$`)
	mirrorTransactionIDPattern = regexp.MustCompile(`^(\d+\.\d+\.\d+)-(\d+)-(\d+)$`)
)

// NormalizeTransactionID converts 0.0.1234@1700000000.5 (SDK form, optionally
// suffixed with ?scheduled or /nonce) into 0.0.1234-1700000000-000000005.
func NormalizeTransactionID(transactionID string) (string, error) {
	trimmed := strings.TrimSpace(transactionID)
	if trimmed == "" {
		return "", fmt.Errorf("transaction ID is required")
	}

	candidate := trimmed
	if index := strings.IndexAny(candidate, "?/"); index >= 0 {
		candidate = candidate[:index]
	}

	match := sdkTransactionIDPattern.FindStringSubmatch(candidate)
	if match == nil {
		match = mirrorTransactionIDPattern.FindStringSubmatch(candidate)
	}
	if match == nil {
		return "", fmt.Errorf("invalid transaction ID %q", transactionID)
	}

	nanos, err := strconv.ParseUint(match[3], 10, 64)
	if err != nil || nanos >= 1_000_000_000 {
		return "", fmt.Errorf("invalid transaction ID %q: bad valid-start nanos", transactionID)
	}

	return fmt.Sprintf("%s-%s-%09d", match[1], match[2], nanos), nil
}
