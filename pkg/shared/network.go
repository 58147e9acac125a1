package shared

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

const (
	NetworkMainnet    = "mainnet"
	NetworkTestnet    = "testnet"
	NetworkPreviewnet = "previewnet"
	NetworkLocal      = "local"
)

// LocalConsensusAddress is the gRPC endpoint of node 0.0.3 on a local node.
const LocalConsensusAddress = "127.0.0.1:50211"

// NormalizeNetwork lower-cases and validates a network name, defaulting to testnet.
func NormalizeNetwork(network string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkTestnet, nil
	}

	switch normalized {
	case NetworkMainnet, NetworkTestnet, NetworkPreviewnet, NetworkLocal:
		return normalized, nil
	case "localhost", "local-node":
		return NetworkLocal, nil
	default:
		return "", fmt.Errorf("unsupported network %q", network)
	}
}

// NewHederaClient creates a Hedera client for the named network.
func NewHederaClient(network string) (*hedera.Client, error) {
	normalized, err := NormalizeNetwork(network)
	if err != nil {
		return nil, err
	}

	switch normalized {
	case NetworkMainnet:
		return hedera.ClientForMainnet(), nil
	case NetworkPreviewnet:
		return hedera.ClientForPreviewnet(), nil
	case NetworkLocal:
		return hedera.ClientForNetwork(map[string]hedera.AccountID{
			LocalConsensusAddress: {Account: 3},
		}), nil
	}

	return hedera.ClientForTestnet(), nil
}
