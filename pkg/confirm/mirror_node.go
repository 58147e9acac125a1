package confirm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/hashgraph-online/hts-asset-demo-go/pkg/mirror"
)

const (
	DefaultPollInterval     = time.Second
	DefaultMaxPollsPerRound = 30
)

var errRoundNotClosed = errors.New("round not closed yet")

type MirrorNodeConfig struct {
	// PollInterval is the delay between latest-block queries in WaitForRound.
	PollInterval time.Duration
	// MaxPollsPerRound is the number of latest-block queries a single
	// WaitForRound call makes before giving up.
	MaxPollsPerRound int
}

// MirrorNode implements Node on the mirror node REST API, treating record
// blocks as rounds.
type MirrorNode struct {
	client       *mirror.Client
	pollInterval time.Duration
	maxPolls     int
}

var _ Node = (*MirrorNode)(nil)

// NewMirrorNode wraps client as a Node, applying defaults for zero config values.
func NewMirrorNode(client *mirror.Client, config MirrorNodeConfig) (*MirrorNode, error) {
	if client == nil {
		return nil, fmt.Errorf("mirror client is required")
	}

	pollInterval := config.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	maxPolls := config.MaxPollsPerRound
	if maxPolls <= 0 {
		maxPolls = DefaultMaxPollsPerRound
	}

	return &MirrorNode{
		client:       client,
		pollInterval: pollInterval,
		maxPolls:     maxPolls,
	}, nil
}

// Status reports the latest ingested block number as the last round.
func (n *MirrorNode) Status(ctx context.Context) (NodeStatus, error) {
	block, err := n.client.GetLatestBlock(ctx)
	if err != nil {
		return NodeStatus{}, err
	}
	return NodeStatus{LastRound: block.Number}, nil
}

// PendingTransactionInfo reports a transaction as pending until the mirror
// node has both its record and the block that contains it.
func (n *MirrorNode) PendingTransactionInfo(ctx context.Context, transactionID string) (PendingStatus, error) {
	transaction, err := n.client.GetTransaction(ctx, transactionID)
	if err != nil {
		return PendingStatus{}, err
	}
	if transaction == nil || transaction.Result == "" {
		return PendingStatus{}, nil
	}

	status := PendingStatus{
		Result:             transaction.Result,
		EntityID:           transaction.Entity(),
		ConsensusTimestamp: transaction.ConsensusTimestamp,
	}
	if !transaction.Succeeded() {
		status.PoolError = transaction.Result
		return status, nil
	}

	block, err := n.client.GetBlockAtOrAfter(ctx, transaction.ConsensusTimestamp)
	if err != nil {
		return PendingStatus{}, err
	}
	if block != nil {
		status.ConfirmedRound = block.Number
	}

	return status, nil
}

// WaitForRound polls the latest block until it reaches round. Mirror errors
// end the wait immediately.
func (n *MirrorNode) WaitForRound(ctx context.Context, round uint64) (NodeStatus, error) {
	var status NodeStatus

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(n.pollInterval), uint64(n.maxPolls-1)),
		ctx,
	)
	err := backoff.Retry(func() error {
		block, err := n.client.GetLatestBlock(ctx)
		if err != nil {
			return backoff.Permanent(err)
		}
		status.LastRound = block.Number
		if block.Number < round {
			return errRoundNotClosed
		}
		return nil
	}, policy)
	if err != nil {
		if errors.Is(err, errRoundNotClosed) {
			return status, fmt.Errorf(
				"round %d not closed after %d polls (last round %d)",
				round,
				n.maxPolls,
				status.LastRound,
			)
		}
		return status, err
	}

	return status, nil
}
