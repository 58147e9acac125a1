package confirm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Waiter waits for transactions on a single node with a fixed round budget.
// It is safe for concurrent use; each call keeps its own loop state.
type Waiter struct {
	node      Node
	maxRounds int
}

// NewWaiter binds a node and round budget. maxRounds <= 0 uses DefaultMaxRounds.
func NewWaiter(node Node, maxRounds int) (*Waiter, error) {
	if node == nil {
		return nil, fmt.Errorf("node is required")
	}
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}
	return &Waiter{node: node, maxRounds: maxRounds}, nil
}

// MaxRounds returns the round budget applied to each wait.
func (w *Waiter) MaxRounds() int {
	return w.maxRounds
}

// Node returns the node the waiter polls.
func (w *Waiter) Node() Node {
	return w.node
}

// WaitForConfirmation waits using the waiter's node and round budget.
func (w *Waiter) WaitForConfirmation(ctx context.Context, transactionID string) (Result, error) {
	return WaitForConfirmation(ctx, w.node, transactionID, w.maxRounds)
}

// WaitForConfirmation polls node until transactionID is confirmed, rejected,
// or maxRounds round-waits have elapsed without either.
//
// The starting round is the node's last round. Every pending poll is followed
// by exactly one WaitForRound for the next round, so a transaction reported
// pending k times and then confirmed costs k round-waits, and one still
// pending after maxRounds waits yields a TimeoutError. Query failures are
// returned as NetworkError without retrying; a done ctx yields CancelledError.
func WaitForConfirmation(
	ctx context.Context,
	node Node,
	transactionID string,
	maxRounds int,
) (Result, error) {
	id := strings.TrimSpace(transactionID)
	if id == "" {
		return Result{}, fmt.Errorf("transaction ID is required")
	}
	if node == nil {
		return Result{}, fmt.Errorf("node is required")
	}
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	result := Result{TransactionID: id, State: StatePending}

	if err := ctx.Err(); err != nil {
		return cancel(result, err)
	}
	status, err := node.Status(ctx)
	if err != nil {
		return fail(ctx, result, "status", err)
	}
	round := status.LastRound

	for {
		if err := ctx.Err(); err != nil {
			return cancel(result, err)
		}

		info, err := node.PendingTransactionInfo(ctx, id)
		if err != nil {
			return fail(ctx, result, "pending transaction info", err)
		}
		result.Info = info

		if info.Confirmed() {
			result.State = StateConfirmed
			result.ConfirmedRound = info.ConfirmedRound
			return result, nil
		}
		if info.Rejected() {
			result.State = StateRejected
			return result, newRejectedTransactionError(id, info.PoolError)
		}
		if result.RoundsWaited >= maxRounds {
			result.State = StateTimedOut
			return result, newTimeoutError(id, maxRounds, round)
		}

		if err := ctx.Err(); err != nil {
			return cancel(result, err)
		}
		round++
		if _, err := node.WaitForRound(ctx, round); err != nil {
			return fail(ctx, result, fmt.Sprintf("wait for round %d", round), err)
		}
		result.RoundsWaited++
	}
}

func cancel(result Result, err error) (Result, error) {
	result.State = StateCancelled
	return result, newCancelledError(result.TransactionID, err)
}

func fail(ctx context.Context, result Result, operation string, err error) (Result, error) {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return cancel(result, err)
	}
	result.State = StateFailed
	return result, newNetworkError(result.TransactionID, operation, err)
}
