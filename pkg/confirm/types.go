package confirm

import "context"

// DefaultMaxRounds is the round budget used when a caller passes zero.
const DefaultMaxRounds = 10

// State is the disposition of a confirmation wait.
type State int

const (
	StatePending State = iota
	StateConfirmed
	StateRejected
	StateTimedOut
	StateCancelled
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateConfirmed:
		return "confirmed"
	case StateRejected:
		return "rejected"
	case StateTimedOut:
		return "timed-out"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether no further transition can leave s.
func (s State) IsTerminal() bool {
	return s != StatePending
}

// NodeStatus is the node's view of the ledger head.
type NodeStatus struct {
	LastRound uint64
}

// PendingStatus describes a transaction's current disposition on the node.
// A positive ConfirmedRound means confirmed; a non-empty PoolError means
// rejected; anything else is still pending.
type PendingStatus struct {
	ConfirmedRound     uint64
	PoolError          string
	Result             string
	EntityID           string
	ConsensusTimestamp string
}

func (p PendingStatus) Confirmed() bool {
	return p.ConfirmedRound > 0
}

func (p PendingStatus) Rejected() bool {
	return !p.Confirmed() && p.PoolError != ""
}

// Node is the ledger collaborator the waiter polls.
type Node interface {
	Status(ctx context.Context) (NodeStatus, error)
	PendingTransactionInfo(ctx context.Context, transactionID string) (PendingStatus, error)
	// WaitForRound blocks until round (or a later one) has closed.
	WaitForRound(ctx context.Context, round uint64) (NodeStatus, error)
}

// Result describes where a wait ended. It is returned alongside errors too,
// so RoundsWaited and Info stay available on failure.
type Result struct {
	TransactionID  string
	State          State
	ConfirmedRound uint64
	RoundsWaited   int
	Info           PendingStatus
}
