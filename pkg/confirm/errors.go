package confirm

import (
	"errors"
	"fmt"
)

// ConfirmationError is the base of every error returned by WaitForConfirmation.
type ConfirmationError struct {
	Message       string
	TransactionID string
}

func (errorValue ConfirmationError) Error() string {
	return errorValue.Message
}

// RejectedTransactionError means the node refused the transaction. It is not retried.
type RejectedTransactionError struct {
	ConfirmationError
	PoolError string
}

// TimeoutError means the round budget ran out. The caller may re-submit.
type TimeoutError struct {
	ConfirmationError
	MaxRounds int
	LastRound uint64
}

// NetworkError wraps a failed node query. It is not retried.
type NetworkError struct {
	ConfirmationError
	Operation string
	Err       error
}

func (errorValue NetworkError) Unwrap() error {
	return errorValue.Err
}

// CancelledError means the caller's context ended the wait.
type CancelledError struct {
	ConfirmationError
	Err error
}

func (errorValue CancelledError) Unwrap() error {
	return errorValue.Err
}

func newRejectedTransactionError(transactionID string, poolError string) error {
	return RejectedTransactionError{
		ConfirmationError: ConfirmationError{
			Message:       fmt.Sprintf("transaction %s rejected: %s", transactionID, poolError),
			TransactionID: transactionID,
		},
		PoolError: poolError,
	}
}

func newTimeoutError(transactionID string, maxRounds int, lastRound uint64) error {
	return TimeoutError{
		ConfirmationError: ConfirmationError{
			Message: fmt.Sprintf(
				"transaction %s not confirmed after %d rounds (last round %d)",
				transactionID,
				maxRounds,
				lastRound,
			),
			TransactionID: transactionID,
		},
		MaxRounds: maxRounds,
		LastRound: lastRound,
	}
}

func newNetworkError(transactionID string, operation string, err error) error {
	return NetworkError{
		ConfirmationError: ConfirmationError{
			Message:       fmt.Sprintf("%s failed for transaction %s: %v", operation, transactionID, err),
			TransactionID: transactionID,
		},
		Operation: operation,
		Err:       err,
	}
}

func newCancelledError(transactionID string, err error) error {
	return CancelledError{
		ConfirmationError: ConfirmationError{
			Message:       fmt.Sprintf("wait for transaction %s cancelled: %v", transactionID, err),
			TransactionID: transactionID,
		},
		Err: err,
	}
}

// StateOf maps a WaitForConfirmation error to its terminal state. A nil error
// is StateConfirmed; node query failures and anything else are StateFailed.
func StateOf(err error) State {
	if err == nil {
		return StateConfirmed
	}

	var rejected RejectedTransactionError
	var timeout TimeoutError
	var cancelled CancelledError
	switch {
	case errors.As(err, &rejected):
		return StateRejected
	case errors.As(err, &timeout):
		return StateTimedOut
	case errors.As(err, &cancelled):
		return StateCancelled
	default:
		return StateFailed
	}
}
