// Package confirm waits for a submitted transaction to reach a terminal state.
//
// A Waiter reads the node's last round, then alternates between querying the
// transaction's pending status and blocking until the next round closes:
//
//	pending -> confirmed | rejected | timed-out | cancelled | failed
//
// The number of round-waits is bounded by a budget (DefaultMaxRounds when
// unset). Rejections and node query failures end the wait immediately; there
// are no retries inside the waiter.
//
// The Node interface is the only ledger dependency. MirrorNode implements it
// on the Hedera mirror node REST API, using record blocks as rounds:
//
//	mirrorClient, _ := mirror.NewClient(mirror.Config{Network: "testnet"})
//	node, _ := confirm.NewMirrorNode(mirrorClient, confirm.MirrorNodeConfig{})
//	waiter, _ := confirm.NewWaiter(node, 5)
//	result, err := waiter.WaitForConfirmation(ctx, response.TransactionID.String())
//	if err != nil {
//		switch confirm.StateOf(err) {
//		case confirm.StateRejected:
//			// inspect err.(confirm.RejectedTransactionError).PoolError
//		case confirm.StateTimedOut:
//			// safe to re-submit
//		}
//	}
package confirm
