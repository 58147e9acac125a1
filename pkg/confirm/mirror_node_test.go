package confirm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashgraph-online/hts-asset-demo-go/pkg/mirror"
)

type fakeMirror struct {
	latest       atomic.Uint64
	advance      uint64
	latestStatus int

	transaction       map[string]any
	transactionStatus int
	containingBlock   *uint64

	latestCalls atomic.Int32
}

func (f *fakeMirror) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/v1/blocks" && r.URL.Query().Get("timestamp") != "":
			blocks := []map[string]any{}
			if f.containingBlock != nil {
				blocks = append(blocks, map[string]any{"number": *f.containingBlock})
			}
			json.NewEncoder(w).Encode(map[string]any{"blocks": blocks})
		case r.URL.Path == "/api/v1/blocks":
			f.latestCalls.Add(1)
			if f.latestStatus != 0 {
				w.WriteHeader(f.latestStatus)
				return
			}
			number := f.latest.Add(f.advance) - f.advance
			json.NewEncoder(w).Encode(map[string]any{
				"blocks": []map[string]any{{"number": number}},
			})
		case strings.HasPrefix(r.URL.Path, "/api/v1/transactions/"):
			if f.transactionStatus != 0 {
				w.WriteHeader(f.transactionStatus)
				w.Write([]byte(`{"_status":{"messages":[{"message":"Not found"}]}}`))
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"transactions": []map[string]any{f.transaction},
			})
		default:
			t.Errorf("unexpected request %s", r.URL.String())
			w.WriteHeader(http.StatusTeapot)
		}
	}
}

func newFakeMirrorNode(t *testing.T, fake *fakeMirror, config MirrorNodeConfig) *MirrorNode {
	t.Helper()
	server := httptest.NewServer(fake.handler(t))
	t.Cleanup(server.Close)

	client, err := mirror.NewClient(mirror.Config{Network: "testnet", BaseURL: server.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	node, err := NewMirrorNode(client, config)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return node
}

func TestNewMirrorNodeDefaults(t *testing.T) {
	if _, err := NewMirrorNode(nil, MirrorNodeConfig{}); err == nil {
		t.Fatal("expected error for nil client")
	}

	client, _ := mirror.NewClient(mirror.Config{Network: "testnet"})
	node, err := NewMirrorNode(client, MirrorNodeConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if node.pollInterval != DefaultPollInterval || node.maxPolls != DefaultMaxPollsPerRound {
		t.Fatalf("unexpected defaults %v / %d", node.pollInterval, node.maxPolls)
	}
}

func TestMirrorNodeStatus(t *testing.T) {
	fake := &fakeMirror{}
	fake.latest.Store(321)
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{})

	status, err := node.Status(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.LastRound != 321 {
		t.Fatalf("expected round 321, got %d", status.LastRound)
	}
}

func TestMirrorNodePendingWhenUnknown(t *testing.T) {
	fake := &fakeMirror{transactionStatus: http.StatusNotFound}
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{})

	info, err := node.PendingTransactionInfo(context.Background(), "0.0.2@1700000000.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Confirmed() || info.Rejected() {
		t.Fatalf("expected pending, got %+v", info)
	}
}

func TestMirrorNodeConfirmed(t *testing.T) {
	blockNumber := uint64(888)
	fake := &fakeMirror{
		transaction: map[string]any{
			"transaction_id":      "0.0.2-1700000000-000000001",
			"result":              "SUCCESS",
			"consensus_timestamp": "1700000001.000000002",
			"entity_id":           "0.0.4040",
		},
		containingBlock: &blockNumber,
	}
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{})

	info, err := node.PendingTransactionInfo(context.Background(), "0.0.2@1700000000.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.Confirmed() || info.ConfirmedRound != 888 {
		t.Fatalf("expected confirmed in 888, got %+v", info)
	}
	if info.EntityID != "0.0.4040" || info.ConsensusTimestamp != "1700000001.000000002" {
		t.Fatalf("unexpected info %+v", info)
	}
}

func TestMirrorNodeConfirmedButBlockNotIngested(t *testing.T) {
	fake := &fakeMirror{
		transaction: map[string]any{
			"result":              "SUCCESS",
			"consensus_timestamp": "1700000001.000000002",
		},
	}
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{})

	info, err := node.PendingTransactionInfo(context.Background(), "0.0.2@1700000000.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Confirmed() || info.Rejected() {
		t.Fatalf("expected pending until block is ingested, got %+v", info)
	}
}

func TestMirrorNodeRejected(t *testing.T) {
	fake := &fakeMirror{
		transaction: map[string]any{
			"result":              "ACCOUNT_FROZEN_FOR_TOKEN",
			"consensus_timestamp": "1700000001.000000002",
		},
	}
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{})

	info, err := node.PendingTransactionInfo(context.Background(), "0.0.2@1700000000.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !info.Rejected() || info.PoolError != "ACCOUNT_FROZEN_FOR_TOKEN" {
		t.Fatalf("expected rejection, got %+v", info)
	}
}

func TestMirrorNodePendingInfoServerError(t *testing.T) {
	fake := &fakeMirror{transactionStatus: http.StatusInternalServerError}
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{})

	if _, err := node.PendingTransactionInfo(context.Background(), "0.0.2@1700000000.1"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestMirrorNodeWaitForRoundPollsUntilClosed(t *testing.T) {
	fake := &fakeMirror{advance: 1}
	fake.latest.Store(10)
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{PollInterval: time.Millisecond, MaxPollsPerRound: 20})

	status, err := node.WaitForRound(context.Background(), 13)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.LastRound != 13 {
		t.Fatalf("expected round 13, got %d", status.LastRound)
	}
	if fake.latestCalls.Load() != 4 {
		t.Fatalf("expected 4 polls, got %d", fake.latestCalls.Load())
	}
}

func TestMirrorNodeWaitForRoundAlreadyClosed(t *testing.T) {
	fake := &fakeMirror{}
	fake.latest.Store(50)
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{PollInterval: time.Millisecond})

	status, err := node.WaitForRound(context.Background(), 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.LastRound != 50 || fake.latestCalls.Load() != 1 {
		t.Fatalf("expected single poll returning 50, got %d after %d polls", status.LastRound, fake.latestCalls.Load())
	}
}

func TestMirrorNodeWaitForRoundExhausted(t *testing.T) {
	fake := &fakeMirror{}
	fake.latest.Store(5)
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{PollInterval: time.Millisecond, MaxPollsPerRound: 3})

	_, err := node.WaitForRound(context.Background(), 6)
	if err == nil {
		t.Fatal("expected error when round never closes")
	}
	if !strings.Contains(err.Error(), "round 6 not closed") {
		t.Fatalf("unexpected error %v", err)
	}
	if fake.latestCalls.Load() != 3 {
		t.Fatalf("expected exactly 3 polls, got %d", fake.latestCalls.Load())
	}
	if !strings.Contains(err.Error(), "after 3 polls") {
		t.Fatalf("expected poll count in error, got %v", err)
	}
}

func TestMirrorNodeWaitForRoundSinglePollBudget(t *testing.T) {
	fake := &fakeMirror{}
	fake.latest.Store(5)
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{PollInterval: time.Millisecond, MaxPollsPerRound: 1})

	if _, err := node.WaitForRound(context.Background(), 6); err == nil {
		t.Fatal("expected error when round never closes")
	}
	if fake.latestCalls.Load() != 1 {
		t.Fatalf("expected a single poll, got %d", fake.latestCalls.Load())
	}
}

func TestMirrorNodeWaitForRoundMirrorErrorIsNotRetried(t *testing.T) {
	fake := &fakeMirror{latestStatus: http.StatusBadGateway}
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{PollInterval: time.Millisecond, MaxPollsPerRound: 10})

	_, err := node.WaitForRound(context.Background(), 6)
	var statusErr *mirror.StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected mirror status error, got %v", err)
	}
	if fake.latestCalls.Load() != 1 {
		t.Fatalf("expected a single poll, got %d", fake.latestCalls.Load())
	}
}

func TestMirrorNodeWaitForRoundCancelled(t *testing.T) {
	fake := &fakeMirror{}
	fake.latest.Store(1)
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{PollInterval: 50 * time.Millisecond, MaxPollsPerRound: 100})

	ctx, cancelFunc := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancelFunc()

	_, err := node.WaitForRound(ctx, 1000)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}

func TestWaitForConfirmationAgainstMirror(t *testing.T) {
	blockNumber := uint64(12)
	fake := &fakeMirror{
		advance: 1,
		transaction: map[string]any{
			"result":              "SUCCESS",
			"consensus_timestamp": "1700000001.000000002",
			"entity_id":           "0.0.7777",
		},
		containingBlock: &blockNumber,
	}
	fake.latest.Store(10)
	node := newFakeMirrorNode(t, fake, MirrorNodeConfig{PollInterval: time.Millisecond})

	result, err := WaitForConfirmation(context.Background(), node, "0.0.2@1700000000.1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ConfirmedRound != 12 || result.Info.EntityID != "0.0.7777" {
		t.Fatalf("unexpected result %+v", result)
	}
}
