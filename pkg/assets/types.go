package assets

import (
	"time"

	"github.com/hashgraph-online/hts-asset-demo-go/pkg/confirm"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/rs/zerolog"
)

const (
	DefaultFundHbar       = 10.0
	DefaultAssetName      = "Death"
	DefaultUnitName       = "DIE"
	DefaultAssetTotal     = 1000
	DefaultAssetDecimals  = 0
	DefaultTransferAmount = 1

	MaxNameLength     = 100
	MaxUnitNameLength = 100
	MaxMemoLength     = 100
	MaxDecimals       = 18

	FundAccountTransactionMemo = "asset-demo:fund"
)

// ClientConfig configures NewClient. The funder needs a mnemonic or a private key.
type ClientConfig struct {
	FunderAccountID  string
	FunderMnemonic   string
	FunderPrivateKey string
	Network          string

	MirrorBaseURL string
	MirrorAPIKey  string

	// MaxRounds is the confirmation round budget; zero uses confirm.DefaultMaxRounds.
	MaxRounds         int
	RoundPollInterval time.Duration

	// Node replaces the mirror-backed confirmation node.
	Node   confirm.Node
	Logger *zerolog.Logger
}

// Account is a locally generated key pair. AccountID stays zero until the
// account has been funded on the ledger.
type Account struct {
	AccountID  hedera.AccountID
	PrivateKey hedera.PrivateKey
	PublicKey  hedera.PublicKey
}

// Funded reports whether the account exists on the ledger.
func (account Account) Funded() bool {
	return account.AccountID != hedera.AccountID{}
}

// String returns the ledger account ID, or the public key while unfunded.
func (account Account) String() string {
	if !account.Funded() {
		return "unfunded:" + account.PublicKey.StringRaw()
	}
	return account.AccountID.String()
}

// OperationResult describes a submitted and confirmed transaction.
type OperationResult struct {
	TransactionID      string
	State              confirm.State
	ConfirmedRound     uint64
	RoundsWaited       int
	EntityID           string
	Result             string
	ConsensusTimestamp string
}

type FundAccountOptions struct {
	Account     Account
	AmountHbar  float64
	AccountMemo string
}

type FundAccountResult struct {
	Account Account
	OperationResult
}

type CreateAssetOptions struct {
	Creator       Account
	Name          string
	UnitName      string
	Total         uint64
	Decimals      uint
	DefaultFrozen bool
	Memo          string
}

type AssetInfo struct {
	TokenID       string
	Name          string
	UnitName      string
	Total         uint64
	Decimals      uint
	DefaultFrozen bool
	Creator       string
	OperationResult
}

type OptInOptions struct {
	Account Account
	TokenID string
}

type TransferAssetOptions struct {
	Sender            Account
	ReceiverAccountID string
	TokenID           string
	Amount            int64
	Memo              string
}

type FreezeAssetOptions struct {
	Manager         Account
	TargetAccountID string
	TokenID         string
	Freeze          bool
}

// Holding is an account's position in a token as seen by the mirror node.
type Holding struct {
	AccountID  string
	TokenID    string
	Associated bool
	Balance    int64
	Frozen     bool
}

type LifecycleOptions struct {
	FundHbar       float64
	Asset          CreateAssetOptions
	TransferAmount int64
	// Unfreeze runs the final step as an unfreeze instead of a freeze.
	Unfreeze         bool
	ProgressCallback func(LifecycleProgress)
}

type LifecycleProgress struct {
	Stage         string
	Percentage    int
	TransactionID string
}

type LifecycleReport struct {
	Creator  Account
	Receiver Account
	Asset    AssetInfo
	OptIn    OperationResult
	Transfer OperationResult
	Freeze   OperationResult
	Frozen   bool
}
