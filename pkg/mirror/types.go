package mirror

import (
	"errors"
	"fmt"
)

const (
	ResultSuccess = "SUCCESS"

	FreezeStatusFrozen        = "FROZEN"
	FreezeStatusUnfrozen      = "UNFROZEN"
	FreezeStatusNotApplicable = "NOT_APPLICABLE"
)

// StatusError is returned for any non-2xx mirror node response.
type StatusError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mirror node request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a mirror node 404.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == 404
}

type Block struct {
	Count        int64          `json:"count"`
	GasUsed      int64          `json:"gas_used"`
	HapiVersion  string         `json:"hapi_version"`
	Hash         string         `json:"hash"`
	Name         string         `json:"name"`
	Number       uint64         `json:"number"`
	PreviousHash string         `json:"previous_hash"`
	Size         int64          `json:"size"`
	Timestamp    BlockTimestamp `json:"timestamp"`
}

type BlockTimestamp struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type blocksResponse struct {
	Blocks []Block `json:"blocks"`
	Links  struct {
		Next string `json:"next"`
	} `json:"links"`
}

type Transaction struct {
	ChargedTxFee        int64           `json:"charged_tx_fee"`
	ConsensusTimestamp  string          `json:"consensus_timestamp"`
	EntityID            *string         `json:"entity_id"`
	MaxFee              string          `json:"max_fee"`
	MemoBase64          string          `json:"memo_base64"`
	Name                string          `json:"name"`
	Node                string          `json:"node"`
	Nonce               int             `json:"nonce"`
	Result              string          `json:"result"`
	Scheduled           bool            `json:"scheduled"`
	TransactionID       string          `json:"transaction_id"`
	ValidStartTimestamp string          `json:"valid_start_timestamp"`
	Transfers           []Transfer      `json:"transfers"`
	TokenTransfers      []TokenTransfer `json:"token_transfers"`
}

// Succeeded reports whether the network applied the transaction.
func (t Transaction) Succeeded() bool {
	return t.Result == ResultSuccess
}

// Entity returns the created or affected entity ID, if any.
func (t Transaction) Entity() string {
	if t.EntityID == nil {
		return ""
	}
	return *t.EntityID
}

type Transfer struct {
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

type TokenTransfer struct {
	TokenID    string `json:"token_id"`
	Account    string `json:"account"`
	Amount     int64  `json:"amount"`
	IsApproval bool   `json:"is_approval"`
}

type transactionsResponse struct {
	Transactions []Transaction `json:"transactions"`
	Links        struct {
		Next string `json:"next"`
	} `json:"links"`
}

type TokenInfo struct {
	TokenID           string `json:"token_id"`
	Name              string `json:"name"`
	Symbol            string `json:"symbol"`
	Type              string `json:"type"`
	Decimals          string `json:"decimals"`
	InitialSupply     string `json:"initial_supply"`
	TotalSupply       string `json:"total_supply"`
	MaxSupply         string `json:"max_supply"`
	SupplyType        string `json:"supply_type"`
	TreasuryAccountID string `json:"treasury_account_id"`
	FreezeDefault     bool   `json:"freeze_default"`
	Memo              string `json:"memo"`
	CreatedTimestamp  string `json:"created_timestamp"`
	Deleted           bool   `json:"deleted"`
}

type TokenRelationship struct {
	AutomaticAssociation bool   `json:"automatic_association"`
	Balance              int64  `json:"balance"`
	CreatedTimestamp     string `json:"created_timestamp"`
	Decimals             int64  `json:"decimals"`
	FreezeStatus         string `json:"freeze_status"`
	KycStatus            string `json:"kyc_status"`
	TokenID              string `json:"token_id"`
}

// Frozen reports whether transfers of the token are frozen for the account.
func (r TokenRelationship) Frozen() bool {
	return r.FreezeStatus == FreezeStatusFrozen
}

type tokenRelationshipsResponse struct {
	Tokens []TokenRelationship `json:"tokens"`
	Links  struct {
		Next string `json:"next"`
	} `json:"links"`
}
