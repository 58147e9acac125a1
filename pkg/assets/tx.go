package assets

import (
	"fmt"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

type FundAccountTxParams struct {
	PublicKey       hedera.PublicKey
	AmountHbar      float64
	AccountMemo     string
	TransactionMemo string
}

// AssetCreateTxParams maps the classic asset roles onto token keys: manager
// is the admin key, reserve is the treasury (and supply key), freeze is the
// freeze key and clawback is the wipe key. Nil keys leave the role unset.
type AssetCreateTxParams struct {
	Name              string
	UnitName          string
	Total             uint64
	Decimals          uint
	DefaultFrozen     bool
	Memo              string
	TreasuryAccountID hedera.AccountID
	ManagerKey        hedera.Key
	ReserveKey        hedera.Key
	FreezeKey         hedera.Key
	ClawbackKey       hedera.Key
	TransactionMemo   string
}

type OptInTxParams struct {
	AccountID       string
	TokenID         string
	TransactionMemo string
}

type AssetTransferTxParams struct {
	TokenID         string
	From            string
	To              string
	Amount          int64
	TransactionMemo string
}

type AssetFreezeTxParams struct {
	TokenID         string
	TargetAccountID string
	TransactionMemo string
}

// BuildFundAccountTx builds an account create that moves AmountHbar from the
// payer into a new account controlled by PublicKey.
func BuildFundAccountTx(params FundAccountTxParams) (*hedera.AccountCreateTransaction, error) {
	if params.PublicKey.String() == "" {
		return nil, fmt.Errorf("public key is required")
	}

	amount := params.AmountHbar
	if amount <= 0 {
		amount = DefaultFundHbar
	}

	transaction := hedera.NewAccountCreateTransaction().
		SetKey(params.PublicKey).
		SetInitialBalance(hedera.NewHbar(amount)).
		SetTransactionMemo(normalizeMemo(params.TransactionMemo, FundAccountTransactionMemo))

	if memo := strings.TrimSpace(params.AccountMemo); memo != "" {
		transaction.SetAccountMemo(memo)
	}

	return transaction, nil
}

// BuildAssetCreateTx builds a fungible, fixed-supply token create with the
// whole supply minted to the treasury.
func BuildAssetCreateTx(params AssetCreateTxParams) (*hedera.TokenCreateTransaction, error) {
	if err := ValidateAssetCreateTxParams(params); err != nil {
		return nil, err
	}

	transaction := hedera.NewTokenCreateTransaction().
		SetTokenName(strings.TrimSpace(params.Name)).
		SetTokenSymbol(strings.TrimSpace(params.UnitName)).
		SetTokenType(hedera.TokenTypeFungibleCommon).
		SetSupplyType(hedera.TokenSupplyTypeFinite).
		SetMaxSupply(int64(params.Total)).
		SetInitialSupply(params.Total).
		SetDecimals(params.Decimals).
		SetFreezeDefault(params.DefaultFrozen).
		SetTreasuryAccountID(params.TreasuryAccountID).
		SetAutoRenewAccount(params.TreasuryAccountID).
		SetAdminKey(params.ManagerKey)

	if params.ReserveKey != nil {
		transaction.SetSupplyKey(params.ReserveKey)
	}
	if params.FreezeKey != nil {
		transaction.SetFreezeKey(params.FreezeKey)
	}
	if params.ClawbackKey != nil {
		transaction.SetWipeKey(params.ClawbackKey)
	}
	if memo := strings.TrimSpace(params.Memo); memo != "" {
		transaction.SetTokenMemo(memo)
	}
	if memo := strings.TrimSpace(params.TransactionMemo); memo != "" {
		transaction.SetTransactionMemo(memo)
	}

	return transaction, nil
}

// BuildOptInTx associates AccountID with TokenID so it can hold the asset.
func BuildOptInTx(params OptInTxParams) (*hedera.TokenAssociateTransaction, error) {
	accountID, err := parseAccountID("account ID", params.AccountID)
	if err != nil {
		return nil, err
	}
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return nil, err
	}

	transaction := hedera.NewTokenAssociateTransaction().
		SetAccountID(accountID).
		SetTokenIDs(tokenID)

	if memo := strings.TrimSpace(params.TransactionMemo); memo != "" {
		transaction.SetTransactionMemo(memo)
	}

	return transaction, nil
}

// BuildAssetTransferTx moves Amount units (in the token's smallest
// denomination) from From to To.
func BuildAssetTransferTx(params AssetTransferTxParams) (*hedera.TransferTransaction, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return nil, err
	}
	from, err := parseAccountID("sender account ID", params.From)
	if err != nil {
		return nil, err
	}
	to, err := parseAccountID("receiver account ID", params.To)
	if err != nil {
		return nil, err
	}
	if params.Amount <= 0 {
		return nil, NewValidationError("amount must be greater than zero", nil)
	}
	if from.String() == to.String() {
		return nil, NewValidationError("sender and receiver must differ", nil)
	}

	transaction := hedera.NewTransferTransaction().
		AddTokenTransfer(tokenID, from, -params.Amount).
		AddTokenTransfer(tokenID, to, params.Amount)

	if memo := strings.TrimSpace(params.TransactionMemo); memo != "" {
		transaction.SetTransactionMemo(memo)
	}

	return transaction, nil
}

// BuildAssetFreezeTx freezes TokenID for TargetAccountID.
func BuildAssetFreezeTx(params AssetFreezeTxParams) (*hedera.TokenFreezeTransaction, error) {
	tokenID, targetID, err := parseFreezeParams(params)
	if err != nil {
		return nil, err
	}

	transaction := hedera.NewTokenFreezeTransaction().
		SetTokenID(tokenID).
		SetAccountID(targetID)

	if memo := strings.TrimSpace(params.TransactionMemo); memo != "" {
		transaction.SetTransactionMemo(memo)
	}

	return transaction, nil
}

// BuildAssetUnfreezeTx lifts a freeze of TokenID for TargetAccountID.
func BuildAssetUnfreezeTx(params AssetFreezeTxParams) (*hedera.TokenUnfreezeTransaction, error) {
	tokenID, targetID, err := parseFreezeParams(params)
	if err != nil {
		return nil, err
	}

	transaction := hedera.NewTokenUnfreezeTransaction().
		SetTokenID(tokenID).
		SetAccountID(targetID)

	if memo := strings.TrimSpace(params.TransactionMemo); memo != "" {
		transaction.SetTransactionMemo(memo)
	}

	return transaction, nil
}

func parseFreezeParams(params AssetFreezeTxParams) (hedera.TokenID, hedera.AccountID, error) {
	tokenID, err := parseTokenID(params.TokenID)
	if err != nil {
		return hedera.TokenID{}, hedera.AccountID{}, err
	}
	targetID, err := parseAccountID("freeze target account ID", params.TargetAccountID)
	if err != nil {
		return hedera.TokenID{}, hedera.AccountID{}, err
	}
	return tokenID, targetID, nil
}

func normalizeMemo(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
