package assets

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashgraph-online/hts-asset-demo-go/pkg/confirm"
	"github.com/hashgraph-online/hts-asset-demo-go/pkg/mirror"
	"github.com/hashgraph-online/hts-asset-demo-go/pkg/shared"
	hedera "github.com/hashgraph/hedera-sdk-go/v2"
	"github.com/rs/zerolog"
)

type executable interface {
	Execute(client *hedera.Client) (hedera.TransactionResponse, error)
}

// signable is satisfied by every *hedera.XTransaction builder.
type signable[T any] interface {
	executable
	SetTransactionID(transactionID hedera.TransactionID) T
	FreezeWith(client *hedera.Client) (T, error)
	Sign(privateKey hedera.PrivateKey) T
}

// Client submits asset lifecycle transactions and waits for each to confirm.
type Client struct {
	hederaClient *hedera.Client
	mirrorClient *mirror.Client
	waiter       *confirm.Waiter
	funderID     hedera.AccountID
	funderKey    hedera.PrivateKey
	network      string
	logger       zerolog.Logger

	execute func(transaction executable) (hedera.TransactionResponse, error)
}

// NewClient creates an asset workflow client paying from the funder account.
func NewClient(config ClientConfig) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	trimmedFunderID := strings.TrimSpace(config.FunderAccountID)
	if trimmedFunderID == "" {
		return nil, fmt.Errorf("funder account ID is required")
	}
	funderID, err := hedera.AccountIDFromString(trimmedFunderID)
	if err != nil {
		return nil, fmt.Errorf("invalid funder account ID: %w", err)
	}

	funderConfig := shared.FunderConfig{
		AccountID:  trimmedFunderID,
		Mnemonic:   config.FunderMnemonic,
		PrivateKey: config.FunderPrivateKey,
		Network:    network,
	}
	if !funderConfig.HasMnemonic() && strings.TrimSpace(config.FunderPrivateKey) == "" {
		return nil, fmt.Errorf("funder mnemonic or private key is required")
	}
	funderKey, err := shared.ResolveFunderKey(funderConfig)
	if err != nil {
		return nil, err
	}

	hederaClient, err := shared.NewHederaClient(network)
	if err != nil {
		return nil, err
	}
	hederaClient.SetOperator(funderID, funderKey)

	mirrorClient, err := mirror.NewClient(mirror.Config{
		Network: network,
		BaseURL: config.MirrorBaseURL,
		APIKey:  config.MirrorAPIKey,
	})
	if err != nil {
		return nil, err
	}

	node := config.Node
	if node == nil {
		node, err = confirm.NewMirrorNode(mirrorClient, confirm.MirrorNodeConfig{
			PollInterval: config.RoundPollInterval,
		})
		if err != nil {
			return nil, err
		}
	}
	waiter, err := confirm.NewWaiter(node, config.MaxRounds)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}

	client := &Client{
		hederaClient: hederaClient,
		mirrorClient: mirrorClient,
		waiter:       waiter,
		funderID:     funderID,
		funderKey:    funderKey,
		network:      network,
		logger:       logger.With().Str("network", network).Logger(),
	}
	client.execute = func(transaction executable) (hedera.TransactionResponse, error) {
		return transaction.Execute(client.hederaClient)
	}

	return client, nil
}

// HederaClient returns the SDK client with the funder set as operator.
func (client *Client) HederaClient() *hedera.Client {
	return client.hederaClient
}

// MirrorClient returns the mirror node client used for reads and confirmation.
func (client *Client) MirrorClient() *mirror.Client {
	return client.mirrorClient
}

// Waiter returns the confirmation waiter applied to every submission.
func (client *Client) Waiter() *confirm.Waiter {
	return client.waiter
}

// FunderAccountID returns the account that pays for account creation.
func (client *Client) FunderAccountID() string {
	return client.funderID.String()
}

// GenerateAccount creates a fresh ED25519 key pair. The account exists on the
// ledger only after FundAccount.
func (client *Client) GenerateAccount() (Account, error) {
	return GenerateAccount()
}

// GenerateAccount creates a fresh ED25519 key pair without a client.
func GenerateAccount() (Account, error) {
	privateKey, err := hedera.PrivateKeyGenerateEd25519()
	if err != nil {
		return Account{}, fmt.Errorf("failed to generate ed25519 private key: %w", err)
	}
	return Account{
		PrivateKey: privateKey,
		PublicKey:  privateKey.PublicKey(),
	}, nil
}

// FundAccount creates the generated account on the ledger with an initial
// balance paid by the funder.
func (client *Client) FundAccount(ctx context.Context, options FundAccountOptions) (FundAccountResult, error) {
	account := options.Account
	if account.Funded() {
		return FundAccountResult{}, NewValidationError(
			fmt.Sprintf("account %s is already funded", account.AccountID),
			nil,
		)
	}

	transaction, err := BuildFundAccountTx(FundAccountTxParams{
		PublicKey:   account.PublicKey,
		AmountHbar:  options.AmountHbar,
		AccountMemo: options.AccountMemo,
	})
	if err != nil {
		return FundAccountResult{}, err
	}

	prepared, err := prepare(client.hederaClient, transaction, client.funderID, client.funderKey)
	if err != nil {
		return FundAccountResult{}, newOperationError("fund account", "", err)
	}
	result, err := client.submit(ctx, "fund account", prepared)
	if err != nil {
		return FundAccountResult{}, err
	}

	accountID, err := hedera.AccountIDFromString(result.EntityID)
	if err != nil {
		return FundAccountResult{}, newOperationError(
			"fund account",
			result.TransactionID,
			fmt.Errorf("confirmed transaction did not report a new account ID (%q)", result.EntityID),
		)
	}
	account.AccountID = accountID

	client.logger.Info().
		Str("account", accountID.String()).
		Str("funder", client.funderID.String()).
		Float64("hbar", transaction.GetInitialBalance().As(hedera.HbarUnits.Hbar)).
		Msg("successfully funded account")

	return FundAccountResult{Account: account, OperationResult: result}, nil
}

// CreateAsset creates a fungible asset with the creator as treasury and as
// holder of every management key.
func (client *Client) CreateAsset(ctx context.Context, options CreateAssetOptions) (AssetInfo, error) {
	if err := requireFunded("creator", options.Creator); err != nil {
		return AssetInfo{}, err
	}

	creatorKey := options.Creator.PublicKey
	transaction, err := BuildAssetCreateTx(AssetCreateTxParams{
		Name:              options.Name,
		UnitName:          options.UnitName,
		Total:             options.Total,
		Decimals:          options.Decimals,
		DefaultFrozen:     options.DefaultFrozen,
		Memo:              options.Memo,
		TreasuryAccountID: options.Creator.AccountID,
		ManagerKey:        creatorKey,
		ReserveKey:        creatorKey,
		FreezeKey:         creatorKey,
		ClawbackKey:       creatorKey,
	})
	if err != nil {
		return AssetInfo{}, err
	}

	prepared, err := prepare(
		client.hederaClient,
		transaction,
		options.Creator.AccountID,
		options.Creator.PrivateKey,
	)
	if err != nil {
		return AssetInfo{}, newOperationError("create asset", "", err)
	}
	result, err := client.submit(ctx, "create asset", prepared)
	if err != nil {
		return AssetInfo{}, err
	}

	tokenID, err := hedera.TokenIDFromString(result.EntityID)
	if err != nil {
		return AssetInfo{}, newOperationError(
			"create asset",
			result.TransactionID,
			fmt.Errorf("confirmed transaction did not report a token ID (%q)", result.EntityID),
		)
	}

	client.logger.Info().
		Str("asset", tokenID.String()).
		Str("creator", options.Creator.String()).
		Msg("asset created")

	return AssetInfo{
		TokenID:         tokenID.String(),
		Name:            strings.TrimSpace(options.Name),
		UnitName:        strings.TrimSpace(options.UnitName),
		Total:           options.Total,
		Decimals:        options.Decimals,
		DefaultFrozen:   options.DefaultFrozen,
		Creator:         options.Creator.String(),
		OperationResult: result,
	}, nil
}

// OptIn associates the account with the asset so it can receive units.
func (client *Client) OptIn(ctx context.Context, options OptInOptions) (OperationResult, error) {
	if err := requireFunded("opt-in", options.Account); err != nil {
		return OperationResult{}, err
	}

	transaction, err := BuildOptInTx(OptInTxParams{
		AccountID: options.Account.AccountID.String(),
		TokenID:   options.TokenID,
	})
	if err != nil {
		return OperationResult{}, err
	}

	prepared, err := prepare(
		client.hederaClient,
		transaction,
		options.Account.AccountID,
		options.Account.PrivateKey,
	)
	if err != nil {
		return OperationResult{}, newOperationError("opt in", "", err)
	}
	result, err := client.submit(ctx, "opt in", prepared)
	if err != nil {
		return OperationResult{}, err
	}

	client.logger.Info().
		Str("account", options.Account.String()).
		Str("asset", strings.TrimSpace(options.TokenID)).
		Msg("opted into asset")

	return result, nil
}

// TransferAsset sends units from the sender, who signs and pays.
func (client *Client) TransferAsset(ctx context.Context, options TransferAssetOptions) (OperationResult, error) {
	if err := requireFunded("sender", options.Sender); err != nil {
		return OperationResult{}, err
	}

	transaction, err := BuildAssetTransferTx(AssetTransferTxParams{
		TokenID:         options.TokenID,
		From:            options.Sender.AccountID.String(),
		To:              options.ReceiverAccountID,
		Amount:          options.Amount,
		TransactionMemo: options.Memo,
	})
	if err != nil {
		return OperationResult{}, err
	}

	prepared, err := prepare(
		client.hederaClient,
		transaction,
		options.Sender.AccountID,
		options.Sender.PrivateKey,
	)
	if err != nil {
		return OperationResult{}, newOperationError("transfer asset", "", err)
	}
	result, err := client.submit(ctx, "transfer asset", prepared)
	if err != nil {
		return OperationResult{}, err
	}

	client.logger.Info().
		Int64("amount", options.Amount).
		Str("asset", strings.TrimSpace(options.TokenID)).
		Str("receiver", strings.TrimSpace(options.ReceiverAccountID)).
		Msg("transferred asset units")

	return result, nil
}

// FreezeAsset freezes (or, with Freeze false, unfreezes) the asset for the
// target account. The manager must hold the asset's freeze key.
func (client *Client) FreezeAsset(ctx context.Context, options FreezeAssetOptions) (OperationResult, error) {
	if err := requireFunded("manager", options.Manager); err != nil {
		return OperationResult{}, err
	}

	params := AssetFreezeTxParams{
		TokenID:         options.TokenID,
		TargetAccountID: options.TargetAccountID,
	}
	operation := "freeze asset"
	if !options.Freeze {
		operation = "unfreeze asset"
	}

	var result OperationResult
	if options.Freeze {
		transaction, err := BuildAssetFreezeTx(params)
		if err != nil {
			return OperationResult{}, err
		}
		prepared, err := prepare(client.hederaClient, transaction, options.Manager.AccountID, options.Manager.PrivateKey)
		if err != nil {
			return OperationResult{}, newOperationError(operation, "", err)
		}
		if result, err = client.submit(ctx, operation, prepared); err != nil {
			return OperationResult{}, err
		}
	} else {
		transaction, err := BuildAssetUnfreezeTx(params)
		if err != nil {
			return OperationResult{}, err
		}
		prepared, err := prepare(client.hederaClient, transaction, options.Manager.AccountID, options.Manager.PrivateKey)
		if err != nil {
			return OperationResult{}, newOperationError(operation, "", err)
		}
		if result, err = client.submit(ctx, operation, prepared); err != nil {
			return OperationResult{}, err
		}
	}

	state := "frozen"
	if !options.Freeze {
		state = "unfrozen"
	}
	client.logger.Info().
		Str("account", strings.TrimSpace(options.TargetAccountID)).
		Str("asset", strings.TrimSpace(options.TokenID)).
		Str("state", state).
		Msg("updated asset freeze state")

	return result, nil
}

// GetHolding reads an account's balance and freeze status for a token.
func (client *Client) GetHolding(ctx context.Context, accountID string, tokenID string) (Holding, error) {
	relationship, err := client.mirrorClient.GetAccountTokenRelationship(ctx, accountID, tokenID)
	if err != nil {
		return Holding{}, err
	}

	holding := Holding{
		AccountID: strings.TrimSpace(accountID),
		TokenID:   strings.TrimSpace(tokenID),
	}
	if relationship != nil {
		holding.Associated = true
		holding.Balance = relationship.Balance
		holding.Frozen = relationship.Frozen()
	}
	return holding, nil
}

// GetAsset reads the mirror node's view of a token.
func (client *Client) GetAsset(ctx context.Context, tokenID string) (mirror.TokenInfo, error) {
	if _, err := parseTokenID(tokenID); err != nil {
		return mirror.TokenInfo{}, err
	}
	return client.mirrorClient.GetToken(ctx, strings.TrimSpace(tokenID))
}

// prepare sets payer as the fee payer, freezes the body and signs it with
// each key.
func prepare[T signable[T]](
	hederaClient *hedera.Client,
	transaction T,
	payer hedera.AccountID,
	keys ...hedera.PrivateKey,
) (T, error) {
	transaction = transaction.SetTransactionID(hedera.TransactionIDGenerate(payer))
	frozen, err := transaction.FreezeWith(hederaClient)
	if err != nil {
		return frozen, fmt.Errorf("failed to freeze transaction: %w", err)
	}
	for _, key := range keys {
		frozen = frozen.Sign(key)
	}
	return frozen, nil
}

func (client *Client) submit(
	ctx context.Context,
	operation string,
	transaction executable,
) (OperationResult, error) {
	response, err := client.execute(transaction)
	if err != nil {
		return OperationResult{}, newOperationError(operation, "", err)
	}
	transactionID := response.TransactionID.String()

	waitResult, err := client.waiter.WaitForConfirmation(ctx, transactionID)
	result := OperationResult{
		TransactionID:      transactionID,
		State:              waitResult.State,
		ConfirmedRound:     waitResult.ConfirmedRound,
		RoundsWaited:       waitResult.RoundsWaited,
		EntityID:           waitResult.Info.EntityID,
		Result:             waitResult.Info.Result,
		ConsensusTimestamp: waitResult.Info.ConsensusTimestamp,
	}
	if err != nil {
		client.logger.Warn().
			Err(err).
			Str("operation", operation).
			Str("tx", transactionID).
			Str("state", waitResult.State.String()).
			Msg("transaction not confirmed")
		return result, newOperationError(operation, transactionID, err)
	}

	client.logger.Debug().
		Str("operation", operation).
		Str("tx", transactionID).
		Uint64("round", result.ConfirmedRound).
		Int("rounds_waited", result.RoundsWaited).
		Msg("transaction confirmed")

	return result, nil
}
