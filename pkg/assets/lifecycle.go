package assets

import (
	"context"
	"strings"
)

// RunLifecycle runs the full demo against the network: two accounts are
// generated and funded, the creator mints an asset, the receiver opts in and
// receives units, and the creator freezes the receiver's holding.
func (client *Client) RunLifecycle(ctx context.Context, options LifecycleOptions) (LifecycleReport, error) {
	options = normalizeLifecycleOptions(options)
	report := LifecycleReport{}

	progress := func(stage string, percentage int, transactionID string) {
		if options.ProgressCallback != nil {
			options.ProgressCallback(LifecycleProgress{
				Stage:         stage,
				Percentage:    percentage,
				TransactionID: transactionID,
			})
		}
	}

	progress("generating", 0, "")
	creator, err := client.GenerateAccount()
	if err != nil {
		return report, err
	}
	receiver, err := client.GenerateAccount()
	if err != nil {
		return report, err
	}

	progress("funding", 10, "")
	fundedCreator, err := client.FundAccount(ctx, FundAccountOptions{
		Account:    creator,
		AmountHbar: options.FundHbar,
	})
	if err != nil {
		return report, err
	}
	report.Creator = fundedCreator.Account
	progress("funding", 20, fundedCreator.TransactionID)

	fundedReceiver, err := client.FundAccount(ctx, FundAccountOptions{
		Account:    receiver,
		AmountHbar: options.FundHbar,
	})
	if err != nil {
		return report, err
	}
	report.Receiver = fundedReceiver.Account
	progress("funding", 30, fundedReceiver.TransactionID)

	progress("creating", 40, "")
	createOptions := options.Asset
	createOptions.Creator = report.Creator
	asset, err := client.CreateAsset(ctx, createOptions)
	if err != nil {
		return report, err
	}
	report.Asset = asset
	progress("creating", 50, asset.TransactionID)

	progress("opting-in", 60, "")
	report.OptIn, err = client.OptIn(ctx, OptInOptions{
		Account: report.Receiver,
		TokenID: asset.TokenID,
	})
	if err != nil {
		return report, err
	}
	progress("opting-in", 70, report.OptIn.TransactionID)

	progress("transferring", 75, "")
	report.Transfer, err = client.TransferAsset(ctx, TransferAssetOptions{
		Sender:            report.Creator,
		ReceiverAccountID: report.Receiver.AccountID.String(),
		TokenID:           asset.TokenID,
		Amount:            options.TransferAmount,
	})
	if err != nil {
		return report, err
	}
	progress("transferring", 85, report.Transfer.TransactionID)

	stage := "freezing"
	if options.Unfreeze {
		stage = "unfreezing"
	}
	progress(stage, 90, "")
	report.Freeze, err = client.FreezeAsset(ctx, FreezeAssetOptions{
		Manager:         report.Creator,
		TargetAccountID: report.Receiver.AccountID.String(),
		TokenID:         asset.TokenID,
		Freeze:          !options.Unfreeze,
	})
	if err != nil {
		return report, err
	}
	report.Frozen = !options.Unfreeze
	progress("completed", 100, report.Freeze.TransactionID)

	client.logger.Info().
		Str("asset", asset.TokenID).
		Str("creator", report.Creator.String()).
		Str("receiver", report.Receiver.String()).
		Bool("frozen", report.Frozen).
		Msg("asset lifecycle completed")

	return report, nil
}

func normalizeLifecycleOptions(options LifecycleOptions) LifecycleOptions {
	if options.FundHbar <= 0 {
		options.FundHbar = DefaultFundHbar
	}
	if options.TransferAmount <= 0 {
		options.TransferAmount = DefaultTransferAmount
	}
	if strings.TrimSpace(options.Asset.Name) == "" {
		options.Asset.Name = DefaultAssetName
	}
	if strings.TrimSpace(options.Asset.UnitName) == "" {
		options.Asset.UnitName = DefaultUnitName
	}
	if options.Asset.Total == 0 {
		options.Asset.Total = DefaultAssetTotal
	}
	return options
}
