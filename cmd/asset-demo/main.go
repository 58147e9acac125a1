package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/hashgraph-online/hts-asset-demo-go/pkg/assets"
	"github.com/hashgraph-online/hts-asset-demo-go/pkg/confirm"
	"github.com/hashgraph-online/hts-asset-demo-go/pkg/shared"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type demoFlags struct {
	Network      string
	MirrorURL    string
	MaxRounds    int
	PollInterval time.Duration
	FundHbar     float64
	AssetName    string
	UnitName     string
	Total        uint64
	Decimals     uint
	Amount       int64
	Unfreeze     bool
	LogLevel     string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := demoFlags{}

	command := &cobra.Command{
		Use:   "asset-demo",
		Short: "Run a fungible asset lifecycle on Hedera",
		Long: `asset-demo generates two accounts, funds them from the funder account,
creates a fungible asset, opts the receiver in, transfers units to it and
freezes the asset for the receiver. Every step waits for confirmation.

The funder is read from the environment (or a .env file):
  FUNDER_ACCOUNT_ID   funder account, e.g. 0.0.1234
  MNEMONIC            BIP-39 mnemonic of the funder key
  FUNDER_PRIVATE_KEY  funder key, used when no mnemonic is set`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd, flags)
		},
	}

	command.Flags().StringVar(&flags.Network, "network", "", "network: mainnet|testnet|previewnet|local (default from HEDERA_NETWORK or testnet)")
	command.Flags().StringVar(&flags.MirrorURL, "mirror-url", "", "mirror node base URL")
	command.Flags().IntVar(&flags.MaxRounds, "max-rounds", 0, "rounds to wait for each confirmation (default 10)")
	command.Flags().DurationVar(&flags.PollInterval, "poll-interval", confirm.DefaultPollInterval, "mirror poll interval while waiting for a round")
	command.Flags().Float64Var(&flags.FundHbar, "fund-hbar", assets.DefaultFundHbar, "hbar funded into each generated account")
	command.Flags().StringVar(&flags.AssetName, "asset-name", assets.DefaultAssetName, "asset name")
	command.Flags().StringVar(&flags.UnitName, "unit-name", assets.DefaultUnitName, "asset unit name")
	command.Flags().Uint64Var(&flags.Total, "total", assets.DefaultAssetTotal, "total supply in base units")
	command.Flags().UintVar(&flags.Decimals, "decimals", assets.DefaultAssetDecimals, "asset decimals")
	command.Flags().Int64Var(&flags.Amount, "amount", assets.DefaultTransferAmount, "units transferred to the receiver")
	command.Flags().BoolVar(&flags.Unfreeze, "unfreeze", false, "unfreeze instead of freeze in the last step")
	command.Flags().StringVar(&flags.LogLevel, "log-level", "info", "log level: debug|info|warn|error")

	return command
}

func runDemo(cmd *cobra.Command, flags demoFlags) error {
	logger, err := newLogger(flags.LogLevel)
	if err != nil {
		return err
	}

	funder, err := shared.FunderConfigFromEnvForNetwork(flags.Network)
	if err != nil {
		return err
	}
	if mirrorURL := strings.TrimSpace(flags.MirrorURL); mirrorURL != "" {
		funder.MirrorBaseURL = mirrorURL
	}
	if flags.MaxRounds > 0 {
		funder.MaxRounds = flags.MaxRounds
	}

	client, err := assets.NewClient(assets.ClientConfig{
		FunderAccountID:   funder.AccountID,
		FunderMnemonic:    funder.Mnemonic,
		FunderPrivateKey:  funder.PrivateKey,
		Network:           funder.Network,
		MirrorBaseURL:     funder.MirrorBaseURL,
		MirrorAPIKey:      funder.MirrorAPIKey,
		MaxRounds:         funder.MaxRounds,
		RoundPollInterval: flags.PollInterval,
		Logger:            &logger,
	})
	if err != nil {
		return err
	}
	defer client.HederaClient().Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	report, err := client.RunLifecycle(ctx, assets.LifecycleOptions{
		FundHbar: flags.FundHbar,
		Asset: assets.CreateAssetOptions{
			Name:     flags.AssetName,
			UnitName: flags.UnitName,
			Total:    flags.Total,
			Decimals: flags.Decimals,
		},
		TransferAmount: flags.Amount,
		Unfreeze:       flags.Unfreeze,
		ProgressCallback: func(progress assets.LifecycleProgress) {
			event := logger.Debug().Str("stage", progress.Stage).Int("percent", progress.Percentage)
			if progress.TransactionID != "" {
				event = event.Str("tx", progress.TransactionID)
			}
			event.Msg("progress")
		},
	})
	if err != nil {
		logger.Error().Err(err).Str("state", confirm.StateOf(err).String()).Msg("asset demo failed")
		return err
	}

	printReport(cmd, report)
	printHolding(ctx, cmd, client, report)
	return nil
}

func newLogger(level string) (zerolog.Logger, error) {
	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return zerolog.Logger{}, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger(), nil
}

func printReport(cmd *cobra.Command, report assets.LifecycleReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "creator   %s\n", report.Creator)
	fmt.Fprintf(out, "receiver  %s\n", report.Receiver)
	fmt.Fprintf(out, "asset     %s (%s/%s, total %d, decimals %d)\n",
		report.Asset.TokenID, report.Asset.Name, report.Asset.UnitName, report.Asset.Total, report.Asset.Decimals)
	fmt.Fprintf(out, "opt-in    %s (round %d)\n", report.OptIn.TransactionID, report.OptIn.ConfirmedRound)
	fmt.Fprintf(out, "transfer  %s (round %d)\n", report.Transfer.TransactionID, report.Transfer.ConfirmedRound)
	action := "freeze"
	if !report.Frozen {
		action = "unfreeze"
	}
	fmt.Fprintf(out, "%-9s %s (round %d)\n", action, report.Freeze.TransactionID, report.Freeze.ConfirmedRound)
}

func printHolding(ctx context.Context, cmd *cobra.Command, client *assets.Client, report assets.LifecycleReport) {
	holding, err := client.GetHolding(ctx, report.Receiver.AccountID.String(), report.Asset.TokenID)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "could not read receiver holding: %v\n", err)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "holding   balance %d, frozen %t\n", holding.Balance, holding.Frozen)
}
