package assets

import (
	"math"
	"strings"

	hedera "github.com/hashgraph/hedera-sdk-go/v2"
)

// ValidateAssetCreateTxParams checks the fields the network would otherwise
// reject at precheck.
func ValidateAssetCreateTxParams(params AssetCreateTxParams) error {
	errors := make([]string, 0)

	name := strings.TrimSpace(params.Name)
	switch {
	case name == "":
		errors = append(errors, "asset name is required")
	case len(name) > MaxNameLength:
		errors = append(errors, "asset name exceeds 100 bytes")
	}

	unitName := strings.TrimSpace(params.UnitName)
	switch {
	case unitName == "":
		errors = append(errors, "unit name is required")
	case len(unitName) > MaxUnitNameLength:
		errors = append(errors, "unit name exceeds 100 bytes")
	}

	if params.Total == 0 {
		errors = append(errors, "total must be greater than zero")
	}
	if params.Total > math.MaxInt64 {
		errors = append(errors, "total exceeds the maximum token supply")
	}
	if params.Decimals > MaxDecimals {
		errors = append(errors, "decimals must be at most 18")
	}
	if len(strings.TrimSpace(params.Memo)) > MaxMemoLength {
		errors = append(errors, "memo exceeds 100 bytes")
	}
	if params.TreasuryAccountID == (hedera.AccountID{}) {
		errors = append(errors, "treasury account ID is required")
	}
	if params.ManagerKey == nil {
		errors = append(errors, "manager key is required")
	}

	if len(errors) > 0 {
		return NewValidationError("invalid asset create parameters", errors)
	}
	return nil
}

func parseAccountID(field string, value string) (hedera.AccountID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return hedera.AccountID{}, NewValidationError(field+" is required", nil)
	}
	accountID, err := hedera.AccountIDFromString(trimmed)
	if err != nil {
		return hedera.AccountID{}, NewValidationError("invalid "+field, []string{err.Error()})
	}
	return accountID, nil
}

func parseTokenID(value string) (hedera.TokenID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return hedera.TokenID{}, NewValidationError("token ID is required", nil)
	}
	tokenID, err := hedera.TokenIDFromString(trimmed)
	if err != nil {
		return hedera.TokenID{}, NewValidationError("invalid token ID", []string{err.Error()})
	}
	return tokenID, nil
}

func requireFunded(role string, account Account) error {
	if !account.Funded() {
		return NewValidationError(role+" account has not been funded", nil)
	}
	if account.PublicKey.String() == "" {
		return NewValidationError(role+" key pair is required", nil)
	}
	return nil
}
