package assets

import "fmt"

type AssetError struct {
	Message string
}

func (errorValue AssetError) Error() string {
	return errorValue.Message
}

type ValidationError struct {
	AssetError
	ValidationErrors []string
}

// NewValidationError builds a ValidationError listing each failed check.
func NewValidationError(message string, validationErrors []string) error {
	if len(validationErrors) == 0 {
		return ValidationError{AssetError: AssetError{Message: message}}
	}
	return ValidationError{
		AssetError:       AssetError{Message: fmt.Sprintf("%s: %v", message, validationErrors)},
		ValidationErrors: append([]string{}, validationErrors...),
	}
}

// OperationError reports a failed submission or confirmation. It unwraps to
// the underlying SDK or confirm error.
type OperationError struct {
	AssetError
	Operation     string
	TransactionID string
	Err           error
}

func (errorValue OperationError) Unwrap() error {
	return errorValue.Err
}

func newOperationError(operation string, transactionID string, err error) error {
	message := fmt.Sprintf("%s failed: %v", operation, err)
	if transactionID != "" {
		message = fmt.Sprintf("%s failed (tx %s): %v", operation, transactionID, err)
	}
	return OperationError{
		AssetError:    AssetError{Message: message},
		Operation:     operation,
		TransactionID: transactionID,
		Err:           err,
	}
}
