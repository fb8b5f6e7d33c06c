package cli

import (
	"errors"
	"fmt"

	"github.com/laundryexpress/pro/internal/domain"
)

func NotFoundError(message string) error {
	return fmt.Errorf("ERROR: NOT_FOUND: %s", message)
}

func ValidationFailedError(message string) error {
	return fmt.Errorf("ERROR: VALIDATION_FAILED: %s", message)
}

func InvalidTransitionError(message string) error {
	return fmt.Errorf("ERROR: INVALID_TRANSITION: %s", message)
}

func InsufficientDataError(message string) error {
	return fmt.Errorf("ERROR: INSUFFICIENT_DATA: %s", message)
}

func AlreadyFinishedError(message string) error {
	return fmt.Errorf("ERROR: ALREADY_FINISHED: %s", message)
}

func InternalError(err error) error {
	return fmt.Errorf("ERROR: unexpected error: %w", err)
}

func mapError(err error) error {
	var domainErr domain.Error
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case domain.ErrorCodeNotFound:
			return NotFoundError(domainErr.Message)
		case domain.ErrorCodeValidationFailed:
			return ValidationFailedError(domainErr.Message)
		case domain.ErrorCodeInvalidTransition:
			return InvalidTransitionError(domainErr.Message)
		case domain.ErrorCodeInsufficientData:
			return InsufficientDataError(domainErr.Message)
		case domain.ErrorCodeAlreadyFinished:
			return AlreadyFinishedError(domainErr.Message)
		default:
			return InternalError(err)
		}
	}
	return InternalError(err)
}
