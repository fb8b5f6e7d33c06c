package domain

import "fmt"

type ErrorCode int64

const (
	ErrorCodeNotFound          ErrorCode = 1
	ErrorCodeValidationFailed  ErrorCode = 2
	ErrorCodeInvalidTransition ErrorCode = 3
	ErrorCodeInsufficientData  ErrorCode = 4
	ErrorCodeAlreadyFinished   ErrorCode = 5
)

type Error struct {
	Code    ErrorCode
	Message string
}

func (e Error) Error() string {
	return e.Message
}

func EntityNotFoundError(entityName, entityID string) error {
	return Error{
		Code:    ErrorCodeNotFound,
		Message: fmt.Sprintf("Entity %q with ID %s not found", entityName, entityID),
	}
}

func ValidationFailedError(message string) error {
	return Error{
		Code:    ErrorCodeValidationFailed,
		Message: message,
	}
}

func InvalidTransitionError(orderID uint64, status string) error {
	return Error{
		Code:    ErrorCodeInvalidTransition,
		Message: fmt.Sprintf("Order %d is already %s and cannot change status", orderID, status),
	}
}

func InsufficientDataError(message string) error {
	return Error{
		Code:    ErrorCodeInsufficientData,
		Message: message,
	}
}

func AlreadyFinishedError(orderID uint64, status string) error {
	return Error{
		Code:    ErrorCodeAlreadyFinished,
		Message: fmt.Sprintf("Order %d is already %s, nothing left to estimate", orderID, status),
	}
}
