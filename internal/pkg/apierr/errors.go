package apierr

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeUpstreamError  = "UPSTREAM_ERROR"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrMissingItemID is returned when neither ?itemId= nor ?id= is given.
	ErrMissingItemID = New(fiber.StatusBadRequest, CodeInvalidRequest, "Missing ?itemId=")

	// ErrInvalidItemID is returned when the item id is not a non-negative integer.
	ErrInvalidItemID = New(fiber.StatusBadRequest, CodeInvalidRequest, "Invalid itemId")

	ErrFetchItemDrops = New(fiber.StatusInternalServerError, CodeUpstreamError, "Failed to fetch item drops")

	ErrNotFound = New(fiber.StatusNotFound, CodeNotFound, "Not Found")

	ErrInternalError = New(fiber.StatusInternalServerError, CodeInternalError, "Internal Server Error")
)

// Error is an error rendered to clients as {"error": Message}.
type Error struct {
	StatusCode int
	ErrorCode  string
	Message    string
}

func New(statusCode int, errorCode string, message string) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e Error) Msg(format string, parts ...any) *Error {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
