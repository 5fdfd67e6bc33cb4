package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrInvalidQuantity
	ErrNegativeResult
	ErrInsufficientStock
	ErrInvalidTransition
	ErrExpired
	ErrOrphanedVariant
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:           "success",
	ErrInternal:          "error internal",
	ErrNotFound:          "data not found",
	ErrInvalidRequest:    "invalid request",
	ErrUnauthorize:       "unauthorize request",
	ErrInvalidQuantity:   "quantity must not be negative",
	ErrNegativeResult:    "adjustment would drive assigned stock below zero",
	ErrInsufficientStock: "insufficient stock available",
	ErrInvalidTransition: "reservation is already in a terminal state",
	ErrExpired:           "reservation has expired",
	ErrOrphanedVariant:   "variant is not resolvable in any catalog table",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:           http.StatusOK,
	ErrInternal:          http.StatusInternalServerError,
	ErrNotFound:          http.StatusBadRequest,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrUnauthorize:       http.StatusUnauthorized,
	ErrInvalidQuantity:   http.StatusBadRequest,
	ErrNegativeResult:    http.StatusConflict,
	ErrInsufficientStock: http.StatusConflict,
	ErrInvalidTransition: http.StatusConflict,
	ErrExpired:           http.StatusConflict,
	ErrOrphanedVariant:   http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:           "0000",
	ErrInternal:          "0001",
	ErrNotFound:          "0002",
	ErrInvalidRequest:    "0003",
	ErrUnauthorize:       "0004",
	ErrInvalidQuantity:   "0005",
	ErrNegativeResult:    "0006",
	ErrInsufficientStock: "0007",
	ErrInvalidTransition: "0008",
	ErrExpired:           "0009",
	ErrOrphanedVariant:   "0010",
}
