package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	ErrUnknownOperation   = errors.New("unknown operation")
	ErrWrongOperandCount  = errors.New("wrong number of operands")
	ErrInvalidAdapterAddr = errors.New("invalid adapter address")
)
