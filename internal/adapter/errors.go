package adapter

import "errors"

var (
	ErrInvalidAddress      = errors.New("invalid adapter http address")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("resource not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected http status")
	ErrDecodingResponse    = errors.New("error decoding response")
)
