package adapter

import "errors"

var (
	ErrInvalidAddress      = errors.New("invalid cache service address")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("cache service internal error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("cache service unavailable")
	ErrDecodingResponse    = errors.New("error decoding cache service response")
)
