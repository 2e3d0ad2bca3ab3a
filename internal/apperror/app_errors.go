package apperror

import "errors"

var (
	ErrUnknownAction  = errors.New("unknown action")
	ErrInvalidPayload = errors.New("invalid payload")
	ErrRedisAddrEmpty = errors.New("redis address string is empty")
)
