package model

import "errors"

var (
	// ErrNotFound is returned when a project, monitor, rule or channel id does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument indicates a malformed request value.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidRange indicates an unsupported metric range.
	ErrInvalidRange = errors.New("invalid range")
)

// 错误码常量
const (
	ErrorCodeNotFound         = "NOT_FOUND"
	ErrorCodeInvalidParameter = "INVALID_PARAMETER"
	ErrorCodeInvalidRange     = "INVALID_RANGE"
	ErrorCodeInternalError    = "INTERNAL_ERROR"
)

// ErrorResponse 错误响应
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail 错误详情
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Parameter string `json:"parameter,omitempty"`
	Value     string `json:"value,omitempty"`
}
