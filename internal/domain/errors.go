package domain

import (
	"errors"
	"sort"
	"strings"
)

// ErrIllegalState 编程错误：实体或服务未绑定。调用方不应恢复它
var ErrIllegalState = errors.New("illegal state")

// StorageError 包装任意底层存储错误（SQL 语法、连接、约束冲突……）
type StorageError struct {
	Message string
	Err     error
}

func (e *StorageError) Error() string { return e.Message }
func (e *StorageError) Unwrap() error { return e.Err }

func NewStorageError(msg string) *StorageError { return &StorageError{Message: msg} }

// ValidationError 收集全部字段错误；每个字段一条消息
type ValidationError struct {
	Message string
	Errors  map[string]string
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg, Errors: map[string]string{}}
}

// AddError 同一字段只保留第一条
func (e *ValidationError) AddError(field, msg string) {
	if _, ok := e.Errors[field]; ok {
		return
	}
	e.Errors[field] = msg
}

func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Errors))
	for f := range e.Errors {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e.Errors[f])
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}
