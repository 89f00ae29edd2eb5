// Package e содержит закрытую таксономию доменных ошибок сервиса.
// Каждая ошибка несёт стабильный числовой код и признак retryable,
// на который клиенты опираются при принятии решения о повторе.
package e

import (
	"errors"
	"fmt"
)

// ErrObjectNotFound — объект отсутствует в хранилище.
// Интерпретация зависит от вызывающей стороны и выполняется в usecase-слое.
var ErrObjectNotFound = fmt.Errorf("object not found")

// Code — стабильный числовой код доменной ошибки.
// Коды 4xxx вызваны клиентом (повтор бесполезен), 5xxx — временным сбоем
// на стороне сервера (повтор допустим).
type Code int32

const (
	CodeInvalidImage            Code = 4001
	CodeImageTooLarge           Code = 4002
	CodeInvalidImageFormat      Code = 4003
	CodeVectorNotFound          Code = 4004
	CodeVectorDimensionMismatch Code = 4005
	CodeInvalidRequest          Code = 4006
	CodeModelNotLoaded          Code = 5001
	CodeInferenceError          Code = 5002
	CodeStorageConnectionError  Code = 5003
	CodeInternalServerError     Code = 5004
	CodeServiceUnavailable      Code = 5005
)

// DomainError — структурированная доменная ошибка.
// Конструируется в точке сбоя и не изменяется при подъёме по стеку:
// более специфичный код никогда не понижается до общего.
type DomainError struct {
	Code      Code
	Message   string
	Retryable bool
	Err       error // исходная причина, может быть nil
}

func (d *DomainError) Error() string {
	if d.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", d.Code, d.Message, d.Err)
	}

	return fmt.Sprintf("[%d] %s", d.Code, d.Message)
}

func (d *DomainError) Unwrap() error {
	return d.Err
}

func newDomainError(code Code, retryable bool, msg string, cause error) *DomainError {
	return &DomainError{
		Code:      code,
		Message:   msg,
		Retryable: retryable,
		Err:       cause,
	}
}

func InvalidImage(msg string, cause error) *DomainError {
	return newDomainError(CodeInvalidImage, false, msg, cause)
}

func ImageTooLarge(msg string) *DomainError {
	return newDomainError(CodeImageTooLarge, false, msg, nil)
}

func InvalidImageFormat(msg string) *DomainError {
	return newDomainError(CodeInvalidImageFormat, false, msg, nil)
}

func VectorNotFound(msg string) *DomainError {
	return newDomainError(CodeVectorNotFound, false, msg, nil)
}

func VectorDimensionMismatch(msg string) *DomainError {
	return newDomainError(CodeVectorDimensionMismatch, false, msg, nil)
}

func InvalidRequest(msg string) *DomainError {
	return newDomainError(CodeInvalidRequest, false, msg, nil)
}

func ModelNotLoaded(msg string, cause error) *DomainError {
	return newDomainError(CodeModelNotLoaded, true, msg, cause)
}

func InferenceError(msg string, cause error) *DomainError {
	return newDomainError(CodeInferenceError, true, msg, cause)
}

func StorageConnectionError(msg string, cause error) *DomainError {
	return newDomainError(CodeStorageConnectionError, true, msg, cause)
}

func InternalServerError(msg string, cause error) *DomainError {
	return newDomainError(CodeInternalServerError, true, msg, cause)
}

func ServiceUnavailable(msg string) *DomainError {
	return newDomainError(CodeServiceUnavailable, true, msg, nil)
}

// From классифицирует произвольную ошибку. DomainError в цепочке причин
// возвращается как есть, всё остальное превращается в InternalServerError.
func From(err error) *DomainError {
	var de *DomainError
	if errors.As(err, &de) {
		return de
	}

	return InternalServerError(fmt.Sprintf("internal error: %v", err), err)
}

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
