package errs

import (
	"fmt"
	"net/http"
)

// Kind groups biz errors by how the HTTP layer reports them.
type Kind int

const (
	KindNone Kind = iota
	KindValidation
	KindConflict
	KindAuth
	KindStore
	KindThrottle
	KindBlocked
)

func (k Kind) HTTPStatus() int {
	switch k {
	case KindNone:
		return http.StatusOK
	case KindValidation, KindConflict:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindThrottle:
		return http.StatusTooManyRequests
	case KindBlocked:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

type Error interface {
	Error() string
	Code() int32
	Msg() string
	Detail() string
	Kind() Kind
	SetErr(err error) Error
	SetMsg(msg string) Error
}

type bizError struct {
	kind   Kind
	code   int32
	msg    string
	detail string
}

func (bizErr *bizError) Error() string {
	if bizErr.detail != "" {
		return fmt.Sprintf("%d:%s: %s", bizErr.code, bizErr.msg, bizErr.detail)
	}
	return fmt.Sprintf("%d:%s", bizErr.code, bizErr.msg)
}

func (bizErr *bizError) Code() int32 {
	return bizErr.code
}

func (bizErr *bizError) Msg() string {
	return bizErr.msg
}

func (bizErr *bizError) Detail() string {
	return bizErr.detail
}

func (bizErr *bizError) Kind() Kind {
	return bizErr.kind
}

// SetErr keeps the client-facing message and records err as the diagnostic detail.
func (bizErr *bizError) SetErr(err error) Error {
	if err == nil {
		return bizErr
	}
	return &bizError{
		kind:   bizErr.kind,
		code:   bizErr.code,
		msg:    bizErr.msg,
		detail: err.Error(),
	}
}

func (bizErr *bizError) SetMsg(msg string) Error {
	return New(bizErr.kind, bizErr.code, msg)
}

func New(kind Kind, code int32, msg string) Error {
	return &bizError{
		kind: kind,
		code: code,
		msg:  msg,
	}
}

func ErrorEqual(err1, err2 Error) bool {
	// 都为空
	if err1 == nil && err2 == nil {
		return true
	}

	// 只有一个不为空
	if err1 == nil || err2 == nil {
		return false
	}

	// 都不为空
	return err1.Code() == err2.Code()
}

var (
	Success             = New(KindNone, 0, "success")
	ServerError         = New(KindStore, 1_0001, "internal server error")
	ParamError          = New(KindValidation, 1_0002, "param error")
	TooManyRequest      = New(KindThrottle, 1_0004, "too many request")
	RequestBlocked      = New(KindBlocked, 1_0006, "request is blocked")
	InvalidBody         = New(KindValidation, 1_0008, "invalid request body")
	AllocationExhausted = New(KindStore, 1_0009, "employee id allocation exhausted")

	MissingRequiredFields = New(KindValidation, 2_0001, "missing required fields")
	PasswordMismatch      = New(KindValidation, 2_0002, "password mismatch")
	AccountDuplicated     = New(KindConflict, 2_0003, "email or code already exists")
	EmpIDDuplicated       = New(KindConflict, 2_0004, "employee id already exists")
	MissingCredentials    = New(KindValidation, 2_0005, "missing credentials")
	InvalidCredentials    = New(KindAuth, 2_0006, "invalid credentials")
	InvalidPassword       = New(KindAuth, 2_0007, "invalid password")
)
