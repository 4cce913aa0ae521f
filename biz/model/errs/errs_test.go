package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestSetErrKeepsMessage(t *testing.T) {
	err := ServerError.SetErr(errors.New("dial tcp: connection refused"))

	assert.Equal(t, ServerError.Msg(), err.Msg())
	assert.Equal(t, "dial tcp: connection refused", err.Detail())
	assert.Equal(t, KindStore, err.Kind())
	assert.True(t, ErrorEqual(ServerError, err))
	assert.Empty(t, ServerError.Detail(), "shared value must not be mutated")
}

func TestSetMsg(t *testing.T) {
	err := ParamError.SetMsg("email is too long")

	assert.Equal(t, "email is too long", err.Msg())
	assert.Equal(t, ParamError.Code(), err.Code())
	assert.Equal(t, KindValidation, err.Kind())
}

func TestErrorEqual(t *testing.T) {
	assert.True(t, ErrorEqual(nil, nil))
	assert.False(t, ErrorEqual(nil, ServerError))
	assert.False(t, ErrorEqual(InvalidCredentials, InvalidPassword))
	assert.True(t, ErrorEqual(AccountDuplicated, AccountDuplicated.SetErr(errors.New("x"))))
}

func TestKindHTTPStatus(t *testing.T) {
	cases := map[Error]int{
		Success:               http.StatusOK,
		MissingRequiredFields: http.StatusBadRequest,
		PasswordMismatch:      http.StatusBadRequest,
		AccountDuplicated:     http.StatusBadRequest,
		InvalidCredentials:    http.StatusUnauthorized,
		InvalidPassword:       http.StatusUnauthorized,
		ServerError:           http.StatusInternalServerError,
		AllocationExhausted:   http.StatusInternalServerError,
		TooManyRequest:        http.StatusTooManyRequests,
		RequestBlocked:        http.StatusForbidden,
	}
	for bizErr, status := range cases {
		assert.Equal(t, status, bizErr.Kind().HTTPStatus(), bizErr.Msg())
	}
}

func TestIsDuplicatedErr(t *testing.T) {
	assert.False(t, IsDuplicatedErr(nil))
	assert.False(t, IsDuplicatedErr(errors.New("boom")))
	assert.True(t, IsDuplicatedErr(gorm.ErrDuplicatedKey))
	assert.True(t, IsDuplicatedErr(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1062})))
	assert.False(t, IsDuplicatedErr(&mysql.MySQLError{Number: 1045}))
	assert.True(t, IsDuplicatedErr(errors.New("constraint failed: UNIQUE constraint failed: tbl_user.email (2067)")))
}
