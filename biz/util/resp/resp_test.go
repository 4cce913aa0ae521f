package resp

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"iris_manager/be/biz/model/dto"
	"iris_manager/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

func decode(t *testing.T, c *app.RequestContext) dto.CommonResp {
	t.Helper()
	var r dto.CommonResp
	assert.NoError(t, json.Unmarshal(c.Response.Body(), &r))
	return r
}

func TestSuccessResp(t *testing.T) {
	c := app.NewContext(0)
	SuccessResp(c, []string{"a"})

	assert.Equal(t, http.StatusOK, c.Response.StatusCode())
	r := decode(t, c)
	assert.True(t, r.Success)
	assert.Equal(t, []any{"a"}, r.Data)
}

func TestFailResp_StatusFollowsKind(t *testing.T) {
	cases := map[errs.Error]int{
		errs.PasswordMismatch:   http.StatusBadRequest,
		errs.AccountDuplicated:  http.StatusBadRequest,
		errs.InvalidCredentials: http.StatusUnauthorized,
		errs.ServerError:        http.StatusInternalServerError,
	}
	for bizErr, status := range cases {
		c := app.NewContext(0)
		FailResp(c, bizErr)
		assert.Equal(t, status, c.Response.StatusCode(), bizErr.Msg())

		r := decode(t, c)
		assert.False(t, r.Success)
		assert.Equal(t, int(bizErr.Code()), r.Code)
		assert.Equal(t, bizErr.Msg(), r.Message)
	}
}

func TestFailResp_Details(t *testing.T) {
	c := app.NewContext(0)
	FailResp(c, errs.ServerError.SetErr(errors.New("connection refused")))

	r := decode(t, c)
	assert.Equal(t, "internal server error", r.Message)
	assert.Equal(t, "connection refused", r.Details)
}

func TestAbortWithErr(t *testing.T) {
	c := app.NewContext(0)
	AbortWithErr(c, errs.InvalidBody, http.StatusBadRequest)

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusBadRequest, c.Response.StatusCode())
	assert.Equal(t, errs.InvalidBody.Msg(), decode(t, c).Message)
}
