package recovery

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"iris_manager/be/biz/model/dto"
	"iris_manager/be/biz/model/errs"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	c := app.NewContext(0)
	c.SetHandlers(app.HandlersChain{
		New(),
		func(context.Context, *app.RequestContext) { panic("boom") },
	})
	c.Next(context.Background())

	assert.True(t, c.IsAborted())
	assert.Equal(t, http.StatusInternalServerError, c.Response.StatusCode())

	var body dto.CommonResp
	assert.NoError(t, json.Unmarshal(c.Response.Body(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, int(errs.ServerError.Code()), body.Code)
	assert.Equal(t, "boom", body.Details)
}
