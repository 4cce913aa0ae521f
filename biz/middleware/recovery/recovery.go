package recovery

import (
	"context"
	"fmt"
	"net/http"

	"iris_manager/be/biz/model/errs"
	"iris_manager/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func New() app.HandlerFunc {
	return recovery.Recovery(recovery.WithRecoveryHandler(handle))
}

// handle logs the stack and answers with a plain internal error, no stack in the body.
func handle(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
	hlog.CtxErrorf(ctx, "[Recovery] panic recovered: %v\n%s", err, stack)
	resp.AbortWithErr(c, errs.ServerError.SetErr(fmt.Errorf("%v", err)), http.StatusInternalServerError)
}
