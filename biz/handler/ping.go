package handler

import (
	"context"
	"net/http"
	"time"

	"iris_manager/be/biz/db/mysql"
	"iris_manager/be/biz/db/redis"
	"iris_manager/be/biz/model/dto"
	"iris_manager/be/biz/model/errs"
	"iris_manager/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const pingTimeout = 2 * time.Second

// Ping checks MySQL and Redis
//
//	@Tags		system
//	@Summary	dependency check
//	@Produce	json
//	@Success	200	{object}	dto.CommonResp
//	@Failure	500	{object}	dto.CommonResp
//	@Router		/ping [GET]
func Ping(ctx context.Context, c *app.RequestContext) {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	sqlDB, err := mysql.GetDbConn().DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		hlog.CtxErrorf(ctx, "ping mysql err: %v", err)
		resp.FailResp(c, errs.ServerError.SetErr(err))
		return
	}

	if err := redis.GetRedisClient().Ping(ctx).Err(); err != nil {
		hlog.CtxErrorf(ctx, "ping redis err: %v", err)
		resp.FailResp(c, errs.ServerError.SetErr(err))
		return
	}

	resp.BodyResp(c, http.StatusOK, dto.OK("pong"))
}
