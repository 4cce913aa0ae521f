package security

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"iris_manager/be/biz/config"
	"iris_manager/be/biz/db/redis"
	"iris_manager/be/biz/model/dto"
	"iris_manager/be/biz/model/errs"
	"iris_manager/be/biz/util/interceptor"
	"iris_manager/be/biz/util/metrics"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	keyLoginBlockHour   = "login_block_h:"
	keyLoginBlockMinute = "login_block_m:"
	keyLoginFailLvl     = "login_fail_level:"
	keyLoginFail        = "login_fail:"
)

// NewLoginProtection blocks a client ip after repeated failed logins.
// The first trip blocks for minutes and marks the ip; tripping again while
// marked blocks for hours. Only credential failures count, and a successful
// login clears the failure counter.
func NewLoginProtection() app.HandlerFunc {
	conf := config.GetLoginProtectionConf()

	window := conf.WindowSeconds
	if window <= 0 {
		window = 300
	}

	limit := conf.Limit
	if limit <= 0 {
		limit = 3
	}

	durationBlockMin := time.Duration(conf.BlockMinDuration) * time.Minute
	if durationBlockMin <= 0 {
		durationBlockMin = 5 * time.Minute
	}

	durationBlockHour := time.Duration(conf.BlockHourDuration) * time.Hour
	if durationBlockHour <= 0 {
		durationBlockHour = 24 * time.Hour
	}

	durationFailLvl := time.Duration(conf.LevelDuration) * time.Second
	if durationFailLvl <= 0 {
		durationFailLvl = 30 * time.Minute
	}

	// Allow denies once current > limit; the block must start on the Nth failure.
	failInterceptor := interceptor.NewInterceptor(window, int64(limit-1))

	return func(ctx context.Context, c *app.RequestContext) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}

		rdb := redis.GetRedisClient()

		if n, _ := rdb.Exists(ctx, interceptor.Key(keyLoginBlockHour+ip)).Result(); n > 0 {
			abortBlocked(c, fmt.Sprintf("Too many login failures, please try again after %v hours", durationBlockHour.Hours()))
			return
		}

		if n, _ := rdb.Exists(ctx, interceptor.Key(keyLoginBlockMinute+ip)).Result(); n > 0 {
			abortBlocked(c, fmt.Sprintf("Too many login failures, please try again after %v minutes", durationBlockMin.Minutes()))
			return
		}

		c.Next(ctx)

		var resp dto.CommonResp
		if err := json.Unmarshal(c.Response.Body(), &resp); err != nil {
			hlog.CtxErrorf(ctx, "parse login response in LoginProtection err: %v", err)
			return
		}

		if resp.Success {
			if err := failInterceptor.Reset(ctx, keyLoginFail+ip); err != nil {
				hlog.CtxErrorf(ctx, "reset login failures err: %v", err)
			}
			return
		}

		switch int32(resp.Code) {
		case errs.InvalidCredentials.Code(), errs.InvalidPassword.Code():
		default:
			// validation and server errors are not guesses
			return
		}

		allowed, err := failInterceptor.Allow(ctx, keyLoginFail+ip)
		if err != nil {
			hlog.CtxErrorf(ctx, "FailInterceptor err: %v", err)
			return
		}
		if allowed {
			return
		}

		lvlExists, _ := rdb.Exists(ctx, interceptor.Key(keyLoginFailLvl+ip)).Result()
		if lvlExists > 0 {
			rdb.Set(ctx, interceptor.Key(keyLoginBlockHour+ip), "1", durationBlockHour)
			metrics.LoginBlocksTotal.WithLabelValues("hour").Inc()
			hlog.CtxWarnf(ctx, "login protection: ip %s blocked for %v (level 2)", ip, durationBlockHour)
			return
		}

		pipe := rdb.Pipeline()
		pipe.Set(ctx, interceptor.Key(keyLoginBlockMinute+ip), "1", durationBlockMin)
		pipe.Set(ctx, interceptor.Key(keyLoginFailLvl+ip), "1", durationFailLvl)
		if _, err := pipe.Exec(ctx); err != nil {
			hlog.CtxErrorf(ctx, "set login block keys err: %v", err)
		}
		metrics.LoginBlocksTotal.WithLabelValues("minute").Inc()
		hlog.CtxWarnf(ctx, "login protection: ip %s blocked for %v (level 1)", ip, durationBlockMin)
	}
}

func abortBlocked(c *app.RequestContext, msg string) {
	c.AbortWithStatusJSON(http.StatusForbidden, dto.CommonResp{
		Success: false,
		Code:    int(errs.RequestBlocked.Code()),
		Message: msg,
	})
}
