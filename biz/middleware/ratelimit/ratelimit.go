package ratelimit

import (
	"context"

	"iris_manager/be/biz/config"
	"iris_manager/be/biz/model/errs"
	"iris_manager/be/biz/util/interceptor"
	"iris_manager/be/biz/util/metrics"
	"iris_manager/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// DefaultPath names the rule used for paths without their own entry.
const DefaultPath = "*"

// New limits requests per client ip and path with a Redis fixed window.
// Redis errors let the request through.
func New() app.HandlerFunc {
	rules := make(map[string]*interceptor.Interceptor)
	defaultRule := interceptor.NewInterceptor(1, 2)

	for _, conf := range config.GetRateLimitConf() {
		if conf.Path == "" || conf.WindowSeconds <= 0 || conf.Limit <= 0 {
			hlog.Warnf("skip invalid rate limit rule: %+v", conf)
			continue
		}
		r := interceptor.NewInterceptor(conf.WindowSeconds, conf.Limit)
		if conf.Path == DefaultPath {
			defaultRule = r
			continue
		}
		rules[conf.Path] = r
	}

	return func(ctx context.Context, c *app.RequestContext) {
		path := string(c.Request.URI().Path())

		r, ok := rules[path]
		if !ok {
			r = defaultRule
		}

		key := "ip:" + c.ClientIP() + ":" + path
		allowed, err := r.Allow(ctx, key)
		if err != nil {
			hlog.CtxErrorf(ctx, "rate limit err for key %s: %v", key, err)
			c.Next(ctx)
			return
		}

		if !allowed {
			hlog.CtxNoticef(ctx, "rate limited: %s", key)
			metrics.RateLimitedTotal.WithLabelValues(path).Inc()
			resp.AbortWithErr(c, errs.TooManyRequest, consts.StatusTooManyRequests)
			return
		}

		c.Next(ctx)
	}
}
