package middleware

import (
	"iris_manager/be/biz/middleware/accesslog"
	"iris_manager/be/biz/middleware/cors"
	"iris_manager/be/biz/middleware/metrics"
	"iris_manager/be/biz/middleware/ratelimit"
	"iris_manager/be/biz/middleware/recovery"
	"iris_manager/be/biz/middleware/trace"

	"github.com/cloudwego/hertz/pkg/app"
)

func Suite() []app.HandlerFunc {
	return []app.HandlerFunc{
		metrics.New(),   // prometheus, outermost so recovered panics are counted
		recovery.New(),  // panic handler
		trace.New(),     // log id
		accesslog.New(), // access log
		cors.New(),      // cross-origin
		ratelimit.New(), // per-ip rate limit
	}
}
