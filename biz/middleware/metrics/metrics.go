package metrics

import (
	"context"
	"strconv"
	"time"

	"iris_manager/be/biz/util/metrics"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// New records request count and latency per registered route.
func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		start := time.Now()
		c.Next(ctx)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := string(c.Method())
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(c.Response.StatusCode())).Inc()
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() app.HandlerFunc {
	return adaptor.HertzHandler(promhttp.Handler())
}
