package accesslog

import (
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/logger/accesslog"
)

// format never includes the body: create-account and login carry passwords.
const format = "${status} ${latency} ${method} ${path} ${queryParams} ip=${ip} bytes=${bytesSent}"

// New writes one line per request through hlog, so it carries the log id.
func New() app.HandlerFunc {
	return accesslog.New(
		accesslog.WithAccessLogFunc(hlog.CtxInfof),
		accesslog.WithFormat(format),
	)
}
