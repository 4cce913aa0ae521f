package logger

import (
	"context"
	"fmt"
	"io"

	"iris_manager/be/biz/config"
	"iris_manager/be/biz/util/ip"
	"iris_manager/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/sirupsen/logrus"
)

// Init routes hlog through a JSON logrus logger writing to the rotating file.
func Init() {
	conf := config.GetLoggerConf()
	hlog.SetLogger(New(newOutput(conf)))
	hlog.SetLevel(newLevel(conf))
}

// New returns an hlog.FullLogger backed by logrus. Ctx* methods attach the
// request log id.
func New(out io.Writer) hlog.FullLogger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02 15:04:05.000"})
	l.SetLevel(logrus.TraceLevel)
	return &logrusLogger{
		l:    l,
		host: ip.IPv4(),
	}
}

type logrusLogger struct {
	l    *logrus.Logger
	host string
}

func (ll *logrusLogger) entry(ctx context.Context) *logrus.Entry {
	e := logrus.NewEntry(ll.l)
	if ll.host != "" {
		e = e.WithField("host", ll.host)
	}
	info := trace_info.GetInfo(ctx)
	if info.LogID != "" {
		e = e.WithField("log_id", info.LogID)
	}
	if info.ClientIP != "" {
		e = e.WithField("client_ip", info.ClientIP)
	}
	return e
}

func (ll *logrusLogger) log(ctx context.Context, level hlog.Level, msg string) {
	e := ll.entry(ctx)
	switch level {
	case hlog.LevelTrace:
		e.Trace(msg)
	case hlog.LevelDebug:
		e.Debug(msg)
	case hlog.LevelInfo:
		e.Info(msg)
	case hlog.LevelNotice:
		e.WithField("notice", true).Info(msg)
	case hlog.LevelWarn:
		e.Warn(msg)
	case hlog.LevelError:
		e.Error(msg)
	case hlog.LevelFatal:
		e.Fatal(msg)
	}
}

func (ll *logrusLogger) SetLevel(level hlog.Level) {
	switch level {
	case hlog.LevelTrace:
		ll.l.SetLevel(logrus.TraceLevel)
	case hlog.LevelDebug:
		ll.l.SetLevel(logrus.DebugLevel)
	case hlog.LevelInfo, hlog.LevelNotice:
		ll.l.SetLevel(logrus.InfoLevel)
	case hlog.LevelWarn:
		ll.l.SetLevel(logrus.WarnLevel)
	case hlog.LevelError:
		ll.l.SetLevel(logrus.ErrorLevel)
	case hlog.LevelFatal:
		ll.l.SetLevel(logrus.FatalLevel)
	}
}

func (ll *logrusLogger) SetOutput(w io.Writer) {
	ll.l.SetOutput(w)
}

func (ll *logrusLogger) Trace(v ...interface{})  { ll.log(context.Background(), hlog.LevelTrace, fmt.Sprint(v...)) }
func (ll *logrusLogger) Debug(v ...interface{})  { ll.log(context.Background(), hlog.LevelDebug, fmt.Sprint(v...)) }
func (ll *logrusLogger) Info(v ...interface{})   { ll.log(context.Background(), hlog.LevelInfo, fmt.Sprint(v...)) }
func (ll *logrusLogger) Notice(v ...interface{}) { ll.log(context.Background(), hlog.LevelNotice, fmt.Sprint(v...)) }
func (ll *logrusLogger) Warn(v ...interface{})   { ll.log(context.Background(), hlog.LevelWarn, fmt.Sprint(v...)) }
func (ll *logrusLogger) Error(v ...interface{})  { ll.log(context.Background(), hlog.LevelError, fmt.Sprint(v...)) }
func (ll *logrusLogger) Fatal(v ...interface{})  { ll.log(context.Background(), hlog.LevelFatal, fmt.Sprint(v...)) }

func (ll *logrusLogger) Tracef(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelTrace, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) Debugf(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelDebug, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) Infof(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelInfo, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) Noticef(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelNotice, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) Warnf(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelWarn, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) Errorf(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelError, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) Fatalf(format string, v ...interface{}) {
	ll.log(context.Background(), hlog.LevelFatal, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) CtxTracef(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelTrace, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) CtxDebugf(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelDebug, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) CtxInfof(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelInfo, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) CtxNoticef(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelNotice, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) CtxWarnf(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelWarn, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) CtxErrorf(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelError, fmt.Sprintf(format, v...))
}

func (ll *logrusLogger) CtxFatalf(ctx context.Context, format string, v ...interface{}) {
	ll.log(ctx, hlog.LevelFatal, fmt.Sprintf(format, v...))
}
