package logger

import (
	"io"
	"os"
	"path/filepath"

	"iris_manager/be/biz/config"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/natefinch/lumberjack.v2"
)

var levels = map[string]hlog.Level{
	"trace":  hlog.LevelTrace,
	"debug":  hlog.LevelDebug,
	"info":   hlog.LevelInfo,
	"notice": hlog.LevelNotice,
	"warn":   hlog.LevelWarn,
	"error":  hlog.LevelError,
	"fatal":  hlog.LevelFatal,
}

// newOutput is a size-rotated file, teed to stdout when logger.stdout is set.
func newOutput(conf config.LoggerConf) io.Writer {
	file := &lumberjack.Logger{
		Filename:   filepath.Join(orString(conf.Dir, "./log"), orString(conf.FileName, "iris.log")),
		MaxSize:    orInt(conf.MaxSize, 512),
		MaxAge:     orInt(conf.MaxAge, 14),
		MaxBackups: orInt(conf.MaxBackups, 10),
		LocalTime:  true,
	}
	if conf.Stdout {
		return io.MultiWriter(file, os.Stdout)
	}
	return file
}

func newLevel(conf config.LoggerConf) hlog.Level {
	if lvl, ok := levels[conf.Level]; ok {
		return lvl
	}
	return hlog.LevelInfo
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
