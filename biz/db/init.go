package db

import (
	"context"

	"iris_manager/be/biz/db/mysql"
	"iris_manager/be/biz/db/redis"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func Init() {
	mysql.Init()
	redis.Init()
}

// Close releases the pools. It is registered as a hertz shutdown hook.
func Close(ctx context.Context) {
	if conn := mysql.GetDbConn(); conn != nil {
		if sqlDB, err := conn.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				hlog.CtxErrorf(ctx, "close mysql err: %v", err)
			}
		}
	}
	if rdb := redis.GetRedisClient(); rdb != nil {
		if err := rdb.Close(); err != nil {
			hlog.CtxErrorf(ctx, "close redis err: %v", err)
		}
	}
}
