package trace_info

import (
	"context"
)

// Info is the per-request data every log line of that request carries.
type Info struct {
	LogID    string
	ClientIP string
}

type infoKey struct{}

func WithInfo(ctx context.Context, info Info) context.Context {
	return context.WithValue(ctx, infoKey{}, info)
}

func GetInfo(ctx context.Context) Info {
	if ctx == nil {
		return Info{}
	}
	info, _ := ctx.Value(infoKey{}).(Info)
	return info
}

// WithLogID keeps any client ip already on ctx.
func WithLogID(ctx context.Context, logID string) context.Context {
	info := GetInfo(ctx)
	info.LogID = logID
	return WithInfo(ctx, info)
}

func GetLogID(ctx context.Context) string {
	return GetInfo(ctx).LogID
}
