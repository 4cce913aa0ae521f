package trace

import (
	"context"

	"iris_manager/be/biz/util/id_gen"
	"iris_manager/be/biz/util/trace_info"

	"github.com/cloudwego/hertz/pkg/app"
)

const HeaderLogID = "X-Log-ID"

// New puts a log id and the client ip on ctx. A caller-supplied X-Log-ID is
// reused so one id can follow a request across services.
func New() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		logID := string(c.GetHeader(HeaderLogID))
		if logID == "" {
			logID = id_gen.NewID()
		}
		// set before Next so aborted responses carry it too
		c.Header(HeaderLogID, logID)

		ctx = trace_info.WithInfo(ctx, trace_info.Info{
			LogID:    logID,
			ClientIP: c.ClientIP(),
		})
		c.Next(ctx)
	}
}
