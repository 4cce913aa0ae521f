package cors

import (
	"slices"
	"time"

	"iris_manager/be/biz/config"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/hertz-contrib/cors"
)

const defaultMaxAge = 12 * time.Hour

var (
	defaultMethods = []string{"GET", "POST", "OPTIONS"}
	defaultHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Log-ID"}
)

// New allows the browser front end to call the API from another origin.
func New() app.HandlerFunc {
	return cors.New(buildConfig(config.GetCORSConf()))
}

func buildConfig(conf config.CORSConf) cors.Config {
	cfg := cors.Config{
		AllowMethods:     orDefault(conf.AllowMethods, defaultMethods),
		AllowHeaders:     orDefault(conf.AllowHeaders, defaultHeaders),
		ExposeHeaders:    []string{"X-Log-ID"},
		AllowCredentials: conf.AllowCredentials,
		MaxAge:           time.Duration(conf.MaxAge) * time.Second,
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = defaultMaxAge
	}

	switch {
	case len(conf.AllowOrigins) == 0:
		// no origins configured: reflect any origin
		cfg.AllowOriginFunc = func(string) bool { return true }
	case slices.Contains(conf.AllowOrigins, "*"):
		// a literal "*" cannot be combined with credentials
		if conf.AllowCredentials {
			cfg.AllowOriginFunc = func(string) bool { return true }
		} else {
			cfg.AllowAllOrigins = true
		}
	default:
		cfg.AllowOrigins = conf.AllowOrigins
	}
	return cfg
}

func orDefault(v, def []string) []string {
	if len(v) == 0 {
		return def
	}
	return v
}
