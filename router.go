package be

import (
	"time"

	"iris_manager/be/biz/config"
	"iris_manager/be/biz/handler"
	"iris_manager/be/biz/middleware"
	"iris_manager/be/biz/middleware/metrics"
	"iris_manager/be/biz/middleware/security"
	_ "iris_manager/be/docs"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/hertz-contrib/swagger"
	swaggerFiles "github.com/swaggo/files"
)

const defaultAddr = "0.0.0.0:3000"

// NewEngine builds the server from the loaded config. Stores must be
// initialized before the first request.
func NewEngine() *server.Hertz {
	conf := config.GetServerConf()
	addr := conf.Addr
	if addr == "" {
		addr = defaultAddr
	}
	exitWait := time.Duration(conf.ExitWaitSeconds) * time.Second
	if exitWait <= 0 {
		exitWait = 5 * time.Second
	}

	h := server.New(
		server.WithHostPorts(addr),
		server.WithExitWaitTime(exitWait),
	)
	register(h)
	return h
}

func register(h *server.Hertz) {
	h.Use(middleware.Suite()...)

	h.GET("/", handler.Index)
	h.GET("/ping", handler.Ping)
	h.GET("/metrics", metrics.Handler())
	h.GET("/swagger/*any", swagger.WrapHandler(swaggerFiles.Handler, swagger.URL("/swagger/doc.json")))

	h.POST("/create-account", handler.CreateAccount)
	h.POST("/login", security.NewLoginProtection(), handler.Login)
	h.GET("/users", handler.ListUsers)

	h.POST("/add-book", handler.AddBook)
	h.GET("/books", handler.ListBooks)
}
