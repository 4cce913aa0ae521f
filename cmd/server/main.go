package main

import (
	"flag"

	be "iris_manager/be"
	"iris_manager/be/biz/config"
	"iris_manager/be/biz/db"
	"iris_manager/be/biz/util/logger"
)

//	@title			iris_manager API
//	@version		1.0
//	@description	Account and book API with employee id allocation.
//	@BasePath		/
func main() {
	confPath := flag.String("conf", "conf/deploy.yml", "path to the yaml config")
	flag.Parse()

	config.Init(*confPath)
	logger.Init()
	db.Init()

	h := be.NewEngine()
	h.OnShutdown = append(h.OnShutdown, db.Close)
	h.Spin()
}
