package mysql

import (
	"fmt"
	"time"

	"iris_manager/be/biz/config"
	"iris_manager/be/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbConn *gorm.DB

func Init() {
	conf := config.GetMySQLConf()
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.Username, conf.Password, conf.IP, conf.Port, conf.DBName)
	InitWith(mysql.Open(dsn))
}

// InitWith opens the store on any gorm dialector, migrates the schema and
// applies the pool limits from the mysql config section.
func InitWith(dialector gorm.Dialector) {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(gormWriter{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		panic(err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		panic(err)
	}

	conf := config.GetMySQLConf()
	maxOpen := conf.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 10
	}
	maxIdle := conf.MaxIdleConns
	if maxIdle <= 0 || maxIdle > maxOpen {
		maxIdle = maxOpen
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	if conf.ConnMaxLifetimeSec > 0 {
		sqlDB.SetConnMaxLifetime(time.Duration(conf.ConnMaxLifetimeSec) * time.Second)
	}

	if err := db.AutoMigrate(&storage.UserRecord{}, &storage.BookRecord{}); err != nil {
		panic(err)
	}

	hlog.Infof("store ready: dialect=%s max_open_conns=%d", dialector.Name(), maxOpen)
	dbConn = db
}

func GetDbConn() *gorm.DB {
	return dbConn
}

type gormWriter struct{}

func (gormWriter) Printf(format string, args ...interface{}) {
	hlog.Warnf(format, args...)
}
