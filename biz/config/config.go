package config

import (
	"os"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"gopkg.in/yaml.v3"
)

func Init(filepath string) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		panic(err)
	}

	var conf ServiceConf
	if err := yaml.Unmarshal(content, &conf); err != nil {
		panic(err)
	}
	globalConfig = conf

	hlog.Debugf("config debug: %+v", redacted(globalConfig))
}

func GetServerConf() ServerConf {
	return globalConfig.Server
}

func GetMySQLConf() MySQLConf {
	return globalConfig.MySQL
}

func GetRedisConf() RedisConf {
	return globalConfig.Redis
}

func GetCORSConf() CORSConf {
	return globalConfig.CORS
}

func GetRateLimitConf() []RateLimitConf {
	return globalConfig.RateLimit
}

func GetLoggerConf() LoggerConf {
	return globalConfig.Logger
}

func GetLoginProtectionConf() LoginProtectionConf {
	return globalConfig.LoginProtection
}

func GetAccountConf() AccountConf {
	return globalConfig.Account
}

func GetAllocatorConf() AllocatorConf {
	return globalConfig.Allocator
}

var globalConfig ServiceConf

type ServiceConf struct {
	Server          ServerConf          `yaml:"server"`
	MySQL           MySQLConf           `yaml:"mysql"`
	Redis           RedisConf           `yaml:"redis"`
	CORS            CORSConf            `yaml:"cors"`
	RateLimit       []RateLimitConf     `yaml:"rate_limit"`
	Logger          LoggerConf          `yaml:"logger"`
	LoginProtection LoginProtectionConf `yaml:"login_protection"`
	Account         AccountConf         `yaml:"account"`
	Allocator       AllocatorConf       `yaml:"allocator"`
}

type ServerConf struct {
	Addr            string `yaml:"addr"`
	ExitWaitSeconds int    `yaml:"exit_wait_seconds"`
}

type LoginProtectionConf struct {
	WindowSeconds     int `yaml:"window_seconds"`
	Limit             int `yaml:"limit"`
	BlockMinDuration  int `yaml:"block_min_duration"`
	BlockHourDuration int `yaml:"block_hour_duration"`
	LevelDuration     int `yaml:"level_duration"`
}

type MySQLConf struct {
	DBName   string `yaml:"db_name"`
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`

	MaxOpenConns       int `yaml:"max_open_conns"`
	MaxIdleConns       int `yaml:"max_idle_conns"`
	ConnMaxLifetimeSec int `yaml:"conn_max_lifetime_seconds"`
}

type RedisConf struct {
	IP       string `yaml:"ip"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type CORSConf struct {
	AllowOrigins     []string `yaml:"allow_origins"`
	AllowMethods     []string `yaml:"allow_methods"`
	AllowHeaders     []string `yaml:"allow_headers"`
	AllowCredentials bool     `yaml:"allow_credentials"`
	MaxAge           int      `yaml:"max_age"`
}

// RateLimitConf with Path "*" replaces the built-in default rule.
type RateLimitConf struct {
	Path          string `yaml:"path"`
	WindowSeconds int    `yaml:"window_seconds"`
	Limit         int64  `yaml:"limit"`
}

type LoggerConf struct {
	Level      string `yaml:"level"`
	Dir        string `yaml:"dir"`
	FileName   string `yaml:"file_name"`
	MaxSize    int    `yaml:"max_size"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAge     int    `yaml:"max_age"`
	Stdout     bool   `yaml:"stdout"`
}

type AccountConf struct {
	BcryptCost  int    `yaml:"bcrypt_cost"`
	LoginLookup string `yaml:"login_lookup"` // employee_id | record_id
}

type AllocatorConf struct {
	MinEmpID       int64  `yaml:"min_emp_id"`
	MaxEmpID       int64  `yaml:"max_emp_id"`
	MaxAttempts    int    `yaml:"max_attempts"`
	Locker         string `yaml:"locker"` // local | redis
	LockKey        string `yaml:"lock_key"`
	LockTTLMillis  int    `yaml:"lock_ttl_millis"`
	LockWaitMillis int    `yaml:"lock_wait_millis"`
}

func redacted(conf ServiceConf) ServiceConf {
	if conf.MySQL.Password != "" {
		conf.MySQL.Password = "******"
	}
	if conf.Redis.Password != "" {
		conf.Redis.Password = "******"
	}
	return conf
}
