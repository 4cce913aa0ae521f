package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "deploy.yml")
	if err := os.WriteFile(p, []byte(`server:
  addr: "0.0.0.0:3000"

mysql:
  db_name: "iris_db"
  ip: "127.0.0.1"
  port: 3306
  username: "root"
  password: "secret"
  max_open_conns: 10

redis:
  ip: "127.0.0.1"
  port: 6379
  password: ""
  db: 0

cors:
  allow_origins:
    - "*"
  allow_credentials: false

rate_limit:
  - path: "/login"
    window_seconds: 1
    limit: 5

account:
  bcrypt_cost: 10
  login_lookup: "record_id"

allocator:
  min_emp_id: 1000
  max_emp_id: 99999
  max_attempts: 5
  locker: "redis"
  lock_key: "iris:emp_id_lock"
`), 0600); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	Init(p)
	assert.Equal(t, "0.0.0.0:3000", GetServerConf().Addr)
	assert.Equal(t, "iris_db", GetMySQLConf().DBName)
	assert.Equal(t, 10, GetMySQLConf().MaxOpenConns)
	assert.Equal(t, 6379, GetRedisConf().Port)
	assert.Equal(t, []string{"*"}, GetCORSConf().AllowOrigins)
	if assert.Len(t, GetRateLimitConf(), 1) {
		assert.Equal(t, int64(5), GetRateLimitConf()[0].Limit)
	}
	assert.Equal(t, "record_id", GetAccountConf().LoginLookup)
	assert.Equal(t, "redis", GetAllocatorConf().Locker)
	assert.Equal(t, int64(1000), GetAllocatorConf().MinEmpID)
	assert.Equal(t, int64(99999), GetAllocatorConf().MaxEmpID)
}

func TestInit_ReplacesPreviousConfig(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.yml")
	second := filepath.Join(dir, "second.yml")
	assert.NoError(t, os.WriteFile(first, []byte("account:\n  login_lookup: record_id\n"), 0600))
	assert.NoError(t, os.WriteFile(second, []byte("server:\n  addr: \":8080\"\n"), 0600))

	Init(first)
	Init(second)
	assert.Equal(t, "", GetAccountConf().LoginLookup)
	assert.Equal(t, ":8080", GetServerConf().Addr)
}

func TestInit_MissingFilePanics(t *testing.T) {
	assert.Panics(t, func() { Init(filepath.Join(t.TempDir(), "nope.yml")) })
}

func TestRedacted(t *testing.T) {
	conf := ServiceConf{MySQL: MySQLConf{Password: "pw"}, Redis: RedisConf{Password: "pw"}}
	out := redacted(conf)
	assert.Equal(t, "******", out.MySQL.Password)
	assert.Equal(t, "******", out.Redis.Password)
	assert.Equal(t, "pw", conf.MySQL.Password)
}
