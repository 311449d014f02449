package bingo

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, "root", cfg.User)
	assert.Empty(t, cfg.Password)
	assert.Empty(t, cfg.Name)
	assert.False(t, cfg.CallbackFetch)
}

func TestConfigDSN(t *testing.T) {
	cfg := Config{Host: "db.local:3306", User: "blog", Password: "s3cret", Name: "posts"}

	parsed, err := mysql.ParseDSN(cfg.DSN())
	assert.NoError(t, err)
	assert.Equal(t, "blog", parsed.User)
	assert.Equal(t, "s3cret", parsed.Passwd)
	assert.Equal(t, "tcp", parsed.Net)
	assert.Equal(t, "db.local:3306", parsed.Addr)
	assert.Equal(t, "posts", parsed.DBName)
	assert.Contains(t, cfg.DSN(), "charset=utf8")
}
