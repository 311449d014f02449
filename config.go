package bingo

import (
	"context"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// Config carries the connection parameters and the fetch behaviour of the executor.
type Config struct {
	Host     string
	User     string
	Password string
	Name     string

	// CallbackFetch, when set, passes every fetched row through the RowFunc given to Fetcher.Fetch.
	// Otherwise rows are returned as plain column maps and the callback is ignored.
	CallbackFetch bool
}

func DefaultConfig() Config {
	return Config{
		Host: "localhost",
		User: "root",
	}
}

// DSN formats the MySQL data source name for the configuration.
func (c Config) DSN() string {
	mc := mysql.NewConfig()
	mc.User = c.User
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = c.Host
	mc.DBName = c.Name
	mc.Params = map[string]string{"charset": "utf8"}
	return mc.FormatDSN()
}

// Open connects to the MySQL database described by cfg.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, error) {
	return sqlx.ConnectContext(ctx, "mysql", cfg.DSN())
}
