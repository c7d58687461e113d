package database

import (
	"fmt"
	"net"
	"strings"
	"time"

	"hajj-guide/config"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// NewDialector builds the gorm dialector for the configured driver.
func NewDialector(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.Open(postgresDSN(cfg)), nil
	case config.DriverMySQL:
		dsn, err := mysqlDSN(cfg)
		if err != nil {
			return nil, err
		}
		return mysql.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(sqliteDSN(cfg)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func postgresDSN(cfg config.DBConfig) string {
	if cfg.URL != "" {
		return cfg.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=Asia/Riyadh",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)
}

// mysqlDSN sets clientFoundRows so an UPDATE that rewrites identical values
// still reports the matched row as affected. A configured URL keeps its other
// settings.
func mysqlDSN(cfg config.DBConfig) (string, error) {
	if cfg.URL != "" {
		my, err := mysqldriver.ParseDSN(cfg.URL)
		if err != nil {
			return "", fmt.Errorf("invalid mysql DB_URL: %w", err)
		}
		my.ClientFoundRows = true
		return my.FormatDSN(), nil
	}
	my := mysqldriver.NewConfig()
	my.User = cfg.User
	my.Passwd = cfg.Password
	my.Net = "tcp"
	my.Addr = net.JoinHostPort(cfg.Host, cfg.Port)
	my.DBName = cfg.Name
	my.ParseTime = true
	my.Loc = time.UTC
	my.ClientFoundRows = true
	my.Params = map[string]string{"charset": "utf8mb4"}
	return my.FormatDSN(), nil
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off by
// default, and makes writers wait on a locked database instead of failing
// with SQLITE_BUSY. Pragmas already present in the DSN are left alone.
func sqliteDSN(cfg config.DBConfig) string {
	dsn := cfg.URL
	if dsn == "" {
		dsn = cfg.Name
	}
	for _, pragma := range []struct{ name, value string }{
		{"busy_timeout", "busy_timeout(5000)"},
		{"foreign_keys", "foreign_keys(1)"},
	} {
		if strings.Contains(dsn, pragma.name) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=" + pragma.value
	}
	return dsn
}

// isMemorySQLite reports whether every connection would open its own private
// in-memory database.
func isMemorySQLite(cfg config.DBConfig) bool {
	if cfg.Driver != config.DriverSQLite {
		return false
	}
	dsn := cfg.URL
	if dsn == "" {
		dsn = cfg.Name
	}
	return strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory")
}
