package adapter

import (
	"fmt"

	"github.com/porter-dev/ams-assistant/internal/envconf"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// New opens the SQL database selected by conf.StoreKind.
func New(conf *envconf.DBConf) (*gorm.DB, error) {
	gormConf := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	}

	switch conf.StoreKind {
	case envconf.StoreKindSQLite:
		return gorm.Open(sqlite.Open(conf.SQLitePath), gormConf)
	case envconf.StoreKindPostgres:
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s port=%d dbname=%s sslmode=%s",
			conf.DBHost,
			conf.DBUser,
			conf.DBPass,
			conf.DBPort,
			conf.DBName,
			conf.DBSSLMode,
		)

		return gorm.Open(postgres.Open(dsn), gormConf)
	}

	return nil, fmt.Errorf("unsupported store kind %q", conf.StoreKind)
}
