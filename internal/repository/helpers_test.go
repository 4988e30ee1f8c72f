package repository

import (
	"context"
	"os"
	"testing"

	"github.com/porter-dev/ams-assistant/internal/adapter"
	"github.com/porter-dev/ams-assistant/internal/envconf"
	"github.com/porter-dev/ams-assistant/internal/seed"
	"gorm.io/gorm"
)

type tester struct {
	repo       *Repository
	dbFileName string
	db         *gorm.DB
}

func setupTestEnv(tester *tester, t *testing.T) {
	t.Helper()

	db, err := adapter.New(&envconf.DBConf{
		StoreKind:  envconf.StoreKindSQLite,
		SQLitePath: tester.dbFileName,
	})

	if err != nil {
		t.Fatalf("%v\n", err)
	}

	err = AutoMigrate(db, false)

	if err != nil {
		t.Fatalf("%v\n", err)
	}

	err = SeedIfEmpty(context.Background(), db, seed.Default())

	if err != nil {
		t.Fatalf("%v\n", err)
	}

	tester.db = db
	tester.repo = NewRepository(db)
}

func cleanup(tester *tester, t *testing.T) {
	t.Helper()

	if sqlDB, err := tester.db.DB(); err == nil {
		sqlDB.Close()
	}

	// remove the created file file
	os.Remove(tester.dbFileName)
}
