package app

import (
	"strings"

	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/store"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/store/postgres"
	"github.com/6rayWa1cher/course-journal-backend-sub001/internal/store/sqlite"
)

func NewStore(dsn string) (store.JournalStore, error) {
	config := store.DBConfig{DSN: dsn, Type: store.DBTypeSQLite}
	if strings.HasPrefix(dsn, "postgres") {
		config.Type = store.DBTypePostgres
	}

	switch config.Type {
	case store.DBTypePostgres:
		return postgres.NewPostgresStore(config.DSN)
	default:
		return sqlite.NewSQLiteStore(config.DSN)
	}
}
