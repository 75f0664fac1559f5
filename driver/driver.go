package driver

import (
	"database/sql"
	"os"

	"github.com/sirupsen/logrus"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// ConnectDB opens the backing database. STORAGE_DRIVER selects "sqlite"
// (default, embedded single-file store) or "mysql"; STORAGE_DSN overrides
// the connection string.
func ConnectDB() (*sql.DB, string) {
	name := os.Getenv("STORAGE_DRIVER")
	if name == "" {
		name = "sqlite"
	}
	dsn := os.Getenv("STORAGE_DSN")
	if dsn == "" {
		if name == "sqlite" {
			dsn = "file:campus_events.db?cache=shared&mode=rwc"
		} else {
			logrus.Fatal("STORAGE_DSN must be set for the mysql driver")
		}
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to open database")
	}
	if name == "sqlite" {
		// Single writer avoids "database is locked" errors under load.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to database")
	}
	return db, name
}
