package main

import (
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"xidach-server/internal/config"
	"xidach-server/pkg/db"
)

func main() {
	dbh := waitForDB()

	cfg := config.Instance()
	if err := db.Migrate(dbh, cfg.Database.Driver, cfg.MigrationsPath); err != nil {
		logrus.WithError(err).Fatal("could not run migrations")
	}

	logrus.WithField("driver", cfg.Database.Driver).Info("migrations complete")
}

func waitForDB() *sql.DB {
	timeout := time.NewTimer(time.Second * 10)
	for {
		select {
		case <-timeout.C:
			logrus.Fatal("could not connect to database")
		default:
			dbh := func() *sql.DB {
				defer func() { _ = recover() }()
				return db.Instance()
			}()

			if dbh != nil {
				return dbh
			}

			time.Sleep(time.Millisecond * 500)
		}
	}
}
