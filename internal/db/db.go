package db

import (
	"database/sql"

	"github.com/cyverse-de/dbutil"
	"github.com/pkg/errors"
	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init establishes the database connection and wraps it in GORM with
// OpenTelemetry instrumentation.
func Init(driverName, databaseURI string) (*sql.DB, *gorm.DB, error) {
	wrapMsg := "unable to initialize the database connection"

	connector, err := dbutil.NewDefaultConnector("1m")
	if err != nil {
		return nil, nil, errors.Wrap(err, wrapMsg)
	}

	conn, err := connector.Connect(driverName, databaseURI)
	if err != nil {
		return nil, nil, errors.Wrap(err, wrapMsg)
	}

	gormdb, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}))
	if err != nil {
		return nil, nil, errors.Wrap(err, wrapMsg)
	}

	if err = gormdb.Use(otelgorm.NewPlugin()); err != nil {
		return nil, nil, errors.Wrap(err, wrapMsg)
	}

	return conn, gormdb, nil
}
