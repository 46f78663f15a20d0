package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db",
		Port:     "5432",
		User:     "shop",
		Password: "secret",
		DBName:   "storefront",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=db port=5432 user=shop password=secret dbname=storefront sslmode=disable",
		cfg.DSN(),
	)
}

func TestOpenGormWrapsExistingConnection(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := OpenGorm(sqlDB)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT 1`).WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
	assert.NoError(t, mock.ExpectationsWereMet())
}
