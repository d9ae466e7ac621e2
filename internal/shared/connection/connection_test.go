package connection_test

import (
	"regexp"
	"testing"

	"go-payroll/internal/shared/connection"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ledgerRow struct {
	ID   int64
	Note string
}

func TestUseTx_QueriesRideCallerTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	assert.NoError(t, err)

	// Urutan expectation ini hanya terpenuhi kalau delete-nya jalan di
	// transaksi caller; di luar transaksi, gorm membuka transaksi
	// default sendiri dan Begin keduanya bikin mock gagal.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "ledger_rows"`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := db.Begin()
	assert.NoError(t, err)

	err = connection.UseTx(gormDB, tx).Where("id = ?", int64(1)).Delete(&ledgerRow{}).Error
	assert.NoError(t, err)

	assert.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}
