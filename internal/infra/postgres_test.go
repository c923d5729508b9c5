package infra

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var errCommitRefused = errors.New("commit refused")

// commitRefusingDriver hands out connections whose transactions always fail
// to commit, so the release path can be exercised without a real database.
type commitRefusingDriver struct{}

func (commitRefusingDriver) Open(string) (driver.Conn, error) { return &commitRefusingConn{}, nil }

type commitRefusingConn struct{}

func (*commitRefusingConn) Prepare(string) (driver.Stmt, error) {
	return nil, errors.New("not supported")
}
func (*commitRefusingConn) Close() error              { return nil }
func (*commitRefusingConn) Begin() (driver.Tx, error) { return commitRefusingTx{}, nil }

type commitRefusingTx struct{}

func (commitRefusingTx) Commit() error   { return errCommitRefused }
func (commitRefusingTx) Rollback() error { return nil }

func init() {
	sql.Register("commitrefused", commitRefusingDriver{})
}

func openCommitRefusingDB(t *testing.T) *gorm.DB {
	t.Helper()
	sqlDB, err := sql.Open("commitrefused", "")
	require.NoError(t, err)
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestReleaseTransaction_ReturnsCommitError(t *testing.T) {
	db := openCommitRefusingDB(t)

	tx := StartTransaction(db)
	require.NoError(t, tx.Error)

	err := ReleaseTransaction(tx, nil)
	assert.ErrorIs(t, err, errCommitRefused)
}

func TestReleaseTransaction_PropagatesCallerError(t *testing.T) {
	db := openCommitRefusingDB(t)

	tx := StartTransaction(db)
	require.NoError(t, tx.Error)

	sentinel := errors.New("insert failed")
	assert.ErrorIs(t, ReleaseTransaction(tx, sentinel), sentinel)
}
