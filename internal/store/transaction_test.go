package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestRunInTransactionWithOptions_CommitsOnSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM tasks").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := RunInTransactionWithOptions(context.Background(), db, nil, func(ctx context.Context, tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = $1", 1)
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransactionWithOptions_RollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	fnErr := errors.New("count failed")
	err := RunInTransactionWithOptions(context.Background(), db, nil, func(ctx context.Context, tx *sql.Tx) error {
		return fnErr
	})

	assert.Equal(t, fnErr, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTransactionWithOptions_Failures(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name        string
		setup       func(mock sqlmock.Sqlmock)
		fnErr       error
		wantContain []string
		wantIs      []error
	}{
		{
			name: "begin fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin().WillReturnError(boom)
			},
			wantContain: []string{"failed to begin transaction"},
			wantIs:      []error{boom},
		},
		{
			name: "commit fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectCommit().WillReturnError(boom)
			},
			wantContain: []string{"failed to commit transaction"},
			wantIs:      []error{boom, ErrTransactionFailed},
		},
		{
			name: "rollback fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectRollback().WillReturnError(errors.New("rollback failed"))
			},
			fnErr:       boom,
			wantContain: []string{"error rolling back transaction", "rollback failed", "original error"},
			wantIs:      []error{boom},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tc.setup(mock)

			err := RunInTransactionWithOptions(context.Background(), db, nil, func(ctx context.Context, tx *sql.Tx) error {
				return tc.fnErr
			})

			require.Error(t, err)
			for _, s := range tc.wantContain {
				assert.Contains(t, err.Error(), s)
			}
			for _, target := range tc.wantIs {
				assert.ErrorIs(t, err, target)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunInTransactionWithOptions_PanicRollsBackAndRepanics(t *testing.T) {
	for _, rollbackErr := range []error{nil, errors.New("rollback failed")} {
		db, mock := newMockDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback().WillReturnError(rollbackErr)

		assert.PanicsWithValue(t, "test panic", func() {
			_ = RunInTransactionWithOptions(context.Background(), db, nil, func(ctx context.Context, tx *sql.Tx) error {
				panic("test panic")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	}
}

func TestRunInTransactionWithOptions_ReadOnly(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM tasks`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectCommit()

	var count int
	err := RunInTransactionWithOptions(context.Background(), db, ReadOnlySnapshot,
		func(ctx context.Context, tx *sql.Tx) error {
			return tx.QueryRowContext(ctx, "SELECT count(*) FROM tasks").Scan(&count)
		})

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
