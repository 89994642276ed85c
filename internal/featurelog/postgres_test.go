package featurelog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db, "feature_requests")
	ts := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)

	mock.ExpectExec("INSERT INTO feature_requests").
		WithArgs(ts, "please add dark mode").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = store.Append(context.Background(), Entry{Timestamp: ts, Query: "please add dark mode"})
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_AppendFailureSurfaces(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db, "feature_requests")

	mock.ExpectExec("INSERT INTO feature_requests").
		WillReturnError(errors.New("connection refused"))

	err = store.Append(context.Background(), Entry{Timestamp: time.Now(), Query: "anything"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insert feature request")
}

func TestPostgresStore_DefaultTableName(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := NewPostgresStore(db, "")
	assert.Equal(t, "feature_requests", store.table)
}
