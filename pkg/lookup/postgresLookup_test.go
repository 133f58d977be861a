package lookup

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestPostgresLookup_Found(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	lk := &PostgresLookup{db: db}

	rows := sqlmock.NewRows([]string{"transaction_id", "ap_id", "token", "platform", "payload", "retry_cnt"}).
		AddRow("t1", "ap-9", "tok", "fcm", []byte(`{"title":"hello"}`), 1)

	mock.ExpectQuery(`SELECT transaction_id, ap_id, token, platform, payload, retry_cnt FROM push_requests WHERE sns_id=\$1`).
		WithArgs("c1").
		WillReturnRows(rows)

	ctx := context.Background()
	original, err := lk.Lookup(ctx, "c1")
	assert.NoError(t, err)
	assert.Equal(t, "t1", original.TransactionID)
	assert.Equal(t, "ap-9", original.ApID)
	assert.Equal(t, "tok", original.Token)
	assert.Equal(t, "fcm", original.Platform)
	assert.Equal(t, map[string]any{"title": "hello"}, original.Payload)
	assert.Equal(t, 1, original.RetryCount)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLookup_NoRowsIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	lk := &PostgresLookup{db: db}

	mock.ExpectQuery(`SELECT transaction_id, ap_id, token, platform, payload, retry_cnt FROM push_requests WHERE sns_id=\$1`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"transaction_id", "ap_id", "token", "platform", "payload", "retry_cnt"}))

	ctx := context.Background()
	original, err := lk.Lookup(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, original)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLookup_BadPayloadIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	lk := &PostgresLookup{db: db}

	rows := sqlmock.NewRows([]string{"transaction_id", "ap_id", "token", "platform", "payload", "retry_cnt"}).
		AddRow("t1", "ap-9", "tok", "fcm", []byte(`{broken`), 1)

	mock.ExpectQuery(`SELECT transaction_id, ap_id, token, platform, payload, retry_cnt FROM push_requests WHERE sns_id=\$1`).
		WithArgs("c1").
		WillReturnRows(rows)

	ctx := context.Background()
	original, err := lk.Lookup(ctx, "c1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, original)
}
