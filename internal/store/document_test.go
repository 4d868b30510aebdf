// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 CloudiX Hosting

package store

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudix/coindesk/internal/logger"
)

func newMockDocument(t *testing.T) (Document, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewDocument(db, "user-data", logger.Nop()), mock
}

func TestDocumentGet_Found(t *testing.T) {
	doc, mock := newMockDocument(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM documents WHERE doc = ? AND key = ?")).
		WithArgs("user-data", "record").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`{"coins": 25}`))

	var dest struct {
		Coins int `json:"coins"`
	}
	err := doc.Get(context.Background(), "record", &dest)

	require.NoError(t, err)
	assert.Equal(t, 25, dest.Coins)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentGet_NotFound(t *testing.T) {
	doc, mock := newMockDocument(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM documents WHERE doc = ? AND key = ?")).
		WithArgs("user-data", "missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	var dest any
	err := doc.Get(context.Background(), "missing", &dest)

	assert.ErrorIs(t, err, ErrKeyNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentSet_Upserts(t *testing.T) {
	doc, mock := newMockDocument(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO documents (doc,key,value,updated_at) VALUES (?,?,?,?) ON CONFLICT(doc, key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at")).
		WithArgs("user-data", "theme", `"dark"`, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := doc.Set(context.Background(), "theme", "dark")

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentHas(t *testing.T) {
	doc, mock := newMockDocument(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM documents WHERE doc = ? AND key = ?")).
		WithArgs("user-data", "session").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	ok, err := doc.Has(context.Background(), "session")

	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM documents WHERE doc = ? AND key = ?")).
		WithArgs("user-data", "absent").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	ok, err = doc.Has(context.Background(), "absent")

	require.NoError(t, err)
	assert.False(t, ok)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentDeleteAndClear(t *testing.T) {
	doc, mock := newMockDocument(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM documents WHERE doc = ? AND key = ?")).
		WithArgs("user-data", "session").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, doc.Delete(context.Background(), "session"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM documents WHERE doc = ?")).
		WithArgs("user-data").
		WillReturnResult(sqlmock.NewResult(0, 4))

	require.NoError(t, doc.Clear(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
