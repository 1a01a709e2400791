// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-sweet-shop/internal/config"
	"github.com/MKhiriev/go-sweet-shop/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSlotRepo(t *testing.T) (*sessionSlotRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &sessionSlotRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

// ── LoadSlots ────────────────────────────────────────────────────────────────

func TestLoadSlots_Success(t *testing.T) {
	repo, mock, db := newTestSlotRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"slot", "value"}).
		AddRow("sweetshop_token", "tok").
		AddRow("sweetshop_user", `{"id":1}`)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT slot, value FROM session_slots WHERE slot IN (?,?)")).
		WithArgs("sweetshop_token", "sweetshop_user").
		WillReturnRows(rows)

	got, err := repo.LoadSlots(context.Background(), "sweetshop_token", "sweetshop_user")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"sweetshop_token": "tok", "sweetshop_user": `{"id":1}`}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSlots_MissingSlotsAreAbsent(t *testing.T) {
	repo, mock, db := newTestSlotRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT slot, value FROM session_slots").
		WillReturnRows(sqlmock.NewRows([]string{"slot", "value"}))

	got, err := repo.LoadSlots(context.Background(), "sweetshop_token")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadSlots_NoSlotsNoQuery(t *testing.T) {
	repo, mock, db := newTestSlotRepo(t)
	defer db.Close()

	got, err := repo.LoadSlots(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSlots_QueryError(t *testing.T) {
	repo, mock, db := newTestSlotRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT slot, value FROM session_slots").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.LoadSlots(context.Background(), "sweetshop_token")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestLoadSlots_ScanError(t *testing.T) {
	repo, mock, db := newTestSlotRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"slot", "value"}).
		AddRow("sweetshop_token", nil)
	mock.ExpectQuery("SELECT slot, value FROM session_slots").WillReturnRows(rows)

	_, err := repo.LoadSlots(context.Background(), "sweetshop_token")
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ── SaveSlots ────────────────────────────────────────────────────────────────

func TestSaveSlots_Success(t *testing.T) {
	repo, mock, db := newTestSlotRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO session_slots").
		WithArgs("sweetshop_token", "tok", "sweetshop_user", `{"id":1}`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := repo.SaveSlots(context.Background(), map[string]string{
		"sweetshop_token": "tok",
		"sweetshop_user":  `{"id":1}`,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSlots_ExecErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestSlotRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO session_slots").WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err := repo.SaveSlots(context.Background(), map[string]string{"sweetshop_token": "tok"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSlots_BeginError(t *testing.T) {
	repo, mock, db := newTestSlotRepo(t)
	defer db.Close()

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := repo.SaveSlots(context.Background(), map[string]string{"sweetshop_token": "tok"})
	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestSaveSlots_CommitError(t *testing.T) {
	repo, mock, db := newTestSlotRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO session_slots").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(errors.New("commit failed"))

	err := repo.SaveSlots(context.Background(), map[string]string{"sweetshop_token": "tok"})
	assert.ErrorIs(t, err, ErrCommitingTransaction)
}

// ── DeleteSlots ──────────────────────────────────────────────────────────────

func TestDeleteSlots_Success(t *testing.T) {
	repo, mock, db := newTestSlotRepo(t)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM session_slots WHERE slot IN (?,?)")).
		WithArgs("sweetshop_token", "sweetshop_user").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteSlots(context.Background(), "sweetshop_token", "sweetshop_user")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSlots_ExecError(t *testing.T) {
	repo, mock, db := newTestSlotRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM session_slots").WillReturnError(errors.New("readonly database"))

	err := repo.DeleteSlots(context.Background(), "sweetshop_token")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

// ── sqlite ───────────────────────────────────────────────────────────────────

func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "nested", "sweetshop.db")

	storages, err := NewClientStorages(config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	ctx := context.Background()
	repo := storages.SessionSlots

	require.NoError(t, repo.SaveSlots(ctx, map[string]string{"sweetshop_token": "t1", "sweetshop_user": "u1"}))
	require.NoError(t, repo.SaveSlots(ctx, map[string]string{"sweetshop_token": "t2"}))

	got, err := repo.LoadSlots(ctx, "sweetshop_token", "sweetshop_user")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"sweetshop_token": "t2", "sweetshop_user": "u1"}, got)

	require.NoError(t, repo.DeleteSlots(ctx, "sweetshop_token", "sweetshop_user"))
	require.NoError(t, repo.DeleteSlots(ctx, "sweetshop_token", "sweetshop_user"))

	got, err = repo.LoadSlots(ctx, "sweetshop_token", "sweetshop_user")
	require.NoError(t, err)
	assert.Empty(t, got)
}
