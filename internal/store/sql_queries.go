// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sort"

	sq "github.com/Masterminds/squirrel"
)

const sessionSlotsTable = "session_slots"

// sqlite uses "?" placeholders
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildLoadSlotsQuery(slots []string) (string, []any, error) {
	return psql.
		Select("slot", "value").
		From(sessionSlotsTable).
		Where(sq.Eq{"slot": slots}).
		ToSql()
}

// buildSaveSlotsQuery upserts all values in one statement. Slots are sorted
// so the generated SQL is stable.
func buildSaveSlotsQuery(values map[string]string) (string, []any, error) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	insert := psql.Insert(sessionSlotsTable).Columns("slot", "value", "updated_at")
	for _, name := range names {
		insert = insert.Values(name, values[name], sq.Expr("CURRENT_TIMESTAMP"))
	}

	return insert.
		Suffix("ON CONFLICT(slot) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteSlotsQuery(slots []string) (string, []any, error) {
	return psql.
		Delete(sessionSlotsTable).
		Where(sq.Eq{"slot": slots}).
		ToSql()
}
