package store

import (
	sq "github.com/Masterminds/squirrel"
)

// statements builds the three queries shared by the SQL stores. Only the
// placeholder format differs between Postgres and SQLite.
type statements struct {
	sb sq.StatementBuilderType
}

func newStatements(format sq.PlaceholderFormat) statements {
	return statements{sb: sq.StatementBuilder.PlaceholderFormat(format)}
}

func (s statements) load(key string) (string, []any, error) {
	return s.sb.Select("value").
		From(tableName).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

func (s statements) save(key string, data []byte) (string, []any, error) {
	return s.sb.Insert(tableName).
		Columns("key", "value", "updated_at").
		Values(key, data, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func (s statements) remove(key string) (string, []any, error) {
	return s.sb.Delete(tableName).
		Where(sq.Eq{"key": key}).
		ToSql()
}
