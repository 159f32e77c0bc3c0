package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-conf-keeper/models"
)

const cacheTable = "config_cache"

func buildSelectCacheEntryQuery(format sq.PlaceholderFormat, key string) (string, []any, error) {
	return sq.Select("payload").
		From(cacheTable).
		Where(sq.Eq{"cache_key": key}).
		PlaceholderFormat(format).
		ToSql()
}

// buildUpsertCacheEntryQuery uses ON CONFLICT, understood by both PostgreSQL
// and SQLite 3.24+.
func buildUpsertCacheEntryQuery(format sq.PlaceholderFormat, entry models.CacheEntry) (string, []any, error) {
	return sq.Insert(cacheTable).
		Columns("cache_key", "payload", "updated_at").
		Values(entry.Key, string(entry.Payload), entry.UpdatedAt).
		Suffix("ON CONFLICT (cache_key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		PlaceholderFormat(format).
		ToSql()
}

func buildDeleteCacheEntryQuery(format sq.PlaceholderFormat, key string) (string, []any, error) {
	return sq.Delete(cacheTable).
		Where(sq.Eq{"cache_key": key}).
		PlaceholderFormat(format).
		ToSql()
}
