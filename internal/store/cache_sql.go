// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-conf-keeper/internal/parser"
	"github.com/MKhiriev/go-conf-keeper/models"
)

const (
	defaultMaxRetries = 3
	defaultRetryBase  = 50 * time.Millisecond
)

// SQLCache stores cached configuration values as JSON rows of the
// config_cache table. It works with any [DB] produced by this package.
type SQLCache struct {
	db         *DB
	now        func() time.Time
	newBackoff func() retry.Backoff
}

// NewSQLCache returns a cache over db. The schema must already be migrated.
func NewSQLCache(db *DB) *SQLCache {
	db.logger.Debug().Str("dialect", db.dialect).Msg("creating sql cache")
	return &SQLCache{
		db:  db,
		now: time.Now,
		newBackoff: func() retry.Backoff {
			return retry.WithMaxRetries(defaultMaxRetries, retry.NewExponential(defaultRetryBase))
		},
	}
}

// Get returns the value stored under key. A missing row is a miss, not an
// error.
func (c *SQLCache) Get(ctx context.Context, key string) (any, bool, error) {
	query, args, err := buildSelectCacheEntryQuery(c.db.placeholder, key)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	if err = c.db.QueryRowContext(ctx, query, args...).Scan(&payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		c.db.logger.Err(err).Str("func", "*SQLCache.Get").Str("key", key).Msg("error selecting cache entry")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	value, err := parser.DecodeJSONBytes([]byte(payload))
	if err != nil {
		c.db.logger.Err(err).Str("func", "*SQLCache.Get").Str("key", key).Msg("error decoding cache entry")
		return nil, false, fmt.Errorf("%w: %w", ErrDecodingValue, err)
	}

	return value, true, nil
}

// Set stores value under key, replacing any previous entry. Retryable
// driver errors are retried with exponential backoff.
func (c *SQLCache) Set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(parser.PreserveFloats(value))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	query, args, err := buildUpsertCacheEntryQuery(c.db.placeholder, models.CacheEntry{
		Key:       key,
		Payload:   payload,
		UpdatedAt: c.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = c.exec(ctx, query, args); err != nil {
		c.db.logger.Err(err).Str("func", "*SQLCache.Set").Str("key", key).Msg("error storing cache entry")
		return err
	}

	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (c *SQLCache) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteCacheEntryQuery(c.db.placeholder, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = c.exec(ctx, query, args); err != nil {
		c.db.logger.Err(err).Str("func", "*SQLCache.Delete").Str("key", key).Msg("error deleting cache entry")
		return err
	}

	return nil
}

// Close closes the underlying database.
func (c *SQLCache) Close() error {
	return c.db.Close()
}

func (c *SQLCache) exec(ctx context.Context, query string, args []any) error {
	attempt := 0
	err := retry.Do(ctx, c.newBackoff(), func(ctx context.Context) error {
		attempt++
		_, err := c.db.ExecContext(ctx, query, args...)
		if err == nil {
			return nil
		}
		if c.db.errorClassificator != nil && c.db.errorClassificator.Classify(err) == Retryable {
			c.db.logger.Warn().Err(err).Int("attempt", attempt).Msg("retryable database error")
			return retry.RetryableError(err)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
