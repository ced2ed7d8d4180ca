// Package localstore is a catalog.Store backed by an embedded BadgerDB.
//
// It serves the same key layout as the DynamoDB tables (see package keys) and
// is meant for local development and tests: the movie and cast data come from
// a YAML fixture file rather than from provisioned tables.
package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/jacentio/moviecast/catalog"
	"github.com/jacentio/moviecast/internal/keys"
)

// Options configures the local store.
type Options struct {
	// Path is the database directory. Empty opens an in-memory database.
	Path string

	// PageSize caps the number of items a single read returns, mimicking a
	// store page. Zero means unlimited.
	PageSize int

	// Logger receives badger's own log output. Nil discards it.
	Logger *slog.Logger
}

// Store is a catalog.Store over BadgerDB.
type Store struct {
	db       *badger.DB
	pageSize int
}

var _ catalog.Store = (*Store)(nil)

// Open opens (or creates) a local store.
func Open(opts Options) (*Store, error) {
	badgerOpts := badger.DefaultOptions(opts.Path)
	if opts.Path == "" {
		badgerOpts = badgerOpts.WithInMemory(true)
	}
	if opts.Logger != nil {
		badgerOpts = badgerOpts.WithLogger(newBadgerLogger(opts.Logger))
	} else {
		badgerOpts = badgerOpts.WithLogger(nil)
	}

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("localstore: open badger db: %w", err)
	}
	return &Store{db: db, pageSize: opts.PageSize}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// PutMovie writes a movie, replacing any movie with the same id.
func (s *Store) PutMovie(ctx context.Context, m catalog.Movie) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	val, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("localstore: encode movie %d: %w", m.ID, err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(keys.Movie(m.ID), val)
	})
}

// PutCast writes a cast member to the primary and role keyspaces in one
// transaction, dropping the role entry of any member it replaces.
func (s *Store) PutCast(ctx context.Context, c catalog.CastMember) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !keys.ValidName(c.ActorName) || !keys.ValidName(c.RoleName) {
		return fmt.Errorf("localstore: cast member %d/%q: name contains NUL", c.MovieID, c.ActorName)
	}
	val, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("localstore: encode cast member %d/%q: %w", c.MovieID, c.ActorName, err)
	}

	actorKey := keys.Actor(c.MovieID, c.ActorName)
	return s.db.Update(func(txn *badger.Txn) error {
		prev, err := getCastMember(txn, actorKey)
		switch {
		case err == nil:
			if err := txn.Delete(keys.Role(prev.MovieID, prev.RoleName, prev.ActorName)); err != nil {
				return err
			}
		case !errors.Is(err, badger.ErrKeyNotFound):
			return err
		}

		if err := txn.Set(actorKey, val); err != nil {
			return err
		}
		return txn.Set(keys.Role(c.MovieID, c.RoleName, c.ActorName), val)
	})
}

// ScanMovies returns movies in id order, up to one page.
func (s *Store) ScanMovies(ctx context.Context) ([]catalog.Movie, error) {
	movies := []catalog.Movie{}
	err := s.scan(ctx, keys.Movies(), func(val []byte) error {
		var m catalog.Movie
		if err := json.Unmarshal(val, &m); err != nil {
			return fmt.Errorf("decode movie: %w", err)
		}
		movies = append(movies, m)
		return nil
	})
	if err != nil {
		return nil, &catalog.StoreError{Op: "scan movies", Err: err}
	}
	return movies, nil
}

// GetMovie retrieves a movie by id, returning catalog.ErrNotFound if missing.
func (s *Store) GetMovie(ctx context.Context, id int64) (*catalog.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, &catalog.StoreError{Op: "get movie", Err: err}
	}

	var m catalog.Movie
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(keys.Movie(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &m)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, catalog.ErrNotFound
	}
	if err != nil {
		return nil, &catalog.StoreError{Op: "get movie", Err: err}
	}
	return &m, nil
}

// QueryCast reads one partition keyspace with a single prefix iteration.
func (s *Store) QueryCast(ctx context.Context, q catalog.CastQuery) ([]catalog.CastMember, error) {
	prefix := keys.ActorPrefix(q.MovieID, q.Prefix)
	if q.UsesRoleIndex() {
		prefix = keys.RolePrefix(q.MovieID, q.Prefix)
	}

	cast := []catalog.CastMember{}
	err := s.scan(ctx, prefix, func(val []byte) error {
		var c catalog.CastMember
		if err := json.Unmarshal(val, &c); err != nil {
			return fmt.Errorf("decode cast member: %w", err)
		}
		cast = append(cast, c)
		return nil
	})
	if err != nil {
		return nil, &catalog.StoreError{Op: "query cast", Err: err}
	}
	return cast, nil
}

// scan visits the values under prefix in key order, stopping after one page.
func (s *Store) scan(ctx context.Context, prefix []byte, fn func(val []byte) error) error {
	return s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		n := 0
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			if s.pageSize > 0 && n >= s.pageSize {
				return nil
			}
			if err := it.Item().Value(fn); err != nil {
				return err
			}
			n++
		}
		return nil
	})
}

func getCastMember(txn *badger.Txn, key []byte) (catalog.CastMember, error) {
	var c catalog.CastMember
	item, err := txn.Get(key)
	if err != nil {
		return c, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &c)
	})
	return c, err
}

// badgerLogger routes badger's printf-style logging onto slog.
type badgerLogger struct {
	logger *slog.Logger
}

func newBadgerLogger(l *slog.Logger) badger.Logger {
	return &badgerLogger{logger: l.With("component", "badger")}
}

func (b *badgerLogger) Errorf(format string, args ...interface{}) {
	b.logger.Error(trim(format, args))
}

func (b *badgerLogger) Warningf(format string, args ...interface{}) {
	b.logger.Warn(trim(format, args))
}

func (b *badgerLogger) Infof(format string, args ...interface{}) {
	b.logger.Info(trim(format, args))
}

func (b *badgerLogger) Debugf(format string, args ...interface{}) {
	b.logger.Debug(trim(format, args))
}

func trim(format string, args []interface{}) string {
	return strings.TrimSpace(fmt.Sprintf(format, args...))
}
