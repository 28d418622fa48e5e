// ABOUTME: Badger key-value backend for weekly records.
// ABOUTME: Stores JSON records under zero-padded week keys so iteration is ordered.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"

	"github.com/harperreed/scorecard/internal/models"
)

// WeekPrefix is the key prefix shared by the key-value backends.
const WeekPrefix = "week:"

// WeekKey returns the key for a week. Zero padding keeps byte order equal to
// numeric order.
func WeekKey(weekNumber int) string {
	return fmt.Sprintf("%s%08d", WeekPrefix, weekNumber)
}

// BadgerStore keeps weekly records in an embedded Badger database.
type BadgerStore struct {
	db  *badger.DB
	dir string
}

var _ Repository = (*BadgerStore)(nil)

// OpenBadger opens or creates a Badger database in dir. Badger's internal
// logging goes to log at debug level; pass nil to silence it.
func OpenBadger(dir string, log *zap.Logger) (*BadgerStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, storageErr("create data directory", err)
	}

	opts := badger.DefaultOptions(dir).WithLogger(newBadgerLogger(log))
	db, err := badger.Open(opts)
	if err != nil {
		return nil, storageErr("open badger", err)
	}

	return &BadgerStore{db: db, dir: dir}, nil
}

// Init is a no-op; a key-value store has no schema.
func (s *BadgerStore) Init() error {
	return nil
}

// UpsertWeek writes the record in a single transaction, replacing any previous value.
func (s *BadgerStore) UpsertWeek(r *models.WeeklyRecord) error {
	data, err := json.Marshal(r)
	if err != nil {
		return storageErr(fmt.Sprintf("upsert week %d", r.WeekNumber), err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(WeekKey(r.WeekNumber)), data)
	})
	if err != nil {
		return storageErr(fmt.Sprintf("upsert week %d", r.WeekNumber), err)
	}
	return nil
}

// GetWeek returns the record for weekNumber, or an error wrapping ErrNotFound.
func (s *BadgerStore) GetWeek(weekNumber int) (*models.WeeklyRecord, error) {
	var r models.WeeklyRecord

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(WeekKey(weekNumber)))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &r)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, notFound(weekNumber)
	}
	if err != nil {
		return nil, storageErr(fmt.Sprintf("get week %d", weekNumber), err)
	}
	return &r, nil
}

// ListWeeks returns every stored record ordered by week number ascending.
func (s *BadgerStore) ListWeeks() ([]*models.WeeklyRecord, error) {
	var weeks []*models.WeeklyRecord

	err := s.db.View(func(txn *badger.Txn) error {
		prefix := []byte(WeekPrefix)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var r models.WeeklyRecord
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &r)
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", it.Item().Key(), err)
			}
			weeks = append(weeks, &r)
		}
		return nil
	})
	if err != nil {
		return nil, storageErr("list weeks", err)
	}
	return weeks, nil
}

// Close closes the Badger database.
func (s *BadgerStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// badgerLogger adapts zap to badger.Logger, which spells it Warningf.
type badgerLogger struct {
	s *zap.SugaredLogger
}

func newBadgerLogger(log *zap.Logger) *badgerLogger {
	if log == nil {
		log = zap.NewNop()
	}
	return &badgerLogger{s: log.Named("badger").Sugar()}
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.s.Errorf(format, args...)
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.s.Warnf(format, args...)
}

// Badger is chatty at info level; it is demoted to debug.
func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.s.Debugf(format, args...)
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.s.Debugf(format, args...)
}
