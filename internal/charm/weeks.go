// ABOUTME: Weekly record storage on Charm KV.
// ABOUTME: Implements storage.Repository with zero-padded week keys.
package charm

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/dgraph-io/badger/v3"

	"github.com/harperreed/scorecard/internal/models"
	"github.com/harperreed/scorecard/internal/storage"
)

var _ storage.Repository = (*Client)(nil)

// Init is a no-op; KV keys need no schema.
func (c *Client) Init() error {
	return nil
}

// UpsertWeek stores the full record under its week key, replacing any previous value.
func (c *Client) UpsertWeek(r *models.WeeklyRecord) error {
	op := fmt.Sprintf("upsert week %d", r.WeekNumber)

	data, err := json.Marshal(r)
	if err != nil {
		return &storage.StorageError{Op: op, Err: err}
	}
	if err := c.set(storage.WeekKey(r.WeekNumber), data); err != nil {
		return &storage.StorageError{Op: op, Err: err}
	}
	return nil
}

// GetWeek returns the record for weekNumber, or an error wrapping storage.ErrNotFound.
func (c *Client) GetWeek(weekNumber int) (*models.WeeklyRecord, error) {
	data, err := c.get(storage.WeekKey(weekNumber))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("week %d: %w", weekNumber, storage.ErrNotFound)
	}
	if err != nil {
		return nil, &storage.StorageError{Op: fmt.Sprintf("get week %d", weekNumber), Err: err}
	}

	r, err := unmarshalJSON[models.WeeklyRecord](data)
	if err != nil {
		return nil, &storage.StorageError{Op: fmt.Sprintf("decode week %d", weekNumber), Err: err}
	}
	return r, nil
}

// ListWeeks returns every stored week ordered by week number ascending.
func (c *Client) ListWeeks() ([]*models.WeeklyRecord, error) {
	allData, err := c.listByPrefix(storage.WeekPrefix)
	if err != nil {
		return nil, &storage.StorageError{Op: "list weeks", Err: err}
	}
	return decodeWeeks(allData)
}

// decodeWeeks decodes and sorts stored week values. An undecodable value
// fails the whole listing, as the SQL and Badger backends do.
func decodeWeeks(allData [][]byte) ([]*models.WeeklyRecord, error) {
	weeks := make([]*models.WeeklyRecord, 0, len(allData))
	for i, data := range allData {
		w, err := unmarshalJSON[models.WeeklyRecord](data)
		if err != nil {
			return nil, &storage.StorageError{Op: fmt.Sprintf("decode week entry %d", i), Err: err}
		}
		weeks = append(weeks, w)
	}

	sort.Slice(weeks, func(i, j int) bool {
		return weeks[i].WeekNumber < weeks[j].WeekNumber
	})

	return weeks, nil
}
