// Package session owns the ordered, persisted log of completed solves.
package session

import (
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/watchfire-io/cubetimer/internal/models"
	"github.com/watchfire-io/cubetimer/internal/storage"
)

// ClearPrompt is the question asked before ClearAll is confirmed.
const ClearPrompt = "Are you sure you want to clear all recorded times?"

// Store is the session log: records in chronological order, mirrored to a
// single storage slot after every mutation.
//
// Store is not safe for concurrent use; the TUI touches it only from its
// update loop.
type Store struct {
	slots   storage.Slots
	key     string
	logger  zerolog.Logger
	records []models.SolveRecord
	err     error
}

// NewStore creates an empty store persisted to the given slot. Call Load to
// read existing history.
func NewStore(slots storage.Slots, key string, logger zerolog.Logger) *Store {
	if key == "" {
		key = models.DefaultSlot
	}
	return &Store{
		slots:   slots,
		key:     key,
		logger:  logger.With().Str("component", "session").Str("slot", key).Logger(),
		records: []models.SolveRecord{},
	}
}

// Load replaces the in-memory log with the persisted one. A missing,
// unreadable or malformed slot yields an empty log.
func (s *Store) Load() {
	s.records = []models.SolveRecord{}

	data, ok, err := s.slots.Get(s.key)
	if err != nil {
		s.logger.Warn().Err(err).Msg("failed to read session, starting empty")
		return
	}
	if !ok {
		s.logger.Debug().Msg("no persisted session")
		return
	}

	var records []models.SolveRecord
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn().Err(err).Msg("malformed session data, starting empty")
		return
	}
	if records != nil {
		s.records = records
	}
	s.logger.Debug().Int("count", len(s.records)).Msg("session loaded")
}

// Append adds a record to the end of the log and persists it.
func (s *Store) Append(record models.SolveRecord) {
	s.records = append(s.records, record)
	s.logger.Info().Str("time", string(record)).Int("count", len(s.records)).Msg("solve recorded")
	s.persist()
}

// RemoveAt deletes the record at the 0-based index and persists the log.
// Out-of-range indices are ignored. Reports whether a record was removed.
func (s *Store) RemoveAt(index int) bool {
	if index < 0 || index >= len(s.records) {
		return false
	}
	removed := s.records[index]
	s.records = append(s.records[:index], s.records[index+1:]...)
	s.logger.Info().Int("index", index).Str("time", string(removed)).Msg("solve deleted")
	s.persist()
	return true
}

// ClearAll empties the log and removes the persisted slot, but only when
// the caller has obtained the user's confirmation. Reports whether the log
// was cleared.
func (s *Store) ClearAll(confirmed bool) bool {
	if !confirmed {
		return false
	}
	s.records = []models.SolveRecord{}
	if err := s.slots.Remove(s.key); err != nil {
		s.err = fmt.Errorf("failed to clear saved times: %w", err)
		s.logger.Error().Err(err).Msg("failed to remove session slot")
	} else {
		s.err = nil
	}
	s.logger.Info().Msg("session cleared")
	return true
}

// Records returns a copy of the log in chronological order.
func (s *Store) Records() []models.SolveRecord {
	out := make([]models.SolveRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Entries returns the log with 1-based display ordinals.
func (s *Store) Entries() []models.SessionEntry {
	entries := make([]models.SessionEntry, len(s.records))
	for i, r := range s.records {
		entries[i] = models.SessionEntry{Ordinal: i + 1, Record: r}
	}
	return entries
}

// Key returns the storage slot name.
func (s *Store) Key() string {
	return s.key
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// Err returns the last persistence failure, or nil once a later write
// succeeds. Failed writes leave the in-memory log authoritative.
func (s *Store) Err() error {
	return s.err
}

func (s *Store) persist() {
	data, err := json.Marshal(s.records)
	if err != nil {
		s.err = fmt.Errorf("failed to encode times: %w", err)
		s.logger.Error().Err(err).Msg("failed to encode session")
		return
	}
	if err := s.slots.Set(s.key, data); err != nil {
		s.err = fmt.Errorf("failed to save times: %w", err)
		s.logger.Error().Err(err).Msg("failed to persist session")
		return
	}
	s.err = nil
}
