package store

import (
	"context"
	"encoding/json"
	"fmt"

	"rune-forge/core/codec"
	"rune-forge/core/slot"
	"rune-forge/feature/forge/models"

	"go.uber.org/zap"
)

// MaxEncodedLength is the hard cap on the persisted string, imposed by the
// host's per-profile storage slot.
const MaxEncodedLength = 8192

// StorageKey is the slot key under which the record map is persisted.
const StorageKey = "items"

// maxCodecAttempts bounds encode/decode retries before the error surfaces.
const maxCodecAttempts = 3

// envelope is the persisted wrapper: the text-encoded compressed blob plus
// the codec's auxiliary mapping, if it needs one.
type envelope struct {
	Compressed string `json:"c"`
	Mapping    string `json:"m,omitempty"`
}

// recordTuple is the compact wire form of one record: [baseItemID, runeCode].
type recordTuple [2]string

// Store owns the in-memory record map and the persisted slot behind it.
// It is the only component allowed to write that slot.
type Store struct {
	slot    slot.Store
	codec   codec.Codec
	logger  *zap.Logger
	records map[string]models.CraftRecord
}

// New creates a Store over the given slot and codec. Call Load before use.
func New(slotStore slot.Store, c codec.Codec, logger *zap.Logger) *Store {
	return &Store{
		slot:    slotStore,
		codec:   c,
		logger:  logger,
		records: make(map[string]models.CraftRecord),
	}
}

// Load reads the persisted blob and replaces the in-memory record map.
// An absent slot initializes an empty map. A blob that cannot be decoded
// after all attempts surfaces ErrDecoding; the caller must treat that as
// fatal rather than silently dropping player data.
func (s *Store) Load(ctx context.Context) error {
	value, ok, err := s.slot.Get(ctx, StorageKey)
	if err != nil {
		return fmt.Errorf("failed to read record slot: %w", err)
	}
	if !ok || value == "" {
		s.records = make(map[string]models.CraftRecord)
		return nil
	}

	records, err := s.decode(value)
	if err != nil {
		return err
	}
	s.records = records
	return nil
}

// Records returns a copy of the live record map.
func (s *Store) Records() map[string]models.CraftRecord {
	out := make(map[string]models.CraftRecord, len(s.records))
	for id, rec := range s.records {
		out[id] = rec
	}
	return out
}

// Record returns the record at slotID, if any.
func (s *Store) Record(slotID string) (models.CraftRecord, bool) {
	rec, ok := s.records[slotID]
	return rec, ok
}

// Len returns the number of live records.
func (s *Store) Len() int {
	return len(s.records)
}

// AllocateFreeSlotID scans e0..e199 in ascending numeric order and returns
// the first unoccupied slot id.
func (s *Store) AllocateFreeSlotID() (string, error) {
	for i := 0; i < models.SlotCapacity; i++ {
		id := models.SlotID(i)
		if _, taken := s.records[id]; !taken {
			return id, nil
		}
	}
	return "", ErrIDExhaustion
}

// AddRecord inserts a record under its slot id and persists immediately.
// Callers must allocate a free slot id first; an occupied id is a caller
// bug and fails with ErrDuplicateSlotID. If the save fails, the insert is
// rolled back so memory matches the untouched persisted value.
func (s *Store) AddRecord(ctx context.Context, rec models.CraftRecord) error {
	if _, taken := s.records[rec.SlotID]; taken {
		return fmt.Errorf("%w: %s", ErrDuplicateSlotID, rec.SlotID)
	}

	s.records[rec.SlotID] = rec
	if err := s.save(ctx); err != nil {
		delete(s.records, rec.SlotID)
		return err
	}
	return nil
}

// RemoveRecords deletes the given slot ids and persists. Absent ids are
// ignored. If the save fails, the removed entries are restored.
func (s *Store) RemoveRecords(ctx context.Context, slotIDs []string) error {
	removed := make(map[string]models.CraftRecord)
	for _, id := range slotIDs {
		if rec, ok := s.records[id]; ok {
			removed[id] = rec
			delete(s.records, id)
		}
	}
	if len(removed) == 0 {
		return nil
	}

	if err := s.save(ctx); err != nil {
		for id, rec := range removed {
			s.records[id] = rec
		}
		return err
	}
	return nil
}

// save serializes, compresses and writes the full record map as one string.
// The write only happens when the encoded form fits the slot budget.
func (s *Store) save(ctx context.Context) error {
	encoded, err := s.encode()
	if err != nil {
		return err
	}
	if len(encoded) > MaxEncodedLength {
		s.logger.Error("Encoded records exceed slot budget",
			zap.Int("length", len(encoded)),
			zap.Int("budget", MaxEncodedLength),
		)
		return fmt.Errorf("%w: %d > %d chars", ErrStorageQuotaExceeded, len(encoded), MaxEncodedLength)
	}

	if err := s.slot.Set(ctx, StorageKey, encoded); err != nil {
		return fmt.Errorf("failed to write record slot: %w", err)
	}
	s.logger.Debug("Persisted record map",
		zap.Int("records", len(s.records)),
		zap.Int("length", len(encoded)),
	)
	return nil
}

func (s *Store) encode() (string, error) {
	tuples := make(map[string]recordTuple, len(s.records))
	for id, rec := range s.records {
		tuples[id] = recordTuple{rec.BaseItemID, rec.RuneCode}
	}

	var lastErr error
	for attempt := 1; attempt <= maxCodecAttempts; attempt++ {
		encoded, err := s.encodeOnce(tuples)
		if err == nil {
			return encoded, nil
		}
		lastErr = err
		s.logger.Warn("Record encode attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
	return "", fmt.Errorf("%w after %d attempts: %v", ErrEncoding, maxCodecAttempts, lastErr)
}

func (s *Store) encodeOnce(tuples map[string]recordTuple) (string, error) {
	raw, err := json.Marshal(tuples)
	if err != nil {
		return "", err
	}
	blob, mapping, err := s.codec.Compress(string(raw))
	if err != nil {
		return "", err
	}
	env := envelope{Compressed: s.codec.EncodeToText(blob), Mapping: mapping}
	out, err := json.Marshal(env)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (s *Store) decode(value string) (map[string]models.CraftRecord, error) {
	var lastErr error
	for attempt := 1; attempt <= maxCodecAttempts; attempt++ {
		records, err := s.decodeOnce(value)
		if err == nil {
			return records, nil
		}
		lastErr = err
		s.logger.Warn("Record decode attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrDecoding, maxCodecAttempts, lastErr)
}

func (s *Store) decodeOnce(value string) (map[string]models.CraftRecord, error) {
	var env envelope
	if err := json.Unmarshal([]byte(value), &env); err != nil {
		return nil, err
	}
	blob, err := s.codec.DecodeFromText(env.Compressed)
	if err != nil {
		return nil, err
	}
	raw, err := s.codec.Decompress(blob, env.Mapping)
	if err != nil {
		return nil, err
	}

	var tuples map[string]recordTuple
	if err := json.Unmarshal([]byte(raw), &tuples); err != nil {
		return nil, err
	}

	records := make(map[string]models.CraftRecord, len(tuples))
	for id, tuple := range tuples {
		records[id] = models.CraftRecord{SlotID: id, BaseItemID: tuple[0], RuneCode: tuple[1]}
	}
	return records, nil
}
