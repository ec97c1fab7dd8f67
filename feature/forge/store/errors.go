package store

import "errors"

var (
	// ErrEncoding means the codec failed to encode the record map after all
	// retry attempts. The persisted value is unchanged.
	ErrEncoding = errors.New("record encoding failed")
	// ErrDecoding means the persisted blob could not be decoded after all
	// retry attempts. Fatal to the session; the data must not be discarded.
	ErrDecoding = errors.New("record decoding failed")
	// ErrStorageQuotaExceeded means the encoded record map would not fit the
	// storage slot. Nothing was written.
	ErrStorageQuotaExceeded = errors.New("encoded records exceed storage quota")
	// ErrIDExhaustion means all placeholder slot ids are occupied.
	ErrIDExhaustion = errors.New("no free slot ids left")
	// ErrDuplicateSlotID means the caller tried to add a record under a slot
	// id that is already live.
	ErrDuplicateSlotID = errors.New("slot id already in use")
)
