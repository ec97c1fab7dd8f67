// Package slot provides the bounded key-value slots that back per-profile
// persistence.
//
// The host game exposes two scopes of storage to a mod: character storage
// (per save profile) and account storage (shared across profiles). Both are
// plain string-to-string maps with no semantics attached; all interpretation
// of the stored values lives in the record store.
//
// # Backends
//
//   - Memory: in-process map, used in tests and when no database is configured.
//   - Gorm: a profile_storage table keyed by (profile, scope, key), used when
//     the MySQL connection is available.
//
// The record store is the only writer of the record slot; nothing else in
// the application touches that key.
package slot
