// Package session keeps persisted craft records, synthesized items and the
// host's inventory/equipment state consistent across one process lifetime.
//
// It drives three passes:
//
//   - Reconcile: runs synthesis for every record not yet materialized this
//     session. The host may fire its load hook more than once; the session's
//     synthesis cache makes repeated passes no-ops.
//   - CleanRecords: removes records whose crafted item is no longer held or
//     equipped anywhere, shrinking the persisted blob.
//   - ReequipCrafted: cycles equipped crafted items through unequip/equip so
//     the host's stat pipeline picks up freshly synthesized values without
//     changing logical equipment state.
//
// The session owns the synthesis cache explicitly; nothing here lives at
// package scope.
package session
