// Package store implements the compact record store: the bounded-size
// encode/decode protocol that fits every crafted-item record of a profile
// into a single 8192-character storage slot.
//
// The persisted value is base64(deflate(json(recordMap))) wrapped in a small
// envelope that also transports the codec's auxiliary mapping. The record
// map itself uses a two-element tuple per slot id to keep the JSON short:
//
//	{"e0": ["melvorD:Sword", "abc"], "e1": ["melvorD:Shield", "xyz"]}
//
// The store is the sole writer of the record slot. Saves are all-or-nothing:
// when the encoded form would exceed the size budget, the previous persisted
// value stays untouched and the in-memory mutation is rolled back, so memory
// and storage never drift apart across a failed write.
package store
