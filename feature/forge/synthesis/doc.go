// Package synthesis derives full item definitions from compact craft records.
//
// Given a record (base item id + three rune codes), the engine resolves the
// base item from the catalog, resolves each rune code to its per-slot
// modifier template, merges base and rune modifiers into one normalized set,
// and applies the result onto the stable placeholder identity registered for
// the record's slot id. Synthesis is deterministic: the same record against
// the same catalog and rune configuration always yields the same applied
// state, which is what makes repeated load passes safe.
package synthesis
