// Package forge is the crafting feature: it exposes the craft flow over
// HTTP and wires the record store, synthesis engine and session together.
//
// A craft consumes a base equipment item and three rune tokens, allocates a
// placeholder slot id, persists the compact record and materializes the
// synthesized item in one pass. The feature also surfaces the session's
// cleanup pass and a small capacity report.
package forge
