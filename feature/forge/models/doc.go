// Package models defines the data types shared across the forge feature.
//
// It covers three layers:
//
//   - Compact persistence: CraftRecord, the two-field tuple that survives in
//     the bounded storage slot.
//   - Game data: BaseItem and ForgeConfig, the read-only catalog and rune
//     configuration loaded at startup.
//   - Synthesis output: SynthesizedItem, CombinedModifierSet and
//     PlaceholderItem, the derived definitions written onto the stable
//     placeholder identities.
//
// Types here are plain data with no behavior beyond construction helpers,
// so every other forge package can depend on them without cycles.
package models
