package models

import (
	"fmt"
	"regexp"
)

// SlotCapacity is the number of placeholder identities reserved for crafted
// items (e0..e199). A profile can never hold more crafted items than this.
const SlotCapacity = 200

// RuneSlotCount is the number of rune tokens consumed by one craft.
const RuneSlotCount = 3

// CraftRecord is the compact persisted form of one crafted item: which base
// item it was forged from and which three runes went into it.
type CraftRecord struct {
	// SlotID is the placeholder identity this record occupies (e0..e199).
	SlotID string `json:"slotId"`
	// BaseItemID is the fully-qualified id of the source equipment item.
	BaseItemID string `json:"baseItemId"`
	// RuneCode is three single-character rune codes in slot order.
	RuneCode string `json:"runeCode"`
}

// SlotID formats a slot index as its placeholder identity.
func SlotID(index int) string {
	return fmt.Sprintf("e%d", index)
}

// slotIDPattern matches e0..e199 and nothing beyond.
var slotIDPattern = regexp.MustCompile(`^e(?:\d{1,2}|1\d\d)$`)

// IsSlotID reports whether id is a placeholder identity within the fixed
// slot namespace.
func IsSlotID(id string) bool {
	return slotIDPattern.MatchString(id)
}

// ModifierRef identifies a registered modifier by namespace and local id.
type ModifierRef struct {
	Namespace string `json:"namespace"`
	LocalID   string `json:"localID"`
}

// Key returns the fully-qualified modifier key, e.g. "melvorD:flatAttackDamage".
func (r ModifierRef) Key() string {
	return r.Namespace + ":" + r.LocalID
}

// ItemModifier is an intrinsic modifier carried by a base item. Qualifiers
// hold already-resolved scope identifiers keyed with an ID suffix, e.g.
// {"currencyID": "melvorD:GP"}.
type ItemModifier struct {
	Modifier   ModifierRef       `json:"modifier"`
	Value      float64           `json:"value"`
	Qualifiers map[string]string `json:"qualifiers,omitempty"`
}

// RuneModifier is the modifier template a rune contributes for one equip
// slot. Scopes lists declared scope flags (e.g. "currency") that synthesis
// resolves into concrete qualifier values.
type RuneModifier struct {
	Name   string   `json:"name"`
	Value  float64  `json:"value"`
	Scopes []string `json:"scopes,omitempty"`
}

// CombinedModifier is one aggregated modifier entry after combination.
type CombinedModifier struct {
	Value      float64           `json:"value"`
	Qualifiers map[string]string `json:"qualifiers,omitempty"`
}

// CombinedModifierSet maps fully-qualified modifier keys to their aggregated
// entries. The slice mirrors the host's modifier array shape; combination
// only ever produces a single entry per key.
type CombinedModifierSet map[string][]CombinedModifier

// BaseItem is a catalog entry: the static attribute set of an equipment item
// as plain data. Nested identity objects inside EquipRequirements and
// EquipmentStats are carried as raw maps and flattened during synthesis.
type BaseItem struct {
	ID                  string                  `json:"id"`
	Name                string                  `json:"name"`
	Type                string                  `json:"type"`
	Category            string                  `json:"category"`
	AttackType          string                  `json:"attackType,omitempty"`
	Media               string                  `json:"media"`
	CustomDescription   string                  `json:"customDescription,omitempty"`
	ObtainFromItemLog   bool                    `json:"obtainFromItemLog"`
	GolbinRaidExclusive bool                    `json:"golbinRaidExclusive"`
	SellsFor            int                     `json:"sellsFor"`
	Tier                string                  `json:"tier,omitempty"`
	ValidSlots          []string                `json:"validSlots"`
	OccupiesSlots       []string                `json:"occupiesSlots,omitempty"`
	EquipRequirements   []map[string]any        `json:"equipRequirements,omitempty"`
	EquipmentStats      []map[string]any        `json:"equipmentStats,omitempty"`
	Modifiers           map[string]ItemModifier `json:"modifiers,omitempty"`
}

// SynthesizedItem is the full item definition derived from one CraftRecord.
// Its ID is synthesis-local and never persisted; the definition only exists
// to be applied onto the stable placeholder for its slot.
type SynthesizedItem struct {
	ID                  string              `json:"id"`
	ItemType            string              `json:"itemType"`
	Type                string              `json:"type"`
	Name                string              `json:"name"`
	CustomDescription   string              `json:"customDescription,omitempty"`
	Category            string              `json:"category"`
	AttackType          string              `json:"attackType,omitempty"`
	Media               string              `json:"media"`
	IgnoreCompletion    bool                `json:"ignoreCompletion"`
	ObtainFromItemLog   bool                `json:"obtainFromItemLog"`
	GolbinRaidExclusive bool                `json:"golbinRaidExclusive"`
	SellsFor            int                 `json:"sellsFor"`
	Tier                string              `json:"tier,omitempty"`
	ValidSlots          []string            `json:"validSlots"`
	OccupiesSlots       []string            `json:"occupiesSlots"`
	EquipRequirements   []map[string]any    `json:"equipRequirements"`
	Modifiers           CombinedModifierSet `json:"modifiers"`
	EquipmentStats      []map[string]any    `json:"equipmentStats"`
}

// PlaceholderItem is one of the pre-registered stable identities (e0..e199).
// Its mutable fields are overwritten every time its record is synthesized;
// the identity itself lives for the whole session.
type PlaceholderItem struct {
	SlotID    string
	Namespace string

	Name                string
	CustomDescription   string
	Category            string
	Type                string
	AttackType          string
	Media               string
	IgnoreCompletion    bool
	ObtainFromItemLog   bool
	GolbinRaidExclusive bool
	SellsFor            int
	Tier                string
	ValidSlots          []string
	OccupiesSlots       []string
	EquipRequirements   []map[string]any
	Modifiers           CombinedModifierSet
	EquipmentStats      []map[string]any
}

// ItemID returns the fully-qualified id of the placeholder.
func (p *PlaceholderItem) ItemID() string {
	return p.Namespace + ":" + p.SlotID
}
