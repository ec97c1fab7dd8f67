package session

import "rune-forge/feature/forge/models"

// EquippedItem is one equipped crafted item: which item sits in which slot
// of which equipment set.
type EquippedItem struct {
	ItemID string
	Set    int
	Slot   string
}

// Host is the externally-owned inventory and equipment surface of the game.
// The forge never inspects host state beyond what this interface exposes.
type Host interface {
	// EquippedItems returns every equipped item in the given namespace,
	// across all equipment sets.
	EquippedItems(namespace string) []EquippedItem
	// HeldItemIDs returns the ids of all bank items in the given namespace.
	HeldItemIDs(namespace string) []string
	// AddItem adds a quantity of an item to the bank.
	AddItem(itemID string, quantity int) error
	// RemoveItem removes a quantity of an item from the bank.
	RemoveItem(itemID string, quantity int) error
	// Equip places an item into a slot of an equipment set.
	Equip(itemID string, set int, slot string) error
	// Unequip clears a slot of an equipment set.
	Unequip(set int, slot string) error
}

// Engine is the synthesis surface the session drives. Satisfied by
// synthesis.Engine.
type Engine interface {
	Synthesize(rec models.CraftRecord) (*models.SynthesizedItem, error)
	Apply(def *models.SynthesizedItem, slotID string) error
}
