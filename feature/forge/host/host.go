// Package host provides an in-memory implementation of the game-side
// inventory and equipment surface.
//
// The real host owns bank and equipment state; this implementation stands in
// for it when the service runs without a live game attached, and doubles as
// the collaborator used throughout the forge tests.
package host

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"rune-forge/feature/forge/session"
)

type slotKey struct {
	set  int
	slot string
}

// Memory is an in-process session.Host.
type Memory struct {
	mu       sync.Mutex
	bank     map[string]int
	equipped map[slotKey]string
}

// NewMemory creates an empty host.
func NewMemory() *Memory {
	return &Memory{
		bank:     make(map[string]int),
		equipped: make(map[slotKey]string),
	}
}

func (m *Memory) EquippedItems(namespace string) []session.EquippedItem {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []session.EquippedItem
	for key, itemID := range m.equipped {
		if strings.HasPrefix(itemID, namespace+":") {
			out = append(out, session.EquippedItem{ItemID: itemID, Set: key.set, Slot: key.slot})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Set != out[j].Set {
			return out[i].Set < out[j].Set
		}
		return out[i].Slot < out[j].Slot
	})
	return out
}

func (m *Memory) HeldItemIDs(namespace string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for itemID, qty := range m.bank {
		if qty > 0 && strings.HasPrefix(itemID, namespace+":") {
			out = append(out, itemID)
		}
	}
	sort.Strings(out)
	return out
}

func (m *Memory) AddItem(itemID string, quantity int) error {
	if quantity <= 0 {
		return fmt.Errorf("invalid quantity %d for %s", quantity, itemID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bank[itemID] += quantity
	return nil
}

func (m *Memory) RemoveItem(itemID string, quantity int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	held := m.bank[itemID]
	if held < quantity {
		return fmt.Errorf("cannot remove %d of %s, only %d held", quantity, itemID, held)
	}
	if held == quantity {
		delete(m.bank, itemID)
	} else {
		m.bank[itemID] = held - quantity
	}
	return nil
}

func (m *Memory) Equip(itemID string, set int, slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := slotKey{set: set, slot: slot}
	if occupant, taken := m.equipped[key]; taken {
		return fmt.Errorf("slot %s of set %d already holds %s", slot, set, occupant)
	}
	m.equipped[key] = itemID
	return nil
}

func (m *Memory) Unequip(set int, slot string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := slotKey{set: set, slot: slot}
	if _, ok := m.equipped[key]; !ok {
		return fmt.Errorf("slot %s of set %d is empty", slot, set)
	}
	delete(m.equipped, key)
	return nil
}

// Quantity returns the held quantity of an item. Test helper.
func (m *Memory) Quantity(itemID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.bank[itemID]
}
