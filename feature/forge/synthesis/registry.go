package synthesis

import (
	"rune-forge/feature/forge/models"
)

// Registry is the arena of stable placeholder items, one per slot id in the
// fixed e0..e199 namespace. Identities are registered once at construction
// and live for the whole session; only their mutable fields change.
type Registry struct {
	namespace string
	items     map[string]*models.PlaceholderItem
}

// NewRegistry pre-registers a placeholder for every slot id.
func NewRegistry(namespace string) *Registry {
	items := make(map[string]*models.PlaceholderItem, models.SlotCapacity)
	for i := 0; i < models.SlotCapacity; i++ {
		id := models.SlotID(i)
		items[id] = &models.PlaceholderItem{SlotID: id, Namespace: namespace}
	}
	return &Registry{namespace: namespace, items: items}
}

// Get returns the placeholder registered for slotID.
func (r *Registry) Get(slotID string) (*models.PlaceholderItem, bool) {
	item, ok := r.items[slotID]
	return item, ok
}

// Namespace returns the item namespace of the arena.
func (r *Registry) Namespace() string {
	return r.namespace
}
