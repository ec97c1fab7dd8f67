package slot

import "context"

// Storage scopes mirroring the host's split between per-character and
// account-wide mod storage.
const (
	ScopeCharacter = "character"
	ScopeAccount   = "account"
)

// Store is a string-keyed slot holding plain string values.
type Store interface {
	// Get returns the value at key. The second return reports presence.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set writes the value at key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes the value at key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Clear deletes every key in this store's scope.
	Clear(ctx context.Context) error
}
