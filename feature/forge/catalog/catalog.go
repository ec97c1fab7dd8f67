// Package catalog resolves base item ids to their full attribute sets.
//
// The production catalog is loaded once at startup from a gamedata JSON
// object in the storage bucket, the same way other gamedata definitions are
// distributed. Lookups afterwards are in-memory and read-only.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"rune-forge/core/storage"
	"rune-forge/feature/forge/models"

	"github.com/minio/minio-go/v7"
)

// Catalog looks up base items by their fully-qualified id.
type Catalog interface {
	// Lookup returns the base item for id. The second return reports presence.
	Lookup(id string) (models.BaseItem, bool)
}

// Static is an immutable in-memory Catalog.
type Static struct {
	items map[string]models.BaseItem
}

// NewStatic builds a catalog from a list of base items.
func NewStatic(items []models.BaseItem) *Static {
	index := make(map[string]models.BaseItem, len(items))
	for _, item := range items {
		index[item.ID] = item
	}
	return &Static{items: index}
}

func (s *Static) Lookup(id string) (models.BaseItem, bool) {
	item, ok := s.items[id]
	return item, ok
}

// Len returns the number of catalog entries.
func (s *Static) Len() int {
	return len(s.items)
}

// Load fetches the item catalog JSON from the storage bucket.
func Load(ctx context.Context, client storage.Client, bucket, objectName string) (*Static, error) {
	raw, err := fetchObject(ctx, client, bucket, objectName)
	if err != nil {
		return nil, err
	}

	var items []models.BaseItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("failed to parse item catalog %s: %w", objectName, err)
	}
	return NewStatic(items), nil
}

// LoadForgeConfig fetches the rune configuration JSON from the storage bucket.
func LoadForgeConfig(ctx context.Context, client storage.Client, bucket, objectName string) (*models.ForgeConfig, error) {
	raw, err := fetchObject(ctx, client, bucket, objectName)
	if err != nil {
		return nil, err
	}

	var cfg models.ForgeConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse forge config %s: %w", objectName, err)
	}
	if cfg.Namespace == "" {
		return nil, fmt.Errorf("forge config %s has no namespace", objectName)
	}
	if len(cfg.RuneCodes) == 0 {
		return nil, fmt.Errorf("forge config %s has no rune codes", objectName)
	}
	return &cfg, nil
}

func fetchObject(ctx context.Context, client storage.Client, bucket, objectName string) ([]byte, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", objectName, err)
	}
	defer obj.Close()

	raw, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", objectName, err)
	}
	return raw, nil
}
