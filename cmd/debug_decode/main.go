package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"rune-forge/core/codec"
	"rune-forge/core/config"
	"rune-forge/core/database"
	"rune-forge/core/slot"
	"rune-forge/feature/forge/store"
)

// Decodes a persisted craft record envelope and prints its contents.
// With a file argument the envelope is read from that file, otherwise it
// is fetched from the configured profile's storage slot.
func main() {
	var raw string

	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal(err)
		}
		raw = string(data)
	} else {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatal(err)
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			log.Fatal(err)
		}

		slots := slot.NewGormStore(db, cfg.Forge.Profile, slot.ScopeCharacter)
		value, ok, err := slots.Get(context.Background(), store.StorageKey)
		if err != nil {
			log.Fatal(err)
		}
		if !ok {
			fmt.Println("No craft records stored for this profile.")
			return
		}
		raw = value
	}

	fmt.Printf("Envelope size: %d / %d chars\n", len(raw), store.MaxEncodedLength)

	var env struct {
		Compressed string `json:"c"`
		Mapping    string `json:"m"`
	}
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		log.Fatalf("Envelope is not valid JSON: %v", err)
	}

	c := codec.NewFlate()
	blob, err := c.DecodeFromText(env.Compressed)
	if err != nil {
		log.Fatalf("Failed to decode blob: %v", err)
	}

	text, err := c.Decompress(blob, env.Mapping)
	if err != nil {
		log.Fatalf("Failed to decompress blob: %v", err)
	}

	var tuples map[string][2]string
	if err := json.Unmarshal([]byte(text), &tuples); err != nil {
		log.Fatalf("Decompressed payload is not a record map: %v", err)
	}

	slotIDs := make([]string, 0, len(tuples))
	for id := range tuples {
		slotIDs = append(slotIDs, id)
	}
	sort.Strings(slotIDs)

	fmt.Printf("Records: %d\n", len(tuples))
	for _, id := range slotIDs {
		t := tuples[id]
		fmt.Printf("  %-5s base=%s runes=%s\n", id, t[0], t[1])
	}
}
