package models

// RuneSlots holds the per-equip-slot modifier templates of one rune.
type RuneSlots struct {
	Slot1 RuneModifier `json:"slot1"`
	Slot2 RuneModifier `json:"slot2"`
	Slot3 RuneModifier `json:"slot3"`
}

// Template returns the template for a 1-based slot index.
func (r RuneSlots) Template(index int) (RuneModifier, bool) {
	switch index {
	case 1:
		return r.Slot1, true
	case 2:
		return r.Slot2, true
	case 3:
		return r.Slot3, true
	default:
		return RuneModifier{}, false
	}
}

// ItemGrant is a quantity of one item, used for the first-session welcome gift.
type ItemGrant struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// BlankRuneConfig carries the drop thresholds for blank runes. The forge core
// only transports these values; loot-table patching consumes them host-side.
type BlankRuneConfig struct {
	MinChestValueToSpawn int     `json:"minChestValueToSpawn"`
	ChestSpawnChance     float64 `json:"chestSpawnChance"`
	MinLevel             int     `json:"minLevel"`
	MaxLevel             int     `json:"maxLevel"`
	MinChance            float64 `json:"minChance"`
	MaxChance            float64 `json:"maxChance"`
}

// ForgeConfig is the read-only rune configuration loaded once at startup.
type ForgeConfig struct {
	// Namespace is the mod's item namespace, e.g. "runesmithing".
	Namespace string `json:"namespace"`
	// RuneCodes maps rune names to their single-character persistence codes.
	RuneCodes map[string]string `json:"runeCodes"`
	// RuneModifiers maps rune names to their per-slot modifier templates.
	RuneModifiers map[string]RuneSlots `json:"runeModifiers"`
	// WelcomeItems are granted once per account on first session.
	WelcomeItems []ItemGrant `json:"welcomeItems,omitempty"`
	// BlankRune holds drop threshold constants.
	BlankRune BlankRuneConfig `json:"blankRune"`
}

// CodeToName inverts the RuneCodes table for decode-side lookups.
func (c *ForgeConfig) CodeToName() map[string]string {
	out := make(map[string]string, len(c.RuneCodes))
	for name, code := range c.RuneCodes {
		out[code] = name
	}
	return out
}
