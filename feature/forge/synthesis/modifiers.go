package synthesis

import (
	"rune-forge/feature/forge/models"

	"go.uber.org/zap"
)

// scopeValues is the closed table resolving declared scope flags to concrete
// scope-qualifier identifiers. Flags outside the table are logged and skipped.
var scopeValues = map[string]string{
	"currency":   "melvorD:GP",
	"damageType": "melvorD:Normal",
	"category":   "melvorD:Dungeons",
}

// resolveScope returns the concrete identifier for a scope flag.
func resolveScope(flag string) (string, bool) {
	v, ok := scopeValues[flag]
	return v, ok
}

// CombineModifiers merges a base item's intrinsic modifiers with rune-derived
// modifier templates into one normalized set.
//
// Base modifiers keep their already-resolved qualifiers verbatim, keyed by
// the modifier's fully-qualified key. Rune modifiers resolve their declared
// scope flags through the scope table. When a key occurs more than once the
// values accumulate; qualifiers of the first occurrence win, which is only
// observable if two sources disagree on a key's scope; configuration keeps
// that from happening.
func CombineModifiers(base map[string]models.ItemModifier, runes []models.RuneModifier, logger *zap.Logger) models.CombinedModifierSet {
	combined := make(models.CombinedModifierSet)

	add := func(key string, value float64, qualifiers map[string]string) {
		if entries, ok := combined[key]; ok {
			entries[0].Value += value
			return
		}
		combined[key] = []models.CombinedModifier{{Value: value, Qualifiers: qualifiers}}
	}

	for _, mod := range base {
		var qualifiers map[string]string
		if len(mod.Qualifiers) > 0 {
			qualifiers = make(map[string]string, len(mod.Qualifiers))
			for k, v := range mod.Qualifiers {
				qualifiers[k] = v
			}
		}
		add(mod.Modifier.Key(), mod.Value, qualifiers)
	}

	for _, mod := range runes {
		if mod.Name == "" {
			continue
		}
		var qualifiers map[string]string
		for _, flag := range mod.Scopes {
			value, ok := resolveScope(flag)
			if !ok {
				logger.Warn("Unhandled modifier scope flag", zap.String("scope", flag))
				continue
			}
			if qualifiers == nil {
				qualifiers = make(map[string]string)
			}
			qualifiers[flag+"ID"] = value
		}
		add(mod.Name, mod.Value, qualifiers)
	}

	return combined
}
