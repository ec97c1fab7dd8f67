package synthesis

import (
	"testing"

	"rune-forge/feature/forge/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCombineModifiers_Accumulation(t *testing.T) {
	base := map[string]models.ItemModifier{
		"dmgBonus": {
			Modifier: models.ModifierRef{Namespace: "melvorD", LocalID: "dmgBonus"},
			Value:    5,
		},
	}
	runes := []models.RuneModifier{
		{Name: "melvorD:dmgBonus", Value: 3},
	}

	combined := CombineModifiers(base, runes, zap.NewNop())

	require.Contains(t, combined, "melvorD:dmgBonus")
	require.Len(t, combined["melvorD:dmgBonus"], 1)
	assert.Equal(t, 8.0, combined["melvorD:dmgBonus"][0].Value)
}

func TestCombineModifiers_BaseQualifiersVerbatim(t *testing.T) {
	base := map[string]models.ItemModifier{
		"gpGain": {
			Modifier:   models.ModifierRef{Namespace: "melvorD", LocalID: "currencyGain"},
			Value:      10,
			Qualifiers: map[string]string{"currencyID": "melvorD:GP"},
		},
	}

	combined := CombineModifiers(base, nil, zap.NewNop())

	entries := combined["melvorD:currencyGain"]
	require.Len(t, entries, 1)
	assert.Equal(t, 10.0, entries[0].Value)
	assert.Equal(t, map[string]string{"currencyID": "melvorD:GP"}, entries[0].Qualifiers)
}

func TestCombineModifiers_ScopeResolution(t *testing.T) {
	tests := []struct {
		name     string
		scope    string
		wantKey  string
		wantVal  string
		resolved bool
	}{
		{"Currency", "currency", "currencyID", "melvorD:GP", true},
		{"DamageType", "damageType", "damageTypeID", "melvorD:Normal", true},
		{"Category", "category", "categoryID", "melvorD:Dungeons", true},
		{"Unhandled", "skill", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runes := []models.RuneModifier{
				{Name: "melvorD:someModifier", Value: 2, Scopes: []string{tt.scope}},
			}

			combined := CombineModifiers(nil, runes, zap.NewNop())

			entries := combined["melvorD:someModifier"]
			require.Len(t, entries, 1)
			// Unrecognized flags contribute no qualifier but the value still lands.
			assert.Equal(t, 2.0, entries[0].Value)
			if tt.resolved {
				assert.Equal(t, tt.wantVal, entries[0].Qualifiers[tt.wantKey])
			} else {
				assert.Empty(t, entries[0].Qualifiers)
			}
		})
	}
}

func TestCombineModifiers_RuneOnlyKeysInsert(t *testing.T) {
	runes := []models.RuneModifier{
		{Name: "melvorD:flatAttackDamage", Value: 3},
		{Name: "melvorD:attackInterval", Value: -2},
		{Name: "melvorD:flatAttackDamage", Value: 4},
	}

	combined := CombineModifiers(nil, runes, zap.NewNop())

	assert.Len(t, combined, 2)
	assert.Equal(t, 7.0, combined["melvorD:flatAttackDamage"][0].Value)
	assert.Equal(t, -2.0, combined["melvorD:attackInterval"][0].Value)
}

func TestCombineModifiers_SkipsUnnamedTemplates(t *testing.T) {
	// Empty templates come from rune slots with no effect configured.
	combined := CombineModifiers(nil, []models.RuneModifier{{}}, zap.NewNop())
	assert.Empty(t, combined)
}
