package forge

import (
	"context"
	"testing"

	"rune-forge/core/codec"
	"rune-forge/core/slot"
	"rune-forge/feature/forge/catalog"
	"rune-forge/feature/forge/host"
	"rune-forge/feature/forge/models"
	"rune-forge/feature/forge/session"
	"rune-forge/feature/forge/store"
	"rune-forge/feature/forge/synthesis"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func serviceFixtureConfig() *models.ForgeConfig {
	return &models.ForgeConfig{
		Namespace: "runesmithing",
		RuneCodes: map[string]string{"power": "a", "speed": "b", "luck": "c"},
		RuneModifiers: map[string]models.RuneSlots{
			"power": {Slot1: models.RuneModifier{Name: "melvorD:flatAttackDamage", Value: 3}},
			"speed": {Slot2: models.RuneModifier{Name: "melvorD:attackInterval", Value: -2}},
			"luck":  {Slot3: models.RuneModifier{Name: "melvorD:gpGain", Value: 5, Scopes: []string{"currency"}}},
		},
	}
}

func serviceFixtureCatalog() *catalog.Static {
	return catalog.NewStatic([]models.BaseItem{
		{
			ID:         "melvorD:Sword_Basic",
			Name:       "Basic Sword",
			Type:       "Weapon",
			Category:   "Combat",
			Media:      "assets/sword.png",
			SellsFor:   50,
			ValidSlots: []string{"Weapon"},
		},
	})
}

func newServiceFixture(t *testing.T) (*Service, *host.Memory, *store.Store) {
	t.Helper()
	cfg := serviceFixtureConfig()
	cat := serviceFixtureCatalog()
	recordStore := store.New(slot.NewMemoryStore(), codec.NewFlate(), zap.NewNop())
	require.NoError(t, recordStore.Load(context.Background()))

	engine := synthesis.NewEngine(cat, cfg, synthesis.NewRegistry(cfg.Namespace), zap.NewNop())
	h := host.NewMemory()
	sess := session.New(recordStore, engine, h, slot.NewMemoryStore(), cfg, zap.NewNop())
	svc := NewService(recordStore, sess, cat, h, cfg, zap.NewNop())
	return svc, h, recordStore
}

func stockBank(t *testing.T, h *host.Memory) {
	t.Helper()
	require.NoError(t, h.AddItem("melvorD:Sword_Basic", 1))
	require.NoError(t, h.AddItem("runesmithing:r_power", 1))
	require.NoError(t, h.AddItem("runesmithing:r_speed", 1))
	require.NoError(t, h.AddItem("runesmithing:r_luck", 1))
}

func TestService_Craft(t *testing.T) {
	ctx := context.Background()
	svc, h, recordStore := newServiceFixture(t)
	stockBank(t, h)

	result, err := svc.Craft(ctx, "melvorD:Sword_Basic", []string{
		"runesmithing:r_power", "runesmithing:r_speed", "runesmithing:r_luck",
	})
	require.NoError(t, err)

	assert.Equal(t, "e0", result.SlotID)
	assert.Equal(t, "runesmithing:e0", result.ItemID)
	assert.Equal(t, "Basic Sword (Power-Speed-Luck)", result.Name)

	// Record persisted with codes in slot order.
	rec, ok := recordStore.Record("e0")
	require.True(t, ok)
	assert.Equal(t, "abc", rec.RuneCode)

	// Bank accounting: crafted item in, ingredients consumed.
	assert.Equal(t, 1, h.Quantity("runesmithing:e0"))
	assert.Equal(t, 0, h.Quantity("melvorD:Sword_Basic"))
	assert.Equal(t, 0, h.Quantity("runesmithing:r_power"))
	assert.Equal(t, 0, h.Quantity("runesmithing:r_speed"))
	assert.Equal(t, 0, h.Quantity("runesmithing:r_luck"))
}

func TestService_Craft_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("WrongRuneCount", func(t *testing.T) {
		svc, _, _ := newServiceFixture(t)
		_, err := svc.Craft(ctx, "melvorD:Sword_Basic", []string{"runesmithing:r_power"})
		assert.ErrorIs(t, err, ErrInvalidRuneItem)
	})

	t.Run("MalformedRuneID", func(t *testing.T) {
		svc, _, _ := newServiceFixture(t)
		_, err := svc.Craft(ctx, "melvorD:Sword_Basic", []string{
			"runesmithing:note", "runesmithing:r_speed", "runesmithing:r_luck",
		})
		assert.ErrorIs(t, err, ErrInvalidRuneItem)
	})

	t.Run("UnconfiguredRune", func(t *testing.T) {
		svc, _, _ := newServiceFixture(t)
		_, err := svc.Craft(ctx, "melvorD:Sword_Basic", []string{
			"runesmithing:r_chaos", "runesmithing:r_speed", "runesmithing:r_luck",
		})
		assert.ErrorIs(t, err, ErrInvalidRuneItem)
	})

	t.Run("UnknownBaseItem", func(t *testing.T) {
		svc, h, recordStore := newServiceFixture(t)
		stockBank(t, h)
		_, err := svc.Craft(ctx, "melvorD:Nope", []string{
			"runesmithing:r_power", "runesmithing:r_speed", "runesmithing:r_luck",
		})
		assert.ErrorIs(t, err, synthesis.ErrItemNotFound)

		// Nothing persisted, bank untouched.
		assert.Equal(t, 0, recordStore.Len())
		assert.Equal(t, 1, h.Quantity("melvorD:Sword_Basic"))
		assert.Equal(t, 1, h.Quantity("runesmithing:r_power"))
	})
}

func TestService_Craft_SlotsAscend(t *testing.T) {
	ctx := context.Background()
	svc, h, _ := newServiceFixture(t)

	for i := 0; i < 3; i++ {
		stockBank(t, h)
		result, err := svc.Craft(ctx, "melvorD:Sword_Basic", []string{
			"runesmithing:r_power", "runesmithing:r_speed", "runesmithing:r_luck",
		})
		require.NoError(t, err)
		assert.Equal(t, models.SlotID(i), result.SlotID)
	}
}

func TestService_RecordsAndReport(t *testing.T) {
	ctx := context.Background()
	svc, h, _ := newServiceFixture(t)

	report := svc.Report()
	assert.Equal(t, 0, report.Used)
	assert.Equal(t, models.SlotCapacity, report.Capacity)

	stockBank(t, h)
	_, err := svc.Craft(ctx, "melvorD:Sword_Basic", []string{
		"runesmithing:r_power", "runesmithing:r_speed", "runesmithing:r_luck",
	})
	require.NoError(t, err)

	records := svc.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "e0", records[0].SlotID)
	assert.Equal(t, 1, svc.Report().Used)
}
