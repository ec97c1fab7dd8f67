package synthesis

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"rune-forge/core/utils"
	"rune-forge/feature/forge/catalog"
	"rune-forge/feature/forge/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrItemNotFound means the record's base item id is absent from the catalog.
	ErrItemNotFound = errors.New("base item not found")
	// ErrInvalidRuneCode means the record's rune code is not exactly three
	// configured single-character codes.
	ErrInvalidRuneCode = errors.New("invalid rune code")
)

// Engine turns craft records into full item definitions and applies them
// onto the placeholder arena.
type Engine struct {
	catalog    catalog.Catalog
	cfg        *models.ForgeConfig
	codeToName map[string]string
	registry   *Registry
	logger     *zap.Logger
}

// NewEngine creates an engine over the given catalog, rune configuration and
// placeholder registry.
func NewEngine(cat catalog.Catalog, cfg *models.ForgeConfig, registry *Registry, logger *zap.Logger) *Engine {
	return &Engine{
		catalog:    cat,
		cfg:        cfg,
		codeToName: cfg.CodeToName(),
		registry:   registry,
		logger:     logger,
	}
}

// Registry exposes the placeholder arena the engine applies onto.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Synthesize derives the full item definition for one record.
func (e *Engine) Synthesize(rec models.CraftRecord) (*models.SynthesizedItem, error) {
	base, ok := e.catalog.Lookup(rec.BaseItemID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrItemNotFound, rec.BaseItemID)
	}

	codes := []rune(rec.RuneCode)
	if len(codes) != models.RuneSlotCount {
		return nil, fmt.Errorf("%w: %q is not %d characters", ErrInvalidRuneCode, rec.RuneCode, models.RuneSlotCount)
	}

	runeNames := make([]string, 0, models.RuneSlotCount)
	templates := make([]models.RuneModifier, 0, models.RuneSlotCount)
	for i, code := range codes {
		name, ok := e.codeToName[string(code)]
		if !ok {
			return nil, fmt.Errorf("%w: unconfigured code %q", ErrInvalidRuneCode, string(code))
		}
		slots, ok := e.cfg.RuneModifiers[name]
		if !ok {
			return nil, fmt.Errorf("%w: rune %q has no modifier table", ErrInvalidRuneCode, name)
		}
		tpl, _ := slots.Template(i + 1)
		runeNames = append(runeNames, capitalize(name))
		templates = append(templates, tpl)
	}

	combined := CombineModifiers(base.Modifiers, templates, e.logger)

	def := &models.SynthesizedItem{
		// Synthesis-local identity; never persisted, only keeps concurrent
		// definitions within one session distinguishable.
		ID:                  fmt.Sprintf("synth_%s_%s", rec.SlotID, uuid.NewString()),
		ItemType:            "Equipment",
		Type:                base.Type,
		Name:                fmt.Sprintf("%s (%s)", base.Name, strings.Join(runeNames, "-")),
		Category:            base.Category,
		AttackType:          base.AttackType,
		Media:               base.Media,
		IgnoreCompletion:    true,
		ObtainFromItemLog:   base.ObtainFromItemLog,
		GolbinRaidExclusive: base.GolbinRaidExclusive,
		SellsFor:            base.SellsFor,
		Tier:                base.Tier,
		ValidSlots:          append([]string(nil), base.ValidSlots...),
		OccupiesSlots:       append([]string(nil), base.OccupiesSlots...),
		EquipRequirements:   flattenEntries(base.EquipRequirements),
		Modifiers:           combined,
		EquipmentStats:      flattenEntries(base.EquipmentStats),
	}
	return def, nil
}

// Apply overwrites the mutable fields of the placeholder registered for
// slotID with the synthesized definition. Safe to call repeatedly; the same
// definition always yields the same placeholder state.
func (e *Engine) Apply(def *models.SynthesizedItem, slotID string) error {
	target, ok := e.registry.Get(slotID)
	if !ok {
		return fmt.Errorf("no placeholder registered for slot %s", slotID)
	}

	target.Name = def.Name
	target.CustomDescription = ""
	target.Category = def.Category
	target.Type = def.Type
	target.AttackType = def.AttackType
	target.Media = def.Media
	target.IgnoreCompletion = def.IgnoreCompletion
	target.ObtainFromItemLog = def.ObtainFromItemLog
	target.GolbinRaidExclusive = def.GolbinRaidExclusive
	target.SellsFor = def.SellsFor
	target.Tier = def.Tier
	target.ValidSlots = def.ValidSlots
	target.OccupiesSlots = def.OccupiesSlots
	target.EquipRequirements = def.EquipRequirements
	target.Modifiers = def.Modifiers
	target.EquipmentStats = def.EquipmentStats
	return nil
}

// flattenEntries normalizes requirement/stat entries into plain data:
// nested objects carrying an identity collapse to a "<field>ID" scalar and
// host back-references are dropped.
func flattenEntries(entries []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(entries))
	for _, entry := range entries {
		flat := make(map[string]any, len(entry))
		for key, value := range entry {
			if key == "game" {
				continue
			}
			if nested, ok := value.(map[string]any); ok {
				if id, has := nested["id"]; has {
					flat[key+"ID"] = utils.ToString(id)
					continue
				}
			}
			flat[key] = value
		}
		out = append(out, flat)
	}
	return out
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
