package forge

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"rune-forge/feature/forge/catalog"
	"rune-forge/feature/forge/models"
	"rune-forge/feature/forge/session"
	"rune-forge/feature/forge/store"
	"rune-forge/feature/forge/synthesis"

	"go.uber.org/zap"
)

// ErrInvalidRuneItem means a craft referenced an item that is not a
// configured rune token.
var ErrInvalidRuneItem = errors.New("not a configured rune item")

// CraftResult describes a successfully crafted item.
type CraftResult struct {
	SlotID string `json:"slotId"`
	ItemID string `json:"itemId"`
	Name   string `json:"name"`
}

// Report summarizes slot usage for a profile.
type Report struct {
	Used     int `json:"used"`
	Capacity int `json:"capacity"`
}

// Service implements the craft flow over the record store and session.
type Service struct {
	store   *store.Store
	session *session.Session
	catalog catalog.Catalog
	host    session.Host
	cfg     *models.ForgeConfig
	logger  *zap.Logger
}

// NewService creates the forge service.
func NewService(recordStore *store.Store, sess *session.Session, cat catalog.Catalog, h session.Host, cfg *models.ForgeConfig, logger *zap.Logger) *Service {
	return &Service{
		store:   recordStore,
		session: sess,
		catalog: cat,
		host:    h,
		cfg:     cfg,
		logger:  logger,
	}
}

// Craft combines a base item with three rune tokens into a new crafted item.
// Validation happens before anything is persisted, so a failed craft never
// writes a half-built record and never touches the bank.
func (s *Service) Craft(ctx context.Context, baseItemID string, runeItemIDs []string) (*CraftResult, error) {
	if len(runeItemIDs) != models.RuneSlotCount {
		return nil, fmt.Errorf("%w: need exactly %d runes, got %d", ErrInvalidRuneItem, models.RuneSlotCount, len(runeItemIDs))
	}

	var codes strings.Builder
	for _, runeItemID := range runeItemIDs {
		name, err := s.extractRuneName(runeItemID)
		if err != nil {
			return nil, err
		}
		code, ok := s.cfg.RuneCodes[name]
		if !ok {
			return nil, fmt.Errorf("%w: rune %q has no configured code", ErrInvalidRuneItem, name)
		}
		codes.WriteString(code)
	}

	if _, ok := s.catalog.Lookup(baseItemID); !ok {
		return nil, fmt.Errorf("%w: %s", synthesis.ErrItemNotFound, baseItemID)
	}

	slotID, err := s.store.AllocateFreeSlotID()
	if err != nil {
		return nil, err
	}

	rec := models.CraftRecord{SlotID: slotID, BaseItemID: baseItemID, RuneCode: codes.String()}
	if err := s.store.AddRecord(ctx, rec); err != nil {
		return nil, err
	}

	def, err := s.session.Materialize(rec)
	if err != nil {
		// Drop the record again; a record without a materialized item would
		// only linger until the next cleanup pass.
		if rbErr := s.store.RemoveRecords(ctx, []string{slotID}); rbErr != nil {
			s.logger.Error("Failed to roll back record after synthesis failure",
				zap.String("slotId", slotID),
				zap.Error(rbErr),
			)
		}
		return nil, err
	}

	craftedID := s.cfg.Namespace + ":" + slotID
	if err := s.host.AddItem(craftedID, 1); err != nil {
		s.logger.Warn("Failed to add crafted item to bank", zap.String("itemId", craftedID), zap.Error(err))
	}
	if err := s.host.RemoveItem(baseItemID, 1); err != nil {
		s.logger.Warn("Failed to consume base item", zap.String("itemId", baseItemID), zap.Error(err))
	}
	for _, runeItemID := range runeItemIDs {
		if err := s.host.RemoveItem(runeItemID, 1); err != nil {
			s.logger.Warn("Failed to consume rune", zap.String("itemId", runeItemID), zap.Error(err))
		}
	}

	s.logger.Info("Crafted item",
		zap.String("slotId", slotID),
		zap.String("baseItemId", baseItemID),
		zap.String("name", def.Name),
	)
	return &CraftResult{SlotID: slotID, ItemID: craftedID, Name: def.Name}, nil
}

// Records returns the live craft records sorted by slot index.
func (s *Service) Records() []models.CraftRecord {
	records := s.store.Records()
	out := make([]models.CraftRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		return slotIndex(out[i].SlotID) < slotIndex(out[j].SlotID)
	})
	return out
}

// Report returns slot usage against the fixed capacity.
func (s *Service) Report() Report {
	return Report{Used: s.store.Len(), Capacity: models.SlotCapacity}
}

// Clean runs the session's cleanup pass.
func (s *Service) Clean(ctx context.Context) error {
	return s.session.CleanRecords(ctx)
}

// extractRuneName pulls the rune name out of a rune item id of the form
// "<namespace>:r_<name>".
func (s *Service) extractRuneName(runeItemID string) (string, error) {
	_, local, ok := strings.Cut(runeItemID, ":")
	if !ok {
		return "", fmt.Errorf("%w: malformed id %q", ErrInvalidRuneItem, runeItemID)
	}
	name, ok := strings.CutPrefix(local, "r_")
	if !ok || name == "" {
		return "", fmt.Errorf("%w: %q is not a rune identifier", ErrInvalidRuneItem, runeItemID)
	}
	return name, nil
}

func slotIndex(slotID string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(slotID, "e"))
	return n
}
