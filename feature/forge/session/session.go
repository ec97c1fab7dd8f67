package session

import (
	"context"
	"fmt"
	"strings"

	"rune-forge/core/slot"
	"rune-forge/feature/forge/models"
	"rune-forge/feature/forge/store"

	"go.uber.org/zap"
)

// firstTimeKey is the account-storage flag marking the welcome grant as done.
const firstTimeKey = "firstTime"

// State tracks the session's position in the load lifecycle.
type State int

const (
	StateUninitialized State = iota
	StateLoaded
	StateReconciled
)

func (s State) String() string {
	switch s {
	case StateLoaded:
		return "loaded"
	case StateReconciled:
		return "reconciled"
	default:
		return "uninitialized"
	}
}

// Session ties the record store, the synthesis engine and the host together
// for one process lifetime.
type Session struct {
	store   *store.Store
	engine  Engine
	host    Host
	account slot.Store
	cfg     *models.ForgeConfig
	logger  *zap.Logger

	state State
	// synthesized holds the slot ids already materialized this session.
	synthesized map[string]struct{}
}

// New creates a session with an empty synthesis cache.
func New(recordStore *store.Store, engine Engine, host Host, account slot.Store, cfg *models.ForgeConfig, logger *zap.Logger) *Session {
	return &Session{
		store:       recordStore,
		engine:      engine,
		host:        host,
		account:     account,
		cfg:         cfg,
		logger:      logger,
		state:       StateUninitialized,
		synthesized: make(map[string]struct{}),
	}
}

// State returns the session's lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Store exposes the record store the session reconciles against.
func (s *Session) Store() *store.Store {
	return s.store
}

// Reconcile loads the record store and materializes every record not yet
// synthesized this session. Safe to call repeatedly: cached slot ids are
// skipped entirely, so a second pass over an unchanged map is a no-op.
func (s *Session) Reconcile(ctx context.Context) error {
	if err := s.store.Load(ctx); err != nil {
		return err
	}
	s.state = StateLoaded

	for id, rec := range s.store.Records() {
		if !models.IsSlotID(id) {
			s.logger.Warn("Skipping record outside slot namespace", zap.String("slotId", id))
			continue
		}
		if _, done := s.synthesized[id]; done {
			continue
		}
		if _, err := s.Materialize(rec); err != nil {
			// A record pointing at a vanished base item must not take the
			// rest of the session down with it.
			s.logger.Warn("Failed to materialize record",
				zap.String("slotId", id),
				zap.Error(err),
			)
		}
	}

	s.state = StateReconciled
	return nil
}

// Materialize synthesizes one record, applies it onto its placeholder and
// marks the slot id as done for this session. The returned definition has
// already been applied.
func (s *Session) Materialize(rec models.CraftRecord) (*models.SynthesizedItem, error) {
	def, err := s.engine.Synthesize(rec)
	if err != nil {
		return nil, err
	}
	if err := s.engine.Apply(def, rec.SlotID); err != nil {
		return nil, err
	}
	s.synthesized[rec.SlotID] = struct{}{}
	return def, nil
}

// CleanRecords removes every persisted record whose crafted item is neither
// equipped nor held in the bank, then re-persists the shrunken map. Removed
// slot ids are evicted from the synthesis cache so a later craft can reuse
// them.
func (s *Session) CleanRecords(ctx context.Context) error {
	live := make(map[string]struct{})
	for _, eq := range s.host.EquippedItems(s.cfg.Namespace) {
		if id, ok := s.localSlotID(eq.ItemID); ok {
			live[id] = struct{}{}
		}
	}
	for _, itemID := range s.host.HeldItemIDs(s.cfg.Namespace) {
		if id, ok := s.localSlotID(itemID); ok {
			live[id] = struct{}{}
		}
	}

	var stale []string
	for id := range s.store.Records() {
		if _, ok := live[id]; !ok {
			stale = append(stale, id)
		}
	}
	if len(stale) == 0 {
		s.logger.Debug("No stale records to clean")
		return nil
	}

	if err := s.store.RemoveRecords(ctx, stale); err != nil {
		return fmt.Errorf("failed to clean stale records: %w", err)
	}
	for _, id := range stale {
		delete(s.synthesized, id)
	}
	s.logger.Info("Cleaned stale crafted-item records", zap.Int("removed", len(stale)))
	return nil
}

// ReequipCrafted unequips and immediately re-equips every equipped crafted
// item in the same (set, slot) triples. Logical equipment state is unchanged;
// the cycle only forces the host to re-read the synthesized stats.
func (s *Session) ReequipCrafted() error {
	equipped := s.host.EquippedItems(s.cfg.Namespace)
	for _, eq := range equipped {
		if err := s.host.Unequip(eq.Set, eq.Slot); err != nil {
			return fmt.Errorf("failed to unequip %s: %w", eq.ItemID, err)
		}
	}
	for _, eq := range equipped {
		if err := s.host.Equip(eq.ItemID, eq.Set, eq.Slot); err != nil {
			return fmt.Errorf("failed to re-equip %s: %w", eq.ItemID, err)
		}
	}
	if len(equipped) > 0 {
		s.logger.Debug("Re-equipped crafted items", zap.Int("count", len(equipped)))
	}
	return nil
}

// GrantWelcomeItems gives the configured starter items exactly once per
// account, tracked by an account-storage flag.
func (s *Session) GrantWelcomeItems(ctx context.Context) error {
	_, done, err := s.account.Get(ctx, firstTimeKey)
	if err != nil {
		return fmt.Errorf("failed to read first-time flag: %w", err)
	}
	if done {
		return nil
	}

	for _, grant := range s.cfg.WelcomeItems {
		if err := s.host.AddItem(grant.ID, grant.Quantity); err != nil {
			return fmt.Errorf("failed to grant %s: %w", grant.ID, err)
		}
	}
	if err := s.account.Set(ctx, firstTimeKey, "true"); err != nil {
		return fmt.Errorf("failed to set first-time flag: %w", err)
	}
	s.logger.Info("Granted welcome items", zap.Int("grants", len(s.cfg.WelcomeItems)))
	return nil
}

// localSlotID strips the mod namespace from a fully-qualified item id and
// reports whether the remainder is a placeholder slot id.
func (s *Session) localSlotID(itemID string) (string, bool) {
	local, ok := strings.CutPrefix(itemID, s.cfg.Namespace+":")
	if !ok || !models.IsSlotID(local) {
		return "", false
	}
	return local, true
}
