package repository

import (
	"fmt"
	"sort"
	"sync"

	"auction-draft/internal/auctionerrors"
	model "auction-draft/internal/models"
)

//go:generate mockgen -source=repository.go -destination=mock_repository.go -package=repository

// AuctionDB is the persistence boundary for the auction core. The core is
// agnostic to the concrete storage technology behind it.
type AuctionDB interface {
	GetAuction(auctionID string) (model.Auction, error)
	SaveAuction(a model.Auction) error

	GetTeam(teamID string) (model.Team, error)
	SaveTeam(t model.Team) error
	TeamsByAuction(auctionID string) ([]model.Team, error)

	GetItem(itemID string) (model.CatalogItem, error)
	SaveItem(item model.CatalogItem) error
	ItemsByAuction(auctionID string) ([]model.CatalogItem, error)

	SlotDefsByAuction(auctionID string) ([]model.RosterSlotDef, error)
	SaveSlotDef(def model.RosterSlotDef) error

	NominationOrder(auctionID string) ([]model.NominationEntry, error)
	SaveNominationOrder(auctionID string, entries []model.NominationEntry) error

	AppendBidRecord(rec model.BidRecord) error
	BidRecordsByAuction(auctionID string) ([]model.BidRecord, error)
	MarkWinningBid(auctionID, itemID, participantID string, amount int) error

	SavePick(p model.DraftPick) error
	GetPick(pickID string) (model.DraftPick, error)
	PicksByTeam(teamID string) ([]model.DraftPick, error)
	PicksByAuction(auctionID string) ([]model.DraftPick, error)

	SaveSession(s model.Session) error
	GetSession(sessionID string) (model.Session, error)
	SessionByParticipant(participantID string) (model.Session, error)
	AllSessions() ([]model.Session, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB.
type MemoryRepo struct {
	mu       sync.RWMutex
	auctions map[string]model.Auction
	teams    map[string]model.Team
	items    map[string]model.CatalogItem
	slotDefs map[string][]model.RosterSlotDef   // key: auctionID
	orders   map[string][]model.NominationEntry // key: auctionID
	records  map[string][]model.BidRecord       // key: auctionID, append-only
	picks    map[string]model.DraftPick         // key: pickID
	sessions map[string]model.Session           // key: sessionID
}

// NewMemoryRepo creates a new in-memory repository instance.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		auctions: make(map[string]model.Auction),
		teams:    make(map[string]model.Team),
		items:    make(map[string]model.CatalogItem),
		slotDefs: make(map[string][]model.RosterSlotDef),
		orders:   make(map[string][]model.NominationEntry),
		records:  make(map[string][]model.BidRecord),
		picks:    make(map[string]model.DraftPick),
		sessions: make(map[string]model.Session),
	}
}

// cloneAuction deep-copies the nominee snapshot so callers never alias the
// stored pass set.
func cloneAuction(a model.Auction) model.Auction {
	if a.CurrentNominee == nil {
		return a
	}
	nominee := *a.CurrentNominee
	nominee.Passed = make(map[string]bool, len(a.CurrentNominee.Passed))
	for k, v := range a.CurrentNominee.Passed {
		nominee.Passed[k] = v
	}
	a.CurrentNominee = &nominee
	return a
}

func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, auctionerrors.ErrAuctionNotFound)
	}
	return cloneAuction(a), nil
}

func (r *MemoryRepo) SaveAuction(a model.Auction) error {
	if a.AuctionID == "" {
		return fmt.Errorf("save auction: %w - empty auction id", auctionerrors.ErrInvalidAction)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.auctions[a.AuctionID] = cloneAuction(a)
	return nil
}

func (r *MemoryRepo) GetTeam(teamID string) (model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.teams[teamID]
	if !ok {
		return model.Team{}, fmt.Errorf("get team %s: %w", teamID, auctionerrors.ErrTeamNotFound)
	}
	return t, nil
}

func (r *MemoryRepo) SaveTeam(t model.Team) error {
	if t.TeamID == "" {
		return fmt.Errorf("save team: %w - empty team id", auctionerrors.ErrInvalidAction)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teams[t.TeamID] = t
	return nil
}

func (r *MemoryRepo) TeamsByAuction(auctionID string) ([]model.Team, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var teams []model.Team
	for _, t := range r.teams {
		if t.AuctionID == auctionID {
			teams = append(teams, t)
		}
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].TeamID < teams[j].TeamID })
	return teams, nil
}

func (r *MemoryRepo) GetItem(itemID string) (model.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.CatalogItem{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	return item, nil
}

func (r *MemoryRepo) SaveItem(item model.CatalogItem) error {
	if item.ItemID == "" {
		return fmt.Errorf("save item: %w - empty item id", auctionerrors.ErrInvalidAction)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ItemID] = item
	return nil
}

func (r *MemoryRepo) ItemsByAuction(auctionID string) ([]model.CatalogItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var items []model.CatalogItem
	for _, item := range r.items {
		if item.AuctionID == auctionID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items, nil
}

func (r *MemoryRepo) SlotDefsByAuction(auctionID string) ([]model.RosterSlotDef, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.RosterSlotDef(nil), r.slotDefs[auctionID]...), nil
}

func (r *MemoryRepo) SaveSlotDef(def model.RosterSlotDef) error {
	if def.SlotID == "" || def.AuctionID == "" {
		return fmt.Errorf("save slot def: %w - empty id", auctionerrors.ErrInvalidAction)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	defs := r.slotDefs[def.AuctionID]
	for i, d := range defs {
		if d.SlotID == def.SlotID {
			defs[i] = def
			return nil
		}
	}
	r.slotDefs[def.AuctionID] = append(defs, def)
	return nil
}

func (r *MemoryRepo) NominationOrder(auctionID string) ([]model.NominationEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.NominationEntry(nil), r.orders[auctionID]...), nil
}

func (r *MemoryRepo) SaveNominationOrder(auctionID string, entries []model.NominationEntry) error {
	if auctionID == "" {
		return fmt.Errorf("save nomination order: %w - empty auction id", auctionerrors.ErrInvalidAction)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[auctionID] = append([]model.NominationEntry(nil), entries...)
	return nil
}

// AppendBidRecord adds one entry to the audit ledger. Nothing ever removes
// ledger entries.
func (r *MemoryRepo) AppendBidRecord(rec model.BidRecord) error {
	if rec.AuctionID == "" || rec.BidID == "" {
		return fmt.Errorf("append bid record: %w - empty id", auctionerrors.ErrInvalidAction)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.AuctionID] = append(r.records[rec.AuctionID], rec)
	return nil
}

func (r *MemoryRepo) BidRecordsByAuction(auctionID string) ([]model.BidRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]model.BidRecord(nil), r.records[auctionID]...), nil
}

// MarkWinningBid flags the ledger entry matching the resolved high bid. The
// flag is the only field on a ledger entry that is ever touched after append.
func (r *MemoryRepo) MarkWinningBid(auctionID, itemID, participantID string, amount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs := r.records[auctionID]
	for i := len(recs) - 1; i >= 0; i-- {
		rec := recs[i]
		if rec.ItemID == itemID && rec.ParticipantID == participantID && rec.Amount == amount && rec.Kind != model.KindPass {
			recs[i].IsWinning = true
			return nil
		}
	}
	return fmt.Errorf("mark winning bid for item %s: no matching ledger entry", itemID)
}

func (r *MemoryRepo) SavePick(p model.DraftPick) error {
	if p.PickID == "" {
		return fmt.Errorf("save pick: %w - empty pick id", auctionerrors.ErrInvalidAction)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.picks[p.PickID] = p
	return nil
}

func (r *MemoryRepo) GetPick(pickID string) (model.DraftPick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.picks[pickID]
	if !ok {
		return model.DraftPick{}, fmt.Errorf("get pick %s: %w", pickID, auctionerrors.ErrPickNotFound)
	}
	return p, nil
}

func (r *MemoryRepo) PicksByTeam(teamID string) ([]model.DraftPick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var picks []model.DraftPick
	for _, p := range r.picks {
		if p.TeamID == teamID {
			picks = append(picks, p)
		}
	}
	sort.Slice(picks, func(i, j int) bool { return picks[i].CreatedAt.Before(picks[j].CreatedAt) })
	return picks, nil
}

func (r *MemoryRepo) PicksByAuction(auctionID string) ([]model.DraftPick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var picks []model.DraftPick
	for _, p := range r.picks {
		if p.AuctionID == auctionID {
			picks = append(picks, p)
		}
	}
	sort.Slice(picks, func(i, j int) bool { return picks[i].CreatedAt.Before(picks[j].CreatedAt) })
	return picks, nil
}

func (r *MemoryRepo) SaveSession(s model.Session) error {
	if s.SessionID == "" {
		return fmt.Errorf("save session: %w - empty session id", auctionerrors.ErrInvalidAction)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.SessionID] = s
	return nil
}

func (r *MemoryRepo) GetSession(sessionID string) (model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return model.Session{}, fmt.Errorf("get session %s: %w", sessionID, auctionerrors.ErrSessionNotFound)
	}
	return s, nil
}

func (r *MemoryRepo) SessionByParticipant(participantID string) (model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.ParticipantID == participantID {
			return s, nil
		}
	}
	return model.Session{}, fmt.Errorf("session for participant %s: %w", participantID, auctionerrors.ErrSessionNotFound)
}

func (r *MemoryRepo) AllSessions() ([]model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sessions := make([]model.Session, 0, len(r.sessions))
	for _, s := range r.sessions {
		sessions = append(sessions, s)
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].SessionID < sessions[j].SessionID })
	return sessions, nil
}
