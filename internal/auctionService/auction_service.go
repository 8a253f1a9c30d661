package auction

import (
	"fmt"
	"sync"
	"time"

	"auction-draft/internal/auctionerrors"
	"auction-draft/internal/events"
	model "auction-draft/internal/models"
	"auction-draft/internal/nomination"
	"auction-draft/internal/repository"
	"auction-draft/internal/roster"
)

// AuctionService owns the auction lifecycle and the per-auction bidding
// snapshot. All mutations run validate-then-commit inside a per-auction
// mutex; events are published only after the lock is released.
type AuctionService struct {
	repo repository.AuctionDB
	pub  events.Publisher
	now  func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewAuctionService creates a new AuctionService instance.
func NewAuctionService(repo repository.AuctionDB, pub events.Publisher) *AuctionService {
	if pub == nil {
		pub = events.NopPublisher{}
	}
	return &AuctionService{
		repo:  repo,
		pub:   pub,
		now:   func() time.Time { return time.Now().UTC() },
		locks: make(map[string]*sync.Mutex),
	}
}

// lockFor returns the mutex serializing one auction's mutations. Locks are
// per auction id, never global.
func (s *AuctionService) lockFor(auctionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.locks[auctionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[auctionID] = l
	}
	return l
}

func (s *AuctionService) publish(evts []events.Event) {
	for _, e := range evts {
		s.pub.Publish(e)
	}
}

type trigger string

const (
	triggerStart    trigger = "start"
	triggerPause    trigger = "pause"
	triggerResume   trigger = "resume"
	triggerEndEarly trigger = "end_early"
	triggerArchive  trigger = "archive"
	triggerComplete trigger = "complete"
)

// transitions is the full lifecycle matrix. Any (status, trigger) pair not
// listed here fails with ErrInvalidTransition and leaves the auction as is.
var transitions = map[model.AuctionStatus]map[trigger]model.AuctionStatus{
	model.StatusDraft: {
		triggerStart: model.StatusInProgress,
	},
	model.StatusInProgress: {
		triggerPause:    model.StatusPaused,
		triggerEndEarly: model.StatusComplete,
		triggerComplete: model.StatusComplete,
	},
	model.StatusPaused: {
		triggerResume:   model.StatusInProgress,
		triggerEndEarly: model.StatusComplete,
	},
	model.StatusComplete: {
		triggerArchive: model.StatusArchived,
	},
	model.StatusArchived: {},
}

func nextStatus(cur model.AuctionStatus, trig trigger) (model.AuctionStatus, error) {
	if to, ok := transitions[cur][trig]; ok {
		return to, nil
	}
	return cur, fmt.Errorf("cannot %s an auction in status %s: %w", trig, cur, auctionerrors.ErrInvalidTransition)
}

// openCategories lists the distinct categories of items still available for
// nomination in an auction.
func (s *AuctionService) openCategories(auctionID string) ([]string, error) {
	items, err := s.repo.ItemsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list items for auction %s: %w", auctionID, err)
	}

	seen := make(map[string]bool)
	var cats []string
	for _, item := range items {
		if item.Available && !seen[item.Category] {
			seen[item.Category] = true
			cats = append(cats, item.Category)
		}
	}
	return cats, nil
}

// slotStates builds one team's roster slot snapshot.
func (s *AuctionService) slotStates(auctionID, teamID string) ([]roster.SlotState, error) {
	defs, err := s.repo.SlotDefsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load slot defs for auction %s: %w", auctionID, err)
	}
	picks, err := s.repo.PicksByTeam(teamID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load picks for team %s: %w", teamID, err)
	}
	return roster.BuildSlotStates(defs, picks), nil
}

// teamViews builds the eligibility snapshot for every team in an auction.
func (s *AuctionService) teamViews(auctionID string) (map[string]nomination.TeamView, error) {
	teams, err := s.repo.TeamsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list teams for auction %s: %w", auctionID, err)
	}

	views := make(map[string]nomination.TeamView, len(teams))
	for _, t := range teams {
		states, err := s.slotStates(auctionID, t.TeamID)
		if err != nil {
			return nil, err
		}
		views[t.TeamID] = nomination.TeamView{RemainingBudget: t.RemainingBudget, Slots: states}
	}
	return views, nil
}

// StartAuction moves a Draft auction into InProgress and seats the first
// nominator. It fails with ErrInvalidTransition unless the auction is in
// Draft with roster slots defined, a non-empty catalog, and at least one
// eligible nominator.
func (s *AuctionService) StartAuction(auctionID string) (model.Auction, error) {
	lock := s.lockFor(auctionID)
	lock.Lock()
	a, evts, err := s.startLocked(auctionID)
	lock.Unlock()
	if err != nil {
		return model.Auction{}, err
	}
	s.publish(evts)
	return a, nil
}

func (s *AuctionService) startLocked(auctionID string) (model.Auction, []events.Event, error) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: %w", err)
	}

	to, err := nextStatus(a.Status, triggerStart)
	if err != nil {
		return model.Auction{}, nil, err
	}

	defs, err := s.repo.SlotDefsByAuction(auctionID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: failed to load slot defs: %w", err)
	}
	if len(defs) == 0 {
		return model.Auction{}, nil, fmt.Errorf("roster slots not defined: %w", auctionerrors.ErrInvalidTransition)
	}

	cats, err := s.openCategories(auctionID)
	if err != nil {
		return model.Auction{}, nil, err
	}
	if len(cats) == 0 {
		return model.Auction{}, nil, fmt.Errorf("catalog is empty: %w", auctionerrors.ErrInvalidTransition)
	}

	entries, err := s.repo.NominationOrder(auctionID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: failed to load nomination order: %w", err)
	}
	views, err := s.teamViews(auctionID)
	if err != nil {
		return model.Auction{}, nil, err
	}

	res := nomination.Next(entries, views, cats, "")
	if !res.Found {
		return model.Auction{}, nil, fmt.Errorf("no eligible nominator: %w", auctionerrors.ErrInvalidTransition)
	}
	if err := s.repo.SaveNominationOrder(auctionID, res.Entries); err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: failed to save nomination order: %w", err)
	}

	a.Status = to
	a.CurrentNominatorID = res.NextParticipantID
	if err := s.repo.SaveAuction(a); err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: failed to save auction: %w", err)
	}

	evt := events.Event{
		Type:      events.TypeAuctionStarted,
		AuctionID: auctionID,
		Version:   a.Version,
		Payload:   map[string]any{"nominator_id": a.CurrentNominatorID},
	}
	return a, []events.Event{evt}, nil
}

// Pause gates the bidding state machine without touching its snapshot.
func (s *AuctionService) Pause(auctionID string) (model.Auction, error) {
	return s.lifecycle(auctionID, triggerPause, events.TypeAuctionPaused)
}

// Resume restores bidding exactly where Pause left it: the nominee, high bid
// and high bidder are untouched by the round trip.
func (s *AuctionService) Resume(auctionID string) (model.Auction, error) {
	return s.lifecycle(auctionID, triggerResume, events.TypeAuctionResumed)
}

// EndEarly terminates the auction before the rosters fill. An open
// nomination is abandoned unsold; its ledger entries remain.
func (s *AuctionService) EndEarly(auctionID string) (model.Auction, error) {
	lock := s.lockFor(auctionID)
	lock.Lock()
	a, evts, err := s.endEarlyLocked(auctionID)
	lock.Unlock()
	if err != nil {
		return model.Auction{}, err
	}
	s.publish(evts)
	return a, nil
}

func (s *AuctionService) endEarlyLocked(auctionID string) (model.Auction, []events.Event, error) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: %w", err)
	}

	to, err := nextStatus(a.Status, triggerEndEarly)
	if err != nil {
		return model.Auction{}, nil, err
	}

	a.Status = to
	if a.CurrentNominee != nil {
		a.CurrentNominee = nil
		a.Version++
	}
	a.CurrentNominatorID = ""
	if err := s.repo.SaveAuction(a); err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: failed to save auction: %w", err)
	}

	evt := events.Event{Type: events.TypeAuctionCompleted, AuctionID: auctionID, Version: a.Version}
	return a, []events.Event{evt}, nil
}

// Archive freezes a completed auction. Archiving an already archived auction
// is a no-op, not an error.
func (s *AuctionService) Archive(auctionID string) (model.Auction, error) {
	lock := s.lockFor(auctionID)
	lock.Lock()
	defer lock.Unlock()

	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: %w", err)
	}
	if a.Status == model.StatusArchived {
		return a, nil
	}

	to, err := nextStatus(a.Status, triggerArchive)
	if err != nil {
		return model.Auction{}, err
	}

	a.Status = to
	if err := s.repo.SaveAuction(a); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to save auction: %w", err)
	}

	s.pub.Publish(events.Event{Type: events.TypeAuctionArchived, AuctionID: auctionID, Version: a.Version})
	return a, nil
}

// lifecycle applies a plain status transition with no snapshot side effects.
func (s *AuctionService) lifecycle(auctionID string, trig trigger, evtType events.Type) (model.Auction, error) {
	lock := s.lockFor(auctionID)
	lock.Lock()
	a, err := s.lifecycleLocked(auctionID, trig)
	lock.Unlock()
	if err != nil {
		return model.Auction{}, err
	}
	s.pub.Publish(events.Event{Type: evtType, AuctionID: auctionID, Version: a.Version})
	return a, nil
}

func (s *AuctionService) lifecycleLocked(auctionID string, trig trigger) (model.Auction, error) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: %w", err)
	}

	to, err := nextStatus(a.Status, trig)
	if err != nil {
		return model.Auction{}, err
	}

	a.Status = to
	if err := s.repo.SaveAuction(a); err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to save auction: %w", err)
	}
	return a, nil
}

// Snapshot is the authoritative read view of one auction.
type Snapshot struct {
	Auction        model.Auction     `json:"auction"`
	Teams          []model.Team      `json:"teams"`
	Picks          []model.DraftPick `json:"picks"`
	ItemsRemaining int               `json:"items_remaining"`
}

// GetSnapshot returns the referee's view of the auction. Clients that lose a
// concurrency race re-read this and decide whether to re-submit.
func (s *AuctionService) GetSnapshot(auctionID string) (Snapshot, error) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("service: %w", err)
	}
	teams, err := s.repo.TeamsByAuction(auctionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("service: failed to list teams: %w", err)
	}
	picks, err := s.repo.PicksByAuction(auctionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("service: failed to list picks: %w", err)
	}
	items, err := s.repo.ItemsByAuction(auctionID)
	if err != nil {
		return Snapshot{}, fmt.Errorf("service: failed to list items: %w", err)
	}

	remaining := 0
	for _, item := range items {
		if item.Available {
			remaining++
		}
	}
	return Snapshot{Auction: a, Teams: teams, Picks: picks, ItemsRemaining: remaining}, nil
}

// AssignPosition moves a draft pick to another slot on the winning team. Any
// still-open slot the item is eligible for is allowed, the same rule the
// automatic assignment follows.
func (s *AuctionService) AssignPosition(auctionID, pickID, slotID string) (model.DraftPick, error) {
	lock := s.lockFor(auctionID)
	lock.Lock()
	pick, err := s.assignPositionLocked(auctionID, pickID, slotID)
	lock.Unlock()
	if err != nil {
		return model.DraftPick{}, err
	}

	s.pub.Publish(events.Event{
		Type:      events.TypePickReassigned,
		AuctionID: auctionID,
		Payload:   map[string]any{"pick_id": pick.PickID, "slot_id": pick.SlotID},
	})
	return pick, nil
}

func (s *AuctionService) assignPositionLocked(auctionID, pickID, slotID string) (model.DraftPick, error) {
	pick, err := s.repo.GetPick(pickID)
	if err != nil {
		return model.DraftPick{}, fmt.Errorf("service: %w", err)
	}
	if pick.AuctionID != auctionID {
		return model.DraftPick{}, fmt.Errorf("service: pick %s does not belong to auction %s: %w",
			pickID, auctionID, auctionerrors.ErrPickNotFound)
	}

	item, err := s.repo.GetItem(pick.ItemID)
	if err != nil {
		return model.DraftPick{}, fmt.Errorf("service: %w", err)
	}

	states, err := s.slotStates(auctionID, pick.TeamID)
	if err != nil {
		return model.DraftPick{}, err
	}
	if err := roster.ValidateOverride(item.Category, slotID, pick.SlotID, states); err != nil {
		return model.DraftPick{}, err
	}

	pick.SlotID = slotID
	if err := s.repo.SavePick(pick); err != nil {
		return model.DraftPick{}, fmt.Errorf("service: failed to save pick: %w", err)
	}
	return pick, nil
}
