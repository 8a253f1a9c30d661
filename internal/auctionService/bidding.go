package auction

import (
	"fmt"

	"auction-draft/internal/auctionerrors"
	"auction-draft/internal/budget"
	"auction-draft/internal/events"
	model "auction-draft/internal/models"
	"auction-draft/internal/nomination"
	"auction-draft/internal/roster"
	"auction-draft/utils"
)

// Nominate puts an item on the block with the implicit $1 opening bid from
// the nominator. It is the only automatic bid in the system.
func (s *AuctionService) Nominate(auctionID, participantID, itemID string) (model.Auction, error) {
	lock := s.lockFor(auctionID)
	lock.Lock()
	a, evts, err := s.nominateLocked(auctionID, participantID, itemID)
	lock.Unlock()
	if err != nil {
		return model.Auction{}, err
	}
	s.publish(evts)
	return a, nil
}

func (s *AuctionService) nominateLocked(auctionID, participantID, itemID string) (model.Auction, []events.Event, error) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: %w", err)
	}
	if a.Status != model.StatusInProgress {
		return model.Auction{}, nil, fmt.Errorf("cannot nominate while auction is %s: %w", a.Status, auctionerrors.ErrInvalidTransition)
	}
	if a.CurrentNominee != nil {
		return model.Auction{}, nil, fmt.Errorf("service: %w", auctionerrors.ErrNominationOpen)
	}
	if participantID != a.CurrentNominatorID {
		return model.Auction{}, nil, fmt.Errorf("service: %w - it is %s's turn", auctionerrors.ErrNotYourTurn, a.CurrentNominatorID)
	}

	item, err := s.repo.GetItem(itemID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: %w", err)
	}
	if item.AuctionID != auctionID {
		return model.Auction{}, nil, fmt.Errorf("service: item %s belongs to another auction: %w", itemID, auctionerrors.ErrItemNotFound)
	}
	if !item.Available {
		return model.Auction{}, nil, fmt.Errorf("service: %w", auctionerrors.ErrItemUnavailable)
	}

	team, err := s.repo.GetTeam(participantID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: %w", err)
	}
	states, err := s.slotStates(auctionID, participantID)
	if err != nil {
		return model.Auction{}, nil, err
	}
	if !roster.HasEligibleSlot(item.Category, states) {
		return model.Auction{}, nil, fmt.Errorf("service: %w", auctionerrors.ErrNoEligibleSlot)
	}
	if err := budget.Check(1, 0, team.RemainingBudget, roster.OpenCount(states)); err != nil {
		return model.Auction{}, nil, err
	}

	a.CurrentNominee = &model.ActiveNominee{
		ItemID:       itemID,
		HighBid:      1,
		HighBidderID: participantID,
		Passed:       make(map[string]bool),
	}
	a.Version++

	entries, err := s.repo.NominationOrder(auctionID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: failed to load nomination order: %w", err)
	}
	for i := range entries {
		if entries[i].ParticipantID == participantID {
			entries[i].HasNominatedThisRound = true
		}
	}
	if err := s.repo.SaveNominationOrder(auctionID, entries); err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: failed to save nomination order: %w", err)
	}

	rec := model.BidRecord{
		BidID:         utils.GenerateID(),
		AuctionID:     auctionID,
		ItemID:        itemID,
		ParticipantID: participantID,
		Amount:        1,
		Kind:          model.KindNomination,
		CreatedAt:     s.now(),
	}
	if err := s.repo.AppendBidRecord(rec); err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: failed to append nomination record: %w", err)
	}
	if err := s.repo.SaveAuction(a); err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: failed to save auction: %w", err)
	}

	evt := events.Event{
		Type:      events.TypeItemNominated,
		AuctionID: auctionID,
		Version:   a.Version,
		Payload:   map[string]any{"item_id": itemID, "nominator_id": participantID, "high_bid": 1},
	}
	return a, []events.Event{evt}, nil
}

// PlaceBid validates and commits one bid. expectedVersion, when non-nil, is
// compared against the auction's snapshot version under the lock: a mismatch
// means the caller acted on stale state and gets ErrConcurrencyConflict
// instead of a silently reordered commit.
func (s *AuctionService) PlaceBid(auctionID, participantID string, amount int, expectedVersion *int) (model.Auction, error) {
	lock := s.lockFor(auctionID)
	lock.Lock()
	a, evts, err := s.placeBidLocked(auctionID, participantID, amount, expectedVersion)
	lock.Unlock()
	if err != nil {
		return model.Auction{}, err
	}
	s.publish(evts)
	return a, nil
}

func (s *AuctionService) placeBidLocked(auctionID, participantID string, amount int, expectedVersion *int) (model.Auction, []events.Event, error) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: %w", err)
	}
	if a.Status != model.StatusInProgress {
		return model.Auction{}, nil, fmt.Errorf("cannot bid while auction is %s: %w", a.Status, auctionerrors.ErrInvalidTransition)
	}
	if a.CurrentNominee == nil {
		return model.Auction{}, nil, fmt.Errorf("service: %w", auctionerrors.ErrNoActiveNominee)
	}
	if expectedVersion != nil && *expectedVersion != a.Version {
		return model.Auction{}, nil, fmt.Errorf("expected snapshot version %d, current is %d: %w",
			*expectedVersion, a.Version, auctionerrors.ErrConcurrencyConflict)
	}

	team, err := s.repo.GetTeam(participantID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: %w", err)
	}
	if team.AuctionID != auctionID {
		return model.Auction{}, nil, fmt.Errorf("service: team %s belongs to another auction: %w", participantID, auctionerrors.ErrTeamNotFound)
	}

	item, err := s.repo.GetItem(a.CurrentNominee.ItemID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: %w", err)
	}
	states, err := s.slotStates(auctionID, participantID)
	if err != nil {
		return model.Auction{}, nil, err
	}
	if !roster.HasEligibleSlot(item.Category, states) {
		return model.Auction{}, nil, fmt.Errorf("service: %w", auctionerrors.ErrNoOpenSlot)
	}
	if err := budget.Check(amount, a.CurrentNominee.HighBid, team.RemainingBudget, roster.OpenCount(states)); err != nil {
		return model.Auction{}, nil, err
	}

	// A strictly higher bid re-opens the floor: every standing pass is
	// cleared, including the bidder's own.
	a.CurrentNominee.HighBid = amount
	a.CurrentNominee.HighBidderID = participantID
	a.CurrentNominee.Passed = make(map[string]bool)
	a.Version++

	rec := model.BidRecord{
		BidID:         utils.GenerateID(),
		AuctionID:     auctionID,
		ItemID:        a.CurrentNominee.ItemID,
		ParticipantID: participantID,
		Amount:        amount,
		Kind:          model.KindBid,
		CreatedAt:     s.now(),
	}
	if err := s.repo.AppendBidRecord(rec); err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: failed to append bid record: %w", err)
	}
	if err := s.repo.SaveAuction(a); err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: failed to save auction: %w", err)
	}

	evt := events.Event{
		Type:      events.TypeBidPlaced,
		AuctionID: auctionID,
		Version:   a.Version,
		Payload:   map[string]any{"item_id": a.CurrentNominee.ItemID, "high_bid": amount, "high_bidder_id": participantID},
	}
	return a, []events.Event{evt}, nil
}

// Pass excludes a participant from the current item's bidding round until a
// higher bid re-opens the floor. When no eligible bidder remains, bidding
// resolves automatically. It returns the number of bidders still able to act.
func (s *AuctionService) Pass(auctionID, participantID string) (int, error) {
	lock := s.lockFor(auctionID)
	lock.Lock()
	remaining, evts, err := s.passLocked(auctionID, participantID)
	lock.Unlock()
	if err != nil {
		return 0, err
	}
	s.publish(evts)
	return remaining, nil
}

func (s *AuctionService) passLocked(auctionID, participantID string) (int, []events.Event, error) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return 0, nil, fmt.Errorf("service: %w", err)
	}
	if a.Status != model.StatusInProgress {
		return 0, nil, fmt.Errorf("cannot pass while auction is %s: %w", a.Status, auctionerrors.ErrInvalidTransition)
	}
	if a.CurrentNominee == nil {
		return 0, nil, fmt.Errorf("service: %w", auctionerrors.ErrNoActiveNominee)
	}
	if _, err := s.repo.GetTeam(participantID); err != nil {
		return 0, nil, fmt.Errorf("service: %w", err)
	}

	a.CurrentNominee.Passed[participantID] = true
	a.Version++

	rec := model.BidRecord{
		BidID:         utils.GenerateID(),
		AuctionID:     auctionID,
		ItemID:        a.CurrentNominee.ItemID,
		ParticipantID: participantID,
		Kind:          model.KindPass,
		CreatedAt:     s.now(),
	}
	if err := s.repo.AppendBidRecord(rec); err != nil {
		return 0, nil, fmt.Errorf("service: failed to append pass record: %w", err)
	}

	remaining, err := s.remainingBidders(a)
	if err != nil {
		return 0, nil, err
	}

	evts := []events.Event{{
		Type:      events.TypeBidderPassed,
		AuctionID: auctionID,
		Version:   a.Version,
		Payload:   map[string]any{"item_id": a.CurrentNominee.ItemID, "participant_id": participantID, "remaining_bidders": remaining},
	}}

	if remaining == 0 {
		resolveEvts, err := s.resolveLocked(&a)
		if err != nil {
			return 0, nil, err
		}
		evts = append(evts, resolveEvts...)
	} else if err := s.repo.SaveAuction(a); err != nil {
		return 0, nil, fmt.Errorf("service: failed to save auction: %w", err)
	}

	return remaining, evts, nil
}

// remainingBidders counts teams that could still legally outbid the standing
// high bid: not the high bidder, not passed since the last raise, holding an
// eligible open slot and the budget to raise.
func (s *AuctionService) remainingBidders(a model.Auction) (int, error) {
	nominee := a.CurrentNominee
	item, err := s.repo.GetItem(nominee.ItemID)
	if err != nil {
		return 0, fmt.Errorf("service: %w", err)
	}
	teams, err := s.repo.TeamsByAuction(a.AuctionID)
	if err != nil {
		return 0, fmt.Errorf("service: failed to list teams: %w", err)
	}

	count := 0
	for _, t := range teams {
		if t.TeamID == nominee.HighBidderID || nominee.Passed[t.TeamID] {
			continue
		}
		states, err := s.slotStates(a.AuctionID, t.TeamID)
		if err != nil {
			return 0, err
		}
		if !roster.HasEligibleSlot(item.Category, states) {
			continue
		}
		if budget.MaxBid(t.RemainingBudget, roster.OpenCount(states)) < nominee.HighBid+1 {
			continue
		}
		count++
	}
	return count, nil
}

// EndBiddingNow is the master override that closes bidding on the current
// item immediately, selling it to the standing high bidder.
func (s *AuctionService) EndBiddingNow(auctionID string) (model.Auction, error) {
	lock := s.lockFor(auctionID)
	lock.Lock()
	a, evts, err := s.endBiddingLocked(auctionID)
	lock.Unlock()
	if err != nil {
		return model.Auction{}, err
	}
	s.publish(evts)
	return a, nil
}

func (s *AuctionService) endBiddingLocked(auctionID string) (model.Auction, []events.Event, error) {
	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, nil, fmt.Errorf("service: %w", err)
	}
	if a.Status != model.StatusInProgress {
		return model.Auction{}, nil, fmt.Errorf("cannot resolve while auction is %s: %w", a.Status, auctionerrors.ErrInvalidTransition)
	}
	if a.CurrentNominee == nil {
		// Resolution already ran; the guard makes a double EndBiddingNow a
		// visible no-op instead of a double sale.
		return model.Auction{}, nil, fmt.Errorf("service: %w", auctionerrors.ErrNoActiveNominee)
	}

	evts, err := s.resolveLocked(&a)
	if err != nil {
		return model.Auction{}, nil, err
	}
	return a, evts, nil
}

// resolveLocked is the single commit point for a sale. Caller holds the
// per-auction lock and guarantees a non-nil nominee.
func (s *AuctionService) resolveLocked(a *model.Auction) ([]events.Event, error) {
	nominee := a.CurrentNominee

	winner, err := s.repo.GetTeam(nominee.HighBidderID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	item, err := s.repo.GetItem(nominee.ItemID)
	if err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	states, err := s.slotStates(a.AuctionID, winner.TeamID)
	if err != nil {
		return nil, err
	}
	slotID, err := roster.Assign(item.Category, states)
	if err != nil {
		return nil, err
	}

	winner.RemainingBudget -= nominee.HighBid
	if err := s.repo.SaveTeam(winner); err != nil {
		return nil, fmt.Errorf("service: failed to save team: %w", err)
	}

	pick := model.DraftPick{
		PickID:     utils.GenerateID(),
		AuctionID:  a.AuctionID,
		TeamID:     winner.TeamID,
		ItemID:     item.ItemID,
		SlotID:     slotID,
		WinningBid: nominee.HighBid,
		CreatedAt:  s.now(),
	}
	if err := s.repo.SavePick(pick); err != nil {
		return nil, fmt.Errorf("service: failed to save pick: %w", err)
	}

	// The only writer of Available=false; the flip never reverts.
	item.Available = false
	if err := s.repo.SaveItem(item); err != nil {
		return nil, fmt.Errorf("service: failed to save item: %w", err)
	}
	if err := s.repo.MarkWinningBid(a.AuctionID, item.ItemID, winner.TeamID, nominee.HighBid); err != nil {
		return nil, fmt.Errorf("service: failed to mark winning bid: %w", err)
	}

	soldEvt := events.Event{
		Type:      events.TypeItemSold,
		AuctionID: a.AuctionID,
		Payload: map[string]any{
			"item_id":     item.ItemID,
			"winner_id":   winner.TeamID,
			"winning_bid": nominee.HighBid,
			"slot_id":     slotID,
			"pick_id":     pick.PickID,
		},
	}

	a.CurrentNominee = nil
	a.Version++
	soldEvt.Version = a.Version

	evts := []events.Event{soldEvt}

	// Advance the nomination turn; no eligible nominator left means the
	// auction has run its course.
	entries, err := s.repo.NominationOrder(a.AuctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to load nomination order: %w", err)
	}
	views, err := s.teamViews(a.AuctionID)
	if err != nil {
		return nil, err
	}
	cats, err := s.openCategories(a.AuctionID)
	if err != nil {
		return nil, err
	}

	res := nomination.Next(entries, views, cats, a.CurrentNominatorID)
	if err := s.repo.SaveNominationOrder(a.AuctionID, res.Entries); err != nil {
		return nil, fmt.Errorf("service: failed to save nomination order: %w", err)
	}

	if res.Found {
		a.CurrentNominatorID = res.NextParticipantID
	} else {
		to, terr := nextStatus(a.Status, triggerComplete)
		if terr != nil {
			return nil, terr
		}
		a.Status = to
		a.CurrentNominatorID = ""
		evts = append(evts, events.Event{Type: events.TypeAuctionCompleted, AuctionID: a.AuctionID, Version: a.Version})
	}

	if err := s.repo.SaveAuction(*a); err != nil {
		return nil, fmt.Errorf("service: failed to save auction: %w", err)
	}
	return evts, nil
}
