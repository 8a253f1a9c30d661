package auction

import (
	"errors"
	"sync"
	"testing"
	"time"

	"auction-draft/internal/auctionerrors"
	"auction-draft/internal/events"
	model "auction-draft/internal/models"
	"auction-draft/internal/repository"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

// capturePublisher records published events for assertions.
type capturePublisher struct {
	mu   sync.Mutex
	evts []events.Event
}

func (p *capturePublisher) Publish(evt events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.evts = append(p.evts, evt)
}

func (p *capturePublisher) types() []events.Type {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]events.Type, len(p.evts))
	for i, e := range p.evts {
		out[i] = e.Type
	}
	return out
}

// seedDraft populates a repo with a ready-to-start auction: two teams, a
// flexible slot each, two forward items, team1 nominating first.
func seedDraft(t *testing.T, repo *repository.MemoryRepo, auctionID string, budget int) {
	t.Helper()

	require.NoError(t, repo.SaveAuction(model.Auction{AuctionID: auctionID, Name: "Draft", Status: model.StatusDraft}))
	require.NoError(t, repo.SaveTeam(model.Team{TeamID: "team1", AuctionID: auctionID, Name: "One", Budget: budget, RemainingBudget: budget}))
	require.NoError(t, repo.SaveTeam(model.Team{TeamID: "team2", AuctionID: auctionID, Name: "Two", Budget: budget, RemainingBudget: budget}))
	require.NoError(t, repo.SaveSlotDef(model.RosterSlotDef{SlotID: "flex", AuctionID: auctionID, IsFlexible: true, SlotsPerTeam: 1, DisplayOrder: 1}))
	require.NoError(t, repo.SaveItem(model.CatalogItem{ItemID: "itemX", AuctionID: auctionID, Name: "X", Category: "forward", Available: true}))
	require.NoError(t, repo.SaveItem(model.CatalogItem{ItemID: "itemY", AuctionID: auctionID, Name: "Y", Category: "forward", Available: true}))
	require.NoError(t, repo.SaveNominationOrder(auctionID, []model.NominationEntry{
		{AuctionID: auctionID, ParticipantID: "team1", OrderPosition: 1},
		{AuctionID: auctionID, ParticipantID: "team2", OrderPosition: 2},
	}))
}

// Test the lifecycle transition matrix through the exported operations
func TestAuctionService_LifecycleTransitions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		from       model.AuctionStatus
		op         func(s *AuctionService) (model.Auction, error)
		wantStatus model.AuctionStatus
		wantErr    error
	}{
		{name: "start_from_draft", from: model.StatusDraft,
			op: func(s *AuctionService) (model.Auction, error) { return s.StartAuction("a1") }, wantStatus: model.StatusInProgress},
		{name: "start_from_in_progress", from: model.StatusInProgress,
			op: func(s *AuctionService) (model.Auction, error) { return s.StartAuction("a1") }, wantErr: auctionerrors.ErrInvalidTransition},
		{name: "start_from_paused", from: model.StatusPaused,
			op: func(s *AuctionService) (model.Auction, error) { return s.StartAuction("a1") }, wantErr: auctionerrors.ErrInvalidTransition},
		{name: "start_from_complete", from: model.StatusComplete,
			op: func(s *AuctionService) (model.Auction, error) { return s.StartAuction("a1") }, wantErr: auctionerrors.ErrInvalidTransition},
		{name: "pause_from_in_progress", from: model.StatusInProgress,
			op: func(s *AuctionService) (model.Auction, error) { return s.Pause("a1") }, wantStatus: model.StatusPaused},
		{name: "pause_from_draft", from: model.StatusDraft,
			op: func(s *AuctionService) (model.Auction, error) { return s.Pause("a1") }, wantErr: auctionerrors.ErrInvalidTransition},
		{name: "pause_from_paused", from: model.StatusPaused,
			op: func(s *AuctionService) (model.Auction, error) { return s.Pause("a1") }, wantErr: auctionerrors.ErrInvalidTransition},
		{name: "resume_from_paused", from: model.StatusPaused,
			op: func(s *AuctionService) (model.Auction, error) { return s.Resume("a1") }, wantStatus: model.StatusInProgress},
		{name: "resume_from_in_progress", from: model.StatusInProgress,
			op: func(s *AuctionService) (model.Auction, error) { return s.Resume("a1") }, wantErr: auctionerrors.ErrInvalidTransition},
		{name: "end_early_from_in_progress", from: model.StatusInProgress,
			op: func(s *AuctionService) (model.Auction, error) { return s.EndEarly("a1") }, wantStatus: model.StatusComplete},
		{name: "end_early_from_paused", from: model.StatusPaused,
			op: func(s *AuctionService) (model.Auction, error) { return s.EndEarly("a1") }, wantStatus: model.StatusComplete},
		{name: "end_early_from_draft", from: model.StatusDraft,
			op: func(s *AuctionService) (model.Auction, error) { return s.EndEarly("a1") }, wantErr: auctionerrors.ErrInvalidTransition},
		{name: "archive_from_complete", from: model.StatusComplete,
			op: func(s *AuctionService) (model.Auction, error) { return s.Archive("a1") }, wantStatus: model.StatusArchived},
		{name: "archive_from_in_progress", from: model.StatusInProgress,
			op: func(s *AuctionService) (model.Auction, error) { return s.Archive("a1") }, wantErr: auctionerrors.ErrInvalidTransition},
		{name: "archive_from_archived_is_noop", from: model.StatusArchived,
			op: func(s *AuctionService) (model.Auction, error) { return s.Archive("a1") }, wantStatus: model.StatusArchived},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			repo := repository.NewMemoryRepo()
			seedDraft(t, repo, "a1", 200)
			a, err := repo.GetAuction("a1")
			require.NoError(t, err)
			a.Status = tc.from
			require.NoError(t, repo.SaveAuction(a))

			service := NewAuctionService(repo, nil)

			got, err := tc.op(service)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				// A rejected transition leaves the auction untouched
				after, gerr := repo.GetAuction("a1")
				require.NoError(t, gerr)
				require.Equal(t, tc.from, after.Status)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.wantStatus, got.Status)
		})
	}
}

// Test StartAuction preconditions beyond the status check
func TestAuctionService_StartAuctionGuards(t *testing.T) {
	t.Parallel()

	t.Run("seats_first_eligible_nominator", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepo()
		seedDraft(t, repo, "a1", 200)
		pub := &capturePublisher{}
		service := NewAuctionService(repo, pub)

		a, err := service.StartAuction("a1")
		require.NoError(t, err)
		require.Equal(t, model.StatusInProgress, a.Status)
		require.Equal(t, "team1", a.CurrentNominatorID)
		require.Equal(t, []events.Type{events.TypeAuctionStarted}, pub.types())
	})

	t.Run("no_roster_slots_defined", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepo()
		require.NoError(t, repo.SaveAuction(model.Auction{AuctionID: "a1", Status: model.StatusDraft}))
		require.NoError(t, repo.SaveItem(model.CatalogItem{ItemID: "itemX", AuctionID: "a1", Category: "forward", Available: true}))
		service := NewAuctionService(repo, nil)

		_, err := service.StartAuction("a1")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidTransition)
	})

	t.Run("empty_catalog", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepo()
		require.NoError(t, repo.SaveAuction(model.Auction{AuctionID: "a1", Status: model.StatusDraft}))
		require.NoError(t, repo.SaveSlotDef(model.RosterSlotDef{SlotID: "flex", AuctionID: "a1", IsFlexible: true, SlotsPerTeam: 1, DisplayOrder: 1}))
		service := NewAuctionService(repo, nil)

		_, err := service.StartAuction("a1")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidTransition)
	})

	t.Run("no_eligible_nominator", func(t *testing.T) {
		t.Parallel()

		repo := repository.NewMemoryRepo()
		seedDraft(t, repo, "a1", 200)

		// Drain both budgets so nobody can open at $1
		for _, id := range []string{"team1", "team2"} {
			tm, err := repo.GetTeam(id)
			require.NoError(t, err)
			tm.RemainingBudget = 0
			require.NoError(t, repo.SaveTeam(tm))
		}
		service := NewAuctionService(repo, nil)

		_, err := service.StartAuction("a1")
		require.ErrorIs(t, err, auctionerrors.ErrInvalidTransition)
	})

	t.Run("auction_not_found", func(t *testing.T) {
		t.Parallel()

		service := NewAuctionService(repository.NewMemoryRepo(), nil)
		_, err := service.StartAuction("missing")
		require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
	})
}

// Pause then Resume must restore the bidding snapshot bit for bit
func TestAuctionService_PauseResumeKeepsSnapshot(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedDraft(t, repo, "a1", 200)

	a, err := repo.GetAuction("a1")
	require.NoError(t, err)
	a.Status = model.StatusInProgress
	a.CurrentNominatorID = "team1"
	a.CurrentNominee = &model.ActiveNominee{
		ItemID:       "itemX",
		HighBid:      7,
		HighBidderID: "team2",
		Passed:       map[string]bool{"team1": true},
	}
	a.Version = 4
	require.NoError(t, repo.SaveAuction(a))

	service := NewAuctionService(repo, nil)

	paused, err := service.Pause("a1")
	require.NoError(t, err)
	require.Equal(t, model.StatusPaused, paused.Status)

	resumed, err := service.Resume("a1")
	require.NoError(t, err)
	require.Equal(t, model.StatusInProgress, resumed.Status)

	// Identical snapshot: same nominee, same passes, same version
	require.Equal(t, a.CurrentNominee, resumed.CurrentNominee)
	require.Equal(t, a.CurrentNominatorID, resumed.CurrentNominatorID)
	require.Equal(t, 4, resumed.Version)
}

// EndEarly abandons an open nomination without a sale
func TestAuctionService_EndEarlyAbandonsNominee(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedDraft(t, repo, "a1", 200)

	a, err := repo.GetAuction("a1")
	require.NoError(t, err)
	a.Status = model.StatusInProgress
	a.CurrentNominatorID = "team1"
	a.CurrentNominee = &model.ActiveNominee{ItemID: "itemX", HighBid: 3, HighBidderID: "team2", Passed: map[string]bool{}}
	a.Version = 2
	require.NoError(t, repo.SaveAuction(a))

	service := NewAuctionService(repo, nil)

	got, err := service.EndEarly("a1")
	require.NoError(t, err)
	require.Equal(t, model.StatusComplete, got.Status)
	require.Nil(t, got.CurrentNominee)
	require.Equal(t, 3, got.Version)

	// The item was never sold
	item, err := repo.GetItem("itemX")
	require.NoError(t, err)
	require.True(t, item.Available)

	tm, err := repo.GetTeam("team2")
	require.NoError(t, err)
	require.Equal(t, 200, tm.RemainingBudget)
}

// Test GetSnapshot
func TestAuctionService_GetSnapshot(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	seedDraft(t, repo, "a1", 200)
	require.NoError(t, repo.SavePick(model.DraftPick{PickID: "p1", AuctionID: "a1", TeamID: "team1", ItemID: "itemX", SlotID: "flex", WinningBid: 5, CreatedAt: time.Now().UTC()}))

	item, err := repo.GetItem("itemX")
	require.NoError(t, err)
	item.Available = false
	require.NoError(t, repo.SaveItem(item))

	service := NewAuctionService(repo, nil)

	snap, err := service.GetSnapshot("a1")
	require.NoError(t, err)
	require.Equal(t, "a1", snap.Auction.AuctionID)
	require.Len(t, snap.Teams, 2)
	require.Len(t, snap.Picks, 1)
	require.Equal(t, 1, snap.ItemsRemaining)

	_, err = service.GetSnapshot("missing")
	require.ErrorIs(t, err, auctionerrors.ErrAuctionNotFound)
}

// Test AssignPosition overrides
func TestAuctionService_AssignPosition(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*repository.MemoryRepo, *AuctionService) {
		t.Helper()
		repo := repository.NewMemoryRepo()
		require.NoError(t, repo.SaveAuction(model.Auction{AuctionID: "a1", Status: model.StatusInProgress}))
		require.NoError(t, repo.SaveTeam(model.Team{TeamID: "team1", AuctionID: "a1", Budget: 200, RemainingBudget: 190}))
		require.NoError(t, repo.SaveSlotDef(model.RosterSlotDef{SlotID: "fwd", AuctionID: "a1", Category: "forward", SlotsPerTeam: 1, DisplayOrder: 1}))
		require.NoError(t, repo.SaveSlotDef(model.RosterSlotDef{SlotID: "def", AuctionID: "a1", Category: "defender", SlotsPerTeam: 1, DisplayOrder: 2}))
		require.NoError(t, repo.SaveSlotDef(model.RosterSlotDef{SlotID: "flex", AuctionID: "a1", IsFlexible: true, SlotsPerTeam: 1, DisplayOrder: 3}))
		require.NoError(t, repo.SaveItem(model.CatalogItem{ItemID: "itemX", AuctionID: "a1", Category: "forward", Available: false}))
		require.NoError(t, repo.SavePick(model.DraftPick{PickID: "p1", AuctionID: "a1", TeamID: "team1", ItemID: "itemX", SlotID: "flex", WinningBid: 10, CreatedAt: time.Now().UTC()}))
		return repo, NewAuctionService(repo, nil)
	}

	t.Run("move_to_matching_slot", func(t *testing.T) {
		t.Parallel()

		_, service := setup(t)
		pick, err := service.AssignPosition("a1", "p1", "fwd")
		require.NoError(t, err)
		require.Equal(t, "fwd", pick.SlotID)
	})

	t.Run("category_mismatch_rejected", func(t *testing.T) {
		t.Parallel()

		_, service := setup(t)
		_, err := service.AssignPosition("a1", "p1", "def")
		require.ErrorIs(t, err, auctionerrors.ErrSlotNotEligible)
	})

	t.Run("full_slot_rejected", func(t *testing.T) {
		t.Parallel()

		repo, service := setup(t)
		require.NoError(t, repo.SaveItem(model.CatalogItem{ItemID: "itemZ", AuctionID: "a1", Category: "forward", Available: false}))
		require.NoError(t, repo.SavePick(model.DraftPick{PickID: "p2", AuctionID: "a1", TeamID: "team1", ItemID: "itemZ", SlotID: "fwd", WinningBid: 4, CreatedAt: time.Now().UTC()}))

		_, err := service.AssignPosition("a1", "p1", "fwd")
		require.ErrorIs(t, err, auctionerrors.ErrSlotFull)
	})

	t.Run("reassign_to_current_slot_allowed", func(t *testing.T) {
		t.Parallel()

		_, service := setup(t)
		pick, err := service.AssignPosition("a1", "p1", "flex")
		require.NoError(t, err)
		require.Equal(t, "flex", pick.SlotID)
	})

	t.Run("pick_from_other_auction", func(t *testing.T) {
		t.Parallel()

		_, service := setup(t)
		_, err := service.AssignPosition("a2", "p1", "fwd")
		require.ErrorIs(t, err, auctionerrors.ErrPickNotFound)
	})

	t.Run("pick_not_found", func(t *testing.T) {
		t.Parallel()

		_, service := setup(t)
		_, err := service.AssignPosition("a1", "missing", "fwd")
		require.ErrorIs(t, err, auctionerrors.ErrPickNotFound)
	})
}

// Persistence failures surface as wrapped errors, not partial commits
func TestAuctionService_RepoFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockAuctionDB(ctrl)
	service := NewAuctionService(mockRepo, nil)

	t.Run("get_auction_fails", func(t *testing.T) {
		mockRepo.EXPECT().GetAuction("a1").Return(model.Auction{}, errors.New("storage down"))

		_, err := service.Pause("a1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "storage down")
	})

	t.Run("save_auction_fails", func(t *testing.T) {
		mockRepo.EXPECT().GetAuction("a1").Return(model.Auction{AuctionID: "a1", Status: model.StatusInProgress}, nil)
		mockRepo.EXPECT().SaveAuction(gomock.Any()).Return(errors.New("write refused"))

		_, err := service.Pause("a1")
		require.Error(t, err)
		require.Contains(t, err.Error(), "write refused")
	})
}
