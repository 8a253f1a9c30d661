package budget

import (
	"errors"
	"testing"

	"auction-draft/internal/auctionerrors"

	"github.com/stretchr/testify/require"
)

// Tests MaxBid
func TestMaxBid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		remaining int
		openSlots int
		want      int
	}{
		{name: "budget_200_ten_slots", remaining: 200, openSlots: 10, want: 191},
		{name: "budget_50_two_slots", remaining: 50, openSlots: 2, want: 49},
		{name: "budget_10_last_slot", remaining: 10, openSlots: 1, want: 10},
		{name: "budget_50_three_slots", remaining: 50, openSlots: 3, want: 48},
		{name: "broke_team", remaining: 1, openSlots: 2, want: 0},
		{name: "no_open_slot", remaining: 100, openSlots: 0, want: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, MaxBid(tc.remaining, tc.openSlots))
		})
	}
}

// MaxBid must shrink (never grow) as more slots remain open for a fixed budget.
func TestMaxBid_MonotoneInOpenSlots(t *testing.T) {
	t.Parallel()

	prev := MaxBid(200, 1)
	for slots := 2; slots <= 20; slots++ {
		cur := MaxBid(200, slots)
		require.LessOrEqual(t, cur, prev, "MaxBid grew between %d and %d open slots", slots-1, slots)
		prev = cur
	}
}

func TestMinBid(t *testing.T) {
	t.Parallel()

	require.Equal(t, 1, MinBid(0), "no standing bid opens at $1")
	require.Equal(t, 1, MinBid(-5))
	require.Equal(t, 2, MinBid(1))
	require.Equal(t, 101, MinBid(100))
}

// Tests Check
func TestCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		amount    int
		highBid   int
		remaining int
		openSlots int
		wantErr   error
	}{
		{name: "legal_opening_bid", amount: 1, highBid: 0, remaining: 10, openSlots: 1, wantErr: nil},
		{name: "legal_raise", amount: 5, highBid: 1, remaining: 10, openSlots: 1, wantErr: nil},
		{name: "equal_to_high_bid", amount: 5, highBid: 5, remaining: 50, openSlots: 2, wantErr: auctionerrors.ErrBidTooLow},
		{name: "below_high_bid", amount: 3, highBid: 5, remaining: 50, openSlots: 2, wantErr: auctionerrors.ErrBidTooLow},
		{name: "budget_50_three_slots_49_rejected", amount: 49, highBid: 10, remaining: 50, openSlots: 3, wantErr: auctionerrors.ErrBudgetExceeded},
		{name: "budget_50_three_slots_48_accepted", amount: 48, highBid: 10, remaining: 50, openSlots: 3, wantErr: nil},
		{name: "no_open_slot", amount: 2, highBid: 1, remaining: 50, openSlots: 0, wantErr: auctionerrors.ErrNoOpenSlot},
		{name: "all_in_on_last_slot", amount: 10, highBid: 9, remaining: 10, openSlots: 1, wantErr: nil},
		{name: "one_over_all_in", amount: 11, highBid: 9, remaining: 10, openSlots: 1, wantErr: auctionerrors.ErrBudgetExceeded},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Check(tc.amount, tc.highBid, tc.remaining, tc.openSlots)
			if tc.wantErr != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.wantErr), "expected %v, got %v", tc.wantErr, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCanAfford(t *testing.T) {
	t.Parallel()

	require.True(t, CanAfford(10, 10), "a dollar per slot is still affordable")
	require.False(t, CanAfford(9, 10), "less than a dollar per slot is not")
	require.False(t, CanAfford(100, 0), "full roster can never afford")
	require.True(t, CanAfford(1, 1))
}
