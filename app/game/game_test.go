package game

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chatopoly/monopoly-bot/app/models"
	"github.com/chatopoly/monopoly-bot/platform/board"
)

func TestNewGameNeedsTwoPlayers(t *testing.T) {
	_, err := NewGame(testEntries[:1], dice())
	require.ErrorIs(t, err, ErrNotEnoughPlayers)

	g, err := NewGame(testEntries[:2], dice())
	require.NoError(t, err)
	require.Equal(t, StatusRoll, g.Status)
	require.Equal(t, 0, g.Current)
	for _, p := range g.Players {
		require.Equal(t, StartingCash, p.Cash)
		require.Zero(t, p.Position)
		require.Empty(t, p.Ownership)
	}
}

func TestRollOutOfTurn(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 2}), 2)
	_, _, err := g.Roll(2)
	require.ErrorIs(t, err, ErrNotYourTurn)
}

func TestRollLandsOnUnownedStreetWaitsForDecision(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 2}), 2)
	out, res, err := g.Roll(1)
	require.NoError(t, err)
	require.Contains(t, out.Out, "Whitechapel Road")
	require.Contains(t, out.Out, "Buy for 60")
	require.Equal(t, StatusBuy, g.Status)
	// The turn must not pass while the decision is pending.
	require.Equal(t, 0, g.Current)
	require.Equal(t, models.StatusBuy, res.Status)
	require.Equal(t, int64(1), res.CurrentUserId)
}

func TestRollLandsOnIncomeTaxAdvancesTurn(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 3}), 2)
	_, res, err := g.Roll(1)
	require.NoError(t, err)
	require.Equal(t, StartingCash-board.IncomeTaxAmount, g.Players[0].Cash)
	require.Equal(t, StatusRoll, g.Status)
	require.Equal(t, 1, g.Current)
	require.Equal(t, int64(2), res.CurrentUserId)
	require.Nil(t, res.Rent)
}

func TestRollPassingGoCredits200(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 1}), 2)
	g.Players[0].Position = 38
	out, res, err := g.Roll(1)
	require.NoError(t, err)
	require.Equal(t, 0, res.Position)
	require.Equal(t, StartingCash+PassGoCredit, g.Players[0].Cash)
	require.Contains(t, out.Out, "Passed GO.")
	require.Equal(t, 1, g.Current)
}

func TestRollOnOtherPlayersStreetSettlesRent(t *testing.T) {
	// Alice owns the whole brown set; Bob comes around the board onto
	// Old Kent Road and owes double base rent.
	g := newTestGame(t, dice([2]int{1, 1}), 2)
	g.Players[0].Ownership[1] = 0
	g.Players[0].Ownership[3] = 0
	g.Current = 1
	g.Players[1].Position = 39

	_, res, err := g.Roll(2)
	require.NoError(t, err)
	require.Equal(t, 1, res.Position)
	require.NotNil(t, res.Rent)
	require.Equal(t, 4, res.Rent.Amount)
	require.Equal(t, StartingCash+PassGoCredit-4, g.Players[1].Cash)
	require.Equal(t, StartingCash+4, g.Players[0].Cash)
	require.Equal(t, StatusRoll, g.Status)
	require.Equal(t, 0, g.Current)
}

func TestRollRentMayGoNegative(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 2}), 2)
	g.Players[0].Ownership[3] = 3
	g.Current = 1
	g.Players[1].Cash = 50

	out, res, err := g.Roll(2)
	require.NoError(t, err)
	require.Equal(t, 180, res.Rent.Amount)
	require.Equal(t, 50-180, g.Players[1].Cash)
	require.NotEmpty(t, out.Warning)
	require.Equal(t, 0, g.Current)
}

func TestRollOnOwnPropertyJustAdvances(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 2}), 2)
	g.Players[0].Ownership[3] = 0
	_, res, err := g.Roll(1)
	require.NoError(t, err)
	require.Nil(t, res.Rent)
	require.Equal(t, StartingCash, g.Players[0].Cash)
	require.Equal(t, 1, g.Current)
}

func TestRollOnUtilityRentUsesFreshRoll(t *testing.T) {
	// First throw moves Bob onto Electric Company, second is the rent
	// roll: 3+4 at the single-utility multiplier of 4.
	g := newTestGame(t, dice([2]int{4, 3}, [2]int{3, 4}), 2)
	g.Players[0].Ownership[12] = 0
	g.Current = 1
	g.Players[1].Position = 5

	_, res, err := g.Roll(2)
	require.NoError(t, err)
	require.Equal(t, 12, res.Position)
	require.Equal(t, 28, res.Rent.Amount)
}

func TestRollGoToJailRelocates(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 3}), 2)
	g.Players[0].Position = 26
	_, res, err := g.Roll(1)
	require.NoError(t, err)
	require.Equal(t, board.JailPos, res.Position)
	require.Equal(t, board.JailPos, g.Players[0].Position)
	require.Equal(t, 1, g.Current)
}

func TestRollChanceDrawsACard(t *testing.T) {
	// 3+4 lands on Chance at 7; the draw consumes the next throw.
	g := newTestGame(t, dice([2]int{3, 4}, [2]int{1, 1}), 2)
	out, res, err := g.Roll(1)
	require.NoError(t, err)
	require.Equal(t, 7, res.Position)
	require.Contains(t, out.Out, "Drew a card")
	require.NotEqual(t, StartingCash, g.Players[0].Cash)
	require.Equal(t, 1, g.Current)
}

func TestBuy(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 2}), 2)
	_, _, err := g.Roll(1)
	require.NoError(t, err)

	_, _, err = g.Buy(2)
	require.ErrorIs(t, err, ErrNotYourTurn)

	out, res, err := g.Buy(1)
	require.NoError(t, err)
	require.Contains(t, out.Out, "Purchased Whitechapel Road.")
	require.Equal(t, StartingCash-60, g.Players[0].Cash)
	require.Equal(t, map[int]int{3: 0}, g.Players[0].Ownership)
	require.Equal(t, StatusRoll, g.Status)
	require.Equal(t, 1, g.Current)
	require.Equal(t, 3, res.TileId)
	require.Equal(t, int64(2), res.CurrentUserId)
}

func TestBuyWrongStateAndFunds(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 2}), 2)
	_, _, err := g.Buy(1)
	require.ErrorIs(t, err, ErrWrongState)

	_, _, err = g.Roll(1)
	require.NoError(t, err)
	g.Players[0].Cash = 10
	_, _, err = g.Buy(1)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	// The refusal left nothing half-applied.
	require.Equal(t, 10, g.Players[0].Cash)
	require.Empty(t, g.Players[0].Ownership)
	require.Equal(t, StatusBuy, g.Status)
}

func TestAuctionOpensAtForty(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 2}), 2)
	_, _, err := g.Roll(1)
	require.NoError(t, err)

	out, res, err := g.Auction(1)
	require.NoError(t, err)
	require.Contains(t, out.Out, "Starting bid is 40.")
	require.Equal(t, StatusAuction, g.Status)
	require.Equal(t, OpeningBid, g.BiggestBid)
	require.Equal(t, int64(1), g.BidderId)
	require.Equal(t, AuctionWindowSec, g.BidTimeSec)
	require.Equal(t, AuctionWindowSec, res.BidTimeSec)
	// Still Alice's tile under the hammer; the turn has not passed.
	require.Equal(t, 0, g.Current)
}

func TestAuctionNeedsOpeningBidMoney(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 2}), 2)
	_, _, err := g.Roll(1)
	require.NoError(t, err)
	g.Players[0].Cash = OpeningBid - 1
	_, _, err = g.Auction(1)
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestBidValidation(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 2}), 2)
	_, _, err := g.Bid(2, 60)
	require.ErrorIs(t, err, ErrWrongState)

	_, _, err = g.Roll(1)
	require.NoError(t, err)
	_, _, err = g.Auction(1)
	require.NoError(t, err)

	_, _, err = g.Bid(2, OpeningBid)
	require.ErrorIs(t, err, ErrBidTooLow)
	_, _, err = g.Bid(2, OpeningBid-5)
	require.ErrorIs(t, err, ErrBidTooLow)
	_, _, err = g.Bid(2, StartingCash+1)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	_, _, err = g.Bid(99, 60)
	require.ErrorIs(t, err, ErrNotAPlayer)

	_, res, err := g.Bid(2, 60)
	require.NoError(t, err)
	require.Equal(t, 60, g.BiggestBid)
	require.Equal(t, int64(2), g.BidderId)
	require.Equal(t, AuctionWindowSec, res.BidTimeSec)
}

func TestResolveAuctionSellsAtWinningBid(t *testing.T) {
	g := newTestGame(t, dice([2]int{1, 2}), 2)
	_, _, err := g.Roll(1)
	require.NoError(t, err)
	_, _, err = g.Auction(1)
	require.NoError(t, err)
	_, _, err = g.Bid(2, 60)
	require.NoError(t, err)

	res := g.resolveAuction()
	require.Equal(t, int64(2), res.BuyerId)
	require.Equal(t, 3, res.TileId)
	require.Equal(t, 60, res.Amount)
	require.Equal(t, StartingCash-60, g.Players[1].Cash)
	require.Equal(t, StartingCash, g.Players[0].Cash)
	require.Equal(t, map[int]int{3: 0}, g.Players[1].Ownership)
	require.Equal(t, StatusRoll, g.Status)
	require.Equal(t, 1, g.Current)
	require.Zero(t, g.BiggestBid)
	require.Zero(t, g.BidderId)
}

func TestRentCommand(t *testing.T) {
	g := newTestGame(t, dice(), 2)
	g.Players[0].Ownership[5] = 0
	g.Players[1].Position = 5

	out, res, err := g.Rent(2)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Equal(t, 25, res.Amount)
	require.Equal(t, StartingCash-25, g.Players[1].Cash)
	require.Equal(t, StartingCash+25, g.Players[0].Cash)
	require.Contains(t, out.Out, "paid 25 rent")
}

func TestRentCommandNoOps(t *testing.T) {
	g := newTestGame(t, dice(), 2)
	out, res, err := g.Rent(1)
	require.NoError(t, err)
	require.Nil(t, res)
	require.NotEmpty(t, out.Warning)

	g.Players[0].Ownership[1] = 0
	g.Players[0].Position = 1
	out, res, err = g.Rent(1)
	require.NoError(t, err)
	require.Nil(t, res)
	require.Contains(t, out.Warning, "yourself")

	_, _, err = g.Rent(99)
	require.ErrorIs(t, err, ErrNotAPlayer)
}

func TestBuildRequiresMonopoly(t *testing.T) {
	g := newTestGame(t, dice(), 2)
	g.Players[0].Ownership[1] = 0
	_, _, err := g.Build(1, 1)
	require.ErrorIs(t, err, ErrNotMonopolyOwner)

	g.Players[0].Ownership[3] = 0
	out, res, err := g.Build(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1, g.Players[0].Ownership[1])
	require.Equal(t, StartingCash-100, g.Players[0].Cash)
	require.Equal(t, 1, res.Houses)
	require.Contains(t, out.Out, "Built a house")
}

func TestBuildStopsAtHotel(t *testing.T) {
	g := newTestGame(t, dice(), 2)
	g.Players[0].Cash = 10000
	g.Players[0].Ownership[1] = 0
	g.Players[0].Ownership[3] = 0

	for want := 1; want <= maxHouses; want++ {
		out, _, err := g.Build(1, 3)
		require.NoError(t, err)
		require.Equal(t, want, g.Players[0].Ownership[3])
		if want == maxHouses {
			require.Contains(t, out.Out, "Built a hotel")
		}
	}
	_, _, err := g.Build(1, 3)
	require.ErrorIs(t, err, ErrMaxHousesReached)
}

func TestBuildValidation(t *testing.T) {
	g := newTestGame(t, dice(), 2)
	var validation *ValidationError

	_, _, err := g.Build(1, 99)
	require.ErrorAs(t, err, &validation)

	_, _, err = g.Build(1, 1)
	require.ErrorAs(t, err, &validation)

	g.Players[0].Ownership[5] = 0
	_, _, err = g.Build(1, 5)
	require.ErrorAs(t, err, &validation)

	g.Players[0].Ownership[1] = 0
	g.Players[0].Ownership[3] = 0
	g.Players[0].Cash = 10
	_, _, err = g.Build(1, 1)
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestTradeSwapsOwnershipAtomically(t *testing.T) {
	g := newTestGame(t, dice(), 2)
	g.Players[0].Ownership[1] = 0
	g.Players[0].Ownership[3] = 0
	g.Players[1].Ownership[6] = 0

	out, res, err := g.Trade(1, 2, 50, 1, 6)
	require.NoError(t, err)
	require.Equal(t, map[int]int{3: 0, 6: 0}, g.Players[0].Ownership)
	require.Equal(t, map[int]int{1: 0}, g.Players[1].Ownership)
	require.Equal(t, StartingCash-50, g.Players[0].Cash)
	require.Equal(t, StartingCash+50, g.Players[1].Cash)
	require.Equal(t, 1, res.TileFromA)
	require.Equal(t, 6, res.TileFromB)
	require.Contains(t, out.Out, "traded")
}

func TestTradeNegativeCashFlowsBack(t *testing.T) {
	g := newTestGame(t, dice(), 2)
	g.Players[0].Ownership[1] = 0
	g.Players[1].Ownership[6] = 0

	_, _, err := g.Trade(1, 2, -30, 1, 6)
	require.NoError(t, err)
	require.Equal(t, StartingCash+30, g.Players[0].Cash)
	require.Equal(t, StartingCash-30, g.Players[1].Cash)
}

func TestTradeRefusedWhenColourSetHasHouses(t *testing.T) {
	g := newTestGame(t, dice(), 2)
	g.Players[0].Ownership[1] = 0
	g.Players[0].Ownership[3] = 2
	g.Players[1].Ownership[6] = 0

	var rule *RuleViolation
	_, _, err := g.Trade(1, 2, 0, 1, 6)
	require.ErrorAs(t, err, &rule)
	// Nothing moved.
	require.Equal(t, map[int]int{1: 0, 3: 2}, g.Players[0].Ownership)
	require.Equal(t, map[int]int{6: 0}, g.Players[1].Ownership)
	require.Equal(t, StartingCash, g.Players[0].Cash)
}

func TestTradeValidation(t *testing.T) {
	g := newTestGame(t, dice(), 2)
	var validation *ValidationError

	_, _, err := g.Trade(1, 1, 0, 1, 3)
	require.ErrorAs(t, err, &validation)

	_, _, err = g.Trade(1, 99, 0, 1, 3)
	require.ErrorAs(t, err, &validation)

	_, _, err = g.Trade(1, 2, 0, 1, 3)
	require.ErrorAs(t, err, &validation) // caller doesn't own tile 1
}

func TestStatusText(t *testing.T) {
	g := newTestGame(t, dice(), 2)
	require.Contains(t, g.StatusText(2), "Waiting for alice to roll the dice.")

	g.Status = StatusBuy
	require.Contains(t, g.StatusText(2), "buy or auction")

	g.Status = StatusAuction
	require.Contains(t, g.StatusText(2), "bid submissions")

	g.Status = StatusRoll
	g.Players[1].Ownership[5] = 0
	g.Players[1].Ownership[1] = 2
	text := g.StatusText(2)
	require.Contains(t, text, "bob owns:")
	require.Contains(t, text, "1. Old Kent Road - 2 house(s)")
	require.Contains(t, text, "5. Kings Cross Station - 0 house(s)")
}
