package game

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/chatopoly/monopoly-bot/app/models"
	"github.com/chatopoly/monopoly-bot/platform/board"
)

const (
	StartingCash     = 1500
	PassGoCredit     = 200
	OpeningBid       = 40
	AuctionWindowSec = 30

	// 4 houses plus the hotel.
	maxHouses = 5
)

// Status is what the game is waiting for next.
type Status int

const (
	StatusRoll Status = iota
	StatusBuy
	StatusAuction
)

func (s Status) String() string {
	switch s {
	case StatusBuy:
		return models.StatusBuy
	case StatusAuction:
		return models.StatusAuction
	default:
		return models.StatusRoll
	}
}

func parseStatus(s string) (Status, error) {
	switch s {
	case models.StatusRoll:
		return StatusRoll, nil
	case models.StatusBuy:
		return StatusBuy, nil
	case models.StatusAuction:
		return StatusAuction, nil
	}
	return StatusRoll, &ConsistencyError{Reason: "unknown game status " + strconv.Quote(s)}
}

// Player is one participant's mutable state. Ownership maps owned tile
// positions to house counts (0-4, 5 meaning a hotel).
type Player struct {
	UserId    int64
	Username  string
	Cash      int
	Position  int
	Ownership map[int]int
}

func NewPlayer(userId int64, username string) *Player {
	return &Player{
		UserId:    userId,
		Username:  username,
		Cash:      StartingCash,
		Ownership: make(map[int]int),
	}
}

// Name is the display name, falling back to the user id.
func (p *Player) Name() string {
	if p.Username != "" {
		return p.Username
	}
	return strconv.FormatInt(p.UserId, 10)
}

// ownsGroup reports whether the player owns every tile in pos's group.
func (p *Player) ownsGroup(pos int) bool {
	group := board.GroupOf(pos)
	if len(group) == 0 {
		return false
	}
	for _, sibling := range group {
		if _, ok := p.Ownership[sibling]; !ok {
			return false
		}
	}
	return true
}

// ownedTiles returns the player's tiles in board order.
func (p *Player) ownedTiles() []int {
	tiles := make([]int, 0, len(p.Ownership))
	for pos := range p.Ownership {
		tiles = append(tiles, pos)
	}
	sort.Ints(tiles)
	return tiles
}

// Game is one chat's running game. Turn order is join order and never
// changes. The auction fields are only meaningful in StatusAuction;
// BidTimeSec is the remaining window in seconds, counted down by the
// caller between invocations, never by a clock in here.
type Game struct {
	Players    []*Player
	Current    int
	Status     Status
	BiggestBid int
	BidTimeSec int
	BidderId   int64

	dice Dice
}

// NewGame starts a game from the lobby roster, in join order.
func NewGame(entries []models.LobbyEntry, dice Dice) (*Game, error) {
	if len(entries) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	players := make([]*Player, len(entries))
	for i, e := range entries {
		players[i] = NewPlayer(e.UserId, e.Username)
	}
	return &Game{Players: players, Status: StatusRoll, dice: dice}, nil
}

func (g *Game) current() *Player {
	return g.Players[g.Current]
}

func (g *Game) advance() {
	g.Current = (g.Current + 1) % len(g.Players)
}

func (g *Game) playerById(userId int64) *Player {
	for _, p := range g.Players {
		if p.UserId == userId {
			return p
		}
	}
	return nil
}

// ownerOf returns whoever owns the tile, nil when unowned.
func (g *Game) ownerOf(pos int) *Player {
	for _, p := range g.Players {
		if _, ok := p.Ownership[pos]; ok {
			return p
		}
	}
	return nil
}

// Roll moves the current player and settles whatever the landing tile
// demands. The turn passes to the next player unless the tile is
// unowned and purchasable, in which case the game waits for a buy or
// auction decision.
func (g *Game) Roll(callerId int64) (models.Output, *models.RollResult, error) {
	if g.Status != StatusRoll {
		return models.Output{}, nil, ErrWrongState
	}
	p := g.current()
	if p.UserId != callerId {
		return models.Output{}, nil, ErrNotYourTurn
	}

	d1, d2 := g.dice.Roll()
	moveTo := p.Position + d1 + d2
	passedGo := moveTo >= board.Size
	pos := moveTo % board.Size
	tile := board.MustTileAt(pos)

	out := models.Output{Out: fmt.Sprintf("%s has rolled %d and %d, now on %s.", p.Name(), d1, d2, tile.Name)}
	if passedGo {
		p.Cash += PassGoCredit
		out = out.MergeOut("Passed GO.")
	}
	p.Position = pos

	res := &models.RollResult{UserId: p.UserId}
	owner := g.ownerOf(pos)
	switch {
	case owner == p:
		out = out.MergeOut("Landed on own property.")
		g.advance()
	case owner != nil:
		rent := CalculateRent(pos, p, g.Players, g.utilityRoll(tile))
		p.Cash -= rent
		owner.Cash += rent
		out = out.MergeOut(fmt.Sprintf("Paid %d rent to %s.", rent, owner.Name()))
		if p.Cash < 0 {
			out = out.MergeWarning(fmt.Sprintf("%s is in debt: %d", p.Name(), p.Cash))
		}
		res.Rent = &models.RentSettled{
			PayerId:   p.UserId,
			PayerCash: p.Cash,
			OwnerId:   owner.UserId,
			OwnerCash: owner.Cash,
			Amount:    rent,
		}
		g.advance()
	case tile.Purchasable():
		g.Status = StatusBuy
		out = out.MergeOut(fmt.Sprintf("Buy for %d or start an auction.", tile.Cost))
	default:
		out = out.MergeOut(g.applyTileEffect(p, tile))
		g.advance()
	}

	out = out.MergeOut(fmt.Sprintf("%d in the bank.", p.Cash))
	res.Position = p.Position
	res.Cash = p.Cash
	res.Status = g.Status.String()
	res.CurrentUserId = g.current().UserId
	return out, res, nil
}

// utilityRoll throws the fresh dice a utility rent depends on. The
// movement roll is never reused for rent.
func (g *Game) utilityRoll(tile board.Tile) int {
	if tile.Kind != board.Utility {
		return 0
	}
	d1, d2 := g.dice.Roll()
	return d1 + d2
}

// applyTileEffect handles the non-purchasable tiles. Effects only touch
// the mover and never fail.
func (g *Game) applyTileEffect(p *Player, tile board.Tile) string {
	switch tile.Kind {
	case board.TaxIncome:
		p.Cash -= board.IncomeTaxAmount
		return fmt.Sprintf("Paid %d income tax.", board.IncomeTaxAmount)
	case board.TaxLuxury:
		p.Cash -= board.LuxuryTaxAmount
		return fmt.Sprintf("Paid %d super tax.", board.LuxuryTaxAmount)
	case board.GoToJail:
		p.Position = board.JailPos
		return "Go to jail."
	case board.Chance:
		return g.drawCard(p, chanceCards)
	case board.Chest:
		return g.drawCard(p, chestCards)
	}
	return ""
}

// Buy purchases the tile the current player stands on.
func (g *Game) Buy(callerId int64) (models.Output, *models.BuyResult, error) {
	if g.Status != StatusBuy {
		return models.Output{}, nil, ErrWrongState
	}
	p := g.current()
	if p.UserId != callerId {
		return models.Output{}, nil, ErrNotYourTurn
	}

	tile := board.MustTileAt(p.Position)
	if p.Cash < tile.Cost {
		return models.Output{}, nil, fmt.Errorf("%w: %d in the bank, %s costs %d",
			ErrInsufficientFunds, p.Cash, tile.Name, tile.Cost)
	}

	p.Cash -= tile.Cost
	p.Ownership[p.Position] = 0
	g.Status = StatusRoll
	g.advance()

	out := models.Output{Out: fmt.Sprintf("Purchased %s. \n%d in the bank.", tile.Name, p.Cash)}
	res := &models.BuyResult{
		UserId:        p.UserId,
		Cash:          p.Cash,
		TileId:        p.Position,
		Status:        g.Status.String(),
		CurrentUserId: g.current().UserId,
	}
	return out, res, nil
}

// Auction opens bidding on the tile the current player declined to buy.
// The opener's bid of OpeningBid is binding, so they must be able to
// cover it.
func (g *Game) Auction(callerId int64) (models.Output, *models.AuctionOpened, error) {
	if g.Status != StatusBuy {
		return models.Output{}, nil, ErrWrongState
	}
	p := g.current()
	if p.UserId != callerId {
		return models.Output{}, nil, ErrNotYourTurn
	}
	if p.Cash < OpeningBid {
		return models.Output{}, nil, fmt.Errorf("%w: the opening bid is %d", ErrInsufficientFunds, OpeningBid)
	}

	g.Status = StatusAuction
	g.BidderId = callerId
	g.BiggestBid = OpeningBid
	g.BidTimeSec = AuctionWindowSec

	out := models.Output{Out: fmt.Sprintf(
		"Starting an auction. Starting bid is %d. \n%d seconds to make a bid.", OpeningBid, AuctionWindowSec)}
	res := &models.AuctionOpened{
		BidderId:   g.BidderId,
		BiggestBid: g.BiggestBid,
		BidTimeSec: g.BidTimeSec,
		Status:     g.Status.String(),
	}
	return out, res, nil
}

// Bid raises the highest bid and restarts the countdown window.
func (g *Game) Bid(callerId int64, amount int) (models.Output, *models.BidPlaced, error) {
	if g.Status != StatusAuction {
		return models.Output{}, nil, ErrWrongState
	}
	bidder := g.playerById(callerId)
	if bidder == nil {
		return models.Output{}, nil, ErrNotAPlayer
	}
	if amount <= g.BiggestBid {
		return models.Output{}, nil, fmt.Errorf("%w: the biggest bid is %d", ErrBidTooLow, g.BiggestBid)
	}
	if amount > bidder.Cash {
		return models.Output{}, nil, fmt.Errorf("%w: %d in the bank", ErrInsufficientFunds, bidder.Cash)
	}

	g.BiggestBid = amount
	g.BidderId = callerId
	g.BidTimeSec = AuctionWindowSec

	out := models.Output{Out: fmt.Sprintf("Biggest bid %d by %s.", g.BiggestBid, bidder.Name())}
	res := &models.BidPlaced{BidderId: g.BidderId, BiggestBid: g.BiggestBid, BidTimeSec: g.BidTimeSec}
	return out, res, nil
}

// resolveAuction sells the auctioned tile to the highest bidder at the
// winning bid. The caller has already decided the window expired.
func (g *Game) resolveAuction() *models.AuctionResolved {
	tileId := g.current().Position
	winner := g.playerById(g.BidderId)
	amount := g.BiggestBid

	winner.Cash -= amount
	winner.Ownership[tileId] = 0
	g.Status = StatusRoll
	g.BiggestBid = 0
	g.BidTimeSec = 0
	g.BidderId = 0
	g.advance()

	return &models.AuctionResolved{
		BuyerId:       winner.UserId,
		BuyerCash:     winner.Cash,
		TileId:        tileId,
		Amount:        amount,
		Status:        g.Status.String(),
		CurrentUserId: g.current().UserId,
	}
}

// Rent is an explicit rent demand for the tile the caller stands on,
// for when the automatic settlement during a roll was skipped or needs
// re-confirmation. Unowned and self-owned tiles are a warning no-op.
func (g *Game) Rent(callerId int64) (models.Output, *models.RentSettled, error) {
	caller := g.playerById(callerId)
	if caller == nil {
		return models.Output{}, nil, ErrNotAPlayer
	}
	tile := board.MustTileAt(caller.Position)
	owner := g.ownerOf(caller.Position)
	if owner == nil {
		return models.Output{Warning: "nobody owns " + tile.Name}, nil, nil
	}
	if owner == caller {
		return models.Output{Warning: "can't pay rent to yourself"}, nil, nil
	}

	rent := CalculateRent(caller.Position, caller, g.Players, g.utilityRoll(tile))
	caller.Cash -= rent
	owner.Cash += rent

	out := models.Output{Out: fmt.Sprintf(
		"%s paid %d rent to %s. %s now has %d, %s now has %d.",
		caller.Name(), rent, owner.Name(), caller.Name(), caller.Cash, owner.Name(), owner.Cash)}
	if caller.Cash < 0 {
		out = out.MergeWarning(fmt.Sprintf("%s is in debt: %d", caller.Name(), caller.Cash))
	}
	res := &models.RentSettled{
		PayerId:   caller.UserId,
		PayerCash: caller.Cash,
		OwnerId:   owner.UserId,
		OwnerCash: owner.Cash,
		Amount:    rent,
	}
	return out, res, nil
}

// Build adds a house to an owned street. Requires the full colour set.
func (g *Game) Build(callerId int64, tileId int) (models.Output, *models.BuildResult, error) {
	tile, err := board.TileAt(tileId)
	if err != nil {
		return models.Output{}, nil, &ValidationError{Reason: "there is no such tile"}
	}
	p := g.playerById(callerId)
	if p == nil {
		return models.Output{}, nil, ErrNotAPlayer
	}
	houses, owned := p.Ownership[tileId]
	if !owned {
		return models.Output{}, nil, &ValidationError{Reason: "you don't own " + tile.Name}
	}
	if tile.Kind != board.Street {
		return models.Output{}, nil, &ValidationError{Reason: "can't build houses on " + tile.Name}
	}
	if houses >= maxHouses {
		return models.Output{}, nil, fmt.Errorf("%w: %s already has a hotel", ErrMaxHousesReached, tile.Name)
	}
	if !p.ownsGroup(tileId) {
		return models.Output{}, nil, ErrNotMonopolyOwner
	}
	cost := board.BuildCost(tile.Group)
	if p.Cash < cost {
		return models.Output{}, nil, fmt.Errorf("%w: %d in the bank, building costs %d",
			ErrInsufficientFunds, p.Cash, cost)
	}

	p.Cash -= cost
	p.Ownership[tileId] = houses + 1

	built := "a house"
	if houses+1 == maxHouses {
		built = "a hotel"
	}
	out := models.Output{Out: fmt.Sprintf("Built %s on %s. \n%d in the bank.", built, tile.Name, p.Cash)}
	res := &models.BuildResult{UserId: p.UserId, Cash: p.Cash, TileId: tileId, Houses: houses + 1}
	return out, res, nil
}

// Trade swaps tileFromA (owned by the caller) against tileFromB (owned
// by the partner) and moves cashDelta from caller to partner, all or
// nothing. Properties carrying houses anywhere in their colour set are
// non-tradeable.
func (g *Game) Trade(callerId, partnerId int64, cashDelta, tileFromA, tileFromB int) (models.Output, *models.TradeExecuted, error) {
	a := g.playerById(callerId)
	if a == nil {
		return models.Output{}, nil, ErrNotAPlayer
	}
	b := g.playerById(partnerId)
	if b == nil {
		return models.Output{}, nil, &ValidationError{Reason: "your trade partner is not part of this game"}
	}
	if a == b {
		return models.Output{}, nil, &ValidationError{Reason: "can't trade with yourself"}
	}
	if err := tradeable(a, tileFromA); err != nil {
		return models.Output{}, nil, err
	}
	if err := tradeable(b, tileFromB); err != nil {
		return models.Output{}, nil, err
	}

	a.Cash -= cashDelta
	b.Cash += cashDelta
	delete(a.Ownership, tileFromA)
	delete(b.Ownership, tileFromB)
	a.Ownership[tileFromB] = 0
	b.Ownership[tileFromA] = 0

	out := models.Output{Out: fmt.Sprintf(
		"%s traded %s for %s with %s. %s now has %d, %s now has %d.",
		a.Name(), board.MustTileAt(tileFromA).Name, board.MustTileAt(tileFromB).Name, b.Name(),
		a.Name(), a.Cash, b.Name(), b.Cash)}
	res := &models.TradeExecuted{
		FromUserId: a.UserId,
		ToUserId:   b.UserId,
		FromCash:   a.Cash,
		ToCash:     b.Cash,
		TileFromA:  tileFromA,
		TileFromB:  tileFromB,
	}
	return out, res, nil
}

// tradeable checks that the player owns the tile with no houses on it
// or on any owned sibling of its colour set.
func tradeable(p *Player, tileId int) error {
	tile, err := board.TileAt(tileId)
	if err != nil {
		return &ValidationError{Reason: "there is no such tile"}
	}
	if _, owned := p.Ownership[tileId]; !owned {
		return &ValidationError{Reason: p.Name() + " doesn't own " + tile.Name}
	}
	for _, sibling := range board.GroupOf(tileId) {
		if houses, owned := p.Ownership[sibling]; owned && houses > 0 {
			return &RuleViolation{Reason: tile.Name + " can't be traded while its colour set has houses"}
		}
	}
	return nil
}

// StatusText describes what the game is waiting for, plus the caller's
// holdings when they have any.
func (g *Game) StatusText(callerId int64) string {
	p := g.current()
	var text string
	switch g.Status {
	case StatusBuy:
		text = "Waiting for " + p.Name() + " to buy or auction off a property."
	case StatusAuction:
		text = "Waiting for bid submissions."
	default:
		text = "Waiting for " + p.Name() + " to roll the dice."
	}

	caller := g.playerById(callerId)
	if caller == nil || len(caller.Ownership) == 0 {
		return text
	}
	text += "\n" + caller.Name() + " owns:"
	for _, tileId := range caller.ownedTiles() {
		text += fmt.Sprintf("\n%d. %s - %d house(s)", tileId, board.MustTileAt(tileId).Name, caller.Ownership[tileId])
	}
	return text
}
