package models

// Delta is a named, fully specified mutation for the storage layer.
// Every delta carries the complete set of fields needed to replay the
// change onto the flattened rows; no SQL semantics leak upward.
type Delta interface {
	Kind() string
}

// AddUser records a lobby join.
type AddUser struct {
	UserId   int64
	Username string
}

func (AddUser) Kind() string { return "add_user" }

// BeginGame replaces a chat's lobby rows with the initial game rows.
type BeginGame struct {
	Rows []GameRow
}

func (BeginGame) Kind() string { return "begin_game" }

// RentSettled is a transfer between the player on a tile and its owner.
// Cash values are the balances after the transfer.
type RentSettled struct {
	PayerId   int64
	PayerCash int
	OwnerId   int64
	OwnerCash int
	Amount    int
}

func (RentSettled) Kind() string { return "rent_settled" }

// RollResult captures everything a roll changed: mover's new position
// and cash, the game status, whose turn it is now, and any rent that
// was settled on landing.
type RollResult struct {
	UserId        int64
	Position      int
	Cash          int
	Status        string
	CurrentUserId int64
	Rent          *RentSettled
}

func (RollResult) Kind() string { return "roll_result" }

// BuyResult records a completed purchase of the tile the buyer stands on.
type BuyResult struct {
	UserId        int64
	Cash          int
	TileId        int
	Status        string
	CurrentUserId int64
}

func (BuyResult) Kind() string { return "buy_result" }

// AuctionOpened starts bidding on the current player's tile.
type AuctionOpened struct {
	BidderId   int64
	BiggestBid int
	BidTimeSec int
	Status     string
}

func (AuctionOpened) Kind() string { return "auction_opened" }

// BidPlaced raises the highest bid and restarts the countdown window.
type BidPlaced struct {
	BidderId   int64
	BiggestBid int
	BidTimeSec int
}

func (BidPlaced) Kind() string { return "bid_placed" }

// AuctionResolved sells the auctioned tile to the highest bidder. It is
// produced during rehydration when the stored countdown has expired.
type AuctionResolved struct {
	BuyerId       int64
	BuyerCash     int
	TileId        int
	Amount        int
	Status        string
	CurrentUserId int64
}

func (AuctionResolved) Kind() string { return "auction_resolved" }

// BuildResult records one house added to an owned street.
type BuildResult struct {
	UserId int64
	Cash   int
	TileId int
	Houses int
}

func (BuildResult) Kind() string { return "build_result" }

// TradeExecuted swaps two zero-house properties between players and
// moves cash with them. Cash values are the balances after the trade.
type TradeExecuted struct {
	FromUserId int64
	ToUserId   int64
	FromCash   int
	ToCash     int
	TileFromA  int
	TileFromB  int
}

func (TradeExecuted) Kind() string { return "trade_executed" }

// GameFinished drops every row of the chat, game and lobby alike.
type GameFinished struct{}

func (GameFinished) Kind() string { return "game_finished" }
