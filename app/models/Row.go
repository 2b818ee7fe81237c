package models

import "time"

// Game status values as stored in game_rows. Lobby rows are players who
// entered before a game began and are not part of a game yet.
const (
	StatusLobby   = "lobby"
	StatusRoll    = "roll"
	StatusBuy     = "buy"
	StatusAuction = "auction"
)

// GameRow is one flattened row of a chat's game: one row per
// (player, owned tile), plus a sentinel row with nil tile fields for
// players who own nothing. Game-level fields repeat on every row of the
// chat so any row is enough to know whose turn it is.
type GameRow struct {
	tableName struct{} `pg:"game_rows"` //nolint:structcheck,unused

	Id            int64     `pg:"id,pk"`
	ChatId        int64     `pg:"chat_id,use_zero"`
	UserId        int64     `pg:"user_id,use_zero"`
	Username      string    `pg:"username,use_zero"`
	JoinOrder     int       `pg:"join_order,use_zero"`
	Position      int       `pg:"position,use_zero"`
	Cash          int       `pg:"cash,use_zero"`
	TileId        *int      `pg:"tile_id"`
	Houses        *int      `pg:"houses"`
	Status        string    `pg:"status,use_zero"`
	CurrentUserId int64     `pg:"current_user_id,use_zero"`
	BiggestBid    int       `pg:"biggest_bid,use_zero"`
	BidTimeSec    int       `pg:"bid_time_sec,use_zero"`
	BidderId      int64     `pg:"bidder_id,use_zero"`
	BidUpdatedAt  time.Time `pg:"bid_updated_at"`
}

// LobbyEntry is a user who issued /start before the game began. Order
// of first join becomes turn order.
type LobbyEntry struct {
	UserId   int64
	Username string
}

// GameEvent is one audit record per persisted delta.
type GameEvent struct {
	tableName struct{} `pg:"game_events"` //nolint:structcheck,unused

	Id        string    `pg:"id,pk"`
	ChatId    int64     `pg:"chat_id,use_zero"`
	Kind      string    `pg:"kind,use_zero"`
	Payload   string    `pg:"payload"`
	CreatedAt time.Time `pg:"created_at"`
}
