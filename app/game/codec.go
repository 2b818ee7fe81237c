package game

import (
	"fmt"

	"github.com/chatopoly/monopoly-bot/app/models"
)

// SnapshotKind distinguishes the three things a chat's rows can hold.
type SnapshotKind int

const (
	SnapshotEmpty SnapshotKind = iota
	SnapshotLobby
	SnapshotGame
)

// Snapshot is the result of rehydrating one chat from storage rows:
// nothing at all, a pre-game lobby roster, or a running game. Resolved
// is set when rehydration found the auction window already expired and
// sold the tile as a side effect; the caller must persist it so the
// rows catch up with memory.
type Snapshot struct {
	Kind     SnapshotKind
	Lobby    []models.LobbyEntry
	Game     *Game
	Resolved *models.AuctionResolved
}

// Decode folds a flat row-set into a Snapshot. Rows are grouped by
// user, first-seen order is turn order, and rows carrying a tile merge
// into the player's ownership map. elapsedSec is how long ago the
// auction fields were last written; the engine itself never consults a
// clock, it only checks whether the remaining window has run out.
func Decode(rows []models.GameRow, elapsedSec int, dice Dice) (Snapshot, error) {
	if len(rows) == 0 {
		return Snapshot{Kind: SnapshotEmpty}, nil
	}
	if rows[0].Status == models.StatusLobby {
		return decodeLobby(rows)
	}

	var players []*Player
	byId := make(map[int64]*Player)
	ownedBy := make(map[int]int64)
	for _, row := range rows {
		if row.Status != rows[0].Status || row.CurrentUserId != rows[0].CurrentUserId {
			return Snapshot{}, &ConsistencyError{Reason: "rows disagree on game-level state"}
		}
		p, ok := byId[row.UserId]
		if !ok {
			p = &Player{
				UserId:    row.UserId,
				Username:  row.Username,
				Cash:      row.Cash,
				Position:  row.Position,
				Ownership: make(map[int]int),
			}
			byId[row.UserId] = p
			players = append(players, p)
		}
		if row.TileId != nil {
			if prev, taken := ownedBy[*row.TileId]; taken {
				return Snapshot{}, &ConsistencyError{Reason: fmt.Sprintf(
					"tile %d owned by both %d and %d", *row.TileId, prev, row.UserId)}
			}
			ownedBy[*row.TileId] = row.UserId
			houses := 0
			if row.Houses != nil {
				houses = *row.Houses
			}
			p.Ownership[*row.TileId] = houses
		}
	}

	status, err := parseStatus(rows[0].Status)
	if err != nil {
		return Snapshot{}, err
	}
	current := -1
	for i, p := range players {
		if p.UserId == rows[0].CurrentUserId {
			current = i
			break
		}
	}
	if current < 0 {
		return Snapshot{}, &ConsistencyError{Reason: fmt.Sprintf(
			"current player %d is not in the roster", rows[0].CurrentUserId)}
	}

	g := &Game{
		Players:    players,
		Current:    current,
		Status:     status,
		BiggestBid: rows[0].BiggestBid,
		BidTimeSec: rows[0].BidTimeSec,
		BidderId:   rows[0].BidderId,
		dice:       dice,
	}

	var resolved *models.AuctionResolved
	if g.Status == StatusAuction {
		if g.playerById(g.BidderId) == nil {
			return Snapshot{}, &ConsistencyError{Reason: fmt.Sprintf(
				"auction bidder %d is not in the roster", g.BidderId)}
		}
		if g.BidTimeSec-elapsedSec <= 0 {
			resolved = g.resolveAuction()
		}
	}

	return Snapshot{Kind: SnapshotGame, Game: g, Resolved: resolved}, nil
}

func decodeLobby(rows []models.GameRow) (Snapshot, error) {
	var entries []models.LobbyEntry
	seen := make(map[int64]bool)
	for _, row := range rows {
		if row.Status != models.StatusLobby {
			return Snapshot{}, &ConsistencyError{Reason: "lobby rows mixed with game rows"}
		}
		if seen[row.UserId] {
			continue
		}
		seen[row.UserId] = true
		entries = append(entries, models.LobbyEntry{UserId: row.UserId, Username: row.Username})
	}
	return Snapshot{Kind: SnapshotLobby, Lobby: entries}, nil
}

// Encode flattens a game back into rows: one per (player, owned tile),
// a single nil-tile sentinel row for propertyless players, game-level
// fields duplicated onto every row. Decode(Encode(g)) reproduces g for
// every reachable state.
func Encode(g *Game, chatId int64) []models.GameRow {
	var rows []models.GameRow
	for order, p := range g.Players {
		base := models.GameRow{
			ChatId:        chatId,
			UserId:        p.UserId,
			Username:      p.Username,
			JoinOrder:     order,
			Position:      p.Position,
			Cash:          p.Cash,
			Status:        g.Status.String(),
			CurrentUserId: g.current().UserId,
			BiggestBid:    g.BiggestBid,
			BidTimeSec:    g.BidTimeSec,
			BidderId:      g.BidderId,
		}
		if len(p.Ownership) == 0 {
			rows = append(rows, base)
			continue
		}
		for _, tileId := range p.ownedTiles() {
			row := base
			tile, houses := tileId, p.Ownership[tileId]
			row.TileId = &tile
			row.Houses = &houses
			rows = append(rows, row)
		}
	}
	return rows
}

// EncodeLobby flattens the pre-game roster the same way.
func EncodeLobby(entries []models.LobbyEntry, chatId int64) []models.GameRow {
	rows := make([]models.GameRow, len(entries))
	for order, e := range entries {
		rows[order] = models.GameRow{
			ChatId:    chatId,
			UserId:    e.UserId,
			Username:  e.Username,
			JoinOrder: order,
			Status:    models.StatusLobby,
		}
	}
	return rows
}
