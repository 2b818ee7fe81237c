package game

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/chatopoly/monopoly-bot/app/models"
)

// Store is the storage collaborator. FetchRows returns the chat's flat
// row-set plus how many seconds ago the auction fields were last
// written (0 when no auction is stored). Persist applies exactly one
// named delta; it must complete before the next command for the chat is
// decoded, which the per-chat lock in front of the service guarantees.
type Store interface {
	FetchRows(chatId int64) ([]models.GameRow, int, error)
	Persist(chatId int64, delta models.Delta) error
}

// Broadcaster pushes spectator events for a chat. May be nil.
type Broadcaster interface {
	Publish(chatId int64, event string, payload string)
}

// Service exposes one method per chat command. Every call rehydrates
// the chat from rows, runs a single transition and persists its delta;
// the service keeps no game state between calls.
type Service struct {
	store Store
	dice  Dice
	cast  Broadcaster
}

func NewService(store Store, dice Dice, cast Broadcaster) *Service {
	return &Service{store: store, dice: dice, cast: cast}
}

func (s *Service) publish(chatId int64, event, payload string) {
	if s.cast != nil {
		s.cast.Publish(chatId, event, payload)
	}
}

// load rehydrates the chat. A lazily resolved auction is persisted and
// broadcast before the snapshot is handed to the command.
func (s *Service) load(chatId int64) (Snapshot, error) {
	rows, elapsed, err := s.store.FetchRows(chatId)
	if err != nil {
		return Snapshot{}, err
	}
	snap, err := Decode(rows, elapsed, s.dice)
	if err != nil {
		return Snapshot{}, err
	}
	if snap.Resolved != nil {
		if err := s.store.Persist(chatId, *snap.Resolved); err != nil {
			return Snapshot{}, err
		}
		s.publish(chatId, "purchase", fmt.Sprintf("%d bought tile %d for %d",
			snap.Resolved.BuyerId, snap.Resolved.TileId, snap.Resolved.Amount))
		s.publish(chatId, "change-turn", strconv.FormatInt(snap.Resolved.CurrentUserId, 10))
	}
	return snap, nil
}

// Start enters the caller into the chat's lobby.
func (s *Service) Start(chatId, userId int64, username string) (models.Output, error) {
	snap, err := s.load(chatId)
	if err != nil {
		return models.Output{}, err
	}
	if snap.Kind == SnapshotGame {
		return models.Output{Out: "A game is already in progress."}, nil
	}
	for _, e := range snap.Lobby {
		if e.UserId == userId {
			return models.Output{Out: "You have already entered the game."}, nil
		}
	}
	if err := s.store.Persist(chatId, models.AddUser{UserId: userId, Username: username}); err != nil {
		return models.Output{}, err
	}
	return models.Output{Out: "You have entered a game."}, nil
}

// Begin starts a game with everyone in the lobby, in join order.
func (s *Service) Begin(chatId int64) (models.Output, error) {
	snap, err := s.load(chatId)
	if err != nil {
		return models.Output{}, err
	}
	if snap.Kind == SnapshotGame {
		return models.Output{}, ErrAlreadyInProgress
	}
	g, err := NewGame(snap.Lobby, s.dice)
	if err != nil {
		return models.Output{}, err
	}
	delta := models.BeginGame{Rows: Encode(g, chatId)}
	if err := s.store.Persist(chatId, delta); err != nil {
		return models.Output{}, err
	}
	first := g.current()
	s.publish(chatId, "game-start", strconv.Itoa(len(g.Players)))
	s.publish(chatId, "change-turn", strconv.FormatInt(first.UserId, 10))
	return models.Output{Out: "Beginning of the game. \n" + first.Name() + " rolls first."}, nil
}

// Roll rolls the dice for the caller.
func (s *Service) Roll(chatId, userId int64) (models.Output, error) {
	snap, err := s.load(chatId)
	if err != nil {
		return models.Output{}, err
	}
	if snap.Kind != SnapshotGame {
		return models.Output{}, ErrNoGame
	}
	out, delta, err := snap.Game.Roll(userId)
	if err != nil {
		return models.Output{}, err
	}
	if err := s.store.Persist(chatId, *delta); err != nil {
		return models.Output{}, err
	}
	if delta.Status != models.StatusBuy {
		s.publish(chatId, "change-turn", strconv.FormatInt(delta.CurrentUserId, 10))
	}
	return out, nil
}

// Buy purchases the tile the caller landed on.
func (s *Service) Buy(chatId, userId int64) (models.Output, error) {
	snap, err := s.load(chatId)
	if err != nil {
		return models.Output{}, err
	}
	if snap.Kind != SnapshotGame {
		return models.Output{}, ErrNoGame
	}
	out, delta, err := snap.Game.Buy(userId)
	if err != nil {
		return models.Output{}, err
	}
	if err := s.store.Persist(chatId, *delta); err != nil {
		return models.Output{}, err
	}
	s.publish(chatId, "purchase", fmt.Sprintf("%d bought tile %d", delta.UserId, delta.TileId))
	s.publish(chatId, "change-turn", strconv.FormatInt(delta.CurrentUserId, 10))
	return out, nil
}

// Auction opens bidding instead of buying.
func (s *Service) Auction(chatId, userId int64) (models.Output, error) {
	snap, err := s.load(chatId)
	if err != nil {
		return models.Output{}, err
	}
	if snap.Kind != SnapshotGame {
		return models.Output{}, ErrNoGame
	}
	out, delta, err := snap.Game.Auction(userId)
	if err != nil {
		return models.Output{}, err
	}
	if err := s.store.Persist(chatId, *delta); err != nil {
		return models.Output{}, err
	}
	s.publish(chatId, "auction-open", strconv.Itoa(delta.BiggestBid))
	return out, nil
}

// Bid raises the current auction.
func (s *Service) Bid(chatId, userId int64, amount int) (models.Output, error) {
	snap, err := s.load(chatId)
	if err != nil {
		return models.Output{}, err
	}
	if snap.Kind != SnapshotGame {
		return models.Output{}, ErrNoGame
	}
	out, delta, err := snap.Game.Bid(userId, amount)
	if err != nil {
		return models.Output{}, err
	}
	if err := s.store.Persist(chatId, *delta); err != nil {
		return models.Output{}, err
	}
	s.publish(chatId, "bid", strconv.Itoa(delta.BiggestBid))
	return out, nil
}

// Rent settles rent for the tile the caller stands on.
func (s *Service) Rent(chatId, userId int64) (models.Output, error) {
	snap, err := s.load(chatId)
	if err != nil {
		return models.Output{}, err
	}
	if snap.Kind != SnapshotGame {
		return models.Output{}, ErrNoGame
	}
	out, delta, err := snap.Game.Rent(userId)
	if err != nil {
		return models.Output{}, err
	}
	if delta == nil {
		// Warning no-op: unowned or self-owned tile.
		log.WithField("chat_id", chatId).Warn(out.Warning)
		return out, nil
	}
	if err := s.store.Persist(chatId, *delta); err != nil {
		return models.Output{}, err
	}
	return out, nil
}

// Build adds a house on the caller's street.
func (s *Service) Build(chatId, userId int64, tileId int) (models.Output, error) {
	snap, err := s.load(chatId)
	if err != nil {
		return models.Output{}, err
	}
	if snap.Kind != SnapshotGame {
		return models.Output{}, ErrNoGame
	}
	out, delta, err := snap.Game.Build(userId, tileId)
	if err != nil {
		return models.Output{}, err
	}
	if err := s.store.Persist(chatId, *delta); err != nil {
		return models.Output{}, err
	}
	return out, nil
}

// Trade swaps one property each way between the caller and a partner,
// given as a numeric user id or @username.
func (s *Service) Trade(chatId, userId int64, partner string, cashDelta, tileFromA, tileFromB int) (models.Output, error) {
	snap, err := s.load(chatId)
	if err != nil {
		return models.Output{}, err
	}
	if snap.Kind != SnapshotGame {
		return models.Output{}, ErrNoGame
	}
	partnerId, err := resolvePlayer(snap.Game, partner)
	if err != nil {
		return models.Output{}, err
	}
	out, delta, err := snap.Game.Trade(userId, partnerId, cashDelta, tileFromA, tileFromB)
	if err != nil {
		return models.Output{}, err
	}
	if err := s.store.Persist(chatId, *delta); err != nil {
		return models.Output{}, err
	}
	return out, nil
}

// Status reports what the game waits for and the caller's holdings.
func (s *Service) Status(chatId, userId int64) (models.Output, error) {
	snap, err := s.load(chatId)
	if err != nil {
		return models.Output{}, err
	}
	switch snap.Kind {
	case SnapshotGame:
		return models.Output{Out: snap.Game.StatusText(userId)}, nil
	case SnapshotLobby:
		return models.Output{Out: fmt.Sprintf("%d player(s) ready. /begin to start.", len(snap.Lobby))}, nil
	default:
		return models.Output{}, ErrNoGame
	}
}

// Finish ends the chat's game and clears its lobby.
func (s *Service) Finish(chatId int64) (models.Output, error) {
	snap, err := s.load(chatId)
	if err != nil {
		return models.Output{}, err
	}
	if snap.Kind == SnapshotEmpty {
		return models.Output{}, ErrNoGame
	}
	if err := s.store.Persist(chatId, models.GameFinished{}); err != nil {
		return models.Output{}, err
	}
	s.publish(chatId, "game-over", "")
	return models.Output{Out: "The game has ended."}, nil
}

// Help lists the chat commands.
func (s *Service) Help() models.Output {
	return models.Output{Out: `List of commands
- /start to enter a game
- /begin to start a game with all the players who entered
- /help to show a list of available commands

In a game
- /roll to roll the dice
- /buy to buy current property
- /auction to put the property for auction
- /bid <price> to make a bid in the auction
- /rent to ask for rent payment
- /build <tile> to build a house
- /trade <user> <cash> <your tile> <their tile> to trade
- /status to see game's status
- /finish to end the game`}
}

func resolvePlayer(g *Game, ref string) (int64, error) {
	if name, ok := strings.CutPrefix(ref, "@"); ok {
		for _, p := range g.Players {
			if p.Username == name {
				return p.UserId, nil
			}
		}
		return 0, &ValidationError{Reason: "no player named @" + name}
	}
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return 0, &ValidationError{Reason: "name a player by @username or id"}
	}
	return id, nil
}
