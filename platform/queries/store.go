package queries

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	uuid "github.com/satori/go.uuid"

	"github.com/chatopoly/monopoly-bot/app/models"
)

// GameStore keeps each chat's game as flattened rows, one per
// (player, owned tile), and replays engine deltas onto them. It also
// writes one audit event per delta.
type GameStore struct {
	db *pg.DB
}

func NewGameStore(db *pg.DB) *GameStore {
	return &GameStore{db: db}
}

// FetchRows returns the chat's rows in turn order and, when an auction
// is stored, how many seconds ago its fields were last written. The
// engine never reads the clock itself; this is where elapsed time
// enters the system.
func (s *GameStore) FetchRows(chatId int64) ([]models.GameRow, int, error) {
	var rows []models.GameRow
	err := s.db.Model(&rows).
		Where("chat_id = ?", chatId).
		Order("join_order ASC").
		OrderExpr("tile_id ASC NULLS FIRST").
		Select()
	if err != nil {
		return nil, 0, err
	}
	elapsed := 0
	if len(rows) > 0 && rows[0].Status == models.StatusAuction && !rows[0].BidUpdatedAt.IsZero() {
		elapsed = int(time.Since(rows[0].BidUpdatedAt) / time.Second)
	}
	return rows, elapsed, nil
}

// Persist applies one named delta inside a transaction, together with
// its audit event. A failure rolls the whole delta back so the next
// decode never sees half a mutation.
func (s *GameStore) Persist(chatId int64, delta models.Delta) error {
	return s.db.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		if err := s.apply(tx, chatId, delta); err != nil {
			return err
		}
		return s.audit(tx, chatId, delta)
	})
}

func (s *GameStore) apply(tx *pg.Tx, chatId int64, delta models.Delta) error {
	switch d := delta.(type) {
	case models.AddUser:
		count, err := tx.Model((*models.GameRow)(nil)).Where("chat_id = ?", chatId).Count()
		if err != nil {
			return err
		}
		row := models.GameRow{
			ChatId:    chatId,
			UserId:    d.UserId,
			Username:  d.Username,
			JoinOrder: count,
			Status:    models.StatusLobby,
		}
		_, err = tx.Model(&row).Insert()
		return err

	case models.BeginGame:
		if _, err := tx.Model((*models.GameRow)(nil)).Where("chat_id = ?", chatId).Delete(); err != nil {
			return err
		}
		rows := d.Rows
		_, err := tx.Model(&rows).Insert()
		return err

	case models.RollResult:
		if err := setGameFields(tx, chatId, d.Status, d.CurrentUserId); err != nil {
			return err
		}
		if err := setPlayerCash(tx, chatId, d.UserId, d.Cash); err != nil {
			return err
		}
		if _, err := tx.Model((*models.GameRow)(nil)).
			Where("chat_id = ? AND user_id = ?", chatId, d.UserId).
			Set("position = ?", d.Position).
			Update(); err != nil {
			return err
		}
		if d.Rent != nil {
			return setPlayerCash(tx, chatId, d.Rent.OwnerId, d.Rent.OwnerCash)
		}
		return nil

	case models.BuyResult:
		if err := setGameFields(tx, chatId, d.Status, d.CurrentUserId); err != nil {
			return err
		}
		if err := setPlayerCash(tx, chatId, d.UserId, d.Cash); err != nil {
			return err
		}
		return grantTile(tx, chatId, d.UserId, d.TileId)

	case models.AuctionOpened:
		_, err := tx.Model((*models.GameRow)(nil)).
			Where("chat_id = ?", chatId).
			Set("status = ?", d.Status).
			Set("biggest_bid = ?", d.BiggestBid).
			Set("bid_time_sec = ?", d.BidTimeSec).
			Set("bidder_id = ?", d.BidderId).
			Set("bid_updated_at = ?", time.Now()).
			Update()
		return err

	case models.BidPlaced:
		_, err := tx.Model((*models.GameRow)(nil)).
			Where("chat_id = ?", chatId).
			Set("biggest_bid = ?", d.BiggestBid).
			Set("bid_time_sec = ?", d.BidTimeSec).
			Set("bidder_id = ?", d.BidderId).
			Set("bid_updated_at = ?", time.Now()).
			Update()
		return err

	case models.AuctionResolved:
		if _, err := tx.Model((*models.GameRow)(nil)).
			Where("chat_id = ?", chatId).
			Set("status = ?", d.Status).
			Set("current_user_id = ?", d.CurrentUserId).
			Set("biggest_bid = 0").
			Set("bid_time_sec = 0").
			Set("bidder_id = 0").
			Update(); err != nil {
			return err
		}
		if err := setPlayerCash(tx, chatId, d.BuyerId, d.BuyerCash); err != nil {
			return err
		}
		return grantTile(tx, chatId, d.BuyerId, d.TileId)

	case models.RentSettled:
		if err := setPlayerCash(tx, chatId, d.PayerId, d.PayerCash); err != nil {
			return err
		}
		return setPlayerCash(tx, chatId, d.OwnerId, d.OwnerCash)

	case models.BuildResult:
		if err := setPlayerCash(tx, chatId, d.UserId, d.Cash); err != nil {
			return err
		}
		_, err := tx.Model((*models.GameRow)(nil)).
			Where("chat_id = ? AND user_id = ? AND tile_id = ?", chatId, d.UserId, d.TileId).
			Set("houses = ?", d.Houses).
			Update()
		return err

	case models.TradeExecuted:
		if err := setPlayerCash(tx, chatId, d.FromUserId, d.FromCash); err != nil {
			return err
		}
		if err := setPlayerCash(tx, chatId, d.ToUserId, d.ToCash); err != nil {
			return err
		}
		// The traded properties carry no houses, so the swap is just an
		// exchange of tile ids between the two ownership rows.
		if _, err := tx.Model((*models.GameRow)(nil)).
			Where("chat_id = ? AND user_id = ? AND tile_id = ?", chatId, d.FromUserId, d.TileFromA).
			Set("tile_id = ?", d.TileFromB).
			Update(); err != nil {
			return err
		}
		_, err := tx.Model((*models.GameRow)(nil)).
			Where("chat_id = ? AND user_id = ? AND tile_id = ?", chatId, d.ToUserId, d.TileFromB).
			Set("tile_id = ?", d.TileFromA).
			Update()
		return err

	case models.GameFinished:
		_, err := tx.Model((*models.GameRow)(nil)).Where("chat_id = ?", chatId).Delete()
		return err
	}
	return fmt.Errorf("unknown delta kind %q", delta.Kind())
}

// setGameFields stamps the game-level columns onto every row of a chat.
func setGameFields(tx *pg.Tx, chatId int64, status string, currentUserId int64) error {
	_, err := tx.Model((*models.GameRow)(nil)).
		Where("chat_id = ?", chatId).
		Set("status = ?", status).
		Set("current_user_id = ?", currentUserId).
		Update()
	return err
}

func setPlayerCash(tx *pg.Tx, chatId, userId int64, cash int) error {
	_, err := tx.Model((*models.GameRow)(nil)).
		Where("chat_id = ? AND user_id = ?", chatId, userId).
		Set("cash = ?", cash).
		Update()
	return err
}

// grantTile records a new 0-house ownership. A propertyless player's
// sentinel row becomes the ownership row; otherwise a sibling row is
// cloned for the new tile.
func grantTile(tx *pg.Tx, chatId, userId int64, tileId int) error {
	houses := 0
	res, err := tx.Model((*models.GameRow)(nil)).
		Where("chat_id = ? AND user_id = ? AND tile_id IS NULL", chatId, userId).
		Set("tile_id = ?", tileId).
		Set("houses = ?", houses).
		Update()
	if err != nil {
		return err
	}
	if res.RowsAffected() > 0 {
		return nil
	}
	var sibling models.GameRow
	if err := tx.Model(&sibling).
		Where("chat_id = ? AND user_id = ?", chatId, userId).
		Limit(1).
		Select(); err != nil {
		return err
	}
	sibling.Id = 0
	sibling.TileId = &tileId
	sibling.Houses = &houses
	_, err = tx.Model(&sibling).Insert()
	return err
}

func (s *GameStore) audit(tx *pg.Tx, chatId int64, delta models.Delta) error {
	payload, err := json.Marshal(delta)
	if err != nil {
		return err
	}
	event := models.GameEvent{
		Id:        uuid.NewV4().String(),
		ChatId:    chatId,
		Kind:      delta.Kind(),
		Payload:   string(payload),
		CreatedAt: time.Now(),
	}
	_, err = tx.Model(&event).Insert()
	return err
}
