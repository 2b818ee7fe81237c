package controllers

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gomodule/redigo/redis"
	log "github.com/sirupsen/logrus"

	"github.com/chatopoly/monopoly-bot/app/game"
	"github.com/chatopoly/monopoly-bot/app/models"
	"github.com/chatopoly/monopoly-bot/platform/cache"
)

// WebhookController receives Telegram updates and turns them into
// engine commands. Replies go back as the webhook answer
// (sendMessage), so no outbound bot client is needed.
type WebhookController struct {
	service *game.Service
	pool    *redis.Pool
}

func NewWebhookController(service *game.Service, pool *redis.Pool) *WebhookController {
	return &WebhookController{service: service, pool: pool}
}

func (w *WebhookController) Handle(c *fiber.Ctx) error {
	if c.Params("secret") != os.Getenv("WEBHOOK_SECRET") {
		return c.SendStatus(fiber.StatusForbidden)
	}

	update := new(models.TgUpdate)
	if err := c.BodyParser(update); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	msg := update.Message
	if msg == nil || msg.From == nil {
		return c.SendStatus(fiber.StatusOK)
	}

	var out models.Output
	err := cache.WithChatLock(msg.Chat.Id, w.pool, func() error {
		var err error
		out, err = w.dispatch(msg)
		return err
	})
	if err != nil {
		out = renderError(err)
	}
	if out.Warning != "" {
		log.WithField("chat_id", msg.Chat.Id).Warn(out.Warning)
	}
	if out.Out == "" {
		// Always 200: Telegram re-delivers the update otherwise.
		return c.SendStatus(fiber.StatusOK)
	}
	return c.JSON(fiber.Map{
		"method":  "sendMessage",
		"chat_id": msg.Chat.Id,
		"text":    out.Out,
	})
}

func (w *WebhookController) dispatch(msg *models.TgMessage) (models.Output, error) {
	fields := strings.Fields(msg.Text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return models.Output{}, nil
	}
	cmd := strings.TrimPrefix(fields[0], "/")
	if at := strings.Index(cmd, "@"); at >= 0 {
		cmd = cmd[:at]
	}
	chatId := msg.Chat.Id
	userId := msg.From.Id

	switch cmd {
	case "start":
		return w.service.Start(chatId, userId, msg.From.Username)
	case "begin":
		return w.service.Begin(chatId)
	case "roll":
		return w.service.Roll(chatId, userId)
	case "buy":
		return w.service.Buy(chatId, userId)
	case "auction":
		return w.service.Auction(chatId, userId)
	case "bid":
		if len(fields) < 2 {
			return models.Output{Out: "Usage: /bid <price>"}, nil
		}
		amount, err := strconv.Atoi(fields[1])
		if err != nil {
			return models.Output{Out: "The bid has to be a number."}, nil
		}
		return w.service.Bid(chatId, userId, amount)
	case "rent":
		return w.service.Rent(chatId, userId)
	case "build":
		if len(fields) < 2 {
			return models.Output{Out: "Usage: /build <tile>"}, nil
		}
		tileId, err := strconv.Atoi(fields[1])
		if err != nil {
			return models.Output{Out: "Name the tile by its number."}, nil
		}
		return w.service.Build(chatId, userId, tileId)
	case "trade":
		if len(fields) < 5 {
			return models.Output{Out: "Usage: /trade <user> <cash> <your tile> <their tile>"}, nil
		}
		cashDelta, err1 := strconv.Atoi(fields[2])
		tileFromA, err2 := strconv.Atoi(fields[3])
		tileFromB, err3 := strconv.Atoi(fields[4])
		if err1 != nil || err2 != nil || err3 != nil {
			return models.Output{Out: "Usage: /trade <user> <cash> <your tile> <their tile>"}, nil
		}
		return w.service.Trade(chatId, userId, fields[1], cashDelta, tileFromA, tileFromB)
	case "status":
		return w.service.Status(chatId, userId)
	case "finish":
		return w.service.Finish(chatId)
	case "help":
		return w.service.Help(), nil
	}
	return models.Output{}, nil
}

// renderError maps the engine's error families onto chat text. Only
// consistency problems and infrastructure failures reach the logs.
func renderError(err error) models.Output {
	var validation *game.ValidationError
	var rule *game.RuleViolation
	var consistency *game.ConsistencyError
	switch {
	case errors.As(err, &validation), errors.As(err, &rule):
		return models.Output{Out: err.Error()}
	case errors.As(err, &consistency):
		return models.Output{
			Out:     "The game state is inconsistent and needs an admin.",
			Warning: err.Error(),
		}
	default:
		return models.Output{Warning: err.Error()}
	}
}
