package controllers

import (
	"os"
	"strconv"
	"time"

	jwt "github.com/form3tech-oss/jwt-go"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"github.com/chatopoly/monopoly-bot/app/models"
	"github.com/chatopoly/monopoly-bot/platform/database"
	"github.com/chatopoly/monopoly-bot/platform/queries"
)

// Login issues an admin token. Credentials come from the environment:
// ADMIN_USER and ADMIN_PASS_HASH (a bcrypt hash).
func Login(c *fiber.Ctx) error {
	dto := new(models.AdminLoginDto)
	if err := c.BodyParser(dto); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	hash := []byte(os.Getenv("ADMIN_PASS_HASH"))
	if dto.User != os.Getenv("ADMIN_USER") ||
		bcrypt.CompareHashAndPassword(hash, []byte(dto.Pass)) != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["sub"] = dto.User
	claims["exp"] = time.Now().Add(24 * time.Hour).Unix()
	t, err := token.SignedString([]byte(os.Getenv("JWT_SECRET")))
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"access_token": t})
}

// GameDump returns a chat's raw rows, for poking at stuck games.
func GameDump(c *fiber.Ctx) error {
	chatId, err := strconv.ParseInt(c.Params("chat_id"), 10, 64)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	db := database.PostgreSQLConnection()
	defer db.Close()

	rows, elapsed, err := queries.NewGameStore(db).FetchRows(chatId)
	if err != nil {
		return c.SendStatus(fiber.StatusInternalServerError)
	}
	return c.JSON(fiber.Map{"rows": rows, "auction_elapsed_sec": elapsed})
}
