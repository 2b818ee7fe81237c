package main

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	log "github.com/sirupsen/logrus"

	"github.com/chatopoly/monopoly-bot/app/controllers"
	"github.com/chatopoly/monopoly-bot/app/game"
	"github.com/chatopoly/monopoly-bot/pkg"
	"github.com/chatopoly/monopoly-bot/pkg/routes"
	"github.com/chatopoly/monopoly-bot/platform/cache"
	"github.com/chatopoly/monopoly-bot/platform/database"
	"github.com/chatopoly/monopoly-bot/platform/logging"
	"github.com/chatopoly/monopoly-bot/platform/queries"
	socket "github.com/chatopoly/monopoly-bot/platform/sockets"
)

func main() {
	logging.Init()

	db := database.PostgreSQLConnection()
	defer db.Close()

	pool := cache.CreateRedisPool()
	defer pool.Close()

	broadcaster, err := socket.CreateSpectatorServer()
	if err != nil {
		log.WithError(err).Fatal("spectator server setup failed")
	}

	if os.Getenv("WEBHOOK_SECRET") == "" {
		secret := pkg.RandString(16)
		os.Setenv("WEBHOOK_SECRET", secret)
		log.WithField("secret", secret).Warn("WEBHOOK_SECRET not set, generated one")
	}

	store := queries.NewGameStore(db)
	service := game.NewService(store, game.NewDice(time.Now().UnixNano()), broadcaster)

	app := fiber.New()
	app.Use(cors.New())

	routes.WebhookRoutes(app, controllers.NewWebhookController(service, pool))
	routes.AdminRoutes(app)

	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(os.Getenv("JWT_SECRET")),
	}))
	app.Get("/admin/games/:chat_id", controllers.GameDump)

	go broadcaster.Serve()

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":4101"
	}
	if err := app.Listen(addr); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
