package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chatopoly/monopoly-bot/app/controllers"
)

func AdminRoutes(a *fiber.App) {
	route := a.Group("/admin")
	route.Post("/login", controllers.Login)
}
