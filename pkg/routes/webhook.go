package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/chatopoly/monopoly-bot/app/controllers"
)

func WebhookRoutes(a *fiber.App, ctrl *controllers.WebhookController) {
	a.Post("/webhook/:secret", ctrl.Handle)
}
