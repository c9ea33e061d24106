package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/veldkamp/boardwalk-backend/app/controllers"
)

func RoomRoutes(a *fiber.App, rc *controllers.RoomController) {
	route := a.Group("/room")
	route.Post("/create", rc.CreateRoom)
	route.Get("/verify", rc.VerifyRoom)
	route.Get("/all", rc.GetAllRooms)
}
