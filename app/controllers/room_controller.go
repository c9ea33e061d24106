package controllers

import (
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/veldkamp/boardwalk-backend/pkg"
	"github.com/veldkamp/boardwalk-backend/platform/game"
)

type RoomController struct {
	registry *game.Registry
}

func NewRoomController(registry *game.Registry) *RoomController {
	return &RoomController{registry: registry}
}

// CreateRoom allocates a fresh room code so a lobby can share it before
// anyone connects.
func (rc *RoomController) CreateRoom(c *fiber.Ctx) error {
	code := pkg.RandString(8)
	rc.registry.GetOrCreate(code)
	log.WithField("room", code).Info("room code issued")
	return c.JSON(fiber.Map{"id": code})
}

// VerifyRoom reports whether a code currently accepts joins. Advisory only:
// rooms are created lazily, so an unknown code is still joinable.
func (rc *RoomController) VerifyRoom(c *fiber.Ctx) error {
	code := c.Query("code")
	if code == "" {
		return c.JSON(fiber.Map{"status": false})
	}
	room, ok := rc.registry.Get(code)
	if !ok {
		return c.JSON(fiber.Map{"status": false})
	}
	info := room.Info()
	return c.JSON(fiber.Map{"status": info.Players < info.MaxPlayers})
}

// GetAllRooms lists every live room with its occupancy.
func (rc *RoomController) GetAllRooms(c *fiber.Ctx) error {
	return c.JSON(rc.registry.List())
}
