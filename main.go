package main

import (
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	log "github.com/sirupsen/logrus"

	"github.com/veldkamp/boardwalk-backend/app/controllers"
	"github.com/veldkamp/boardwalk-backend/pkg/config"
	"github.com/veldkamp/boardwalk-backend/pkg/routes"
	"github.com/veldkamp/boardwalk-backend/platform/logging"
	socket "github.com/veldkamp/boardwalk-backend/platform/sockets"
)

func main() {
	logging.Init()
	rand.Seed(time.Now().UnixNano())

	cfg := config.Load()
	server := socket.NewServer(cfg)

	app := fiber.New()
	app.Use(cors.New())
	routes.RoomRoutes(app, controllers.NewRoomController(server.Registry()))
	app.Static("/static", cfg.StaticDir)

	go server.Run(cfg)

	log.WithField("addr", cfg.HTTPAddr).Info("lobby listening")
	if err := app.Listen(cfg.HTTPAddr); err != nil {
		log.WithError(err).Fatal("http server stopped")
	}
}
