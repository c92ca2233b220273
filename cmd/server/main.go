package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"server/internal/app"
	"server/internal/handlers"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	log := logger.New("main")

	application, err := app.New()
	if err != nil {
		log.Er("failed to initialize application", err)
		os.Exit(1)
	}

	server := fiber.New(fiber.Config{
		AppName:               "journey-server",
		DisableStartupMessage: application.Config.Environment == "production",
	})

	server.Use(recover.New())
	server.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(origin string) bool { return true },
	}))

	if err := handlers.Router(server, application); err != nil {
		log.Er("failed to register routes", err)
		os.Exit(1)
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		log.Info("Shutting down")
		if err := server.Shutdown(); err != nil {
			log.Er("failed to shut down server", err)
		}
	}()

	address := fmt.Sprintf("%s:%d", application.Config.ServerHost, application.Config.ServerPort)
	log.Info("Starting server", "address", address)
	if err := server.Listen(address); err != nil {
		log.Er("server stopped", err)
	}

	if err := application.Close(); err != nil {
		log.Er("failed to close application", err)
	}
}
