package http

import (
	"camera-rental-service/config"
	"camera-rental-service/internal/pkg/errors"
	"camera-rental-service/internal/pkg/helpers"
	log_internal "camera-rental-service/internal/pkg/log"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func SetupHttpEngine(cfg *config.HttpServerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "camera-rental-service",
		BodyLimit:    cfg.BodyLimit,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())

	return app
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	if e, ok := err.(*fiber.Error); ok {
		return ctx.Status(e.Code).JSON(helpers.Response{Message: e.Message})
	}
	return helpers.RespError(ctx, log_internal.GetOtelLogger(), errors.InternalServerError(err.Error()))
}

// StartHttpServer blocks until SIGINT/SIGTERM, then shuts the server down.
func StartHttpServer(app *fiber.App, port string, shutdownTimeout time.Duration, onShutdown ...func()) {
	ctx := context.Background()
	logger := log_internal.GetLogger()

	go func() {
		if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
			logger.Error(ctx, "error start http server", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info(ctx, "shutting down http server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error(ctx, "error shutdown http server", err)
	}

	for _, fn := range onShutdown {
		fn()
	}
}
