package rest

import (
	"github.com/gofiber/contrib/fiberzap/v2"
	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"imgresize/config"
	"imgresize/service"
	"os"
)

// NewApp builds the HTTP application with its middleware and routes.
func NewApp(cfg *config.Config, resizeService *service.ResizeService, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		BodyLimit:             cfg.MaxUploadBytes,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(logger),
	})
	app.Use(
		recover.New(),
		otelfiber.Middleware(),
		fiberzap.New(fiberzap.Config{Logger: logger}),
		compress.New(compress.Config{Level: compress.LevelBestSpeed}),
		etag.New(),
		limiter.New(limiter.Config{
			Next: func(c *fiber.Ctx) bool {
				return c.IP() == "127.0.0.1"
			},
			Max:        cfg.RateLimitMaxRequests,
			Expiration: cfg.RateLimitDuration(),
		}),
	)

	if _, err := os.Stat(cfg.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.SwaggerFile,
			Path:     "docs",
			Title:    cfg.AppName,
		}))
	} else {
		logger.Debug("Swagger UI disabled", zap.String("file", cfg.SwaggerFile), zap.Error(err))
	}

	NewResizeController(app, cfg, resizeService, logger)

	return app
}

func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}
		if code >= fiber.StatusInternalServerError {
			logger.Error("Request failed", zap.String("path", c.Path()), zap.Error(err))
		}
		return c.Status(code).SendString(err.Error())
	}
}
