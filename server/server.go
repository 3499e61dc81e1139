package server

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/goliatone/go-reportdoc/report"
)

// HeaderAPIKey carries the shared-secret key on authenticated endpoints.
const HeaderAPIKey = "X-API-Key"

// Config configures the HTTP delivery layer.
type Config struct {
	Service *report.Service
	Store   report.ArtifactStore
	// APIKey guards the render endpoints. Empty rejects every request.
	APIKey string
	// BaseURL overrides the request-derived base for stored file URLs.
	BaseURL string
	Logger  report.Logger
}

// New builds the fiber application with the four service routes.
func New(cfg Config) *fiber.App {
	log := cfg.Logger
	if log == nil {
		log = report.NopLogger{}
	}

	app := fiber.New(fiber.Config{
		AppName:               "reportdoc",
		DisableStartupMessage: true,
		ErrorHandler:          appErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
	}))

	h := &handlers{
		service: cfg.Service,
		store:   cfg.Store,
		baseURL: cfg.BaseURL,
		logger:  log,
	}

	auth := keyauth.New(keyauth.Config{
		KeyLookup:    "header:" + HeaderAPIKey,
		AuthScheme:   "",
		Validator:    apiKeyValidator(cfg.APIKey),
		ErrorHandler: unauthorizedHandler,
	})

	app.Get("/ping", h.Ping)
	app.Post("/render", auth, h.Render)
	app.Post("/render_b64", auth, h.RenderBase64)
	app.Get("/file/:name", h.GetFile)

	return app
}

// apiKeyValidator compares the presented key against the value fixed at
// process start. An unset server-side key makes every request unauthorized.
func apiKeyValidator(apiKey string) func(*fiber.Ctx, string) (bool, error) {
	return func(c *fiber.Ctx, key string) (bool, error) {
		if apiKey == "" || key != apiKey {
			return false, keyauth.ErrMissingOrMalformedAPIKey
		}
		return true, nil
	}
}

func unauthorizedHandler(c *fiber.Ctx, _ error) error {
	return writeError(c, report.NewError(report.KindUnauthorized, "unauthorized", nil))
}

func appErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return c.Status(fe.Code).JSON(ErrorResponse{
			Error: ErrorBody{Message: fe.Message, Code: "http"},
		})
	}
	return writeError(c, err)
}
