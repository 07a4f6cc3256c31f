package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/evgeniy-krivenko/color-notes/pkg/response"
)

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 30 * time.Second
)

// Router mounts a group of endpoints under the API base path.
type Router interface {
	Register(r fiber.Router)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=app_options.gen.go -from-struct=Options
type Options struct {
	routers []Router `option:"mandatory" validate:"required,min=1"`
	pinger  Pinger   `option:"mandatory" validate:"required"`

	basePath    string `default:"/api/v1/internal"`
	bodyLimit   int    `default:"65536" validate:"min=1024"`
	corsOrigins string `default:"*"`

	rateLimit      int           `default:"100" validate:"min=1"`
	rateWindow     time.Duration `default:"1m"`
	limiterStorage fiber.Storage
}

func NewApp(opts Options) (*fiber.App, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate api options: %v", err)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:           readTimeout,
		WriteTimeout:          writeTimeout,
		IdleTimeout:           idleTimeout,
		BodyLimit:             opts.bodyLimit,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})

	app.Use(
		RequestLogger(),
		recover.New(),
		cors.New(cors.Config{
			AllowOrigins: opts.corsOrigins,
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Account-Id,X-User-Id,X-Request-ID",
			MaxAge:       86400,
		}),
	)

	app.Get("/health", healthHandler(opts.pinger))

	api := app.Group(opts.basePath, limiter.New(limiter.Config{
		Max:        opts.rateLimit,
		Expiration: opts.rateWindow,
		Storage:    opts.limiterStorage,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).
				JSON(response.Failure(response.CodeRateLimited, "Rate limit exceeded", nil))
		},
	}))

	for _, r := range opts.routers {
		r.Register(api)
	}

	return app, nil
}

func healthHandler(p Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := p.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).
				JSON(response.Failure(response.CodeUnavailable, "Database unavailable", nil))
		}

		return c.JSON(response.Success(fiber.Map{"status": "ok"}))
	}
}
