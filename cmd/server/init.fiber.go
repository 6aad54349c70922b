package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	customerrouter "gotask_backend/internal/api/customer/router"
	filtersrouter "gotask_backend/internal/api/filters/router"
	franchiserouter "gotask_backend/internal/api/franchise/router"
	orgrouter "gotask_backend/internal/api/org/router"
	reportrouter "gotask_backend/internal/api/report/router"
	requestrouter "gotask_backend/internal/api/request/router"
	apirouter "gotask_backend/internal/api/router"
	vendorrouter "gotask_backend/internal/api/vendors/router"
	"gotask_backend/internal/common"
	"gotask_backend/internal/global"
	"gotask_backend/internal/logger"
)

// InitFiberApp builds the Fiber app with its middleware stack and routes.
func InitFiberApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       "GoTask API",
		ServerHeader:  "GoTask API",
		StrictRouting: true,
		CaseSensitive: true,
		UnescapePath:  true,

		BodyLimit:       10 * 1024 * 1024,
		Concurrency:     256 * 1024,
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,

		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal server error"

			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				message = e.Message
				if code == fiber.StatusNotFound {
					message = "Not Found"
				}
			}

			if code >= fiber.StatusInternalServerError {
				logger.WithRequest(c).WithError(err).Error("Request error")
			}

			c.Set("Content-Type", "application/json; charset=utf-8")
			return c.Status(code).JSON(common.NewFailure(code, message))
		},
	})

	app.Use(requestid.New(requestid.Config{
		Header: "X-Request-ID",
		Generator: func() string {
			return fmt.Sprintf("%d", time.Now().UnixNano())
		},
	}))

	corsOrigins := global.ServerConfig.CORS_Origins
	var allowOrigins []string
	if corsOrigins == "*" {
		allowOrigins = []string{"*"}
	} else {
		allowOrigins = strings.Split(corsOrigins, ",")
		for i, origin := range allowOrigins {
			allowOrigins[i] = strings.TrimSpace(origin)
		}
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: global.ServerConfig.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "Content-Range", "X-Request-ID"},
		MaxAge:           24 * 60 * 60,
	}))

	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	if global.ServerConfig.RateLimit_Enabled && global.ServerConfig.RateLimit_Max > 0 {
		rateLimitMax := global.ServerConfig.RateLimit_Max
		rateLimitWindow := time.Duration(global.ServerConfig.RateLimit_Window) * time.Second
		app.Use(limiter.New(limiter.Config{
			Max:        rateLimitMax,
			Expiration: rateLimitWindow,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).
					JSON(common.NewFailure(fiber.StatusTooManyRequests, "Too many requests, please try again later"))
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == "/health" || c.Method() == "OPTIONS"
			},
		}))
		logger.GetAppLogger().Infof("Rate limiting enabled: %d requests per %d seconds", rateLimitMax, global.ServerConfig.RateLimit_Window)
	} else {
		logger.GetAppLogger().Info("Rate limiting disabled")
	}

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithFields(map[string]interface{}{
				"panic": e,
			}).Error("Panic recovered")

			c.Status(fiber.StatusInternalServerError).
				JSON(common.NewFailure(fiber.StatusInternalServerError, "Internal server error"))
		},
		Next: func(c fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))

	app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	if err := apirouter.SetupRoutes(app,
		customerrouter.Register,
		franchiserouter.Register,
		vendorrouter.Register,
		requestrouter.Register,
		orgrouter.Register,
		reportrouter.Register,
		filtersrouter.Register,
	); err != nil {
		logger.GetAppLogger().Fatalf("Failed to set up routes: %v", err)
	}

	return app
}
