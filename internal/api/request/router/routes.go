// Package router registers the service request record routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	requesthdl "gotask_backend/internal/api/request/handler"
	"gotask_backend/internal/api/middleware"
	apirouter "gotask_backend/internal/api/router"
)

// Register mounts the service request CRUD routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := requesthdl.NewRequestHandler()
	if err != nil {
		return fmt.Errorf("failed to create request handler: %w", err)
	}
	auth := []fiber.Handler{middleware.AuthMiddleware()}
	return apirouter.RegisterCRUDRoutes(v1, "/requests", handler, apirouter.RecordConfig(), auth)
}
