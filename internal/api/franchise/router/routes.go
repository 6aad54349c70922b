// Package router registers the franchise record routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	franchisehdl "gotask_backend/internal/api/franchise/handler"
	"gotask_backend/internal/api/middleware"
	apirouter "gotask_backend/internal/api/router"
)

// Register mounts the franchise CRUD routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := franchisehdl.NewFranchiseHandler()
	if err != nil {
		return fmt.Errorf("failed to create franchise handler: %w", err)
	}
	auth := []fiber.Handler{middleware.AuthMiddleware()}
	return apirouter.RegisterCRUDRoutes(v1, "/franchises", handler, apirouter.RecordConfig(), auth)
}
