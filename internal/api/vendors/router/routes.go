// Package router registers the vendor record routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	vendorhdl "gotask_backend/internal/api/vendors/handler"
	"gotask_backend/internal/api/middleware"
	apirouter "gotask_backend/internal/api/router"
)

// Register mounts the vendor CRUD routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	handler, err := vendorhdl.NewVendorHandler()
	if err != nil {
		return fmt.Errorf("failed to create vendor handler: %w", err)
	}
	auth := []fiber.Handler{middleware.AuthMiddleware()}
	return apirouter.RegisterCRUDRoutes(v1, "/vendors", handler, apirouter.RecordConfig(), auth)
}
