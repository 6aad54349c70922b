// Package router registers the department and designation record routes.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	orghdl "gotask_backend/internal/api/org/handler"
	"gotask_backend/internal/api/middleware"
	apirouter "gotask_backend/internal/api/router"
)

// Register mounts the department and designation CRUD routes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	departmentHandler, err := orghdl.NewDepartmentHandler()
	if err != nil {
		return fmt.Errorf("failed to create department handler: %w", err)
	}
	designationHandler, err := orghdl.NewDesignationHandler()
	if err != nil {
		return fmt.Errorf("failed to create designation handler: %w", err)
	}

	auth := []fiber.Handler{middleware.AuthMiddleware()}
	if err := apirouter.RegisterCRUDRoutes(v1, "/departments", departmentHandler, apirouter.RecordConfig(), auth); err != nil {
		return err
	}
	return apirouter.RegisterCRUDRoutes(v1, "/designations", designationHandler, apirouter.RecordConfig(), auth)
}
